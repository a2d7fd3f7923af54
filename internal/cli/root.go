// Package cli is the demonstration "enclosing application" the reactor
// core spec defers to (§6: "No CLI... a CLI is a concern of an enclosing
// application"). It wires a BasicReactor source to stdin, drives it with
// a trigger.Clock, and optionally records the result to a replaylog.Log,
// the same separation of concerns the teacher's internal/cli package
// keeps from its engine: the CLI only ever calls the public surface of
// the packages it wires together.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags shared by every reactorctl subcommand.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "json"
}

// ValidFormats lists the --format values reactorctl accepts.
var ValidFormats = []string{"text", "json"}

// NewRootCommand builds the reactorctl root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "reactorctl",
		Short: "reactorctl - drive a reactor graph from the command line",
		Long: `reactorctl is a small demonstration driver for the reactors dataflow core.

It plays the role of the "enclosing application" the reactor contract
defers to: it pumps stdin lines into a BasicReactor source, drives a
fold or function reactor over them with a sequence clock, and prints
each emitted value.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json)")

	cmd.AddCommand(NewFoldCommand(opts))
	cmd.AddCommand(NewReplayCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
