package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fenwick-systems/reactors/internal/replaylog"
)

// ReplayOptions holds flags for the replay command.
type ReplayOptions struct {
	*RootOptions
	Database string
	Run      string
	Stream   string
}

// NewReplayCommand creates the replay command: print every commit
// recorded for a (run, stream) pair in a replaylog database, the
// cross-process analogue of a seq-0 late-subscriber probe (§3.4).
func NewReplayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReplayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Print the recorded commit history for a fold run",
		Long: `Read back every commit recorded by "reactorctl fold --db ..." for a
given --run and --stream, in sequence order.

Example:
  reactorctl replay --db ./fold.db --run <run-id> --stream fold`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to the replaylog SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().StringVar(&opts.Run, "run", "", "run id to replay (required)")
	_ = cmd.MarkFlagRequired("run")
	cmd.Flags().StringVar(&opts.Stream, "stream", "fold", "stream name to replay")

	return cmd
}

func runReplay(cmd *cobra.Command, opts *ReplayOptions) error {
	log, err := replaylog.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open replaylog database", err)
	}
	defer log.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	entries, err := log.Replay(ctx, opts.Run, opts.Stream)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to replay", err)
	}

	if opts.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), CLIResponse{Status: "ok", Data: entries})
	}

	w := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(w, "no commits recorded for this run/stream")
		return nil
	}
	for _, e := range entries {
		value, decodeErr := replaylog.DecodeValue[int](e)
		switch {
		case e.Err != "":
			fmt.Fprintf(w, "seq=%d error=%q complete=%t\n", e.Seq, e.Err, e.Complete)
		case decodeErr != nil:
			fmt.Fprintf(w, "seq=%d <undecodable value> complete=%t\n", e.Seq, e.Complete)
		default:
			fmt.Fprintf(w, "seq=%d value=%d complete=%t\n", e.Seq, value, e.Complete)
		}
	}
	return nil
}
