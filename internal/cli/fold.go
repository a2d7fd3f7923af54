package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fenwick-systems/reactors/internal/reactor"
	"github.com/fenwick-systems/reactors/internal/replaylog"
	"github.com/fenwick-systems/reactors/internal/trigger"
)

// foldOps maps an --op flag value to the two-argument reducer FoldReactor
// evaluates at each tick. Kept as a lookup table rather than a switch so
// adding an operation never touches command wiring.
var foldOps = map[string]func(int, int) (int, error){
	"sum":     func(l, r int) (int, error) { return l + r, nil },
	"product": func(l, r int) (int, error) { return l * r, nil },
	"min": func(l, r int) (int, error) {
		if r < l {
			return r, nil
		}
		return l, nil
	},
	"max": func(l, r int) (int, error) {
		if r > l {
			return r, nil
		}
		return l, nil
	},
}

// FoldOptions holds flags for the fold command.
type FoldOptions struct {
	*RootOptions
	Op       string
	Database string
	Stream   string

	// RunIDGenerator overrides the replaylog run id generator. If nil,
	// defaults to replaylog.UUIDv7Generator. Exposed for tests that need
	// a deterministic run id back, mirroring the teacher's RunOptions.FlowGenerator.
	RunIDGenerator replaylog.RunIDGenerator
}

// NewFoldCommand creates the fold command: read integers from stdin, one
// per line, and print the running reduction per foldOps[Op].
func NewFoldCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FoldOptions{RootOptions: rootOpts}
	return newFoldCommand(opts)
}

func newFoldCommand(opts *FoldOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fold",
		Short: "Fold a stream of integers read from stdin",
		Long: `Read integers from stdin, one per line, and fold them with --op.

The first line seeds the accumulator and emits nothing (fold seeding);
every line after that prints the running reduction.

Example:
  printf '1\n2\n3\n4\n' | reactorctl fold --op sum
  3
  6
  10`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFold(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Op, "op", "sum", "reduction: sum|product|min|max")
	cmd.Flags().StringVar(&opts.Database, "db", "", "optional path to a replaylog SQLite database to record emitted values")
	cmd.Flags().StringVar(&opts.Stream, "stream", "fold", "replaylog stream name to record under (requires --db)")

	return cmd
}

func runFold(cmd *cobra.Command, opts *FoldOptions) error {
	reduce, ok := foldOps[opts.Op]
	if !ok {
		return NewExitError(ExitCommandError, fmt.Sprintf("unknown --op %q", opts.Op))
	}

	producer := reactor.MakeBasic[int]()
	left := reactor.MakeFoldParameter[int]()
	right := reactor.MakeFoldParameter[int]()
	evaluation := reactor.MakeFunction2(reduce, left, right)
	fold := reactor.MakeFold[int](evaluation, left, right, producer)

	var log *replaylog.Log
	var runID string
	if opts.Database != "" {
		var err error
		log, err = replaylog.Open(opts.Database)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to open replaylog database", err)
		}
		defer log.Close()
		gen := opts.RunIDGenerator
		if gen == nil {
			gen = replaylog.UUIDv7Generator{}
		}
		runID = gen.Generate()
	}

	clock := trigger.NewClock()
	scanner := bufio.NewScanner(cmd.InOrStdin())
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		v, err := strconv.Atoi(line)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("invalid integer %q", line), err)
		}

		producer.Update(v)
		seq := int(clock.Next())
		update := fold.Commit(seq)

		if update != reactor.EVAL {
			continue
		}
		value, err := fold.Eval()
		if err != nil {
			return WrapExitError(ExitFailure, "fold evaluation failed", err)
		}

		if err := emitFold(cmd, opts, value); err != nil {
			return err
		}
		if log != nil {
			if err := log.Append(ctx, replaylog.Record{
				RunID:  runID,
				Stream: opts.Stream,
				Seq:    int64(seq),
				Value:  value,
			}); err != nil {
				return WrapExitError(ExitCommandError, "failed to record fold output", err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return WrapExitError(ExitCommandError, "failed to read stdin", err)
	}
	return nil
}

func emitFold(cmd *cobra.Command, opts *FoldOptions, value int) error {
	if opts.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), CLIResponse{Status: "ok", Data: value})
	}
	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}
