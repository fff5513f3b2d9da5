package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hferris/matchbook/internal/demo"
	"github.com/hferris/matchbook/internal/runner"
	"github.com/hferris/matchbook/internal/testutil"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Token string // fixed run token; empty = generated UUIDv7
	Trace bool   // prefix each line with its seq stamp
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run [demo...]",
		Short: "Run demonstration routines",
		Long: `Run demonstration routines and print their output.

With no arguments the full registry runs in its fixed order. Naming demos
runs just those, in the order given. Output lines are identical from run
to run; only the run token varies unless --token fixes it.

Examples:
  matchbook run
  matchbook run guarded-match range-binding
  matchbook run --trace --verbose
  matchbook run --token demo-run-1 --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemos(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Token, "token", "", "fixed run token (default: generated)")
	cmd.Flags().BoolVar(&opts.Trace, "trace", false, "prefix lines with seq stamps")

	return cmd
}

func runDemos(opts *RunOptions, names []string, cmd *cobra.Command) error {
	// Configure logging based on verbose flag
	logLevel := slog.LevelWarn
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	demos, err := selectDemos(names)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to resolve demos", err)
	}

	var tokenGen runner.TokenGenerator = runner.UUIDv7Generator{}
	if opts.Token != "" {
		tokenGen = testutil.NewFixedTokenGenerator(opts.Token)
	}

	r := runner.New(
		runner.WithTokenGenerator(tokenGen),
		runner.WithLogger(logger),
	)

	transcript, err := r.Run(cmd.Context(), demos)
	if err != nil {
		return WrapExitError(ExitCommandError, "run failed", err)
	}

	if opts.Format == "json" {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(CLIResponse{
			Status:   "ok",
			Data:     transcript,
			RunToken: transcript.RunToken,
		})
	}

	for _, e := range transcript.Events {
		if opts.Trace {
			fmt.Fprintf(cmd.OutOrStdout(), "[%d] %s: %s\n", e.Seq, e.Demo, e.Line)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), e.Line)
		}
	}
	return nil
}

// selectDemos resolves command arguments to registry entries.
// No arguments selects the full registry.
func selectDemos(names []string) ([]demo.Demo, error) {
	if len(names) == 0 {
		return demo.Registry(), nil
	}

	demos := make([]demo.Demo, 0, len(names))
	for _, name := range names {
		d, ok := demo.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown demo %q (see 'matchbook list')", name)
		}
		demos = append(demos, d)
	}
	return demos, nil
}
