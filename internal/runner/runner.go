package runner

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/hferris/matchbook/internal/demo"
)

// Runner executes demos sequentially and records their output.
type Runner struct {
	clock    *Clock
	tokenGen TokenGenerator
	logger   *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithTokenGenerator overrides the run token generator (for tests and the
// harness, which need fixed tokens).
func WithTokenGenerator(g TokenGenerator) Option {
	return func(r *Runner) { r.tokenGen = g }
}

// WithLogger sets the runner's logger. Demo output never goes through the
// logger; it only reports run progress.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// New creates a Runner. Defaults: UUIDv7 run tokens, discarded logs.
func New(opts ...Option) *Runner {
	r := &Runner{
		clock:    NewClock(),
		tokenGen: UUIDv7Generator{},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the demos in order and returns the stamped transcript.
//
// Execution is strictly sequential; each demo runs to completion before
// the next begins. The context is checked between demos only - a demo is
// never interrupted mid-routine.
func (r *Runner) Run(ctx context.Context, demos []demo.Demo) (*Transcript, error) {
	t := &Transcript{RunToken: r.tokenGen.Generate()}
	r.logger.Info("run starting", "token", t.RunToken, "demos", len(demos))

	for _, d := range demos {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("run cancelled before demo %s: %w", d.Name, err)
		}

		r.logger.Debug("demo starting", "demo", d.Name)
		var buf bytes.Buffer
		if err := d.Run(&buf); err != nil {
			return nil, fmt.Errorf("demo %s: %w", d.Name, err)
		}

		for _, line := range splitLines(buf.String()) {
			t.Events = append(t.Events, Event{
				Seq:  r.clock.Next(),
				Demo: d.Name,
				Line: line,
			})
		}
		r.logger.Debug("demo finished", "demo", d.Name, "seq", r.clock.Current())
	}

	r.logger.Info("run finished", "token", t.RunToken, "lines", len(t.Events))
	return t, nil
}

// splitLines splits captured output into lines, dropping the trailing
// empty segment a final newline produces.
func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
