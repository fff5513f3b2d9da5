package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/hferris/matchbook/internal/demo"
	"github.com/hferris/matchbook/internal/runner"
	"github.com/hferris/matchbook/internal/testutil"
)

// Run executes a scenario and returns the result.
//
// Each scenario runs with a fresh runner and a fixed run token, so
// identical scenarios produce identical transcripts.
//
// Execution flow:
// 1. Resolve the scenario's demo selection against the registry
// 2. Run the demos with a fixed token and fresh logical clock
// 3. Evaluate assertions against the transcript
// 4. Return result with pass/fail, transcript, and errors
func Run(scenario *Scenario) (*Result, error) {
	demos, err := resolveDemos(scenario.Demos)
	if err != nil {
		return nil, err
	}

	r := runner.New(
		runner.WithTokenGenerator(testutil.NewFixedTokenGenerator(scenario.RunToken)),
		runner.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))), // Suppress logs in tests
	)

	transcript, err := r.Run(context.Background(), demos)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	result := NewResult(transcript)
	for _, assertion := range scenario.Assertions {
		if err := evaluate(transcript, assertion); err != nil {
			result.AddError(err.Error())
		}
	}

	return result, nil
}

// resolveDemos maps scenario demo names to registry entries.
// An empty selection means the full registry in its fixed order.
func resolveDemos(names []string) ([]demo.Demo, error) {
	if len(names) == 0 {
		return demo.Registry(), nil
	}

	demos := make([]demo.Demo, 0, len(names))
	for _, name := range names {
		d, ok := demo.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown demo %q", name)
		}
		demos = append(demos, d)
	}
	return demos, nil
}
