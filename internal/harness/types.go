package harness

import "github.com/hferris/matchbook/internal/runner"

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall scenario success.
	// True if every assertion held.
	Pass bool `json:"pass"`

	// Transcript is the recorded run output, used by assertions and
	// golden comparison.
	Transcript *runner.Transcript `json:"transcript"`

	// Errors contains assertion failure messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
// Used as the starting point for scenario execution.
func NewResult(t *runner.Transcript) *Result {
	return &Result{
		Pass:       true,
		Transcript: t,
		Errors:     []string{},
	}
}

// AddError adds an assertion failure and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
