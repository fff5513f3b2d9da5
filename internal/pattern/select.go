package pattern

import (
	"errors"
	"fmt"

	"github.com/hferris/matchbook/internal/value"
)

// Guard is a secondary predicate attached to an arm. It runs only after
// the arm's structural pattern has matched; returning false falls through
// to the next arm.
type Guard func(Bindings) bool

// Arm is one branch of a multi-branch selection.
type Arm struct {
	Pat  Pattern
	When Guard                // optional guard
	Run  func(Bindings) error // optional body, executed when the arm wins
}

// NoMatchError is returned when no arm accepts the subject value.
// With a validated arm list this happens only when the subject falls
// outside the shapes the arms cover: a variant-covering list meeting a
// subject from outside that variant set, or an irrefutable structural
// catch-all (tuple or record of bindings) meeting a subject of the
// wrong shape.
type NoMatchError struct {
	Subject value.Value
}

// Error implements the error interface.
func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no arm matches value %s", value.Render(e.Subject))
}

// IsNoMatch reports whether err is a NoMatchError.
// Uses errors.As to handle wrapped errors.
func IsNoMatch(err error) bool {
	var nm *NoMatchError
	return errors.As(err, &nm)
}

// Select evaluates arms against v in declaration order and executes the
// body of the first arm whose pattern matches and whose guard (if any)
// passes. Returns the winning arm's index and bindings.
//
// The arm list is validated before any arm is evaluated; an invalid list
// returns ValidationErrors and touches nothing. This is the runtime
// stand-in for the host compiler rejecting a non-exhaustive match before
// the program runs.
func Select(v value.Value, arms []Arm) (int, Bindings, error) {
	if errs := ValidateArms(arms); len(errs) > 0 {
		return -1, nil, ValidationErrors(errs)
	}

	for i, arm := range arms {
		b, ok := Match(arm.Pat, v)
		if !ok {
			continue
		}
		if arm.When != nil && !arm.When(b) {
			continue
		}
		if arm.Run != nil {
			if err := arm.Run(b); err != nil {
				return i, b, fmt.Errorf("arm %d: %w", i, err)
			}
		}
		return i, b, nil
	}

	return -1, nil, &NoMatchError{Subject: v}
}

// Test checks a single refutable pattern against a value and runs body on
// success (the if-let form). Returns whether the pattern matched and any
// error from the body.
func Test(p Pattern, v value.Value, body func(Bindings) error) (bool, error) {
	b, ok := Match(p, v)
	if !ok {
		return false, nil
	}
	if body != nil {
		if err := body(b); err != nil {
			return true, err
		}
	}
	return true, nil
}
