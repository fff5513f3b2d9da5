package pattern

import (
	"fmt"
	"strings"

	"github.com/hferris/matchbook/internal/value"
)

// Validation error codes (E200-E299)
const (
	ErrNoArms         = "E201" // arm list is empty
	ErrNotExhaustive  = "E202" // arm list does not cover every value shape
	ErrUnreachableArm = "E203" // arm listed after an unguarded irrefutable arm
	ErrBadRest        = "E204" // tuple rest position out of range
	ErrEmptyOneOf     = "E205" // alternation with no alternatives
	ErrBadRange       = "E206" // range bounds mistyped or inverted
	ErrUnknownVariant = "E207" // variant case not in a known variant set
	ErrDuplicateField = "E208" // record pattern names a field twice
)

// ValidationError reports a structural defect in an arm list or pattern.
type ValidationError struct {
	Arm     int    `json:"arm"` // arm index, -1 when the defect is list-wide
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Arm >= 0 {
		return fmt.Sprintf("[%s] arm %d: %s", e.Code, e.Arm, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// ValidationErrors aggregates validation failures into a single error.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, ve := range e {
		msgs[i] = ve.Error()
	}
	return "invalid arms: " + strings.Join(msgs, "; ")
}

// ValidateArms checks an arm list before evaluation.
// Returns all errors found (does not fail-fast).
//
// An arm list is accepted when:
//   - it is non-empty,
//   - every pattern is well-formed (rest position in range, non-empty
//     alternations, ordered range bounds, known variant cases),
//   - no arm follows an unguarded irrefutable arm (it could never run),
//   - it is exhaustive: it ends in an unguarded irrefutable arm, or its
//     unguarded variant arms cover a full variant set (Some+None, Ok+Err).
//
// Guarded arms never count toward exhaustiveness: a guard can fail at
// runtime, so the shape it covers must be re-covered by a later arm.
func ValidateArms(arms []Arm) []ValidationError {
	var errs []ValidationError

	// E201: arm list must be non-empty
	if len(arms) == 0 {
		errs = append(errs, ValidationError{
			Arm:     -1,
			Code:    ErrNoArms,
			Message: "arm list must contain at least one arm",
		})
		return errs
	}

	for i, arm := range arms {
		errs = append(errs, validatePattern(arm.Pat, i)...)
	}

	// E203: arms after an unguarded irrefutable arm are unreachable
	for i, arm := range arms[:len(arms)-1] {
		if arm.When == nil && Irrefutable(arm.Pat) {
			errs = append(errs, ValidationError{
				Arm:     i + 1,
				Code:    ErrUnreachableArm,
				Message: fmt.Sprintf("unreachable: arm %d (%s) already matches every value", i, Describe(arm.Pat)),
			})
			break
		}
	}

	// E202: exhaustiveness
	if !exhaustive(arms) {
		errs = append(errs, ValidationError{
			Arm:     -1,
			Code:    ErrNotExhaustive,
			Message: "arms are not exhaustive: add a catch-all arm or cover the full variant set",
		})
	}

	return errs
}

// exhaustive reports whether the arm list covers every value shape.
func exhaustive(arms []Arm) bool {
	cases := make(map[string]bool)
	for _, arm := range arms {
		if arm.When != nil {
			continue
		}
		if Irrefutable(arm.Pat) {
			return true
		}
		if vp, ok := arm.Pat.(VariantPat); ok {
			if vp.Payload == nil || Irrefutable(vp.Payload) {
				cases[vp.Case] = true
			}
		}
	}
	if cases[CaseSome] && cases[CaseNone] {
		return true
	}
	if cases[CaseOk] && cases[CaseErr] {
		return true
	}
	return false
}

// validatePattern checks a single pattern tree for structural defects.
func validatePattern(p Pattern, arm int) []ValidationError {
	var errs []ValidationError

	switch pat := p.(type) {
	case nil:
		errs = append(errs, ValidationError{
			Arm:     arm,
			Code:    ErrUnknownVariant,
			Message: "arm pattern must be non-nil",
		})

	case TuplePat:
		if pat.RestAt != NoRest && (pat.RestAt < 0 || pat.RestAt > len(pat.Elems)) {
			errs = append(errs, ValidationError{
				Arm:     arm,
				Code:    ErrBadRest,
				Message: fmt.Sprintf("rest position %d out of range for %d elements", pat.RestAt, len(pat.Elems)),
			})
		}
		for _, elem := range pat.Elems {
			errs = append(errs, validatePattern(elem, arm)...)
		}

	case RecordPat:
		seen := make(map[string]bool, len(pat.Fields))
		for _, fp := range pat.Fields {
			if seen[fp.Name] {
				errs = append(errs, ValidationError{
					Arm:     arm,
					Code:    ErrDuplicateField,
					Message: fmt.Sprintf("field %q listed more than once", fp.Name),
				})
			}
			seen[fp.Name] = true
			errs = append(errs, validatePattern(fp.Pat, arm)...)
		}

	case VariantPat:
		switch pat.Case {
		case CaseSome, CaseOk, CaseErr:
			if pat.Payload != nil {
				errs = append(errs, validatePattern(pat.Payload, arm)...)
			}
		case CaseNone:
			if pat.Payload != nil {
				errs = append(errs, ValidationError{
					Arm:     arm,
					Code:    ErrUnknownVariant,
					Message: "None carries no payload",
				})
			}
		default:
			errs = append(errs, ValidationError{
				Arm:     arm,
				Code:    ErrUnknownVariant,
				Message: fmt.Sprintf("unknown variant case %q", pat.Case),
			})
		}

	case OneOf:
		if len(pat.Alts) == 0 {
			errs = append(errs, ValidationError{
				Arm:     arm,
				Code:    ErrEmptyOneOf,
				Message: "alternation must have at least one alternative",
			})
		}
		for _, alt := range pat.Alts {
			errs = append(errs, validatePattern(alt, arm)...)
		}

	case Range:
		errs = append(errs, validateRange(pat, arm)...)

	case Bind:
		if pat.Sub != nil {
			errs = append(errs, validatePattern(pat.Sub, arm)...)
		}
	}

	return errs
}

func validateRange(pat Range, arm int) []ValidationError {
	bad := func(msg string) []ValidationError {
		return []ValidationError{{Arm: arm, Code: ErrBadRange, Message: msg}}
	}

	switch lo := pat.Lo.(type) {
	case value.Int:
		hi, ok := pat.Hi.(value.Int)
		if !ok {
			return bad("range bounds must both be Int")
		}
		if lo > hi {
			return bad(fmt.Sprintf("empty range %s", Describe(pat)))
		}
	case value.Char:
		hi, ok := pat.Hi.(value.Char)
		if !ok {
			return bad("range bounds must both be Char")
		}
		if lo > hi {
			return bad(fmt.Sprintf("empty range %s", Describe(pat)))
		}
	default:
		return bad("range bounds must be Int or Char")
	}
	return nil
}
