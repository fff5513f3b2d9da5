package pattern

import (
	"fmt"

	"github.com/hferris/matchbook/internal/value"
)

// RefutableError is returned when a refutable pattern is used where an
// irrefutable one is required (a let-style destructuring).
type RefutableError struct {
	Pat Pattern
}

// Error implements the error interface.
func (e *RefutableError) Error() string {
	return fmt.Sprintf("refutable pattern %s cannot be used in a destructuring binding", Describe(e.Pat))
}

// ShapeError is returned when an irrefutable pattern fails to match
// because the subject has the wrong shape (e.g. a 3-element tuple pattern
// against a 2-element tuple). In a typed host language this would be a
// type error; here it surfaces at destructure time.
type ShapeError struct {
	Pat     Pattern
	Subject value.Value
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("value %s does not have the shape of pattern %s", value.Render(e.Subject), Describe(e.Pat))
}

// Irrefutable reports whether p matches every value of its expected shape.
//
// Literals, ranges, and variant cases are refutable. Wildcards and bare
// bindings are irrefutable. Composite patterns are irrefutable when all
// their parts are.
func Irrefutable(p Pattern) bool {
	switch pat := p.(type) {
	case Wildcard:
		return true
	case Bind:
		return pat.Sub == nil || Irrefutable(pat.Sub)
	case Literal, Range, VariantPat:
		return false
	case TuplePat:
		for _, elem := range pat.Elems {
			if !Irrefutable(elem) {
				return false
			}
		}
		return true
	case RecordPat:
		for _, fp := range pat.Fields {
			if !Irrefutable(fp.Pat) {
				return false
			}
		}
		return true
	case OneOf:
		for _, alt := range pat.Alts {
			if Irrefutable(alt) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// Destructure is the let-binding analogue: it matches p against v and
// returns the bindings, accepting only irrefutable patterns.
//
// Returns RefutableError if p could fail to match, and ShapeError if the
// subject's shape disagrees with the pattern (wrong arity, wrong record).
func Destructure(p Pattern, v value.Value) (Bindings, error) {
	if !Irrefutable(p) {
		return nil, &RefutableError{Pat: p}
	}
	b, ok := Match(p, v)
	if !ok {
		return nil, &ShapeError{Pat: p, Subject: v}
	}
	return b, nil
}
