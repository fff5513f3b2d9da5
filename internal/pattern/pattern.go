package pattern

import "github.com/hferris/matchbook/internal/value"

// Pattern is a sealed interface representing pattern shapes.
// Only the types in this package implement it.
type Pattern interface {
	pattern() // Sealed - only these types implement it
}

// Literal matches a value structurally equal to Want.
type Literal struct {
	Want value.Value
}

func (Literal) pattern() {}

// Wildcard matches any value without binding it (the `_` placeholder).
type Wildcard struct{}

func (Wildcard) pattern() {}

// Bind matches and binds the subject to Name. If Sub is non-nil the
// subject must first match Sub (an @-binding: bind and test in one step).
// With a nil Sub, Bind is irrefutable.
type Bind struct {
	Name string
	Sub  Pattern
}

func (Bind) pattern() {}

// Range matches a scalar within [Lo, Hi], inclusive on both ends.
// Lo and Hi must both be Int or both be Char.
type Range struct {
	Lo value.Value
	Hi value.Value
}

func (Range) pattern() {}

// TuplePat destructures a tuple element-wise.
//
// RestAt marks the position of a rest segment (`..`) that absorbs any
// number of middle elements: elements before RestAt match the tuple's
// prefix, elements from RestAt on match its suffix. RestAt = NoRest means
// exact arity. A pattern holds at most one rest position by construction,
// which keeps the ignored span unambiguous.
type TuplePat struct {
	Elems  []Pattern
	RestAt int
}

func (TuplePat) pattern() {}

// NoRest is the RestAt value for a tuple pattern with no rest segment.
const NoRest = -1

// FieldPat names a record field and the pattern its value must match.
type FieldPat struct {
	Name string
	Pat  Pattern
}

// RecordPat destructures a record by field name.
//
// If Name is non-empty the record's type name must match. If Rest is false
// the pattern must name every field of the record; with Rest true the
// unnamed fields are ignored (partial extraction).
type RecordPat struct {
	Name   string
	Fields []FieldPat
	Rest   bool
}

func (RecordPat) pattern() {}

// Variant case names for the closed variant sets in the value model.
const (
	CaseSome = "Some"
	CaseNone = "None"
	CaseOk   = "Ok"
	CaseErr  = "Err"
)

// VariantPat matches one case of a variant set. Payload is matched against
// the case's payload and must be nil for the payloadless None case.
type VariantPat struct {
	Case    string
	Payload Pattern
}

func (VariantPat) pattern() {}

// OneOf matches if any alternative matches, tried in order (the `|` form).
// The first matching alternative supplies the bindings.
type OneOf struct {
	Alts []Pattern
}

func (OneOf) pattern() {}

// Var is a shorthand for a bare (irrefutable) binding.
func Var(name string) Bind {
	return Bind{Name: name}
}

// At is a shorthand for an @-binding: bind name, but only if sub matches.
func At(name string, sub Pattern) Bind {
	return Bind{Name: name, Sub: sub}
}

// Lit is a shorthand literal pattern constructor.
func Lit(v value.Value) Literal {
	return Literal{Want: v}
}

// IntRange builds an inclusive integer range pattern.
func IntRange(lo, hi int64) Range {
	return Range{Lo: value.Int(lo), Hi: value.Int(hi)}
}

// CharRange builds an inclusive character range pattern.
func CharRange(lo, hi rune) Range {
	return Range{Lo: value.Char(lo), Hi: value.Char(hi)}
}

// Exact builds a tuple pattern with no rest segment.
func Exact(elems ...Pattern) TuplePat {
	return TuplePat{Elems: elems, RestAt: NoRest}
}
