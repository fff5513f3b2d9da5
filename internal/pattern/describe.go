package pattern

import (
	"strings"

	"github.com/hferris/matchbook/internal/value"
)

// Describe renders a pattern in source-like notation for error messages
// and validation diagnostics.
func Describe(p Pattern) string {
	switch pat := p.(type) {
	case nil:
		return "<nil>"
	case Literal:
		return describeScalar(pat.Want)
	case Wildcard:
		return "_"
	case Bind:
		if pat.Sub == nil {
			return pat.Name
		}
		return pat.Name + " @ " + Describe(pat.Sub)
	case Range:
		return describeScalar(pat.Lo) + "..=" + describeScalar(pat.Hi)
	case TuplePat:
		parts := make([]string, 0, len(pat.Elems)+1)
		for i, elem := range pat.Elems {
			if i == pat.RestAt {
				parts = append(parts, "..")
			}
			parts = append(parts, Describe(elem))
		}
		if pat.RestAt == len(pat.Elems) {
			parts = append(parts, "..")
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case RecordPat:
		parts := make([]string, 0, len(pat.Fields)+1)
		for _, fp := range pat.Fields {
			parts = append(parts, fp.Name+": "+Describe(fp.Pat))
		}
		if pat.Rest {
			parts = append(parts, "..")
		}
		return pat.Name + "{" + strings.Join(parts, ", ") + "}"
	case VariantPat:
		if pat.Payload == nil {
			return pat.Case
		}
		return pat.Case + "(" + Describe(pat.Payload) + ")"
	case OneOf:
		parts := make([]string, len(pat.Alts))
		for i, alt := range pat.Alts {
			parts[i] = Describe(alt)
		}
		return strings.Join(parts, " | ")
	default:
		return "<unknown>"
	}
}

// describeScalar quotes Str and Char literals the way source code would.
func describeScalar(v value.Value) string {
	switch val := v.(type) {
	case value.Str:
		return `"` + string(val) + `"`
	case value.Char:
		return "'" + string(rune(val)) + "'"
	default:
		return value.Render(v)
	}
}
