package pattern

import "github.com/hferris/matchbook/internal/value"

// Bindings holds the variables a successful match extracted.
type Bindings map[string]value.Value

// Value returns the bound value for name, or nil if unbound.
func (b Bindings) Value(name string) value.Value {
	return b[name]
}

// Int returns the bound value for name as an int64, or 0 if it is unbound
// or not an Int.
func (b Bindings) Int(name string) int64 {
	if v, ok := b[name].(value.Int); ok {
		return int64(v)
	}
	return 0
}

// Char returns the bound value for name as a rune, or 0 if it is unbound
// or not a Char.
func (b Bindings) Char(name string) rune {
	if v, ok := b[name].(value.Char); ok {
		return rune(v)
	}
	return 0
}

// Str returns the bound value for name as a string, or "" if it is unbound
// or not a Str.
func (b Bindings) Str(name string) string {
	if v, ok := b[name].(value.Str); ok {
		return string(v)
	}
	return ""
}

// Match checks whether v matches p.
//
// All-or-nothing: on success every binding the pattern names is present in
// the returned Bindings; on failure the returned Bindings is nil and no
// partial extraction is visible to the caller.
func Match(p Pattern, v value.Value) (Bindings, bool) {
	b := make(Bindings)
	if !match(p, v, b) {
		return nil, false
	}
	return b, true
}

func match(p Pattern, v value.Value, b Bindings) bool {
	switch pat := p.(type) {
	case Literal:
		return value.Equal(pat.Want, v)

	case Wildcard:
		return true

	case Bind:
		if pat.Sub != nil && !match(pat.Sub, v, b) {
			return false
		}
		b[pat.Name] = v
		return true

	case Range:
		return matchRange(pat, v)

	case TuplePat:
		return matchTuple(pat, v, b)

	case RecordPat:
		return matchRecord(pat, v, b)

	case VariantPat:
		return matchVariant(pat, v, b)

	case OneOf:
		// Each alternative matches into a scratch map so a failed
		// alternative's partial bindings never reach the caller.
		for _, alt := range pat.Alts {
			scratch := make(Bindings)
			if match(alt, v, scratch) {
				for name, bound := range scratch {
					b[name] = bound
				}
				return true
			}
		}
		return false

	default:
		return false
	}
}

// matchRange checks range membership. Int ranges match Int subjects,
// Char ranges match Char subjects; anything else fails.
func matchRange(pat Range, v value.Value) bool {
	switch lo := pat.Lo.(type) {
	case value.Int:
		hi, ok := pat.Hi.(value.Int)
		if !ok {
			return false
		}
		n, ok := v.(value.Int)
		return ok && n >= lo && n <= hi
	case value.Char:
		hi, ok := pat.Hi.(value.Char)
		if !ok {
			return false
		}
		c, ok := v.(value.Char)
		return ok && c >= lo && c <= hi
	default:
		return false
	}
}

func matchTuple(pat TuplePat, v value.Value, b Bindings) bool {
	tup, ok := v.(value.Tuple)
	if !ok {
		return false
	}

	if pat.RestAt == NoRest {
		if len(tup) != len(pat.Elems) {
			return false
		}
		for i, elem := range pat.Elems {
			if !match(elem, tup[i], b) {
				return false
			}
		}
		return true
	}

	// Rest segment: Elems[:RestAt] match the prefix, Elems[RestAt:] match
	// the suffix, and the rest absorbs whatever is between.
	if len(tup) < len(pat.Elems) {
		return false
	}
	for i := 0; i < pat.RestAt; i++ {
		if !match(pat.Elems[i], tup[i], b) {
			return false
		}
	}
	tail := len(pat.Elems) - pat.RestAt
	for i := 0; i < tail; i++ {
		if !match(pat.Elems[pat.RestAt+i], tup[len(tup)-tail+i], b) {
			return false
		}
	}
	return true
}

func matchRecord(pat RecordPat, v value.Value, b Bindings) bool {
	rec, ok := v.(value.Record)
	if !ok {
		return false
	}
	if pat.Name != "" && pat.Name != rec.Name {
		return false
	}
	// Without a rest marker the pattern must account for every field.
	// Coverage counts distinct names so a duplicated field cannot stand
	// in for one the pattern never mentions.
	if !pat.Rest {
		seen := make(map[string]bool, len(pat.Fields))
		for _, fp := range pat.Fields {
			seen[fp.Name] = true
		}
		if len(seen) != len(rec.Fields) {
			return false
		}
	}
	for _, fp := range pat.Fields {
		fv, ok := rec.Get(fp.Name)
		if !ok {
			return false
		}
		if !match(fp.Pat, fv, b) {
			return false
		}
	}
	return true
}

func matchVariant(pat VariantPat, v value.Value, b Bindings) bool {
	switch pat.Case {
	case CaseSome:
		s, ok := v.(value.Some)
		if !ok {
			return false
		}
		return pat.Payload == nil || match(pat.Payload, s.Value, b)
	case CaseNone:
		_, ok := v.(value.None)
		return ok
	case CaseOk:
		o, ok := v.(value.Ok)
		if !ok {
			return false
		}
		return pat.Payload == nil || match(pat.Payload, o.Value, b)
	case CaseErr:
		e, ok := v.(value.Err)
		if !ok {
			return false
		}
		return pat.Payload == nil || match(pat.Payload, e.Message, b)
	default:
		return false
	}
}
