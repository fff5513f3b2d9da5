package value

// Equal reports structural equality of two values.
// Records are equal only if name, field order, field names, and field
// values all agree; field order is part of a record's identity here.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case Str:
		bv, ok := b.(Str)
		return ok && av == bv
	case Int:
		bv, ok := b.(Int)
		return ok && av == bv
	case Char:
		bv, ok := b.(Char)
		return ok && av == bv
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Tuple:
		bv, ok := b.(Tuple)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case Record:
		bv, ok := b.(Record)
		if !ok || av.Name != bv.Name || len(av.Fields) != len(bv.Fields) {
			return false
		}
		for i := range av.Fields {
			if av.Fields[i].Name != bv.Fields[i].Name {
				return false
			}
			if !Equal(av.Fields[i].Value, bv.Fields[i].Value) {
				return false
			}
		}
		return true
	case Some:
		bv, ok := b.(Some)
		return ok && Equal(av.Value, bv.Value)
	case None:
		_, ok := b.(None)
		return ok
	case Ok:
		bv, ok := b.(Ok)
		return ok && Equal(av.Value, bv.Value)
	case Err:
		bv, ok := b.(Err)
		return ok && av.Message == bv.Message
	default:
		return false
	}
}
