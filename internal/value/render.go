package value

import (
	"fmt"
	"strings"
)

// Render produces the display form of a value, the form the demos print.
// Scalars render bare (Int(5) -> "5", Char('a') -> "a", Str("hi") -> "hi")
// so they can be interpolated directly into output lines. Composites render
// with their structure visible.
func Render(v Value) string {
	switch val := v.(type) {
	case nil:
		return "<nil>"
	case Null:
		return "null"
	case Str:
		return string(val)
	case Int:
		return fmt.Sprintf("%d", int64(val))
	case Char:
		return string(rune(val))
	case Bool:
		if val {
			return "true"
		}
		return "false"
	case Tuple:
		parts := make([]string, len(val))
		for i, elem := range val {
			parts[i] = Render(elem)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case Record:
		parts := make([]string, len(val.Fields))
		for i, f := range val.Fields {
			parts[i] = f.Name + ": " + Render(f.Value)
		}
		return val.Name + "{" + strings.Join(parts, ", ") + "}"
	case Some:
		return "Some(" + Render(val.Value) + ")"
	case None:
		return "None"
	case Ok:
		return "Ok(" + Render(val.Value) + ")"
	case Err:
		return "Err(" + Render(val.Message) + ")"
	default:
		// Unreachable for sealed Value; kept so a new variant fails loudly.
		return fmt.Sprintf("<unknown %T>", v)
	}
}
