package value

// Value is a sealed interface representing the demo value model.
// Only the types in this package implement it. NO floats - numbers are
// always Int (int64) so rendering is deterministic.
type Value interface {
	value() // Sealed - only these types implement it
}

// Null represents the absence of a value.
// Using an explicit type ensures all Values satisfy the sealed interface.
type Null struct{}

func (Null) value() {}

// Str represents a text value.
type Str string

func (Str) value() {}

// Int represents an integer value. Always int64, never float64.
type Int int64

func (Int) value() {}

// Char represents a single character value.
type Char rune

func (Char) value() {}

// Bool represents a boolean value.
type Bool bool

func (Bool) value() {}

// Tuple represents a fixed-arity sequence of values.
type Tuple []Value

func (Tuple) value() {}

// Field is a named record field. Records hold ordered Field slices rather
// than maps so iteration order is deterministic without sorting.
type Field struct {
	Name  string
	Value Value
}

// Record represents a structured aggregate with named fields.
type Record struct {
	Name   string
	Fields []Field
}

func (Record) value() {}

// Get returns the named field's value and whether it exists.
func (r Record) Get(name string) (Value, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Some is the present case of the Option variant set.
type Some struct {
	Value Value
}

func (Some) value() {}

// None is the absent case of the Option variant set.
type None struct{}

func (None) value() {}

// Ok is the success case of the Outcome variant set.
type Ok struct {
	Value Value
}

func (Ok) value() {}

// Err is the failure case of the Outcome variant set.
type Err struct {
	Message Str
}

func (Err) value() {}

// NewRecord creates a Record from ordered fields.
// Example: NewRecord("Triangle", F("base", Int(5)), F("height", Int(10)))
func NewRecord(name string, fields ...Field) Record {
	return Record{Name: name, Fields: fields}
}

// F is a shorthand Field constructor for ergonomic record literals.
func F(name string, v Value) Field {
	return Field{Name: name, Value: v}
}

// NewTuple creates a Tuple from values.
func NewTuple(vals ...Value) Tuple {
	return Tuple(vals)
}
