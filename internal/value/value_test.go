package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueSealed(t *testing.T) {
	// Verify all types implement Value (compile-time check via assignment)
	var _ Value = Null{}
	var _ Value = Str("test")
	var _ Value = Int(42)
	var _ Value = Char('x')
	var _ Value = Bool(true)
	var _ Value = Tuple{Str("a"), Int(1)}
	var _ Value = Record{Name: "R"}
	var _ Value = Some{Value: Int(5)}
	var _ Value = None{}
	var _ Value = Ok{Value: Int(5)}
	var _ Value = Err{Message: "boom"}
}

func TestRecordGet(t *testing.T) {
	rec := NewRecord("Triangle",
		F("base", Int(5)),
		F("height", Int(10)),
	)

	base, ok := rec.Get("base")
	require.True(t, ok)
	assert.Equal(t, Int(5), base)

	height, ok := rec.Get("height")
	require.True(t, ok)
	assert.Equal(t, Int(10), height)

	_, ok = rec.Get("width")
	assert.False(t, ok)
}

func TestRecordFieldOrderPreserved(t *testing.T) {
	rec := NewRecord("Screen",
		F("size", Int(10)),
		F("x", Int(0)),
		F("y", Int(0)),
	)

	names := make([]string, len(rec.Fields))
	for i, f := range rec.Fields {
		names[i] = f.Name
	}
	assert.Equal(t, []string{"size", "x", "y"}, names)
}

func TestRenderScalars(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"null", Null{}, "null"},
		{"str", Str("name"), "name"},
		{"int", Int(5), "5"},
		{"negative int", Int(-3), "-3"},
		{"char", Char('a'), "a"},
		{"bool true", Bool(true), "true"},
		{"bool false", Bool(false), "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.v))
		})
	}
}

func TestRenderComposites(t *testing.T) {
	tup := NewTuple(Int(4), Int(5), Int(6), Int(7))
	assert.Equal(t, "(4, 5, 6, 7)", Render(tup))

	rec := NewRecord("Triangle", F("base", Int(5)), F("height", Int(10)))
	assert.Equal(t, "Triangle{base: 5, height: 10}", Render(rec))

	assert.Equal(t, "Some(5)", Render(Some{Value: Int(5)}))
	assert.Equal(t, "None", Render(None{}))
	assert.Equal(t, "Ok(5)", Render(Ok{Value: Int(5)}))
	assert.Equal(t, "Err(boom)", Render(Err{Message: "boom"}))
}

func TestRenderNested(t *testing.T) {
	screen := NewRecord("Screen",
		F("size", Int(10)),
		F("t", NewRecord("Triangle", F("base", Int(5)), F("height", Int(10)))),
	)
	assert.Equal(t, "Screen{size: 10, t: Triangle{base: 5, height: 10}}", Render(screen))
}

func TestEqualScalars(t *testing.T) {
	assert.True(t, Equal(Int(5), Int(5)))
	assert.False(t, Equal(Int(5), Int(6)))
	assert.True(t, Equal(Char('a'), Char('a')))
	assert.True(t, Equal(Str("hi"), Str("hi")))
	assert.True(t, Equal(Null{}, Null{}))

	// Different kinds never compare equal, even when renders agree
	assert.False(t, Equal(Int(5), Str("5")))
	assert.False(t, Equal(Char('5'), Int(5)))
}

func TestEqualComposites(t *testing.T) {
	a := NewTuple(Int(1), Char('x'))
	b := NewTuple(Int(1), Char('x'))
	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, NewTuple(Int(1))))
	assert.False(t, Equal(a, NewTuple(Int(1), Char('y'))))

	r1 := NewRecord("Triangle", F("base", Int(5)), F("height", Int(10)))
	r2 := NewRecord("Triangle", F("base", Int(5)), F("height", Int(10)))
	assert.True(t, Equal(r1, r2))

	// Field order is part of record identity
	r3 := NewRecord("Triangle", F("height", Int(10)), F("base", Int(5)))
	assert.False(t, Equal(r1, r3))

	// Name is part of record identity
	r4 := NewRecord("Square", F("base", Int(5)), F("height", Int(10)))
	assert.False(t, Equal(r1, r4))
}

func TestEqualVariants(t *testing.T) {
	assert.True(t, Equal(Some{Value: Int(5)}, Some{Value: Int(5)}))
	assert.False(t, Equal(Some{Value: Int(5)}, Some{Value: Int(7)}))
	assert.False(t, Equal(Some{Value: Int(5)}, None{}))
	assert.True(t, Equal(None{}, None{}))
	assert.True(t, Equal(Ok{Value: Int(1)}, Ok{Value: Int(1)}))
	assert.False(t, Equal(Ok{Value: Int(1)}, Err{Message: "boom"}))
}
