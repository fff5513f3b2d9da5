package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hferris/matchbook/internal/value"
)

func triangle(base, height int64) value.Record {
	return value.NewRecord("Triangle",
		value.F("base", value.Int(base)),
		value.F("height", value.Int(height)),
	)
}

func TestMatchLiteral(t *testing.T) {
	b, ok := Match(Lit(value.Str("hello")), value.Str("hello"))
	require.True(t, ok)
	assert.Empty(t, b)

	_, ok = Match(Lit(value.Str("hello")), value.Str("world"))
	assert.False(t, ok)
}

func TestMatchWildcard(t *testing.T) {
	for _, v := range []value.Value{value.Int(1), value.None{}, triangle(5, 10)} {
		b, ok := Match(Wildcard{}, v)
		require.True(t, ok)
		assert.Empty(t, b)
	}
}

func TestMatchBind(t *testing.T) {
	b, ok := Match(Var("x"), value.Int(42))
	require.True(t, ok)
	assert.Equal(t, int64(42), b.Int("x"))
}

func TestMatchAtBinding(t *testing.T) {
	// Bind succeeds only when the sub-pattern matches
	b, ok := Match(At("b", IntRange(5, 10)), value.Int(7))
	require.True(t, ok)
	assert.Equal(t, int64(7), b.Int("b"))

	_, ok = Match(At("b", IntRange(5, 10)), value.Int(12))
	assert.False(t, ok)
}

func TestMatchIntRange(t *testing.T) {
	tests := []struct {
		name string
		v    int64
		want bool
	}{
		{"below", 4, false},
		{"low bound inclusive", 5, true},
		{"inside", 7, true},
		{"high bound inclusive", 10, true},
		{"above", 11, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Match(IntRange(5, 10), value.Int(tt.v))
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestMatchCharRange(t *testing.T) {
	_, ok := Match(CharRange('a', 'd'), value.Char('c'))
	assert.True(t, ok)

	_, ok = Match(CharRange('a', 'd'), value.Char('e'))
	assert.False(t, ok)

	// Range kind must agree with subject kind
	_, ok = Match(CharRange('a', 'd'), value.Int(98))
	assert.False(t, ok)
}

func TestMatchTupleExact(t *testing.T) {
	tup := value.NewTuple(value.Char('a'), value.Char('b'), value.Char('c'))

	b, ok := Match(Exact(Var("x"), Var("y"), Var("z")), tup)
	require.True(t, ok)
	assert.Equal(t, 'a', b.Char("x"))
	assert.Equal(t, 'b', b.Char("y"))
	assert.Equal(t, 'c', b.Char("z"))

	// Arity must agree
	_, ok = Match(Exact(Var("x"), Var("y")), tup)
	assert.False(t, ok)
}

func TestMatchTupleRest(t *testing.T) {
	tup := value.NewTuple(value.Int(4), value.Int(5), value.Int(6), value.Int(7))

	pat := TuplePat{Elems: []Pattern{Var("first"), Var("last")}, RestAt: 1}
	b, ok := Match(pat, tup)
	require.True(t, ok)
	assert.Equal(t, int64(4), b.Int("first"))
	assert.Equal(t, int64(7), b.Int("last"))

	// Rest may absorb zero elements
	b, ok = Match(pat, value.NewTuple(value.Int(1), value.Int(2)))
	require.True(t, ok)
	assert.Equal(t, int64(1), b.Int("first"))
	assert.Equal(t, int64(2), b.Int("last"))

	// But the fixed elements must still be present
	_, ok = Match(pat, value.NewTuple(value.Int(1)))
	assert.False(t, ok)
}

func TestMatchTupleRestPrefixSuffix(t *testing.T) {
	tup := value.NewTuple(value.Int(1), value.Int(2), value.Int(3), value.Int(4), value.Int(5))

	// (a, b, .., z)
	pat := TuplePat{Elems: []Pattern{Var("a"), Var("b"), Var("z")}, RestAt: 2}
	b, ok := Match(pat, tup)
	require.True(t, ok)
	assert.Equal(t, int64(1), b.Int("a"))
	assert.Equal(t, int64(2), b.Int("b"))
	assert.Equal(t, int64(5), b.Int("z"))
}

func TestMatchRecordFull(t *testing.T) {
	pat := RecordPat{
		Name: "Triangle",
		Fields: []FieldPat{
			{Name: "base", Pat: Var("b")},
			{Name: "height", Pat: Var("h")},
		},
	}

	b, ok := Match(pat, triangle(5, 10))
	require.True(t, ok)
	assert.Equal(t, int64(5), b.Int("b"))
	assert.Equal(t, int64(10), b.Int("h"))
}

func TestMatchRecordLiteralFields(t *testing.T) {
	pat := RecordPat{
		Name: "Triangle",
		Fields: []FieldPat{
			{Name: "base", Pat: Lit(value.Int(5))},
			{Name: "height", Pat: Lit(value.Int(10))},
		},
	}

	_, ok := Match(pat, triangle(5, 10))
	assert.True(t, ok)

	_, ok = Match(pat, triangle(8, 10))
	assert.False(t, ok)
}

func TestMatchRecordPartial(t *testing.T) {
	screen := value.NewRecord("Screen",
		value.F("size", value.Int(10)),
		value.F("x", value.Int(0)),
		value.F("y", value.Int(0)),
		value.F("t", triangle(5, 10)),
	)

	partial := RecordPat{
		Name:   "Screen",
		Fields: []FieldPat{{Name: "size", Pat: Var("size")}},
		Rest:   true,
	}
	b, ok := Match(partial, screen)
	require.True(t, ok)
	assert.Equal(t, int64(10), b.Int("size"))

	// Without Rest, naming a subset of fields is a failure
	strict := RecordPat{
		Name:   "Screen",
		Fields: []FieldPat{{Name: "size", Pat: Var("size")}},
	}
	_, ok = Match(strict, screen)
	assert.False(t, ok)
}

func TestMatchRecordNameMismatch(t *testing.T) {
	pat := RecordPat{Name: "Square", Rest: true}
	_, ok := Match(pat, triangle(5, 10))
	assert.False(t, ok)
}

func TestMatchNestedRecord(t *testing.T) {
	screen := value.NewRecord("Screen",
		value.F("size", value.Int(10)),
		value.F("x", value.Int(0)),
		value.F("y", value.Int(0)),
		value.F("t", triangle(5, 10)),
	)

	pat := RecordPat{
		Name: "Screen",
		Fields: []FieldPat{
			{Name: "size", Pat: Lit(value.Int(10))},
			{Name: "x", Pat: Lit(value.Int(0))},
			{Name: "y", Pat: Lit(value.Int(0))},
			{Name: "t", Pat: RecordPat{
				Name: "Triangle",
				Fields: []FieldPat{
					{Name: "base", Pat: Var("base")},
					{Name: "height", Pat: Var("height")},
				},
			}},
		},
	}

	b, ok := Match(pat, screen)
	require.True(t, ok)
	assert.Equal(t, int64(5), b.Int("base"))
	assert.Equal(t, int64(10), b.Int("height"))
}

func TestMatchVariants(t *testing.T) {
	b, ok := Match(VariantPat{Case: CaseSome, Payload: Var("x")}, value.Some{Value: value.Int(5)})
	require.True(t, ok)
	assert.Equal(t, int64(5), b.Int("x"))

	_, ok = Match(VariantPat{Case: CaseSome, Payload: Var("x")}, value.None{})
	assert.False(t, ok)

	_, ok = Match(VariantPat{Case: CaseNone}, value.None{})
	assert.True(t, ok)

	b, ok = Match(VariantPat{Case: CaseOk, Payload: Var("v")}, value.Ok{Value: value.Int(1)})
	require.True(t, ok)
	assert.Equal(t, int64(1), b.Int("v"))

	b, ok = Match(VariantPat{Case: CaseErr, Payload: Var("msg")}, value.Err{Message: "boom"})
	require.True(t, ok)
	assert.Equal(t, "boom", b.Str("msg"))
}

func TestMatchOneOf(t *testing.T) {
	alt := OneOf{Alts: []Pattern{
		Lit(value.Str("hello")),
		Lit(value.Str("world")),
	}}

	_, ok := Match(alt, value.Str("world"))
	assert.True(t, ok)

	_, ok = Match(alt, value.Str("nope"))
	assert.False(t, ok)
}

func TestMatchOneOfDiscardsFailedAlternative(t *testing.T) {
	// The first alternative binds "a" before its literal element fails;
	// the winning wildcard alternative must not inherit that binding.
	alt := OneOf{Alts: []Pattern{
		Exact(Var("a"), Lit(value.Int(1))),
		Wildcard{},
	}}

	b, ok := Match(alt, value.NewTuple(value.Int(9), value.Int(2)))
	require.True(t, ok)
	assert.Nil(t, b.Value("a"), "binding from a failed alternative escaped")
	assert.Empty(t, b)
}

func TestMatchOneOfWinnerSuppliesBindings(t *testing.T) {
	alt := OneOf{Alts: []Pattern{
		Exact(Var("a"), Lit(value.Int(1))),
		Exact(Var("x"), Var("y")),
	}}

	b, ok := Match(alt, value.NewTuple(value.Int(9), value.Int(2)))
	require.True(t, ok)
	assert.Equal(t, int64(9), b.Int("x"))
	assert.Equal(t, int64(2), b.Int("y"))
	assert.Nil(t, b.Value("a"))
}

func TestMatchRecordDuplicateFieldNotCoverage(t *testing.T) {
	// Naming base twice does not stand in for naming height
	pat := RecordPat{
		Name: "Triangle",
		Fields: []FieldPat{
			{Name: "base", Pat: Lit(value.Int(5))},
			{Name: "base", Pat: Var("b")},
		},
	}
	_, ok := Match(pat, triangle(5, 10))
	assert.False(t, ok)
}

func TestMatchAllOrNothing(t *testing.T) {
	// First element binds, second fails: no bindings escape
	pat := Exact(Var("x"), Lit(value.Int(9)))
	b, ok := Match(pat, value.NewTuple(value.Int(1), value.Int(2)))
	assert.False(t, ok)
	assert.Nil(t, b)
}

func TestBindingsAccessors(t *testing.T) {
	b := Bindings{
		"n": value.Int(5),
		"c": value.Char('x'),
		"s": value.Str("hi"),
	}

	assert.Equal(t, int64(5), b.Int("n"))
	assert.Equal(t, 'x', b.Char("c"))
	assert.Equal(t, "hi", b.Str("s"))
	assert.Equal(t, value.Int(5), b.Value("n"))

	// Missing or mistyped names yield zero values
	assert.Equal(t, int64(0), b.Int("missing"))
	assert.Equal(t, int64(0), b.Int("c"))
	assert.Nil(t, b.Value("missing"))
}
