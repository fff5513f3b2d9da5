package demo

import (
	"fmt"
	"io"

	"github.com/hferris/matchbook/internal/pattern"
	"github.com/hferris/matchbook/internal/value"
)

// sampleTriangle is the fixed shape used by the record demos.
func sampleTriangle() value.Record {
	return value.NewRecord("Triangle",
		value.F("base", value.Int(5)),
		value.F("height", value.Int(10)),
	)
}

// sampleScreen nests the triangle inside a larger record.
func sampleScreen() value.Record {
	return value.NewRecord("Screen",
		value.F("size", value.Int(10)),
		value.F("x", value.Int(0)),
		value.F("y", value.Int(0)),
		value.F("t", sampleTriangle()),
	)
}

// runLiteralMatch matches a string against literal arms with a catch-all.
func runLiteralMatch(w io.Writer) error {
	return matchGreeting(w, value.Str("hello"))
}

func matchGreeting(w io.Writer, subject value.Value) error {
	found := func(word string) func(pattern.Bindings) error {
		return func(pattern.Bindings) error {
			_, err := fmt.Fprintf(w, "'%s' found\n", word)
			return err
		}
	}
	_, _, err := pattern.Select(subject, []pattern.Arm{
		{Pat: pattern.Lit(value.Str("hello")), Run: found("hello")},
		{Pat: pattern.Lit(value.Str("world")), Run: found("world")},
		{Pat: pattern.Lit(value.Str("hey")), Run: found("hey")},
		{Pat: pattern.Wildcard{}, Run: func(pattern.Bindings) error {
			_, err := fmt.Fprintln(w, "unknown value found")
			return err
		}},
	})
	return err
}

// runAlternation folds the literal arms into one arm of alternatives,
// binding the subject so the winning word can be printed.
func runAlternation(w io.Writer) error {
	subject := value.Str("hello")
	_, _, err := pattern.Select(subject, []pattern.Arm{
		{
			Pat: pattern.At("x", pattern.OneOf{Alts: []pattern.Pattern{
				pattern.Lit(value.Str("hello")),
				pattern.Lit(value.Str("world")),
				pattern.Lit(value.Str("hey")),
			}}),
			Run: func(b pattern.Bindings) error {
				_, err := fmt.Fprintf(w, "'%s' found\n", b.Str("x"))
				return err
			},
		},
		{Pat: pattern.Wildcard{}, Run: func(pattern.Bindings) error {
			_, err := fmt.Fprintln(w, "unknown value found")
			return err
		}},
	})
	return err
}

// runCharRange selects by inclusive character ranges.
func runCharRange(w io.Writer) error {
	return matchCharBand(w, value.Char('c'))
}

func matchCharBand(w io.Writer, subject value.Value) error {
	say := func(line string) func(pattern.Bindings) error {
		return func(pattern.Bindings) error {
			_, err := fmt.Fprintln(w, line)
			return err
		}
	}
	_, _, err := pattern.Select(subject, []pattern.Arm{
		{Pat: pattern.CharRange('a', 'd'), Run: say("a-d")},
		{Pat: pattern.CharRange('e', 'h'), Run: say("e-h")},
		{Pat: pattern.Wildcard{}, Run: say("unknown")},
	})
	return err
}

// runRecordDestructure binds record fields to fresh variables by name.
func runRecordDestructure(w io.Writer) error {
	b, err := pattern.Destructure(pattern.RecordPat{
		Name: "Triangle",
		Fields: []pattern.FieldPat{
			{Name: "base", Pat: pattern.Var("b")},
			{Name: "height", Pat: pattern.Var("h")},
		},
	}, sampleTriangle())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "base: %d height: %d\n", b.Int("b"), b.Int("h"))
	return err
}

// runRecordMatch selects over field-value combinations in listed order.
func runRecordMatch(w io.Writer) error {
	return matchTriangle(w, sampleTriangle())
}

func matchTriangle(w io.Writer, subject value.Value) error {
	exactly := func(base, height int64) pattern.RecordPat {
		return pattern.RecordPat{
			Name: "Triangle",
			Fields: []pattern.FieldPat{
				{Name: "base", Pat: pattern.Lit(value.Int(base))},
				{Name: "height", Pat: pattern.Lit(value.Int(height))},
			},
		}
	}
	_, _, err := pattern.Select(subject, []pattern.Arm{
		{Pat: exactly(12, 15), Run: func(pattern.Bindings) error {
			_, err := fmt.Fprintln(w, "12 15 triangle")
			return err
		}},
		{Pat: exactly(5, 10), Run: func(pattern.Bindings) error {
			_, err := fmt.Fprintln(w, "5 10 triangle")
			return err
		}},
		{
			Pat: pattern.RecordPat{
				Name: "Triangle",
				Fields: []pattern.FieldPat{
					{Name: "base", Pat: pattern.Lit(value.Int(8))},
					{Name: "height", Pat: pattern.Var("height")},
				},
			},
			Run: func(b pattern.Bindings) error {
				_, err := fmt.Fprintf(w, "8 %d triangle\n", b.Int("height"))
				return err
			},
		},
		{Pat: pattern.Wildcard{}, Run: func(pattern.Bindings) error {
			_, err := fmt.Fprintln(w, "other triangle")
			return err
		}},
	})
	return err
}

// runNestedMatch matches outer and inner record fields in a single step,
// avoiding a nested selection.
func runNestedMatch(w io.Writer) error {
	return matchScreen(w, sampleScreen())
}

func matchScreen(w io.Writer, subject value.Value) error {
	_, _, err := pattern.Select(subject, []pattern.Arm{
		{
			Pat: pattern.RecordPat{
				Name: "Screen",
				Fields: []pattern.FieldPat{
					{Name: "size", Pat: pattern.Lit(value.Int(10))},
					{Name: "x", Pat: pattern.Lit(value.Int(0))},
					{Name: "y", Pat: pattern.Lit(value.Int(0))},
					{Name: "t", Pat: pattern.RecordPat{
						Name: "Triangle",
						Fields: []pattern.FieldPat{
							{Name: "base", Pat: pattern.Var("base")},
							{Name: "height", Pat: pattern.Var("height")},
						},
					}},
				},
			},
			Run: func(b pattern.Bindings) error {
				_, err := fmt.Fprintf(w, "matching screen found %d %d\n", b.Int("base"), b.Int("height"))
				return err
			},
		},
		{Pat: pattern.Wildcard{}, Run: func(pattern.Bindings) error {
			_, err := fmt.Fprintln(w, "no matching screen found")
			return err
		}},
	})
	return err
}

// runWildcardDiscard binds a pair, then rebinds with the placeholder
// discarding the first element. The earlier x stays in scope.
func runWildcardDiscard(w io.Writer) error {
	b, err := pattern.Destructure(
		pattern.Exact(pattern.Var("x"), pattern.Var("y")),
		value.NewTuple(value.Int(4), value.Int(5)),
	)
	if err != nil {
		return err
	}
	x, y := b.Int("x"), b.Int("y")
	if _, err := fmt.Fprintf(w, "%d %d\n", x, y); err != nil {
		return err
	}

	b, err = pattern.Destructure(
		pattern.Exact(pattern.Wildcard{}, pattern.Var("y")),
		value.NewTuple(value.Int(3), value.Int(2)),
	)
	if err != nil {
		return err
	}
	y = b.Int("y")
	_, err = fmt.Fprintf(w, "%d %d\n", x, y)
	return err
}

// runJointOptions matches a pair of optional values jointly: the arm
// applies only if every component satisfies its sub-pattern.
func runJointOptions(w io.Writer) error {
	x := value.Some{Value: value.Int(5)}
	y := value.Some{Value: value.Int(7)}
	return matchOptionPair(w, value.NewTuple(x, y))
}

func matchOptionPair(w io.Writer, subject value.Value) error {
	_, _, err := pattern.Select(subject, []pattern.Arm{
		{
			Pat: pattern.Exact(
				pattern.VariantPat{Case: pattern.CaseSome, Payload: pattern.Wildcard{}},
				pattern.VariantPat{Case: pattern.CaseSome, Payload: pattern.Wildcard{}},
			),
			Run: func(pattern.Bindings) error {
				_, err := fmt.Fprintln(w, "both x and y are Some")
				return err
			},
		},
		{Pat: pattern.Wildcard{}, Run: func(pattern.Bindings) error {
			_, err := fmt.Fprintln(w, "either x or y is None")
			return err
		}},
	})
	return err
}

// runPartialRecord binds one field and ignores the rest of the record.
func runPartialRecord(w io.Writer) error {
	_, _, err := pattern.Select(sampleScreen(), []pattern.Arm{
		{
			Pat: pattern.RecordPat{
				Name:   "Screen",
				Fields: []pattern.FieldPat{{Name: "size", Pat: pattern.Var("size")}},
				Rest:   true,
			},
			Run: func(b pattern.Bindings) error {
				_, err := fmt.Fprintf(w, "size is %d\n", b.Int("size"))
				return err
			},
		},
	})
	return err
}

// runFirstAndLast extracts the ends of a 4-tuple, skipping the middle with
// a rest segment. A pattern carries at most one rest position, which is
// what keeps the skipped span unambiguous.
func runFirstAndLast(w io.Writer) error {
	_, _, err := pattern.Select(
		value.NewTuple(value.Int(4), value.Int(5), value.Int(6), value.Int(7)),
		[]pattern.Arm{
			{
				Pat: pattern.TuplePat{
					Elems:  []pattern.Pattern{pattern.Var("first"), pattern.Var("last")},
					RestAt: 1,
				},
				Run: func(b pattern.Bindings) error {
					_, err := fmt.Fprintf(w, "vals are %d %d\n", b.Int("first"), b.Int("last"))
					return err
				},
			},
		})
	return err
}

// runGuardedMatch attaches a runtime predicate to an arm. The guard runs
// only after the structural pattern matches; if it fails, evaluation falls
// through to the next arm.
func runGuardedMatch(w io.Writer) error {
	return matchParity(w, value.Some{Value: value.Int(5)})
}

func matchParity(w io.Writer, subject value.Value) error {
	_, _, err := pattern.Select(subject, []pattern.Arm{
		{
			Pat:  pattern.VariantPat{Case: pattern.CaseSome, Payload: pattern.Var("a")},
			When: func(b pattern.Bindings) bool { return b.Int("a")%2 == 1 },
			Run: func(pattern.Bindings) error {
				_, err := fmt.Fprintln(w, "Some x is odd")
				return err
			},
		},
		{
			Pat: pattern.VariantPat{Case: pattern.CaseSome, Payload: pattern.Wildcard{}},
			Run: func(pattern.Bindings) error {
				_, err := fmt.Fprintln(w, "Some x is even")
				return err
			},
		},
		{
			Pat: pattern.VariantPat{Case: pattern.CaseNone},
			Run: func(pattern.Bindings) error {
				_, err := fmt.Fprintln(w, "None")
				return err
			},
		},
	})
	return err
}

// runRangeBinding binds a field and range-checks it in one arm: the arm
// matches only when base falls in 5..=10, and the matched base is usable
// in the arm body under its own name.
func runRangeBinding(w io.Writer) error {
	return matchBaseRange(w, sampleTriangle())
}

func matchBaseRange(w io.Writer, subject value.Value) error {
	_, _, err := pattern.Select(subject, []pattern.Arm{
		{
			Pat: pattern.RecordPat{
				Name: "Triangle",
				Fields: []pattern.FieldPat{
					{Name: "base", Pat: pattern.At("b", pattern.IntRange(5, 10))},
					{Name: "height", Pat: pattern.Var("h")},
				},
			},
			Run: func(b pattern.Bindings) error {
				_, err := fmt.Fprintf(w, "base: %d height: %d\n", b.Int("b"), b.Int("h"))
				return err
			},
		},
		{Pat: pattern.Wildcard{}, Run: func(pattern.Bindings) error {
			_, err := fmt.Fprintln(w, "no triangle found")
			return err
		}},
	})
	return err
}
