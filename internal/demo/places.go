package demo

import (
	"fmt"
	"io"

	"github.com/hferris/matchbook/internal/pattern"
	"github.com/hferris/matchbook/internal/value"
)

// runOptionMatch demonstrates exhaustive selection over an optional value.
func runOptionMatch(w io.Writer) error {
	return matchOption(w, value.Some{Value: value.Int(5)})
}

// matchOption prints the contained number or the absent-value message.
// The arm list covers the full Some/None variant set, so validation
// accepts it without a catch-all.
func matchOption(w io.Writer, opt value.Value) error {
	_, _, err := pattern.Select(opt, []pattern.Arm{
		{
			Pat: pattern.VariantPat{Case: pattern.CaseSome, Payload: pattern.Var("x")},
			Run: func(b pattern.Bindings) error {
				_, err := fmt.Fprintf(w, "number: %d\n", b.Int("x"))
				return err
			},
		},
		{
			Pat: pattern.VariantPat{Case: pattern.CaseNone},
			Run: func(b pattern.Bindings) error {
				_, err := fmt.Fprintln(w, "None")
				return err
			},
		},
	})
	return err
}

// runFallbackChain demonstrates conditional checks tried first-match-first:
// one test on an optional value, a fallback test on an unrelated outcome
// value, then a default branch.
func runFallbackChain(w io.Writer) error {
	myVal := value.Some{Value: value.Int(5)}
	age := value.Ok{Value: value.Int(5)}
	return describeAge(w, myVal, age)
}

func describeAge(w io.Writer, myVal, age value.Value) error {
	matched, err := pattern.Test(pattern.VariantPat{Case: pattern.CaseNone}, myVal,
		func(pattern.Bindings) error {
			_, err := fmt.Fprintln(w, "my_val was None")
			return err
		})
	if err != nil || matched {
		return err
	}

	matched, err = pattern.Test(pattern.VariantPat{Case: pattern.CaseOk, Payload: pattern.Var("age")}, age,
		func(b pattern.Bindings) error {
			if b.Int("age") > 20 {
				_, err := fmt.Fprintln(w, "age > 20")
				return err
			}
			_, err := fmt.Fprintln(w, "age <= 20")
			return err
		})
	if err != nil || matched {
		return err
	}

	_, err = fmt.Fprintln(w, "No conditions reached")
	return err
}

// runDrainLoop repeatedly extracts and removes the last character of a
// text buffer until the pop comes back empty.
func runDrainLoop(w io.Writer) error {
	return drainBuffer(w, "name")
}

func drainBuffer(w io.Writer, text string) error {
	buf := []rune(text)

	pop := func() value.Value {
		if len(buf) == 0 {
			return value.None{}
		}
		c := buf[len(buf)-1]
		buf = buf[:len(buf)-1]
		return value.Some{Value: value.Char(c)}
	}

	for {
		matched, err := pattern.Test(
			pattern.VariantPat{Case: pattern.CaseSome, Payload: pattern.Var("c")},
			pop(),
			func(b pattern.Bindings) error {
				_, err := fmt.Fprintf(w, "c: %c\n", b.Char("c"))
				return err
			})
		if err != nil {
			return err
		}
		if !matched {
			return nil
		}
	}
}

// runIndexedIteration decomposes each element of a character sequence into
// an index and a value at the same time.
func runIndexedIteration(w io.Writer) error {
	for i, c := range "name" {
		b, err := pattern.Destructure(
			pattern.Exact(pattern.Var("i"), pattern.Var("c")),
			value.NewTuple(value.Int(i), value.Char(c)),
		)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "i: %d c: %c\n", b.Int("i"), b.Char("c")); err != nil {
			return err
		}
	}
	return nil
}

// runTupleDestructure binds a fixed-arity tuple into independent variables.
func runTupleDestructure(w io.Writer) error {
	b, err := pattern.Destructure(
		pattern.Exact(pattern.Var("x"), pattern.Var("y"), pattern.Var("z")),
		value.NewTuple(value.Char('a'), value.Char('b'), value.Char('c')),
	)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "x: %c y: %c z: %c\n", b.Char("x"), b.Char("y"), b.Char("z"))
	return err
}

// runParamDestructure destructures a pair inside the callee rather than at
// the call site.
func runParamDestructure(w io.Writer) error {
	stuff := value.NewTuple(value.Char('a'), value.Char('b'))
	return printPair(w, stuff)
}

// printPair takes the pair apart as its first act, the function-parameter
// form of destructuring.
func printPair(w io.Writer, pair value.Tuple) error {
	b, err := pattern.Destructure(pattern.Exact(pattern.Var("a"), pattern.Var("b")), pair)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "printing_stuff(%c, %c)\n", b.Char("a"), b.Char("b"))
	return err
}
