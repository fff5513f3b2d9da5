package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hferris/matchbook/internal/demo"
	"github.com/hferris/matchbook/internal/testutil"
)

func fakeDemo(name string, lines ...string) demo.Demo {
	return demo.Demo{
		Name:    name,
		Summary: "test demo",
		Run: func(w io.Writer) error {
			for _, line := range lines {
				if _, err := fmt.Fprintln(w, line); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func TestRunStampsLines(t *testing.T) {
	r := New(WithTokenGenerator(testutil.NewFixedTokenGenerator("test-run-1")))

	transcript, err := r.Run(context.Background(), []demo.Demo{
		fakeDemo("first", "one", "two"),
		fakeDemo("second", "three"),
	})
	require.NoError(t, err)

	assert.Equal(t, "test-run-1", transcript.RunToken)
	require.Len(t, transcript.Events, 3)

	assert.Equal(t, Event{Seq: 1, Demo: "first", Line: "one"}, transcript.Events[0])
	assert.Equal(t, Event{Seq: 2, Demo: "first", Line: "two"}, transcript.Events[1])
	assert.Equal(t, Event{Seq: 3, Demo: "second", Line: "three"}, transcript.Events[2])
}

func TestRunSeqDenseAscending(t *testing.T) {
	r := New(WithTokenGenerator(testutil.NewFixedTokenGenerator("")))

	transcript, err := r.Run(context.Background(), demo.Registry())
	require.NoError(t, err)
	require.NotEmpty(t, transcript.Events)

	for i, e := range transcript.Events {
		assert.Equal(t, int64(i+1), e.Seq, "seq must be dense and ascending")
	}
}

func TestRunFullRegistryDeterministic(t *testing.T) {
	run := func() *Transcript {
		r := New(WithTokenGenerator(testutil.NewFixedTokenGenerator("fixed")))
		transcript, err := r.Run(context.Background(), demo.Registry())
		require.NoError(t, err)
		return transcript
	}

	first := run()
	second := run()
	assert.Equal(t, first, second)
	assert.Equal(t, first.Canonical(), second.Canonical())
}

func TestRunDemoErrorAborts(t *testing.T) {
	boom := errors.New("boom")
	r := New(WithTokenGenerator(testutil.NewFixedTokenGenerator("")))

	_, err := r.Run(context.Background(), []demo.Demo{
		{Name: "broken", Run: func(io.Writer) error { return boom }},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "broken")
}

func TestRunCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := New(WithTokenGenerator(testutil.NewFixedTokenGenerator("")))
	_, err := r.Run(ctx, []demo.Demo{fakeDemo("first", "one")})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestUUIDv7GeneratorUnique(t *testing.T) {
	g := UUIDv7Generator{}
	a := g.Generate()
	b := g.Generate()

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestTranscriptLines(t *testing.T) {
	transcript := &Transcript{
		RunToken: "tok",
		Events: []Event{
			{Seq: 1, Demo: "a", Line: "x"},
			{Seq: 2, Demo: "b", Line: "y"},
			{Seq: 3, Demo: "a", Line: "z"},
		},
	}

	assert.Equal(t, []string{"x", "y", "z"}, transcript.Lines())

	forA := transcript.ForDemo("a")
	require.Len(t, forA, 2)
	assert.Equal(t, "x", forA[0].Line)
	assert.Equal(t, "z", forA[1].Line)

	assert.Empty(t, transcript.ForDemo("missing"))
}

func TestTranscriptCanonical(t *testing.T) {
	transcript := &Transcript{
		Events: []Event{
			{Seq: 1, Demo: "a", Line: "one"},
			{Seq: 2, Demo: "a", Line: "two"},
		},
	}

	assert.Equal(t, []byte("one\ntwo\n"), transcript.Canonical())
}

func TestTranscriptCanonicalNormalizesNFC(t *testing.T) {
	// Decomposed e + combining acute normalizes to the precomposed form
	transcript := &Transcript{
		Events: []Event{{Seq: 1, Demo: "a", Line: "cafe\u0301"}},
	}

	assert.Equal(t, []byte("caf\u00e9\n"), transcript.Canonical())
}

func TestSplitLines(t *testing.T) {
	assert.Nil(t, splitLines(""))
	assert.Equal(t, []string{"a"}, splitLines("a\n"))
	assert.Equal(t, []string{"a", "b"}, splitLines("a\nb\n"))
	// Missing trailing newline still yields the final line
	assert.Equal(t, []string{"a", "b"}, splitLines("a\nb"))
}
