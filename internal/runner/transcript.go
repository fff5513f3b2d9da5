package runner

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Event is one printed line of a run, stamped with its position.
type Event struct {
	Seq  int64  `json:"seq"`
	Demo string `json:"demo"`
	Line string `json:"line"`
}

// Transcript is the complete recorded output of one run.
type Transcript struct {
	RunToken string  `json:"run_token"`
	Events   []Event `json:"events"`
}

// Lines returns the printed lines in order, without seq stamps.
func (t *Transcript) Lines() []string {
	lines := make([]string, len(t.Events))
	for i, e := range t.Events {
		lines[i] = e.Line
	}
	return lines
}

// ForDemo returns the events belonging to one demo, in order.
func (t *Transcript) ForDemo(name string) []Event {
	var out []Event
	for _, e := range t.Events {
		if e.Demo == name {
			out = append(out, e)
		}
	}
	return out
}

// Canonical returns the byte form used for golden comparison: every line
// NFC-normalized, newline-joined, with a trailing newline.
//
// NFC normalization keeps the comparison stable when equivalent Unicode
// sequences render the same text differently.
func (t *Transcript) Canonical() []byte {
	var b strings.Builder
	for _, e := range t.Events {
		b.WriteString(norm.NFC.String(e.Line))
		b.WriteByte('\n')
	}
	return []byte(b.String())
}
