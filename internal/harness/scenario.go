package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hferris/matchbook/internal/demo"
)

// Scenario defines a conformance test scenario.
// Scenarios run a selection of demos and assert on the transcript.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Demos lists registry names to run, in registry order.
	// Empty means the full registry.
	Demos []string `yaml:"demos,omitempty"`

	// RunToken is an optional fixed run token for deterministic tests.
	// If empty, defaults to "test-run-default" for golden file comparison.
	RunToken string `yaml:"run_token,omitempty"`

	// Assertions validate the transcript.
	// Supported types: output_contains, output_order, line_count, output_exact
	Assertions []Assertion `yaml:"assertions"`
}

// Assertion validates the transcript of a scenario run.
type Assertion struct {
	// Type specifies the assertion type:
	// - "output_contains": Check a line appears in the transcript
	// - "output_order": Check lines appear in order (gaps allowed)
	// - "line_count": Check exact printed line count
	// - "output_exact": Check the full transcript line-for-line
	Type string `yaml:"type"`

	// Line is the expected line (used by output_contains).
	Line string `yaml:"line,omitempty"`

	// Lines are the expected lines (used by output_order and output_exact).
	Lines []string `yaml:"lines,omitempty"`

	// Demo restricts line_count to a single demo's output.
	// Empty counts the whole transcript.
	Demo string `yaml:"demo,omitempty"`

	// Count is the expected number of lines (used by line_count).
	Count int `yaml:"count,omitempty"`
}

// Assertion type constants.
const (
	AssertOutputContains = "output_contains"
	AssertOutputOrder    = "output_order"
	AssertLineCount      = "line_count"
	AssertOutputExact    = "output_exact"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "assertion:" vs "assertions:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	for _, name := range s.Demos {
		if _, ok := demo.Lookup(name); !ok {
			return fmt.Errorf("unknown demo %q", name)
		}
	}

	for i, a := range s.Assertions {
		switch a.Type {
		case AssertOutputContains:
			if a.Line == "" {
				return fmt.Errorf("assertion %d: output_contains requires line", i)
			}
		case AssertOutputOrder:
			if len(a.Lines) < 2 {
				return fmt.Errorf("assertion %d: output_order requires at least two lines", i)
			}
		case AssertLineCount:
			if a.Count < 0 {
				return fmt.Errorf("assertion %d: line_count requires a non-negative count", i)
			}
			if a.Demo != "" {
				if _, ok := demo.Lookup(a.Demo); !ok {
					return fmt.Errorf("assertion %d: unknown demo %q", i, a.Demo)
				}
			}
		case AssertOutputExact:
			if len(a.Lines) == 0 {
				return fmt.Errorf("assertion %d: output_exact requires lines", i)
			}
		case "":
			return fmt.Errorf("assertion %d: type is required", i)
		default:
			return fmt.Errorf("assertion %d: unknown type %q", i, a.Type)
		}
	}

	return nil
}
