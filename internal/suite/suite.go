// Package suite loads and runs acceptance suites: lists of expressions in AST
// notation, each with inputs the compiled automaton must accept or reject.
// Suites are written in YAML or TOML.
package suite

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/KromDaniel/thompson/internal/compiler"
	"github.com/KromDaniel/thompson/internal/sexpr"
	"github.com/KromDaniel/thompson/internal/simulate"
)

// ErrUnknownFormat is returned for suite files that are neither YAML nor TOML.
var ErrUnknownFormat = errors.New("unknown suite format")

// Format is the encoding of a suite file.
type Format string

const (
	YAML Format = "yaml"
	TOML Format = "toml"
)

// Suite is a named list of cases.
type Suite struct {
	Name  string `yaml:"name" toml:"name"`
	Cases []Case `yaml:"cases" toml:"cases"`
}

// Case is one expression with its expected verdicts.
type Case struct {
	Name   string   `yaml:"name" toml:"name"`
	Expr   string   `yaml:"expr" toml:"expr"`
	Accept []string `yaml:"accept" toml:"accept"`
	Reject []string `yaml:"reject" toml:"reject"`
}

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return "", fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
}

// Load reads and decodes the suite at path.
func Load(path string) (*Suite, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite: %w", err)
	}
	s, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// Decode parses data in the given format and validates the result.
func Decode(data []byte, format Format) (*Suite, error) {
	var s Suite
	switch format {
	case YAML:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("failed to decode yaml: %w", err)
		}
	case TOML:
		if err := toml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("failed to decode toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that every case has a name and an expression.
func (s *Suite) Validate() error {
	if len(s.Cases) == 0 {
		return fmt.Errorf("suite has no cases")
	}
	seen := make(map[string]bool, len(s.Cases))
	for i, c := range s.Cases {
		if c.Name == "" {
			return fmt.Errorf("case %d: name cannot be empty", i)
		}
		if seen[c.Name] {
			return fmt.Errorf("case %q: duplicate name", c.Name)
		}
		seen[c.Name] = true
		if strings.TrimSpace(c.Expr) == "" {
			return fmt.Errorf("case %q: expr cannot be empty", c.Name)
		}
	}
	return nil
}

// Failure is one input whose verdict differed from the expectation.
type Failure struct {
	Input string
	Want  bool
}

// Result is the outcome of one case.
type Result struct {
	Case     string
	Err      error // expression did not parse
	Checked  int
	Failures []Failure
}

// Passed reports whether the case parsed and every verdict matched.
func (r Result) Passed() bool { return r.Err == nil && len(r.Failures) == 0 }

// Report is the outcome of a whole suite.
type Report struct {
	Suite   string
	Results []Result
}

// Passed reports whether every case passed.
func (r *Report) Passed() bool {
	for _, res := range r.Results {
		if !res.Passed() {
			return false
		}
	}
	return true
}

// Failed returns the results that did not pass.
func (r *Report) Failed() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.Passed() {
			out = append(out, res)
		}
	}
	return out
}

// Run compiles every case and checks its inputs. A case whose expression does not
// parse is recorded as failed; the remaining cases still run.
func Run(s *Suite, logger *compiler.Logger) *Report {
	logger.Section("Suite " + s.Name)
	comp := compiler.New(compiler.Config{})
	comp.SetLogger(logger)

	report := &Report{Suite: s.Name}
	for _, c := range s.Cases {
		res := Result{Case: c.Name}
		node, err := sexpr.Parse(c.Expr)
		if err != nil {
			res.Err = err
			logger.Log("case %s: %v", c.Name, err)
			report.Results = append(report.Results, res)
			continue
		}

		n := comp.Compile(node)
		check := func(in string, want bool) {
			res.Checked++
			if simulate.AcceptsString(n, in) != want {
				res.Failures = append(res.Failures, Failure{Input: in, Want: want})
			}
		}
		for _, in := range c.Accept {
			check(in, true)
		}
		for _, in := range c.Reject {
			check(in, false)
		}

		logger.Log("case %s: %d checked, %d failed", c.Name, res.Checked, len(res.Failures))
		report.Results = append(report.Results, res)
	}
	return report
}
