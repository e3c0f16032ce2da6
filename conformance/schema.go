// Package conformance loads YAML-described evaluation scenarios and
// checks them against the real evaluator (spec §8). Adapted from the
// teacher's conformance/{schema,loader,runner}.go three-file split,
// narrowed to this language's scope: an expression plus a variable
// binding set, not a whole MOO test suite with setup/teardown/verb
// blocks.
package conformance

// TestSuite is one YAML fixture file.
type TestSuite struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Tests       []TestCase `yaml:"tests"`
}

// TestCase is a single expression scenario: a decoded AST tree
// evaluated against Vars, compared against Expect. Ast holds the raw
// YAML node (a single-key mapping such as {add: {left: ..., right:
// ...}}); nodeFromYAML in runner.go turns it into an ast.Node.
type TestCase struct {
	Name   string         `yaml:"name"`
	Ast    any            `yaml:"ast"`
	Vars   map[string]any `yaml:"vars,omitempty"`
	Expect Expectation    `yaml:"expect"`
}

// Expectation describes the expected outcome of evaluating a TestCase.
// Exactly one of Value or Error should be set.
type Expectation struct {
	Value any    `yaml:"value,omitempty"`
	Error string `yaml:"error,omitempty"`
}
