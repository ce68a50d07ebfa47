package assertion

import (
	"fmt"
	"strings"
)

// Failure records the first assertion that did not hold in a
// test case. It owns copies of its operands, so it stays valid
// after the buffers the assertion was evaluated against change.
type Failure struct {
	// Kind is the failed assertion.
	Kind Kind `json:"kind" yaml:"kind"`

	// Args holds one operand for one-operand kinds and two for
	// the (not-)equal kinds.
	Args []Argument `json:"args" yaml:"args"`

	// File is the source file of the assertion call.
	File string `json:"file" yaml:"file"`

	// Line is the source line of the assertion call.
	Line int `json:"line" yaml:"line"`
}

// NewFailure builds a failure record from the first kind.Arity()
// arguments, cloning each of them.
func NewFailure(
	kind Kind,
	file string,
	line int,
	args ...Argument,
) Failure {
	n := kind.Arity()
	if n > len(args) {
		n = len(args)
	}

	owned := make([]Argument, n)
	for i := 0; i < n; i++ {
		owned[i] = args[i].Clone()
	}

	return Failure{
		Kind: kind,
		Args: owned,
		File: strings.Clone(file),
		Line: line,
	}
}

// Location renders "<file>:<line>:".
func (f Failure) Location() string {
	return fmt.Sprintf("%s:%d:", f.File, f.Line)
}

// Call renders the failing call from the operands' source texts,
// e.g. "AssertEqual(2 + 2, 6)".
func (f Failure) Call() string {
	sources := make([]string, len(f.Args))
	for i, a := range f.Args {
		sources[i] = a.Source
	}
	return fmt.Sprintf(
		"Assert%s(%s)",
		f.Kind.Suffix(), strings.Join(sources, ", "),
	)
}

// Detail describes the operand values that made the assertion
// fail, e.g. "4 != 6" or "0 is not true".
func (f Failure) Detail() string {
	v1, v2 := f.value(0), f.value(1)

	switch f.Kind {
	case Equal, StrEqual:
		return v1 + " != " + v2
	case NotEqual, StrNotEqual:
		return v1 + " == " + v2
	case True:
		return v1 + " is not true"
	case False:
		return v1 + " is not false"
	case Null:
		return v1 + " is not null"
	case NotNull:
		return v1 + " is null"
	default:
		return ""
	}
}

func (f Failure) value(i int) string {
	if i >= len(f.Args) {
		return ""
	}
	return f.Args[i].Value.Format()
}
