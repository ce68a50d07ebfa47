// Package suite provides the test suite registry of the minitest
// runtime: named test cases in registration order, the
// per-case assertion evaluator, and the run statistics a report
// is rendered from.
package suite

import (
	"reflect"
	"runtime"
	"strings"

	"digital.vasic.minitest/pkg/assertion"
)

// Func is a test callback. It receives its own case so it can
// assert against it, and should return as soon as an assertion
// helper reports false.
type Func func(tc *Case)

// AssertionObserver is notified of every assertion evaluated
// against a case of the suite.
type AssertionObserver func(
	tc *Case, kind assertion.Kind, passed bool,
)

// Suite is an ordered, append-only collection of test cases plus
// the statistics of its last run. It is not safe for concurrent
// use.
type Suite struct {
	cases     []*Case
	completed bool
	elapsed   float64
	observer  AssertionObserver
}

// New creates an empty suite.
func New() *Suite {
	return &Suite{}
}

// Add registers fn under name at the end of the suite and returns
// the new case.
func (s *Suite) Add(fn Func, name string) *Case {
	tc := &Case{name: name, fn: fn, suite: s}
	s.cases = append(s.cases, tc)
	return tc
}

// AddFunc registers fn under the name of its function symbol
// without the package qualifier, e.g. "my_test" for main.my_test.
func (s *Suite) AddFunc(fn Func) *Case {
	return s.Add(fn, FuncName(fn))
}

// FuncName returns the unqualified symbol name of fn, or "" for a
// nil function.
func FuncName(fn Func) string {
	if fn == nil {
		return ""
	}

	rf := runtime.FuncForPC(reflect.ValueOf(fn).Pointer())
	if rf == nil {
		return ""
	}

	name := rf.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// Cases returns the registered cases in registration order.
func (s *Suite) Cases() []*Case {
	out := make([]*Case, len(s.cases))
	copy(out, s.cases)
	return out
}

// Count returns the number of registered cases.
func (s *Suite) Count() int {
	return len(s.cases)
}

// Completed reports whether a run has finished.
func (s *Suite) Completed() bool {
	return s.completed
}

// Elapsed returns the duration of the last run in seconds, or 0
// when the run was not timed.
func (s *Suite) Elapsed() float64 {
	return s.elapsed
}

// Failures returns the number of cases that failed in the last
// run.
func (s *Suite) Failures() int {
	n := 0
	for _, tc := range s.cases {
		if tc.failed {
			n++
		}
	}
	return n
}

// Complete marks the run as finished and records its duration.
func (s *Suite) Complete(elapsed float64) {
	s.elapsed = elapsed
	s.completed = true
}

// SetObserver installs the assertion observer; nil removes it.
func (s *Suite) SetObserver(o AssertionObserver) {
	s.observer = o
}
