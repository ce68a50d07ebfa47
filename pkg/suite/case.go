package suite

import (
	"runtime"

	"digital.vasic.minitest/pkg/assertion"
)

// Case is a named test wrapping one callback. It holds at most one
// failure per run: the first assertion that does not hold.
type Case struct {
	name    string
	fn      Func
	failed  bool
	failure *assertion.Failure
	suite   *Suite
}

// Name returns the registered name.
func (c *Case) Name() string {
	return c.name
}

// Failed reports whether an assertion failed during the last run.
func (c *Case) Failed() bool {
	return c.failed
}

// Failure returns the recorded failure, if any.
func (c *Case) Failure() (assertion.Failure, bool) {
	if c.failure == nil {
		return assertion.Failure{}, false
	}
	return *c.failure, true
}

// Run clears the state of any previous run and invokes the
// callback once. A nil callback passes.
func (c *Case) Run() {
	c.failed = false
	c.failure = nil
	if c.fn != nil {
		c.fn(c)
	}
}

// Assert evaluates an assertion of the given kind. When it does
// not hold and the case has not failed yet, the case records a
// failure owning copies of the operands. One-operand kinds ignore
// a2. The result is returned so the caller can stop the test.
func (c *Case) Assert(
	kind assertion.Kind,
	a1, a2 assertion.Argument,
	file string,
	line int,
) bool {
	passed := assertion.Check(kind, a1.Value, a2.Value)

	if !passed && !c.failed {
		f := assertion.NewFailure(kind, file, line, a1, a2)
		c.failure = &f
		c.failed = true
	}

	if c.suite != nil && c.suite.observer != nil {
		c.suite.observer(c, kind, passed)
	}
	return passed
}

// assertFromCaller runs Assert with the location of the code that
// called the exported helper.
func (c *Case) assertFromCaller(
	kind assertion.Kind,
	a1, a2 assertion.Argument,
) bool {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		file, line = "???", 0
	}
	return c.Assert(kind, a1, a2, file, line)
}

// Equal asserts v1 == v2. e1 and e2 are the operand expressions
// as written.
func (c *Case) Equal(e1 string, v1 int64, e2 string, v2 int64) bool {
	return c.assertFromCaller(assertion.Equal,
		assertion.Arg(e1, assertion.Int(v1)),
		assertion.Arg(e2, assertion.Int(v2)),
	)
}

// NotEqual asserts v1 != v2.
func (c *Case) NotEqual(e1 string, v1 int64, e2 string, v2 int64) bool {
	return c.assertFromCaller(assertion.NotEqual,
		assertion.Arg(e1, assertion.Int(v1)),
		assertion.Arg(e2, assertion.Int(v2)),
	)
}

// StrEqual asserts that s1 and s2 are byte-wise identical.
func (c *Case) StrEqual(e1, s1, e2, s2 string) bool {
	return c.assertFromCaller(assertion.StrEqual,
		assertion.Arg(e1, assertion.Text(s1)),
		assertion.Arg(e2, assertion.Text(s2)),
	)
}

// StrNotEqual asserts that s1 and s2 differ.
func (c *Case) StrNotEqual(e1, s1, e2, s2 string) bool {
	return c.assertFromCaller(assertion.StrNotEqual,
		assertion.Arg(e1, assertion.Text(s1)),
		assertion.Arg(e2, assertion.Text(s2)),
	)
}

// BytesEqual asserts that two NUL-terminated buffers hold the same
// text.
func (c *Case) BytesEqual(e1 string, b1 []byte, e2 string, b2 []byte) bool {
	return c.assertFromCaller(assertion.StrEqual,
		assertion.Arg(e1, assertion.Bytes(b1)),
		assertion.Arg(e2, assertion.Bytes(b2)),
	)
}

// BytesNotEqual asserts that two NUL-terminated buffers hold
// different texts.
func (c *Case) BytesNotEqual(e1 string, b1 []byte, e2 string, b2 []byte) bool {
	return c.assertFromCaller(assertion.StrNotEqual,
		assertion.Arg(e1, assertion.Bytes(b1)),
		assertion.Arg(e2, assertion.Bytes(b2)),
	)
}

// True asserts that cond holds. A failure reports the value as 0.
func (c *Case) True(expr string, cond bool) bool {
	return c.assertFromCaller(assertion.True,
		assertion.Arg(expr, assertion.Int(boolInt(cond))),
		assertion.Argument{},
	)
}

// False asserts that cond does not hold.
func (c *Case) False(expr string, cond bool) bool {
	return c.assertFromCaller(assertion.False,
		assertion.Arg(expr, assertion.Int(boolInt(cond))),
		assertion.Argument{},
	)
}

// TrueInt asserts that v is non-zero.
func (c *Case) TrueInt(expr string, v int64) bool {
	return c.assertFromCaller(assertion.True,
		assertion.Arg(expr, assertion.Int(v)),
		assertion.Argument{},
	)
}

// FalseInt asserts that v is zero.
func (c *Case) FalseInt(expr string, v int64) bool {
	return c.assertFromCaller(assertion.False,
		assertion.Arg(expr, assertion.Int(v)),
		assertion.Argument{},
	)
}

// Null asserts that p is nil.
func (c *Case) Null(expr string, p any) bool {
	return c.assertFromCaller(assertion.Null,
		assertion.Arg(expr, assertion.Pointer(p)),
		assertion.Argument{},
	)
}

// NotNull asserts that p is not nil.
func (c *Case) NotNull(expr string, p any) bool {
	return c.assertFromCaller(assertion.NotNull,
		assertion.Arg(expr, assertion.Pointer(p)),
		assertion.Argument{},
	)
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
