package suite

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.minitest/pkg/assertion"
)

func runOne(fn Func) *Case {
	s := New()
	tc := s.Add(fn, "case")
	tc.Run()
	return tc
}

func TestCase_NoAssertions_Passes(t *testing.T) {
	tc := runOne(func(*Case) {})

	assert.False(t, tc.Failed())
	_, ok := tc.Failure()
	assert.False(t, ok)
}

func TestCase_NilCallback_Passes(t *testing.T) {
	tc := runOne(nil)
	assert.False(t, tc.Failed())
}

func TestCase_Equal_RecordsLocation(t *testing.T) {
	var wantLine int
	tc := runOne(func(tc *Case) {
		_, _, wantLine, _ = runtime.Caller(0)
		tc.Equal("2 + 2", 2+2, "6", 6)
	})

	require.True(t, tc.Failed())
	f, ok := tc.Failure()
	require.True(t, ok)
	assert.Equal(t, assertion.Equal, f.Kind)
	assert.True(t, strings.HasSuffix(f.File, "case_test.go"), f.File)
	assert.Equal(t, wantLine+1, f.Line)
	assert.Equal(t, "AssertEqual(2 + 2, 6)", f.Call())
	assert.Equal(t, "4 != 6", f.Detail())
}

func TestCase_FailFast_StopsCallback(t *testing.T) {
	after := 0
	tc := runOne(func(tc *Case) {
		if !tc.Equal("1", 1, "2", 2) {
			return
		}
		after++
	})

	assert.True(t, tc.Failed())
	assert.Equal(t, 0, after)
}

func TestCase_FirstFailureWins(t *testing.T) {
	tc := runOne(func(tc *Case) {
		tc.TrueInt("0", 0)
		tc.Equal("1", 1, "2", 2)
	})

	f, ok := tc.Failure()
	require.True(t, ok)
	assert.Equal(t, assertion.True, f.Kind)
	assert.Equal(t, "0 is not true", f.Detail())
}

func TestCase_Assert_ReturnsResult(t *testing.T) {
	s := New()
	tc := s.Add(nil, "direct")

	ok := tc.Assert(assertion.NotEqual,
		assertion.Arg("-1", assertion.Int(-1)),
		assertion.Arg("1", assertion.Int(1)),
		"file.go", 7,
	)
	assert.True(t, ok)
	assert.False(t, tc.Failed())

	ok = tc.Assert(assertion.False,
		assertion.Arg("100", assertion.Int(100)),
		assertion.Argument{},
		"file.go", 8,
	)
	assert.False(t, ok)

	f, _ := tc.Failure()
	assert.Equal(t, "file.go", f.File)
	assert.Equal(t, 8, f.Line)
	assert.Len(t, f.Args, 1)
	assert.Equal(t, "100 is not false", f.Detail())
}

func TestCase_Helpers(t *testing.T) {
	x := 3
	tests := []struct {
		name   string
		fn     Func
		kind   assertion.Kind
		call   string
		detail string
	}{
		{
			"not equal",
			func(tc *Case) { tc.NotEqual("x", 3, "3", 3) },
			assertion.NotEqual, "AssertNotEqual(x, 3)", "3 == 3",
		},
		{
			"str equal",
			func(tc *Case) { tc.StrEqual("a", "wish", `"fish"`, "fish") },
			assertion.StrEqual, `AssertStrEqual(a, "fish")`, "wish != fish",
		},
		{
			"str not equal",
			func(tc *Case) { tc.StrNotEqual("a", "x", "b", "x") },
			assertion.StrNotEqual, "AssertStrNotEqual(a, b)", "x == x",
		},
		{
			"bytes not equal",
			func(tc *Case) {
				tc.BytesNotEqual("a", []byte("x\x00y"), "b", []byte("x"))
			},
			assertion.StrNotEqual, "AssertStrNotEqual(a, b)", "x == x",
		},
		{
			"true",
			func(tc *Case) { tc.True("1 > 2", 1 > x) },
			assertion.True, "AssertTrue(1 > 2)", "0 is not true",
		},
		{
			"false",
			func(tc *Case) { tc.False("x == 3", x == 3) },
			assertion.False, "AssertFalse(x == 3)", "1 is not false",
		},
		{
			"false int",
			func(tc *Case) { tc.FalseInt("100", 100) },
			assertion.False, "AssertFalse(100)", "100 is not false",
		},
		{
			"not null",
			func(tc *Case) { tc.NotNull("p", (*int)(nil)) },
			assertion.NotNull, "AssertNotNull(p)", "0x0 is null",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := runOne(tt.fn)
			require.True(t, tc.Failed())
			f, _ := tc.Failure()
			assert.Equal(t, tt.kind, f.Kind)
			assert.Equal(t, tt.call, f.Call())
			assert.Equal(t, tt.detail, f.Detail())
		})
	}
}

func TestCase_Null_ReportsAddress(t *testing.T) {
	tc := runOne(func(tc *Case) {
		tc.Null("tc", tc)
	})

	f, ok := tc.Failure()
	require.True(t, ok)
	assert.Regexp(t, `^0x[0-9a-f]+ is not null$`, f.Detail())
}

func TestCase_BytesEqual_CapturesValueAtAssertion(t *testing.T) {
	fish := []byte("fish")
	tc := runOne(func(tc *Case) {
		fish[0] = 'w'
		tc.BytesEqual("fish", fish, `"fish"`, []byte("fish"))
	})
	fish[0] = 'd'

	f, ok := tc.Failure()
	require.True(t, ok)
	assert.Equal(t, "wish", f.Args[0].Value.Text())
	assert.Equal(t, "wish != fish", f.Detail())
}

func TestCase_Run_ResetsPreviousFailure(t *testing.T) {
	fail := true
	s := New()
	tc := s.Add(func(tc *Case) {
		tc.False("fail", fail)
	}, "flip")

	tc.Run()
	assert.True(t, tc.Failed())

	fail = false
	tc.Run()
	assert.False(t, tc.Failed())
	_, ok := tc.Failure()
	assert.False(t, ok)
}
