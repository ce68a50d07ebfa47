package suite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.minitest/pkg/assertion"
)

func sampleCase(tc *Case) {}

func TestNew_Empty(t *testing.T) {
	s := New()

	assert.Equal(t, 0, s.Count())
	assert.False(t, s.Completed())
	assert.Equal(t, 0.0, s.Elapsed())
	assert.Empty(t, s.Cases())
	assert.Equal(t, 0, s.Failures())
}

func TestSuite_Add_PreservesOrder(t *testing.T) {
	s := New()
	names := []string{"first", "second", "third"}
	for _, n := range names {
		s.Add(sampleCase, n)
	}

	require.Equal(t, 3, s.Count())
	for i, tc := range s.Cases() {
		assert.Equal(t, names[i], tc.Name())
		assert.False(t, tc.Failed())
	}
}

func TestSuite_Cases_ReturnsCopy(t *testing.T) {
	s := New()
	s.Add(sampleCase, "a")

	cases := s.Cases()
	cases[0] = nil

	assert.NotNil(t, s.Cases()[0])
}

func TestSuite_AddFunc_DerivesName(t *testing.T) {
	s := New()
	tc := s.AddFunc(sampleCase)

	assert.Equal(t, "sampleCase", tc.Name())
}

func TestFuncName(t *testing.T) {
	assert.Equal(t, "sampleCase", FuncName(sampleCase))
	assert.Equal(t, "", FuncName(nil))
	assert.Contains(t, FuncName(func(*Case) {}), "TestFuncName")
}

func TestSuite_Complete(t *testing.T) {
	s := New()
	s.Complete(1.25)

	assert.True(t, s.Completed())
	assert.Equal(t, 1.25, s.Elapsed())
}

func TestSuite_Failures(t *testing.T) {
	s := New()
	s.Add(func(tc *Case) { tc.TrueInt("0", 0) }, "fails")
	s.Add(func(tc *Case) {}, "passes")
	s.Add(func(tc *Case) { tc.Equal("1", 1, "2", 2) }, "fails too")

	for _, tc := range s.Cases() {
		tc.Run()
	}

	assert.Equal(t, 2, s.Failures())
}

func TestSuite_SetObserver(t *testing.T) {
	s := New()
	var seen []assertion.Kind
	var outcomes []bool
	s.SetObserver(func(_ *Case, k assertion.Kind, passed bool) {
		seen = append(seen, k)
		outcomes = append(outcomes, passed)
	})

	tc := s.Add(func(tc *Case) {
		if !tc.Equal("1", 1, "1", 1) {
			return
		}
		if !tc.Null("nil", nil) {
			return
		}
		tc.True("false", false)
	}, "observed")
	tc.Run()

	assert.Equal(t,
		[]assertion.Kind{assertion.Equal, assertion.Null, assertion.True},
		seen,
	)
	assert.Equal(t, []bool{true, true, false}, outcomes)

	s.SetObserver(nil)
	seen = nil
	tc.Run()
	assert.Empty(t, seen)
}
