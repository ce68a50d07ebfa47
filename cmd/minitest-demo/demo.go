package main

import (
	"math"

	"digital.vasic.minitest/pkg/suite"
)

func myTest(tc *suite.Case) {
	if !tc.Equal("2 + 2", 2+2, "4", 4) {
		return
	}
	tc.NotEqual("-1", -1, "UINT_MAX", math.MaxUint32)
}

func myOtherTest(tc *suite.Case) {
	if !tc.True("!0", !false) {
		return
	}
	tc.FalseInt("100", 100)
}

func testNull(tc *suite.Case) {
	if !tc.Null("tc", tc) {
		return
	}
	tc.NotNull("tc", tc)
}

func testStr(tc *suite.Case) {
	fish := []byte("fish")
	fish[0] = 'w'
	tc.BytesEqual("fish", fish, `"fish"`, []byte("fish"))
}

func demoSuite() *suite.Suite {
	s := suite.New()
	s.Add(myTest, "my_test")
	s.Add(myOtherTest, "my_other_test")
	s.Add(testNull, "test_null")
	s.Add(testStr, "test_str")
	return s
}
