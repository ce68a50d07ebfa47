package assertion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheck(t *testing.T) {
	x := 1
	tests := []struct {
		name     string
		kind     Kind
		a1, a2   Value
		expected bool
	}{
		{"equal holds", Equal, Int(4), Int(4), true},
		{"equal fails", Equal, Int(4), Int(6), false},
		{"not equal holds", NotEqual, Int(-1), Int(1), true},
		{"not equal fails", NotEqual, Int(3), Int(3), false},
		{"str equal holds", StrEqual, Text("fish"), Text("fish"), true},
		{"str equal is case sensitive", StrEqual, Text("Fish"), Text("fish"), false},
		{"str equal fails", StrEqual, Text("wish"), Text("fish"), false},
		{"str not equal holds", StrNotEqual, Text("a"), Text("b"), true},
		{"str not equal fails", StrNotEqual, Text("a"), Text("a"), false},
		{"str equal bytes", StrEqual, Bytes([]byte("ab\x00c")), Text("ab"), true},
		{"true holds", True, Int(100), Value{}, true},
		{"true fails", True, Int(0), Value{}, false},
		{"false holds", False, Int(0), Value{}, true},
		{"false fails", False, Int(100), Value{}, false},
		{"null holds", Null, Pointer(nil), Value{}, true},
		{"null fails", Null, Pointer(&x), Value{}, false},
		{"not null holds", NotNull, Pointer(&x), Value{}, true},
		{"not null fails", NotNull, Pointer(nil), Value{}, false},
		{"unknown kind", Kind(99), Int(1), Int(1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Check(tt.kind, tt.a1, tt.a2))
		})
	}
}
