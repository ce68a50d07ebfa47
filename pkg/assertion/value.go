package assertion

import (
	"bytes"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// ValueKind tags which variant a Value holds.
type ValueKind int

const (
	// IntValue holds a signed integer.
	IntValue ValueKind = iota
	// PointerValue holds an address and its nil-ness.
	PointerValue
	// TextValue holds an owned copy of a text.
	TextValue
)

// String returns the variant name.
func (vk ValueKind) String() string {
	switch vk {
	case IntValue:
		return "int"
	case PointerValue:
		return "pointer"
	case TextValue:
		return "text"
	default:
		return "unknown"
	}
}

// Value is the runtime value of an assertion operand. It is an
// explicit tagged variant: the accessors for a variant other than
// the one held return the zero value. Values are immutable.
type Value struct {
	kind  ValueKind
	i     int64
	addr  uintptr
	isNil bool
	text  string
}

// Int returns an integer value.
func Int(v int64) Value {
	return Value{kind: IntValue, i: v}
}

// Pointer returns a pointer value for p. A nil interface and a
// nil pointer, map, slice, channel, function or unsafe pointer
// are all null.
func Pointer(p any) Value {
	v := Value{kind: PointerValue, isNil: true}
	if p == nil {
		return v
	}

	rv := reflect.ValueOf(p)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		if rv.IsNil() {
			return v
		}
		v.addr = rv.Pointer()
		v.isNil = false
	case reflect.Uintptr:
		v.addr = uintptr(rv.Uint())
		v.isNil = v.addr == 0
	default:
		// Non-reference values are never null.
		v.isNil = false
	}
	return v
}

// Text returns a text value holding its own copy of s.
func Text(s string) Value {
	return Value{kind: TextValue, text: strings.Clone(s)}
}

// Bytes returns a text value read from a NUL-terminated buffer:
// the text ends at the first zero byte or at the end of b. The
// bytes are copied, so later writes to b are not observed.
func Bytes(b []byte) Value {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return Value{kind: TextValue, text: string(b)}
}

// Kind returns the variant tag.
func (v Value) Kind() ValueKind {
	return v.kind
}

// Int returns the integer payload, or 0 for other variants.
func (v Value) Int() int64 {
	if v.kind != IntValue {
		return 0
	}
	return v.i
}

// Addr returns the pointer payload, or 0 for other variants.
func (v Value) Addr() uintptr {
	if v.kind != PointerValue {
		return 0
	}
	return v.addr
}

// IsNil reports whether a pointer value is null. Other variants
// are never null.
func (v Value) IsNil() bool {
	return v.kind == PointerValue && v.isNil
}

// Text returns the text payload, or "" for other variants.
func (v Value) Text() string {
	if v.kind != TextValue {
		return ""
	}
	return v.text
}

// Format renders the value the way failure reports show it:
// integers in decimal, pointers as hexadecimal addresses and
// texts verbatim.
func (v Value) Format() string {
	switch v.kind {
	case IntValue:
		return strconv.FormatInt(v.i, 10)
	case PointerValue:
		return fmt.Sprintf("0x%x", v.addr)
	case TextValue:
		return v.text
	default:
		return ""
	}
}

// MarshalText encodes the value by its formatted rendering.
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.Format()), nil
}

// clone returns a value whose text no longer shares memory with
// the receiver.
func (v Value) clone() Value {
	if v.kind == TextValue {
		v.text = strings.Clone(v.text)
	}
	return v
}

// Argument is an evaluated assertion operand: the expression as
// written at the call site together with its value.
type Argument struct {
	// Source is the operand expression, for display only.
	Source string `json:"source" yaml:"source"`

	// Value is the evaluated operand.
	Value Value `json:"value" yaml:"value"`
}

// Arg builds an Argument.
func Arg(source string, value Value) Argument {
	return Argument{Source: source, Value: value}
}

// Clone returns a copy of the argument that owns its text.
func (a Argument) Clone() Argument {
	return Argument{
		Source: strings.Clone(a.Source),
		Value:  a.Value.clone(),
	}
}
