package assertion

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestValue_Int(t *testing.T) {
	v := Int(-7)
	assert.Equal(t, IntValue, v.Kind())
	assert.Equal(t, int64(-7), v.Int())
	assert.Equal(t, "-7", v.Format())
	assert.Equal(t, "", v.Text())
	assert.False(t, v.IsNil())
}

func TestValue_Text_IsIndependentCopy(t *testing.T) {
	buf := []byte("fish")
	s := string(buf)
	v := Text(s)

	buf[0] = 'w'

	assert.Equal(t, TextValue, v.Kind())
	assert.Equal(t, "fish", v.Text())
	assert.Equal(t, int64(0), v.Int())
}

func TestValue_Bytes_StopsAtNUL(t *testing.T) {
	buf := []byte{'w', 'i', 's', 'h', 0, 'x', 'y'}
	v := Bytes(buf)

	assert.Equal(t, "wish", v.Text())
}

func TestValue_Bytes_WithoutNUL(t *testing.T) {
	assert.Equal(t, "abc", Bytes([]byte("abc")).Text())
	assert.Equal(t, "", Bytes(nil).Text())
}

func TestValue_Bytes_MutationAfterCapture(t *testing.T) {
	buf := []byte("fish\x00")
	buf[0] = 'w'
	v := Bytes(buf)

	buf[0] = 'd'

	assert.Equal(t, "wish", v.Text())
}

func TestValue_Pointer_Nil(t *testing.T) {
	var p *int
	var m map[string]int
	var s []int
	var fn func()

	for name, in := range map[string]any{
		"untyped":  nil,
		"pointer":  p,
		"map":      m,
		"slice":    s,
		"function": fn,
		"unsafe":   unsafe.Pointer(nil),
		"uintptr":  uintptr(0),
	} {
		t.Run(name, func(t *testing.T) {
			v := Pointer(in)
			assert.Equal(t, PointerValue, v.Kind())
			assert.True(t, v.IsNil())
			assert.Equal(t, "0x0", v.Format())
		})
	}
}

func TestValue_Pointer_NonNil(t *testing.T) {
	x := 5
	v := Pointer(&x)

	assert.False(t, v.IsNil())
	assert.Equal(t, uintptr(unsafe.Pointer(&x)), v.Addr())
	assert.Regexp(t, `^0x[0-9a-f]+$`, v.Format())
}

func TestValue_WrongVariantAccessors(t *testing.T) {
	v := Text("x")
	assert.Equal(t, uintptr(0), v.Addr())
	assert.False(t, v.IsNil())

	p := Pointer(nil)
	assert.Equal(t, int64(0), p.Int())
	assert.Equal(t, "", p.Text())
}

func TestValueKind_String(t *testing.T) {
	assert.Equal(t, "int", IntValue.String())
	assert.Equal(t, "pointer", PointerValue.String())
	assert.Equal(t, "text", TextValue.String())
	assert.Equal(t, "unknown", ValueKind(9).String())
}

func TestArgument_Clone(t *testing.T) {
	a := Arg("fish", Text("wish"))
	c := a.Clone()

	assert.Equal(t, a, c)
	assert.Equal(t, "fish", c.Source)
	assert.Equal(t, "wish", c.Value.Text())
}
