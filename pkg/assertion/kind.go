// Package assertion provides the assertion vocabulary of the
// minitest runtime: the closed set of assertion kinds, tagged
// operand values, and the failure record captured when an
// assertion does not hold.
package assertion

// Kind identifies an assertion and determines its arity and
// comparison semantics.
type Kind int

const (
	// Equal compares two integers for equality.
	Equal Kind = iota
	// NotEqual compares two integers for inequality.
	NotEqual
	// StrEqual compares two texts byte-wise for equality.
	StrEqual
	// StrNotEqual compares two texts byte-wise for inequality.
	StrNotEqual
	// True checks that an integer is non-zero.
	True
	// False checks that an integer is zero.
	False
	// Null checks that a pointer is null.
	Null
	// NotNull checks that a pointer is not null.
	NotNull
)

var suffixes = [...]string{
	Equal:       "Equal",
	NotEqual:    "NotEqual",
	StrEqual:    "StrEqual",
	StrNotEqual: "StrNotEqual",
	True:        "True",
	False:       "False",
	Null:        "Null",
	NotNull:     "NotNull",
}

// Kinds returns every assertion kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		Equal, NotEqual, StrEqual, StrNotEqual,
		True, False, Null, NotNull,
	}
}

// IsValid reports whether k is one of the declared kinds.
func (k Kind) IsValid() bool {
	return k >= Equal && k <= NotNull
}

// Arity returns the number of operands the kind compares.
func (k Kind) Arity() int {
	switch k {
	case Equal, NotEqual, StrEqual, StrNotEqual:
		return 2
	default:
		return 1
	}
}

// Suffix returns the display name used after "Assert" when a
// failing call is rendered, e.g. "StrEqual" for AssertStrEqual.
func (k Kind) Suffix() string {
	if !k.IsValid() {
		return "Unknown"
	}
	return suffixes[k]
}

// String returns the kind's display name.
func (k Kind) String() string {
	return k.Suffix()
}

// MarshalText encodes the kind by its display name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.Suffix()), nil
}
