package assertion

// comparator decides whether an assertion holds for its operands.
// One-operand kinds ignore the second operand.
type comparator func(a1, a2 Value) bool

var comparators = [...]comparator{
	Equal: func(a1, a2 Value) bool {
		return a1.Int() == a2.Int()
	},
	NotEqual: func(a1, a2 Value) bool {
		return a1.Int() != a2.Int()
	},
	StrEqual: func(a1, a2 Value) bool {
		return a1.Text() == a2.Text()
	},
	StrNotEqual: func(a1, a2 Value) bool {
		return a1.Text() != a2.Text()
	},
	True: func(a1, _ Value) bool {
		return a1.Int() != 0
	},
	False: func(a1, _ Value) bool {
		return a1.Int() == 0
	},
	Null: func(a1, _ Value) bool {
		return a1.IsNil()
	},
	NotNull: func(a1, _ Value) bool {
		return !a1.IsNil()
	},
}

// Check evaluates an assertion of the given kind. It always
// returns a definite result; an unknown kind never holds.
func Check(kind Kind, a1, a2 Value) bool {
	if !kind.IsValid() {
		return false
	}
	return comparators[kind](a1, a2)
}
