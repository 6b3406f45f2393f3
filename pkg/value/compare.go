package value

import (
	"strings"

	"github.com/vela-lang/vela/pkg/errors"
)

// Comparable is the ordering capability. Only the ordered scalar
// variants (Bool, Int, Float, String) implement it; asking any other
// variant for an ordering is a TypeError at the call site.
type Comparable interface {
	Value

	// CompareTo orders the receiver against other, returning a negative,
	// zero, or positive result. Ordering across variants is defined only
	// between Int and Float, which compare by numeric magnitude.
	CompareTo(other Value) (int, error)
}

// CompareTo orders booleans with false < true.
func (b Bool) CompareTo(other Value) (int, error) {
	ob, ok := other.(Bool)
	if !ok {
		return 0, incomparable(b, other)
	}
	switch {
	case b.Value == ob.Value:
		return 0, nil
	case ob.Value:
		return -1, nil
	default:
		return 1, nil
	}
}

// CompareTo orders integers numerically. Floats compare by magnitude.
func (n Int) CompareTo(other Value) (int, error) {
	switch ov := other.(type) {
	case Int:
		return compareOrdered(n.Value, ov.Value), nil
	case Float:
		return compareOrdered(float64(n.Value), ov.Value), nil
	}
	return 0, incomparable(n, other)
}

// CompareTo orders floats numerically. Ints compare by magnitude.
func (f Float) CompareTo(other Value) (int, error) {
	switch ov := other.(type) {
	case Float:
		return compareOrdered(f.Value, ov.Value), nil
	case Int:
		return compareOrdered(f.Value, float64(ov.Value)), nil
	}
	return 0, incomparable(f, other)
}

// CompareTo orders strings lexicographically by bytes.
func (s String) CompareTo(other Value) (int, error) {
	os, ok := other.(String)
	if !ok {
		return 0, incomparable(s, other)
	}
	return strings.Compare(s.Value, os.Value), nil
}

func compareOrdered[T int32 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func incomparable(a, b Value) error {
	return errors.NewTypeError("cannot compare %s with %s", TypeName(a), TypeName(b))
}

// Compare orders two values, failing with a TypeError when either side
// lacks the Comparable capability.
func Compare(a, b Value) (int, error) {
	ca, ok := a.(Comparable)
	if !ok {
		return 0, errors.NewTypeError("value of type %s is not comparable", TypeName(a))
	}
	if _, ok := b.(Comparable); !ok {
		return 0, errors.NewTypeError("value of type %s is not comparable", TypeName(b))
	}
	return ca.CompareTo(b)
}
