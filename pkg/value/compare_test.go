package value_test

import (
	"testing"

	"github.com/vela-lang/vela/pkg/errors"
	"github.com/vela-lang/vela/pkg/value"
)

func TestCompareScalars(t *testing.T) {
	tests := []struct {
		a, b     value.Value
		expected int
	}{
		{value.NewInt(1), value.NewInt(2), -1},
		{value.NewInt(2), value.NewInt(2), 0},
		{value.NewInt(3), value.NewInt(2), 1},
		{value.NewFloat(1.5), value.NewFloat(2.5), -1},
		{value.NewString("a"), value.NewString("b"), -1},
		{value.NewString("b"), value.NewString("b"), 0},
		{value.NewBool(false), value.NewBool(true), -1},
		{value.NewBool(true), value.NewBool(true), 0},
		// Int and Float compare by numeric magnitude
		{value.NewInt(2), value.NewFloat(2.5), -1},
		{value.NewFloat(2.5), value.NewInt(2), 1},
		{value.NewInt(2), value.NewFloat(2.0), 0},
	}

	for i, tt := range tests {
		got, err := value.Compare(tt.a, tt.b)
		if err != nil {
			t.Errorf("test %d: unexpected error: %s", i, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("test %d: Compare = %d, want %d", i, got, tt.expected)
		}
	}
}

func TestCompareFailures(t *testing.T) {
	tests := []struct {
		a, b value.Value
	}{
		{value.NewInt(1), value.NewString("a")},
		{value.NewString("a"), value.NewInt(1)},
		{value.NewBool(true), value.NewInt(1)},
		{value.NewNull(), value.NewInt(1)},
		{value.NewList(nil), value.NewList(nil)},
		{value.NewMap(nil), value.NewInt(1)},
	}

	for i, tt := range tests {
		_, err := value.Compare(tt.a, tt.b)
		if err == nil {
			t.Errorf("test %d: expected error", i)
			continue
		}
		if kind := errors.KindOf(err); kind != errors.KindType {
			t.Errorf("test %d: kind = %q, want TypeError", i, kind)
		}
	}
}

func TestDeepEqual(t *testing.T) {
	shared := value.NewList([]value.Value{value.NewInt(1)})

	tests := []struct {
		a, b     value.Value
		expected bool
	}{
		{value.NewNull(), value.NewNull(), true},
		{value.NewInt(1), value.NewInt(1), true},
		{value.NewInt(1), value.NewInt(2), false},
		// equality is variant-strict; ordering is what crosses Int/Float
		{value.NewInt(1), value.NewFloat(1), false},
		{value.NewString("a"), value.NewString("a"), true},
		{
			value.NewList([]value.Value{value.NewInt(1), value.NewString("x")}),
			value.NewList([]value.Value{value.NewInt(1), value.NewString("x")}),
			true,
		},
		{
			value.NewList([]value.Value{value.NewInt(1)}),
			value.NewList([]value.Value{value.NewInt(2)}),
			false,
		},
		{shared, shared, true},
	}

	for i, tt := range tests {
		if got := value.DeepEqual(tt.a, tt.b); got != tt.expected {
			t.Errorf("test %d: DeepEqual = %v, want %v", i, got, tt.expected)
		}
	}
}

func TestDeepEqualMaps(t *testing.T) {
	a := value.NewMap([]value.Entry{
		{Key: value.NewString("x"), Val: value.NewInt(1)},
		{Key: value.NewString("y"), Val: value.NewInt(2)},
	})
	// same entries, different insertion order
	b := value.NewMap([]value.Entry{
		{Key: value.NewString("y"), Val: value.NewInt(2)},
		{Key: value.NewString("x"), Val: value.NewInt(1)},
	})
	if !value.DeepEqual(a, b) {
		t.Error("maps with equal entries should be deep-equal regardless of order")
	}

	b.Set(value.NewString("y"), value.NewInt(3))
	if value.DeepEqual(a, b) {
		t.Error("maps with differing values should not be deep-equal")
	}
}
