package native_test

import (
	"testing"

	"github.com/vela-lang/vela/pkg/native"
	"github.com/vela-lang/vela/pkg/value"
)

func TestRangeIteratorSequence(t *testing.T) {
	it := native.NewRangeIterator(0, 3)

	// the first observed value is lower+1; lower itself is never yielded
	var got []int32
	for it.MoveNext() {
		got = append(got, it.Current().(value.Int).Value)
	}

	expected := []int32{1, 2, 3}
	if len(got) != len(expected) {
		t.Fatalf("yielded %d values, want %d", len(got), len(expected))
	}
	for i, want := range expected {
		if got[i] != want {
			t.Errorf("value %d: got %d, want %d", i, got[i], want)
		}
	}

	if it.MoveNext() {
		t.Error("MoveNext returned true past upper")
	}
}

func TestRangeIteratorReset(t *testing.T) {
	it := native.NewRangeIterator(0, 3)
	for it.MoveNext() {
	}

	it.Reset()
	if !it.MoveNext() {
		t.Fatal("MoveNext returned false after Reset")
	}
	if n := it.Current().(value.Int); n.Value != 1 {
		t.Errorf("first value after Reset = %d, want 1", n.Value)
	}
}

func TestRangeIteratorEmpty(t *testing.T) {
	it := native.NewRangeIterator(2, 2)
	if it.MoveNext() {
		t.Error("empty range yielded a value")
	}

	reversed := native.NewRangeIterator(5, 2)
	if reversed.MoveNext() {
		t.Error("reversed range yielded a value")
	}
}

func TestRangeModule(t *testing.T) {
	ns := buildTestNamespace(t)

	itVal, err := callModule(t, ns, "range", "new", value.NewInt(0), value.NewInt(2))
	if err != nil {
		t.Fatalf("range.new failed: %s", err)
	}
	if _, ok := itVal.(*value.Iter); !ok {
		t.Fatalf("range.new returned %s, want iterator", value.TypeName(itVal))
	}

	var seen []int32
	for {
		more, err := callModule(t, ns, "range", "move_next", itVal)
		if err != nil {
			t.Fatalf("move_next failed: %s", err)
		}
		if !more.(value.Bool).Value {
			break
		}
		cur, err := callModule(t, ns, "range", "current", itVal)
		if err != nil {
			t.Fatalf("current failed: %s", err)
		}
		seen = append(seen, cur.(value.Int).Value)
	}

	if len(seen) != 2 || seen[0] != 1 || seen[1] != 2 {
		t.Errorf("iteration produced %v, want [1 2]", seen)
	}

	if _, err := callModule(t, ns, "range", "reset", itVal); err != nil {
		t.Fatalf("reset failed: %s", err)
	}
	more, _ := callModule(t, ns, "range", "move_next", itVal)
	if !more.(value.Bool).Value {
		t.Fatal("move_next returned false after reset")
	}
	cur, _ := callModule(t, ns, "range", "current", itVal)
	if n := cur.(value.Int); n.Value != 1 {
		t.Errorf("current after reset = %d, want 1", n.Value)
	}
}
