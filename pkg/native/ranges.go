package native

import (
	"github.com/vela-lang/vela/pkg/value"
)

// RangeIterator lazily walks the integers after lower up to and
// including upper. The cursor is observed after the advance: the first
// yielded value is lower+1, lower itself is never yielded, and exactly
// upper-lower values are produced. Single-consumer; restartable via
// Reset.
type RangeIterator struct {
	lower  int32
	upper  int32
	cursor int32
}

// NewRangeIterator creates a range iterator in the ready state.
func NewRangeIterator(lower, upper int32) *RangeIterator {
	return &RangeIterator{lower: lower, upper: upper, cursor: lower}
}

// MoveNext advances the cursor and reports whether a value was
// produced.
func (r *RangeIterator) MoveNext() bool {
	if r.cursor >= r.upper {
		return false
	}
	r.cursor++
	return true
}

// Current returns the cursor as a value.
func (r *RangeIterator) Current() value.Value {
	return value.NewInt(r.cursor)
}

// Reset rewinds the cursor to lower without altering the bounds.
func (r *RangeIterator) Reset() {
	r.cursor = r.lower
}

// rangeModule publishes the numeric-range iteration protocol.
func rangeModule(_ *Context) (Module, error) {
	return Module{
		"new":       {Name: "range.new", Execute: rangeNew},
		"move_next": {Name: "range.move_next", Execute: rangeMoveNext},
		"current":   {Name: "range.current", Execute: rangeCurrent},
		"reset":     {Name: "range.reset", Execute: rangeReset},
	}, nil
}

func rangeNew(args []value.Value) (value.Value, error) {
	if err := argCount("range.new", args, 2); err != nil {
		return nil, err
	}
	lower, err := argInt("range.new", args, 0)
	if err != nil {
		return nil, err
	}
	upper, err := argInt("range.new", args, 1)
	if err != nil {
		return nil, err
	}
	return value.NewIter("range", NewRangeIterator(lower, upper)), nil
}

func rangeMoveNext(args []value.Value) (value.Value, error) {
	if err := argCount("range.move_next", args, 1); err != nil {
		return nil, err
	}
	it, err := argIter("range.move_next", args, 0)
	if err != nil {
		return nil, err
	}
	return value.NewBool(it.MoveNext()), nil
}

func rangeCurrent(args []value.Value) (value.Value, error) {
	if err := argCount("range.current", args, 1); err != nil {
		return nil, err
	}
	it, err := argIter("range.current", args, 0)
	if err != nil {
		return nil, err
	}
	return it.Current(), nil
}

func rangeReset(args []value.Value) (value.Value, error) {
	if err := argCount("range.reset", args, 1); err != nil {
		return nil, err
	}
	it, err := argIter("range.reset", args, 0)
	if err != nil {
		return nil, err
	}
	it.Reset()
	return value.NewNull(), nil
}
