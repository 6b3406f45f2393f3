// Package value implements the Vela runtime value model.
package value

// Value is the interface for all Vela runtime values.
// Use the sealed marker method to restrict implementations to this package.
type Value interface {
	velaValue() // sealed marker
}

// Null represents the null value.
type Null struct{}

func (Null) velaValue() {}

// Bool represents a boolean value.
type Bool struct {
	Value bool
}

func (Bool) velaValue() {}

// Int represents a 32-bit integer value.
type Int struct {
	Value int32
}

func (Int) velaValue() {}

// Float represents a 64-bit floating-point value.
type Float struct {
	Value float64
}

func (Float) velaValue() {}

// String represents a string value.
type String struct {
	Value string
}

func (String) velaValue() {}

// List represents an ordered, mutable sequence of values.
// Lists have reference semantics: every Value holding the same *List
// observes mutations made through any of them.
type List struct {
	Items []Value
}

func (*List) velaValue() {}

// Callable wraps a native function as a first-class value.
type Callable struct {
	Name string
	Fn   func(args []Value) (Value, error)
}

func (*Callable) velaValue() {}

// Iterator is the lazy, resettable iteration protocol implemented by
// iterator values. Iterators are single-consumer and carry no locking.
type Iterator interface {
	MoveNext() bool
	Current() Value
	Reset()
}

// Iter wraps an Iterator as a value.
type Iter struct {
	Name string
	It   Iterator
}

func (*Iter) velaValue() {}

// Opaque is a host-owned handle not otherwise representable.
// The core never inspects Data; it only carries it across the boundary.
type Opaque struct {
	Kind string
	Data any
}

func (*Opaque) velaValue() {}

// NewNull creates a null value.
func NewNull() Value {
	return Null{}
}

// NewBool creates a boolean value.
func NewBool(b bool) Value {
	return Bool{Value: b}
}

// NewInt creates an integer value.
func NewInt(n int32) Value {
	return Int{Value: n}
}

// NewFloat creates a floating-point value.
func NewFloat(f float64) Value {
	return Float{Value: f}
}

// NewString creates a string value.
func NewString(s string) Value {
	return String{Value: s}
}

// NewList creates a list value backed by items.
func NewList(items []Value) *List {
	return &List{Items: items}
}

// NewCallable creates a callable value wrapping fn.
func NewCallable(name string, fn func(args []Value) (Value, error)) *Callable {
	return &Callable{Name: name, Fn: fn}
}

// NewIter wraps it as an iterator value.
func NewIter(name string, it Iterator) *Iter {
	return &Iter{Name: name, It: it}
}

// NewOpaque creates a host handle value.
func NewOpaque(kind string, data any) *Opaque {
	return &Opaque{Kind: kind, Data: data}
}

// TypeName returns the script-visible name of v's variant.
func TypeName(v Value) string {
	switch v.(type) {
	case nil, Null:
		return "null"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	case *List:
		return "list"
	case *Map:
		return "map"
	case *Callable:
		return "function"
	case *Iter:
		return "iterator"
	case *Opaque:
		return "handle"
	}
	return "unknown"
}

// Truthiness returns the boolean interpretation of a value.
// null, false, 0, 0.0, and "" are falsy; everything else is truthy.
func Truthiness(v Value) bool {
	switch val := v.(type) {
	case nil, Null:
		return false
	case Bool:
		return val.Value
	case Int:
		return val.Value != 0
	case Float:
		return val.Value != 0
	case String:
		return val.Value != ""
	default:
		return true
	}
}
