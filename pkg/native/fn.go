// Package native implements the Vela native-function bridge: the Fn
// adapter, the interpreter context, the module registry, and the
// built-in capability groups.
package native

import (
	"github.com/vela-lang/vela/pkg/errors"
	"github.com/vela-lang/vela/pkg/value"
)

// Fn adapts a host routine of fixed parameter shape to the uniform
// Value calling convention. Immutable once constructed.
type Fn struct {
	Name    string
	Execute func(args []value.Value) (value.Value, error)
}

// Callable wraps the adapter as a first-class value.
func (f *Fn) Callable() *value.Callable {
	return value.NewCallable(f.Name, f.Execute)
}

// argCount fails with an ArgumentError unless exactly want arguments
// were passed.
func argCount(name string, args []value.Value, want int) error {
	if len(args) != want {
		return errors.NewArgumentError("%s expects %d arguments, got %d", name, want, len(args))
	}
	return nil
}

func argList(name string, args []value.Value, i int) (*value.List, error) {
	l, ok := args[i].(*value.List)
	if !ok {
		return nil, errors.NewTypeError("%s: argument %d must be a list, got %s", name, i+1, value.TypeName(args[i]))
	}
	return l, nil
}

func argMap(name string, args []value.Value, i int) (*value.Map, error) {
	m, ok := args[i].(*value.Map)
	if !ok {
		return nil, errors.NewTypeError("%s: argument %d must be a map, got %s", name, i+1, value.TypeName(args[i]))
	}
	return m, nil
}

func argString(name string, args []value.Value, i int) (string, error) {
	s, ok := args[i].(value.String)
	if !ok {
		return "", errors.NewTypeError("%s: argument %d must be a string, got %s", name, i+1, value.TypeName(args[i]))
	}
	return s.Value, nil
}

func argInt(name string, args []value.Value, i int) (int32, error) {
	n, ok := args[i].(value.Int)
	if !ok {
		return 0, errors.NewTypeError("%s: argument %d must be an int, got %s", name, i+1, value.TypeName(args[i]))
	}
	return n.Value, nil
}

func argIter(name string, args []value.Value, i int) (value.Iterator, error) {
	it, ok := args[i].(*value.Iter)
	if !ok {
		return nil, errors.NewTypeError("%s: argument %d must be an iterator, got %s", name, i+1, value.TypeName(args[i]))
	}
	return it.It, nil
}

// argNumber accepts Int or Float and widens to float64.
func argNumber(name string, args []value.Value, i int) (float64, error) {
	switch n := args[i].(type) {
	case value.Int:
		return float64(n.Value), nil
	case value.Float:
		return n.Value, nil
	}
	return 0, errors.NewTypeError("%s: argument %d must be a number, got %s", name, i+1, value.TypeName(args[i]))
}
