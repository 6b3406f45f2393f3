package native

import (
	"github.com/vela-lang/vela/pkg/value"
)

// objectModule backs script-visible objects with the generic mapping.
// Objects have reference semantics: a key added through one holder is
// visible through every other holder of the same value.
func objectModule(_ *Context) (Module, error) {
	return Module{
		"new":    {Name: "object.new", Execute: objectNew},
		"get":    {Name: "object.get", Execute: objectGet},
		"set":    {Name: "object.set", Execute: objectSet},
		"has":    {Name: "object.has", Execute: objectHas},
		"keys":   {Name: "object.keys", Execute: objectKeys},
		"remove": {Name: "object.remove", Execute: objectRemove},
	}, nil
}

func objectNew(args []value.Value) (value.Value, error) {
	if err := argCount("object.new", args, 0); err != nil {
		return nil, err
	}
	return value.NewMap(nil), nil
}

func objectGet(args []value.Value) (value.Value, error) {
	if err := argCount("object.get", args, 2); err != nil {
		return nil, err
	}
	m, err := argMap("object.get", args, 0)
	if err != nil {
		return nil, err
	}
	if v, ok := m.Get(args[1]); ok {
		return v, nil
	}
	return value.NewNull(), nil
}

func objectSet(args []value.Value) (value.Value, error) {
	if err := argCount("object.set", args, 3); err != nil {
		return nil, err
	}
	m, err := argMap("object.set", args, 0)
	if err != nil {
		return nil, err
	}
	m.Set(args[1], args[2])
	return m, nil
}

func objectHas(args []value.Value) (value.Value, error) {
	if err := argCount("object.has", args, 2); err != nil {
		return nil, err
	}
	m, err := argMap("object.has", args, 0)
	if err != nil {
		return nil, err
	}
	_, ok := m.Get(args[1])
	return value.NewBool(ok), nil
}

func objectKeys(args []value.Value) (value.Value, error) {
	if err := argCount("object.keys", args, 1); err != nil {
		return nil, err
	}
	m, err := argMap("object.keys", args, 0)
	if err != nil {
		return nil, err
	}
	return value.NewList(m.Keys()), nil
}

func objectRemove(args []value.Value) (value.Value, error) {
	if err := argCount("object.remove", args, 2); err != nil {
		return nil, err
	}
	m, err := argMap("object.remove", args, 0)
	if err != nil {
		return nil, err
	}
	return value.NewBool(m.Delete(args[1])), nil
}
