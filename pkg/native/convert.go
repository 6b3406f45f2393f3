package native

import (
	"strconv"

	"github.com/vela-lang/vela/pkg/errors"
	"github.com/vela-lang/vela/pkg/value"
)

// convertModule groups the coercion routines. to_int and to_string
// apply the same coercion discipline as the ungrouped builtins.
func convertModule(_ *Context) (Module, error) {
	return Module{
		"to_int":    {Name: "convert.to_int", Execute: builtinInt},
		"to_string": {Name: "convert.to_string", Execute: builtinStr},
		"to_float":  {Name: "convert.to_float", Execute: convertToFloat},
		"to_bool":   {Name: "convert.to_bool", Execute: convertToBool},
	}, nil
}

func convertToFloat(args []value.Value) (value.Value, error) {
	if err := argCount("convert.to_float", args, 1); err != nil {
		return nil, err
	}
	switch v := args[0].(type) {
	case value.Float:
		return v, nil
	case value.Int:
		return value.NewFloat(float64(v.Value)), nil
	case value.String:
		f, err := strconv.ParseFloat(v.Value, 64)
		if err != nil {
			return nil, errors.NewTypeError("Cannot cast to float")
		}
		return value.NewFloat(f), nil
	}
	return nil, errors.NewTypeError("Cannot cast to float")
}

func convertToBool(args []value.Value) (value.Value, error) {
	if err := argCount("convert.to_bool", args, 1); err != nil {
		return nil, err
	}
	return value.NewBool(value.Truthiness(args[0])), nil
}
