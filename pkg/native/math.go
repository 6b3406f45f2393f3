package native

import (
	"math"

	"github.com/vela-lang/vela/pkg/errors"
	"github.com/vela-lang/vela/pkg/value"
)

// mathModule groups numeric routines. Operations take Int or Float;
// abs, min, and max stay in the integer domain when both inputs are
// integers, the rest return floats.
func mathModule(_ *Context) (Module, error) {
	return Module{
		"abs":   {Name: "math.abs", Execute: mathAbs},
		"min":   {Name: "math.min", Execute: mathMin},
		"max":   {Name: "math.max", Execute: mathMax},
		"floor": {Name: "math.floor", Execute: mathFloor},
		"ceil":  {Name: "math.ceil", Execute: mathCeil},
		"sqrt":  {Name: "math.sqrt", Execute: mathSqrt},
		"pow":   {Name: "math.pow", Execute: mathPow},
	}, nil
}

func mathAbs(args []value.Value) (value.Value, error) {
	if err := argCount("math.abs", args, 1); err != nil {
		return nil, err
	}
	switch n := args[0].(type) {
	case value.Int:
		if n.Value < 0 {
			return value.NewInt(-n.Value), nil
		}
		return n, nil
	case value.Float:
		return value.NewFloat(math.Abs(n.Value)), nil
	}
	return nil, errors.NewTypeError("math.abs: argument must be a number, got %s", value.TypeName(args[0]))
}

func mathMin(args []value.Value) (value.Value, error) {
	return mathPick("math.min", args, -1)
}

func mathMax(args []value.Value) (value.Value, error) {
	return mathPick("math.max", args, 1)
}

// mathPick returns whichever of the two arguments orders toward want.
func mathPick(name string, args []value.Value, want int) (value.Value, error) {
	if err := argCount(name, args, 2); err != nil {
		return nil, err
	}
	cmp, err := value.Compare(args[0], args[1])
	if err != nil {
		return nil, err
	}
	if cmp == want {
		return args[0], nil
	}
	return args[1], nil
}

func mathFloor(args []value.Value) (value.Value, error) {
	if err := argCount("math.floor", args, 1); err != nil {
		return nil, err
	}
	f, err := argNumber("math.floor", args, 0)
	if err != nil {
		return nil, err
	}
	return value.NewFloat(math.Floor(f)), nil
}

func mathCeil(args []value.Value) (value.Value, error) {
	if err := argCount("math.ceil", args, 1); err != nil {
		return nil, err
	}
	f, err := argNumber("math.ceil", args, 0)
	if err != nil {
		return nil, err
	}
	return value.NewFloat(math.Ceil(f)), nil
}

func mathSqrt(args []value.Value) (value.Value, error) {
	if err := argCount("math.sqrt", args, 1); err != nil {
		return nil, err
	}
	f, err := argNumber("math.sqrt", args, 0)
	if err != nil {
		return nil, err
	}
	return value.NewFloat(math.Sqrt(f)), nil
}

func mathPow(args []value.Value) (value.Value, error) {
	if err := argCount("math.pow", args, 2); err != nil {
		return nil, err
	}
	base, err := argNumber("math.pow", args, 0)
	if err != nil {
		return nil, err
	}
	exp, err := argNumber("math.pow", args, 1)
	if err != nil {
		return nil, err
	}
	return value.NewFloat(math.Pow(base, exp)), nil
}
