package native

import (
	"strconv"

	"github.com/vela-lang/vela/pkg/errors"
	"github.com/vela-lang/vela/pkg/value"
)

// defaultDescriptors is the fixed, compile-time-known capability group
// list. Order is not significant; published names must be unique.
func defaultDescriptors() []Descriptor {
	return []Descriptor{
		{Name: "ArrayModule", Factory: arrayModule},
		{Name: "ConvertModule", Factory: convertModule},
		{Name: "ErrorModule", Factory: errorModule},
		{Name: "FileModule", RequiresContext: true, Factory: fileModule},
		{Name: "HttpModule", RequiresContext: true, Factory: httpModule},
		{Name: "IoModule", RequiresContext: true, Factory: ioModule},
		{Name: "JsonModule", Factory: jsonModule},
		{Name: "MathModule", Factory: mathModule},
		{Name: "ObjectModule", Factory: objectModule},
		{Name: "RandomModule", RequiresContext: true, Factory: randomModule},
		{Name: "RangeModule", Factory: rangeModule},
		// published as "string": the bare name "str" belongs to the
		// ungrouped coercion builtin.
		{Name: "StringModule", Factory: stringModule},
		{Name: "TimeModule", RequiresContext: true, Factory: timeModule},
	}
}

// ungroupedBuiltins are published directly into the namespace rather
// than under a group.
func ungroupedBuiltins() []*Fn {
	return []*Fn{
		{Name: "int", Execute: builtinInt},
		{Name: "str", Execute: builtinStr},
	}
}

// builtinInt coerces its argument to an integer: Int passes through,
// String parses; everything else is a TypeError.
func builtinInt(args []value.Value) (value.Value, error) {
	if err := argCount("int", args, 1); err != nil {
		return nil, err
	}
	switch v := args[0].(type) {
	case value.Int:
		return v, nil
	case value.String:
		n, err := strconv.ParseInt(v.Value, 10, 32)
		if err != nil {
			return nil, errors.NewTypeError("Cannot cast to int")
		}
		return value.NewInt(int32(n)), nil
	}
	return nil, errors.NewTypeError("Cannot cast to int")
}

// builtinStr renders any value as its canonical text; null renders as
// the literal text "null".
func builtinStr(args []value.Value) (value.Value, error) {
	if err := argCount("str", args, 1); err != nil {
		return nil, err
	}
	return value.NewString(value.Render(args[0])), nil
}
