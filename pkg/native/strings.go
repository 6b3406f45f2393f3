package native

import (
	"strings"

	"github.com/vela-lang/vela/pkg/value"
)

// stringModule groups the string routines.
func stringModule(_ *Context) (Module, error) {
	return Module{
		"length":      {Name: "string.length", Execute: strLength},
		"concat":      {Name: "string.concat", Execute: strConcat},
		"split":       {Name: "string.split", Execute: strSplit},
		"contains":    {Name: "string.contains", Execute: strContains},
		"starts_with": {Name: "string.starts_with", Execute: strStartsWith},
		"ends_with":   {Name: "string.ends_with", Execute: strEndsWith},
		"to_upper":    {Name: "string.to_upper", Execute: strToUpper},
		"to_lower":    {Name: "string.to_lower", Execute: strToLower},
		"trim":        {Name: "string.trim", Execute: strTrim},
	}, nil
}

func strLength(args []value.Value) (value.Value, error) {
	if err := argCount("string.length", args, 1); err != nil {
		return nil, err
	}
	s, err := argString("string.length", args, 0)
	if err != nil {
		return nil, err
	}
	return value.NewInt(int32(len(s))), nil
}

func strConcat(args []value.Value) (value.Value, error) {
	if err := argCount("string.concat", args, 2); err != nil {
		return nil, err
	}
	a, err := argString("string.concat", args, 0)
	if err != nil {
		return nil, err
	}
	b, err := argString("string.concat", args, 1)
	if err != nil {
		return nil, err
	}
	return value.NewString(a + b), nil
}

func strSplit(args []value.Value) (value.Value, error) {
	if err := argCount("string.split", args, 2); err != nil {
		return nil, err
	}
	s, err := argString("string.split", args, 0)
	if err != nil {
		return nil, err
	}
	sep, err := argString("string.split", args, 1)
	if err != nil {
		return nil, err
	}
	parts := strings.Split(s, sep)
	items := make([]value.Value, len(parts))
	for i, p := range parts {
		items[i] = value.NewString(p)
	}
	return value.NewList(items), nil
}

func strContains(args []value.Value) (value.Value, error) {
	if err := argCount("string.contains", args, 2); err != nil {
		return nil, err
	}
	s, err := argString("string.contains", args, 0)
	if err != nil {
		return nil, err
	}
	sub, err := argString("string.contains", args, 1)
	if err != nil {
		return nil, err
	}
	return value.NewBool(strings.Contains(s, sub)), nil
}

func strStartsWith(args []value.Value) (value.Value, error) {
	if err := argCount("string.starts_with", args, 2); err != nil {
		return nil, err
	}
	s, err := argString("string.starts_with", args, 0)
	if err != nil {
		return nil, err
	}
	prefix, err := argString("string.starts_with", args, 1)
	if err != nil {
		return nil, err
	}
	return value.NewBool(strings.HasPrefix(s, prefix)), nil
}

func strEndsWith(args []value.Value) (value.Value, error) {
	if err := argCount("string.ends_with", args, 2); err != nil {
		return nil, err
	}
	s, err := argString("string.ends_with", args, 0)
	if err != nil {
		return nil, err
	}
	suffix, err := argString("string.ends_with", args, 1)
	if err != nil {
		return nil, err
	}
	return value.NewBool(strings.HasSuffix(s, suffix)), nil
}

func strToUpper(args []value.Value) (value.Value, error) {
	if err := argCount("string.to_upper", args, 1); err != nil {
		return nil, err
	}
	s, err := argString("string.to_upper", args, 0)
	if err != nil {
		return nil, err
	}
	return value.NewString(strings.ToUpper(s)), nil
}

func strToLower(args []value.Value) (value.Value, error) {
	if err := argCount("string.to_lower", args, 1); err != nil {
		return nil, err
	}
	s, err := argString("string.to_lower", args, 0)
	if err != nil {
		return nil, err
	}
	return value.NewString(strings.ToLower(s)), nil
}

func strTrim(args []value.Value) (value.Value, error) {
	if err := argCount("string.trim", args, 1); err != nil {
		return nil, err
	}
	s, err := argString("string.trim", args, 0)
	if err != nil {
		return nil, err
	}
	return value.NewString(strings.TrimSpace(s)), nil
}
