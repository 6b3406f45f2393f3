package native

import (
	"github.com/vela-lang/vela/pkg/jsonconv"
	"github.com/vela-lang/vela/pkg/value"
)

// jsonModule exposes the JSON marshaller to scripts.
func jsonModule(_ *Context) (Module, error) {
	return Module{
		"parse":     {Name: "json.parse", Execute: jsonParse},
		"to_string": {Name: "json.to_string", Execute: jsonToString},
	}, nil
}

func jsonParse(args []value.Value) (value.Value, error) {
	if err := argCount("json.parse", args, 1); err != nil {
		return nil, err
	}
	text, err := argString("json.parse", args, 0)
	if err != nil {
		return nil, err
	}
	return jsonconv.Parse(text)
}

func jsonToString(args []value.Value) (value.Value, error) {
	if err := argCount("json.to_string", args, 1); err != nil {
		return nil, err
	}
	text, err := jsonconv.ToString(args[0])
	if err != nil {
		return nil, err
	}
	return value.NewString(text), nil
}
