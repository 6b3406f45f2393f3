package native

import (
	"github.com/vela-lang/vela/pkg/errors"
	"github.com/vela-lang/vela/pkg/value"
)

// errorModule lets scripts carry error values across the boundary as
// opaque handles without the bridge inspecting them.
func errorModule(_ *Context) (Module, error) {
	return Module{
		"new":     {Name: "error.new", Execute: errorNew},
		"message": {Name: "error.message", Execute: errorMessage},
	}, nil
}

func errorNew(args []value.Value) (value.Value, error) {
	if err := argCount("error.new", args, 1); err != nil {
		return nil, err
	}
	msg, err := argString("error.new", args, 0)
	if err != nil {
		return nil, err
	}
	return value.NewOpaque("error", msg), nil
}

func errorMessage(args []value.Value) (value.Value, error) {
	if err := argCount("error.message", args, 1); err != nil {
		return nil, err
	}
	o, ok := args[0].(*value.Opaque)
	if !ok || o.Kind != "error" {
		return nil, errors.NewTypeError("error.message: argument must be an error, got %s", value.TypeName(args[0]))
	}
	msg, _ := o.Data.(string)
	return value.NewString(msg), nil
}
