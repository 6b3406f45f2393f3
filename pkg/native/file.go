package native

import (
	"github.com/vela-lang/vela/pkg/errors"
	"github.com/vela-lang/vela/pkg/value"
)

// fileModule forwards file content operations to the host file store.
// Missing paths and permission failures surface unchanged as
// HostIOError.
func fileModule(ctx *Context) (Module, error) {
	return Module{
		"read_text": {Name: "file.read_text", Execute: func(args []value.Value) (value.Value, error) {
			if err := argCount("file.read_text", args, 1); err != nil {
				return nil, err
			}
			path, err := argString("file.read_text", args, 0)
			if err != nil {
				return nil, err
			}
			text, err := ctx.Files.ReadText(path)
			if err != nil {
				return nil, errors.NewHostIOError("file.read_text", err)
			}
			return value.NewString(text), nil
		}},
		"write_text": {Name: "file.write_text", Execute: func(args []value.Value) (value.Value, error) {
			if err := argCount("file.write_text", args, 2); err != nil {
				return nil, err
			}
			path, err := argString("file.write_text", args, 0)
			if err != nil {
				return nil, err
			}
			text, err := argString("file.write_text", args, 1)
			if err != nil {
				return nil, err
			}
			if err := ctx.Files.WriteText(path, text); err != nil {
				return nil, errors.NewHostIOError("file.write_text", err)
			}
			return value.NewNull(), nil
		}},
	}, nil
}
