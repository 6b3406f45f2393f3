package native

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/vela-lang/vela/pkg/errors"
	"github.com/vela-lang/vela/pkg/value"
)

// ioModule forwards console I/O to the context's reader and writer.
func ioModule(ctx *Context) (Module, error) {
	reader := bufio.NewReader(ctx.Stdin)
	return Module{
		"print": {Name: "io.print", Execute: func(args []value.Value) (value.Value, error) {
			if err := argCount("io.print", args, 1); err != nil {
				return nil, err
			}
			if _, err := fmt.Fprint(ctx.Stdout, value.Render(args[0])); err != nil {
				return nil, errors.NewHostIOError("io.print", err)
			}
			return value.NewNull(), nil
		}},
		"print_line": {Name: "io.print_line", Execute: func(args []value.Value) (value.Value, error) {
			if err := argCount("io.print_line", args, 1); err != nil {
				return nil, err
			}
			if _, err := fmt.Fprintln(ctx.Stdout, value.Render(args[0])); err != nil {
				return nil, errors.NewHostIOError("io.print_line", err)
			}
			return value.NewNull(), nil
		}},
		"read_line": {Name: "io.read_line", Execute: func(args []value.Value) (value.Value, error) {
			if err := argCount("io.read_line", args, 0); err != nil {
				return nil, err
			}
			line, err := reader.ReadString('\n')
			if err != nil && line == "" {
				return nil, errors.NewHostIOError("io.read_line", err)
			}
			return value.NewString(strings.TrimRight(line, "\r\n")), nil
		}},
	}, nil
}
