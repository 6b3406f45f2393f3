package native

import (
	"github.com/vela-lang/vela/pkg/value"
)

// timeModule forwards clock reads to the context.
func timeModule(ctx *Context) (Module, error) {
	return Module{
		"now": {Name: "time.now", Execute: func(args []value.Value) (value.Value, error) {
			if err := argCount("time.now", args, 0); err != nil {
				return nil, err
			}
			return value.NewInt(int32(ctx.Now().Unix())), nil
		}},
		"now_millis": {Name: "time.now_millis", Execute: func(args []value.Value) (value.Value, error) {
			if err := argCount("time.now_millis", args, 0); err != nil {
				return nil, err
			}
			// Milliseconds overflow int32; report as a float magnitude.
			return value.NewFloat(float64(ctx.Now().UnixMilli())), nil
		}},
	}, nil
}
