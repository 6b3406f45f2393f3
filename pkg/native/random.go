package native

import (
	"github.com/vela-lang/vela/pkg/errors"
	"github.com/vela-lang/vela/pkg/value"
)

// randomModule is deliberately stateful: successive calls advance the
// context's generator, so two Builds share key sets but not streams.
func randomModule(ctx *Context) (Module, error) {
	return Module{
		"next_int": {Name: "random.next_int", Execute: func(args []value.Value) (value.Value, error) {
			if err := argCount("random.next_int", args, 1); err != nil {
				return nil, err
			}
			bound, err := argInt("random.next_int", args, 0)
			if err != nil {
				return nil, err
			}
			if bound <= 0 {
				return nil, errors.NewArgumentError("random.next_int: bound must be positive, got %d", bound)
			}
			return value.NewInt(ctx.Rand.Int31n(bound)), nil
		}},
		"next_float": {Name: "random.next_float", Execute: func(args []value.Value) (value.Value, error) {
			if err := argCount("random.next_float", args, 0); err != nil {
				return nil, err
			}
			return value.NewFloat(ctx.Rand.Float64()), nil
		}},
	}, nil
}
