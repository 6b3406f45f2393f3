package native

import (
	"github.com/vela-lang/vela/pkg/errors"
	"github.com/vela-lang/vela/pkg/jsonconv"
	"github.com/vela-lang/vela/pkg/value"
)

// httpModule forwards requests to the host HTTP client. Responses come
// back as {status, body} maps; get_json additionally re-wraps the body
// through the marshaller.
func httpModule(ctx *Context) (Module, error) {
	return Module{
		"get": {Name: "http.get", Execute: func(args []value.Value) (value.Value, error) {
			status, body, err := httpGet(ctx, "http.get", args)
			if err != nil {
				return nil, err
			}
			return value.NewMap([]value.Entry{
				{Key: value.NewString("status"), Val: value.NewInt(int32(status))},
				{Key: value.NewString("body"), Val: value.NewString(body)},
			}), nil
		}},
		"get_json": {Name: "http.get_json", Execute: func(args []value.Value) (value.Value, error) {
			status, body, err := httpGet(ctx, "http.get_json", args)
			if err != nil {
				return nil, err
			}
			parsed, err := jsonconv.Parse(body)
			if err != nil {
				return nil, err
			}
			return value.NewMap([]value.Entry{
				{Key: value.NewString("status"), Val: value.NewInt(int32(status))},
				{Key: value.NewString("body"), Val: parsed},
			}), nil
		}},
	}, nil
}

func httpGet(ctx *Context, name string, args []value.Value) (int, string, error) {
	if err := argCount(name, args, 1); err != nil {
		return 0, "", err
	}
	url, err := argString(name, args, 0)
	if err != nil {
		return 0, "", err
	}
	status, body, err := ctx.HTTP.Get(url)
	if err != nil {
		return 0, "", errors.NewHostIOError(name, err)
	}
	return status, body, nil
}
