package value

import (
	"strconv"
	"strings"
)

// Render returns the canonical display text of a value.
// Null renders as the literal text "null". Lists and maps render in a
// JSON-shaped form; callables, iterators, and handles render as tagged
// placeholders since they have no data representation.
func Render(v Value) string {
	switch val := v.(type) {
	case nil, Null:
		return "null"
	case Bool:
		if val.Value {
			return "true"
		}
		return "false"
	case Int:
		return formatInt(val.Value)
	case Float:
		return formatFloat(val.Value)
	case String:
		return val.Value
	case *List:
		var sb strings.Builder
		sb.WriteByte('[')
		for i, item := range val.Items {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(renderQuoted(item))
		}
		sb.WriteByte(']')
		return sb.String()
	case *Map:
		var sb strings.Builder
		sb.WriteByte('{')
		for i, e := range val.entries {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(renderQuoted(e.Key))
			sb.WriteString(": ")
			sb.WriteString(renderQuoted(e.Val))
		}
		sb.WriteByte('}')
		return sb.String()
	case *Callable:
		return "<function " + val.Name + ">"
	case *Iter:
		return "<iterator " + val.Name + ">"
	case *Opaque:
		return "<" + val.Kind + ">"
	}
	return "null"
}

// renderQuoted renders nested values, quoting strings so container
// renderings stay unambiguous.
func renderQuoted(v Value) string {
	if s, ok := v.(String); ok {
		return strconv.Quote(s.Value)
	}
	return Render(v)
}

func formatInt(n int32) string {
	return strconv.FormatInt(int64(n), 10)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
