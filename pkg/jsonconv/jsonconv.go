// Package jsonconv converts between JSON text and the Vela value model.
//
// Numbers prefer the integer representation: a JSON number that
// round-trips through a 32-bit integer becomes an Int, everything else
// a Float. This is lossy outside the 32-bit range and for
// integral-valued decimals; that loss is accepted, not worked around.
package jsonconv

import (
	"encoding/json"
	"math"
	"sort"

	"github.com/vela-lang/vela/pkg/errors"
	"github.com/vela-lang/vela/pkg/value"
)

// Parse converts JSON text to a value. Objects become maps keyed by
// their member names as String values, arrays become lists in source
// order.
func Parse(text string) (value.Value, error) {
	var raw any
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, errors.NewSerializationError("invalid json: %s", err)
	}
	return rawToValue(raw), nil
}

// ToString serializes a value to JSON text. Serializing null is an
// error, not the literal "null"; contrast with ReWrap, which maps a
// nil host value to Null.
func ToString(v value.Value) (string, error) {
	if v == nil {
		return "", errors.NewSerializationError("cannot serialize null")
	}
	if _, isNull := v.(value.Null); isNull {
		return "", errors.NewSerializationError("cannot serialize null")
	}
	raw, err := valueToRaw(v)
	if err != nil {
		return "", err
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return "", errors.NewSerializationError("%s", err)
	}
	return string(b), nil
}

// ReWrap recursively converts a host-shaped nested structure (the
// output of a generic document deserializer: maps, slices, scalars)
// into the value model. A nil input yields Null.
func ReWrap(host any) value.Value {
	return rawToValue(host)
}

func rawToValue(raw any) value.Value {
	if raw == nil {
		return value.NewNull()
	}
	switch v := raw.(type) {
	case value.Value:
		return v
	case bool:
		return value.NewBool(v)
	case string:
		return value.NewString(v)
	case float64:
		return numberToValue(v)
	case float32:
		return numberToValue(float64(v))
	case int:
		return numberToValue(float64(v))
	case int32:
		return value.NewInt(v)
	case int64:
		return numberToValue(float64(v))
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return numberToValue(f)
		}
		return value.NewNull()
	case []any:
		items := make([]value.Value, len(v))
		for i, item := range v {
			items[i] = rawToValue(item)
		}
		return value.NewList(items)
	case map[string]any:
		// Go map iteration order is random; sort keys so re-wrapped
		// maps come out deterministic.
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		entries := make([]value.Entry, 0, len(v))
		for _, k := range keys {
			entries = append(entries, value.Entry{
				Key: value.NewString(k),
				Val: rawToValue(v[k]),
			})
		}
		return value.NewMap(entries)
	}
	return value.NewNull()
}

// numberToValue applies the integer-preference rule.
func numberToValue(f float64) value.Value {
	if f == math.Trunc(f) && !math.IsInf(f, 0) && !math.IsNaN(f) {
		if f >= math.MinInt32 && f <= math.MaxInt32 {
			return value.NewInt(int32(f))
		}
	}
	return value.NewFloat(f)
}

func valueToRaw(v value.Value) (any, error) {
	switch val := v.(type) {
	case nil, value.Null:
		return nil, nil
	case value.Bool:
		return val.Value, nil
	case value.Int:
		return val.Value, nil
	case value.Float:
		return val.Value, nil
	case value.String:
		return val.Value, nil
	case *value.List:
		items := make([]any, len(val.Items))
		for i, item := range val.Items {
			raw, err := valueToRaw(item)
			if err != nil {
				return nil, err
			}
			items[i] = raw
		}
		return items, nil
	case *value.Map:
		return &orderedMap{m: val}, nil
	}
	return nil, errors.NewSerializationError("cannot serialize %s", value.TypeName(v))
}

// orderedMap preserves key order in JSON output. Non-string scalar keys
// serialize through their canonical rendering.
type orderedMap struct {
	m *value.Map
}

func (o *orderedMap) MarshalJSON() ([]byte, error) {
	entries := o.m.Entries()
	if len(entries) == 0 {
		return []byte("{}"), nil
	}

	buf := []byte{'{'}
	for i, e := range entries {
		if i > 0 {
			buf = append(buf, ',')
		}
		key, err := entryKey(e.Key)
		if err != nil {
			return nil, err
		}
		keyBytes, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf = append(buf, keyBytes...)
		buf = append(buf, ':')

		raw, err := valueToRaw(e.Val)
		if err != nil {
			return nil, err
		}
		valBytes, err := json.Marshal(raw)
		if err != nil {
			return nil, err
		}
		buf = append(buf, valBytes...)
	}
	buf = append(buf, '}')
	return buf, nil
}

func entryKey(k value.Value) (string, error) {
	switch k.(type) {
	case value.Bool, value.Int, value.Float, value.String:
		return value.Render(k), nil
	}
	return "", errors.NewSerializationError("cannot serialize %s map key", value.TypeName(k))
}
