package value

// Entry is a key-value pair in an ordered map.
type Entry struct {
	Key Value
	Val Value
}

// Map represents the generic dictionary keyed by Value that backs
// script-visible objects. Keys are unique under DeepEqual and insertion
// order is preserved. Like List, Maps have reference semantics.
//
// Keys of different scalar variants are distinct: Int 1 and Float 1.0
// address separate entries.
type Map struct {
	entries []Entry
	index   map[string]int // fast path for scalar keys
}

func (*Map) velaValue() {}

// NewMap creates a map value from entries. Later duplicate keys
// overwrite earlier ones.
func NewMap(entries []Entry) *Map {
	m := &Map{index: make(map[string]int, len(entries))}
	for _, e := range entries {
		m.Set(e.Key, e.Val)
	}
	return m
}

// scalarKey returns a unique encoding for scalar keys, or "" when the
// key is not a scalar and must be matched by linear scan.
func scalarKey(k Value) string {
	switch kv := k.(type) {
	case Null:
		return "n:"
	case Bool:
		if kv.Value {
			return "b:1"
		}
		return "b:0"
	case Int:
		return "i:" + formatInt(kv.Value)
	case Float:
		return "f:" + formatFloat(kv.Value)
	case String:
		return "s:" + kv.Value
	}
	return ""
}

// Get retrieves the value stored under key.
func (m *Map) Get(key Value) (Value, bool) {
	if sk := scalarKey(key); sk != "" {
		i, ok := m.index[sk]
		if !ok {
			return nil, false
		}
		return m.entries[i].Val, true
	}
	for _, e := range m.entries {
		if DeepEqual(e.Key, key) {
			return e.Val, true
		}
	}
	return nil, false
}

// Set stores val under key, preserving insertion order for existing keys.
func (m *Map) Set(key Value, val Value) {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if sk := scalarKey(key); sk != "" {
		if i, ok := m.index[sk]; ok {
			m.entries[i].Val = val
			return
		}
		m.index[sk] = len(m.entries)
		m.entries = append(m.entries, Entry{Key: key, Val: val})
		return
	}
	for i, e := range m.entries {
		if DeepEqual(e.Key, key) {
			m.entries[i].Val = val
			return
		}
	}
	m.entries = append(m.entries, Entry{Key: key, Val: val})
}

// Delete removes the entry stored under key and reports whether it existed.
func (m *Map) Delete(key Value) bool {
	for i, e := range m.entries {
		if DeepEqual(e.Key, key) {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			m.reindex()
			return true
		}
	}
	return false
}

func (m *Map) reindex() {
	m.index = make(map[string]int, len(m.entries))
	for i, e := range m.entries {
		if sk := scalarKey(e.Key); sk != "" {
			m.index[sk] = i
		}
	}
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return len(m.entries)
}

// Keys returns all keys in insertion order.
func (m *Map) Keys() []Value {
	keys := make([]Value, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.Key
	}
	return keys
}

// Entries returns the entries in insertion order. The slice is shared;
// callers must not mutate it.
func (m *Map) Entries() []Entry {
	return m.entries
}
