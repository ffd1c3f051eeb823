// Package orderedmap provides a string-keyed map that preserves first-insertion order.
package orderedmap

// Map associates string keys with values and iterates in the order keys were
// first inserted. Removal is not supported.
type Map[V any] struct {
	indices map[string]int
	keys    []string
	values  []V
}

// New returns an empty ordered map.
func New[V any]() *Map[V] {
	return &Map[V]{
		indices: make(map[string]int),
	}
}

// Len returns the number of stored keys.
func (m *Map[V]) Len() int {
	return len(m.values)
}

// Get returns the value stored under key.
func (m *Map[V]) Get(key string) (V, bool) {
	if index, ok := m.indices[key]; ok {
		return m.values[index], true
	}

	var zero V
	return zero, false
}

// Has reports whether key is present.
func (m *Map[V]) Has(key string) bool {
	_, ok := m.indices[key]
	return ok
}

// Set stores value under key, appending a new slot for unseen keys and
// overwriting the existing slot otherwise. Insertion order keeps the
// position of the first insertion.
func (m *Map[V]) Set(key string, value V) {
	if index, ok := m.indices[key]; ok {
		m.values[index] = value
		return
	}

	m.indices[key] = len(m.values)
	m.keys = append(m.keys, key)
	m.values = append(m.values, value)
}

// GetOrInsert returns the value stored under key, creating a zero-value slot
// for unseen keys. The second result reports whether the slot already existed.
func (m *Map[V]) GetOrInsert(key string) (V, bool) {
	if index, ok := m.indices[key]; ok {
		return m.values[index], true
	}

	var zero V
	m.indices[key] = len(m.values)
	m.keys = append(m.keys, key)
	m.values = append(m.values, zero)

	return zero, false
}

// Keys returns the keys in insertion order. The returned slice is shared;
// callers must not modify it.
func (m *Map[V]) Keys() []string {
	return m.keys
}

// Range calls fn for each key/value pair in insertion order until fn
// returns false.
func (m *Map[V]) Range(fn func(key string, value V) bool) {
	for i, key := range m.keys {
		if !fn(key, m.values[i]) {
			return
		}
	}
}
