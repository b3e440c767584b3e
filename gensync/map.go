package gensync

import "sync"

// Map is a generically typed wrapper around the built-in sync.Map.
type Map[K comparable, V any] struct {
	m sync.Map
}

// NewMap creates a new Map seeded with the given initial values.
func NewMap[K comparable, V any](initial map[K]V) *Map[K, V] {
	m := Map[K, V]{}
	for k, v := range initial {
		m.Store(k, v)
	}
	return &m
}

// Store sets the value for a key.
func (m *Map[K, V]) Store(key K, value V) {
	m.m.Store(key, value)
}

// Load returns the value stored for a key. The ok result reports
// whether the key was present.
func (m *Map[K, V]) Load(key K) (value V, ok bool) {
	v, ok := m.m.Load(key)
	if !ok {
		var zeroValue V
		return zeroValue, ok
	}
	return v.(V), ok
}

// LoadOrStore returns the existing value for the key if present;
// otherwise it stores and returns the given value. The loaded result is
// true if the value was loaded rather than stored.
func (m *Map[K, V]) LoadOrStore(key K, value V) (actual V, loaded bool) {
	v, loaded := m.m.LoadOrStore(key, value)
	return v.(V), loaded
}

// Delete deletes the value for a key.
func (m *Map[K, V]) Delete(key K) {
	m.m.Delete(key)
}

// Range calls f sequentially for each key and value in the map,
// stopping if f returns false. It carries the same consistency caveats
// as sync.Map.Range.
func (m *Map[K, V]) Range(f func(key K, value V) bool) {
	m.m.Range(func(key, value any) bool {
		return f(key.(K), value.(V))
	})
}

// Length counts the elements in the map. It is subject to the same
// conditions as Range.
func (m *Map[K, V]) Length() (length int) {
	m.Range(func(K, V) bool {
		length++
		return true
	})
	return length
}
