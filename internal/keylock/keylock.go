// Package keylock provides a mutex map keyed by string, used to
// serialize read-modify-write cycles for the same record without
// blocking unrelated keys.
package keylock

import "sync"

// Map is a lazily populated set of named mutexes. The zero value is not
// usable; create one with New.
type Map struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates an empty lock map.
func New() *Map {
	return &Map{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for key, creating it on first use, and
// returns the unlock function.
func (m *Map) Lock(key string) func() {
	m.mu.Lock()
	l, ok := m.locks[key]
	if !ok {
		l = &sync.Mutex{}
		m.locks[key] = l
	}
	m.mu.Unlock()

	l.Lock()
	return l.Unlock
}
