package form

import (
	"maps"
	"sync"
)

// Store is a merge-semantics map keyed by field code. Writes are last-write-wins
// and never trigger side effects. It is safe for concurrent use.
type Store[V any] struct {
	mu   sync.RWMutex
	data map[string]V
}

// NewStore creates an empty store.
func NewStore[V any]() *Store[V] {
	return &Store[V]{data: make(map[string]V)}
}

// Get returns the value stored under code.
func (s *Store[V]) Get(code string) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[code]
	return v, ok
}

// GetMany returns the stored values for codes. Unknown codes are omitted.
func (s *Store[V]) GetMany(codes []string) map[string]V {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]V, len(codes))
	for _, code := range codes {
		if v, ok := s.data[code]; ok {
			out[code] = v
		}
	}
	return out
}

func (s *Store[V]) Set(code string, v V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[code] = v
}

// SetMany merges items into the store; keys not in items are left untouched.
func (s *Store[V]) SetMany(items map[string]V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	maps.Copy(s.data, items)
}

func (s *Store[V]) Delete(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, code)
}

func (s *Store[V]) DeleteMany(codes []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, code := range codes {
		delete(s.data, code)
	}
}

// Replace swaps the whole content for a copy of items.
func (s *Store[V]) Replace(items map[string]V) {
	next := make(map[string]V, len(items))
	maps.Copy(next, items)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = next
}

func (s *Store[V]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[string]V)
}

// Snapshot returns a shallow copy of the content.
func (s *Store[V]) Snapshot() map[string]V {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.data)
}

func (s *Store[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
