// Package cache holds the in-process copy of one persisted collection.
package cache

import "sync"

// Store is a mutex-guarded, lazily loaded value. Every value handed out or
// taken in passes through clone, so callers never share the cached copy.
type Store[T any] struct {
	mu     sync.Mutex
	value  T
	loaded bool
	clone  func(T) T
}

// New returns an empty store. A nil clone copies values by assignment.
func New[T any](clone func(T) T) *Store[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &Store[T]{clone: clone}
}

// GetOrLoad returns the cached value, calling loader first if nothing has
// been cached yet.
func (s *Store[T]) GetOrLoad(loader func() T) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(loader)
	return s.clone(s.value)
}

// Replace overwrites the cached value.
func (s *Store[T]) Replace(value T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = s.clone(value)
	s.loaded = true
}

// Mutate applies fn to a copy of the current value while holding the lock.
// If fn fails the cache is left untouched and its error returned. Otherwise
// the result is cached and handed to persist before the lock is released, so
// writes to the backing file happen in mutation order. A persist error is
// returned but the cached value is kept.
func (s *Store[T]) Mutate(loader func() T, fn func(T) (T, error), persist func(T) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(loader)

	next, err := fn(s.clone(s.value))
	if err != nil {
		return err
	}
	s.value = next
	return persist(s.clone(next))
}

// Loaded reports whether the store has been populated.
func (s *Store[T]) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

func (s *Store[T]) ensureLoaded(loader func() T) {
	if s.loaded {
		return
	}
	s.value = loader()
	s.loaded = true
}
