// Package signal delivers environment events (pointer moves, scroll offsets) to attached listeners.
package signal

import "sync"

// Source fans a value out to its listeners in registration order.
// Emit calls are serialized so handlers of one source never overlap.
type Source[T any] struct {
	mu        sync.Mutex
	emitMu    sync.Mutex
	next      uint64
	listeners []listener[T]
}

type listener[T any] struct {
	id uint64
	fn func(T)
}

// Listen attaches fn and returns a function that detaches it. Calling stop more than once is a no-op.
func (s *Source[T]) Listen(fn func(T)) (stop func()) {
	s.mu.Lock()
	s.next++
	id := s.next
	s.listeners = append(s.listeners, listener[T]{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { s.remove(id) })
	}
}

func (s *Source[T]) remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, l := range s.listeners {
		if l.id == id {
			s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
			return
		}
	}
}

// Emit delivers v to every listener attached at the time of the call.
// A listener must not call Emit on the same source; that call blocks forever.
func (s *Source[T]) Emit(v T) {
	s.emitMu.Lock()
	defer s.emitMu.Unlock()

	s.mu.Lock()
	snapshot := make([]listener[T], len(s.listeners))
	copy(snapshot, s.listeners)
	s.mu.Unlock()

	for _, l := range snapshot {
		l.fn(v)
	}
}

// Len is the number of attached listeners.
func (s *Source[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.listeners)
}
