// Package notify is the change-notification plumbing shared by the client
// stores. A Hub serializes "mutate, then publish" sections so subscribers
// see every transition exactly once, in order, and only after the store
// finished updating its state.
package notify

import "sync"

// Listener receives a snapshot after each completed transition.
type Listener[T any] func(T)

type subscription[T any] struct {
	id int
	fn Listener[T]
}

// Hub fans snapshots out to listeners. The zero value is ready to use.
//
// Listeners run synchronously on the goroutine that performed the
// transition. They may read the store but must not call its mutating
// operations, which would deadlock on the emit section.
type Hub[T any] struct {
	emitMu sync.Mutex

	mu     sync.Mutex
	nextID int
	subs   []subscription[T]
}

// Subscribe registers fn and returns a function removing it again.
// The returned function is safe to call more than once.
func (h *Hub[T]) Subscribe(fn Listener[T]) (unsubscribe func()) {
	h.mu.Lock()
	h.nextID++
	id := h.nextID
	h.subs = append(h.subs, subscription[T]{id: id, fn: fn})
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { h.remove(id) })
	}
}

func (h *Hub[T]) remove(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, s := range h.subs {
		if s.id == id {
			h.subs = append(h.subs[:i:i], h.subs[i+1:]...)
			return
		}
	}
}

// Len reports the number of active listeners.
func (h *Hub[T]) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Emit runs apply inside the emit section. When apply reports changed, the
// returned snapshot is delivered to every listener before the section ends,
// so no later transition can overtake it. Emit reports changed.
func (h *Hub[T]) Emit(apply func() (snapshot T, changed bool)) bool {
	h.emitMu.Lock()
	defer h.emitMu.Unlock()

	snapshot, changed := apply()
	if !changed {
		return false
	}

	h.mu.Lock()
	subs := make([]subscription[T], len(h.subs))
	copy(subs, h.subs)
	h.mu.Unlock()

	for _, s := range subs {
		s.fn(snapshot)
	}
	return true
}
