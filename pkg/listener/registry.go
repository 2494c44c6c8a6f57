// Package listener provides a concurrency-safe subscription registry with
// explicit, id-keyed unsubscription.
package listener

import (
	"sync"

	"github.com/google/uuid"
)

type SubscriptionID string

type entry[T any] struct {
	id       SubscriptionID
	listener T
}

// Registry holds subscribers in registration order.
type Registry[T any] struct {
	mu      sync.Mutex
	entries []entry[T]
}

func New[T any]() *Registry[T] {
	return &Registry[T]{}
}

// Add registers l and returns the ID to remove it with
func (x *Registry[T]) Add(l T) SubscriptionID {
	id := SubscriptionID(uuid.NewString())

	x.mu.Lock()
	defer x.mu.Unlock()
	x.entries = append(x.entries, entry[T]{id: id, listener: l})

	return id
}

// Remove unregisters the subscriber. It returns false if id is unknown.
func (x *Registry[T]) Remove(id SubscriptionID) bool {
	x.mu.Lock()
	defer x.mu.Unlock()

	for i, e := range x.entries {
		if e.id == id {
			x.entries = append(x.entries[:i:i], x.entries[i+1:]...)
			return true
		}
	}
	return false
}

func (x *Registry[T]) Len() int {
	x.mu.Lock()
	defer x.mu.Unlock()
	return len(x.entries)
}

// Fire calls fn for every subscriber registered at the time of the call, in
// registration order. fn is called without holding the registry lock, so a
// subscriber may add or remove subscriptions while being notified.
func (x *Registry[T]) Fire(fn func(T)) {
	x.mu.Lock()
	snapshot := make([]entry[T], len(x.entries))
	copy(snapshot, x.entries)
	x.mu.Unlock()

	for _, e := range snapshot {
		fn(e.listener)
	}
}
