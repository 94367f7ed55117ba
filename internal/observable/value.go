// Package observable provides a thread-safe value holder that notifies
// subscribers on every change.
package observable

import "sync"

// Value holds a current value of type T and a set of subscribers.
// The zero Value is not usable; construct one with New.
type Value[T any] struct {
	mu      sync.RWMutex
	current T
	nextID  uint64
	subs    map[uint64]func(T)
	equal   func(a, b T) bool
}

// New returns a Value initialised to v.
func New[T any](v T) *Value[T] {
	return &Value[T]{current: v, subs: make(map[uint64]func(T))}
}

// NewComparable returns a Value that skips notifications when Set is called
// with a value equal to the current one.
func NewComparable[T comparable](v T) *Value[T] {
	o := New(v)
	o.equal = func(a, b T) bool { return a == b }
	return o
}

// Get returns the current value.
func (o *Value[T]) Get() T {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.current
}

// Set stores v and calls every subscriber with it, outside the lock and in
// no particular order.
func (o *Value[T]) Set(v T) {
	o.mu.Lock()
	o.store(v)
}

// Update applies fn to the current value and stores the result in the same
// critical section, so concurrent updates never overwrite each other.
func (o *Value[T]) Update(fn func(T) T) {
	o.mu.Lock()
	o.store(fn(o.current))
}

// store must be called with mu held; it releases mu before notifying.
func (o *Value[T]) store(v T) {
	if o.equal != nil && o.equal(o.current, v) {
		o.mu.Unlock()
		return
	}
	o.current = v
	subs := make([]func(T), 0, len(o.subs))
	for _, fn := range o.subs {
		subs = append(subs, fn)
	}
	o.mu.Unlock()

	for _, fn := range subs {
		fn(v)
	}
}

// Subscribe registers fn for future changes and returns a function that
// removes it. fn is not called with the current value.
func (o *Value[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	o.mu.Lock()
	id := o.nextID
	o.nextID++
	o.subs[id] = fn
	o.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			o.mu.Lock()
			delete(o.subs, id)
			o.mu.Unlock()
		})
	}
}
