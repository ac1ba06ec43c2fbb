// Package singleton manages the create-once, explicit-destroy lifecycle of a
// single shared instance of a type.
package singleton

import (
	"sync"
	"sync/atomic"
)

// Holder owns at most one live *T. The first Get constructs it; Destroy
// releases it so that a later Get starts a fresh incarnation.
//
// Pointers returned by Get are valid until the next Destroy. Callers must
// re-fetch through Get instead of keeping them across a possible Destroy.
type Holder[T any] struct {
	mu          sync.Mutex
	instance    atomic.Pointer[T]
	ctor        func() *T
	release     func(*T)
	incarnation atomic.Uint64
}

// Option configures a Holder.
type Option[T any] func(*Holder[T])

// WithRelease registers fn to run, under the holder lock, each time an
// instance is destroyed.
func WithRelease[T any](fn func(*T)) Option[T] {
	return func(h *Holder[T]) { h.release = fn }
}

// New returns an empty holder that builds instances with ctor.
// ctor must not call Get on the holder it belongs to.
func New[T any](ctor func() *T, opts ...Option[T]) *Holder[T] {
	if ctor == nil {
		panic("singleton: nil constructor")
	}
	h := &Holder[T]{ctor: ctor}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Get returns the live instance, constructing it on first use.
func (h *Holder[T]) Get() *T {
	if inst := h.instance.Load(); inst != nil {
		return inst
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if inst := h.instance.Load(); inst != nil {
		return inst
	}
	inst := h.ctor()
	if inst == nil {
		panic("singleton: constructor returned nil")
	}
	h.incarnation.Add(1)
	h.instance.Store(inst)
	return inst
}

// Destroy releases the live instance, if any. It is a no-op on an empty
// holder.
func (h *Holder[T]) Destroy() {
	h.mu.Lock()
	defer h.mu.Unlock()
	inst := h.instance.Swap(nil)
	if inst != nil && h.release != nil {
		h.release(inst)
	}
}

// Live reports whether an instance currently exists. It never constructs one.
func (h *Holder[T]) Live() bool {
	return h.instance.Load() != nil
}

// Incarnation returns how many instances the holder has constructed.
func (h *Holder[T]) Incarnation() uint64 {
	return h.incarnation.Load()
}
