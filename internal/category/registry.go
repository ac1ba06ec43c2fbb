package category

import (
	"sort"
	"sync"
)

// Registry maps every declared category to its state. It is safe for
// concurrent use; concurrent writers to the same category resolve last
// write wins.
type Registry struct {
	mu     sync.RWMutex
	states map[Category]State
}

// NewRegistry returns a registry with every category enabled.
func NewRegistry() *Registry {
	r := &Registry{states: make(map[Category]State, Count)}
	for c := Category(0); c < Count; c++ {
		r.states[c] = Enabled
	}
	return r
}

// Enable marks c enabled.
func (r *Registry) Enable(c Category) { r.set(c, Enabled) }

// Disable marks c disabled.
func (r *Registry) Disable(c Category) { r.set(c, Disabled) }

// IsEnabled reports whether c is enabled.
func (r *Registry) IsEnabled(c Category) bool { return r.State(c) == Enabled }

// IsDisabled reports whether c is disabled.
func (r *Registry) IsDisabled(c Category) bool { return r.State(c) == Disabled }

// State returns the state of c. It panics for undeclared categories.
func (r *Registry) State(c Category) State {
	mustValid(c)
	r.mu.RLock()
	s := r.states[c]
	r.mu.RUnlock()
	return s
}

// EnableAll marks every category enabled.
func (r *Registry) EnableAll() { r.setAll(Enabled) }

// DisableAll marks every category disabled.
func (r *Registry) DisableAll() { r.setAll(Disabled) }

// Snapshot returns a copy of the current states.
func (r *Registry) Snapshot() map[Category]State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[Category]State, len(r.states))
	for c, s := range r.states {
		out[c] = s
	}
	return out
}

// Enabled lists the enabled categories in ascending order.
func (r *Registry) Enabled() []Category {
	r.mu.RLock()
	out := make([]Category, 0, len(r.states))
	for c, s := range r.states {
		if s == Enabled {
			out = append(out, c)
		}
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (r *Registry) set(c Category, s State) {
	mustValid(c)
	r.mu.Lock()
	r.states[c] = s
	r.mu.Unlock()
}

func (r *Registry) setAll(s State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for c := range r.states {
		r.states[c] = s
	}
}
