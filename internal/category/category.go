// Package category tracks which debug-log categories are enabled.
//
// The registry is a process-wide instance reached through Get. It starts with
// every category enabled and returns to that state after Destroy.
package category

import (
	"errors"
	"fmt"
	"strings"
)

// Category identifies a bucket of debug messages.
type Category int

const (
	Default Category = iota
	Error
	Core
	Editor
	Component
	Threads

	// Count is the number of declared categories. New categories go above it.
	Count
)

var names = [Count]string{
	Default:   "default",
	Error:     "error",
	Core:      "core",
	Editor:    "editor",
	Component: "component",
	Threads:   "threads",
}

var ErrUnknownCategory = errors.New("unknown category")

// Valid reports whether c is a declared category.
func (c Category) Valid() bool {
	return c >= 0 && c < Count
}

func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return names[c]
}

// All returns every declared category in ascending order.
func All() []Category {
	out := make([]Category, 0, Count)
	for c := Category(0); c < Count; c++ {
		out = append(out, c)
	}
	return out
}

// Parse resolves a category by name, ignoring case and surrounding space.
func Parse(name string) (Category, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for c := Category(0); c < Count; c++ {
		if names[c] == key {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

// ParseList resolves a comma-separated list of names. Empty entries are skipped.
func ParseList(list string) ([]Category, error) {
	var out []Category
	for _, part := range strings.Split(list, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		c, err := Parse(part)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// State is the enabled/disabled state of a category.
type State int

const (
	Enabled State = iota
	Disabled
)

func (s State) String() string {
	switch s {
	case Enabled:
		return "enabled"
	case Disabled:
		return "disabled"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

func mustValid(c Category) {
	if !c.Valid() {
		panic(fmt.Sprintf("category: undeclared category %d", int(c)))
	}
}
