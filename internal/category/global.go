package category

import "github.com/suryansh-23/dbglog/internal/singleton"

var holder = singleton.New(NewRegistry)

// Get returns the process-wide registry, creating it with every category
// enabled on first use. Do not keep the result across a call to Destroy.
func Get() *Registry {
	return holder.Get()
}

// Destroy drops the process-wide registry. The next Get builds a fresh one.
func Destroy() {
	holder.Destroy()
}

// Live reports whether the process-wide registry currently exists.
func Live() bool {
	return holder.Live()
}
