//go:build !nodebuglog

package debug

// Compiled reports whether debug output is built into this binary.
const Compiled = true
