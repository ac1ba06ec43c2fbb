//go:build nodebuglog

package debug

// Compiled is false in builds tagged nodebuglog; every entry point is a no-op.
const Compiled = false
