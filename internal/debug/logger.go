// Package debug provides the categorized debug print entry points.
//
// Every call consults the category registry and prints nothing when its
// category is disabled. Building with the nodebuglog tag turns every entry
// point into a no-op.
package debug

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/suryansh-23/dbglog/internal/ansi"
	"github.com/suryansh-23/dbglog/internal/category"
)

const prefix = ">>> "

// Entry describes how a single message is rendered.
type Entry struct {
	Category category.Category
	Color    ansi.Color
	HasColor bool
	ShowTime bool
}

// Logger writes categorized debug lines to a single stream.
type Logger struct {
	mu       sync.Mutex
	out      io.Writer
	enabled  atomic.Bool
	color    bool
	now      func() time.Time
	registry func() *category.Registry
}

// Option configures a Logger.
type Option func(*Logger)

// WithEnabled sets the master switch. A disabled logger prints nothing.
func WithEnabled(enabled bool) Option {
	return func(l *Logger) { l.enabled.Store(enabled) }
}

// WithColor controls whether color escapes are written.
func WithColor(color bool) Option {
	return func(l *Logger) { l.color = color }
}

// WithClock replaces the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) { l.now = now }
}

// WithRegistry replaces the registry lookup. It defaults to category.Get.
func WithRegistry(fn func() *category.Registry) Option {
	return func(l *Logger) { l.registry = fn }
}

// New returns an enabled, color-capable logger writing to out.
func New(out io.Writer, opts ...Option) *Logger {
	if out == nil {
		out = os.Stderr
	}
	l := &Logger{
		out:      out,
		color:    true,
		now:      time.Now,
		registry: category.Get,
	}
	l.enabled.Store(true)
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// SetOutput redirects subsequent output to out.
func (l *Logger) SetOutput(out io.Writer) {
	if out == nil {
		out = os.Stderr
	}
	l.mu.Lock()
	l.out = out
	l.mu.Unlock()
}

// SetEnabled flips the master switch.
func (l *Logger) SetEnabled(enabled bool) {
	l.enabled.Store(enabled)
}

// Enabled reports whether the logger would print a message in c.
func (l *Logger) Enabled(c category.Category) bool {
	if !Compiled || l == nil || !l.enabled.Load() {
		return false
	}
	return l.registry().IsEnabled(c)
}

// Log prints args in the default category.
func (l *Logger) Log(args ...any) {
	l.Emit(Entry{Category: category.Default}, args...)
}

// LogCategory prints args in category c.
func (l *Logger) LogCategory(c category.Category, args ...any) {
	l.Emit(Entry{Category: c}, args...)
}

// LogColor prints args in the default category using color.
func (l *Logger) LogColor(color ansi.Color, args ...any) {
	l.Emit(Entry{Category: category.Default, Color: color, HasColor: true}, args...)
}

// LogCategoryColor prints args in category c using color.
func (l *Logger) LogCategoryColor(c category.Category, color ansi.Color, args ...any) {
	l.Emit(Entry{Category: c, Color: color, HasColor: true}, args...)
}

// LogColorTime prints args in the default category using color, preceded by
// the call time when showTime is set.
func (l *Logger) LogColorTime(color ansi.Color, showTime bool, args ...any) {
	l.Emit(Entry{Category: category.Default, Color: color, HasColor: true, ShowTime: showTime}, args...)
}

// LogCategoryColorTime prints args in category c using color, preceded by
// the call time when showTime is set.
func (l *Logger) LogCategoryColorTime(c category.Category, color ansi.Color, showTime bool, args ...any) {
	l.Emit(Entry{Category: c, Color: color, HasColor: true, ShowTime: showTime}, args...)
}

// Logf prints a formatted message in category c.
func (l *Logger) Logf(c category.Category, format string, args ...any) {
	if !l.Enabled(c) {
		return
	}
	l.write(Entry{Category: c}, fmt.Sprintf(format, args...))
}

// Infof writes a plain formatted line when the logger is enabled,
// regardless of category state.
func (l *Logger) Infof(format string, args ...any) {
	if !Compiled || l == nil || !l.enabled.Load() {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = fmt.Fprintf(l.out, format+"\n", args...)
}

// Emit renders args back to back, without separators, according to e.
func (l *Logger) Emit(e Entry, args ...any) {
	if !l.Enabled(e.Category) {
		return
	}
	l.write(e, args...)
}

func (l *Logger) write(e Entry, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if e.ShowTime {
		_, _ = io.WriteString(l.out, l.now().Format(time.ANSIC)+"\n")
	}
	colored := e.HasColor && l.color
	_, _ = io.WriteString(l.out, prefix)
	if colored {
		_, _ = io.WriteString(l.out, ansi.Code(e.Color))
	}
	for _, arg := range args {
		_, _ = fmt.Fprint(l.out, arg)
	}
	if colored {
		_, _ = io.WriteString(l.out, ansi.Reset)
	}
	_, _ = io.WriteString(l.out, "\n")
}
