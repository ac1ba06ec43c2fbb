//go:build !nodebuglog

package debug

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/suryansh-23/dbglog/internal/ansi"
	"github.com/suryansh-23/dbglog/internal/category"
)

func newTestLogger(buf *bytes.Buffer, opts ...Option) (*Logger, *category.Registry) {
	reg := category.NewRegistry()
	base := []Option{
		WithRegistry(func() *category.Registry { return reg }),
		WithClock(func() time.Time { return time.Date(2024, time.March, 5, 9, 4, 7, 0, time.UTC) }),
	}
	return New(buf, append(base, opts...)...), reg
}

func TestLogConcatenatesArgs(t *testing.T) {
	var buf bytes.Buffer
	l, _ := newTestLogger(&buf)
	l.Log("Loading next level", 69, 420.69)
	if got := buf.String(); got != ">>> Loading next level69420.69\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestLogCategoryDisabledPrintsNothing(t *testing.T) {
	var buf bytes.Buffer
	l, reg := newTestLogger(&buf)
	reg.Disable(category.Core)
	l.LogCategory(category.Core, "hidden")
	l.LogCategoryColor(category.Core, ansi.Red, "hidden")
	l.LogCategoryColorTime(category.Core, ansi.Red, true, "hidden")
	l.Logf(category.Core, "hidden %d", 1)
	if buf.Len() != 0 {
		t.Fatalf("disabled category wrote %q", buf.String())
	}
	l.LogCategory(category.Editor, "shown")
	if got := buf.String(); got != ">>> shown\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestDefaultOverloadsUseDefaultCategory(t *testing.T) {
	var buf bytes.Buffer
	l, reg := newTestLogger(&buf)
	reg.Disable(category.Default)
	l.Log("a")
	l.LogColor(ansi.Green, "b")
	l.LogColorTime(ansi.Green, true, "c")
	if buf.Len() != 0 {
		t.Fatalf("default category disabled but wrote %q", buf.String())
	}
}

func TestLogColorWrapsCodes(t *testing.T) {
	var buf bytes.Buffer
	l, _ := newTestLogger(&buf)
	l.LogCategoryColor(category.Error, ansi.Red, "boom ", 3)
	want := ">>> " + ansi.Code(ansi.Red) + "boom 3" + ansi.Reset + "\n"
	if got := buf.String(); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestLogColorSuppressedWhenColorOff(t *testing.T) {
	var buf bytes.Buffer
	l, _ := newTestLogger(&buf, WithColor(false))
	l.LogColor(ansi.Blue, "plain")
	if got := buf.String(); got != ">>> plain\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestLogTimestampLine(t *testing.T) {
	var buf bytes.Buffer
	l, _ := newTestLogger(&buf, WithColor(false))
	l.LogCategoryColorTime(category.Threads, ansi.Cyan, true, "tick")
	want := "Tue Mar  5 09:04:07 2024\n>>> tick\n"
	if got := buf.String(); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}

	buf.Reset()
	l.LogColorTime(ansi.Cyan, false, "tock")
	if got := buf.String(); got != ">>> tock\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestDisabledLoggerPrintsNothing(t *testing.T) {
	var buf bytes.Buffer
	l, _ := newTestLogger(&buf, WithEnabled(false))
	l.Log("x")
	l.Infof("y")
	if buf.Len() != 0 {
		t.Fatalf("disabled logger wrote %q", buf.String())
	}
	l.SetEnabled(true)
	l.Infof("z=%d", 1)
	if got := buf.String(); got != "z=1\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestLogf(t *testing.T) {
	var buf bytes.Buffer
	l, _ := newTestLogger(&buf)
	l.Logf(category.Component, "%s=%d", "n", 4)
	if got := buf.String(); got != ">>> n=4\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	var l *Logger
	l.Log("x")
	l.Infof("y")
	if l.Enabled(category.Default) {
		t.Fatalf("nil logger reported enabled")
	}
}

func TestConcurrentLinesDoNotInterleave(t *testing.T) {
	var buf bytes.Buffer
	l, _ := newTestLogger(&buf)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				l.Log("abc", "def")
			}
		}()
	}
	wg.Wait()
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 320 {
		t.Fatalf("lines = %d", len(lines))
	}
	for _, line := range lines {
		if line != ">>> abcdef" {
			t.Fatalf("interleaved line %q", line)
		}
	}
}

func TestGlobalRegistryConsulted(t *testing.T) {
	category.Destroy()
	t.Cleanup(category.Destroy)

	var buf bytes.Buffer
	l := New(&buf)
	category.Get().Disable(category.Error)
	l.LogCategory(category.Error, "nope")
	if buf.Len() != 0 {
		t.Fatalf("wrote %q", buf.String())
	}
	category.Destroy()
	l.LogCategory(category.Error, "yes")
	if got := buf.String(); got != ">>> yes\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestDefaultLoggerHelpers(t *testing.T) {
	category.Destroy()
	ResetDefault()
	t.Cleanup(func() {
		ResetDefault()
		category.Destroy()
	})

	var buf bytes.Buffer
	SetOutput(&buf)
	Log("one")
	LogCategory(category.Editor, "two")
	LogColor(ansi.Yellow, "three")
	Logf(category.Core, "four=%d", 4)

	want := ">>> one\n>>> two\n>>> " + ansi.Code(ansi.Yellow) + "three" + ansi.Reset + "\n>>> four=4\n"
	if got := buf.String(); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
	if Default() != Default() {
		t.Fatalf("Default returned distinct loggers")
	}
}
