package debug

import (
	"io"
	"os"

	"github.com/suryansh-23/dbglog/internal/ansi"
	"github.com/suryansh-23/dbglog/internal/category"
	"github.com/suryansh-23/dbglog/internal/singleton"
)

var defaultLogger = singleton.New(func() *Logger { return New(os.Stdout) })

// Default returns the shared stdout logger used by the package-level helpers.
func Default() *Logger {
	return defaultLogger.Get()
}

// SetOutput redirects the shared logger to out.
func SetOutput(out io.Writer) {
	Default().SetOutput(out)
}

// ResetDefault drops the shared logger; the next use starts a fresh one on
// stdout.
func ResetDefault() {
	defaultLogger.Destroy()
}

// Log prints args in the default category on the shared logger.
func Log(args ...any) { Default().Log(args...) }

// LogCategory prints args in category c on the shared logger.
func LogCategory(c category.Category, args ...any) { Default().LogCategory(c, args...) }

// LogColor prints args in color on the shared logger.
func LogColor(color ansi.Color, args ...any) { Default().LogColor(color, args...) }

// Logf prints a formatted message in category c on the shared logger.
func Logf(c category.Category, format string, args ...any) { Default().Logf(c, format, args...) }
