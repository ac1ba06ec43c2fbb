package main

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/suryansh-23/dbglog/internal/config"
)

func resolveConfigPath(override string) (string, error) {
	override = strings.TrimSpace(override)
	if override != "" {
		return override, nil
	}
	if env := strings.TrimSpace(os.Getenv("DBGLOG_CONFIG")); env != "" {
		return env, nil
	}
	return config.DefaultPath()
}

func exists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// colorAllowed reports whether escapes should be written to out. Files that
// are not terminals and NO_COLOR both turn color off.
func colorAllowed(cfg config.Config, out io.Writer) bool {
	if !cfg.Color || os.Getenv("NO_COLOR") != "" {
		return false
	}
	if f, ok := out.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return true
}
