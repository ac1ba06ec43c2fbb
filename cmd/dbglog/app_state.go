package main

import (
	"fmt"
	"io"

	clog "github.com/charmbracelet/log"

	"github.com/suryansh-23/dbglog/internal/config"
	"github.com/suryansh-23/dbglog/internal/debug"
)

type appState struct {
	cfg      config.Config
	cfgFound bool
	cfgPath  string
	color    bool
	logger   *debug.Logger
	log      *clog.Logger

	// out overrides the configured output stream; tests set it.
	out io.Writer
}

type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("command exited with code %d", e.code)
}
