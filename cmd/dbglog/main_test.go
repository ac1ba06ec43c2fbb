package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/suryansh-23/dbglog/internal/ansi"
	"github.com/suryansh-23/dbglog/internal/category"
	"github.com/suryansh-23/dbglog/internal/config"
)

type cliResult struct {
	debug  string
	stdout string
	stderr string
}

func runCLI(t *testing.T, args ...string) (cliResult, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("DBGLOG_CONFIG", "")
	t.Setenv("NO_COLOR", "")
	category.Destroy()
	t.Cleanup(category.Destroy)

	var debugOut, stdout, stderr bytes.Buffer
	state := &appState{out: &debugOut}
	cmd := newRootCmd(state)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return cliResult{debug: debugOut.String(), stdout: stdout.String(), stderr: stderr.String()}, err
}

func TestEmitDefault(t *testing.T) {
	res, err := runCLI(t, "emit", "hello", "world")
	if err != nil {
		t.Fatalf("emit: %v", err)
	}
	if res.debug != ">>> hello world\n" {
		t.Fatalf("debug output = %q", res.debug)
	}
}

func TestEmitColorAndFormat(t *testing.T) {
	res, err := runCLI(t, "emit", "-c", "error", "--color", "red", "-f", "%s=%s", "k", "v")
	if err != nil {
		t.Fatalf("emit: %v", err)
	}
	want := ">>> " + ansi.Code(ansi.Red) + "k=v" + ansi.Reset + "\n"
	if res.debug != want {
		t.Fatalf("debug output = %q, want %q", res.debug, want)
	}
}

func TestEmitNoColorFlag(t *testing.T) {
	res, err := runCLI(t, "--no-color", "emit", "--color", "green", "plain")
	if err != nil {
		t.Fatalf("emit: %v", err)
	}
	if res.debug != ">>> plain\n" {
		t.Fatalf("debug output = %q", res.debug)
	}
}

func TestEmitDisabledCategory(t *testing.T) {
	res, err := runCLI(t, "--disable", "core,threads", "emit", "-c", "core", "hidden")
	if err != nil {
		t.Fatalf("emit: %v", err)
	}
	if res.debug != "" {
		t.Fatalf("disabled category wrote %q", res.debug)
	}
}

func TestEnableWinsOverDisable(t *testing.T) {
	res, err := runCLI(t, "--disable", "core", "--enable", "core", "emit", "-c", "core", "shown")
	if err != nil {
		t.Fatalf("emit: %v", err)
	}
	if res.debug != ">>> shown\n" {
		t.Fatalf("debug output = %q", res.debug)
	}
}

func TestOffFlagSilencesEverything(t *testing.T) {
	res, err := runCLI(t, "--off", "emit", "nothing")
	if err != nil {
		t.Fatalf("emit: %v", err)
	}
	if res.debug != "" {
		t.Fatalf("--off wrote %q", res.debug)
	}
}

func TestEmitUnknownCategory(t *testing.T) {
	_, err := runCLI(t, "emit", "-c", "render", "x")
	if !errors.Is(err, category.ErrUnknownCategory) {
		t.Fatalf("err = %v, want ErrUnknownCategory", err)
	}
}

func TestEmitUnknownColor(t *testing.T) {
	_, err := runCLI(t, "emit", "--color", "chartreuse", "x")
	if !errors.Is(err, ansi.ErrUnknownColor) {
		t.Fatalf("err = %v, want ErrUnknownColor", err)
	}
}

func TestCategoriesEnabledList(t *testing.T) {
	res, err := runCLI(t, "--disable", "error", "categories", "--enabled")
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	if res.stdout != "default\ncore\neditor\ncomponent\nthreads\n" {
		t.Fatalf("stdout = %q", res.stdout)
	}
}

func TestRegistryReleasedAfterCommand(t *testing.T) {
	if _, err := runCLI(t, "--disable", "editor", "categories"); err != nil {
		t.Fatalf("categories: %v", err)
	}
	if category.Live() {
		t.Fatalf("registry still live after command")
	}
	if !category.Get().IsEnabled(category.Editor) {
		t.Fatalf("editor state survived teardown")
	}
}

func TestDoctorReportsConfig(t *testing.T) {
	res, err := runCLI(t, "--disable", "default,error,core,editor,component,threads", "doctor")
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	for _, want := range []string{"config_found=false", "output=stderr", "compiled=true", "categories_enabled=none"} {
		if !strings.Contains(res.stdout, want) {
			t.Fatalf("doctor output missing %q:\n%s", want, res.stdout)
		}
	}
}

func TestInitDefaultWritesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg", "config.yaml")
	res, err := runCLI(t, "--config", path, "init", "--default")
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if !strings.Contains(res.stdout, "Wrote config to "+path) {
		t.Fatalf("stdout = %q", res.stdout)
	}
	cfg, found, err := config.Load(path)
	if err != nil || !found {
		t.Fatalf("load: found=%t err=%v", found, err)
	}
	if cfg != config.DefaultConfig() {
		t.Fatalf("cfg = %+v", cfg)
	}

	if _, err := runCLI(t, "--config", path, "reset", "--yes"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("config still present: %v", err)
	}
}

func TestConfigTimestampsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := config.DefaultConfig()
	cfg.Timestamps = true
	if err := config.Write(path, cfg); err != nil {
		t.Fatalf("write: %v", err)
	}
	res, err := runCLI(t, "--config", path, "emit", "stamped")
	if err != nil {
		t.Fatalf("emit: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(res.debug, "\n"), "\n")
	if len(lines) != 2 || lines[1] != ">>> stamped" {
		t.Fatalf("debug output = %q", res.debug)
	}

	res, err = runCLI(t, "--config", path, "emit", "--time=false", "bare")
	if err != nil {
		t.Fatalf("emit: %v", err)
	}
	if res.debug != ">>> bare\n" {
		t.Fatalf("debug output = %q", res.debug)
	}
}

func TestRunRequiresCommand(t *testing.T) {
	if _, err := runCLI(t, "run"); err == nil {
		t.Fatalf("expected error without command")
	}
}

func TestRunRelaysExitCode(t *testing.T) {
	res, err := runCLI(t, "run", "-c", "threads", "--", "/bin/sh", "-c", "echo relayed; exit 3")
	var exitErr *exitCodeError
	if !errors.As(err, &exitErr) || exitErr.code != 3 {
		t.Fatalf("err = %v, want exit code 3", err)
	}
	if res.debug != ">>> relayed\n" {
		t.Fatalf("debug output = %q", res.debug)
	}
}

func TestVersion(t *testing.T) {
	res, err := runCLI(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(res.stdout, "dbglog dev") && !strings.Contains(res.stdout, "dbglog v") {
		t.Fatalf("stdout = %q", res.stdout)
	}
}
