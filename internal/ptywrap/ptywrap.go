// Package ptywrap runs a child command under a pseudo-terminal and relays its
// output, so tools that only color or line-buffer on a TTY behave as they
// would interactively.
package ptywrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	clog "github.com/charmbracelet/log"
	"github.com/creack/pty"
	"golang.org/x/term"
)

// Options controls PTY execution behavior.
type Options struct {
	// Input is copied to the child. Nil leaves the child without input.
	Input io.Reader
	// Output receives everything the child writes. Defaults to os.Stdout.
	// When it implements io.Closer it is closed after the child exits.
	Output io.Writer
	// RawMode puts the controlling terminal in raw mode while the child runs.
	RawMode bool
	// Log receives relay diagnostics. Nil discards them.
	Log *clog.Logger
}

// RunCommand starts cmd under a PTY, relays IO and returns the exit code.
func RunCommand(ctx context.Context, cmd *exec.Cmd, opts Options) (int, error) {
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return 1, fmt.Errorf("start pty: %w", err)
	}
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	logger := opts.Log
	if logger == nil {
		logger = clog.New(io.Discard)
	}
	logger.Debug("pty started", "pid", cmd.Process.Pid, "args", cmd.Args)

	restore, err := maybeMakeRaw(opts.RawMode)
	if err != nil {
		_ = ptmx.Close()
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
		return 1, err
	}
	if restore != nil {
		defer restore()
	}

	if err := pty.InheritSize(os.Stdin, ptmx); err != nil {
		logger.Debug("inherit size", "err", err)
	}
	stopSignals := forwardSignals(cmd.Process, ptmx)
	defer stopSignals()

	exited := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			logger.Debug("context done, terminating child", "err", ctx.Err())
			_ = cmd.Process.Signal(syscall.SIGTERM)
		case <-exited:
		}
	}()

	if opts.Input != nil {
		go func() { _, _ = io.Copy(ptmx, opts.Input) }()
	}
	copied := make(chan error, 1)
	go func() {
		_, err := io.Copy(out, ptmx)
		copied <- err
	}()

	waitErr := cmd.Wait()
	close(exited)
	// The PTY reports EIO once the child side is closed; that ends the copy.
	copyErr := <-copied
	_ = ptmx.Close()
	if closer, ok := out.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			logger.Debug("close output", "err", err)
		}
	}
	if copyErr != nil && !isPTYClosed(copyErr) {
		logger.Debug("relay ended", "err", copyErr)
	}

	if waitErr == nil {
		return 0, nil
	}
	code := exitCode(waitErr)
	logger.Debug("child exited", "code", code)
	return code, nil
}

func isPTYClosed(err error) bool {
	return errors.Is(err, syscall.EIO) || errors.Is(err, os.ErrClosed)
}

func maybeMakeRaw(enable bool) (func(), error) {
	if !enable {
		return nil, nil
	}
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, nil
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("set raw mode: %w", err)
	}
	return func() { _ = term.Restore(fd, state) }, nil
}

func forwardSignals(proc *os.Process, ptmx *os.File) func() {
	if proc == nil {
		return func() {}
	}
	ch := make(chan os.Signal, 8)
	signal.Notify(ch, syscall.SIGWINCH, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for sig := range ch {
			if sig == syscall.SIGWINCH {
				_ = pty.InheritSize(os.Stdin, ptmx)
				continue
			}
			_ = proc.Signal(sig)
		}
	}()

	return func() {
		signal.Stop(ch)
		close(ch)
		<-done
	}
}

func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if status, ok := exitErr.Sys().(syscall.WaitStatus); ok {
			if status.Signaled() {
				return 128 + int(status.Signal())
			}
			return status.ExitStatus()
		}
	}
	return 1
}
