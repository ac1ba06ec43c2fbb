package ptywrap

import (
	"bytes"
	"errors"
	"sync"

	"github.com/suryansh-23/dbglog/internal/ansi"
	"github.com/suryansh-23/dbglog/internal/debug"
)

const maxLineBytes = 64 << 10

var ErrWriterClosed = errors.New("line writer closed")

// LineWriter re-emits relayed output through a debug logger, one message per
// line. Carriage returns before a newline are dropped.
type LineWriter struct {
	mu        sync.Mutex
	logger    *debug.Logger
	entry     debug.Entry
	stripANSI bool
	buf       []byte
	closed    bool
}

// NewLineWriter returns a writer that logs each complete line as entry.
// When stripANSI is set, escape sequences are removed before logging.
func NewLineWriter(logger *debug.Logger, entry debug.Entry, stripANSI bool) *LineWriter {
	return &LineWriter{logger: logger, entry: entry, stripANSI: stripANSI}
}

func (w *LineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return 0, ErrWriterClosed
	}
	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.emit(w.buf[:i])
		w.buf = w.buf[i+1:]
	}
	if len(w.buf) >= maxLineBytes {
		w.emit(w.buf)
		w.buf = nil
	}
	return len(p), nil
}

// Close logs any trailing partial line. Further writes fail.
func (w *LineWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true
	if len(w.buf) > 0 {
		w.emit(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *LineWriter) emit(line []byte) {
	line = bytes.TrimSuffix(line, []byte("\r"))
	if w.stripANSI {
		line = ansi.Strip(line)
	}
	w.logger.Emit(w.entry, string(line))
}
