package transport

import (
	"fmt"
	"io"
	"sync"
)

// Writer is a Transport that writes each line, CRLF-terminated, to an
// io.Writer. It is safe for concurrent use.
type Writer struct {
	mu    sync.Mutex
	w     io.Writer
	host  string
	ended bool
	lines int
}

// NewWriter creates a Writer for w. host is reported by Host.
func NewWriter(w io.Writer, host string) *Writer {
	return &Writer{w: w, host: host}
}

// Send writes one line.
func (w *Writer) Send(tokens ...string) error {
	line := FormatLine(tokens...) + CRLF

	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err := io.WriteString(w.w, line); err != nil {
		return fmt.Errorf("write line: %w", err)
	}
	w.lines++
	return nil
}

// Host returns the configured host.
func (w *Writer) Host() string {
	return w.host
}

// EndSession marks the session as ended.
func (w *Writer) EndSession() {
	w.mu.Lock()
	w.ended = true
	w.mu.Unlock()
}

// Ended reports whether EndSession has been called.
func (w *Writer) Ended() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.ended
}

// Lines returns the number of lines written.
func (w *Writer) Lines() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lines
}
