package transport

import "sync"

// Recorder is a Transport that keeps every line in memory.
// It is safe for concurrent use.
type Recorder struct {
	mu       sync.Mutex
	host     string
	sends    [][]string
	ends     int
	failAt   int
	failWith error
}

// NewRecorder creates a Recorder reporting host.
func NewRecorder(host string) *Recorder {
	return &Recorder{host: host}
}

// FailAt makes the n-th Send (1-based) and every later one return err
// without recording anything.
func (r *Recorder) FailAt(n int, err error) {
	r.mu.Lock()
	r.failAt = n
	r.failWith = err
	r.mu.Unlock()
}

// Send records tokens.
func (r *Recorder) Send(tokens ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil && len(r.sends)+1 >= r.failAt {
		return r.failWith
	}
	r.sends = append(r.sends, append([]string(nil), tokens...))
	return nil
}

// Host returns the configured host.
func (r *Recorder) Host() string {
	return r.host
}

// EndSession counts calls.
func (r *Recorder) EndSession() {
	r.mu.Lock()
	r.ends++
	r.mu.Unlock()
}

// Lines returns every recorded line, tokens joined by spaces.
func (r *Recorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	lines := make([]string, len(r.sends))
	for i, tokens := range r.sends {
		lines[i] = FormatLine(tokens...)
	}
	return lines
}

// Sends returns a copy of the raw token lists passed to Send.
func (r *Recorder) Sends() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([][]string, len(r.sends))
	for i, tokens := range r.sends {
		out[i] = append([]string(nil), tokens...)
	}
	return out
}

// Ended reports whether EndSession has been called.
func (r *Recorder) Ended() bool {
	return r.EndCount() > 0
}

// EndCount returns how many times EndSession has been called.
func (r *Recorder) EndCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ends
}

// Reset forgets every recorded line and session end.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.sends = nil
	r.ends = 0
	r.mu.Unlock()
}
