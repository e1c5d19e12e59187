package ircsend

import "sync/atomic"

// Holder publishes the current Surface to concurrent readers and lets a
// reloader replace it atomically.
type Holder struct {
	p atomic.Pointer[Surface]
}

// NewHolder creates a holder serving s.
func NewHolder(s *Surface) *Holder {
	h := &Holder{}
	h.p.Store(s)
	return h
}

// Load returns the current Surface.
func (h *Holder) Load() *Surface {
	return h.p.Load()
}

// Store replaces the current Surface. A nil Surface is ignored.
func (h *Holder) Store(s *Surface) {
	if s != nil {
		h.p.Store(s)
	}
}
