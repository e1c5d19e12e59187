package batch

import "github.com/bft-labs/ircsend/internal/domain"

// LineBatcher is the Batcher used for NAMES-style commands.
type LineBatcher struct {
	line  domain.BatchLine
	limit int
}

// NewLineBatcher creates a batcher with the given budget.
// A limit <= 0 selects MaxNamesLine.
func NewLineBatcher(limit int) *LineBatcher {
	if limit <= 0 {
		limit = MaxNamesLine
	}
	return &LineBatcher{limit: limit}
}

// Limit returns the configured budget.
func (b *LineBatcher) Limit() int {
	return b.limit
}

// Add appends token, flushing the current payload first when
// len(payload)+len(token) would exceed the budget. A token that is larger
// than the budget on its own is never split; it ends up alone in a payload.
func (b *LineBatcher) Add(token string) (string, bool) {
	var payload string
	var flushed bool
	if !b.line.Empty() && b.line.Len()+len(token) > b.limit {
		payload = b.line.String()
		flushed = true
		b.line.Reset()
	}
	b.line.Append(token)
	return payload, flushed
}

// Flush returns the pending payload and resets the batcher.
func (b *LineBatcher) Flush() (string, bool) {
	if b.line.Empty() {
		return "", false
	}
	payload := b.line.String()
	b.line.Reset()
	return payload, true
}

// HasPending returns true if tokens are waiting to be flushed.
func (b *LineBatcher) HasPending() bool {
	return !b.line.Empty()
}

// Split runs tokens through a LineBatcher with the given limit and returns
// every payload in order.
func Split(tokens []string, limit int) []string {
	b := NewLineBatcher(limit)
	var payloads []string
	for _, tok := range tokens {
		if p, ok := b.Add(tok); ok {
			payloads = append(payloads, p)
		}
	}
	if p, ok := b.Flush(); ok {
		payloads = append(payloads, p)
	}
	return payloads
}

var _ Batcher = (*LineBatcher)(nil)
