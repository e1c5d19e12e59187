// Package batch splits an unbounded list of arguments into comma-separated
// payloads that each stay under a line budget.
package batch

// MaxNamesLine is the default budget for one accumulated payload.
//
// The check compares the accumulated length plus the next token against this
// value and ignores the separating comma and the command prefix, so a
// transmitted line may run a few bytes past it. 490 leaves that slack below
// the 512-byte IRC line limit (prefix and CRLF included).
const MaxNamesLine = 490

// Batcher accumulates tokens until the current payload is full.
type Batcher interface {
	// Add appends token. If the current payload has no room for it, the
	// payload is returned with ok=true and a new one is started with token.
	Add(token string) (payload string, ok bool)

	// Flush returns the pending payload, if any, and resets the batcher.
	Flush() (payload string, ok bool)

	// HasPending returns true if tokens are waiting to be flushed.
	HasPending() bool
}
