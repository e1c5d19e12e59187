package domain

import "strings"

// BatchLine accumulates comma-terminated tokens for a single protocol line.
type BatchLine struct {
	buf strings.Builder
}

// Len returns the accumulated length in bytes.
func (b *BatchLine) Len() int {
	return b.buf.Len()
}

// Empty returns true if nothing has been appended since the last reset.
func (b *BatchLine) Empty() bool {
	return b.buf.Len() == 0
}

// Append adds token followed by a comma.
func (b *BatchLine) Append(token string) {
	b.buf.WriteString(token)
	b.buf.WriteByte(',')
}

// String returns the accumulated tokens, trailing comma included.
func (b *BatchLine) String() string {
	return b.buf.String()
}

// Reset clears the line for reuse.
func (b *BatchLine) Reset() {
	b.buf.Reset()
}
