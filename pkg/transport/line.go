package transport

import "strings"

// CRLF terminates IRC protocol lines on the wire.
const CRLF = "\r\n"

// FormatLine joins tokens with single spaces.
func FormatLine(tokens ...string) string {
	return strings.Join(tokens, " ")
}
