package ports

// Transport transmits protocol lines on behalf of the command helpers.
// Implementations are owned by the caller; the helpers only invoke them.
type Transport interface {
	// Send transmits one line. tokens is either a single pre-formatted line
	// or a command token followed by its arguments. Implementations join
	// tokens with single spaces and add the line terminator.
	// Errors are returned to the helper's caller unchanged.
	Send(tokens ...string) error

	// Host returns the host identifier of the session.
	Host() string

	// EndSession marks the session as ended. The transport's own run loop
	// decides what to do with the flag.
	EndSession()
}
