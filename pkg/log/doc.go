// Package log provides the logging abstraction used by ircsend.
//
// Library code only logs when something noteworthy happens outside a call
// path, such as a symbolic-name collision while building a command surface
// or a numeric table that failed to reload. The helpers that format and
// transmit commands never log.
//
// Use the zerolog adapter:
//
//	logger := log.NewZerologAdapter()
//
// Or discard everything:
//
//	logger := log.NewNoopLogger()
package log
