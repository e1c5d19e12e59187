// Package ircsend formats IRC client commands and server numeric replies
// as wire lines.
//
// Example usage:
//
//	out := ircsend.NewWriter(os.Stdout, "irc.example.org")
//	surface, err := ircsend.Default()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := surface.Call(out, "join", "#go"); err != nil {
//	    log.Fatal(err)
//	}
//	if err := ircsend.Names(out, "#go", "#rust"); err != nil {
//	    log.Fatal(err)
//	}
//
// The helpers live in pkg/ircsend; this package re-exports the common
// entry points.
package ircsend

import (
	"io"

	"github.com/bft-labs/ircsend/pkg/ircsend"
	"github.com/bft-labs/ircsend/pkg/numeric"
	"github.com/bft-labs/ircsend/pkg/transport"
)

// Transport sends one line of tokens. See pkg/ircsend.Transport.
type Transport = ircsend.Transport

// Surface is a built command surface.
type Surface = ircsend.Surface

// Holder publishes a Surface that can be swapped at runtime.
type Holder = ircsend.Holder

// NumericTable maps numeric reply codes to symbolic names.
type NumericTable = numeric.Table

// Default returns the surface built from the built-in numeric registry.
func Default() (*Surface, error) {
	return ircsend.Default()
}

// Build builds a surface from table.
func Build(table NumericTable) (*Surface, error) {
	return ircsend.Build(table)
}

// NewHolder creates a Holder publishing s.
func NewHolder(s *Surface) *Holder {
	return ircsend.NewHolder(s)
}

// DefaultNumerics returns a copy of the built-in numeric registry.
func DefaultNumerics() NumericTable {
	return numeric.Default()
}

// NewWriter returns a Transport writing CRLF-terminated lines to w.
func NewWriter(w io.Writer, host string) *transport.Writer {
	return transport.NewWriter(w, host)
}

// Msg sends text to user as PRIVMSG. See pkg/ircsend.Msg.
func Msg(t Transport, user, text string) error {
	return ircsend.Msg(t, user, text)
}

// Names sends NAMES for channels in budgeted batches. See pkg/ircsend.Names.
func Names(t Transport, channels ...string) error {
	return ircsend.Names(t, channels...)
}
