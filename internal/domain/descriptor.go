package domain

import "fmt"

// Descriptor names a generated command and the token it transmits.
type Descriptor struct {
	// Name is the name the command is addressed by ("join", "ERR_NOSUCHNICK")
	Name string

	// Token is the command token placed on the wire ("JOIN", "401")
	Token string

	// Code is the numeric reply code, or 0 for simple verbs
	Code int
}

// VerbDescriptor describes a simple verb.
func VerbDescriptor(v Verb) Descriptor {
	return Descriptor{Name: v.String(), Token: v.Command()}
}

// NumericDescriptor describes a numeric reply addressed by its symbolic name.
// The token is the code zero-padded to three digits.
func NumericDescriptor(code int, name string) Descriptor {
	return Descriptor{Name: name, Token: NumericToken(code), Code: code}
}

// NumericToken formats a numeric reply code as it appears on the wire.
func NumericToken(code int) string {
	return fmt.Sprintf("%03d", code)
}

// IsNumeric reports whether the descriptor was generated from a numeric table.
func (d Descriptor) IsNumeric() bool {
	return d.Code != 0
}
