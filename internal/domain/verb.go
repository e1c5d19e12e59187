package domain

import "strings"

// Verb is one of the simple IRC verbs whose helper forwards its arguments
// unchanged.
type Verb int

const (
	VerbJoin Verb = iota
	VerbPart
	VerbNick
	VerbNotice
	VerbInvite
	VerbMode
)

var verbNames = [...]string{
	VerbJoin:   "join",
	VerbPart:   "part",
	VerbNick:   "nick",
	VerbNotice: "notice",
	VerbInvite: "invite",
	VerbMode:   "mode",
}

// SimpleVerbs returns every simple verb in declaration order.
func SimpleVerbs() []Verb {
	verbs := make([]Verb, len(verbNames))
	for i := range verbNames {
		verbs[i] = Verb(i)
	}
	return verbs
}

// Valid reports whether v is a declared verb.
func (v Verb) Valid() bool {
	return v >= 0 && int(v) < len(verbNames)
}

// String returns the lower-case name the verb is addressed by.
func (v Verb) String() string {
	if !v.Valid() {
		return "unknown"
	}
	return verbNames[v]
}

// Command returns the wire token for the verb, e.g. "JOIN".
func (v Verb) Command() string {
	return strings.ToUpper(v.String())
}

// ParseVerb maps a name such as "join" or "JOIN" to its Verb.
func ParseVerb(name string) (Verb, bool) {
	for i, n := range verbNames {
		if strings.EqualFold(n, name) {
			return Verb(i), true
		}
	}
	return 0, false
}
