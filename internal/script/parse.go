// Package script turns one-command-per-line input into ircsend helper calls.
//
// A line is a command name followed by space-separated parameters. A
// parameter starting with ':' begins the trailing part, which runs to the
// end of the line and may contain spaces:
//
//	msg #go :hello there
//	kick bob #go :flooding
//	ERR_NOSUCHNICK bob :No such nick/channel
package script

import "strings"

// Line is one parsed input line.
type Line struct {
	Name        string
	Params      []string
	Trailing    string
	HasTrailing bool
}

// Parse splits an input line. It reports false for blank lines and for
// lines that start with the trailing part and so carry no command name.
func Parse(input string) (Line, bool) {
	input = strings.TrimRight(input, "\r\n")

	head, trailing, has := input, "", false
	if strings.HasPrefix(strings.TrimLeft(input, " "), ":") {
		return Line{}, false
	}
	if i := strings.Index(input, " :"); i >= 0 {
		head, trailing, has = input[:i], input[i+2:], true
	}

	fields := strings.Fields(head)
	if len(fields) == 0 {
		return Line{}, false
	}
	return Line{
		Name:        fields[0],
		Params:      fields[1:],
		Trailing:    trailing,
		HasTrailing: has,
	}, true
}

// Args returns the parameters from index from on, with the trailing part
// appended as one argument.
func (l Line) Args(from int) []string {
	var out []string
	if from < len(l.Params) {
		out = append(out, l.Params[from:]...)
	}
	if l.HasTrailing {
		out = append(out, l.Trailing)
	}
	return out
}

// Text joins Args(from) with spaces.
func (l Line) Text(from int) string {
	return strings.Join(l.Args(from), " ")
}

// Wire returns the parameters as they go on the wire, with the trailing
// part prefixed by ':'.
func (l Line) Wire() []string {
	out := append([]string(nil), l.Params...)
	if l.HasTrailing {
		out = append(out, ":"+l.Trailing)
	}
	return out
}
