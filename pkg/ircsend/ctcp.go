package ircsend

import "strings"

// CTCPDelim delimits a CTCP message inside PRIVMSG or NOTICE text.
const CTCPDelim = "\x01"

// FrameCTCP upper-cases cmd, appends args separated by spaces and wraps the
// result in CTCP delimiters.
func FrameCTCP(cmd string, args ...string) string {
	body := strings.ToUpper(cmd)
	if len(args) > 0 {
		body += " " + strings.Join(args, " ")
	}
	return CTCPDelim + body + CTCPDelim
}

// CTCP sends a CTCP request to user as PRIVMSG.
func CTCP(t Transport, user, cmd string, args ...string) error {
	return t.Send("PRIVMSG", user, ":"+FrameCTCP(cmd, args...))
}

// CTCPReply sends a CTCP reply to user as NOTICE.
func CTCPReply(t Transport, user, cmd string, args ...string) error {
	return Notice(t, user, ":"+FrameCTCP(cmd, args...))
}
