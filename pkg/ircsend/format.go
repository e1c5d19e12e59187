package ircsend

import (
	"strconv"
	"strings"

	"github.com/bft-labs/ircsend/internal/ports"
)

// Transport transmits formatted protocol lines. See ports.Transport.
type Transport = ports.Transport

// DefaultQuitReason is sent by Quit when no reason is given.
const DefaultQuitReason = "gone"

// Msg sends text to user as PRIVMSG, one line per newline-separated segment.
// A CR before the newline is dropped. It stops at the first transport error.
func Msg(t Transport, user, text string) error {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if err := t.Send("PRIVMSG", user, ":"+line); err != nil {
			return err
		}
	}
	return nil
}

// QuitOptions configures Quit.
type QuitOptions struct {
	// Reason is the quit message. Default: DefaultQuitReason
	Reason string
}

// Quit sends QUIT and, once the line has been handed to the transport,
// marks the session as ended.
func Quit(t Transport, opts QuitOptions) error {
	reason := opts.Reason
	if reason == "" {
		reason = DefaultQuitReason
	}
	if err := t.Send("QUIT", ":"+reason); err != nil {
		return err
	}
	t.EndSession()
	return nil
}

// UserOptions configures User.
type UserOptions struct {
	// Realname is the trailing real-name field. Default: the username
	Realname string
}

// User sends USER with the transport's host in both positional fields.
func User(t Transport, username string, opts UserOptions) error {
	realname := opts.Realname
	if realname == "" {
		realname = username
	}
	host := t.Host()
	return t.Send("USER", username, host, host, ":"+realname)
}

// KickOptions configures Kick.
type KickOptions struct {
	// Reason is appended as-is. An empty reason is left off the line.
	Reason string
}

// Kick removes nick from channel.
func Kick(t Transport, nick, channel string, opts KickOptions) error {
	if opts.Reason == "" {
		return t.Send("KICK", channel, nick)
	}
	return t.Send("KICK", channel, nick, opts.Reason)
}

// Topic queries the topic of channel.
func Topic(t Transport, channel string) error {
	return t.Send("TOPIC", channel)
}

// SetTopic sets the topic of channel.
func SetTopic(t Transport, channel, topic string) error {
	return t.Send("TOPIC", channel, ":"+topic)
}

// WhoisOptions configures Whois and WhoisAll.
type WhoisOptions struct {
	// Server directs the query at a specific server.
	Server string
}

// Whois queries a single nick mask.
func Whois(t Transport, nickmask string, opts WhoisOptions) error {
	if opts.Server == "" {
		return t.Send("WHOIS", nickmask)
	}
	return t.Send("WHOIS", opts.Server, nickmask)
}

// WhoisAll queries several nicks at once; they are joined with commas into
// one mask.
func WhoisAll(t Transport, nicks []string, opts WhoisOptions) error {
	return Whois(t, strings.Join(nicks, ","), opts)
}

// WhowasOptions configures Whowas.
type WhowasOptions struct {
	// Server directs the query at a specific server.
	Server string

	// Count limits the number of history entries. Values <= 0 select 1.
	Count int
}

// Whowas queries the nick history of nick.
func Whowas(t Transport, nick string, opts WhowasOptions) error {
	count := opts.Count
	if count <= 0 {
		count = 1
	}
	if opts.Server == "" {
		return t.Send("WHOWAS", nick, strconv.Itoa(count))
	}
	return t.Send("WHOWAS", nick, strconv.Itoa(count), opts.Server)
}

// Away clears the away status.
func Away(t Transport) error {
	return t.Send("AWAY")
}

// SetAway marks the client away with msg.
func SetAway(t Transport, msg string) error {
	return t.Send("AWAY", ":"+msg)
}

// NickServ messages NickServ with args joined by spaces.
func NickServ(t Transport, args ...string) error {
	return Msg(t, "NickServ", strings.Join(args, " "))
}

// ChanServ messages ChanServ with args joined by spaces.
func ChanServ(t Transport, args ...string) error {
	return Msg(t, "ChanServ", strings.Join(args, " "))
}

// IdentifyOptions configures Identify.
type IdentifyOptions struct {
	// Service is the nick the IDENTIFY message goes to. Default: NickServ
	Service string
}

// Identify sends IDENTIFY <password> to the authentication service.
func Identify(t Transport, password string, opts IdentifyOptions) error {
	service := opts.Service
	if service == "" {
		service = "NickServ"
	}
	return Msg(t, service, "IDENTIFY "+password)
}
