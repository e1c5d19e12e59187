package script

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bft-labs/ircsend/internal/domain"
	"github.com/bft-labs/ircsend/internal/ports"
	"github.com/bft-labs/ircsend/pkg/ircsend"
	"github.com/bft-labs/ircsend/pkg/log"
)

// ErrUsage is returned for a line with missing or malformed parameters.
var ErrUsage = fmt.Errorf("%w: usage", domain.ErrInvalidArgument)

// Config holds Runner options.
type Config struct {
	// NamesLimit is the NAMES batching budget. Default: ircsend.MaxNamesLine
	NamesLimit int

	// Logger receives skipped lines. Default: no-op.
	Logger log.Logger
}

// Runner executes parsed lines against a transport.
type Runner struct {
	t          ports.Transport
	surfaces   *ircsend.Holder
	namesLimit int
	logger     log.Logger
}

// NewRunner creates a runner that sends through t and resolves generated
// commands through the holder's current surface.
func NewRunner(t ports.Transport, surfaces *ircsend.Holder, cfg Config) *Runner {
	if cfg.NamesLimit <= 0 {
		cfg.NamesLimit = ircsend.MaxNamesLine
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NewNoopLogger()
	}
	return &Runner{
		t:          t,
		surfaces:   surfaces,
		namesLimit: cfg.NamesLimit,
		logger:     cfg.Logger,
	}
}

// Run executes every line read from r until EOF or ctx is cancelled.
// Lines that fail with a usage error or name an unknown command are logged
// and skipped; any other error (in practice a transport error) stops the run.
func (r *Runner) Run(ctx context.Context, rd io.Reader) error {
	sc := bufio.NewScanner(rd)
	n := 0
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		n++
		err := r.Exec(sc.Text())
		switch {
		case err == nil:
		case errors.Is(err, domain.ErrInvalidArgument), errors.Is(err, domain.ErrUnknownCommand):
			r.logger.Warn("skipping line", log.Int("line", n), log.Err(err))
		default:
			return fmt.Errorf("line %d: %w", n, err)
		}
	}
	return sc.Err()
}

// Exec parses and executes one line. Blank lines are ignored.
func (r *Runner) Exec(input string) error {
	l, ok := Parse(input)
	if !ok {
		return nil
	}
	return r.dispatch(l)
}

func usage(format string) error {
	return fmt.Errorf("%w: %s", ErrUsage, format)
}

func (r *Runner) dispatch(l Line) error {
	t := r.t
	args := l.Args(0)

	switch strings.ToLower(l.Name) {
	case "msg", "privmsg":
		if len(args) < 1 {
			return usage("msg <target> <text>")
		}
		return ircsend.Msg(t, args[0], l.Text(1))

	case "quit":
		return ircsend.Quit(t, ircsend.QuitOptions{Reason: l.Text(0)})

	case "user":
		if len(args) < 1 {
			return usage("user <username> [realname]")
		}
		return ircsend.User(t, args[0], ircsend.UserOptions{Realname: l.Text(1)})

	case "kick":
		if len(args) < 2 {
			return usage("kick <nick> <channel> [reason]")
		}
		// A non-empty reason always goes out as a trailing parameter.
		opts := ircsend.KickOptions{}
		if reason := l.Text(2); reason != "" {
			opts.Reason = ":" + reason
		}
		return ircsend.Kick(t, args[0], args[1], opts)

	case "topic":
		if len(args) < 1 {
			return usage("topic <channel> [topic]")
		}
		if len(args) == 1 {
			return ircsend.Topic(t, args[0])
		}
		return ircsend.SetTopic(t, args[0], l.Text(1))

	case "whois":
		if len(args) < 1 {
			return usage("whois <nick[,nick...]> [server]")
		}
		opts := ircsend.WhoisOptions{}
		if len(args) > 1 {
			opts.Server = args[1]
		}
		return ircsend.WhoisAll(t, strings.Split(args[0], ","), opts)

	case "whowas":
		if len(args) < 1 {
			return usage("whowas <nick> [count] [server]")
		}
		opts := ircsend.WhowasOptions{}
		if len(args) > 1 {
			count, err := strconv.Atoi(args[1])
			if err != nil {
				return usage("whowas count must be a number")
			}
			opts.Count = count
		}
		if len(args) > 2 {
			opts.Server = args[2]
		}
		return ircsend.Whowas(t, args[0], opts)

	case "away":
		if len(args) == 0 {
			return ircsend.Away(t)
		}
		return ircsend.SetAway(t, l.Text(0))

	case "names":
		return ircsend.NamesWithLimit(t, r.namesLimit, args...)

	case "ctcp", "ctcpreply":
		if len(args) < 2 {
			return usage(strings.ToLower(l.Name) + " <user> <command> [args...]")
		}
		if strings.EqualFold(l.Name, "ctcp") {
			return ircsend.CTCP(t, args[0], args[1], args[2:]...)
		}
		return ircsend.CTCPReply(t, args[0], args[1], args[2:]...)

	case "yes", "ok", "no":
		if len(args) < 1 {
			return usage(strings.ToLower(l.Name) + " <destination> [user]")
		}
		opts := ircsend.ReplyOptions{}
		if len(args) > 1 {
			opts.User = args[1]
		}
		return replierFor(l.Name)(t, args[0], opts)

	case "ns", "nickserv":
		return ircsend.NickServ(t, args...)

	case "cs", "chanserv":
		return ircsend.ChanServ(t, args...)

	case "identify":
		if len(args) < 1 {
			return usage("identify <password> [service]")
		}
		opts := ircsend.IdentifyOptions{}
		if len(args) > 1 {
			opts.Service = args[1]
		}
		return ircsend.Identify(t, args[0], opts)
	}

	return r.generated(l)
}

// generated runs a surface command: a simple verb in any case, or a numeric
// reply by its exact symbolic name.
func (r *Runner) generated(l Line) error {
	s := r.surfaces.Load()
	name := l.Name
	if v, ok := domain.ParseVerb(name); ok {
		name = v.String()
	}
	return s.Call(r.t, name, l.Wire()...)
}

func replierFor(name string) ircsend.Replier {
	switch strings.ToLower(name) {
	case "yes":
		return ircsend.Yes
	case "no":
		return ircsend.No
	default:
		return ircsend.OK
	}
}
