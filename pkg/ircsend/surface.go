package ircsend

import (
	"fmt"
	"sort"
	"sync"

	"github.com/bft-labs/ircsend/internal/domain"
	"github.com/bft-labs/ircsend/pkg/log"
	"github.com/bft-labs/ircsend/pkg/numeric"
)

// Command forwards args to the transport behind a fixed command token.
type Command func(t Transport, args ...string) error

// Verb is a simple passthrough verb.
type Verb = domain.Verb

// Simple verbs.
const (
	VerbJoin   = domain.VerbJoin
	VerbPart   = domain.VerbPart
	VerbNick   = domain.VerbNick
	VerbNotice = domain.VerbNotice
	VerbInvite = domain.VerbInvite
	VerbMode   = domain.VerbMode
)

// Descriptor describes one command of a Surface.
type Descriptor = domain.Descriptor

// passthrough builds a command that sends token followed by args unchanged.
func passthrough(token string) Command {
	return func(t Transport, args ...string) error {
		tokens := make([]string, 0, len(args)+1)
		tokens = append(tokens, token)
		tokens = append(tokens, args...)
		return t.Send(tokens...)
	}
}

type entry struct {
	desc Descriptor
	cmd  Command
}

// Surface is the immutable set of generated commands: one per simple verb,
// addressed by its lower-case name, and one per numeric reply, addressed by
// its symbolic name. A Surface is safe for concurrent use.
type Surface struct {
	commands map[string]entry
	names    []string
}

// Build generates a Surface from the simple verbs and table.
//
// Numeric entries are registered in ascending code order. If two codes share
// a symbolic name, the higher code replaces the lower one and a warning is
// logged; callers that need a specific code should keep names unique.
//
// An empty or invalid table fails with ErrConstruction and no Surface is
// returned.
func Build(table numeric.Table, opts ...Option) (*Surface, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if table == nil {
		return nil, fmt.Errorf("%w: numeric table is missing", domain.ErrConstruction)
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}

	verbs := domain.SimpleVerbs()
	s := &Surface{commands: make(map[string]entry, len(verbs)+len(table))}

	for _, v := range verbs {
		s.register(domain.VerbDescriptor(v))
	}

	for _, e := range table.Entries() {
		d := domain.NumericDescriptor(e.Code, e.Name)
		if prev, ok := s.commands[d.Name]; ok {
			o.logger.Warn("numeric symbolic name registered twice, keeping later code",
				log.String("name", d.Name),
				log.Int("previous_code", prev.desc.Code),
				log.Int("code", d.Code),
			)
		}
		s.register(d)
	}

	s.names = make([]string, 0, len(s.commands))
	for name := range s.commands {
		s.names = append(s.names, name)
	}
	sort.Strings(s.names)

	o.logger.Debug("command surface built",
		log.Int("verbs", len(verbs)),
		log.Int("numerics", len(s.commands)-len(verbs)),
	)
	return s, nil
}

func (s *Surface) register(d Descriptor) {
	s.commands[d.Name] = entry{desc: d, cmd: passthrough(d.Token)}
}

// Lookup returns the command registered under name.
func (s *Surface) Lookup(name string) (Command, bool) {
	e, ok := s.commands[name]
	if !ok {
		return nil, false
	}
	return e.cmd, true
}

// Descriptor returns the descriptor registered under name.
func (s *Surface) Descriptor(name string) (Descriptor, bool) {
	e, ok := s.commands[name]
	return e.desc, ok
}

// Call runs the command registered under name.
func (s *Surface) Call(t Transport, name string, args ...string) error {
	cmd, ok := s.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrUnknownCommand, name)
	}
	return cmd(t, args...)
}

// Verb returns the command for a simple verb.
func (s *Surface) Verb(v Verb) (Command, bool) {
	if !v.Valid() {
		return nil, false
	}
	return s.Lookup(v.String())
}

// Numeric returns the numeric reply command registered under a symbolic name.
func (s *Surface) Numeric(name string) (Command, bool) {
	e, ok := s.commands[name]
	if !ok || !e.desc.IsNumeric() {
		return nil, false
	}
	return e.cmd, true
}

// Names returns every registered name in sorted order.
func (s *Surface) Names() []string {
	return append([]string(nil), s.names...)
}

// Len returns the number of registered commands.
func (s *Surface) Len() int {
	return len(s.commands)
}

var (
	defaultOnce    sync.Once
	defaultSurface *Surface
	defaultErr     error
)

// Default returns the Surface built from numeric.Default. It is built on the
// first call; every call returns the same Surface and error.
func Default() (*Surface, error) {
	defaultOnce.Do(func() {
		defaultSurface, defaultErr = Build(numeric.Default())
	})
	return defaultSurface, defaultErr
}
