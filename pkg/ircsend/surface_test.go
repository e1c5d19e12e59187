package ircsend_test

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/bft-labs/ircsend/pkg/ircsend"
	"github.com/bft-labs/ircsend/pkg/log"
	"github.com/bft-labs/ircsend/pkg/numeric"
	"github.com/bft-labs/ircsend/pkg/transport"
)

func TestBuildNumericCommand(t *testing.T) {
	s, err := ircsend.Build(numeric.Table{401: "ERR_NOSUCHNICK"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	cmd, ok := s.Numeric("ERR_NOSUCHNICK")
	if !ok {
		t.Fatal("ERR_NOSUCHNICK not registered")
	}

	r := transport.NewRecorder("h")
	if err := cmd(r, "x", "No such nick"); err != nil {
		t.Fatalf("command: %v", err)
	}
	if diff := cmp.Diff([][]string{{"401", "x", "No such nick"}}, r.Sends()); diff != "" {
		t.Fatalf("sends mismatch (-want +got):\n%s", diff)
	}

	d, ok := s.Descriptor("ERR_NOSUCHNICK")
	if !ok || d.Code != 401 || d.Token != "401" || !d.IsNumeric() {
		t.Fatalf("Descriptor = %+v, %v", d, ok)
	}
}

func TestBuildPadsNumericToken(t *testing.T) {
	s, err := ircsend.Build(numeric.Table{1: "RPL_WELCOME"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	r := transport.NewRecorder("h")
	if err := s.Call(r, "RPL_WELCOME", "bot", ":Welcome"); err != nil {
		t.Fatalf("Call: %v", err)
	}
	if diff := cmp.Diff([]string{"001 bot :Welcome"}, r.Lines()); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildSimpleVerbs(t *testing.T) {
	s, err := ircsend.Build(numeric.Table{401: "ERR_NOSUCHNICK"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	tests := []struct {
		name string
		verb ircsend.Verb
		args []string
		want string
	}{
		{name: "join", verb: ircsend.VerbJoin, args: []string{"#go"}, want: "JOIN #go"},
		{name: "part", verb: ircsend.VerbPart, args: []string{"#go", ":later"}, want: "PART #go :later"},
		{name: "nick", verb: ircsend.VerbNick, args: []string{"gopher"}, want: "NICK gopher"},
		{name: "notice", verb: ircsend.VerbNotice, args: []string{"bob", ":hi"}, want: "NOTICE bob :hi"},
		{name: "invite", verb: ircsend.VerbInvite, args: []string{"bob", "#go"}, want: "INVITE bob #go"},
		{name: "mode", verb: ircsend.VerbMode, args: []string{"#go", "+m"}, want: "MODE #go +m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			byName := transport.NewRecorder("h")
			if err := s.Call(byName, tt.name, tt.args...); err != nil {
				t.Fatalf("Call: %v", err)
			}
			cmd, ok := s.Verb(tt.verb)
			if !ok {
				t.Fatalf("Verb(%v) not registered", tt.verb)
			}
			byVerb := transport.NewRecorder("h")
			if err := cmd(byVerb, tt.args...); err != nil {
				t.Fatalf("command: %v", err)
			}
			for _, r := range []*transport.Recorder{byName, byVerb} {
				if diff := cmp.Diff([]string{tt.want}, r.Lines()); diff != "" {
					t.Fatalf("lines mismatch (-want +got):\n%s", diff)
				}
			}
			if _, ok := s.Numeric(tt.name); ok {
				t.Fatalf("simple verb %s reported as numeric", tt.name)
			}
		})
	}
}

func TestBuildRejectsInvalidTables(t *testing.T) {
	tests := []struct {
		name  string
		table numeric.Table
	}{
		{name: "nil", table: nil},
		{name: "empty", table: numeric.Table{}},
		{name: "bad code", table: numeric.Table{0: "RPL_ZERO"}},
		{name: "bad name", table: numeric.Table{401: "no such nick"}},
		{name: "one bad entry among good", table: numeric.Table{1: "RPL_WELCOME", 401: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ircsend.Build(tt.table)
			if !errors.Is(err, ircsend.ErrConstruction) {
				t.Fatalf("Build error = %v, want ErrConstruction", err)
			}
			if s != nil {
				t.Fatal("Build returned a surface alongside an error")
			}
		})
	}
}

func TestBuildNameCollisionKeepsLaterCode(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewZerologAdapterWithLogger(zerolog.New(&buf))

	s, err := ircsend.Build(numeric.Table{
		406: "ERR_NOSUCHNICK",
		401: "ERR_NOSUCHNICK",
	}, ircsend.WithLogger(logger))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	r := transport.NewRecorder("h")
	if err := s.Call(r, "ERR_NOSUCHNICK", "x"); err != nil {
		t.Fatalf("Call: %v", err)
	}
	if diff := cmp.Diff([]string{"406 x"}, r.Lines()); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(buf.String(), `"previous_code":401`) {
		t.Fatalf("collision not logged: %q", buf.String())
	}
}

func TestBuildIsRepeatable(t *testing.T) {
	table := numeric.Default()
	a, err := ircsend.Build(table)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	b, err := ircsend.Build(table)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if diff := cmp.Diff(a.Names(), b.Names()); diff != "" {
		t.Fatalf("names differ between builds (-first +second):\n%s", diff)
	}
	if a.Len() != len(table)+6 {
		t.Fatalf("Len() = %d, want %d", a.Len(), len(table)+6)
	}
}

func TestCallUnknownCommand(t *testing.T) {
	s, err := ircsend.Build(numeric.Table{401: "ERR_NOSUCHNICK"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	r := transport.NewRecorder("h")
	if err := s.Call(r, "RPL_NOPE"); !errors.Is(err, ircsend.ErrUnknownCommand) {
		t.Fatalf("Call error = %v, want ErrUnknownCommand", err)
	}
	if err := s.Call(r, "JOIN"); !errors.Is(err, ircsend.ErrUnknownCommand) {
		t.Fatalf("simple verbs are addressed by lower-case name; got %v", err)
	}
	if len(r.Lines()) != 0 {
		t.Fatalf("lines sent for unknown command: %q", r.Lines())
	}
}

func TestCallPropagatesTransportError(t *testing.T) {
	s, err := ircsend.Build(numeric.Table{401: "ERR_NOSUCHNICK"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	boom := errors.New("boom")
	r := transport.NewRecorder("h")
	r.FailAt(1, boom)
	if err := s.Call(r, "join", "#go"); err != boom {
		t.Fatalf("Call error = %v, want the transport error unchanged", err)
	}
}

func TestNamesAreSortedCopy(t *testing.T) {
	s, err := ircsend.Build(numeric.Table{433: "ERR_NICKNAMEINUSE", 1: "RPL_WELCOME"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want := []string{"ERR_NICKNAMEINUSE", "RPL_WELCOME", "invite", "join", "mode", "nick", "notice", "part"}
	names := s.Names()
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("Names mismatch (-want +got):\n%s", diff)
	}
	names[0] = "mutated"
	if s.Names()[0] != "ERR_NICKNAMEINUSE" {
		t.Fatal("Names exposes internal state")
	}
}

func TestDefaultBuiltOnce(t *testing.T) {
	const callers = 16
	var wg sync.WaitGroup
	surfaces := make([]*ircsend.Surface, callers)
	errs := make([]error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			surfaces[i], errs[i] = ircsend.Default()
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		if errs[i] != nil {
			t.Fatalf("Default() error: %v", errs[i])
		}
		if surfaces[i] != surfaces[0] {
			t.Fatal("Default() returned different surfaces")
		}
	}
	if _, ok := surfaces[0].Numeric("ERR_NOSUCHNICK"); !ok {
		t.Fatal("default surface lacks ERR_NOSUCHNICK")
	}
}

func TestHolder(t *testing.T) {
	first, err := ircsend.Build(numeric.Table{401: "ERR_NOSUCHNICK"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	second, err := ircsend.Build(numeric.Table{402: "ERR_NOSUCHSERVER"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	h := ircsend.NewHolder(first)
	if h.Load() != first {
		t.Fatal("Load() did not return the initial surface")
	}
	h.Store(nil)
	if h.Load() != first {
		t.Fatal("Store(nil) replaced the surface")
	}
	h.Store(second)
	if h.Load() != second {
		t.Fatal("Store did not replace the surface")
	}
}
