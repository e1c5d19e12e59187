package ircsend

import (
	"math/rand/v2"

	"github.com/bft-labs/ircsend/internal/domain"
)

// ChoiceSet is a non-empty list of reply phrases.
type ChoiceSet = domain.ChoiceSet

// Picker returns a uniformly distributed index in [0, n).
type Picker interface {
	IntN(n int) int
}

type randPicker struct{}

func (randPicker) IntN(n int) int { return rand.IntN(n) }

// ReplyOptions configures Reply.
type ReplyOptions struct {
	// User, when set, addresses the reply as "<user>: <phrase>".
	User string

	// Picker overrides the random source. Default: math/rand/v2.
	Picker Picker
}

// Reply picks one of choices at random and sends it to destination with Msg.
// An empty choice set fails with ErrInvalidArgument before anything is sent.
func Reply(t Transport, choices ChoiceSet, destination string, opts ReplyOptions) error {
	if err := choices.Validate(); err != nil {
		return err
	}
	picker := opts.Picker
	if picker == nil {
		picker = randPicker{}
	}

	out := choices[picker.IntN(len(choices))]
	if opts.User != "" {
		out = opts.User + ": " + out
	}
	return Msg(t, destination, out)
}

// Replier sends a random phrase from a fixed choice set.
type Replier func(t Transport, destination string, opts ReplyOptions) error

// NewReplier binds a copy of choices to a Replier.
func NewReplier(choices ChoiceSet) (Replier, error) {
	if err := choices.Validate(); err != nil {
		return nil, err
	}
	fixed := append(ChoiceSet(nil), choices...)
	return func(t Transport, destination string, opts ReplyOptions) error {
		return Reply(t, fixed, destination, opts)
	}, nil
}

func mustReplier(choices ChoiceSet) Replier {
	r, err := NewReplier(choices)
	if err != nil {
		panic(err)
	}
	return r
}

// Predefined repliers.
var (
	// Yes answers with "yes", "alright" or "ok".
	Yes = mustReplier(domain.Affirmative)

	// OK answers with "ok" or "done".
	OK = mustReplier(domain.Acknowledgement)

	// No answers with "no" or "no-way".
	No = mustReplier(domain.Negative)
)
