package domain

import "fmt"

// ChoiceSet is an ordered, non-empty list of candidate reply phrases.
type ChoiceSet []string

// Predefined choice sets.
var (
	Affirmative     = ChoiceSet{"yes", "alright", "ok"}
	Acknowledgement = ChoiceSet{"ok", "done"}
	Negative        = ChoiceSet{"no", "no-way"}
)

// Validate returns ErrInvalidArgument if the set is empty.
func (c ChoiceSet) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("%w: empty choice set", ErrInvalidArgument)
	}
	return nil
}
