package ircsend

import "github.com/bft-labs/ircsend/internal/batch"

// MaxNamesLine is the default budget for the channel list of one NAMES line.
const MaxNamesLine = batch.MaxNamesLine

// Names requests the member lists of channels. Without channels a bare
// NAMES is sent. Otherwise the channels are batched into as many NAMES lines
// as needed to keep each comma-terminated list within MaxNamesLine.
func Names(t Transport, channels ...string) error {
	return NamesWithLimit(t, MaxNamesLine, channels...)
}

// NamesWithLimit is Names with a custom budget. A limit <= 0 selects
// MaxNamesLine.
func NamesWithLimit(t Transport, limit int, channels ...string) error {
	if len(channels) == 0 {
		return t.Send("NAMES")
	}

	for _, payload := range batch.Split(channels, limit) {
		if err := t.Send("NAMES", payload); err != nil {
			return err
		}
	}
	return nil
}
