package ircsend

import "github.com/bft-labs/ircsend/pkg/log"

// Option configures Build.
type Option func(*options)

type options struct {
	logger log.Logger
}

func defaultOptions() options {
	return options{logger: log.NewNoopLogger()}
}

// WithLogger sets the logger that receives construction warnings, such as
// two numeric codes sharing a symbolic name.
// If not provided, a no-op logger is used.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
