package ircsend

import "github.com/bft-labs/ircsend/internal/domain"

// Errors returned by the package. Check them with errors.Is.
var (
	ErrConstruction    = domain.ErrConstruction
	ErrInvalidArgument = domain.ErrInvalidArgument
	ErrUnknownCommand  = domain.ErrUnknownCommand
)
