package domain

import "errors"

// Domain errors represent error conditions in the ircsend domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrConstruction is returned when a command surface cannot be built,
	// e.g. the numeric table is missing, empty or holds an invalid entry.
	ErrConstruction = errors.New("ircsend: command surface construction failed")

	// ErrInvalidArgument is returned when a helper receives an argument it
	// cannot work with, such as an empty choice set.
	ErrInvalidArgument = errors.New("ircsend: invalid argument")

	// ErrUnknownCommand is returned when a surface lookup finds no command.
	ErrUnknownCommand = errors.New("ircsend: unknown command")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("ircsend: invalid configuration")
)
