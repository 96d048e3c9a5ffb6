package core

import "errors"

// Sentinel errors shared by the simulations and helpers. Callers match them
// with errors.Is; constructors wrap them with the offending values.
var (
	// ErrInvalidDimension reports a non-positive grid dimension.
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrInvalidRule reports a Wolfram rule number outside [0, 255].
	ErrInvalidRule = errors.New("invalid rule number")
	// ErrInvalidArgument reports malformed input to a helper, such as a
	// negative number handed to the binary decoder.
	ErrInvalidArgument = errors.New("invalid argument")
)
