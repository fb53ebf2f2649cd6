package motion

import "errors"

// Sentinel errors for the motion core. Callers classify with errors.Is.
var (
	// ErrInvalidArgument reports an out-of-domain input value, for example a
	// negative delay or a buffer capacity below one.
	ErrInvalidArgument = errors.New("motion: invalid argument")

	// ErrOutOfRange reports a buffer lookup past the current length. It
	// indicates a bug in the calling code, not a runtime condition.
	ErrOutOfRange = errors.New("motion: offset out of range")

	// ErrInsufficientData reports that too few frames have been buffered to
	// compute a motion frame. Expected during startup; callers should skip
	// the current tick and retry on the next one.
	ErrInsufficientData = errors.New("motion: not enough frames buffered")
)
