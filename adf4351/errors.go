package adf4351

import "errors"

// Planner and transport error taxonomy. Planner errors are detected
// before any register mutation or hardware write; transport errors are
// surfaced unwrapped apart from the sentinel, with no retry — after a
// failed write sequence the device state is undefined and the only
// recovery is a full six-word rewrite by the caller.
var (
	// ErrInvalidReferenceFrequency reports a REFin or derived PFD
	// frequency outside the supported range.
	ErrInvalidReferenceFrequency = errors.New("adf4351: invalid reference frequency")

	// ErrInvalidOutputFrequency reports a target or derived output
	// frequency outside the supported range.
	ErrInvalidOutputFrequency = errors.New("adf4351: invalid output frequency")

	// ErrBus reports a failed SPI transmission.
	ErrBus = errors.New("adf4351: bus write failed")

	// ErrPin reports a failed CE or LE pin operation.
	ErrPin = errors.New("adf4351: pin control failed")
)
