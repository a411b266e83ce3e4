package sound

import "errors"

// Errors returned by constructors and algebra operators.
var (
	// ErrValidation wraps every construction or operator argument
	// violation: non-positive sample rates, buffers that do not reduce to
	// one dimension, and mismatched rates or lengths where equality is
	// required.
	ErrValidation = errors.New("sound: invalid argument")

	// ErrUnsupportedOperand is returned when an algebra operator is
	// invoked with an operand that is neither a Channel nor a Stereo.
	ErrUnsupportedOperand = errors.New("sound: operand must be a Channel or Stereo")
)
