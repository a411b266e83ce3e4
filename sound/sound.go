package sound

import "fmt"

// Sound is the algebra shared by Channel and Stereo values.
//
// Merge and OverlapAdd accept any Sound and fail with
// [ErrUnsupportedOperand] for foreign implementations; Equal never fails
// and reports false for a kind mismatch.
type Sound interface {
	// SampleRate returns the sample rate in Hz.
	SampleRate() float64
	// Len returns the number of samples per channel.
	Len() int
	// Merge concatenates the receiver and other, in that order.
	Merge(other Sound) (Sound, error)
	// OverlapAdd sums the receiver and other elementwise, zero-padding
	// the shorter operand at the end.
	OverlapAdd(other Sound) (Sound, error)
	// Equal reports whether other has the same kind, rate, and samples.
	Equal(other Sound) bool
}

// Side selects which end of a sound padding is attached to.
type Side int

const (
	// SideLeft prepends padding before the first sample.
	SideLeft Side = iota
	// SideRight appends padding after the last sample.
	SideRight
)

// Promote converts s to a Stereo. A Channel is duplicated into both
// channels, a Stereo is returned as-is. This is the single promotion step
// used by the stereo operators.
func Promote(s Sound) (*Stereo, error) {
	switch v := s.(type) {
	case *Stereo:
		return v, nil
	case *Channel:
		return v.ToStereo(), nil
	default:
		return nil, fmt.Errorf("%w: got %T", ErrUnsupportedOperand, s)
	}
}

func sameRate(a, b Sound) error {
	if a.SampleRate() != b.SampleRate() {
		return fmt.Errorf("%w: sample rate mismatch: %g vs %g",
			ErrValidation, a.SampleRate(), b.SampleRate())
	}
	return nil
}
