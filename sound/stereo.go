package sound

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Stereo is an immutable ordered pair of Channels sharing a sample rate.
// Outside of OverlapAdd (which pads first) the two channels always hold
// the same number of samples.
type Stereo struct {
	left  *Channel
	right *Channel
}

// NewStereo creates a Stereo from an explicit channel pair. The channels
// must share the sample rate and have equal sample counts.
func NewStereo(left, right *Channel) (*Stereo, error) {
	if left == nil || right == nil {
		return nil, fmt.Errorf("%w: stereo channels must not be nil", ErrValidation)
	}
	if err := sameRate(left, right); err != nil {
		return nil, err
	}
	if left.Len() != right.Len() {
		return nil, fmt.Errorf("%w: channel length mismatch: %d vs %d",
			ErrValidation, left.Len(), right.Len())
	}
	return &Stereo{left: left, right: right}, nil
}

// Left returns the left channel.
func (s *Stereo) Left() *Channel { return s.left }

// Right returns the right channel.
func (s *Stereo) Right() *Channel { return s.right }

// SampleRate returns the shared sample rate in Hz.
func (s *Stereo) SampleRate() float64 { return s.left.rate }

// Len returns the number of samples per channel.
func (s *Stereo) Len() int { return s.left.Len() }

// Duration returns the sound length in seconds.
func (s *Stereo) Duration() float64 { return s.left.Duration() }

// Time returns the time axis in seconds, one instant per sample.
func (s *Stereo) Time() []float64 { return s.left.Time() }

// Equal reports whether other is a Stereo with equal left and right
// channels. Any other kind compares false.
func (s *Stereo) Equal(other Sound) bool {
	o, ok := other.(*Stereo)
	if !ok {
		return false
	}
	return s.left.Equal(o.left) && s.right.Equal(o.right)
}

// Merge concatenates the receiver and other per channel. A Channel
// operand is promoted to Stereo first. Both operands must share the
// sample rate.
func (s *Stereo) Merge(other Sound) (Sound, error) {
	o, err := Promote(other)
	if err != nil {
		return nil, err
	}
	if err := sameRate(s, o); err != nil {
		return nil, err
	}
	return &Stereo{
		left:  &Channel{samples: concat(s.left.samples, o.left.samples), rate: s.left.rate},
		right: &Channel{samples: concat(s.right.samples, o.right.samples), rate: s.right.rate},
	}, nil
}

// OverlapAdd sums the receiver and other per channel. A Channel operand is
// promoted first. All four channels are zero-padded to the maximum of the
// two operand lengths before summing, keeping left and right time-aligned.
func (s *Stereo) OverlapAdd(other Sound) (Sound, error) {
	o, err := Promote(other)
	if err != nil {
		return nil, err
	}
	if err := sameRate(s, o); err != nil {
		return nil, err
	}
	n := max(s.Len(), o.Len())
	left := make([]float64, n)
	right := make([]float64, n)
	vecmath.AddBlock(left, padTo(s.left.samples, n), padTo(o.left.samples, n))
	vecmath.AddBlock(right, padTo(s.right.samples, n), padTo(o.right.samples, n))
	return &Stereo{
		left:  &Channel{samples: left, rate: s.left.rate},
		right: &Channel{samples: right, rate: s.right.rate},
	}, nil
}

// Pad returns the receiver with amount zero samples attached on the given
// side of both channels.
func (s *Stereo) Pad(amount int, side Side) (*Stereo, error) {
	left, err := s.left.Pad(amount, side)
	if err != nil {
		return nil, err
	}
	right, err := s.right.Pad(amount, side)
	if err != nil {
		return nil, err
	}
	return &Stereo{left: left, right: right}, nil
}

// TimeFrame returns the sub-sound between startSec and stopSec, applying
// identical bounds to both channels.
func (s *Stereo) TimeFrame(startSec, stopSec float64) *Stereo {
	return &Stereo{
		left:  s.left.TimeFrame(startSec, stopSec),
		right: s.right.TimeFrame(startSec, stopSec),
	}
}

// ToMono mixes the two channels down to one by elementwise average.
func (s *Stereo) ToMono() *Channel {
	n := s.Len()
	out := make([]float64, n)
	vecmath.AddBlock(out, s.left.samples, s.right.samples)
	vecmath.ScaleBlockInPlace(out, 0.5)
	return &Channel{samples: out, rate: s.left.rate}
}

// CollapseToMono replaces both channels with the mono mixdown, yielding a
// stereo sound with identical channels.
func (s *Stereo) CollapseToMono() *Stereo {
	mono := s.ToMono()
	return &Stereo{left: mono, right: mono}
}
