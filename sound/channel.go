package sound

import (
	"fmt"
	"math"
	"slices"

	"github.com/cwbudde/algo-vecmath"
)

// Channel is a single immutable track of samples at a fixed sample rate.
// Construct one with New, Zeros, or FromMatrix; every operator returns a
// new Channel and never mutates the receiver.
type Channel struct {
	samples []float64
	rate    float64
}

// New creates a Channel from a sample slice. The samples are copied.
// The sample rate must be > 0.
func New(rate float64, samples []float64) (*Channel, error) {
	if err := validateRate(rate); err != nil {
		return nil, err
	}
	return &Channel{samples: slices.Clone(samples), rate: rate}, nil
}

// Zeros creates a zero-filled Channel of the given length.
func Zeros(rate float64, length int) (*Channel, error) {
	if err := validateRate(rate); err != nil {
		return nil, err
	}
	if length < 0 {
		return nil, fmt.Errorf("%w: length must be >= 0, got %d", ErrValidation, length)
	}
	return &Channel{samples: make([]float64, length), rate: rate}, nil
}

// FromMatrix creates a Channel from a two-dimensional buffer that reduces
// to one dimension: either a single row, or a single column (every row of
// length one). Any other shape cannot be interpreted as a mono channel and
// fails with [ErrValidation].
func FromMatrix(rate float64, rows [][]float64) (*Channel, error) {
	if err := validateRate(rate); err != nil {
		return nil, err
	}
	switch {
	case len(rows) == 0:
		return &Channel{samples: []float64{}, rate: rate}, nil
	case len(rows) == 1:
		return &Channel{samples: slices.Clone(rows[0]), rate: rate}, nil
	}
	flat := make([]float64, len(rows))
	for i, row := range rows {
		if len(row) != 1 {
			return nil, fmt.Errorf("%w: %dx%d buffer cannot be interpreted as a mono channel",
				ErrValidation, len(rows), len(row))
		}
		flat[i] = row[0]
	}
	return &Channel{samples: flat, rate: rate}, nil
}

// SampleRate returns the sample rate in Hz.
func (c *Channel) SampleRate() float64 { return c.rate }

// Len returns the number of samples.
func (c *Channel) Len() int { return len(c.samples) }

// Duration returns the channel length in seconds.
func (c *Channel) Duration() float64 {
	return float64(len(c.samples)) / c.rate
}

// Sample returns the sample at index i.
func (c *Channel) Sample(i int) float64 { return c.samples[i] }

// Samples returns a copy of the sample data.
func (c *Channel) Samples() []float64 { return slices.Clone(c.samples) }

// Time returns the time axis in seconds, one instant per sample, from 0 to
// Duration inclusive.
func (c *Channel) Time() []float64 {
	n := len(c.samples)
	if n == 0 {
		return nil
	}
	t := make([]float64, n)
	if n == 1 {
		return t
	}
	d := c.Duration()
	for i := range t {
		t[i] = d * float64(i) / float64(n-1)
	}
	return t
}

// Equal reports whether other is a Channel with the same sample rate and
// elementwise-identical samples. Any other kind compares false.
func (c *Channel) Equal(other Sound) bool {
	o, ok := other.(*Channel)
	if !ok {
		return false
	}
	return c.rate == o.rate && slices.Equal(c.samples, o.samples)
}

// Slice returns a new Channel over [start, stop) at the same rate.
// Out-of-range bounds are clamped; stop < 0 means "to the end".
func (c *Channel) Slice(start, stop int) *Channel {
	n := len(c.samples)
	if start < 0 {
		start = 0
	}
	if stop < 0 || stop > n {
		stop = n
	}
	if start > stop {
		start = stop
	}
	return &Channel{samples: slices.Clone(c.samples[start:stop]), rate: c.rate}
}

// TimeFrame returns the sub-channel between startSec and stopSec. Bounds
// are converted to sample indices via floor(t * rate). A negative stopSec,
// or one at or beyond the end, selects everything from startSec on.
func (c *Channel) TimeFrame(startSec, stopSec float64) *Channel {
	start := int(math.Floor(startSec * c.rate))
	stop := -1
	if stopSec >= 0 && stopSec < c.Duration() {
		stop = int(math.Floor(stopSec * c.rate))
	}
	return c.Slice(start, stop)
}

// Merge concatenates the receiver and other. A Stereo operand promotes the
// receiver first, so the result is a Stereo with the receiver's samples
// leading on both channels. Both operands must share the sample rate.
func (c *Channel) Merge(other Sound) (Sound, error) {
	switch o := other.(type) {
	case *Channel:
		if err := sameRate(c, o); err != nil {
			return nil, err
		}
		return &Channel{samples: concat(c.samples, o.samples), rate: c.rate}, nil
	case *Stereo:
		return c.ToStereo().Merge(o)
	default:
		return nil, fmt.Errorf("%w: got %T", ErrUnsupportedOperand, other)
	}
}

// OverlapAdd sums the receiver and other elementwise after zero-padding
// the shorter operand at the end to the length of the longer one. The
// result length is the maximum of the operand lengths. A Stereo operand
// promotes the receiver first.
func (c *Channel) OverlapAdd(other Sound) (Sound, error) {
	switch o := other.(type) {
	case *Channel:
		if err := sameRate(c, o); err != nil {
			return nil, err
		}
		n := max(len(c.samples), len(o.samples))
		out := make([]float64, n)
		vecmath.AddBlock(out, padTo(c.samples, n), padTo(o.samples, n))
		return &Channel{samples: out, rate: c.rate}, nil
	case *Stereo:
		return c.ToStereo().OverlapAdd(o)
	default:
		return nil, fmt.Errorf("%w: got %T", ErrUnsupportedOperand, other)
	}
}

// Pad returns the receiver with amount zero samples attached on the given
// side.
func (c *Channel) Pad(amount int, side Side) (*Channel, error) {
	if amount < 0 {
		return nil, fmt.Errorf("%w: padding amount must be >= 0, got %d", ErrValidation, amount)
	}
	pad := make([]float64, amount)
	if side == SideLeft {
		return &Channel{samples: concat(pad, c.samples), rate: c.rate}, nil
	}
	return &Channel{samples: concat(c.samples, pad), rate: c.rate}, nil
}

// ToStereo promotes the channel to a Stereo with identical left and right
// channels. The receiver is shared, not copied; this is safe because
// Channels are immutable.
func (c *Channel) ToStereo() *Stereo {
	return &Stereo{left: c, right: c}
}

func validateRate(rate float64) error {
	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return fmt.Errorf("%w: sample rate must be > 0, got %g", ErrValidation, rate)
	}
	return nil
}

func concat(a, b []float64) []float64 {
	out := make([]float64, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// padTo returns s zero-extended to length n. The original slice is
// returned unchanged when it is already long enough; callers must treat
// the result as read-only.
func padTo(s []float64, n int) []float64 {
	if len(s) >= n {
		return s
	}
	out := make([]float64, n)
	copy(out, s)
	return out
}
