package eq

import (
	"errors"
	"fmt"
	"slices"

	"github.com/cwbudde/algo-dsp/dsp/core"
)

// DefaultNumTaps is the FIR tap count used when no option overrides it.
const DefaultNumTaps = 71

// ErrValidation wraps every malformed-curve error: too few breakpoints, a
// curve not starting at 0 Hz, a decreasing frequency axis, and mismatched
// frequency/gain lengths.
var ErrValidation = errors.New("eq: invalid equalizer")

// Equalizer is an immutable piecewise gain-vs-frequency specification.
type Equalizer struct {
	frequencies []float64
	gain        []float64 // linear power ratio, 10^(dB/10)
	numTaps     int
}

// Option configures an Equalizer at construction time.
type Option func(*Equalizer)

// WithNumTaps sets the FIR tap count the designer will use. The designer
// rejects any count that is not a positive odd integer.
func WithNumTaps(n int) Option {
	return func(e *Equalizer) {
		e.numTaps = n
	}
}

// New creates an Equalizer from breakpoint frequencies in Hz and gains in
// decibels. The frequency axis must hold at least two points, start at
// exactly 0, and be non-decreasing; both slices must have equal length.
// Gains are converted to linear power ratios once and stored in that form.
func New(frequencies, gainDB []float64, opts ...Option) (*Equalizer, error) {
	if len(frequencies) < 2 {
		return nil, fmt.Errorf("%w: need at least two breakpoints, got %d",
			ErrValidation, len(frequencies))
	}
	if frequencies[0] != 0 {
		return nil, fmt.Errorf("%w: frequency axis must start at 0, got %g",
			ErrValidation, frequencies[0])
	}
	if !slices.IsSorted(frequencies) {
		return nil, fmt.Errorf("%w: frequency axis must be non-decreasing", ErrValidation)
	}
	if len(frequencies) != len(gainDB) {
		return nil, fmt.Errorf("%w: frequency and gain lengths differ: %d vs %d",
			ErrValidation, len(frequencies), len(gainDB))
	}

	e := &Equalizer{
		frequencies: slices.Clone(frequencies),
		gain:        make([]float64, len(gainDB)),
		numTaps:     DefaultNumTaps,
	}
	for i, db := range gainDB {
		e.gain[i] = core.DBPowerToLinear(db)
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e, nil
}

// Frequencies returns a copy of the breakpoint frequencies in Hz.
func (e *Equalizer) Frequencies() []float64 { return slices.Clone(e.frequencies) }

// Gain returns a copy of the breakpoint gains as linear power ratios.
func (e *Equalizer) Gain() []float64 { return slices.Clone(e.gain) }

// NumTaps returns the FIR tap count.
func (e *Equalizer) NumTaps() int { return e.numTaps }

// Len returns the number of breakpoints.
func (e *Equalizer) Len() int { return len(e.frequencies) }
