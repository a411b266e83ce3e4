package filter

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cwbudde/algo-dsp/dsp/filter/fir"

	"github.com/cwbudde/algo-audio/sound"
)

// ErrValidation is returned for an unusable coefficient set.
var ErrValidation = errors.New("filter: invalid filter request")

// Apply filters the channel with the given FIR coefficients using a
// zero-phase forward-backward pass. The result has the same length and
// sample rate as the input and no group-delay shift.
func Apply(ch *sound.Channel, coeffs []float64) (*sound.Channel, error) {
	if ch == nil {
		return nil, fmt.Errorf("%w: channel must not be nil", ErrValidation)
	}
	if len(coeffs) == 0 {
		return nil, fmt.Errorf("%w: empty coefficient set", ErrValidation)
	}
	samples := ch.Samples()
	zeroPhase(samples, coeffs)
	return sound.New(ch.SampleRate(), samples)
}

// ApplyStereo filters both channels independently with the same
// coefficient set and recombines them. The two channels read shared
// immutable inputs and write disjoint outputs, so they run concurrently.
func ApplyStereo(st *sound.Stereo, coeffs []float64) (*sound.Stereo, error) {
	if st == nil {
		return nil, fmt.Errorf("%w: stereo must not be nil", ErrValidation)
	}
	if len(coeffs) == 0 {
		return nil, fmt.Errorf("%w: empty coefficient set", ErrValidation)
	}

	var (
		left, right *sound.Channel
		lErr, rErr  error
		wg          sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		left, lErr = Apply(st.Left(), coeffs)
	}()
	go func() {
		defer wg.Done()
		right, rErr = Apply(st.Right(), coeffs)
	}()
	wg.Wait()

	if lErr != nil {
		return nil, lErr
	}
	if rErr != nil {
		return nil, rErr
	}
	return sound.NewStereo(left, right)
}

// zeroPhase filters buf in place: forward pass, reverse, backward pass,
// reverse. The second pass undoes the phase shift of the first.
func zeroPhase(buf, coeffs []float64) {
	f := fir.New(coeffs)
	f.ProcessBlock(buf)
	reverse(buf)
	f.Reset()
	f.ProcessBlock(buf)
	reverse(buf)
}

func reverse(s []float64) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
