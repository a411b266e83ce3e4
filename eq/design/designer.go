package design

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-dsp/dsp/window"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-audio/eq"
)

// ErrValidation wraps every rejected design request: a non-positive
// sample rate or a tap count that is not a positive odd integer.
var ErrValidation = errors.New("design: invalid design request")

// FIR designs linear-phase FIR coefficients whose frequency response
// approximates the equalizer's gain curve sampled over [0, Nyquist] at the
// given sample rate. The returned slice has e.NumTaps() coefficients.
func FIR(e *eq.Equalizer, sampleRate float64) ([]float64, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("%w: sample rate must be > 0, got %g", ErrValidation, sampleRate)
	}
	numTaps := e.NumTaps()
	if numTaps <= 0 || numTaps%2 == 0 {
		return nil, fmt.Errorf("%w: tap count must be a positive odd integer, got %d",
			ErrValidation, numTaps)
	}

	nyquist := sampleRate / 2
	freqs, gains := clipToNyquist(e.Frequencies(), e.Gain(), nyquist)

	fftSize := nextPowerOf2(4 * numTaps)
	bins := fftSize/2 + 1

	// Sample the target amplitude on the grid and impose the linear-phase
	// term for a center tap at (numTaps-1)/2. Bins above the first half
	// follow by hermitian symmetry, so the inverse transform is real.
	spectrum := make([]complex128, fftSize)
	center := float64(numTaps-1) / 2
	for k := range bins {
		freq := nyquist * float64(k) / float64(fftSize/2)
		mag := interpolate(freqs, gains, freq)
		phase := -2 * math.Pi * float64(k) * center / float64(fftSize)
		h := complex(mag*math.Cos(phase), mag*math.Sin(phase))
		spectrum[k] = h
		if k > 0 && k < fftSize/2 {
			spectrum[fftSize-k] = complex(real(h), -imag(h))
		}
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("design: failed to create FFT plan: %w", err)
	}
	impulse := make([]complex128, fftSize)
	if err := plan.Inverse(impulse, spectrum); err != nil {
		return nil, fmt.Errorf("design: inverse FFT failed: %w", err)
	}

	coeffs := make([]float64, numTaps)
	for i := range coeffs {
		coeffs[i] = real(impulse[i])
	}

	win, err := window.Hamming(numTaps)
	if err != nil {
		return nil, fmt.Errorf("design: window generation failed: %w", err)
	}
	vecmath.MulBlockInPlace(coeffs, win)

	return coeffs, nil
}

// clipToNyquist drops every breakpoint above nyquist and guarantees a
// breakpoint at nyquist itself: interpolated between the last retained and
// first dropped pair when one was dropped, otherwise the last retained
// gain extended flat. The input curve always starts at 0 < nyquist, so at
// least one breakpoint survives.
func clipToNyquist(freqs, gains []float64, nyquist float64) ([]float64, []float64) {
	keep := len(freqs)
	for i, f := range freqs {
		if f > nyquist {
			keep = i
			break
		}
	}

	outF := freqs[:keep:keep]
	outG := gains[:keep:keep]
	if outF[keep-1] == nyquist {
		return outF, outG
	}

	edge := outG[keep-1]
	if keep < len(freqs) {
		f0, f1 := freqs[keep-1], freqs[keep]
		g0, g1 := gains[keep-1], gains[keep]
		edge = g0 + (g1-g0)*(nyquist-f0)/(f1-f0)
	}
	return append(outF, nyquist), append(outG, edge)
}

// interpolate evaluates the piecewise-linear curve (freqs, gains) at x.
// Points outside the curve clamp to the nearest end; interior points take
// the first segment containing them. The zero-width check guards the
// division for repeated frequencies (gain steps).
func interpolate(freqs, gains []float64, x float64) float64 {
	if x <= freqs[0] {
		return gains[0]
	}
	last := len(freqs) - 1
	if x >= freqs[last] {
		return gains[last]
	}
	for i := 0; i < last; i++ {
		if x > freqs[i+1] {
			continue
		}
		if freqs[i+1] == freqs[i] {
			return gains[i+1]
		}
		t := (x - freqs[i]) / (freqs[i+1] - freqs[i])
		return gains[i] + t*(gains[i+1]-gains[i])
	}
	return gains[last]
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
