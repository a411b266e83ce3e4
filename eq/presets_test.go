package eq

import (
	"math"
	"testing"
)

func TestBassBoost(t *testing.T) {
	e := BassBoost()

	if e.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", e.Len())
	}
	if e.NumTaps() != DefaultNumTaps {
		t.Fatalf("NumTaps() = %d, want %d", e.NumTaps(), DefaultNumTaps)
	}

	freqs := e.Frequencies()
	if freqs[0] != 0 || freqs[len(freqs)-1] != 22050 {
		t.Fatalf("Frequencies() spans [%g, %g], want [0, 22050]", freqs[0], freqs[len(freqs)-1])
	}

	// 24 dB power gain at DC.
	if got, want := e.Gain()[0], math.Pow(10, 2.4); math.Abs(got-want) > 1e-9 {
		t.Fatalf("Gain()[0] = %g, want %g", got, want)
	}
}
