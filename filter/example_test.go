package filter_test

import (
	"fmt"

	"github.com/cwbudde/algo-audio/eq"
	"github.com/cwbudde/algo-audio/eq/design"
	"github.com/cwbudde/algo-audio/filter"
	"github.com/cwbudde/algo-audio/sound"
)

// Design a bass boost filter and run a stereo sound through it without
// phase distortion.
func ExampleApplyStereo() {
	left, _ := sound.New(44100, make([]float64, 1024))
	right, _ := sound.New(44100, make([]float64, 1024))
	st, _ := sound.NewStereo(left, right)

	coeffs, err := design.FIR(eq.BassBoost(), st.SampleRate())
	if err != nil {
		fmt.Println(err)
		return
	}

	filtered, err := filter.ApplyStereo(st, coeffs)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(filtered.Len() == st.Len())
	fmt.Println(filtered.SampleRate() == st.SampleRate())
	// Output:
	// true
	// true
}
