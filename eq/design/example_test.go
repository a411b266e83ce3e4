package design_test

import (
	"fmt"

	"github.com/cwbudde/algo-audio/eq"
	"github.com/cwbudde/algo-audio/eq/design"
)

func ExampleFIR() {
	e, err := eq.New(
		[]float64{0, 60, 150, 400, 1000, 2400, 15000, 22050},
		[]float64{24, -6, -5, -2, -3, -5, 0, 0},
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	coeffs, err := design.FIR(e, 44100)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(len(coeffs))
	// Output:
	// 71
}
