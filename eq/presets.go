package eq

// BassBoost returns a preset curve that lifts the low end by 24 dB and
// gently dips the mids, flattening out above 15 kHz. Breakpoints cover the
// full band up to the 44.1 kHz Nyquist frequency.
func BassBoost() *Equalizer {
	e, err := New(
		[]float64{0, 60, 150, 400, 1000, 2400, 15000, 22050},
		[]float64{24, -6, -5, -2, -3, -5, 0, 0},
	)
	if err != nil {
		panic("eq: bass boost preset: " + err.Error())
	}
	return e
}
