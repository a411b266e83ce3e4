// Package design turns an equalizer gain curve into FIR filter
// coefficients.
//
// [FIR] samples the piecewise-linear target response on a dense frequency
// grid covering [0, Nyquist], imposes linear phase, runs an inverse FFT,
// and truncates and windows the result (frequency-sampling design with a
// Hamming window). Breakpoints above the Nyquist frequency of the target
// sample rate are clipped away; if the Nyquist frequency itself is not a
// breakpoint, one is synthesized by linear interpolation between the
// nearest retained and dropped breakpoints, or by flat extension of the
// last retained gain when nothing was dropped. The designed response
// matches the target curve at the breakpoints to design accuracy.
package design
