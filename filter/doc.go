// Package filter applies FIR coefficients to sound values without phase
// distortion.
//
// [Apply] runs a forward pass and a time-reversed backward pass through a
// direct-form FIR filter, so the group delay of the two passes cancels and
// the output stays aligned with the input. The effective magnitude
// response is the square of the single-pass response, at the cost of edge
// transients at both ends. [ApplyStereo] filters the left and right
// channels independently and concurrently with the same coefficient set.
package filter
