// Package sound models mono and stereo digital audio as immutable values
// and provides an algebra for combining them.
//
// A [Channel] is a single track of samples at a fixed sample rate; a
// [Stereo] is an ordered left/right pair of Channels sharing one rate.
// Both implement the [Sound] interface, so the two combining operators
// work across kinds:
//
//   - Merge concatenates two sounds of equal sample rate.
//   - OverlapAdd sums two sounds elementwise after zero-padding the
//     shorter operand to the length of the longer one.
//
// A Channel operand is promoted to Stereo (duplicated into both channels)
// whenever it meets a Stereo; promotion is a single explicit step at the
// start of each operator, never an implicit per-branch conversion.
//
// All values are immutable after construction and every operator returns a
// new value, so sounds are safe to share across goroutines.
package sound
