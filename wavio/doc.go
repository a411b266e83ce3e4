// Package wavio bridges sound values and 16-bit PCM WAV files.
//
// Decoding deinterleaves a mono or stereo WAV into a [sound.Stereo]
// (mono input is promoted by duplication). Encoding normalizes by the
// peak absolute amplitude across both channels, scales the result to the
// full int16 range, and writes interleaved 16-bit PCM.
package wavio
