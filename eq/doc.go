// Package eq models a frequency equalizer as an immutable, validated
// piecewise gain curve.
//
// An [Equalizer] pairs a non-decreasing frequency axis (starting at 0 Hz)
// with per-breakpoint gains. Gains are given in decibels and converted to
// linear power ratios exactly once at construction; only the linear form
// is stored. The curve plus a tap count is everything the FIR designer in
// eq/design needs to produce filter coefficients.
package eq
