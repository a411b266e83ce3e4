package wavio

import "errors"

// Errors returned by the WAV bridge.
var (
	// ErrInvalidFile is returned when the input is not a decodable WAV
	// stream.
	ErrInvalidFile = errors.New("wavio: not a valid wav stream")

	// ErrUnsupportedChannels is returned for WAV data with more than two
	// channels.
	ErrUnsupportedChannels = errors.New("wavio: only mono and stereo wav data is supported")

	// ErrValidation is returned for unusable encode input.
	ErrValidation = errors.New("wavio: invalid encode input")
)
