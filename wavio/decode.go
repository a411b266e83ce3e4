package wavio

import (
	"fmt"
	"io"
	"os"

	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-audio/sound"
)

// Decode reads PCM WAV data into a Stereo, scaling samples to [-1, 1] by
// the source bit depth. Channels are ordered
// [left, right] in the interleaved stream; mono input is promoted by
// duplicating the single channel.
func Decode(r io.ReadSeeker) (*sound.Stereo, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrInvalidFile
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("wavio: reading pcm data: %w", err)
	}
	if buf.Format == nil || buf.Format.SampleRate <= 0 {
		return nil, ErrInvalidFile
	}

	bitDepth := buf.SourceBitDepth
	if bitDepth <= 0 {
		bitDepth = 16
	}
	scale := float64(int64(1) << (bitDepth - 1))
	rate := float64(buf.Format.SampleRate)

	switch buf.Format.NumChannels {
	case 1:
		mono := make([]float64, len(buf.Data))
		for i, v := range buf.Data {
			mono[i] = float64(v) / scale
		}
		ch, err := sound.New(rate, mono)
		if err != nil {
			return nil, err
		}
		return ch.ToStereo(), nil
	case 2:
		frames := len(buf.Data) / 2
		left := make([]float64, frames)
		right := make([]float64, frames)
		for i := range frames {
			left[i] = float64(buf.Data[2*i]) / scale
			right[i] = float64(buf.Data[2*i+1]) / scale
		}
		l, err := sound.New(rate, left)
		if err != nil {
			return nil, err
		}
		r, err := sound.New(rate, right)
		if err != nil {
			return nil, err
		}
		return sound.NewStereo(l, r)
	default:
		return nil, fmt.Errorf("%w: got %d channels", ErrUnsupportedChannels, buf.Format.NumChannels)
	}
}

// DecodeFile reads the WAV file at path into a Stereo.
func DecodeFile(path string) (*sound.Stereo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wavio: opening %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}
