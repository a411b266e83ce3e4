package wavio

import (
	"fmt"
	"io"
	"math"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-audio/sound"
)

// Encode writes st as interleaved 16-bit PCM WAV data. Samples are
// normalized by the peak absolute amplitude across both channels, scaled
// to the full int16 range, and truncated. All-zero input is written as
// silence.
func Encode(w io.WriteSeeker, st *sound.Stereo) error {
	if st == nil {
		return fmt.Errorf("%w: stereo must not be nil", ErrValidation)
	}
	rate := int(st.SampleRate())
	if rate <= 0 {
		return fmt.Errorf("%w: sample rate %g is not encodable", ErrValidation, st.SampleRate())
	}

	left := st.Left().Samples()
	right := st.Right().Samples()
	peak := math.Max(vecmath.MaxAbs(left), vecmath.MaxAbs(right))
	scale := 0.0
	if peak > 0 {
		scale = float64(math.MaxInt16) / peak
	}

	data := make([]int, 2*len(left))
	for i := range left {
		data[2*i] = int(left[i] * scale)
		data[2*i+1] = int(right[i] * scale)
	}

	enc := wav.NewEncoder(w, rate, 16, 2, 1)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 2, SampleRate: rate},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavio: writing pcm data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavio: finalizing wav stream: %w", err)
	}
	return nil
}

// EncodeFile writes st as a WAV file at path.
func EncodeFile(path string, st *sound.Stereo) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wavio: creating %s: %w", path, err)
	}
	defer f.Close()
	return Encode(f, st)
}
