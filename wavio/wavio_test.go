package wavio

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-audio/sound"
)

func mustChannel(t *testing.T, rate float64, samples []float64) *sound.Channel {
	t.Helper()
	c, err := sound.New(rate, samples)
	if err != nil {
		t.Fatalf("sound.New() error = %v", err)
	}
	return c
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stereo.wav")

	left := mustChannel(t, 44100, []float64{0, 0.5, -0.5, 1, -1, 0.25, -0.25})
	right := mustChannel(t, 44100, []float64{0.1, -0.1, 0.9, -0.9, 0, 0.75, -0.75})
	in, err := sound.NewStereo(left, right)
	if err != nil {
		t.Fatalf("NewStereo() error = %v", err)
	}

	if err := EncodeFile(path, in); err != nil {
		t.Fatalf("EncodeFile() error = %v", err)
	}

	out, err := DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile() error = %v", err)
	}

	if out.SampleRate() != in.SampleRate() {
		t.Fatalf("SampleRate() = %g, want %g", out.SampleRate(), in.SampleRate())
	}
	if out.Len() != in.Len() {
		t.Fatalf("Len() = %d, want %d", out.Len(), in.Len())
	}

	// The test signal peaks at 1.0, so normalization is (almost) the
	// identity; allow ~2 LSB for int16 conversion.
	const tol = 2.0 / 32767.0
	checkClose(t, "left", out.Left().Samples(), left.Samples(), tol)
	checkClose(t, "right", out.Right().Samples(), right.Samples(), tol)
}

func TestEncodeNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loud.wav")

	// Peak of 4.0 on the right channel: everything scales by 1/4.
	left := mustChannel(t, 8000, []float64{2, -2, 0})
	right := mustChannel(t, 8000, []float64{4, 0, -4})
	in, err := sound.NewStereo(left, right)
	if err != nil {
		t.Fatalf("NewStereo() error = %v", err)
	}

	if err := EncodeFile(path, in); err != nil {
		t.Fatalf("EncodeFile() error = %v", err)
	}
	out, err := DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile() error = %v", err)
	}

	const tol = 2.0 / 32767.0
	checkClose(t, "left", out.Left().Samples(), []float64{0.5, -0.5, 0}, tol)
	checkClose(t, "right", out.Right().Samples(), []float64{1, 0, -1}, tol)
}

func TestEncodeSilence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "silence.wav")

	zero, err := sound.Zeros(8000, 16)
	if err != nil {
		t.Fatalf("Zeros() error = %v", err)
	}
	if err := EncodeFile(path, zero.ToStereo()); err != nil {
		t.Fatalf("EncodeFile() error = %v", err)
	}

	out, err := DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile() error = %v", err)
	}
	for i, v := range out.Left().Samples() {
		if v != 0 {
			t.Fatalf("sample %d = %g, want 0", i, v)
		}
	}
}

func TestDecodeMonoPromotes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mono.wav")
	writeRaw(t, path, 1, []int{0, 8192, -8192, 16384})

	out, err := DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile() error = %v", err)
	}
	if !out.Left().Equal(out.Right()) {
		t.Fatal("decoded mono must duplicate into both channels")
	}
	if out.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", out.Len())
	}
	if got, want := out.Left().Sample(1), 8192.0/32768.0; math.Abs(got-want) > 1e-12 {
		t.Fatalf("Sample(1) = %g, want %g", got, want)
	}
}

func TestDecodeUnsupportedChannels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quad.wav")
	writeRaw(t, path, 4, []int{0, 0, 0, 0, 1, 1, 1, 1})

	if _, err := DecodeFile(path); !errors.Is(err, ErrUnsupportedChannels) {
		t.Fatalf("DecodeFile() error = %v, want ErrUnsupportedChannels", err)
	}
}

func TestDecodeInvalidStream(t *testing.T) {
	if _, err := Decode(bytes.NewReader([]byte("definitely not a wav"))); !errors.Is(err, ErrInvalidFile) {
		t.Fatalf("Decode() error = %v, want ErrInvalidFile", err)
	}
}

func TestEncodeValidation(t *testing.T) {
	if err := EncodeFile(filepath.Join(t.TempDir(), "nil.wav"), nil); !errors.Is(err, ErrValidation) {
		t.Fatalf("EncodeFile(nil) error = %v, want ErrValidation", err)
	}
}

// writeRaw writes a 16-bit PCM WAV with the given channel count using
// go-audio directly, bypassing Encode's stereo-only path.
func writeRaw(t *testing.T, path string, channels int, data []int) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("os.Create() error = %v", err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, 8000, 16, channels, 1)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: 8000},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("enc.Write() error = %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("enc.Close() error = %v", err)
	}
}

func checkClose(t *testing.T, name string, got, want []float64, tol float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: len = %d, want %d", name, len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > tol {
			t.Fatalf("%s[%d] = %.8f, want %.8f (tol %.8f)", name, i, got[i], want[i], tol)
		}
	}
}
