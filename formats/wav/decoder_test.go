// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"testing"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/flacpull/audio"
	"github.com/ik5/flacpull/internal/audiotest"
)

// mockWavReader simulates the wav.Decoder for testing
type mockWavReader struct {
	samples []int
	offset  int
	err     error
}

func (m *mockWavReader) Format() *goaudio.Format {
	return &goaudio.Format{SampleRate: 8000, NumChannels: 1}
}

func (m *mockWavReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	n := copy(buf.Data, m.samples[m.offset:])
	m.offset += n
	return n, nil
}

// roundTrip writes buf to a temporary file and decodes it again.
func roundTrip(t *testing.T, buf *goaudio.IntBuffer) *goaudio.IntBuffer {
	t.Helper()

	path := filepath.Join(t.TempDir(), "out.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := Write(f, buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	src, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	got, err := audio.ReadAll(src, 64*buf.Format.NumChannels)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	return got
}

func TestWrite_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bits, channels int
	}{
		{8, 1}, {12, 2}, {16, 2}, {20, 1}, {24, 2}, {32, 1},
	}

	for _, tt := range tests {
		src := audiotest.NewRampSource(22050, tt.channels, tt.bits, 300)
		in, err := audio.ReadAll(src, 60)
		if err != nil {
			t.Fatal(err)
		}

		got := roundTrip(t, in)

		want, _ := audio.Widen(in.Data, tt.bits)
		if !slices.Equal(got.Data, want) {
			t.Errorf("%d bit: samples differ: got %v, want %v", tt.bits, got.Data[:4], want[:4])
		}
		if got.Format.SampleRate != 22050 || got.Format.NumChannels != tt.channels {
			t.Errorf("%d bit: Format = %+v", tt.bits, got.Format)
		}
		if got.SourceBitDepth != audio.ByteDepth(tt.bits) {
			t.Errorf("%d bit: SourceBitDepth = %d, want %d", tt.bits, got.SourceBitDepth, audio.ByteDepth(tt.bits))
		}
	}
}

func TestWrite_Invalid(t *testing.T) {
	t.Parallel()

	f, err := os.Create(filepath.Join(t.TempDir(), "bad.wav"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if err := Write(f, nil); !errors.Is(err, ErrMissingFormat) {
		t.Errorf("Write(nil) error = %v, want %v", err, ErrMissingFormat)
	}
	if err := Write(f, &goaudio.IntBuffer{Data: []int{1}}); !errors.Is(err, ErrMissingFormat) {
		t.Errorf("Write(no format) error = %v, want %v", err, ErrMissingFormat)
	}

	buf := &goaudio.IntBuffer{Format: &goaudio.Format{NumChannels: 1, SampleRate: 8000}, Data: []int{1}, SourceBitDepth: 40}
	if err := Write(f, buf); !errors.Is(err, audio.ErrUnsupportedBitDepth) {
		t.Errorf("Write(40 bit) error = %v, want %v", err, audio.ErrUnsupportedBitDepth)
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"text", []byte("This is not WAV data")},
		{"aiff", []byte("FORM\x00\x00\x00\x04AIFF")},
	}

	for _, tt := range tests {
		if _, err := (Decoder{}).Decode(bytes.NewReader(tt.data)); !errors.Is(err, ErrNotWavFile) {
			t.Errorf("%s: Decode() error = %v, want %v", tt.name, err, ErrNotWavFile)
		}
	}
}

func TestDecoder_NonSeekableReader(t *testing.T) {
	t.Parallel()

	in := &goaudio.IntBuffer{Format: &goaudio.Format{NumChannels: 1, SampleRate: 8000}, Data: []int{1, -2, 3}, SourceBitDepth: 16}
	path := filepath.Join(t.TempDir(), "x.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := Write(f, in); err != nil {
		t.Fatal(err)
	}
	f.Close()

	data, _ := os.ReadFile(path)
	src, err := Decoder{}.Decode(io.MultiReader(bytes.NewReader(data)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	got, err := audio.ReadAll(src, 2)
	if err != nil || !slices.Equal(got.Data, in.Data) {
		t.Errorf("ReadAll() = %v, %v, want %v", got, err, in.Data)
	}
}

func TestSource_PCMBuffer(t *testing.T) {
	t.Parallel()

	format := &goaudio.Format{SampleRate: 8000, NumChannels: 1}

	s := &source{dec: &mockWavReader{samples: []int{0, 128, 255}}, format: format, bitDepth: 8}
	buf := &goaudio.IntBuffer{Data: make([]int, 2)}

	n, err := s.PCMBuffer(buf)
	if n != 2 || err != nil || !slices.Equal(buf.Data, []int{-128, 0}) {
		t.Errorf("PCMBuffer() = %d, %v, %v", n, err, buf.Data)
	}
	n, err = s.PCMBuffer(buf)
	if n != 1 || err != nil || buf.Data[0] != 127 {
		t.Errorf("PCMBuffer() = %d, %v, %v", n, err, buf.Data)
	}
	if n, err := s.PCMBuffer(buf); n != 0 || err != io.EOF {
		t.Errorf("PCMBuffer() at end = %d, %v, want io.EOF", n, err)
	}
	if _, err := s.PCMBuffer(&goaudio.IntBuffer{}); !errors.Is(err, audio.ErrInvalidBufferSize) {
		t.Errorf("PCMBuffer(empty) error = %v", err)
	}

	failing := &source{dec: &mockWavReader{err: io.ErrUnexpectedEOF}, format: format, bitDepth: 16}
	if _, err := failing.PCMBuffer(buf); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("PCMBuffer() error = %v, want %v", err, io.ErrUnexpectedEOF)
	}
}
