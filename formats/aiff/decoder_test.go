// SPDX-License-Identifier: EPL-2.0

package aiff

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

// mockAiffReader simulates the aiff.Decoder for testing
type mockAiffReader struct {
	samples      []int
	offset       int
	returnErrors bool
}

func (m *mockAiffReader) Format() *goaudio.Format {
	return &goaudio.Format{SampleRate: 44100, NumChannels: 2}
}

func (m *mockAiffReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.returnErrors {
		return 0, io.ErrUnexpectedEOF
	}
	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	n := copy(buf.Data, m.samples[m.offset:])
	m.offset += n

	if m.offset >= len(m.samples) {
		return n, io.EOF
	}
	return n, nil
}

func TestWrite_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, bits := range []int{12, 16, 20, 24} {
		src := audiotest.NewRampSource(48000, 2, bits, 200)
		in, err := audio.ReadAll(src, 100)
		if err != nil {
			t.Fatal(err)
		}

		path := filepath.Join(t.TempDir(), "out.aiff")
		f, err := os.Create(path)
		if err != nil {
			t.Fatal(err)
		}
		if err := Write(f, in); err != nil {
			t.Fatalf("%d bit: Write() error = %v", bits, err)
		}
		f.Close()

		r, err := os.Open(path)
		if err != nil {
			t.Fatal(err)
		}
		out, err := Decoder{}.Decode(r)
		if err != nil {
			r.Close()
			t.Fatalf("%d bit: Decode() error = %v", bits, err)
		}
		got, err := audio.ReadAll(out, 64)
		r.Close()
		if err != nil {
			t.Fatalf("%d bit: ReadAll() error = %v", bits, err)
		}

		want, _ := audio.Widen(in.Data, bits)
		if !slices.Equal(got.Data, want) {
			t.Errorf("%d bit: samples differ", bits)
		}
		if out.BitDepth() != audio.ByteDepth(bits) || out.Format().SampleRate != 48000 {
			t.Errorf("%d bit: depth %d format %+v", bits, out.BitDepth(), out.Format())
		}
	}
}

func TestWrite_MissingFormat(t *testing.T) {
	t.Parallel()

	f, err := os.Create(filepath.Join(t.TempDir(), "bad.aiff"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if err := Write(f, &goaudio.IntBuffer{Data: []int{1}}); !errors.Is(err, ErrMissingFormat) {
		t.Errorf("Write() error = %v, want %v", err, ErrMissingFormat)
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for _, data := range [][]byte{nil, []byte("This is not AIFF data"), []byte("RIFF\x00\x00\x00\x04WAVE")} {
		if _, err := (Decoder{}).Decode(bytes.NewReader(data)); !errors.Is(err, ErrNotAiffFile) {
			t.Errorf("Decode(%q) error = %v, want %v", data, err, ErrNotAiffFile)
		}
	}
}

func TestSource_PCMBuffer(t *testing.T) {
	t.Parallel()

	s := &source{
		dec:      &mockAiffReader{samples: []int{1, 2, 3, 4, 5}},
		format:   &goaudio.Format{SampleRate: 44100, NumChannels: 1},
		bitDepth: 16,
	}
	buf := &goaudio.IntBuffer{Data: make([]int, 3)}

	tests := []struct {
		wantN   int
		wantErr error
		want    []int
	}{
		{3, nil, []int{1, 2, 3}},
		{2, nil, []int{4, 5}},
		{0, io.EOF, nil},
	}

	for i, tt := range tests {
		n, err := s.PCMBuffer(buf)
		if n != tt.wantN || err != tt.wantErr {
			t.Fatalf("call %d: PCMBuffer() = %d, %v, want %d, %v", i, n, err, tt.wantN, tt.wantErr)
		}
		if !slices.Equal(buf.Data[:n], tt.want) && n > 0 {
			t.Errorf("call %d: data = %v, want %v", i, buf.Data[:n], tt.want)
		}
	}
	if buf.SourceBitDepth != 16 || buf.Format.NumChannels != 1 {
		t.Errorf("buffer format = %+v depth %d", buf.Format, buf.SourceBitDepth)
	}
}

func TestSource_PCMBuffer_Error(t *testing.T) {
	t.Parallel()

	s := &source{dec: &mockAiffReader{returnErrors: true}, format: &goaudio.Format{}, bitDepth: 16}
	if _, err := s.PCMBuffer(&goaudio.IntBuffer{Data: make([]int, 4)}); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("PCMBuffer() error = %v, want %v", err, io.ErrUnexpectedEOF)
	}
	if _, err := s.PCMBuffer(&goaudio.IntBuffer{}); !errors.Is(err, audio.ErrInvalidBufferSize) {
		t.Errorf("PCMBuffer(empty) error = %v, want %v", err, audio.ErrInvalidBufferSize)
	}
}
