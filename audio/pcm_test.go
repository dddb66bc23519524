// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"slices"
	"testing"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/flacpull/internal/audiotest"
)

// errSource fails after its first buffer.
type errSource struct {
	*audiotest.MockSource
	calls int
}

var errRead = errors.New("read failed")

func (s *errSource) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	s.calls++
	if s.calls > 1 {
		return 0, errRead
	}
	return s.MockSource.PCMBuffer(buf)
}

func TestReadAll(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		channels   int
		total      int
		bufferSize int
	}{
		{"mono exact", 1, 64, 16},
		{"mono partial", 1, 70, 16},
		{"stereo", 2, 100, 32},
		{"six channels", 6, 10, 6},
		{"buffer larger than stream", 2, 5, 4096},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewRampSource(44100, tt.channels, 16, tt.total)
			got, err := ReadAll(src, tt.bufferSize)
			if err != nil {
				t.Fatalf("ReadAll() error = %v", err)
			}
			if len(got.Data) != tt.channels*tt.total {
				t.Fatalf("ReadAll() len = %d, want %d", len(got.Data), tt.channels*tt.total)
			}
			for i, v := range got.Data {
				if want := i%65536 - 32768; v != want {
					t.Fatalf("ReadAll() sample %d = %d, want %d", i, v, want)
				}
			}
			if got.Format.NumChannels != tt.channels || got.SourceBitDepth != 16 {
				t.Errorf("ReadAll() format = %+v depth %d", got.Format, got.SourceBitDepth)
			}
		})
	}
}

func TestReadAll_InvalidBufferSize(t *testing.T) {
	t.Parallel()

	for _, size := range []int{0, -2, 3} {
		src := audiotest.NewSilentSource(8000, 2, 16, 10)
		if _, err := ReadAll(src, size); !errors.Is(err, ErrInvalidBufferSize) {
			t.Errorf("ReadAll(%d) error = %v, want %v", size, err, ErrInvalidBufferSize)
		}
	}
}

func TestReadAll_SourceError(t *testing.T) {
	t.Parallel()

	src := &errSource{MockSource: audiotest.NewSilentSource(8000, 1, 16, 100)}
	if _, err := ReadAll(src, 10); !errors.Is(err, errRead) {
		t.Errorf("ReadAll() error = %v, want %v", err, errRead)
	}
}

func TestReadAll_Empty(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 1, 16, 0)
	got, err := ReadAll(src, 8)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(got.Data) != 0 {
		t.Errorf("ReadAll() len = %d, want 0", len(got.Data))
	}

	if n, err := src.PCMBuffer(&goaudio.IntBuffer{Data: make([]int, 4)}); n != 0 || err != io.EOF {
		t.Errorf("PCMBuffer() after end = %d, %v", n, err)
	}
}

func TestByteDepth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bits, want int
	}{
		{4, 8}, {8, 8}, {12, 16}, {16, 16}, {20, 24}, {24, 24}, {28, 32}, {32, 32},
	}

	for _, tt := range tests {
		if got := ByteDepth(tt.bits); got != tt.want {
			t.Errorf("ByteDepth(%d) = %d, want %d", tt.bits, got, tt.want)
		}
	}
}

func TestWiden(t *testing.T) {
	t.Parallel()

	in := []int{-2048, -1, 0, 1, 2047}

	got, err := Widen(in, 12)
	if err != nil {
		t.Fatalf("Widen() error = %v", err)
	}
	if want := []int{-32768, -16, 0, 16, 32752}; !slices.Equal(got, want) {
		t.Errorf("Widen(12) = %v, want %v", got, want)
	}
	if in[0] != -2048 {
		t.Error("Widen() modified its input")
	}

	same, err := Widen(in, 16)
	if err != nil || &same[0] != &in[0] {
		t.Errorf("Widen(16) = %v, %v, want input unchanged", same, err)
	}

	for _, bits := range []int{0, 3, 33} {
		if _, err := Widen(in, bits); !errors.Is(err, ErrUnsupportedBitDepth) {
			t.Errorf("Widen(%d) error = %v, want %v", bits, err, ErrUnsupportedBitDepth)
		}
	}
}
