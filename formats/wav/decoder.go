// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/flacpull/audio"
)

// wavReader is the part of wav.Decoder the source needs.
type wavReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// source wraps go-audio wav.Decoder to implement audio.Source
type source struct {
	dec      wavReader
	format   *goaudio.Format
	bitDepth int
}

func (s *source) Format() *goaudio.Format { return s.format }
func (s *source) BitDepth() int           { return s.bitDepth }
func (s *source) Close() error            { return nil }

func (s *source) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if buf == nil || len(buf.Data) == 0 {
		return 0, audio.ErrInvalidBufferSize
	}

	n, err := s.dec.PCMBuffer(buf)
	if n == 0 {
		if err != nil {
			return 0, fmt.Errorf("%w", err)
		}
		return 0, io.EOF
	}

	// 8-bit WAV samples are unsigned.
	if s.bitDepth == 8 {
		for i := range buf.Data[:n] {
			buf.Data[i] -= 128
		}
	}
	buf.Format = s.format
	buf.SourceBitDepth = s.bitDepth

	if err == io.EOF {
		err = nil
	}
	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if dec.WavAudioFormat != 1 {
		return nil, ErrOnlyPCMSupported
	}
	switch dec.BitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", audio.ErrUnsupportedBitDepth, dec.BitDepth)
	}

	return &source{
		dec:      dec,
		format:   dec.Format(),
		bitDepth: int(dec.BitDepth),
	}, nil
}
