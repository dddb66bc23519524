// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"errors"
	"fmt"
	"io"
	"slices"

	goaudio "github.com/go-audio/audio"
	"go.uber.org/zap"

	"github.com/ik5/flacpull/audio"
	"github.com/ik5/flacpull/bitstream"
	"github.com/ik5/flacpull/session"
)

// DefaultChunkSize is the read size used when Decoder.ChunkSize is unset.
const DefaultChunkSize = 4096

// Decoder opens FLAC streams. The zero value detects the container and
// reads 4 KiB at a time.
type Decoder struct {
	ChunkSize int
	Container bitstream.Container
	// ScratchLimit caps the size of a single metadata value; 0 is no cap.
	ScratchLimit int
}

// Decode implements audio.Decoder.
func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	return d.Open(r)
}

// Open reads all metadata up to the first frame and returns a source
// positioned on it.
func (d Decoder) Open(r io.Reader) (*Source, error) {
	chunk := d.ChunkSize
	if chunk <= 0 {
		chunk = DefaultChunkSize
	}

	sess, err := session.New(session.Config{Container: d.Container, ScratchLimit: d.ScratchLimit})
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s := &Source{
		r:     r,
		sess:  sess,
		chunk: chunk,
		buf:   []byte{},
	}
	if err := s.readMetadata(); err != nil {
		return nil, err
	}

	return s, nil
}

// Source is an audio.Source over one FLAC stream.
type Source struct {
	r     io.Reader
	sess  *session.Session
	chunk int
	in    []byte
	buf   []byte
	eof   bool

	meta     Metadata
	format   *goaudio.Format
	bitDepth int

	frame   goaudio.IntBuffer
	pending []int
	decoded uint64
	closed  bool
}

func (s *Source) Format() *goaudio.Format { return s.format }
func (s *Source) BitDepth() int           { return s.bitDepth }

// Metadata returns the blocks read by Open.
func (s *Source) Metadata() *Metadata { return &s.meta }

// Decoded is the number of inter-channel samples decoded so far.
func (s *Source) Decoded() uint64 { return s.decoded }

func (s *Source) Close() error {
	s.closed = true
	s.pending = nil
	return nil
}

// PCMBuffer fills buf.Data with interleaved samples, decoding frames as
// needed. Samples of a frame that do not fit are kept for the next call.
func (s *Source) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if s.closed {
		return 0, ErrClosed
	}
	if buf == nil || len(buf.Data) == 0 {
		return 0, audio.ErrInvalidBufferSize
	}

	buf.Format = s.format
	buf.SourceBitDepth = s.bitDepth

	n := 0
	for n < len(buf.Data) {
		if len(s.pending) == 0 {
			if err := s.next(); err != nil {
				if errors.Is(err, io.EOF) && n > 0 {
					return n, nil
				}
				return n, err
			}
		}
		c := copy(buf.Data[n:], s.pending)
		s.pending = s.pending[c:]
		n += c
	}

	return n, nil
}

// next decodes one frame into the pending samples.
func (s *Source) next() error {
	for {
		o := s.sess.Decode(s.buf)
		s.buf = o.Rest

		switch o.Status {
		case session.Ready:
			o.Value.Interleave(&s.frame)
			s.pending = s.frame.Data
			s.decoded += uint64(o.Value.Header.BlockSize)
			return nil
		case session.Failed:
			return fmt.Errorf("frame after sample %d: %w", s.decoded, o.Err)
		}

		if err := s.feed(); err != nil {
			if errors.Is(err, io.EOF) {
				return s.finish()
			}
			return err
		}
	}
}

func (s *Source) finish() error {
	if info := s.meta.StreamInfo; info != nil && s.decoded < info.TotalSamples {
		return fmt.Errorf("%w: %d of %d samples", ErrTruncated, s.decoded, info.TotalSamples)
	}
	return io.EOF
}

// feed appends the next chunk of the reader to the unconsumed input.
func (s *Source) feed() error {
	if s.eof {
		return io.EOF
	}

	s.in = append(s.in[:0], s.buf...)
	s.in = slices.Grow(s.in, s.chunk)
	n, err := s.r.Read(s.in[len(s.in) : len(s.in)+s.chunk])
	s.in = s.in[:len(s.in)+n]
	s.buf = s.in

	switch {
	case errors.Is(err, io.EOF):
		s.eof = true
		if n == 0 {
			return io.EOF
		}
	case err != nil:
		return fmt.Errorf("%w", err)
	}

	return nil
}

// pull repeats op, feeding more input while it is pending.
func pull[T any](s *Source, op func([]byte) session.Outcome[T]) (T, error) {
	for {
		o := op(s.buf)
		s.buf = o.Rest

		switch o.Status {
		case session.Ready:
			return o.Value, nil
		case session.Failed:
			var zero T
			return zero, fmt.Errorf("%w", o.Err)
		}

		if err := s.feed(); err != nil {
			var zero T
			return zero, err
		}
	}
}

// pullText reads a whole string or blob and copies it out of the scratch
// buffer.
func pullText(s *Source, op func([]byte, int) session.Outcome[[]byte]) ([]byte, error) {
	v, err := pull(s, func(b []byte) session.Outcome[[]byte] { return op(b, 0) })
	if err != nil {
		return nil, err
	}
	return slices.Clone(v), nil
}

func (s *Source) readMetadata() error {
	for {
		h, err := pull(s, s.sess.Sync)
		if errors.Is(err, io.EOF) {
			if s.meta.StreamInfo == nil {
				return fmt.Errorf("%w: no header found", ErrTruncated)
			}
			return nil
		}
		if err != nil {
			return err
		}

		if h.Kind == session.KindFrame {
			if s.format == nil {
				s.format = &goaudio.Format{NumChannels: int(h.Frame.Channels), SampleRate: int(h.Frame.SampleRate)}
				s.bitDepth = int(h.Frame.BitsPerSample)
			}
			return nil
		}

		err = s.readBlock(h.Metadata)
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: %s block", ErrTruncated, h.Metadata.Type)
		}
		if err != nil {
			return fmt.Errorf("%s block: %w", h.Metadata.Type, err)
		}
	}
}

func (s *Source) readBlock(h bitstream.MetadataHeader) error {
	switch h.Type {
	case bitstream.MetadataStreamInfo:
		return s.readStreamInfo()
	case bitstream.MetadataVorbisComment:
		return s.readComments()
	case bitstream.MetadataPicture:
		return s.readPicture()
	case bitstream.MetadataCueSheet:
		return s.readCueSheet()
	case bitstream.MetadataSeekTable:
		return s.readSeekTable()
	case bitstream.MetadataApplication:
		return s.readApplication()
	case bitstream.MetadataPadding:
		// Sync skips the body without staging it in the scratch buffer.
		s.meta.Padding += int(h.Length)
		return nil
	}

	session.Logger().Debug("skipping metadata block",
		zap.Stringer("type", h.Type), zap.Uint32("length", h.Length))

	return nil
}
