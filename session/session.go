// SPDX-License-Identifier: EPL-2.0

package session

import (
	"fmt"

	goaudio "github.com/go-audio/audio"
	"go.uber.org/zap"

	"github.com/ik5/flacpull/bitstream"
	"github.com/ik5/flacpull/internal/scratch"
	"github.com/ik5/flacpull/parser"
	"github.com/ik5/flacpull/wideint"
)

// DefaultScratchSize is the scratch buffer length a new session starts with.
const DefaultScratchSize = 1024

// Config configures a Session. The zero value decodes a stream of unknown
// framing with the package parser.
type Config struct {
	Container bitstream.Container
	// Parser is the bitstream parser to drive. Nil selects parser.New.
	Parser bitstream.Parser
	// ScratchSize is the initial scratch buffer length.
	ScratchSize int
	// ScratchLimit caps scratch buffer growth. Zero means no cap.
	ScratchLimit int
}

// Session is one decode of one stream.
type Session struct {
	p       bitstream.Parser
	scratch *scratch.Buffer

	// samples is the frame output area, MaxChannels x MaxBlockSize.
	samples [][]int32
	frame   Frame

	cursors [cursorCount]CursorState

	// err is the fatal error that ended the stream, if any.
	err error
}

// New returns a session ready for a stream framed as cfg.Container.
func New(cfg Config) (*Session, error) {
	if !cfg.Container.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidContainer, int(cfg.Container))
	}
	if cfg.ScratchSize <= 0 {
		cfg.ScratchSize = DefaultScratchSize
	}

	p := cfg.Parser
	if p == nil {
		p = parser.New(cfg.Container)
	} else {
		p.Init(cfg.Container)
	}

	s := &Session{
		p:       p,
		scratch: scratch.NewLimited(cfg.ScratchSize, cfg.ScratchLimit),
		samples: make([][]int32, bitstream.MaxChannels),
	}

	area := make([]int32, bitstream.MaxChannels*bitstream.MaxBlockSize)
	for c := range s.samples {
		lo, hi := c*bitstream.MaxBlockSize, (c+1)*bitstream.MaxBlockSize
		s.samples[c] = area[lo:hi:hi]
	}

	Logger().Debug("session created",
		zap.Stringer("container", cfg.Container),
		zap.Int("scratch", cfg.ScratchSize))

	return s, nil
}

// Init restarts the session on a new stream. The scratch buffer and sample
// area are kept.
func (s *Session) Init(c bitstream.Container) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidContainer, int(c))
	}

	s.p.Init(c)
	s.resetCursors()
	s.err = nil

	Logger().Debug("session init", zap.Stringer("container", c))

	return nil
}

// Scratch returns the scratch buffer length.
func (s *Session) Scratch() int { return s.scratch.Len() }

// State returns the parser's grammar position.
func (s *Session) State() bitstream.State { return s.p.State() }

// Kind classifies a header.
type Kind int

const (
	KindUnknown Kind = iota
	KindMetadata
	KindFrame
)

var kindLabels = [...]string{"unknown", "metadata", "frame"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindLabels) {
		return kindLabels[KindUnknown]
	}
	return kindLabels[k]
}

// Header is the result of Sync. Only the header matching Kind is set.
type Header struct {
	Kind     Kind
	Metadata bitstream.MetadataHeader
	Frame    bitstream.FrameHeader
}

// Frame is one decoded audio frame.
type Frame struct {
	Header bitstream.FrameHeader
	// Index is the sample number for variable blocking, otherwise the
	// frame number.
	Index wideint.Uint64
	// Samples holds one slice per channel of BlockSize samples. It aliases
	// the session's sample area.
	Samples [][]int32
}

// Interleave copies the frame into buf, replacing its format and data.
func (f *Frame) Interleave(buf *goaudio.IntBuffer) {
	ch := len(f.Samples)
	bs := int(f.Header.BlockSize)

	n := ch * bs
	if cap(buf.Data) < n {
		buf.Data = make([]int, n)
	}
	buf.Data = buf.Data[:n]

	for c, s := range f.Samples {
		for i, v := range s[:bs] {
			buf.Data[i*ch+c] = int(v)
		}
	}

	buf.Format = &goaudio.Format{NumChannels: ch, SampleRate: int(f.Header.SampleRate)}
	buf.SourceBitDepth = int(f.Header.BitsPerSample)
}

// Sync moves past the current metadata block or frame and reads the next
// header. Landing on a metadata block resets every cursor.
func (s *Session) Sync(data []byte) Outcome[Header] {
	if err := s.check(data); err != nil {
		return notReady[Header](Failed, err, data)
	}

	n, r := s.p.Sync(data)
	rest := data[n:]
	if st, err := s.settle("sync", r); st != Ready {
		return notReady[Header](st, err, rest)
	}

	h := s.header()
	if h.Kind == KindMetadata {
		s.resetCursors()
	}

	return ready(h, rest)
}

// Decode reads the next audio frame, skipping any metadata left before it.
// The returned frame is reused by the next Decode.
func (s *Session) Decode(data []byte) Outcome[*Frame] {
	if err := s.check(data); err != nil {
		return notReady[*Frame](Failed, err, data)
	}

	n, r := s.p.Decode(data, s.samples)
	rest := data[n:]
	if st, err := s.settle("decode", r); st != Ready {
		return notReady[*Frame](st, err, rest)
	}

	h := s.p.FrameHeader()
	f := &s.frame
	f.Header = h
	if h.Variable() {
		f.Index = wideint.U64(h.SampleNumber)
	} else {
		f.Index = wideint.U64(uint64(h.FrameNumber))
	}
	f.Samples = f.Samples[:0]
	for c := range int(h.Channels) {
		f.Samples = append(f.Samples, s.samples[c][:h.BlockSize])
	}

	return ready(f, rest)
}

func (s *Session) header() Header {
	switch s.p.State() {
	case bitstream.StateMetadata:
		return Header{Kind: KindMetadata, Metadata: s.p.MetadataHeader()}
	case bitstream.StateFrame:
		return Header{Kind: KindFrame, Frame: s.p.FrameHeader()}
	}
	return Header{Kind: KindUnknown}
}

// check rejects calls that cannot run. It does not change session state.
func (s *Session) check(data []byte) error {
	if data == nil {
		return ErrMissingInput
	}
	if s.err != nil {
		return fmt.Errorf("%w: %w", ErrNeedsInit, s.err)
	}
	return nil
}

// settle maps a parser result to a status. Failures end the stream.
func (s *Session) settle(op string, r bitstream.Result) (Status, error) {
	switch r {
	case bitstream.OK:
		return Ready, nil
	case bitstream.Continue, bitstream.End:
		return Pending, nil
	}

	err := r.Err()
	s.fail(op, err)

	return Failed, err
}

func (s *Session) fail(op string, err error) {
	s.err = err
	Logger().Debug("decode failed", zap.String("op", op), zap.Error(err))
}

// grow sizes the scratch buffer for an n byte value.
func (s *Session) grow(n uint64) error {
	grown, err := s.scratch.EnsureCapacity(int(min(n, uint64(maxScratch))))
	if err != nil {
		s.fail("scratch", err)
		return err
	}
	if grown {
		Logger().Debug("scratch grown", zap.Int("size", s.scratch.Len()))
	}
	return nil
}

// maxScratch bounds a single field; FLAC lengths are at most 32 bits.
const maxScratch = 1<<32 - 1
