// SPDX-License-Identifier: EPL-2.0

package session

import (
	"go.uber.org/zap"

	"github.com/ik5/flacpull/bitstream"
)

// CursorKind names one repeating-field cursor.
type CursorKind int

const (
	CursorVendor CursorKind = iota
	CursorComment
	CursorMD5
	CursorMime
	CursorDescription
	CursorPicture
	CursorCatalog
	CursorISRC
	CursorApplication
	CursorPadding
	CursorTrack
	CursorIndexPoint
	CursorSeekPoint

	cursorCount
)

var cursorLabels = [cursorCount]string{
	"vendor", "comment", "md5", "mime", "description", "picture",
	"catalog", "isrc", "application", "padding", "track", "index_point",
	"seek_point",
}

func (k CursorKind) String() string {
	if k < 0 || k >= cursorCount {
		return "unknown"
	}
	return cursorLabels[k]
}

// CursorState is the progress through one kind of repeating record.
type CursorState struct {
	// Total is the record count, zero until learned.
	Total uint32
	// Current is the index of the next record.
	Current uint32
	// Partial is set between the length and value phases of a string.
	Partial bool
	// Length is the byte length read by the last length phase.
	Length uint32
}

// Cursor returns the state of cursor k.
func (s *Session) Cursor(k CursorKind) CursorState {
	if k < 0 || k >= cursorCount {
		return CursorState{}
	}
	return s.cursors[k]
}

func (s *Session) resetCursors() {
	s.cursors = [cursorCount]CursorState{}
}

// counts names the field holding the record count of each counted cursor.
// Cursors absent here hold a single record.
var counts = map[CursorKind]bitstream.Field{
	CursorComment:    bitstream.VorbisCommentTotal,
	CursorTrack:      bitstream.CueSheetTracks,
	CursorIndexPoint: bitstream.CueSheetTrackIndexPoints,
	CursorSeekPoint:  bitstream.SeekTableSeekPoints,
}

// records maps a scalar field to the record cursor it belongs to.
var records = map[bitstream.Field]CursorKind{
	bitstream.CueSheetTrackOffset:      CursorTrack,
	bitstream.CueSheetTrackNumber:      CursorTrack,
	bitstream.CueSheetTrackAudioFlag:   CursorTrack,
	bitstream.CueSheetTrackPreemphFlag: CursorTrack,
	bitstream.CueSheetTrackIndexPoints: CursorTrack,
	bitstream.CueSheetIndexPointOffset: CursorIndexPoint,
	bitstream.CueSheetIndexPointNumber: CursorIndexPoint,
	bitstream.SeekTableSampleNumber:    CursorSeekPoint,
	bitstream.SeekTableSampleOffset:    CursorSeekPoint,
	bitstream.SeekTableSamples:         CursorSeekPoint,
}

// text describes a string or blob field read in two phases.
type text struct {
	cursor CursorKind
	length bitstream.Field
	value  bitstream.Field
	// within is the record cursor whose count must be known first, or -1.
	within CursorKind
}

var (
	textMD5         = text{CursorMD5, bitstream.StreamInfoMD5Length, bitstream.StreamInfoMD5Data, -1}
	textVendor      = text{CursorVendor, bitstream.VorbisVendorLength, bitstream.VorbisVendorString, -1}
	textComment     = text{CursorComment, bitstream.VorbisCommentLength, bitstream.VorbisCommentString, -1}
	textMime        = text{CursorMime, bitstream.PictureMimeLength, bitstream.PictureMimeString, -1}
	textDescription = text{CursorDescription, bitstream.PictureDescriptionLength, bitstream.PictureDescriptionString, -1}
	textPicture     = text{CursorPicture, bitstream.PictureLength, bitstream.PictureData, -1}
	textCatalog     = text{CursorCatalog, bitstream.CueSheetCatalogLength, bitstream.CueSheetCatalogString, -1}
	textISRC        = text{CursorISRC, bitstream.CueSheetTrackISRCLength, bitstream.CueSheetTrackISRCString, CursorTrack}
	textApplication = text{CursorApplication, bitstream.ApplicationLength, bitstream.ApplicationData, -1}
	textPadding     = text{CursorPadding, bitstream.PaddingLength, bitstream.PaddingData, -1}
)

// total learns the record count of cursor k when it is not known yet.
func (s *Session) total(k CursorKind, data []byte) ([]byte, Status, error) {
	c := &s.cursors[k]
	if c.Total != 0 {
		return data, Ready, nil
	}

	f, ok := counts[k]
	if !ok {
		c.Total = 1
		return data, Ready, nil
	}

	_, rest, st, err := s.uint(f, data)
	return rest, st, err
}

// advance moves cursor k past one record, wrapping after the last.
func (s *Session) advance(k CursorKind) {
	c := &s.cursors[k]
	c.Current++
	if c.Current >= c.Total {
		c.Current = 0
		Logger().Debug("cursor wrapped", zap.Stringer("cursor", k), zap.Uint32("total", c.Total))
	}
}

// observe updates cursors from a scalar just read.
func (s *Session) observe(f bitstream.Field, v uint64) {
	switch f {
	case bitstream.VorbisCommentTotal:
		s.cursors[CursorComment].Total = uint32(v)
	case bitstream.CueSheetTracks:
		s.cursors[CursorTrack].Total = uint32(v)
	case bitstream.SeekTableSeekPoints:
		s.cursors[CursorSeekPoint].Total = uint32(v)
	case bitstream.CueSheetTrackIndexPoints:
		// The index count closes a track record and opens its index points.
		s.cursors[CursorIndexPoint] = CursorState{Total: uint32(v)}
		s.advance(CursorTrack)
	case bitstream.CueSheetIndexPointNumber:
		s.advance(CursorIndexPoint)
	case bitstream.SeekTableSamples:
		s.advance(CursorSeekPoint)
	}
}

// uint reads one scalar field and feeds it to the cursors.
func (s *Session) uint(f bitstream.Field, data []byte) (uint64, []byte, Status, error) {
	n, v, r := s.p.Uint(f, data)
	rest := data[n:]
	if st, err := s.settle(f.String(), r); st != Ready {
		return 0, rest, st, err
	}
	s.observe(f, v)
	return v, rest, Ready, nil
}

// scalar reads field f, first learning the count of the record it belongs
// to.
func (s *Session) scalar(f bitstream.Field, data []byte) (uint64, []byte, Status, error) {
	if err := s.check(data); err != nil {
		return 0, data, Failed, err
	}

	if k, ok := records[f]; ok {
		rest, st, err := s.total(k, data)
		if st != Ready {
			return 0, rest, st, err
		}
		data = rest
	}

	return s.uint(f, data)
}

// prepare runs the count and length phases of t.
func (s *Session) prepare(t text, data []byte) ([]byte, Status, error) {
	if t.within >= 0 {
		rest, st, err := s.total(t.within, data)
		if st != Ready {
			return rest, st, err
		}
		data = rest
	}

	rest, st, err := s.total(t.cursor, data)
	if st != Ready {
		return rest, st, err
	}

	c := &s.cursors[t.cursor]
	if c.Partial {
		return rest, Ready, nil
	}

	v, rest, st, err := s.uint(t.length, rest)
	if st != Ready {
		return rest, st, err
	}
	if err := s.grow(v); err != nil {
		return rest, Failed, err
	}
	c.Length = uint32(v)
	c.Partial = true

	return rest, Ready, nil
}

func (s *Session) textLength(t text, data []byte) Outcome[uint32] {
	if err := s.check(data); err != nil {
		return notReady[uint32](Failed, err, data)
	}

	rest, st, err := s.prepare(t, data)
	if st != Ready {
		return notReady[uint32](st, err, rest)
	}

	return ready(s.cursors[t.cursor].Length, rest)
}

// textValue reads t into the scratch buffer. A positive maxLen caps the
// returned bytes; the rest of the value is skipped.
func (s *Session) textValue(t text, data []byte, maxLen int) Outcome[[]byte] {
	if err := s.check(data); err != nil {
		return notReady[[]byte](Failed, err, data)
	}
	if maxLen < 0 {
		return notReady[[]byte](Failed, ErrInvalidLength, data)
	}

	rest, st, err := s.prepare(t, data)
	if st != Ready {
		return notReady[[]byte](st, err, rest)
	}

	c := &s.cursors[t.cursor]
	size := min(int(c.Length), s.scratch.Len())
	if maxLen > 0 {
		size = min(size, maxLen)
	}
	out := s.scratch.Bytes()[:size]

	n, w, r := s.p.Bytes(t.value, rest, out)
	rest = rest[n:]
	if st, err := s.settle(t.value.String(), r); st != Ready {
		return notReady[[]byte](st, err, rest)
	}

	c.Partial = false
	s.advance(t.cursor)

	return ready(out[:w], rest)
}
