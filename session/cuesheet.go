// SPDX-License-Identifier: EPL-2.0

package session

import (
	"github.com/ik5/flacpull/bitstream"
	"github.com/ik5/flacpull/wideint"
)

// CueSheetCatalogLength returns the length of the media catalog number
// field, always 128.
func (s *Session) CueSheetCatalogLength(data []byte) Outcome[uint32] {
	return s.textLength(textCatalog, data)
}

// CueSheetCatalogString returns the media catalog number, NUL padded.
func (s *Session) CueSheetCatalogString(data []byte, maxLen int) Outcome[[]byte] {
	return s.textValue(textCatalog, data, maxLen)
}

// CueSheetLeadin returns the lead-in sample count.
func (s *Session) CueSheetLeadin(data []byte) Outcome[wideint.Uint64] {
	return wide(s, bitstream.CueSheetLeadin, data)
}

// CueSheetCDFlag reports 1 when the cue sheet describes a compact disc.
func (s *Session) CueSheetCDFlag(data []byte) Outcome[uint8] {
	return field[uint8](s, bitstream.CueSheetCDFlag, data)
}

// CueSheetTracks returns the track count.
func (s *Session) CueSheetTracks(data []byte) Outcome[uint8] {
	return field[uint8](s, bitstream.CueSheetTracks, data)
}

// CueSheetTrackOffset returns the current track's offset in samples.
func (s *Session) CueSheetTrackOffset(data []byte) Outcome[wideint.Uint64] {
	return wide(s, bitstream.CueSheetTrackOffset, data)
}

// CueSheetTrackNumber returns the current track's number.
func (s *Session) CueSheetTrackNumber(data []byte) Outcome[uint8] {
	return field[uint8](s, bitstream.CueSheetTrackNumber, data)
}

// CueSheetTrackISRCLength returns the length of the ISRC field, always 12.
// Read it before CueSheetTrackISRCString.
func (s *Session) CueSheetTrackISRCLength(data []byte) Outcome[uint32] {
	return s.textLength(textISRC, data)
}

// CueSheetTrackISRCString returns the current track's ISRC, NUL padded.
func (s *Session) CueSheetTrackISRCString(data []byte, maxLen int) Outcome[[]byte] {
	return s.textValue(textISRC, data, maxLen)
}

// CueSheetTrackAudioFlag returns the track type bit: 0 for audio.
func (s *Session) CueSheetTrackAudioFlag(data []byte) Outcome[uint8] {
	return field[uint8](s, bitstream.CueSheetTrackAudioFlag, data)
}

// CueSheetTrackPreemphFlag reports 1 when the track uses pre-emphasis.
func (s *Session) CueSheetTrackPreemphFlag(data []byte) Outcome[uint8] {
	return field[uint8](s, bitstream.CueSheetTrackPreemphFlag, data)
}

// CueSheetTrackIndexPoints returns the index point count of the current
// track. It completes the track record and restarts the index point cursor.
func (s *Session) CueSheetTrackIndexPoints(data []byte) Outcome[uint8] {
	return field[uint8](s, bitstream.CueSheetTrackIndexPoints, data)
}

// CueSheetIndexPointOffset returns the current index point's offset within
// its track.
func (s *Session) CueSheetIndexPointOffset(data []byte) Outcome[wideint.Uint64] {
	return wide(s, bitstream.CueSheetIndexPointOffset, data)
}

// CueSheetIndexPointNumber completes the current index point record.
func (s *Session) CueSheetIndexPointNumber(data []byte) Outcome[uint8] {
	return field[uint8](s, bitstream.CueSheetIndexPointNumber, data)
}
