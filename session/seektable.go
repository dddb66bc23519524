// SPDX-License-Identifier: EPL-2.0

package session

import (
	"github.com/ik5/flacpull/bitstream"
	"github.com/ik5/flacpull/wideint"
)

// SeekTableSeekPoints returns the number of seek points, derived from the
// block length.
func (s *Session) SeekTableSeekPoints(data []byte) Outcome[uint32] {
	return field[uint32](s, bitstream.SeekTableSeekPoints, data)
}

// SeekTableSampleNumber returns the first sample of the current seek point.
func (s *Session) SeekTableSampleNumber(data []byte) Outcome[wideint.Uint64] {
	return wide(s, bitstream.SeekTableSampleNumber, data)
}

// SeekTableSampleOffset returns the byte offset of the current seek point's
// frame from the first frame.
func (s *Session) SeekTableSampleOffset(data []byte) Outcome[wideint.Uint64] {
	return wide(s, bitstream.SeekTableSampleOffset, data)
}

// SeekTableSamples completes the current seek point record.
func (s *Session) SeekTableSamples(data []byte) Outcome[uint16] {
	return field[uint16](s, bitstream.SeekTableSamples, data)
}
