// SPDX-License-Identifier: EPL-2.0

package session

import (
	"github.com/ik5/flacpull/bitstream"
)

// VorbisVendorLength returns the length of the vendor string. Calling it
// again before VorbisVendorString returns the same length.
func (s *Session) VorbisVendorLength(data []byte) Outcome[uint32] {
	return s.textLength(textVendor, data)
}

// VorbisVendorString returns the vendor string, capped at maxLen bytes when
// maxLen is positive.
func (s *Session) VorbisVendorString(data []byte, maxLen int) Outcome[[]byte] {
	return s.textValue(textVendor, data, maxLen)
}

// VorbisCommentTotal returns the comment count of the block.
func (s *Session) VorbisCommentTotal(data []byte) Outcome[uint32] {
	return field[uint32](s, bitstream.VorbisCommentTotal, data)
}

// VorbisCommentLength returns the length of the next comment. Calling it
// again before VorbisCommentString returns the same length.
func (s *Session) VorbisCommentLength(data []byte) Outcome[uint32] {
	return s.textLength(textComment, data)
}

// VorbisCommentString returns the next comment, usually "KEY=value".
// After the last comment the cursor starts over.
func (s *Session) VorbisCommentString(data []byte, maxLen int) Outcome[[]byte] {
	return s.textValue(textComment, data, maxLen)
}
