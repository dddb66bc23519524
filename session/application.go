// SPDX-License-Identifier: EPL-2.0

package session

import (
	"github.com/ik5/flacpull/bitstream"
)

// ApplicationID returns the registered application identifier.
func (s *Session) ApplicationID(data []byte) Outcome[uint32] {
	return field[uint32](s, bitstream.ApplicationID, data)
}

// ApplicationLength returns the length of the application data. Read it
// before ApplicationData.
func (s *Session) ApplicationLength(data []byte) Outcome[uint32] {
	return s.textLength(textApplication, data)
}

// ApplicationData returns the application data, capped at maxLen bytes
// when maxLen is positive.
func (s *Session) ApplicationData(data []byte, maxLen int) Outcome[[]byte] {
	return s.textValue(textApplication, data, maxLen)
}

// PaddingLength returns the size of the padding block.
func (s *Session) PaddingLength(data []byte) Outcome[uint32] {
	return s.textLength(textPadding, data)
}

// PaddingData returns the padding bytes, capped at maxLen when positive.
func (s *Session) PaddingData(data []byte, maxLen int) Outcome[[]byte] {
	return s.textValue(textPadding, data, maxLen)
}
