// SPDX-License-Identifier: EPL-2.0

package session

import (
	"github.com/ik5/flacpull/bitstream"
)

// PictureType returns the picture type, such as 3 for a front cover.
func (s *Session) PictureType(data []byte) Outcome[uint32] {
	return field[uint32](s, bitstream.PictureType, data)
}

// PictureMimeLength returns the length of the MIME type. Read it before
// PictureMimeString.
func (s *Session) PictureMimeLength(data []byte) Outcome[uint32] {
	return s.textLength(textMime, data)
}

// PictureMimeString returns the MIME type of the picture.
func (s *Session) PictureMimeString(data []byte, maxLen int) Outcome[[]byte] {
	return s.textValue(textMime, data, maxLen)
}

// PictureDescriptionLength returns the length of the description.
func (s *Session) PictureDescriptionLength(data []byte) Outcome[uint32] {
	return s.textLength(textDescription, data)
}

// PictureDescriptionString returns the UTF-8 picture description.
func (s *Session) PictureDescriptionString(data []byte, maxLen int) Outcome[[]byte] {
	return s.textValue(textDescription, data, maxLen)
}

// PictureWidth returns the width in pixels.
func (s *Session) PictureWidth(data []byte) Outcome[uint32] {
	return field[uint32](s, bitstream.PictureWidth, data)
}

// PictureHeight returns the height in pixels.
func (s *Session) PictureHeight(data []byte) Outcome[uint32] {
	return field[uint32](s, bitstream.PictureHeight, data)
}

// PictureColorDepth returns the bits per pixel.
func (s *Session) PictureColorDepth(data []byte) Outcome[uint32] {
	return field[uint32](s, bitstream.PictureColorDepth, data)
}

// PictureTotalColors returns the palette size, 0 for non-indexed images.
func (s *Session) PictureTotalColors(data []byte) Outcome[uint32] {
	return field[uint32](s, bitstream.PictureTotalColors, data)
}

// PictureLength returns the byte length of the picture data.
func (s *Session) PictureLength(data []byte) Outcome[uint32] {
	return s.textLength(textPicture, data)
}

// PictureData returns the picture bytes, capped at maxLen when positive.
// The slice aliases the scratch buffer.
func (s *Session) PictureData(data []byte, maxLen int) Outcome[[]byte] {
	return s.textValue(textPicture, data, maxLen)
}
