// SPDX-License-Identifier: EPL-2.0

package session

import (
	"github.com/ik5/flacpull/bitstream"
	"github.com/ik5/flacpull/wideint"
)

// StreamInfoMinBlockSize returns the minimum block size in samples.
func (s *Session) StreamInfoMinBlockSize(data []byte) Outcome[uint16] {
	return field[uint16](s, bitstream.StreamInfoMinBlockSize, data)
}

// StreamInfoMaxBlockSize returns the maximum block size in samples.
func (s *Session) StreamInfoMaxBlockSize(data []byte) Outcome[uint16] {
	return field[uint16](s, bitstream.StreamInfoMaxBlockSize, data)
}

// StreamInfoMinFrameSize returns the minimum frame size in bytes, 0 when
// unknown.
func (s *Session) StreamInfoMinFrameSize(data []byte) Outcome[uint32] {
	return field[uint32](s, bitstream.StreamInfoMinFrameSize, data)
}

// StreamInfoMaxFrameSize returns the maximum frame size in bytes, 0 when
// unknown.
func (s *Session) StreamInfoMaxFrameSize(data []byte) Outcome[uint32] {
	return field[uint32](s, bitstream.StreamInfoMaxFrameSize, data)
}

// StreamInfoSampleRate returns the sample rate in Hz.
func (s *Session) StreamInfoSampleRate(data []byte) Outcome[uint32] {
	return field[uint32](s, bitstream.StreamInfoSampleRate, data)
}

// StreamInfoChannels returns the channel count.
func (s *Session) StreamInfoChannels(data []byte) Outcome[uint8] {
	return field[uint8](s, bitstream.StreamInfoChannels, data)
}

// StreamInfoBitsPerSample returns the sample width in bits.
func (s *Session) StreamInfoBitsPerSample(data []byte) Outcome[uint8] {
	return field[uint8](s, bitstream.StreamInfoBitsPerSample, data)
}

// StreamInfoTotalSamples returns the total inter-channel sample count,
// zero when unknown.
func (s *Session) StreamInfoTotalSamples(data []byte) Outcome[wideint.Uint64] {
	return wide(s, bitstream.StreamInfoTotalSamples, data)
}

// StreamInfoMD5Length returns the length of the audio signature, always 16.
func (s *Session) StreamInfoMD5Length(data []byte) Outcome[uint32] {
	return s.textLength(textMD5, data)
}

// StreamInfoMD5Data returns the MD5 signature of the unencoded audio.
func (s *Session) StreamInfoMD5Data(data []byte, maxLen int) Outcome[[]byte] {
	return s.textValue(textMD5, data, maxLen)
}
