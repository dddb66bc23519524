// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"strings"
)

// StreamInfo mirrors the STREAMINFO block.
type StreamInfo struct {
	MinBlockSize  uint16
	MaxBlockSize  uint16
	MinFrameSize  uint32
	MaxFrameSize  uint32
	SampleRate    uint32
	Channels      uint8
	BitsPerSample uint8
	// TotalSamples counts inter-channel samples; 0 means unknown.
	TotalSamples uint64
	MD5          [16]byte
}

type Picture struct {
	Type        uint32
	MIME        string
	Description string
	Width       uint32
	Height      uint32
	ColorDepth  uint32
	TotalColors uint32
	Data        []byte
}

type CueIndex struct {
	Offset uint64
	Number uint8
}

type CueTrack struct {
	Offset      uint64
	Number      uint8
	ISRC        string
	NonAudio    bool
	PreEmphasis bool
	Indexes     []CueIndex
}

type CueSheet struct {
	Catalog string
	LeadIn  uint64
	CD      bool
	Tracks  []CueTrack
}

type SeekPoint struct {
	SampleNumber uint64
	Offset       uint64
	Samples      uint16
}

type Application struct {
	ID   uint32
	Data []byte
}

// Metadata collects every block read before the first frame.
type Metadata struct {
	// StreamInfo is nil when the stream starts directly with a frame.
	StreamInfo   *StreamInfo
	Vendor       string
	Comments     []string
	Pictures     []Picture
	CueSheet     *CueSheet
	SeekTable    []SeekPoint
	Applications []Application
	// Padding is the total size of all padding blocks.
	Padding int
}

// Tag returns the values of every comment named key, compared without
// case.
func (m *Metadata) Tag(key string) []string {
	var out []string
	for _, c := range m.Comments {
		k, v, ok := strings.Cut(c, "=")
		if ok && strings.EqualFold(k, key) {
			out = append(out, v)
		}
	}
	return out
}
