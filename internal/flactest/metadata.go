// SPDX-License-Identifier: EPL-2.0

package flactest

import (
	"encoding/binary"

	"github.com/ik5/flacpull/bitstream"
)

// Marker is the native stream marker.
var Marker = []byte("fLaC")

// StreamInfo holds STREAMINFO values.
type StreamInfo struct {
	MinBlockSize  uint16
	MaxBlockSize  uint16
	MinFrameSize  uint32
	MaxFrameSize  uint32
	SampleRate    uint32
	Channels      uint8
	BitsPerSample uint8
	TotalSamples  uint64
	MD5           [16]byte
}

// Block is one metadata block.
type Block struct {
	Type bitstream.MetadataType
	Body []byte
}

// Encode prefixes the body with its header.
func (b Block) Encode(last bool) []byte {
	v := uint32(b.Type)<<24 | uint32(len(b.Body))
	if last {
		v |= 1 << 31
	}
	out := binary.BigEndian.AppendUint32(nil, v)
	return append(out, b.Body...)
}

func StreamInfoBlock(si StreamInfo) Block {
	var w BitWriter
	w.WriteBits(uint64(si.MinBlockSize), 16)
	w.WriteBits(uint64(si.MaxBlockSize), 16)
	w.WriteBits(uint64(si.MinFrameSize), 24)
	w.WriteBits(uint64(si.MaxFrameSize), 24)
	w.WriteBits(uint64(si.SampleRate), 20)
	w.WriteBits(uint64(si.Channels-1), 3)
	w.WriteBits(uint64(si.BitsPerSample-1), 5)
	w.WriteBits(si.TotalSamples, 36)
	w.WriteBytes(si.MD5[:])
	return Block{Type: bitstream.MetadataStreamInfo, Body: w.Bytes()}
}

func VorbisCommentBlock(vendor string, comments ...string) Block {
	body := binary.LittleEndian.AppendUint32(nil, uint32(len(vendor)))
	body = append(body, vendor...)
	body = binary.LittleEndian.AppendUint32(body, uint32(len(comments)))
	for _, c := range comments {
		body = binary.LittleEndian.AppendUint32(body, uint32(len(c)))
		body = append(body, c...)
	}
	return Block{Type: bitstream.MetadataVorbisComment, Body: body}
}

// Picture holds PICTURE values.
type Picture struct {
	Type        uint32
	Mime        string
	Description string
	Width       uint32
	Height      uint32
	ColorDepth  uint32
	TotalColors uint32
	Data        []byte
}

func PictureBlock(p Picture) Block {
	be := binary.BigEndian
	body := be.AppendUint32(nil, p.Type)
	body = be.AppendUint32(body, uint32(len(p.Mime)))
	body = append(body, p.Mime...)
	body = be.AppendUint32(body, uint32(len(p.Description)))
	body = append(body, p.Description...)
	body = be.AppendUint32(body, p.Width)
	body = be.AppendUint32(body, p.Height)
	body = be.AppendUint32(body, p.ColorDepth)
	body = be.AppendUint32(body, p.TotalColors)
	body = be.AppendUint32(body, uint32(len(p.Data)))
	body = append(body, p.Data...)
	return Block{Type: bitstream.MetadataPicture, Body: body}
}

// CueTrack is one cue sheet track.
type CueTrack struct {
	Offset      uint64
	Number      uint8
	ISRC        string
	NonAudio    bool
	PreEmphasis bool
	Indexes     []CueIndex
}

type CueIndex struct {
	Offset uint64
	Number uint8
}

// CueSheet holds CUESHEET values.
type CueSheet struct {
	Catalog string
	LeadIn  uint64
	IsCD    bool
	Tracks  []CueTrack
}

func CueSheetBlock(c CueSheet) Block {
	var w BitWriter

	catalog := make([]byte, 128)
	copy(catalog, c.Catalog)
	w.WriteBytes(catalog)
	w.WriteBits(c.LeadIn, 64)
	w.WriteBits(boolBit(c.IsCD), 1)
	w.WriteBits(0, 7)
	w.WriteBytes(make([]byte, 258))
	w.WriteBits(uint64(len(c.Tracks)), 8)

	for _, t := range c.Tracks {
		w.WriteBits(t.Offset, 64)
		w.WriteBits(uint64(t.Number), 8)
		isrc := make([]byte, 12)
		copy(isrc, t.ISRC)
		w.WriteBytes(isrc)
		w.WriteBits(boolBit(t.NonAudio), 1)
		w.WriteBits(boolBit(t.PreEmphasis), 1)
		w.WriteBits(0, 6)
		w.WriteBytes(make([]byte, 13))
		w.WriteBits(uint64(len(t.Indexes)), 8)
		for _, ix := range t.Indexes {
			w.WriteBits(ix.Offset, 64)
			w.WriteBits(uint64(ix.Number), 8)
			w.WriteBytes(make([]byte, 3))
		}
	}

	return Block{Type: bitstream.MetadataCueSheet, Body: w.Bytes()}
}

// SeekPoint is one SEEKTABLE entry.
type SeekPoint struct {
	SampleNumber uint64
	Offset       uint64
	Samples      uint16
}

func SeekTableBlock(points ...SeekPoint) Block {
	be := binary.BigEndian
	var body []byte
	for _, p := range points {
		body = be.AppendUint64(body, p.SampleNumber)
		body = be.AppendUint64(body, p.Offset)
		body = be.AppendUint16(body, p.Samples)
	}
	return Block{Type: bitstream.MetadataSeekTable, Body: body}
}

func ApplicationBlock(id uint32, data []byte) Block {
	body := binary.BigEndian.AppendUint32(nil, id)
	return Block{Type: bitstream.MetadataApplication, Body: append(body, data...)}
}

func PaddingBlock(n int) Block {
	return Block{Type: bitstream.MetadataPadding, Body: make([]byte, n)}
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// Stream is a complete native FLAC stream.
type Stream struct {
	Blocks []Block
	Frames [][]byte
}

// Native encodes the stream with its marker.
func (s Stream) Native() []byte {
	out := append([]byte{}, Marker...)
	out = append(out, s.Metadata()...)
	for _, f := range s.Frames {
		out = append(out, f...)
	}
	return out
}

// Metadata encodes the metadata blocks, marking the last one.
func (s Stream) Metadata() []byte {
	var out []byte
	for i, b := range s.Blocks {
		out = append(out, b.Encode(i == len(s.Blocks)-1)...)
	}
	return out
}
