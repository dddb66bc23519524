// SPDX-License-Identifier: EPL-2.0

package parser

import (
	"github.com/ik5/flacpull/bitstream"
)

const streamMarker = 0x664C6143 // "fLaC"

// header reads forward until a metadata or frame header is parsed. With
// stopAtFrame set it reports End instead of reading a frame header.
func (p *Parser) header(stopAtFrame bool) bitstream.Result {
	for {
		if p.metaHdr || p.frameHdr {
			return bitstream.OK
		}

		switch p.state {
		case bitstream.StateStreamMarkerOrFrame:
			c, ok := p.br.lead()
			if !ok {
				return bitstream.Continue
			}
			switch c {
			case 'f':
				p.state = bitstream.StateStreamMarker
			case 0xFF:
				p.state = bitstream.StateFrame
			default:
				return bitstream.StreamMarkerInvalid
			}

		case bitstream.StateStreamMarker:
			if !p.br.fill(32) {
				return bitstream.Continue
			}
			if p.br.read(32) != streamMarker {
				return bitstream.StreamMarkerInvalid
			}
			p.state = bitstream.StateMetadataOrFrame

		case bitstream.StateMetadataOrFrame:
			c, ok := p.br.lead()
			if !ok {
				return bitstream.Continue
			}
			if c == 0xFF {
				p.state = bitstream.StateFrame
				continue
			}
			if r := p.metadataHeader(); r != bitstream.OK {
				return r
			}

		case bitstream.StateFrame:
			if stopAtFrame {
				return bitstream.End
			}
			if r := p.frameHeader(); r != bitstream.OK {
				return r
			}

		default:
			return bitstream.Failure
		}
	}
}

func (p *Parser) metadataHeader() bitstream.Result {
	if !p.br.fill(32) {
		return bitstream.Continue
	}

	v := p.br.read(32)
	typ := bitstream.MetadataType(v >> 24 & 0x7F)
	if typ == bitstream.MetadataInvalid {
		return bitstream.MetadataTypeInvalid
	}

	p.meta = bitstream.MetadataHeader{
		IsLast: v>>31 == 1,
		Type:   typ,
		Length: uint32(v & 0xFFFFFF),
	}
	p.metaHdr = true
	p.state = bitstream.StateMetadata
	p.block.reset(p.meta, p.br.tot)

	return bitstream.OK
}

// frameHeaderState tracks a frame header read across chunks.
type frameHeaderState struct {
	phase     int
	blockCode uint8
	rateCode  uint8
	sizeCode  uint8
	number    uint64
	utfLeft   int
	crc       uint8
}

const (
	fhSync = iota
	fhCodes
	fhNumber
	fhNumberCont
	fhBlockSize
	fhSampleRate
	fhCRC
)

var fixedRates = [12]uint32{0, 88200, 176400, 192000, 8000, 16000, 22050, 24000, 32000, 44100, 48000, 96000}

var sampleSizes = [8]uint8{0, 8, 12, 0, 16, 20, 24, 0}

func (p *Parser) frameHeader() bitstream.Result {
	b := &p.br
	h := &p.fh
	f := &p.frame

	for {
		switch h.phase {
		case fhSync:
			// The sync code is checked before any byte is pulled so a bad
			// frame start is reported with nothing consumed.
			if b.bits == 0 {
				*h = frameHeaderState{}
				*f = bitstream.FrameHeader{}
				b.resetCRC()
				if c, ok := b.peek(0); ok && c != 0xFF {
					return bitstream.FrameSyncCodeInvalid
				}
				if c, ok := b.peek(1); ok && c&0xFC != 0xF8 {
					return bitstream.FrameSyncCodeInvalid
				}
			}
			if !b.fill(16) {
				return bitstream.Continue
			}
			v := b.read(16)
			if v>>2 != 0x3FFE {
				return bitstream.FrameSyncCodeInvalid
			}
			if v&0x02 != 0 {
				return bitstream.FrameReservedBit1
			}
			f.BlockingStrategy = uint8(v & 0x01)
			h.phase = fhCodes

		case fhCodes:
			if !b.fill(16) {
				return bitstream.Continue
			}
			v := b.read(16)
			h.blockCode = uint8(v >> 12)
			h.rateCode = uint8(v >> 8 & 0x0F)
			f.ChannelAssignment = bitstream.ChannelAssignment(v >> 4 & 0x0F)
			h.sizeCode = uint8(v >> 1 & 0x07)

			switch {
			case h.blockCode == 0:
				return bitstream.FrameReservedBlocksize
			case h.rateCode == 15:
				return bitstream.FrameInvalidSampleRate
			case f.ChannelAssignment > bitstream.ChannelMidSide:
				return bitstream.FrameReservedChannelAssignment
			case h.sizeCode == 3 || h.sizeCode == 7:
				return bitstream.FrameReservedSampleSize
			case v&0x01 != 0:
				return bitstream.FrameReservedBit2
			}

			if f.ChannelAssignment < bitstream.ChannelLeftSide {
				f.Channels = uint8(f.ChannelAssignment) + 1
			} else {
				f.Channels = 2
			}
			h.phase = fhNumber

		case fhNumber:
			if !b.fill(8) {
				return bitstream.Continue
			}
			c := uint8(b.read(8))
			switch {
			case c&0x80 == 0:
				h.number, h.utfLeft = uint64(c), 0
			case c&0xE0 == 0xC0:
				h.number, h.utfLeft = uint64(c&0x1F), 1
			case c&0xF0 == 0xE0:
				h.number, h.utfLeft = uint64(c&0x0F), 2
			case c&0xF8 == 0xF0:
				h.number, h.utfLeft = uint64(c&0x07), 3
			case c&0xFC == 0xF8:
				h.number, h.utfLeft = uint64(c&0x03), 4
			case c&0xFE == 0xFC:
				h.number, h.utfLeft = uint64(c&0x01), 5
			case c == 0xFE:
				h.number, h.utfLeft = 0, 6
			default:
				return bitstream.Failure
			}
			h.phase = fhNumberCont

		case fhNumberCont:
			for h.utfLeft > 0 {
				if !b.fill(8) {
					return bitstream.Continue
				}
				c := b.read(8)
				if c&0xC0 != 0x80 {
					return bitstream.Failure
				}
				h.number = h.number<<6 | c&0x3F
				h.utfLeft--
			}
			if f.Variable() {
				f.SampleNumber = h.number
			} else {
				if h.number > 0x7FFFFFFF {
					return bitstream.Failure
				}
				f.FrameNumber = uint32(h.number)
			}
			h.phase = fhBlockSize

		case fhBlockSize:
			switch {
			case h.blockCode == 1:
				f.BlockSize = 192
			case h.blockCode <= 5:
				f.BlockSize = 576 << (h.blockCode - 2)
			case h.blockCode == 6:
				if !b.fill(8) {
					return bitstream.Continue
				}
				f.BlockSize = uint32(b.read(8)) + 1
			case h.blockCode == 7:
				if !b.fill(16) {
					return bitstream.Continue
				}
				f.BlockSize = uint32(b.read(16)) + 1
			default:
				f.BlockSize = 256 << (h.blockCode - 8)
			}
			if f.BlockSize > bitstream.MaxBlockSize {
				return bitstream.Failure
			}
			h.phase = fhSampleRate

		case fhSampleRate:
			switch {
			case h.rateCode == 0:
				if p.info.sampleRate == 0 {
					return bitstream.FrameInvalidSampleRate
				}
				f.SampleRate = p.info.sampleRate
			case h.rateCode < 12:
				f.SampleRate = fixedRates[h.rateCode]
			case h.rateCode == 12:
				if !b.fill(8) {
					return bitstream.Continue
				}
				f.SampleRate = uint32(b.read(8)) * 1000
			case h.rateCode == 13:
				if !b.fill(16) {
					return bitstream.Continue
				}
				f.SampleRate = uint32(b.read(16))
			default:
				if !b.fill(16) {
					return bitstream.Continue
				}
				f.SampleRate = uint32(b.read(16)) * 10
			}

			if h.sizeCode == 0 {
				if p.info.bitsPerSample == 0 {
					return bitstream.FrameInvalidSampleSize
				}
				f.BitsPerSample = p.info.bitsPerSample
			} else {
				f.BitsPerSample = sampleSizes[h.sizeCode]
			}
			h.phase = fhCRC

		case fhCRC:
			if b.bits == 0 {
				h.crc = b.crc8
			}
			if !b.fill(8) {
				return bitstream.Continue
			}
			f.CRC8 = uint8(b.read(8))
			if f.CRC8 != h.crc {
				return bitstream.FrameCRC8Invalid
			}

			h.phase = fhSync
			p.frameHdr = true
			p.state = bitstream.StateFrame
			p.fr = frameState{}

			return bitstream.OK
		}
	}
}
