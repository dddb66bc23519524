// SPDX-License-Identifier: EPL-2.0

package parser

import (
	"github.com/ik5/flacpull/bitstream"
)

// streamInfo keeps the STREAMINFO values that frame headers may defer to.
type streamInfo struct {
	sampleRate    uint32
	channels      uint8
	bitsPerSample uint8
}

// Parser decodes one FLAC stream. The zero value is not ready; use New.
type Parser struct {
	br        bitReader
	container bitstream.Container
	state     bitstream.State
	ogg       oggReader

	metaHdr bool
	meta    bitstream.MetadataHeader
	block   blockState

	frameHdr bool
	frame    bitstream.FrameHeader
	fh       frameHeaderState
	fr       frameState

	info streamInfo

	// scratch sample area used when a frame is decoded only to be skipped.
	skipBuf [][]int32
}

var _ bitstream.Parser = (*Parser)(nil)

// New returns a parser ready for a stream framed as c.
func New(c bitstream.Container) *Parser {
	p := &Parser{}
	p.Init(c)
	return p
}

// Init resets all stream state. The skip buffer is kept.
func (p *Parser) Init(c bitstream.Container) {
	skip := p.skipBuf
	*p = Parser{skipBuf: skip}
	p.container = c

	if c == bitstream.ContainerOgg {
		p.state = bitstream.StateOggHeader
	} else {
		p.state = bitstream.StateStreamMarkerOrFrame
	}
}

func (p *Parser) State() bitstream.State                   { return p.state }
func (p *Parser) MetadataHeader() bitstream.MetadataHeader { return p.meta }
func (p *Parser) FrameHeader() bitstream.FrameHeader       { return p.frame }

// Container returns the framing in use; an unknown container is resolved
// on the first byte.
func (p *Parser) Container() bitstream.Container { return p.container }

// Sync finishes the current metadata block or frame and reads the next
// header.
func (p *Parser) Sync(data []byte) (int, bitstream.Result) {
	return p.drive(data, p.syncStep)
}

// Decode reads the next frame into samples, which must hold one slice per
// channel of at least the block size. With nil samples the frame is decoded
// into an internal area.
func (p *Parser) Decode(data []byte, samples [][]int32) (int, bitstream.Result) {
	return p.drive(data, func() bitstream.Result {
		return p.decodeStep(samples)
	})
}

// Uint reads a scalar metadata field.
func (p *Parser) Uint(f bitstream.Field, data []byte) (int, uint64, bitstream.Result) {
	if !f.Valid() || f.Bytes() {
		return 0, 0, bitstream.Failure
	}

	var v uint64
	n, r := p.drive(data, func() bitstream.Result {
		var r bitstream.Result
		v, _, r = p.field(f, nil)
		return r
	})

	return n, v, r
}

// Bytes copies a byte field into out. Bytes past len(out) are skipped.
func (p *Parser) Bytes(f bitstream.Field, data, out []byte) (int, int, bitstream.Result) {
	if !f.Bytes() {
		return 0, 0, bitstream.Failure
	}

	var w int
	n, r := p.drive(data, func() bitstream.Result {
		var r bitstream.Result
		_, w, r = p.field(f, out)
		return r
	})

	return n, w, r
}

// drive feeds data to step, unwrapping Ogg pages when needed.
func (p *Parser) drive(data []byte, step func() bitstream.Result) (int, bitstream.Result) {
	if p.container == bitstream.ContainerUnknown {
		if len(data) == 0 {
			return 0, bitstream.Continue
		}
		if data[0] == 'O' {
			p.container = bitstream.ContainerOgg
			p.state = bitstream.StateOggHeader
		} else {
			p.container = bitstream.ContainerNative
		}
	}

	if p.container != bitstream.ContainerOgg {
		p.br.load(data)
		r := step()
		return p.br.pos, r
	}

	used := 0
	for {
		n, r := p.ogg.page(data[used:])
		used += n
		if r != bitstream.OK {
			return used, r
		}
		if p.state == bitstream.StateOggHeader {
			p.state = bitstream.StateStreamMarker
		}

		end := used + min(p.ogg.remain, len(data)-used)
		if end == used {
			return used, bitstream.Continue
		}

		p.br.load(data[used:end])
		r = step()
		used += p.br.pos
		p.ogg.remain -= p.br.pos

		// A step that takes nothing from a non-empty payload cannot progress
		// on this input.
		if r != bitstream.Continue || p.br.pos == 0 {
			return used, r
		}
	}
}

func (p *Parser) syncStep() bitstream.Result {
	if p.metaHdr {
		if r := p.finishBlock(); r != bitstream.OK {
			return r
		}
	} else if p.frameHdr {
		if r := p.finishFrame(nil); r != bitstream.OK {
			return r
		}
	}

	return p.header(false)
}

func (p *Parser) decodeStep(samples [][]int32) bitstream.Result {
	for !p.frameHdr {
		if p.metaHdr {
			if r := p.finishBlock(); r != bitstream.OK {
				return r
			}
			continue
		}
		if r := p.header(false); r != bitstream.OK {
			return r
		}
	}

	return p.finishFrame(samples)
}
