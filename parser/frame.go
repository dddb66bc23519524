// SPDX-License-Identifier: EPL-2.0

package parser

import (
	"github.com/ik5/flacpull/bitstream"
)

// frameState tracks subframe decoding across chunks.
type frameState struct {
	started bool
	out     [][]int32
	// own is set when out is the parser's skip area.
	own   bool
	phase int
	ch    int

	kind   int
	order  int
	wasted uint
	bps    uint
	i      int

	precision uint
	shift     int
	coefs     [32]int32

	riceBits  uint
	partOrder uint
	part      int
	partEnd   int
	param     uint
	escaped   bool
	quotient  uint64
	haveQ     bool

	crc uint16
}

const (
	subConstant = iota
	subVerbatim
	subFixed
	subLPC
)

const (
	sfHeader = iota
	sfWasted
	sfConstant
	sfVerbatim
	sfWarmup
	sfLPCParams
	sfLPCCoefs
	sfResidualHeader
	sfPartition
	sfEscapeBits
	sfResidual
	sfFooter
)

// finishFrame decodes the rest of the current frame. With nil samples the
// internal skip area receives the audio.
func (p *Parser) finishFrame(samples [][]int32) bitstream.Result {
	fs := &p.fr
	h := &p.frame
	bs := int(h.BlockSize)

	if !fs.started {
		if samples == nil {
			fs.out = p.skipArea(int(h.Channels), bs)
			fs.own = true
		} else {
			if !fits(samples, int(h.Channels), bs) {
				return bitstream.Failure
			}
			fs.out = samples
		}
		fs.started = true
	}

	for fs.ch < int(h.Channels) {
		if r := p.subframe(fs.out[fs.ch][:bs]); r != bitstream.OK {
			return r
		}
		fs.ch++
		fs.phase = sfHeader
	}

	if fs.phase != sfFooter {
		decorrelate(h.ChannelAssignment, fs.out, bs)
		p.br.align()
		fs.phase = sfFooter
	}

	b := &p.br
	if b.bits == 0 {
		fs.crc = b.crc16
	}
	if !b.fill(16) {
		return bitstream.Continue
	}
	if uint16(b.read(16)) != fs.crc {
		return bitstream.FrameCRC16Invalid
	}

	// A frame started by Sync and finished by Decode lands in the skip
	// area first.
	if fs.own && samples != nil {
		if !fits(samples, int(h.Channels), bs) {
			return bitstream.Failure
		}
		for c := range int(h.Channels) {
			copy(samples[c][:bs], fs.out[c][:bs])
		}
	}

	p.frameHdr = false
	p.fr = frameState{}

	return bitstream.OK
}

func fits(samples [][]int32, channels, blockSize int) bool {
	if len(samples) < channels {
		return false
	}
	for c := range channels {
		if len(samples[c]) < blockSize {
			return false
		}
	}
	return true
}

func (p *Parser) skipArea(channels, blockSize int) [][]int32 {
	if len(p.skipBuf) < channels || len(p.skipBuf[0]) < blockSize {
		n := max(blockSize, 4096)
		if len(p.skipBuf) > 0 {
			n = max(n, len(p.skipBuf[0]))
		}
		p.skipBuf = make([][]int32, bitstream.MaxChannels)
		for c := range p.skipBuf {
			p.skipBuf[c] = make([]int32, n)
		}
	}
	return p.skipBuf
}

// sideChannel reports whether channel ch carries a side signal, which
// needs one extra bit.
func sideChannel(a bitstream.ChannelAssignment, ch int) bool {
	switch a {
	case bitstream.ChannelLeftSide, bitstream.ChannelMidSide:
		return ch == 1
	case bitstream.ChannelSideRight:
		return ch == 0
	}
	return false
}

func (p *Parser) subframe(s []int32) bitstream.Result {
	b := &p.br
	fs := &p.fr
	bs := len(s)

	for {
		switch fs.phase {
		case sfHeader:
			if !b.fill(8) {
				return bitstream.Continue
			}
			v := b.read(8)
			if v&0x80 != 0 {
				return bitstream.SubframeReservedBit
			}

			t := int(v >> 1 & 0x3F)
			switch {
			case t == 0:
				fs.kind = subConstant
			case t == 1:
				fs.kind = subVerbatim
			case t >= 8 && t <= 12:
				fs.kind, fs.order = subFixed, t-8
			case t >= 32:
				fs.kind, fs.order = subLPC, t-31
			default:
				return bitstream.SubframeReservedType
			}
			if fs.order > bs {
				return bitstream.Failure
			}

			fs.wasted = 0
			fs.quotient = 0
			fs.i = 0
			if v&0x01 != 0 {
				fs.phase = sfWasted
				continue
			}
			if r := p.subframeDepth(); r != bitstream.OK {
				return r
			}

		case sfWasted:
			if !b.unary(&fs.quotient) {
				return bitstream.Continue
			}
			fs.wasted = uint(fs.quotient) + 1
			fs.quotient = 0
			if r := p.subframeDepth(); r != bitstream.OK {
				return r
			}

		case sfConstant:
			if !b.fill(fs.bps) {
				return bitstream.Continue
			}
			v := int32(b.readSigned(fs.bps))
			for i := range s {
				s[i] = v
			}
			finishSubframe(s, fs.wasted)
			return bitstream.OK

		case sfVerbatim:
			for fs.i < bs {
				if !b.fill(fs.bps) {
					return bitstream.Continue
				}
				s[fs.i] = int32(b.readSigned(fs.bps))
				fs.i++
			}
			finishSubframe(s, fs.wasted)
			return bitstream.OK

		case sfWarmup:
			for fs.i < fs.order {
				if !b.fill(fs.bps) {
					return bitstream.Continue
				}
				s[fs.i] = int32(b.readSigned(fs.bps))
				fs.i++
			}
			if fs.kind == subLPC {
				fs.phase = sfLPCParams
			} else {
				fs.phase = sfResidualHeader
			}

		case sfLPCParams:
			if !b.fill(9) {
				return bitstream.Continue
			}
			v := b.read(9)
			if v>>5 == 0x0F {
				return bitstream.Failure
			}
			fs.precision = uint(v>>5) + 1
			fs.shift = int(int64(v<<59) >> 59)
			if fs.shift < 0 {
				return bitstream.Failure
			}
			fs.i = 0
			fs.phase = sfLPCCoefs

		case sfLPCCoefs:
			for fs.i < fs.order {
				if !b.fill(fs.precision) {
					return bitstream.Continue
				}
				fs.coefs[fs.i] = int32(b.readSigned(fs.precision))
				fs.i++
			}
			fs.phase = sfResidualHeader

		case sfResidualHeader:
			if !b.fill(6) {
				return bitstream.Continue
			}
			v := b.read(6)
			switch v >> 4 {
			case 0:
				fs.riceBits = 4
			case 1:
				fs.riceBits = 5
			default:
				return bitstream.ReservedCodingMethod
			}
			fs.partOrder = uint(v & 0x0F)

			parts := 1 << fs.partOrder
			if bs%parts != 0 || bs/parts < fs.order {
				return bitstream.Failure
			}
			fs.part = 0
			fs.i = fs.order
			fs.phase = sfPartition

		case sfPartition:
			if !b.fill(fs.riceBits) {
				return bitstream.Continue
			}
			fs.param = uint(b.read(fs.riceBits))
			fs.escaped = fs.param == 1<<fs.riceBits-1
			fs.partEnd = (fs.part + 1) * (bs >> fs.partOrder)
			fs.haveQ = false
			fs.quotient = 0
			if fs.escaped {
				fs.phase = sfEscapeBits
			} else {
				fs.phase = sfResidual
			}

		case sfEscapeBits:
			if !b.fill(5) {
				return bitstream.Continue
			}
			fs.param = uint(b.read(5))
			fs.phase = sfResidual

		case sfResidual:
			if r := p.residual(s); r != bitstream.OK {
				return r
			}
			fs.part++
			if fs.part < 1<<fs.partOrder {
				fs.phase = sfPartition
				continue
			}

			if fs.kind == subFixed {
				predictFixed(s, fs.order)
			} else {
				predictLPC(s, fs.coefs[:fs.order], fs.shift)
			}
			finishSubframe(s, fs.wasted)
			return bitstream.OK
		}
	}
}

// subframeDepth settles the sample width of the current subframe and picks
// the phase that follows the subframe header.
func (p *Parser) subframeDepth() bitstream.Result {
	fs := &p.fr
	h := &p.frame

	bps := uint(h.BitsPerSample)
	if sideChannel(h.ChannelAssignment, fs.ch) {
		bps++
	}
	if fs.wasted >= bps {
		return bitstream.Failure
	}
	fs.bps = bps - fs.wasted

	switch fs.kind {
	case subConstant:
		fs.phase = sfConstant
	case subVerbatim:
		fs.phase = sfVerbatim
	default:
		fs.phase = sfWarmup
	}

	return bitstream.OK
}

func (p *Parser) residual(s []int32) bitstream.Result {
	b := &p.br
	fs := &p.fr

	for fs.i < fs.partEnd {
		if fs.escaped {
			if !b.fill(fs.param) {
				return bitstream.Continue
			}
			s[fs.i] = int32(b.readSigned(fs.param))
			fs.i++
			continue
		}

		if !fs.haveQ {
			if !b.unary(&fs.quotient) {
				return bitstream.Continue
			}
			fs.haveQ = true
		}
		if !b.fill(fs.param) {
			return bitstream.Continue
		}
		v := fs.quotient<<fs.param | b.read(fs.param)
		s[fs.i] = int32(v>>1) ^ -int32(v&1)

		fs.quotient = 0
		fs.haveQ = false
		fs.i++
	}

	return bitstream.OK
}

func finishSubframe(s []int32, wasted uint) {
	if wasted == 0 {
		return
	}
	for i := range s {
		s[i] <<= wasted
	}
}

// predictFixed restores samples in place from residuals using the fixed
// polynomial predictor of the given order.
func predictFixed(s []int32, order int) {
	switch order {
	case 1:
		for i := 1; i < len(s); i++ {
			s[i] += s[i-1]
		}
	case 2:
		for i := 2; i < len(s); i++ {
			s[i] += 2*s[i-1] - s[i-2]
		}
	case 3:
		for i := 3; i < len(s); i++ {
			s[i] += 3*s[i-1] - 3*s[i-2] + s[i-3]
		}
	case 4:
		for i := 4; i < len(s); i++ {
			s[i] += 4*s[i-1] - 6*s[i-2] + 4*s[i-3] - s[i-4]
		}
	}
}

func predictLPC(s []int32, coefs []int32, shift int) {
	order := len(coefs)
	for i := order; i < len(s); i++ {
		var sum int64
		for j, c := range coefs {
			sum += int64(c) * int64(s[i-1-j])
		}
		s[i] += int32(sum >> shift)
	}
}

func decorrelate(a bitstream.ChannelAssignment, out [][]int32, bs int) {
	switch a {
	case bitstream.ChannelLeftSide:
		left, side := out[0][:bs], out[1][:bs]
		for i := range bs {
			side[i] = left[i] - side[i]
		}
	case bitstream.ChannelSideRight:
		side, right := out[0][:bs], out[1][:bs]
		for i := range bs {
			side[i] += right[i]
		}
	case bitstream.ChannelMidSide:
		mid, side := out[0][:bs], out[1][:bs]
		for i := range bs {
			m := mid[i]<<1 | side[i]&1
			mid[i] = (m + side[i]) >> 1
			side[i] = (m - side[i]) >> 1
		}
	}
}
