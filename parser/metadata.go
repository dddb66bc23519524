// SPDX-License-Identifier: EPL-2.0

package parser

import (
	"math/bits"

	"github.com/ik5/flacpull/bitstream"
)

const maxSlots = 20

// blockState is the walk through the current metadata block.
type blockState struct {
	typ    bitstream.MetadataType
	length uint32
	lay    *layout

	// cur is the next slot to read, -1 once the layout is exhausted.
	cur  int
	seen uint32
	vals [maxSlots]uint64

	// pos and size track progress through a byte slot.
	pos  uint64
	size uint64

	// start is the reader byte count where the block body begins.
	start uint64
	loops [2]uint32
}

func (st *blockState) reset(h bitstream.MetadataHeader, start uint64) {
	*st = blockState{
		typ:    h.Type,
		length: h.Length,
		lay:    layoutFor(h.Type),
		start:  start,
	}
	switch {
	case st.lay.start != nil:
		st.cur = st.lay.start(st)
	case len(st.lay.slots) == 0:
		st.cur = -1
	}
}

func (st *blockState) done(i int) bool { return st.seen&(1<<i) != 0 }

// advance moves past the current slot. Looping back clears the record
// state of every slot from the loop target on.
func (st *blockState) advance() {
	i := st.cur
	st.seen |= 1 << i
	next := st.lay.next(st, i)
	if next >= 0 && next <= i {
		st.seen &= 1<<next - 1
	}
	st.cur = next
	st.pos = 0
	st.size = 0
}

// field positions the parser on a block holding f and reads it. Scalar
// values are returned in v; byte fields are copied to out and the copied
// length returned in w.
func (p *Parser) field(f bitstream.Field, out []byte) (v uint64, w int, r bitstream.Result) {
	for {
		if p.frameHdr {
			return 0, 0, bitstream.End
		}
		if !p.metaHdr {
			if r := p.header(true); r != bitstream.OK {
				return 0, 0, r
			}
			continue
		}
		if p.meta.Type != f.Block() {
			if r := p.finishBlock(); r != bitstream.OK {
				return 0, 0, r
			}
			continue
		}

		v, w, r = p.walk(f, out)
		if r == bitstream.End && !f.Repeating() {
			if r := p.finishBlock(); r != bitstream.OK {
				return 0, 0, r
			}
			continue
		}

		return v, w, r
	}
}

func (p *Parser) walk(f bitstream.Field, out []byte) (uint64, int, bitstream.Result) {
	st := &p.block
	lay := st.lay

	if get, ok := lay.derived[f]; ok {
		if st.cur < 0 {
			if r := p.skipTail(); r != bitstream.OK {
				return 0, 0, r
			}
			return 0, 0, bitstream.End
		}
		v, r := get(st)
		return v, 0, r
	}

	t := lay.index(f)
	if t < 0 {
		return 0, 0, bitstream.Failure
	}

	for {
		if st.cur < 0 {
			if r := p.skipTail(); r != bitstream.OK {
				return 0, 0, r
			}
			return 0, 0, bitstream.End
		}

		// Unnamed slots close a record; passing them decides whether the
		// next read starts a new one.
		if lay.slots[st.cur].field == bitstream.FieldInvalid {
			if _, r := p.readSlot(st.cur, nil); r != bitstream.OK {
				return 0, 0, r
			}
			st.advance()
			continue
		}

		if st.done(t) && lay.slots[t].kind != slotBytes {
			return st.vals[t], 0, bitstream.OK
		}

		if st.cur == t {
			w, r := p.readSlot(t, out)
			if r != bitstream.OK {
				return 0, 0, r
			}
			v := st.vals[t]
			st.advance()
			return v, w, bitstream.OK
		}

		if _, r := p.readSlot(st.cur, nil); r != bitstream.OK {
			return 0, 0, r
		}
		st.advance()
	}
}

// readSlot reads slot i. Byte slots are copied into out as far as it
// reaches and skipped beyond that.
func (p *Parser) readSlot(i int, out []byte) (int, bitstream.Result) {
	st := &p.block
	s := &st.lay.slots[i]
	b := &p.br

	switch s.kind {
	case slotUint:
		if !b.fill(s.bits) {
			return 0, bitstream.Continue
		}
		st.vals[i] = b.read(s.bits) + s.plus
		p.captureStreamInfo(i)

	case slotUintLE:
		if !b.fill(32) {
			return 0, bitstream.Continue
		}
		st.vals[i] = uint64(bits.ReverseBytes32(uint32(b.read(32))))

	case slotSkipBits:
		if !b.fill(s.bits) {
			return 0, bitstream.Continue
		}
		b.read(s.bits)

	case slotBytes:
		if st.pos == 0 {
			size, r := p.slotSize(s)
			if r != bitstream.OK {
				return 0, r
			}
			st.size = size
		}

		keep := min(st.size, uint64(len(out)))
		for st.pos < keep {
			n := b.copyTo(out[st.pos:keep])
			if n == 0 {
				return 0, bitstream.Continue
			}
			st.pos += uint64(n)
		}
		for st.pos < st.size {
			n := b.skip(st.size - st.pos)
			if n == 0 {
				return 0, bitstream.Continue
			}
			st.pos += n
		}

		return int(keep), bitstream.OK
	}

	return 0, bitstream.OK
}

func (p *Parser) slotSize(s *slot) (uint64, bitstream.Result) {
	st := &p.block

	switch {
	case s.rest:
		used := p.br.tot - st.start
		if used > uint64(st.length) {
			return 0, bitstream.Failure
		}
		return uint64(st.length) - used, bitstream.OK
	case s.sizeFrom >= 0:
		return st.vals[s.sizeFrom], bitstream.OK
	}

	return uint64(s.size), bitstream.OK
}

func (p *Parser) captureStreamInfo(i int) {
	st := &p.block
	if st.typ != bitstream.MetadataStreamInfo {
		return
	}

	switch i {
	case siSampleRate:
		p.info.sampleRate = uint32(st.vals[i])
	case siChannels:
		p.info.channels = uint8(st.vals[i])
	case siBPS:
		p.info.bitsPerSample = uint8(st.vals[i])
	}
}

// skipTail drops whatever the layout left unread in the block.
func (p *Parser) skipTail() bitstream.Result {
	st := &p.block
	b := &p.br

	for {
		used := b.tot - st.start
		if used > uint64(st.length) {
			return bitstream.Failure
		}
		left := uint64(st.length) - used
		if left == 0 {
			return bitstream.OK
		}
		if b.skip(left) == 0 {
			return bitstream.Continue
		}
	}
}

// finishBlock walks the rest of the current block and moves to the next
// header position.
func (p *Parser) finishBlock() bitstream.Result {
	st := &p.block

	for st.cur >= 0 {
		if _, r := p.readSlot(st.cur, nil); r != bitstream.OK {
			return r
		}
		st.advance()
	}
	if r := p.skipTail(); r != bitstream.OK {
		return r
	}

	p.metaHdr = false
	if p.meta.IsLast {
		p.state = bitstream.StateFrame
	} else {
		p.state = bitstream.StateMetadataOrFrame
	}

	return bitstream.OK
}
