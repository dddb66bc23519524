// SPDX-License-Identifier: EPL-2.0

package parser

import (
	"math/bits"

	"github.com/ik5/flacpull/internal/crc"
)

// bitReader pulls bytes from the current input chunk one at a time into a
// 64-bit accumulator, only while fewer bits are buffered than a read needs.
// Buffered bits survive across chunks, so any field may straddle a chunk
// boundary.
type bitReader struct {
	in  []byte
	pos int

	// val holds the low bits pending bits; everything above is zero.
	val  uint64
	bits uint

	// tot counts bytes pulled or skipped since Init.
	tot uint64

	crc8  uint8
	crc16 uint16
}

func mask(n uint) uint64 {
	return (uint64(1) << n) - 1
}

func (b *bitReader) reset() {
	*b = bitReader{}
}

func (b *bitReader) load(p []byte) {
	b.in = p
	b.pos = 0
}

func (b *bitReader) resetCRC() {
	b.crc8 = 0
	b.crc16 = 0
}

// fill buffers at least n bits. n may be at most 57, or 64 when the
// reader is byte aligned.
func (b *bitReader) fill(n uint) bool {
	for b.bits < n {
		if b.pos == len(b.in) {
			return false
		}
		c := b.in[b.pos]
		b.pos++
		b.tot++
		b.val = b.val<<8 | uint64(c)
		b.bits += 8
		b.crc8 = crc.Update8(b.crc8, c)
		b.crc16 = crc.Update16(b.crc16, c)
	}
	return true
}

// read takes n buffered bits, most significant first.
func (b *bitReader) read(n uint) uint64 {
	if n == 0 {
		return 0
	}
	b.bits -= n
	v := b.val >> b.bits
	b.val &= mask(b.bits)
	return v & mask(n)
}

func (b *bitReader) readSigned(n uint) int64 {
	if n == 0 {
		return 0
	}
	v := b.read(n)
	return int64(v<<(64-n)) >> (64 - n)
}

// align drops the bits left over from a partially read byte.
func (b *bitReader) align() {
	r := b.bits % 8
	b.bits -= r
	b.val &= mask(b.bits)
}

// peek returns the i-th byte not yet pulled from the chunk.
func (b *bitReader) peek(i int) (byte, bool) {
	if b.bits != 0 || b.pos+i >= len(b.in) {
		return 0, false
	}
	return b.in[b.pos+i], true
}

// lead returns the first byte of the next header. A header split across
// chunks is already partly buffered, so its top byte is used instead of the
// chunk.
func (b *bitReader) lead() (byte, bool) {
	if b.bits >= 8 && b.bits%8 == 0 {
		return byte(b.val >> (b.bits - 8)), true
	}
	return b.peek(0)
}

// unary adds the count of zero bits before the next one bit to acc,
// consuming the one bit. Progress is kept in acc across calls.
func (b *bitReader) unary(acc *uint64) bool {
	for {
		if b.bits == 0 && !b.fill(8) {
			return false
		}
		if b.val == 0 {
			*acc += uint64(b.bits)
			b.bits = 0
			continue
		}
		z := b.bits - uint(bits.Len64(b.val))
		*acc += uint64(z)
		b.bits -= z + 1
		b.val &= mask(b.bits)
		return true
	}
}

// skip discards up to n whole bytes and returns how many it dropped.
// The reader must sit on a byte boundary. Checksums are not updated.
func (b *bitReader) skip(n uint64) uint64 {
	var done uint64
	for b.bits >= 8 && done < n {
		b.bits -= 8
		b.val &= mask(b.bits)
		done++
	}

	k := min(n-done, uint64(len(b.in)-b.pos))
	b.pos += int(k)
	b.tot += k

	return done + k
}

// copyTo moves up to len(out) whole bytes into out.
func (b *bitReader) copyTo(out []byte) int {
	i := 0
	for b.bits >= 8 && i < len(out) {
		b.bits -= 8
		out[i] = byte(b.val >> b.bits)
		b.val &= mask(b.bits)
		i++
	}

	k := copy(out[i:], b.in[b.pos:])
	b.pos += k
	b.tot += uint64(k)

	return i + k
}
