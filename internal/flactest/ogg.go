// SPDX-License-Identifier: EPL-2.0

package flactest

import (
	"encoding/binary"
)

var oggCRCTable = func() (t [256]uint32) {
	for i := range t {
		r := uint32(i) << 24
		for range 8 {
			if r&0x80000000 != 0 {
				r = r<<1 ^ 0x04C11DB7
			} else {
				r <<= 1
			}
		}
		t[i] = r
	}
	return t
}()

// OggPage builds one page carrying payload as a single packet.
func OggPage(serial, seq uint32, flags byte, granule uint64, payload []byte) []byte {
	var lacing []byte
	n := len(payload)
	for n >= 255 {
		lacing = append(lacing, 255)
		n -= 255
	}
	lacing = append(lacing, byte(n))

	page := []byte("OggS")
	page = append(page, 0, flags)
	page = binary.LittleEndian.AppendUint64(page, granule)
	page = binary.LittleEndian.AppendUint32(page, serial)
	page = binary.LittleEndian.AppendUint32(page, seq)
	page = append(page, 0, 0, 0, 0, byte(len(lacing)))
	page = append(page, lacing...)
	page = append(page, payload...)

	var sum uint32
	for _, b := range page {
		sum = sum<<8 ^ oggCRCTable[byte(sum>>24)^b]
	}
	binary.LittleEndian.PutUint32(page[22:26], sum)

	return page
}

// Ogg wraps the stream in Ogg FLAC pages, one packet per page. The first
// block must be STREAMINFO.
func (s Stream) Ogg(serial uint32) []byte {
	first := []byte{0x7F, 'F', 'L', 'A', 'C', 1, 0}
	first = binary.BigEndian.AppendUint16(first, uint16(len(s.Blocks)-1))
	first = append(first, Marker...)
	first = append(first, s.Blocks[0].Encode(len(s.Blocks) == 1)...)

	out := OggPage(serial, 0, 0x02, 0, first)
	seq := uint32(1)
	for i, b := range s.Blocks[1:] {
		out = append(out, OggPage(serial, seq, 0, 0, b.Encode(i == len(s.Blocks)-2))...)
		seq++
	}
	for i, f := range s.Frames {
		flags := byte(0)
		if i == len(s.Frames)-1 {
			flags = 0x04
		}
		out = append(out, OggPage(serial, seq, flags, 0, f)...)
		seq++
	}

	return out
}
