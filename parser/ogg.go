// SPDX-License-Identifier: EPL-2.0

package parser

import (
	"encoding/binary"

	"github.com/ik5/flacpull/bitstream"
)

const (
	oggHeaderSize = 27
	oggFlagBOS    = 0x02
	// oggMappingSize covers 0x7F "FLAC", version and header count.
	oggMappingSize = 9
	oggProbeSize   = 5
)

// oggReader walks Ogg pages and exposes the payload of the first logical
// stream carrying FLAC. Other streams are skipped.
type oggReader struct {
	hdr  [oggHeaderSize + 255]byte
	have int

	locked bool
	serial uint32

	// remain is payload on the current page that belongs to the FLAC
	// stream and has not been handed out yet.
	remain int
	skip   int

	probing bool
	probe   [oggProbeSize]byte
	probed  int
	payload int
}

var oggFLAC = [oggProbeSize]byte{0x7F, 'F', 'L', 'A', 'C'}

// page consumes page structure from data until FLAC payload is available.
// It reports OK with remain > 0, Continue when data runs out, or Failure on
// a broken capture pattern.
func (o *oggReader) page(data []byte) (int, bitstream.Result) {
	used := 0

	for {
		switch {
		case o.skip > 0:
			k := min(o.skip, len(data)-used)
			used += k
			o.skip -= k
			if o.skip > 0 {
				return used, bitstream.Continue
			}

		case o.remain > 0:
			return used, bitstream.OK

		case o.probing:
			k := copy(o.probe[o.probed:], data[used:])
			used += k
			o.probed += k
			if o.probed < oggProbeSize {
				return used, bitstream.Continue
			}
			o.probing = false
			if o.probe == oggFLAC {
				o.locked = true
				o.serial = binary.LittleEndian.Uint32(o.hdr[14:18])
				o.skip = oggMappingSize - oggProbeSize
				o.remain = o.payload - oggMappingSize
			} else {
				o.skip = o.payload - oggProbeSize
			}

		default:
			need := oggHeaderSize
			if o.have >= oggHeaderSize {
				need += int(o.hdr[26])
			}
			k := copy(o.hdr[o.have:need], data[used:])
			used += k
			o.have += k
			if o.have < need {
				return used, bitstream.Continue
			}

			if o.have == oggHeaderSize {
				if string(o.hdr[:4]) != "OggS" || o.hdr[4] != 0 {
					return used, bitstream.Failure
				}
				if o.hdr[26] > 0 {
					continue
				}
			}

			o.have = 0
			o.startPage()
		}
	}
}

func (o *oggReader) startPage() {
	segs := int(o.hdr[26])
	payload := 0
	for _, s := range o.hdr[oggHeaderSize : oggHeaderSize+segs] {
		payload += int(s)
	}

	serial := binary.LittleEndian.Uint32(o.hdr[14:18])

	switch {
	case o.locked && serial == o.serial:
		o.remain = payload
	case !o.locked && o.hdr[5]&oggFlagBOS != 0 && payload >= oggMappingSize:
		o.probing = true
		o.probed = 0
		o.payload = payload
	default:
		o.skip = payload
	}
}
