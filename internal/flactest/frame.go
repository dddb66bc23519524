// SPDX-License-Identifier: EPL-2.0

package flactest

import (
	"github.com/ik5/flacpull/bitstream"
	"github.com/ik5/flacpull/internal/crc"
)

// SubframeKind selects how a channel is coded.
type SubframeKind int

const (
	Constant SubframeKind = iota
	Verbatim
	Fixed
	LPC
)

// Subframe describes the coding of one channel. Residuals are always
// computed from the samples, so any predictor decodes losslessly.
type Subframe struct {
	Kind      SubframeKind
	Order     int
	Coefs     []int32
	Precision uint
	Shift     uint
	Wasted    uint
	// RiceParam applies to every partition unless Escape is set, in which
	// case residuals are stored raw with EscapeBits each.
	RiceParam      uint
	Rice5          bool
	PartitionOrder uint
	Escape         bool
	EscapeBits     uint
}

// Frame holds the input of one encoded frame. Channels always carries the
// left/right (or independent) samples; the encoder derives side signals.
type Frame struct {
	Number        uint64
	Variable      bool
	SampleRate    uint32
	BitsPerSample uint8
	// FromStreamInfo codes rate and size as "see STREAMINFO".
	FromStreamInfo bool
	Assignment     bitstream.ChannelAssignment
	Channels       [][]int32
	Subframes      []Subframe
}

// Encode returns the frame bytes including both checksums.
func (f Frame) Encode() []byte {
	var w BitWriter

	bs := len(f.Channels[0])
	blockCode, blockExtra, blockBits := blockSizeCode(bs)
	rateCode, rateExtra, rateBits := sampleRateCode(f.SampleRate)
	sizeCode := sampleSizeCode(f.BitsPerSample)
	if f.FromStreamInfo {
		rateCode, rateBits, sizeCode = 0, 0, 0
	}

	w.WriteBits(0x3FFE, 14)
	w.WriteBits(0, 1)
	w.WriteBits(boolBit(f.Variable), 1)
	w.WriteBits(uint64(blockCode), 4)
	w.WriteBits(uint64(rateCode), 4)
	w.WriteBits(uint64(f.assignment()), 4)
	w.WriteBits(uint64(sizeCode), 3)
	w.WriteBits(0, 1)
	w.WriteBytes(EncodeNumber(f.Number))
	w.WriteBits(uint64(blockExtra), blockBits)
	w.WriteBits(uint64(rateExtra), rateBits)

	hdr := w.Bytes()
	w.WriteBits(uint64(crc.Checksum8(hdr)), 8)

	for ch, data := range f.coded() {
		sf := Subframe{Kind: Verbatim}
		if ch < len(f.Subframes) {
			sf = f.Subframes[ch]
		}
		bps := uint(f.BitsPerSample)
		if f.side(ch) {
			bps++
		}
		sf.encode(&w, data, bps)
	}

	body := w.Bytes()
	w.WriteBits(uint64(crc.Checksum16(body)), 16)

	return w.Bytes()
}

func (f Frame) assignment() bitstream.ChannelAssignment {
	if f.Assignment >= bitstream.ChannelLeftSide {
		return f.Assignment
	}
	return bitstream.ChannelAssignment(len(f.Channels) - 1)
}

func (f Frame) side(ch int) bool {
	switch f.Assignment {
	case bitstream.ChannelLeftSide, bitstream.ChannelMidSide:
		return ch == 1
	case bitstream.ChannelSideRight:
		return ch == 0
	}
	return false
}

// coded applies inter-channel decorrelation.
func (f Frame) coded() [][]int32 {
	if f.Assignment < bitstream.ChannelLeftSide {
		return f.Channels
	}

	left, right := f.Channels[0], f.Channels[1]
	a := make([]int32, len(left))
	b := make([]int32, len(left))
	for i := range left {
		side := left[i] - right[i]
		switch f.Assignment {
		case bitstream.ChannelLeftSide:
			a[i], b[i] = left[i], side
		case bitstream.ChannelSideRight:
			a[i], b[i] = side, right[i]
		case bitstream.ChannelMidSide:
			a[i], b[i] = (left[i]+right[i])>>1, side
		}
	}
	return [][]int32{a, b}
}

func (sf Subframe) encode(w *BitWriter, s []int32, bps uint) {
	var t uint64
	switch sf.Kind {
	case Constant:
		t = 0
	case Verbatim:
		t = 1
	case Fixed:
		t = 8 + uint64(sf.Order)
	case LPC:
		t = 31 + uint64(sf.Order)
	}

	w.WriteBits(0, 1)
	w.WriteBits(t, 6)
	if sf.Wasted > 0 {
		w.WriteBits(1, 1)
		w.WriteUnary(uint64(sf.Wasted - 1))
	} else {
		w.WriteBits(0, 1)
	}

	shifted := make([]int32, len(s))
	for i, v := range s {
		shifted[i] = v >> sf.Wasted
	}
	s = shifted
	bps -= sf.Wasted

	switch sf.Kind {
	case Constant:
		w.WriteSigned(int64(s[0]), bps)
		return
	case Verbatim:
		for _, v := range s {
			w.WriteSigned(int64(v), bps)
		}
		return
	}

	for _, v := range s[:sf.Order] {
		w.WriteSigned(int64(v), bps)
	}

	var res []int32
	if sf.Kind == Fixed {
		res = fixedResidual(s, sf.Order)
	} else {
		w.WriteBits(uint64(sf.Precision-1), 4)
		w.WriteBits(uint64(sf.Shift), 5)
		for _, c := range sf.Coefs {
			w.WriteSigned(int64(c), sf.Precision)
		}
		res = lpcResidual(s, sf.Coefs, sf.Shift)
	}

	sf.residual(w, res, len(s))
}

func (sf Subframe) residual(w *BitWriter, res []int32, bs int) {
	riceBits := uint(4)
	if sf.Rice5 {
		riceBits = 5
		w.WriteBits(1, 2)
	} else {
		w.WriteBits(0, 2)
	}
	w.WriteBits(uint64(sf.PartitionOrder), 4)

	parts := 1 << sf.PartitionOrder
	per := bs / parts
	i := 0
	for p := range parts {
		n := per
		if p == 0 {
			n -= sf.Order
		}
		if sf.Escape {
			w.WriteBits(1<<riceBits-1, riceBits)
			w.WriteBits(uint64(sf.EscapeBits), 5)
			for _, r := range res[i : i+n] {
				w.WriteSigned(int64(r), sf.EscapeBits)
			}
		} else {
			w.WriteBits(uint64(sf.RiceParam), riceBits)
			for _, r := range res[i : i+n] {
				u := uint64(uint32(r<<1) ^ uint32(r>>31))
				w.WriteUnary(u >> sf.RiceParam)
				w.WriteBits(u&(1<<sf.RiceParam-1), sf.RiceParam)
			}
		}
		i += n
	}
}

func fixedResidual(s []int32, order int) []int32 {
	res := make([]int32, 0, len(s)-order)
	for i := order; i < len(s); i++ {
		var p int32
		switch order {
		case 1:
			p = s[i-1]
		case 2:
			p = 2*s[i-1] - s[i-2]
		case 3:
			p = 3*s[i-1] - 3*s[i-2] + s[i-3]
		case 4:
			p = 4*s[i-1] - 6*s[i-2] + 4*s[i-3] - s[i-4]
		}
		res = append(res, s[i]-p)
	}
	return res
}

func lpcResidual(s []int32, coefs []int32, shift uint) []int32 {
	res := make([]int32, 0, len(s)-len(coefs))
	for i := len(coefs); i < len(s); i++ {
		var sum int64
		for j, c := range coefs {
			sum += int64(c) * int64(s[i-1-j])
		}
		res = append(res, s[i]-int32(sum>>shift))
	}
	return res
}

// EncodeNumber writes a frame or sample number in the extended UTF-8
// form used by frame headers.
func EncodeNumber(n uint64) []byte {
	if n < 0x80 {
		return []byte{byte(n)}
	}

	// Continuation bytes each carry six bits; the lead byte holds the
	// remainder behind a prefix of ones.
	for extra := 1; extra <= 6; extra++ {
		leadBits := 6 - extra
		if extra == 6 {
			leadBits = 0
		}
		if n >= 1<<(uint(leadBits)+6*uint(extra)) {
			continue
		}
		out := make([]byte, extra+1)
		for i := extra; i > 0; i-- {
			out[i] = 0x80 | byte(n&0x3F)
			n >>= 6
		}
		prefix := byte(0xFF) << (7 - extra)
		out[0] = prefix | byte(n)
		return out
	}
	panic("flactest: number out of range")
}

func blockSizeCode(bs int) (code uint8, extra int, bits uint) {
	switch bs {
	case 192:
		return 1, 0, 0
	case 576, 1152, 2304, 4608:
		for c := uint8(2); c <= 5; c++ {
			if 576<<(c-2) == bs {
				return c, 0, 0
			}
		}
	}
	for c := uint8(8); c <= 15; c++ {
		if 256<<(c-8) == bs {
			return c, 0, 0
		}
	}
	if bs <= 256 {
		return 6, bs - 1, 8
	}
	return 7, bs - 1, 16
}

var rateCodes = map[uint32]uint8{
	88200: 1, 176400: 2, 192000: 3, 8000: 4, 16000: 5, 22050: 6,
	24000: 7, 32000: 8, 44100: 9, 48000: 10, 96000: 11,
}

func sampleRateCode(rate uint32) (code uint8, extra uint32, bits uint) {
	if c, ok := rateCodes[rate]; ok {
		return c, 0, 0
	}
	switch {
	case rate%1000 == 0 && rate/1000 < 256:
		return 12, rate / 1000, 8
	case rate < 65536:
		return 13, rate, 16
	default:
		return 14, rate / 10, 16
	}
}

func sampleSizeCode(bps uint8) uint8 {
	switch bps {
	case 8:
		return 1
	case 12:
		return 2
	case 16:
		return 4
	case 20:
		return 5
	case 24:
		return 6
	}
	return 0
}
