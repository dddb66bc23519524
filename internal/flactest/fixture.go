// SPDX-License-Identifier: EPL-2.0

package flactest

import (
	"github.com/ik5/flacpull/bitstream"
)

// The fixture is a 44.1 kHz 16-bit stereo stream with one block of every
// metadata type and four frames.

const FixtureBlockSize = 16

var (
	FixtureInfo = StreamInfo{
		MinBlockSize:  FixtureBlockSize,
		MaxBlockSize:  FixtureBlockSize,
		MinFrameSize:  10,
		MaxFrameSize:  200,
		SampleRate:    44100,
		Channels:      2,
		BitsPerSample: 16,
		TotalSamples:  4 * FixtureBlockSize,
		MD5:           [16]byte{0xde, 0xad, 0xbe, 0xef, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
	}

	FixturePicture = Picture{
		Type:        3,
		Mime:        "image/png",
		Description: "cover",
		Width:       2,
		Height:      3,
		ColorDepth:  24,
		Data:        []byte{0x89, 'P', 'N', 'G'},
	}

	FixtureCue = CueSheet{
		Catalog: "1234567890123",
		LeadIn:  88200,
		IsCD:    true,
		Tracks: []CueTrack{
			{
				Offset:  0,
				Number:  1,
				ISRC:    "USRC17607839",
				Indexes: []CueIndex{{Offset: 0, Number: 1}, {Offset: 588, Number: 2}},
			},
			{Offset: 44100, Number: 170, NonAudio: true, PreEmphasis: true},
		},
	}

	FixtureSeekPoints = []SeekPoint{
		{SampleNumber: 0, Offset: 0, Samples: FixtureBlockSize},
		{SampleNumber: 32, Offset: 100, Samples: FixtureBlockSize},
	}
)

// FixtureFrames returns four stereo frames that use every channel assignment
// and subframe kind.
func FixtureFrames() []Frame {
	gen := func(f func(i int) int32) []int32 {
		s := make([]int32, FixtureBlockSize)
		for i := range s {
			s[i] = f(i)
		}
		return s
	}

	return []Frame{
		{
			Number: 0, SampleRate: 44100, BitsPerSample: 16,
			Channels: [][]int32{
				gen(func(int) int32 { return 1234 }),
				gen(func(i int) int32 { return int32(i*100 - 800) }),
			},
			Subframes: []Subframe{{Kind: Constant}, {Kind: Verbatim}},
		},
		{
			Number: 1, SampleRate: 44100, BitsPerSample: 16,
			Assignment: bitstream.ChannelLeftSide,
			Channels: [][]int32{
				gen(func(i int) int32 { return int32(3*i*i - 20*i + 5) }),
				gen(func(i int) int32 { return int32(3*i*i - 27*i + 55) }),
			},
			Subframes: []Subframe{
				{Kind: Fixed, Order: 2, RiceParam: 3, PartitionOrder: 2},
				{Kind: Fixed, Order: 1, Escape: true, EscapeBits: 16, PartitionOrder: 1},
			},
		},
		{
			Number: 2, SampleRate: 44100, BitsPerSample: 16,
			Assignment: bitstream.ChannelMidSide,
			Channels: [][]int32{
				gen(func(i int) int32 { return int32(1000 - 60*i) }),
				gen(func(i int) int32 { return int32(500 + 40*i) }),
			},
			Subframes: []Subframe{
				{Kind: LPC, Order: 2, Coefs: []int32{4096, -2048}, Precision: 14, Shift: 11, RiceParam: 3, Rice5: true},
				{Kind: Fixed, Order: 1, RiceParam: 7},
			},
		},
		{
			Number: 3, SampleRate: 44100, BitsPerSample: 16,
			Assignment: bitstream.ChannelSideRight,
			Channels: [][]int32{
				gen(func(i int) int32 { return int32(40*i - 300) }),
				gen(func(i int) int32 { return int32(12 * i) }),
			},
			Subframes: []Subframe{
				{Kind: Verbatim},
				{Kind: Fixed, Order: 1, Wasted: 2, RiceParam: 2},
			},
		},
	}
}

// FixtureBlocks returns the fixture metadata blocks in stream order.
func FixtureBlocks() []Block {
	return []Block{
		StreamInfoBlock(FixtureInfo),
		VorbisCommentBlock("flacpull test", "TITLE=Tone", "ARTIST=Nobody"),
		PictureBlock(FixturePicture),
		CueSheetBlock(FixtureCue),
		SeekTableBlock(FixtureSeekPoints...),
		ApplicationBlock(0x74657374, []byte("hello")),
		PaddingBlock(8),
	}
}

// FixtureStream returns the encoded fixture.
func FixtureStream() Stream {
	s := Stream{Blocks: FixtureBlocks()}
	for _, f := range FixtureFrames() {
		s.Frames = append(s.Frames, f.Encode())
	}
	return s
}

// FixtureInterleaved returns the fixture audio as interleaved samples.
func FixtureInterleaved() []int {
	var out []int
	for _, f := range FixtureFrames() {
		for i := range f.Channels[0] {
			for _, ch := range f.Channels {
				out = append(out, int(ch[i]))
			}
		}
	}
	return out
}
