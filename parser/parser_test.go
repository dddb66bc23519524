// SPDX-License-Identifier: EPL-2.0

package parser

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ik5/flacpull/bitstream"
	"github.com/ik5/flacpull/internal/flactest"
)

func newSamples() [][]int32 {
	s := make([][]int32, bitstream.MaxChannels)
	for c := range s {
		s[c] = make([]int32, testBlockSize)
	}
	return s
}

func checkFrames(t *testing.T, p *Parser, f *feeder) {
	t.Helper()

	samples := newSamples()
	for i, want := range testFrames() {
		r := f.run(func(b []byte) (int, bitstream.Result) { return p.Decode(b, samples) })
		if r != bitstream.OK {
			t.Fatalf("Decode() frame %d = %v, want OK", i, r)
		}

		h := p.FrameHeader()
		if h.FrameNumber != uint32(i) || h.BlockSize != testBlockSize || h.Channels != 2 {
			t.Fatalf("frame %d header = %+v", i, h)
		}
		for c := range want.Channels {
			for j, v := range want.Channels[c] {
				if samples[c][j] != v {
					t.Fatalf("frame %d channel %d sample %d = %d, want %d", i, c, j, samples[c][j], v)
				}
			}
		}
	}

	r := f.run(func(b []byte) (int, bitstream.Result) { return p.Decode(b, samples) })
	if r != bitstream.Continue {
		t.Errorf("Decode() past the last frame = %v, want continue", r)
	}
}

func TestParser_DecodeFrames(t *testing.T) {
	t.Parallel()

	stream := testStream()
	tests := []struct {
		name      string
		container bitstream.Container
		data      []byte
		chunk     int
	}{
		{"native whole", bitstream.ContainerNative, stream.Native(), 1 << 16},
		{"native bytewise", bitstream.ContainerNative, stream.Native(), 1},
		{"native odd chunks", bitstream.ContainerNative, stream.Native(), 7},
		{"unknown native", bitstream.ContainerUnknown, stream.Native(), 3},
		{"ogg whole", bitstream.ContainerOgg, stream.Ogg(0x1234), 1 << 16},
		{"ogg bytewise", bitstream.ContainerOgg, stream.Ogg(0x1234), 1},
		{"unknown ogg", bitstream.ContainerUnknown, stream.Ogg(0x1234), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := New(tt.container)
			checkFrames(t, p, newFeeder(tt.data, tt.chunk))
		})
	}
}

func TestParser_ContainerDetection(t *testing.T) {
	t.Parallel()

	stream := testStream()

	p := New(bitstream.ContainerUnknown)
	if _, r := p.Sync(stream.Ogg(1)); r != bitstream.OK {
		t.Fatalf("Sync() = %v, want OK", r)
	}
	if p.Container() != bitstream.ContainerOgg {
		t.Errorf("Container() = %v, want ogg", p.Container())
	}

	p.Init(bitstream.ContainerUnknown)
	if _, r := p.Sync(stream.Native()); r != bitstream.OK {
		t.Fatalf("Sync() = %v, want OK", r)
	}
	if p.Container() != bitstream.ContainerNative {
		t.Errorf("Container() = %v, want native", p.Container())
	}
}

func TestParser_OggSkipsOtherStreams(t *testing.T) {
	t.Parallel()

	other := flactest.OggPage(99, 0, 0x02, 0, append([]byte{0x01}, "vorbis and more"...))
	tail := flactest.OggPage(99, 1, 0, 0, []byte("not flac audio"))
	flac := testStream().Ogg(7)

	data := append([]byte{}, other...)
	for i, pg := range splitPages(flac) {
		data = append(data, pg...)
		if i == 2 {
			data = append(data, tail...)
		}
	}

	checkFrames(t, New(bitstream.ContainerOgg), newFeeder(data, 11))
}

func splitPages(data []byte) [][]byte {
	var pages [][]byte
	for len(data) > 0 {
		segs := int(data[26])
		size := 27 + segs
		for _, s := range data[27 : 27+segs] {
			size += int(s)
		}
		pages = append(pages, data[:size])
		data = data[size:]
	}
	return pages
}

func TestParser_OggBadCapture(t *testing.T) {
	t.Parallel()

	data := append([]byte("OggX"), make([]byte, 40)...)
	p := New(bitstream.ContainerOgg)
	if _, r := p.Sync(data); r != bitstream.Failure {
		t.Errorf("Sync() = %v, want failure", r)
	}
}

func TestParser_SyncHeaders(t *testing.T) {
	t.Parallel()

	p := New(bitstream.ContainerNative)
	f := newFeeder(testStream().Native(), 5)

	sync := func() bitstream.Result {
		return f.run(p.Sync)
	}

	blocks := testBlocks()
	for i, b := range blocks {
		if r := sync(); r != bitstream.OK {
			t.Fatalf("Sync() block %d = %v, want OK", i, r)
		}
		if p.State() != bitstream.StateMetadata {
			t.Fatalf("State() = %v, want metadata", p.State())
		}
		h := p.MetadataHeader()
		if h.Type != b.Type || h.Length != uint32(len(b.Body)) || h.IsLast != (i == len(blocks)-1) {
			t.Errorf("MetadataHeader() = %+v, want type %v length %d", h, b.Type, len(b.Body))
		}
	}

	for i, want := range testFrames() {
		if r := sync(); r != bitstream.OK {
			t.Fatalf("Sync() frame %d = %v, want OK", i, r)
		}
		if p.State() != bitstream.StateFrame {
			t.Fatalf("State() = %v, want frame", p.State())
		}
		h := p.FrameHeader()
		wantAssign := want.Assignment
		if wantAssign == 0 {
			wantAssign = 1
		}
		if h.ChannelAssignment != wantAssign || h.SampleRate != 44100 || h.BitsPerSample != 16 ||
			h.FrameNumber != uint32(i) || h.Variable() {
			t.Errorf("FrameHeader() = %+v", h)
		}
	}

	if r := sync(); r != bitstream.Continue {
		t.Errorf("Sync() at end = %v, want continue", r)
	}
}

func TestParser_SyncThenDecode(t *testing.T) {
	t.Parallel()

	p := New(bitstream.ContainerNative)
	f := newFeeder(testStream().Native(), 64)

	// Stop on the first frame header, then let Decode finish that frame.
	for p.State() != bitstream.StateFrame || p.FrameHeader().BlockSize == 0 {
		if r := f.run(p.Sync); r != bitstream.OK {
			t.Fatalf("Sync() = %v, want OK", r)
		}
	}

	samples := newSamples()
	if r := f.run(func(b []byte) (int, bitstream.Result) { return p.Decode(b, samples) }); r != bitstream.OK {
		t.Fatalf("Decode() = %v, want OK", r)
	}
	if samples[0][0] != 1234 || samples[1][15] != 700 {
		t.Errorf("samples = %d, %d, want 1234, 700", samples[0][0], samples[1][15])
	}

	// Sync onto frame 1, skip it, and decode frame 2.
	for range 2 {
		if r := f.run(p.Sync); r != bitstream.OK {
			t.Fatalf("Sync() = %v, want OK", r)
		}
	}
	if n := p.FrameHeader().FrameNumber; n != 2 {
		t.Fatalf("FrameNumber = %d, want 2", n)
	}
	if r := f.run(func(b []byte) (int, bitstream.Result) { return p.Decode(b, samples) }); r != bitstream.OK {
		t.Fatalf("Decode() = %v, want OK", r)
	}
	if samples[0][0] != 1000 || samples[1][15] != 1100 {
		t.Errorf("samples = %d, %d, want 1000, 1100", samples[0][0], samples[1][15])
	}
}

func TestParser_SyncInterruptedByDecode(t *testing.T) {
	t.Parallel()

	p := New(bitstream.ContainerNative)
	f := newFeeder(testStream().Native(), 1)
	for p.State() != bitstream.StateFrame || p.FrameHeader().BlockSize == 0 {
		if r := f.run(p.Sync); r != bitstream.OK {
			t.Fatalf("Sync() = %v, want OK", r)
		}
	}

	rest := append(f.buf, f.data[f.pos:]...)

	// Part of frame 0 lands in the parser's own area first.
	if n, r := p.Sync(rest[:3]); r != bitstream.Continue || n != 3 {
		t.Fatalf("Sync() = %d, %v, want 3, continue", n, r)
	}

	samples := newSamples()
	if _, r := p.Decode(rest[3:], samples); r != bitstream.OK {
		t.Fatalf("Decode() = %v, want OK", r)
	}
	want := testFrames()[0].Channels
	for c := range want {
		for i, v := range want[c] {
			if samples[c][i] != v {
				t.Fatalf("channel %d sample %d = %d, want %d", c, i, samples[c][i], v)
			}
		}
	}
}

func TestParser_VariableBlocking(t *testing.T) {
	t.Parallel()

	ch := make([]int32, 192)
	frame := flactest.Frame{
		Number: 1 << 33, Variable: true, SampleRate: 22050, BitsPerSample: 8,
		Channels:  [][]int32{ch},
		Subframes: []flactest.Subframe{{Kind: flactest.Constant}},
	}
	info := testInfo
	info.Channels = 1
	info.BitsPerSample = 8
	stream := flactest.Stream{
		Blocks: []flactest.Block{flactest.StreamInfoBlock(info)},
		Frames: [][]byte{frame.Encode()},
	}

	p := New(bitstream.ContainerNative)
	samples := make([][]int32, 1)
	samples[0] = make([]int32, 192)
	f := newFeeder(stream.Native(), 3)
	if r := f.run(func(b []byte) (int, bitstream.Result) { return p.Decode(b, samples) }); r != bitstream.OK {
		t.Fatalf("Decode() = %v, want OK", r)
	}

	h := p.FrameHeader()
	if !h.Variable() || h.SampleNumber != 1<<33 || h.BlockSize != 192 || h.SampleRate != 22050 {
		t.Errorf("FrameHeader() = %+v", h)
	}
}

func TestParser_StreamInfoDefaults(t *testing.T) {
	t.Parallel()

	frame := flactest.Frame{
		SampleRate: 44100, BitsPerSample: 16, FromStreamInfo: true,
		Channels:  [][]int32{make([]int32, testBlockSize), make([]int32, testBlockSize)},
		Subframes: []flactest.Subframe{{Kind: flactest.Constant}, {Kind: flactest.Constant}},
	}

	with := flactest.Stream{
		Blocks: []flactest.Block{flactest.StreamInfoBlock(testInfo)},
		Frames: [][]byte{frame.Encode()},
	}
	p := New(bitstream.ContainerNative)
	if _, r := p.Decode(with.Native(), newSamples()); r != bitstream.OK {
		t.Fatalf("Decode() = %v, want OK", r)
	}
	if h := p.FrameHeader(); h.SampleRate != 44100 || h.BitsPerSample != 16 {
		t.Errorf("FrameHeader() = %+v, want streaminfo values", h)
	}

	// Without STREAMINFO there is nothing to fall back on.
	p.Init(bitstream.ContainerNative)
	if _, r := p.Decode(frame.Encode(), newSamples()); r != bitstream.FrameInvalidSampleRate {
		t.Errorf("Decode() = %v, want %v", r, bitstream.FrameInvalidSampleRate)
	}
}

func TestParser_DecodeShortSamples(t *testing.T) {
	t.Parallel()

	p := New(bitstream.ContainerNative)
	short := [][]int32{make([]int32, testBlockSize), make([]int32, 4)}
	if _, r := p.Decode(testStream().Native(), short); r != bitstream.Failure {
		t.Errorf("Decode() = %v, want failure", r)
	}
}

func TestParser_Init(t *testing.T) {
	t.Parallel()

	data := testStream().Native()
	p := New(bitstream.ContainerNative)
	if _, r := p.Decode(data, newSamples()); r != bitstream.OK {
		t.Fatalf("Decode() = %v, want OK", r)
	}

	p.Init(bitstream.ContainerNative)
	if p.State() != bitstream.StateStreamMarkerOrFrame {
		t.Errorf("State() after Init = %v", p.State())
	}
	checkFrames(t, p, newFeeder(data, 9))
}

func TestParser_Errors(t *testing.T) {
	t.Parallel()

	// One mono frame with a header of exactly six bytes: sync, codes,
	// frame number, CRC-8. The subframe header follows at offset 6.
	mono := flactest.Frame{
		SampleRate: 44100, BitsPerSample: 16,
		Channels:  [][]int32{make([]int32, 192)},
		Subframes: []flactest.Subframe{{Kind: flactest.Fixed, Order: 0, RiceParam: 0}},
	}.Encode()

	info := flactest.StreamInfoBlock(testInfo).Encode(true)
	prefix := append(append([]byte{}, flactest.Marker...), info...)

	patch := func(i int, fn func(b byte) byte) []byte {
		f := append([]byte{}, mono...)
		f[i] = fn(f[i])
		return append(append([]byte{}, prefix...), f...)
	}

	tests := []struct {
		name string
		data []byte
		want bitstream.Result
	}{
		{"stream marker", []byte("fLaX\x00\x00\x00\x22"), bitstream.StreamMarkerInvalid},
		{"not flac", []byte("RIFF"), bitstream.StreamMarkerInvalid},
		{"metadata type invalid", append(append([]byte{}, flactest.Marker...), 0x7F, 0, 0, 0), bitstream.MetadataTypeInvalid},
		{"reserved bit 1", patch(1, func(b byte) byte { return b | 0x02 }), bitstream.FrameReservedBit1},
		{"reserved blocksize", patch(2, func(b byte) byte { return b & 0x0F }), bitstream.FrameReservedBlocksize},
		{"invalid sample rate", patch(2, func(b byte) byte { return b | 0x0F }), bitstream.FrameInvalidSampleRate},
		{"reserved channels", patch(3, func(b byte) byte { return 0xB0 | b&0x0F }), bitstream.FrameReservedChannelAssignment},
		{"reserved sample size", patch(3, func(b byte) byte { return b&0xF1 | 3<<1 }), bitstream.FrameReservedSampleSize},
		{"reserved bit 2", patch(3, func(b byte) byte { return b | 0x01 }), bitstream.FrameReservedBit2},
		{"crc8", patch(4, func(b byte) byte { return b + 1 }), bitstream.FrameCRC8Invalid},
		{"subframe reserved bit", patch(6, func(b byte) byte { return b | 0x80 }), bitstream.SubframeReservedBit},
		{"subframe reserved type", patch(6, func(byte) byte { return 2 << 1 }), bitstream.SubframeReservedType},
		{"coding method", patch(7, func(b byte) byte { return b | 0xC0 }), bitstream.ReservedCodingMethod},
		{"crc16", patch(len(mono)-1, func(b byte) byte { return ^b }), bitstream.FrameCRC16Invalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := New(bitstream.ContainerNative)
			samples := [][]int32{make([]int32, 192)}
			r := newFeeder(tt.data, 2).run(func(b []byte) (int, bitstream.Result) {
				return p.Decode(b, samples)
			})
			if r != tt.want {
				t.Errorf("Decode() = %v, want %v", r, tt.want)
			}
			if !errors.Is(r.Err(), &bitstream.Error{Code: tt.want}) {
				t.Errorf("Err() = %v, want code %v", r.Err(), tt.want)
			}
		})
	}
}

func TestParser_SyncCodeNotConsumed(t *testing.T) {
	t.Parallel()

	prefix := append(append([]byte{}, flactest.Marker...), flactest.StreamInfoBlock(testInfo).Encode(true)...)
	data := append(append([]byte{}, prefix...), 0xFF, 0x00, 0x12, 0x34)

	p := New(bitstream.ContainerNative)
	n, r := p.Decode(data, newSamples())
	if r != bitstream.FrameSyncCodeInvalid {
		t.Fatalf("Decode() = %v, want %v", r, bitstream.FrameSyncCodeInvalid)
	}
	if n != len(prefix) {
		t.Errorf("Decode() consumed %d, want %d", n, len(prefix))
	}
	if !bytes.Equal(data[n:], []byte{0xFF, 0x00, 0x12, 0x34}) {
		t.Errorf("unconsumed = % x", data[n:])
	}
}

// syncPieces syncs through the whole stream, handing over the next piece
// each time the parser runs dry. It counts the headers it lands on.
func syncPieces(p *Parser, pieces ...[]byte) (blocks, frames int, r bitstream.Result) {
	buf := []byte{}
	for {
		var n int
		n, r = p.Sync(buf)
		buf = buf[n:]

		switch {
		case r == bitstream.OK && p.State() == bitstream.StateMetadata:
			blocks++
		case r == bitstream.OK:
			frames++
		case r == bitstream.Continue && len(pieces) > 0:
			buf = append(buf, pieces[0]...)
			pieces = pieces[1:]
		default:
			return blocks, frames, r
		}
	}
}

func TestParser_SplitMetadataHeaders(t *testing.T) {
	t.Parallel()

	stream := testStream()
	data := stream.Native()

	// Each split lands inside a 4-byte block header.
	var splits []int
	off := len(flactest.Marker)
	for _, b := range stream.Blocks {
		for k := 1; k < 4; k++ {
			splits = append(splits, off+k)
		}
		off += 4 + len(b.Body)
	}

	for _, at := range splits {
		p := New(bitstream.ContainerNative)
		blocks, frames, r := syncPieces(p, data[:at], data[at:])
		if r != bitstream.Continue || blocks != len(stream.Blocks) || frames != len(stream.Frames) {
			t.Errorf("split at %d: %d blocks, %d frames, %v", at, blocks, frames, r)
		}
	}
}

func TestParser_SplitOgg(t *testing.T) {
	t.Parallel()

	stream := testStream()
	data := stream.Ogg(3)

	for at := 1; at < len(data); at++ {
		p := New(bitstream.ContainerOgg)
		blocks, frames, r := syncPieces(p, data[:at], data[at:])
		if r != bitstream.Continue || blocks != len(stream.Blocks) || frames != len(stream.Frames) {
			t.Fatalf("split at %d: %d blocks, %d frames, %v", at, blocks, frames, r)
		}
	}

	for _, chunk := range []int{1, 2, 3} {
		p := New(bitstream.ContainerOgg)
		var pieces [][]byte
		for i := 0; i < len(data); i += chunk {
			pieces = append(pieces, data[i:min(i+chunk, len(data))])
		}
		blocks, frames, r := syncPieces(p, pieces...)
		if r != bitstream.Continue || blocks != len(stream.Blocks) || frames != len(stream.Frames) {
			t.Errorf("chunk %d: %d blocks, %d frames, %v", chunk, blocks, frames, r)
		}
	}
}
