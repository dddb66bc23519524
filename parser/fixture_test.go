// SPDX-License-Identifier: EPL-2.0

package parser

import (
	"github.com/ik5/flacpull/bitstream"
	"github.com/ik5/flacpull/internal/flactest"
)

const testBlockSize = flactest.FixtureBlockSize

var (
	testInfo    = flactest.FixtureInfo
	testPicture = flactest.FixturePicture
	testCue     = flactest.FixtureCue
	testFrames  = flactest.FixtureFrames
	testBlocks  = flactest.FixtureBlocks
	testStream  = flactest.FixtureStream
)

// feeder hands a stream to parser calls in chunks, carrying unconsumed
// bytes over like a caller would.
type feeder struct {
	data  []byte
	pos   int
	chunk int
	buf   []byte
}

func newFeeder(data []byte, chunk int) *feeder {
	return &feeder{data: data, chunk: chunk}
}

// run repeats call with growing input until it stops reporting Continue or
// the stream runs out.
func (f *feeder) run(call func([]byte) (int, bitstream.Result)) bitstream.Result {
	for {
		n, r := call(f.buf)
		f.buf = f.buf[n:]
		if r != bitstream.Continue || f.pos == len(f.data) {
			return r
		}
		end := min(f.pos+f.chunk, len(f.data))
		f.buf = append(f.buf, f.data[f.pos:end]...)
		f.pos = end
	}
}
