// SPDX-License-Identifier: EPL-2.0

package bitstream

// Parser is an incremental FLAC bitstream parser.
//
// Every method taking data returns n, the count of leading bytes of data it
// consumed. Bytes held back inside the parser count as consumed. A Continue
// result always consumes all of data.
type Parser interface {
	// Init resets the parser for a new stream.
	Init(c Container)

	State() State
	// MetadataHeader is valid while State is StateMetadata.
	MetadataHeader() MetadataHeader
	// FrameHeader is valid while State is StateFrame after a sync or decode.
	FrameHeader() FrameHeader

	// Sync moves past the current block or frame and reads the next header.
	Sync(data []byte) (n int, r Result)
	// Decode reads the next audio frame into samples, one slice per channel.
	Decode(data []byte, samples [][]int32) (n int, r Result)
	// Uint reads a scalar metadata field.
	Uint(f Field, data []byte) (n int, v uint64, r Result)
	// Bytes copies a byte field into out, skipping what does not fit.
	// written is the number of bytes placed in out.
	Bytes(f Field, data, out []byte) (n int, written int, r Result)
}
