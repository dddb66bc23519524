// SPDX-License-Identifier: EPL-2.0

// Package parser is a pull-style, resumable FLAC bitstream parser.
//
// A Parser accepts input in chunks of any size and keeps every partial
// read in its own state, so a chunk may end in the middle of a header,
// a metadata field, a residual partition or a checksum. It understands
// native FLAC streams and FLAC carried in Ogg pages, and implements
// bitstream.Parser:
//
//	p := parser.New(bitstream.ContainerUnknown)
//	for {
//	    n, r := p.Sync(data)
//	    data = data[n:]
//	    if r == bitstream.Continue {
//	        data = append(data, more()...)
//	        continue
//	    }
//	    ...
//	}
//
// # Metadata fields
//
// Metadata blocks are walked through per-type field layouts. Reading a
// field skips the fields before it; scalar fields of the record in
// progress can be read again without consuming input. Once a record is
// complete, asking for one of its fields moves to the next block of the
// same type, while repeating records (comments, cue sheet tracks and
// index points, seek points) report bitstream.End when exhausted.
// Reaching an audio frame always ends a metadata search with End.
//
// # Frames
//
// Frames are decoded completely: constant, verbatim, fixed and LPC
// subframes, Rice residuals with escape partitions, wasted bits, stereo
// decorrelation and both header and frame checksums.
package parser
