// SPDX-License-Identifier: EPL-2.0

// Package session drives a FLAC bitstream parser from byte chunks that may
// arrive in arbitrary sizes.
//
// Every operation takes the bytes available so far and returns an Outcome:
//
//   - Pending: more input is needed. Rest holds what the parser did not
//     take; prepend it to the next chunk and call the same operation again.
//   - Ready: Value holds the decoded entity.
//   - Failed: Err holds the reason. Bitstream errors are *bitstream.Error
//     values and leave the session unusable until Init.
//
// The session never buffers input beyond what the parser retains. It does
// not perform I/O.
//
// # Strings and blobs
//
// Variable length fields are read in two phases: a length call sizes the
// session's scratch buffer, then a value call fills it. The value call runs
// the length phase itself when it has not happened yet. Returned byte slices
// alias the scratch buffer and are valid until the next call on the session.
//
// # Repeating records
//
// Vorbis comments, cue sheet tracks and index points, and seek points are
// enumerated with a cursor per record kind (see Cursor). A cursor learns its
// record count from the block on first use and wraps to zero after the last
// record is read.
//
// A Session is not safe for concurrent use.
package session
