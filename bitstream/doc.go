// SPDX-License-Identifier: EPL-2.0

// Package bitstream defines the contract between a decode session and the
// incremental FLAC parser it drives.
//
// A Parser is pull based. Every call receives the bytes the caller has on
// hand and reports how many leading bytes it consumed together with a
// Result:
//
//   - Continue: more input is needed; no value yet.
//   - OK: the requested header, frame or field is complete.
//   - End: the requested metadata record does not exist (no further
//     records, or audio frames were reached).
//   - a negative code: the stream violates the format at this point.
//
// The package also carries the shared vocabulary of the decoder: container
// kinds, parser states, metadata block types, frame headers and the list of
// decodable metadata fields.
package bitstream
