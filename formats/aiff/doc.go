// SPDX-License-Identifier: EPL-2.0

// Package aiff reads and writes AIFF files on top of
// github.com/go-audio/aiff.
//
// # Writing
//
// Write stores decoded FLAC audio:
//
//	buf, _ := audio.ReadAll(src, 4096)
//	file, _ := os.Create("out.aiff")
//	err := aiff.Write(file, buf)
//
// Sample widths that are not whole bytes are shifted up to the next byte
// boundary, so 12-bit audio is stored as 16-bit and 20-bit as 24-bit.
//
// # Reading
//
// Decoder returns an audio.Source with integer samples at the file's bit
// depth. go-audio needs an io.ReadSeeker; other readers are buffered in
// memory first.
//
// # Errors
//
//   - ErrNotAiffFile: the input is not an AIFF file
//   - ErrUnsupportedAiffLayout: the file has no usable format
//   - ErrMissingFormat: Write got a buffer without a format
package aiff
