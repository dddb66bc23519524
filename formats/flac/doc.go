// SPDX-License-Identifier: EPL-2.0

// Package flac decodes FLAC streams from an io.Reader.
//
// The decoder drives a session.Session: it reads the input in chunks, hands
// every chunk to the session and carries the unconsumed rest into the next
// call. Native FLAC and Ogg FLAC are both accepted.
//
// # Decoding
//
//	src, err := flac.Decoder{}.Open(file)
//	if err != nil {
//	    return err
//	}
//	buf, err := audio.ReadAll(src, 4096)
//
// Samples keep the stream's bit depth. Source implements audio.Source, so
// a Decoder can be registered in an audio.Registry under "flac".
//
// # Metadata
//
// Open reads every metadata block up to the first audio frame. The values
// are available from Source.Metadata: stream info, vendor and comments,
// pictures, the cue sheet, the seek table, application blocks and the total
// padding size. Blocks of unknown type are skipped.
//
// # Errors
//
// Bitstream errors surface as *bitstream.Error and can be matched with
// errors.Is or errors.As. A stream that ends inside a block, or before the
// sample count announced in STREAMINFO, reports ErrTruncated.
package flac
