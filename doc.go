// SPDX-License-Identifier: EPL-2.0

// Package flacpull decodes FLAC audio from byte chunks of any size.
//
// The core is a pull-style decoder: the caller owns the input, hands the
// decoder whatever bytes it has and gets back either a value or a request
// for more. Nothing blocks and nothing reads on its own, so the decoder fits
// network buffers, memory-mapped files and plain io.Readers alike.
//
// # Packages
//
//   - session: the resumable decode session. One method per metadata field
//     plus Sync and Decode, each returning an Outcome with the unconsumed
//     rest of the input.
//   - parser: the FLAC bitstream parser behind the session, for native and
//     Ogg FLAC.
//   - wideint: 64-bit integer values with checked arithmetic, used for
//     sample counts and offsets.
//   - audio: the integer PCM Source contract and a decoder registry.
//   - formats/flac: an audio.Source over an io.Reader, with metadata.
//   - formats/wav, formats/aiff: export of decoded samples.
//
// # Quick Start
//
// DecodeAll reads a whole stream:
//
//	file, _ := os.Open("track.flac")
//	pcm, meta, err := flacpull.DecodeAll(file)
//
//	// pcm.Data holds interleaved samples at meta.StreamInfo.BitsPerSample
//
// # Chunked Decoding
//
// For full control drive a session directly:
//
//	s, _ := session.New(session.Config{})
//	for chunk := range chunks {
//	    data = append(data, chunk...)
//	    for {
//	        o := s.Decode(data)
//	        data = o.Rest
//	        if !o.Ready() {
//	            break
//	        }
//	        play(o.Value.Samples)
//	    }
//	}
//
// A Pending outcome means more input is needed. A Failed one carries the
// error, and the session must be re-initialised before further use.
//
// # Converting
//
//	pcm, _, _ := flacpull.DecodeAll(in)
//	out, _ := os.Create("track.wav")
//	err := wav.Write(out, pcm)
package flacpull
