// SPDX-License-Identifier: EPL-2.0

// Package audio defines the decoded-PCM contract shared by the format
// packages.
//
// # Source Interface
//
// A Source hands out interleaved integer samples in go-audio buffers:
//
//	type Source interface {
//	    Format() *goaudio.Format
//	    BitDepth() int
//	    PCMBuffer(buf *goaudio.IntBuffer) (int, error)
//	    Close() error
//	}
//
// Samples keep the width of the source. A 16-bit FLAC stream yields values
// in [-32768, 32767], a 24-bit one in [-8388608, 8388607]. Nothing is
// normalised or resampled.
//
// # Reading
//
// ReadAll drains a source into a single buffer:
//
//	buf, err := audio.ReadAll(src, 4096)
//
// The buffer size must hold whole frames, so it has to be a multiple of the
// channel count.
//
// # Format Registry
//
// The registry maps format keys to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("flac", flac.Decoder{})
//	src, err := registry.Open("flac", file)
//
// # Container Widths
//
// FLAC allows any width from 4 to 32 bits while WAV and AIFF store whole
// bytes. ByteDepth rounds a width up and Widen shifts samples into it.
//
// # Error Handling
//
// PCMBuffer returns io.EOF when no more data is available:
//
//	for {
//	    n, err := src.PCMBuffer(buf)
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    // Process buf.Data[:n]
//	}
package audio
