// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes integer PCM WAV files using the
// github.com/go-audio/wav library.
//
// # Writing
//
// Write stores decoded FLAC audio:
//
//	buf, _ := audio.ReadAll(src, 4096)
//	file, _ := os.Create("out.wav")
//	err := wav.Write(file, buf)
//
// The WAV bit depth is buf.SourceBitDepth rounded up to whole bytes.
// 8-bit output is offset to the unsigned range WAV uses.
//
// # Reading
//
// Decoder returns an audio.Source. 8-bit samples are converted back to
// signed values so every depth reads the way FLAC decodes it.
//
// # Errors
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE file
//   - ErrOnlyPCMSupported: the file is not integer PCM
//   - ErrMissingFormat: Write got a buffer without a format
//   - audio.ErrUnsupportedBitDepth: the depth cannot be stored
package wav
