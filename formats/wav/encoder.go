// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/flacpull/audio"
)

// Write stores buf as an integer PCM WAV file. Samples are taken to be
// buf.SourceBitDepth wide and are widened to whole bytes.
func Write(w io.WriteSeeker, buf *goaudio.IntBuffer) error {
	if buf == nil || buf.Format == nil {
		return ErrMissingFormat
	}

	data, err := audio.Widen(buf.Data, buf.SourceBitDepth)
	if err != nil {
		return err
	}
	depth := audio.ByteDepth(buf.SourceBitDepth)

	if depth == 8 {
		unsigned := make([]int, len(data))
		for i, v := range data {
			unsigned[i] = v + 128
		}
		data = unsigned
	}

	enc := wav.NewEncoder(w, buf.Format.SampleRate, depth, buf.Format.NumChannels, 1)
	out := &goaudio.IntBuffer{Format: buf.Format, Data: data, SourceBitDepth: depth}
	if err := enc.Write(out); err != nil {
		return fmt.Errorf("writing wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("closing wav: %w", err)
	}

	return nil
}
