// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/flacpull/audio"
)

// Write stores buf as an AIFF file. Samples are taken to be
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

	enc := aiff.NewEncoder(w, buf.Format.SampleRate, depth, buf.Format.NumChannels)
	out := &goaudio.IntBuffer{Format: buf.Format, Data: data, SourceBitDepth: depth}
	if err := enc.Write(out); err != nil {
		return fmt.Errorf("writing aiff: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("closing aiff: %w", err)
	}

	return nil
}
