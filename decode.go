// SPDX-License-Identifier: EPL-2.0

package flacpull

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/flacpull/audio"
	"github.com/ik5/flacpull/bitstream"
	"github.com/ik5/flacpull/formats/aiff"
	"github.com/ik5/flacpull/formats/flac"
	"github.com/ik5/flacpull/formats/wav"
)

// Version of the module.
const Version = "1.0.0"

// DefaultBufferSize is the number of samples DecodeAll reads per call.
const DefaultBufferSize = 4096

// DecodeAll reads a whole FLAC stream, native or Ogg, and returns its
// interleaved samples together with the metadata found before the first
// frame.
//
// Example:
//
//	file, _ := os.Open("track.flac")
//	pcm, meta, err := flacpull.DecodeAll(file)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(meta.Tag("TITLE"), pcm.NumFrames())
func DecodeAll(r io.Reader) (*goaudio.IntBuffer, *flac.Metadata, error) {
	src, err := flac.Decoder{}.Open(r)
	if err != nil {
		return nil, nil, fmt.Errorf("%w", err)
	}
	defer src.Close()

	size := DefaultBufferSize
	if ch := src.Format().NumChannels; ch > 0 {
		size -= size % ch
	}

	buf, err := audio.ReadAll(src, size)
	if err != nil {
		return nil, src.Metadata(), fmt.Errorf("%w", err)
	}

	return buf, src.Metadata(), nil
}

// NewRegistry returns a registry with the flac, wav and aiff decoders.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("flac", flac.Decoder{})
	reg.Register("oga", flac.Decoder{Container: bitstream.ContainerOgg})
	reg.Register("wav", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	return reg
}
