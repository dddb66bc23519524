// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
)

// ReadAll collects every sample of src, reading bufferSize samples at a
// time. bufferSize must hold whole frames.
func ReadAll(src Source, bufferSize int) (*goaudio.IntBuffer, error) {
	format := src.Format()
	if bufferSize <= 0 || format == nil || format.NumChannels <= 0 || bufferSize%format.NumChannels != 0 {
		return nil, ErrInvalidBufferSize
	}

	out := &goaudio.IntBuffer{
		Format:         format,
		Data:           make([]int, 0, bufferSize),
		SourceBitDepth: src.BitDepth(),
	}
	buf := &goaudio.IntBuffer{Format: format, Data: make([]int, bufferSize)}

	for {
		n, err := src.PCMBuffer(buf)
		out.Data = append(out.Data, buf.Data[:n]...)

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		if n == 0 {
			break
		}
	}

	return out, nil
}

// ByteDepth rounds a sample width up to whole bytes.
func ByteDepth(bits int) int {
	return (bits + 7) / 8 * 8
}

// Widen returns data scaled from bits to ByteDepth(bits). The input is
// returned unchanged when no scaling is needed.
func Widen(data []int, bits int) ([]int, error) {
	if bits < 4 || bits > 32 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bits)
	}

	shift := ByteDepth(bits) - bits
	if shift == 0 {
		return data, nil
	}

	out := make([]int, len(data))
	for i, v := range data {
		out[i] = v << shift
	}

	return out, nil
}
