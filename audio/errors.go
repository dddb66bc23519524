// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidBufferSize   = errors.New("buffer size must be a positive multiple of channels")
	ErrUnknownFormat       = errors.New("no decoder registered for format")
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")
)
