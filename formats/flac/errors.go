// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var (
	ErrTruncated = errors.New("flac stream truncated")
	ErrClosed    = errors.New("flac source closed")
)
