// SPDX-License-Identifier: EPL-2.0

package session

import "errors"

var (
	// ErrInvalidContainer is returned for a container hint outside the
	// known set.
	ErrInvalidContainer = errors.New("invalid container type")
	// ErrMissingInput is returned when an operation gets a nil byte slice.
	ErrMissingInput = errors.New("missing input data")
	// ErrNeedsInit is returned after a fatal error until Init is called.
	ErrNeedsInit = errors.New("session needs init after a decode error")
	// ErrInvalidLength is returned for a negative maximum length.
	ErrInvalidLength = errors.New("invalid maximum length")
)
