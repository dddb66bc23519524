// SPDX-License-Identifier: EPL-2.0

// Package scratch implements the growable byte region a decode session uses
// as the landing zone for string and blob fields.
//
// The region only ever grows, and grows to exactly the requested length.
// Slices returned by Bytes are invalidated by the next EnsureCapacity that
// allocates.
package scratch

import (
	"errors"
	"fmt"
)

// ErrTooLarge is returned when a request exceeds the buffer limit.
var ErrTooLarge = errors.New("scratch buffer request exceeds limit")

// Buffer is a single-owner, grow-only byte region.
type Buffer struct {
	buf   []byte
	limit int
}

// New returns a buffer of size bytes with no growth limit.
func New(size int) *Buffer {
	return NewLimited(size, 0)
}

// NewLimited returns a buffer of size bytes that refuses to grow past limit.
// A limit of zero or less disables the check.
func NewLimited(size, limit int) *Buffer {
	if size < 0 {
		size = 0
	}
	return &Buffer{buf: make([]byte, size), limit: limit}
}

// EnsureCapacity grows the buffer to n bytes when n is larger than its
// current length. It reports whether a new region was allocated.
func (b *Buffer) EnsureCapacity(n int) (bool, error) {
	if n <= len(b.buf) {
		return false, nil
	}
	if b.limit > 0 && n > b.limit {
		return false, fmt.Errorf("%w: %d > %d", ErrTooLarge, n, b.limit)
	}

	b.buf = make([]byte, n)

	return true, nil
}

// Bytes returns the whole region.
func (b *Buffer) Bytes() []byte { return b.buf }

// Len returns the current region length.
func (b *Buffer) Len() int { return len(b.buf) }
