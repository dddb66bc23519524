// SPDX-License-Identifier: EPL-2.0

package session

import (
	"github.com/ik5/flacpull/bitstream"
	"github.com/ik5/flacpull/wideint"
)

type narrow interface {
	~uint8 | ~uint16 | ~uint32
}

// field reads a scalar of at most 32 bits.
func field[T narrow](s *Session, f bitstream.Field, data []byte) Outcome[T] {
	v, rest, st, err := s.scalar(f, data)
	if st != Ready {
		return notReady[T](st, err, rest)
	}
	return ready(T(v), rest)
}

// wide reads a 64-bit scalar.
func wide(s *Session, f bitstream.Field, data []byte) Outcome[wideint.Uint64] {
	v, rest, st, err := s.scalar(f, data)
	if st != Ready {
		return notReady[wideint.Uint64](st, err, rest)
	}
	return ready(wideint.U64(v), rest)
}
