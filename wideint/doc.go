// SPDX-License-Identifier: EPL-2.0

// Package wideint provides exact 64-bit signed and unsigned integer values.
//
// Decoded FLAC fields such as the total sample count, cue sheet offsets and
// seek point sample numbers use the full unsigned 64-bit range. Int64 and
// Uint64 carry those values without precision loss and give them a small,
// uniform operator set.
//
// # Construction
//
// Values are built from native numbers, booleans, nil, decimal strings or the
// opposite wide type:
//
//	total, _ := wideint.NewUint64("18446744073709551615")
//	offset := wideint.U64(4096)
//	delta, err := wideint.NewInt64(-12)
//
// Strings may start with whitespace. The signed type accepts one leading sign;
// the unsigned type rejects any sign. The remaining text must be digits only.
//
// # Operators
//
// Every operator returns a new value. The right operand is coerced with the
// same rules as construction, so mixing types is range checked:
//
//	sum, err := total.Sub(offset)     // wraps modulo 2^64
//	_, err = wideint.I64(-1).Add(total) // ErrOutOfRange
//
// Negating the signed minimum yields the Uint64 with the same bit pattern.
// Right shift on Int64 is logical: the operand is reinterpreted as unsigned
// before shifting.
package wideint
