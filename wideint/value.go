// SPDX-License-Identifier: EPL-2.0

package wideint

import "fmt"

// Value is implemented by Int64 and Uint64.
type Value interface {
	fmt.Stringer
	// Signed reports whether the value is an Int64.
	Signed() bool
	// Bits returns the raw two's complement bit pattern.
	Bits() uint64
}

var (
	_ Value = Int64{}
	_ Value = Uint64{}
)

// I64 wraps a native int64.
func I64(v int64) Int64 { return Int64{v: v} }

// U64 wraps a native uint64.
func U64(v uint64) Uint64 { return Uint64{v: v} }

// NewInt64 builds an Int64 from nil, a bool, a Go number, a decimal string
// or another wide value.
func NewInt64(x any) (Int64, error) {
	v, err := toInt64(x)
	if err != nil {
		return Int64{}, err
	}
	return Int64{v: v}, nil
}

// NewUint64 builds a Uint64 from nil, a bool, a Go number, a decimal string
// or another wide value. Negative Go numbers keep their bit pattern.
func NewUint64(x any) (Uint64, error) {
	v, err := toUint64(x)
	if err != nil {
		return Uint64{}, err
	}
	return Uint64{v: v}, nil
}

// ParseInt64 parses s as a base-10 signed integer.
func ParseInt64(s string) (Int64, error) {
	v, err := ParseInt64Value(s)
	if err != nil {
		return Int64{}, err
	}
	return Int64{v: v}, nil
}

// ParseUint64 parses s as a base-10 unsigned integer.
func ParseUint64(s string) (Uint64, error) {
	v, err := ParseUint64Value(s)
	if err != nil {
		return Uint64{}, err
	}
	return Uint64{v: v}, nil
}

func shiftCount(n uint64) (uint, bool) {
	if n >= 64 {
		return 0, false
	}
	return uint(n), true
}
