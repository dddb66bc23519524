// SPDX-License-Identifier: EPL-2.0

package wideint

import (
	"fmt"
	"math"
)

// toInt64 coerces x with the signed conversion rules.
func toInt64(x any) (int64, error) {
	switch v := x.(type) {
	case nil:
		return 0, nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case Int64:
		return v.v, nil
	case Uint64:
		if v.v > math.MaxInt64 {
			return 0, fmt.Errorf("%w: %d", ErrOutOfRange, v.v)
		}
		return int64(v.v), nil
	case string:
		return ParseInt64Value(v)
	}

	if u, ok := nativeBits(x); ok {
		return int64(u), nil
	}

	return 0, fmt.Errorf("%w: %T", ErrInvalidValue, x)
}

// toUint64 coerces x with the unsigned conversion rules.
func toUint64(x any) (uint64, error) {
	switch v := x.(type) {
	case nil:
		return 0, nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case Uint64:
		return v.v, nil
	case Int64:
		if v.v < 0 {
			return 0, fmt.Errorf("%w: %d", ErrNegative, v.v)
		}
		return uint64(v.v), nil
	case string:
		return ParseUint64Value(v)
	}

	if u, ok := nativeBits(x); ok {
		return u, nil
	}

	return 0, fmt.Errorf("%w: %T", ErrInvalidValue, x)
}

// nativeBits truncates a Go number to its 64-bit two's complement pattern.
func nativeBits(x any) (uint64, bool) {
	switch v := x.(type) {
	case int:
		return uint64(v), true
	case int8:
		return uint64(v), true
	case int16:
		return uint64(v), true
	case int32:
		return uint64(v), true
	case int64:
		return uint64(v), true
	case uint:
		return uint64(v), true
	case uint8:
		return uint64(v), true
	case uint16:
		return uint64(v), true
	case uint32:
		return uint64(v), true
	case uint64:
		return v, true
	case uintptr:
		return uint64(v), true
	case float32:
		return floatBits(float64(v)), true
	case float64:
		return floatBits(v), true
	}

	return 0, false
}

func floatBits(f float64) uint64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxUint64:
		return math.MaxUint64
	case f >= math.MaxInt64:
		return uint64(f)
	case f <= math.MinInt64:
		return 1 << 63
	}

	return uint64(int64(f))
}
