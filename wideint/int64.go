// SPDX-License-Identifier: EPL-2.0

package wideint

import "fmt"

// Int64 is an immutable signed 64-bit value.
type Int64 struct {
	v int64
}

func (a Int64) Int64() int64   { return a.v }
func (a Int64) Signed() bool   { return true }
func (a Int64) Bits() uint64   { return uint64(a.v) }
func (a Int64) String() string { return formatInt(a.v) }

func (a Int64) Add(x any) (Int64, error) {
	b, err := toInt64(x)
	if err != nil {
		return Int64{}, err
	}
	return Int64{v: a.v + b}, nil
}

func (a Int64) Sub(x any) (Int64, error) {
	b, err := toInt64(x)
	if err != nil {
		return Int64{}, err
	}
	return Int64{v: a.v - b}, nil
}

func (a Int64) Mul(x any) (Int64, error) {
	b, err := toInt64(x)
	if err != nil {
		return Int64{}, err
	}
	return Int64{v: a.v * b}, nil
}

// Div truncates toward zero.
func (a Int64) Div(x any) (Int64, error) {
	b, err := toInt64(x)
	if err != nil {
		return Int64{}, err
	}
	if b == 0 {
		return Int64{}, ErrDivideByZero
	}
	return Int64{v: a.v / b}, nil
}

func (a Int64) Mod(x any) (Int64, error) {
	b, err := toInt64(x)
	if err != nil {
		return Int64{}, err
	}
	if b == 0 {
		return Int64{}, ErrDivideByZero
	}
	return Int64{v: a.v % b}, nil
}

// Pow raises a to x with wrapping square-and-multiply.
func (a Int64) Pow(x any) (Int64, error) {
	exp, err := toInt64(x)
	if err != nil {
		return Int64{}, err
	}
	if exp < 0 {
		return Int64{}, fmt.Errorf("%w: %d", ErrNegativeExponent, exp)
	}
	return Int64{v: int64(powBits(uint64(a.v), uint64(exp)))}, nil
}

// Neg returns -a. Negating the signed minimum yields the Uint64 with the
// same bit pattern.
func (a Int64) Neg() Value {
	if a.v == minInt64 {
		return Uint64{v: uint64(a.v)}
	}
	return Int64{v: -a.v}
}

func (a Int64) And(x any) (Int64, error) {
	b, err := toInt64(x)
	if err != nil {
		return Int64{}, err
	}
	return Int64{v: a.v & b}, nil
}

func (a Int64) Or(x any) (Int64, error) {
	b, err := toInt64(x)
	if err != nil {
		return Int64{}, err
	}
	return Int64{v: a.v | b}, nil
}

func (a Int64) Xor(x any) (Int64, error) {
	b, err := toInt64(x)
	if err != nil {
		return Int64{}, err
	}
	return Int64{v: a.v ^ b}, nil
}

func (a Int64) Not() Int64 { return Int64{v: ^a.v} }

// Shl shifts left. Counts are read as unsigned; 64 and above give zero.
func (a Int64) Shl(x any) (Int64, error) {
	b, err := toInt64(x)
	if err != nil {
		return Int64{}, err
	}
	n, ok := shiftCount(uint64(b))
	if !ok {
		return Int64{}, nil
	}
	return Int64{v: a.v << n}, nil
}

// Shr is a logical shift on the unsigned bit pattern of a.
func (a Int64) Shr(x any) (Int64, error) {
	b, err := toInt64(x)
	if err != nil {
		return Int64{}, err
	}
	n, ok := shiftCount(uint64(b))
	if !ok {
		return Int64{}, nil
	}
	return Int64{v: int64(uint64(a.v) >> n)}, nil
}

func (a Int64) Eq(x any) (bool, error) {
	b, err := toInt64(x)
	if err != nil {
		return false, err
	}
	return a.v == b, nil
}

func (a Int64) Lt(x any) (bool, error) {
	b, err := toInt64(x)
	if err != nil {
		return false, err
	}
	return a.v < b, nil
}

func (a Int64) Le(x any) (bool, error) {
	b, err := toInt64(x)
	if err != nil {
		return false, err
	}
	return a.v <= b, nil
}

const minInt64 = -1 << 63

func powBits(base, exp uint64) uint64 {
	result := uint64(1)
	for {
		if exp&1 == 1 {
			result *= base
		}
		exp >>= 1
		if exp == 0 {
			break
		}
		base *= base
	}
	return result
}
