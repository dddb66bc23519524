// SPDX-License-Identifier: EPL-2.0

package wideint

import "fmt"

// Uint64 is an immutable unsigned 64-bit value.
type Uint64 struct {
	v uint64
}

func (a Uint64) Uint64() uint64 { return a.v }
func (a Uint64) Signed() bool   { return false }
func (a Uint64) Bits() uint64   { return a.v }
func (a Uint64) String() string { return formatUint(a.v) }

// Add wraps modulo 2^64, as do Sub and Mul.
func (a Uint64) Add(x any) (Uint64, error) {
	b, err := toUint64(x)
	if err != nil {
		return Uint64{}, err
	}
	return Uint64{v: a.v + b}, nil
}

func (a Uint64) Sub(x any) (Uint64, error) {
	b, err := toUint64(x)
	if err != nil {
		return Uint64{}, err
	}
	return Uint64{v: a.v - b}, nil
}

func (a Uint64) Mul(x any) (Uint64, error) {
	b, err := toUint64(x)
	if err != nil {
		return Uint64{}, err
	}
	return Uint64{v: a.v * b}, nil
}

func (a Uint64) Div(x any) (Uint64, error) {
	b, err := toUint64(x)
	if err != nil {
		return Uint64{}, err
	}
	if b == 0 {
		return Uint64{}, ErrDivideByZero
	}
	return Uint64{v: a.v / b}, nil
}

func (a Uint64) Mod(x any) (Uint64, error) {
	b, err := toUint64(x)
	if err != nil {
		return Uint64{}, err
	}
	if b == 0 {
		return Uint64{}, ErrDivideByZero
	}
	return Uint64{v: a.v % b}, nil
}

func (a Uint64) Pow(x any) (Uint64, error) {
	exp, err := toUint64(x)
	if err != nil {
		return Uint64{}, err
	}
	return Uint64{v: powBits(a.v, exp)}, nil
}

// Neg returns -a as an Int64. Values above 2^63 have no signed negation.
func (a Uint64) Neg() (Int64, error) {
	if a.v > 1<<63 {
		return Int64{}, fmt.Errorf("%w: -%d", ErrOutOfRange, a.v)
	}
	return Int64{v: int64(-a.v)}, nil
}

func (a Uint64) And(x any) (Uint64, error) {
	b, err := toUint64(x)
	if err != nil {
		return Uint64{}, err
	}
	return Uint64{v: a.v & b}, nil
}

func (a Uint64) Or(x any) (Uint64, error) {
	b, err := toUint64(x)
	if err != nil {
		return Uint64{}, err
	}
	return Uint64{v: a.v | b}, nil
}

func (a Uint64) Xor(x any) (Uint64, error) {
	b, err := toUint64(x)
	if err != nil {
		return Uint64{}, err
	}
	return Uint64{v: a.v ^ b}, nil
}

func (a Uint64) Not() Uint64 { return Uint64{v: ^a.v} }

func (a Uint64) Shl(x any) (Uint64, error) {
	b, err := toUint64(x)
	if err != nil {
		return Uint64{}, err
	}
	n, ok := shiftCount(b)
	if !ok {
		return Uint64{}, nil
	}
	return Uint64{v: a.v << n}, nil
}

func (a Uint64) Shr(x any) (Uint64, error) {
	b, err := toUint64(x)
	if err != nil {
		return Uint64{}, err
	}
	n, ok := shiftCount(b)
	if !ok {
		return Uint64{}, nil
	}
	return Uint64{v: a.v >> n}, nil
}

func (a Uint64) Eq(x any) (bool, error) {
	b, err := toUint64(x)
	if err != nil {
		return false, err
	}
	return a.v == b, nil
}

func (a Uint64) Lt(x any) (bool, error) {
	b, err := toUint64(x)
	if err != nil {
		return false, err
	}
	return a.v < b, nil
}

func (a Uint64) Le(x any) (bool, error) {
	b, err := toUint64(x)
	if err != nil {
		return false, err
	}
	return a.v <= b, nil
}
