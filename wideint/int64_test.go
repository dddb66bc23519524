// SPDX-License-Identifier: EPL-2.0

package wideint

import (
	"errors"
	"math"
	"testing"
)

func TestInt64Arithmetic(t *testing.T) {
	t.Parallel()

	a := I64(-7)

	tests := []struct {
		name string
		op   func() (Int64, error)
		want int64
	}{
		{"add", func() (Int64, error) { return a.Add(10) }, 3},
		{"sub", func() (Int64, error) { return a.Sub("3") }, -10},
		{"mul", func() (Int64, error) { return a.Mul(U64(3)) }, -21},
		{"div truncates", func() (Int64, error) { return a.Div(2) }, -3},
		{"mod", func() (Int64, error) { return a.Mod(2) }, -1},
		{"pow", func() (Int64, error) { return a.Pow(3) }, -343},
		{"pow zero", func() (Int64, error) { return a.Pow(0) }, 1},
		{"and", func() (Int64, error) { return a.And(0xff) }, 0xf9},
		{"or", func() (Int64, error) { return I64(8).Or(1) }, 9},
		{"xor", func() (Int64, error) { return I64(6).Xor(3) }, 5},
		{"shl", func() (Int64, error) { return I64(1).Shl(62) }, 1 << 62},
		{"shl wide", func() (Int64, error) { return I64(1).Shl(64) }, 0},
		{"shl negative count", func() (Int64, error) { return I64(1).Shl(-1) }, 0},
		{"add wraps", func() (Int64, error) { return I64(math.MaxInt64).Add(1) }, math.MinInt64},
		{"min div -1", func() (Int64, error) { return I64(math.MinInt64).Div(-1) }, math.MinInt64},
		{"pow wraps", func() (Int64, error) { return I64(2).Pow(64) }, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.op()
			if err != nil {
				t.Fatalf("error = %v", err)
			}
			if got.Int64() != tt.want {
				t.Errorf("got %d, want %d", got.Int64(), tt.want)
			}
		})
	}
}

func TestInt64Errors(t *testing.T) {
	t.Parallel()

	if _, err := I64(1).Div(0); !errors.Is(err, ErrDivideByZero) {
		t.Errorf("Div(0) error = %v, want ErrDivideByZero", err)
	}
	if _, err := I64(1).Mod(I64(0)); !errors.Is(err, ErrDivideByZero) {
		t.Errorf("Mod(0) error = %v, want ErrDivideByZero", err)
	}
	if _, err := I64(2).Pow(-1); !errors.Is(err, ErrNegativeExponent) {
		t.Errorf("Pow(-1) error = %v, want ErrNegativeExponent", err)
	}
	if _, err := I64(1).Add(U64(math.MaxUint64)); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Add(MaxUint64) error = %v, want ErrOutOfRange", err)
	}
	if _, err := I64(1).Add("x"); !errors.Is(err, ErrInvalidString) {
		t.Errorf("Add(\"x\") error = %v, want ErrInvalidString", err)
	}
}

// Right shift works on the unsigned bit pattern.
func TestInt64ShrIsLogical(t *testing.T) {
	t.Parallel()

	got, err := I64(-1).Shr(60)
	if err != nil {
		t.Fatal(err)
	}
	if got.Int64() != 0xf {
		t.Errorf("(-1 >> 60) = %d, want 15", got.Int64())
	}

	got, err = I64(math.MinInt64).Shr(63)
	if err != nil {
		t.Fatal(err)
	}
	if got.Int64() != 1 {
		t.Errorf("(min >> 63) = %d, want 1", got.Int64())
	}
}

func TestInt64Neg(t *testing.T) {
	t.Parallel()

	for _, v := range []int64{0, 1, -1, 42, math.MaxInt64, math.MinInt64 + 1} {
		n, ok := I64(v).Neg().(Int64)
		if !ok {
			t.Fatalf("Neg(%d) did not return Int64", v)
		}
		back, ok := n.Neg().(Int64)
		if !ok || back.Int64() != v {
			t.Errorf("Neg(Neg(%d)) = %v", v, back)
		}
	}

	neg := I64(math.MinInt64).Neg()
	u, ok := neg.(Uint64)
	if !ok {
		t.Fatalf("Neg(min) = %T, want Uint64", neg)
	}
	if u.Uint64() != 1<<63 {
		t.Errorf("Neg(min) = %d, want %d", u.Uint64(), uint64(1<<63))
	}
	if u.Bits() != I64(math.MinInt64).Bits() {
		t.Error("Neg(min) changed the bit pattern")
	}
}

func TestInt64Compare(t *testing.T) {
	t.Parallel()

	a := I64(-5)

	eq, err := a.Eq("-5")
	if err != nil || !eq {
		t.Errorf("Eq(\"-5\") = %v, %v", eq, err)
	}

	lt, err := a.Lt(0)
	if err != nil || !lt {
		t.Errorf("Lt(0) = %v, %v", lt, err)
	}

	le, err := a.Le(I64(-5))
	if err != nil || !le {
		t.Errorf("Le(-5) = %v, %v", le, err)
	}

	lt, err = a.Lt(-6)
	if err != nil || lt {
		t.Errorf("Lt(-6) = %v, %v", lt, err)
	}

	if _, err := a.Eq(U64(math.MaxUint64)); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Eq(MaxUint64) error = %v, want ErrOutOfRange", err)
	}
}

func TestInt64String(t *testing.T) {
	t.Parallel()

	tests := map[int64]string{
		0:              "0",
		-1:             "-1",
		10:             "10",
		math.MaxInt64:  "9223372036854775807",
		math.MinInt64:  "-9223372036854775808",
		-1234567890123: "-1234567890123",
	}
	for v, want := range tests {
		if got := I64(v).String(); got != want {
			t.Errorf("I64(%d).String() = %q, want %q", v, got, want)
		}
	}

	if got := I64(-1).Not().Int64(); got != 0 {
		t.Errorf("Not(-1) = %d, want 0", got)
	}
}

func TestConcat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b any
		want string
	}{
		{I64(-3), U64(4), "-34"},
		{"total=", U64(math.MaxUint64), "total=18446744073709551615"},
		{I64(7), " samples", "7 samples"},
		{1, I64(2), "12"},
	}
	for _, tt := range tests {
		if got := Concat(tt.a, tt.b); got != tt.want {
			t.Errorf("Concat(%v, %v) = %q, want %q", tt.a, tt.b, got, tt.want)
		}
	}
}

func BenchmarkInt64String(b *testing.B) {
	v := I64(math.MinInt64)

	b.ReportAllocs()

	for b.Loop() {
		_ = v.String()
	}
}
