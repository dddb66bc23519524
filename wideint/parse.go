// SPDX-License-Identifier: EPL-2.0

package wideint

import (
	"fmt"
	"math"
)

// skipSpace returns s without its leading ASCII whitespace.
func skipSpace(s string) string {
	i := 0
	for i < len(s) {
		switch s[i] {
		case ' ', '\t', '\n', '\v', '\f', '\r':
			i++
			continue
		}
		break
	}
	return s[i:]
}

// digits accumulates a run of decimal digits, failing on overflow or
// on any non-digit byte.
func digits(orig, s string) (uint64, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidString, orig)
	}

	var n uint64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidString, orig)
		}
		d := uint64(c - '0')
		if n > (math.MaxUint64-d)/10 {
			return 0, fmt.Errorf("%w: %q overflows", ErrInvalidString, orig)
		}
		n = n*10 + d
	}

	return n, nil
}

// ParseInt64Value parses a base-10 signed integer.
func ParseInt64Value(s string) (int64, error) {
	t := skipSpace(s)
	if t == "" {
		return 0, fmt.Errorf("%w: %q has no characters", ErrEmptyString, s)
	}

	neg := false
	switch t[0] {
	case '-':
		neg = true
		t = t[1:]
	case '+':
		t = t[1:]
	}

	n, err := digits(s, t)
	if err != nil {
		return 0, err
	}

	if neg {
		if n > 1<<63 {
			return 0, fmt.Errorf("%w: %q overflows", ErrInvalidString, s)
		}
		return int64(-n), nil
	}
	if n > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %q overflows", ErrInvalidString, s)
	}

	return int64(n), nil
}

// ParseUint64Value parses a base-10 unsigned integer. Signs are rejected.
func ParseUint64Value(s string) (uint64, error) {
	t := skipSpace(s)
	if t == "" {
		return 0, fmt.Errorf("%w: %q has no characters", ErrEmptyString, s)
	}

	switch t[0] {
	case '-':
		return 0, fmt.Errorf("%w: %q", ErrNegative, s)
	case '+':
		return 0, fmt.Errorf("%w: %q", ErrInvalidString, s)
	}

	return digits(s, t)
}
