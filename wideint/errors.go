// SPDX-License-Identifier: EPL-2.0

package wideint

import "errors"

var (
	// ErrInvalidValue is returned for operand types that cannot be coerced.
	ErrInvalidValue = errors.New("cannot convert value to a 64-bit integer")

	// ErrInvalidString is returned when a string is not a valid base-10 integer.
	ErrInvalidString = errors.New("invalid integer string")

	// ErrEmptyString is returned for strings holding no digits at all.
	ErrEmptyString = errors.New("empty integer string")

	// ErrNegative is returned when a negative value meets an unsigned conversion.
	ErrNegative = errors.New("negative value cannot be unsigned")

	// ErrOutOfRange is returned when an unsigned value exceeds the signed maximum.
	ErrOutOfRange = errors.New("value out of signed 64-bit range")

	ErrDivideByZero     = errors.New("integer divide by zero")
	ErrNegativeExponent = errors.New("negative exponent")
)
