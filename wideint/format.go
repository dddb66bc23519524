// SPDX-License-Identifier: EPL-2.0

package wideint

import "fmt"

const digitTable = "0123456789"

// formatUint renders v right to left into a fixed buffer.
func formatUint(v uint64) string {
	var buf [20]byte
	i := len(buf)
	for {
		i--
		buf[i] = digitTable[v%10]
		v /= 10
		if v == 0 {
			break
		}
	}
	return string(buf[i:])
}

// formatInt renders v, negating into an unsigned magnitude first so the
// signed minimum needs no special case.
func formatInt(v int64) string {
	var buf [21]byte
	mag := uint64(v)
	if v < 0 {
		mag = -mag
	}

	i := len(buf)
	for {
		i--
		buf[i] = digitTable[mag%10]
		mag /= 10
		if mag == 0 {
			break
		}
	}
	if v < 0 {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// Concat renders both operands in decimal and joins them. Wide values use
// their String form; anything else is formatted by fmt.
func Concat(a, b any) string {
	return render(a) + render(b)
}

func render(x any) string {
	if v, ok := x.(Value); ok {
		return v.String()
	}
	return fmt.Sprint(x)
}
