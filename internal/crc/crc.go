// SPDX-License-Identifier: EPL-2.0

// Package crc holds the two checksums used by FLAC frames: CRC-8 over the
// frame header (polynomial x^8+x^2+x+1) and CRC-16 over the whole frame
// (polynomial x^16+x^15+x^2+1). Both start at zero with no reflection.
package crc

var (
	table8  [256]uint8
	table16 [256]uint16
)

func init() {
	for i := range 256 {
		c8 := uint8(i)
		for range 8 {
			if c8&0x80 != 0 {
				c8 = c8<<1 ^ 0x07
			} else {
				c8 <<= 1
			}
		}
		table8[i] = c8

		c16 := uint16(i) << 8
		for range 8 {
			if c16&0x8000 != 0 {
				c16 = c16<<1 ^ 0x8005
			} else {
				c16 <<= 1
			}
		}
		table16[i] = c16
	}
}

// Update8 folds one byte into a running CRC-8.
func Update8(crc, b uint8) uint8 {
	return table8[crc^b]
}

// Update16 folds one byte into a running CRC-16.
func Update16(crc uint16, b uint8) uint16 {
	return crc<<8 ^ table16[uint8(crc>>8)^b]
}

// Checksum8 returns the CRC-8 of p.
func Checksum8(p []byte) uint8 {
	var c uint8
	for _, b := range p {
		c = Update8(c, b)
	}
	return c
}

// Checksum16 returns the CRC-16 of p.
func Checksum16(p []byte) uint16 {
	var c uint16
	for _, b := range p {
		c = Update16(c, b)
	}
	return c
}
