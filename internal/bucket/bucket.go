// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package bucket operates on a []uint8 as a single little-endian bit string:
// bit i of the string is bit i%8 of byte i/8.
package bucket

// Bits is the width of a single bucket.
const Bits = 8

// Count returns the number of buckets needed to hold n bits.
func Count(n int) int {
	return (n + Bits - 1) / Bits
}

// Offsets returns the bucket holding bit i and the bit's offset within it.
func Offsets(i int) (bucketOff int, bitOff uint) {
	bucketOff = i / Bits
	bitOff = uint(i % Bits)
	return
}

// TailMask returns the mask of live bits in the final bucket of an n-bit string.
func TailMask(n int) uint8 {
	if tail := n % Bits; tail != 0 {
		return uint8(1)<<tail - 1
	}
	return 0xff
}

// ClearTail zeroes every bit of b at index >= n.
func ClearTail(b []uint8, n int) {
	if len(b) == 0 {
		return
	}
	b[len(b)-1] &= TailMask(n)
}

// Fill sets every byte of b to v.
func Fill(b []uint8, v uint8) {
	for i := range b {
		b[i] = v
	}
}

// SpanMask returns the mask covering bits [off, off+span) of one bucket.
// off+span must not exceed Bits.
func SpanMask(off, span uint) uint8 {
	m := uint(1)<<span - 1
	return uint8(m << off)
}

// ShiftUp moves every bit i of b to i+k.  Bits pushed past the end of b are
// dropped and the low k bits are zero-filled.
func ShiftUp(b []uint8, k int) {
	if k == 0 {
		return
	}
	if k >= len(b)*Bits {
		Fill(b, 0)
		return
	}
	whole, part := k/Bits, uint(k%Bits)
	// walk from the top so every source byte is read before it is overwritten
	for i := len(b) - 1; i >= 0; i-- {
		var v uint8
		if src := i - whole; src >= 0 {
			v = b[src] << part
			if part != 0 && src > 0 {
				v |= b[src-1] >> (Bits - part)
			}
		}
		b[i] = v
	}
}

// ShiftDown moves every bit i of b to i-k.  Bits pushed below index 0 are
// dropped and the high k bits are zero-filled.
func ShiftDown(b []uint8, k int) {
	if k == 0 {
		return
	}
	if k >= len(b)*Bits {
		Fill(b, 0)
		return
	}
	whole, part := k/Bits, uint(k%Bits)
	for i := 0; i < len(b); i++ {
		var v uint8
		if src := i + whole; src < len(b) {
			v = b[src] >> part
			if part != 0 && src+1 < len(b) {
				v |= b[src+1] << (Bits - part)
			}
		}
		b[i] = v
	}
}
