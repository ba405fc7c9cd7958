// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitset

import (
	"fmt"

	"github.com/bpowers/bitset/internal/bucket"
)

func checkShift(k int) {
	if k < 0 {
		panic(fmt.Errorf("%w: %d", ErrNegativeShift, k))
	}
}

// ShiftLeft moves every bit i to i+k.  Bits moved to an index >= Len() are
// discarded and bits [0, k) become 0.
func (b *BitSet) ShiftLeft(k int) {
	checkShift(k)
	if k >= b.n {
		bucket.Fill(b.buckets, 0)
		return
	}
	bucket.ShiftUp(b.buckets, k)
	b.clearPadding()
}

// ShiftRight moves every bit i to i-k.  Bits moved below index 0 are
// discarded and bits [Len()-k, Len()) become 0.
func (b *BitSet) ShiftRight(k int) {
	checkShift(k)
	if k >= b.n {
		bucket.Fill(b.buckets, 0)
		return
	}
	// padding is zero, so it is what flows into the top k bits
	bucket.ShiftDown(b.buckets, k)
	b.clearPadding()
}

// RotateLeft moves every bit i to (i+k) mod Len().
func (b *BitSet) RotateLeft(k int) {
	checkShift(k)
	b.rotateLeft(k % b.n)
}

// RotateRight moves every bit i to (i-k) mod Len().
func (b *BitSet) RotateRight(k int) {
	checkShift(k)
	if k %= b.n; k != 0 {
		b.rotateLeft(b.n - k)
	}
}

// rotateLeft requires 0 <= k < n.
func (b *BitSet) rotateLeft(k int) {
	if k == 0 {
		return
	}
	wrapped := append([]uint8(nil), b.buckets...)
	bucket.ShiftDown(wrapped, b.n-k)
	bucket.ShiftUp(b.buckets, k)
	b.clearPadding()
	for i, v := range wrapped {
		b.buckets[i] |= v
	}
}
