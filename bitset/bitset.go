// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package bitset implements a fixed-capacity set of bits packed into bytes.
//
// A BitSet holds exactly Len() bits for its whole lifetime.  Bit i lives in
// byte i/8 at bit i%8 (bit 0 is the least-significant bit), and storage bits
// past the last index are kept at zero by every operation.
//
// Constructors report bad input with an error.  Methods called on an
// existing BitSet with out-of-range arguments panic with one of the typed
// errors in this package, the way indexing a slice out of range does.
//
// A BitSet must not be mutated concurrently.
package bitset

import (
	"bytes"
	"iter"
	"strings"

	"github.com/dgryski/go-farm"

	"github.com/bpowers/bitset/internal/bucket"
)

// BitSet is conceptually similar to a fixed-length []bool, but stores 8 bits
// per byte.
type BitSet struct {
	n       int
	buckets []uint8
}

func newBitSet(n int) (*BitSet, error) {
	if n < 1 {
		return nil, ErrZeroCapacity
	}
	return &BitSet{
		n:       n,
		buckets: make([]uint8, bucket.Count(n)),
	}, nil
}

// New returns a BitSet of n bits, all unset.
func New(n int) (*BitSet, error) {
	return newBitSet(n)
}

// MustNew is like New but panics if n < 1.
func MustNew(n int) *BitSet {
	b, err := New(n)
	if err != nil {
		panic(err)
	}
	return b
}

// NewFull returns a BitSet of n bits, all set.
func NewFull(n int) (*BitSet, error) {
	b, err := newBitSet(n)
	if err != nil {
		return nil, err
	}
	bucket.Fill(b.buckets, 0xff)
	b.clearPadding()
	return b, nil
}

// MustNewFull is like NewFull but panics if n < 1.
func MustNewFull(n int) *BitSet {
	b, err := NewFull(n)
	if err != nil {
		panic(err)
	}
	return b
}

// FromSlice returns a BitSet whose bit i equals values[i].  len(values) must
// be exactly n.
func FromSlice(n int, values []bool) (*BitSet, error) {
	b, err := newBitSet(n)
	if err != nil {
		return nil, err
	}
	if len(values) != n {
		return nil, &LengthError{Want: n, Got: len(values)}
	}
	for i, v := range values {
		if v {
			b.Set(i)
		}
	}
	return b, nil
}

// FromOnes returns a BitSet of n bits with exactly the given indices set.
// It fails on the first index outside [0, n).
func FromOnes(n int, indices []int) (*BitSet, error) {
	b, err := newBitSet(n)
	if err != nil {
		return nil, err
	}
	for _, i := range indices {
		if !b.inBounds(i) {
			return nil, &IndexError{Index: i, Len: n}
		}
		b.Set(i)
	}
	return b, nil
}

// Collect builds a BitSet from a sequence that must yield exactly n values.
// It stops pulling from seq as soon as an excess value shows up.
func Collect(n int, seq iter.Seq[bool]) (*BitSet, error) {
	b, err := newBitSet(n)
	if err != nil {
		return nil, err
	}
	i := 0
	for v := range seq {
		if i == n {
			return nil, &ArityError{Len: n, Got: n + 1, Err: ErrTooManyValues}
		}
		if v {
			b.Set(i)
		}
		i++
	}
	if i < n {
		return nil, &ArityError{Len: n, Got: i, Err: ErrTooFewValues}
	}
	return b, nil
}

// Len returns the number of bits in the set.
func (b *BitSet) Len() int {
	return b.n
}

func (b *BitSet) inBounds(i int) bool {
	return i >= 0 && i < b.n
}

func (b *BitSet) checkIndex(i int) {
	if !b.inBounds(i) {
		panic(&IndexError{Index: i, Len: b.n})
	}
}

// clearPadding restores the invariant that storage bits at index >= n are
// zero.  Every operation that writes whole buckets must end with it.
func (b *BitSet) clearPadding() {
	bucket.ClearTail(b.buckets, b.n)
}

// IsSet reports whether bit i is set.
func (b *BitSet) IsSet(i int) bool {
	b.checkIndex(i)
	bucketOff, bitOff := bucket.Offsets(i)
	return b.buckets[bucketOff]&(1<<bitOff) != 0
}

// Set sets bit i to 1.
func (b *BitSet) Set(i int) {
	b.checkIndex(i)
	bucketOff, bitOff := bucket.Offsets(i)
	b.buckets[bucketOff] |= 1 << bitOff
}

// Unset sets bit i to 0.
func (b *BitSet) Unset(i int) {
	b.checkIndex(i)
	bucketOff, bitOff := bucket.Offsets(i)
	b.buckets[bucketOff] &^= 1 << bitOff
}

// Toggle flips bit i and returns the value it had before the flip.
func (b *BitSet) Toggle(i int) bool {
	b.checkIndex(i)
	bucketOff, bitOff := bucket.Offsets(i)
	u8 := &b.buckets[bucketOff]
	was := *u8&(1<<bitOff) != 0
	*u8 ^= 1 << bitOff
	return was
}

// checkRange validates [start, end).  start is checked first and must be a
// valid index even when the range is empty, so n..n is rejected.
func (b *BitSet) checkRange(start, end int) {
	if !b.inBounds(start) {
		panic(&RangeError{Start: start, End: end, Len: b.n, Err: ErrRangeStart})
	}
	if end < 0 || end > b.n {
		panic(&RangeError{Start: start, End: end, Len: b.n, Err: ErrRangeEnd})
	}
	if start > end {
		panic(&RangeError{Start: start, End: end, Len: b.n, Err: ErrRangeInverted})
	}
}

func (b *BitSet) fillRange(start, end int, on bool) {
	for start < end {
		bucketOff, bitOff := bucket.Offsets(start)
		span := bucket.Bits - int(bitOff)
		if rest := end - start; rest < span {
			span = rest
		}
		mask := bucket.SpanMask(bitOff, uint(span))
		if on {
			b.buckets[bucketOff] |= mask
		} else {
			b.buckets[bucketOff] &^= mask
		}
		start += span
	}
}

// SetRange sets every bit in [start, end).
func (b *BitSet) SetRange(start, end int) {
	b.checkRange(start, end)
	b.fillRange(start, end, true)
}

// UnsetRange clears every bit in [start, end).
func (b *BitSet) UnsetRange(start, end int) {
	b.checkRange(start, end)
	b.fillRange(start, end, false)
}

// Clone returns an independent copy of b.
func (b *BitSet) Clone() *BitSet {
	return &BitSet{
		n:       b.n,
		buckets: append([]uint8(nil), b.buckets...),
	}
}

// Equal reports whether b and other have the same length and the same bits.
func (b *BitSet) Equal(other *BitSet) bool {
	return b.n == other.n && bytes.Equal(b.buckets, other.buckets)
}

// Hash returns a fingerprint of the set's contents, suitable as a map key
// for deduplicating sets.  Equal sets hash equally.
func (b *BitSet) Hash() uint64 {
	return farm.Hash64WithSeed(b.buckets, uint64(b.n))
}

// String renders the set as one '0' or '1' per bit, index 0 first.
func (b *BitSet) String() string {
	var sb strings.Builder
	sb.Grow(b.n)
	for i := 0; i < b.n; i++ {
		if b.IsSet(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
