// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitset

import (
	"iter"
	"math/bits"

	"github.com/bpowers/bitset/internal/bucket"
)

// Count returns the number of set bits.
func (b *BitSet) Count() int {
	n := 0
	for _, v := range b.buckets {
		n += bits.OnesCount8(v)
	}
	return n
}

// IsEmpty reports whether no bit is set.
func (b *BitSet) IsEmpty() bool {
	for _, v := range b.buckets {
		if v != 0 {
			return false
		}
	}
	return true
}

// IsFull reports whether every bit is set.
func (b *BitSet) IsFull() bool {
	return b.Count() == b.n
}

// FirstSet returns the lowest set index, or false if the set is empty.
func (b *BitSet) FirstSet() (int, bool) {
	i := b.nextMatch(0, true)
	return i, i < b.n
}

// nextMatch returns the lowest index >= from whose bit equals want, or b.n
// if there is none.
func (b *BitSet) nextMatch(from int, want bool) int {
	if from >= b.n {
		return b.n
	}
	first, bitOff := bucket.Offsets(from)
	for i := first; i < len(b.buckets); i++ {
		v := b.buckets[i]
		if !want {
			v = ^v
		}
		if i == first {
			v &^= uint8(1)<<bitOff - 1
		}
		if v != 0 {
			idx := i*bucket.Bits + bits.TrailingZeros8(v)
			if idx >= b.n {
				// an inverted padding bit
				return b.n
			}
			return idx
		}
	}
	return b.n
}

// Iterator yields every bit of a BitSet in index order.  Once exhausted it
// keeps reporting false from Next; it cannot be restarted.  The BitSet must
// not be modified while an Iterator over it is in use.
type Iterator struct {
	b    *BitSet
	next int
}

// Iter returns an Iterator over all Len() bits of b.
func (b *BitSet) Iter() *Iterator {
	return &Iterator{b: b}
}

// Next returns the next bit.  ok is false once all bits have been returned.
func (it *Iterator) Next() (value, ok bool) {
	if it.next >= it.b.n {
		return false, false
	}
	value = it.b.IsSet(it.next)
	it.next++
	return value, true
}

// Remaining returns how many more values Next will produce.
func (it *Iterator) Remaining() int {
	return it.b.n - it.next
}

// IndexIterator yields, in ascending order, the indices whose bit matches
// a fixed value.  Like Iterator it is fused and cannot be restarted.
type IndexIterator struct {
	b    *BitSet
	pos  int
	want bool
}

// IterOnes returns an IndexIterator over the set bits of b.
func (b *BitSet) IterOnes() *IndexIterator {
	return &IndexIterator{b: b, want: true}
}

// IterZeros returns an IndexIterator over the unset bits of b.
func (b *BitSet) IterZeros() *IndexIterator {
	return &IndexIterator{b: b, want: false}
}

// Next returns the next matching index.  ok is false once there are none
// left, and stays false.
func (it *IndexIterator) Next() (index int, ok bool) {
	i := it.b.nextMatch(it.pos, it.want)
	if i >= it.b.n {
		it.pos = it.b.n
		return 0, false
	}
	it.pos = i + 1
	return i, true
}

// Bools returns a sequence of all Len() bits in index order.
func (b *BitSet) Bools() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		it := b.Iter()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

func indexSeq(it *IndexIterator) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i, ok := it.Next(); ok; i, ok = it.Next() {
			if !yield(i) {
				return
			}
		}
	}
}

// Ones returns a sequence of the set indices in ascending order.
func (b *BitSet) Ones() iter.Seq[int] {
	return func(yield func(int) bool) {
		indexSeq(b.IterOnes())(yield)
	}
}

// Zeros returns a sequence of the unset indices in ascending order.
func (b *BitSet) Zeros() iter.Seq[int] {
	return func(yield func(int) bool) {
		indexSeq(b.IterZeros())(yield)
	}
}
