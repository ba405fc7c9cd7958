// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitset

func (b *BitSet) mustMatch(other *BitSet) {
	if b.n != other.n {
		panic(&LengthError{Want: b.n, Got: other.n})
	}
}

// InPlaceIntersection sets b to b AND other.
func (b *BitSet) InPlaceIntersection(other *BitSet) {
	b.mustMatch(other)
	for i, v := range other.buckets {
		b.buckets[i] &= v
	}
}

// InPlaceUnion sets b to b OR other.
func (b *BitSet) InPlaceUnion(other *BitSet) {
	b.mustMatch(other)
	for i, v := range other.buckets {
		b.buckets[i] |= v
	}
}

// InPlaceSymmetricDifference sets b to b XOR other.
func (b *BitSet) InPlaceSymmetricDifference(other *BitSet) {
	b.mustMatch(other)
	for i, v := range other.buckets {
		b.buckets[i] ^= v
	}
}

// InPlaceDifference sets b to b AND NOT other.
func (b *BitSet) InPlaceDifference(other *BitSet) {
	b.mustMatch(other)
	for i, v := range other.buckets {
		b.buckets[i] &^= v
	}
}

// InPlaceComplement flips every bit of b.
func (b *BitSet) InPlaceComplement() {
	for i := range b.buckets {
		b.buckets[i] = ^b.buckets[i]
	}
	// the flip also set the padding bits
	b.clearPadding()
}

// Intersection returns a new set holding b AND other.
func (b *BitSet) Intersection(other *BitSet) *BitSet {
	r := b.Clone()
	r.InPlaceIntersection(other)
	return r
}

// Union returns a new set holding b OR other.
func (b *BitSet) Union(other *BitSet) *BitSet {
	r := b.Clone()
	r.InPlaceUnion(other)
	return r
}

// SymmetricDifference returns a new set holding b XOR other.
func (b *BitSet) SymmetricDifference(other *BitSet) *BitSet {
	r := b.Clone()
	r.InPlaceSymmetricDifference(other)
	return r
}

// Difference returns a new set holding b AND NOT other.
func (b *BitSet) Difference(other *BitSet) *BitSet {
	r := b.Clone()
	r.InPlaceDifference(other)
	return r
}

// Complement returns a new set holding NOT b.
func (b *BitSet) Complement() *BitSet {
	r := b.Clone()
	r.InPlaceComplement()
	return r
}

// The methods below are operator spellings in the style of math/big: the
// receiver z is overwritten with the result and returned, so expressions
// can be chained.  z may alias an operand and may be the zero BitSet.

func (z *BitSet) adopt(r *BitSet) *BitSet {
	z.n, z.buckets = r.n, r.buckets
	return z
}

// And sets z = x & y and returns z.
func (z *BitSet) And(x, y *BitSet) *BitSet {
	return z.adopt(x.Intersection(y))
}

// Or sets z = x | y and returns z.
func (z *BitSet) Or(x, y *BitSet) *BitSet {
	return z.adopt(x.Union(y))
}

// Xor sets z = x ^ y and returns z.
func (z *BitSet) Xor(x, y *BitSet) *BitSet {
	return z.adopt(x.SymmetricDifference(y))
}

// AndNot sets z = x &^ y and returns z.
func (z *BitSet) AndNot(x, y *BitSet) *BitSet {
	return z.adopt(x.Difference(y))
}

// Not sets z = ^x and returns z.
func (z *BitSet) Not(x *BitSet) *BitSet {
	return z.adopt(x.Complement())
}

// Lsh sets z = x << k (see ShiftLeft) and returns z.
func (z *BitSet) Lsh(x *BitSet, k int) *BitSet {
	r := x.Clone()
	r.ShiftLeft(k)
	return z.adopt(r)
}

// Rsh sets z = x >> k (see ShiftRight) and returns z.
func (z *BitSet) Rsh(x *BitSet, k int) *BitSet {
	r := x.Clone()
	r.ShiftRight(k)
	return z.adopt(r)
}
