// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitset

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShiftLeft(t *testing.T) {
	b := MustNew(20)

	b.Set(0)
	b.ShiftLeft(1)
	require.True(t, b.IsSet(1))
	require.Equal(t, 1, b.Count())

	b.ShiftLeft(7)
	require.True(t, b.IsSet(8)) // crossed a bucket boundary
	require.Equal(t, 1, b.Count())

	b.ShiftLeft(12)
	require.Zero(t, b.Count()) // shifted off the end
}

func TestShiftLeftZero(t *testing.T) {
	b := MustNew(20)
	b.Set(5)
	b.ShiftLeft(0)
	require.True(t, b.IsSet(5))
	require.Equal(t, 1, b.Count())
}

func TestShiftLeftClearsPadding(t *testing.T) {
	// 7 of the 8 bits of the second bucket are padding
	b := MustNew(9)
	b.Set(8)
	b.ShiftLeft(1)
	requirePadding(t, b)
	require.Zero(t, b.buckets[1])
	require.True(t, b.IsEmpty())

	b = MustNewFull(9)
	b.ShiftLeft(3)
	requirePadding(t, b)
	require.Equal(t, "000111111", b.String())
}

func TestShiftRight(t *testing.T) {
	b := MustNew(20)

	b.Set(19)
	b.ShiftRight(1)
	require.True(t, b.IsSet(18))
	require.Equal(t, 1, b.Count())

	b.ShiftRight(7)
	require.True(t, b.IsSet(11)) // crossed a bucket boundary
	require.Equal(t, 1, b.Count())

	b.ShiftRight(12)
	require.Zero(t, b.Count())
}

func TestShiftRightZero(t *testing.T) {
	b := MustNew(16)
	b.Set(10)
	b.ShiftRight(0)
	require.True(t, b.IsSet(10))
}

func TestShiftRightFillsTopWithZeros(t *testing.T) {
	b := MustNewFull(9)
	b.ShiftRight(1)
	requirePadding(t, b)
	require.Equal(t, "111111110", b.String())

	b = MustNew(9)
	b.Set(0)
	b.ShiftRight(1)
	requirePadding(t, b)
	require.True(t, b.IsEmpty())
}

func TestShiftComposes(t *testing.T) {
	const n = 45
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 50; trial++ {
		a, c := rng.Intn(10), rng.Intn(10)
		// no set bits within a+c of the top
		values := make([]bool, n)
		for i := 0; i < n-a-c; i++ {
			values[i] = rng.Intn(2) == 1
		}
		orig, err := FromSlice(n, values)
		require.NoError(t, err)

		twice := orig.Clone()
		twice.ShiftLeft(a)
		twice.ShiftLeft(c)
		once := orig.Clone()
		once.ShiftLeft(a + c)
		require.True(t, once.Equal(twice), "a=%d c=%d", a, c)
		require.Equal(t, orig.Count(), once.Count())
	}
}

func TestShiftPastEndClears(t *testing.T) {
	for _, n := range bitCounts {
		for _, k := range []int{n, n + 1, 3 * n} {
			b := MustNewFull(n)
			b.ShiftLeft(k)
			require.True(t, b.IsEmpty(), "n=%d k=%d", n, k)
			b = MustNewFull(n)
			b.ShiftRight(k)
			require.True(t, b.IsEmpty(), "n=%d k=%d", n, k)
		}
	}
}

func TestNegativeShift(t *testing.T) {
	b := MustNew(10)
	requirePanicsWith(t, ErrNegativeShift, func() { b.ShiftLeft(-1) })
	requirePanicsWith(t, ErrNegativeShift, func() { b.ShiftRight(-1) })
	requirePanicsWith(t, ErrNegativeShift, func() { b.RotateLeft(-1) })
	requirePanicsWith(t, ErrNegativeShift, func() { b.RotateRight(-1) })
}

func TestRotateLeft(t *testing.T) {
	b := MustNew(20)
	b.Set(18)
	b.RotateLeft(3)
	require.True(t, b.IsSet(1))
	require.False(t, b.IsSet(18))
	require.Equal(t, 1, b.Count())

	b.RotateLeft(2)
	require.True(t, b.IsSet(3))
	require.False(t, b.IsSet(1))
	require.Equal(t, 1, b.Count())
}

func TestRotateRight(t *testing.T) {
	b := MustNew(20)
	b.Set(1)
	b.RotateRight(3)
	require.True(t, b.IsSet(18))
	require.False(t, b.IsSet(1))
	require.Equal(t, 1, b.Count())

	b.RotateRight(2)
	require.True(t, b.IsSet(16))
	require.False(t, b.IsSet(18))
	require.Equal(t, 1, b.Count())
}

func TestRotateClearsPadding(t *testing.T) {
	b := MustNewFull(9)
	b.RotateLeft(7)
	requirePadding(t, b)
	require.True(t, b.IsFull())

	b = MustNewFull(9)
	b.RotateRight(7)
	requirePadding(t, b)
	require.True(t, b.IsFull())
}

func TestRotateFullCycle(t *testing.T) {
	const n = 20
	original := mustFromSlice(t,
		T, F, T, F, T, F, T, F, T, F, F, T, F, T, F, T, F, T, F, T)

	left := original.Clone()
	left.RotateLeft(n)
	require.True(t, left.Equal(original))

	right := original.Clone()
	right.RotateRight(2 * n)
	require.True(t, right.Equal(original))

	zero := original.Clone()
	zero.RotateLeft(0)
	require.True(t, zero.Equal(original))
}

// rotateNaive moves bit i to (i+k) mod n one bit at a time.
func rotateNaive(b *BitSet, k int) *BitSet {
	r := MustNew(b.Len())
	for i := 0; i < b.Len(); i++ {
		if b.IsSet(i) {
			r.Set((i + k) % b.Len())
		}
	}
	return r
}

func TestRotateMatchesNaive(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for _, n := range []int{1, 7, 8, 9, 13, 16, 33, 64, 129} {
		values := make([]bool, n)
		for i := range values {
			values[i] = rng.Intn(2) == 1
		}
		orig, err := FromSlice(n, values)
		require.NoError(t, err)
		for k := 0; k <= 2*n; k++ {
			want := rotateNaive(orig, k%n)

			got := orig.Clone()
			got.RotateLeft(k)
			require.True(t, got.Equal(want), "left n=%d k=%d: %s != %s", n, k, got, want)
			requirePadding(t, got)

			got = orig.Clone()
			got.RotateRight(k)
			want = rotateNaive(orig, n-k%n)
			require.True(t, got.Equal(want), "right n=%d k=%d: %s != %s", n, k, got, want)
			requirePadding(t, got)
		}
	}
}
