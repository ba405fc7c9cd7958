// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitset

import (
	"errors"
	"fmt"
)

var (
	ErrZeroCapacity     = errors.New("bitset: bit count must be at least 1")
	ErrIndexOutOfBounds = errors.New("bitset: index out of bounds")
	ErrRangeStart       = errors.New("bitset: range start out of bounds")
	ErrRangeEnd         = errors.New("bitset: range end out of bounds")
	ErrRangeInverted    = errors.New("bitset: range start after range end")
	ErrLengthMismatch   = errors.New("bitset: length mismatch")
	ErrTooManyValues    = errors.New("bitset: iterator yielded more than the bit count")
	ErrTooFewValues     = errors.New("bitset: iterator yielded fewer than the bit count")
	ErrNegativeShift    = errors.New("bitset: negative shift amount")
)

// IndexError reports a bit index outside [0, Len).
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("bitset: bit index %d out of bounds for length %d", e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfBounds }

// RangeError reports a rejected [Start, End) range.  Err is one of
// ErrRangeStart, ErrRangeEnd or ErrRangeInverted.
type RangeError struct {
	Start, End int
	Len        int
	Err        error
}

func (e *RangeError) Error() string {
	switch e.Err {
	case ErrRangeStart:
		return fmt.Sprintf("bitset: range start %d out of bounds for length %d", e.Start, e.Len)
	case ErrRangeEnd:
		return fmt.Sprintf("bitset: range end %d out of bounds for length %d", e.End, e.Len)
	}
	return fmt.Sprintf("bitset: range %d..%d: %v", e.Start, e.End, e.Err)
}

func (e *RangeError) Unwrap() error { return e.Err }

// LengthError reports an input or operand whose length differs from the
// bit count.
type LengthError struct {
	Want, Got int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("bitset: length mismatch: expected %d, got %d", e.Want, e.Got)
}

func (e *LengthError) Unwrap() error { return ErrLengthMismatch }

// ArityError is returned by Collect when a sequence does not yield exactly
// Len values.  For ErrTooManyValues, Got is the 1-based position of the
// first excess value; for ErrTooFewValues it is the number of values seen
// before the sequence ended.
type ArityError struct {
	Len int
	Got int
	Err error
}

func (e *ArityError) Error() string {
	if e.Err == ErrTooManyValues {
		return fmt.Sprintf("bitset: iterator yielded more than %d values (excess value at position %d)", e.Len, e.Got)
	}
	return fmt.Sprintf("bitset: iterator yielded fewer than %d values (got %d)", e.Len, e.Got)
}

func (e *ArityError) Unwrap() error { return e.Err }
