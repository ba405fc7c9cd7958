// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package expr parses and evaluates expressions over fixed-size bitsets.
package expr

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strings"

	"github.com/bpowers/bitset/bitset"
)

// Option configures an Evaluator.
type Option func(*evalOptions)

type evalOptions struct {
	logger *slog.Logger
}

// WithLogger sets a logger that receives a debug record for every operator
// applied.  If not provided, no logging output will be produced.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *evalOptions) {
		opts.logger = logger
	}
}

// Evaluator evaluates expressions where every set has the same bit count.
type Evaluator struct {
	n      int
	logger *slog.Logger
}

// NewEvaluator returns an Evaluator for sets of n bits.
func NewEvaluator(n int, opts ...Option) (*Evaluator, error) {
	var options evalOptions
	options.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	for _, opt := range opts {
		opt(&options)
	}
	if n < 1 {
		return nil, fmt.Errorf("NewEvaluator(%d): %w", n, bitset.ErrZeroCapacity)
	}
	return &Evaluator{
		n:      n,
		logger: options.logger,
	}, nil
}

// Eval parses and evaluates src.
func (e *Evaluator) Eval(src string) (*bitset.BitSet, error) {
	x, err := Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return e.Evaluate(x)
}

// Evaluate evaluates a parsed expression.  Precondition failures reported
// by the bitset package (out-of-range indices and ranges, bad literal
// lengths) are returned as errors.
func (e *Evaluator) Evaluate(x *Expression) (result *bitset.BitSet, err error) {
	defer func() {
		if r := recover(); r != nil {
			perr, ok := r.(error)
			if _, isRuntime := r.(runtime.Error); !ok || isRuntime {
				panic(r)
			}
			result, err = nil, perr
		}
	}()
	return e.expression(x)
}

func (e *Evaluator) expression(x *Expression) (*bitset.BitSet, error) {
	acc, err := e.xor(x.Or[0])
	if err != nil {
		return nil, err
	}
	for _, term := range x.Or[1:] {
		v, err := e.xor(term)
		if err != nil {
			return nil, err
		}
		acc.Or(acc, v)
		e.trace("|", acc)
	}
	return acc, nil
}

func (e *Evaluator) xor(x *XorExpr) (*bitset.BitSet, error) {
	acc, err := e.and(x.Xor[0])
	if err != nil {
		return nil, err
	}
	for _, term := range x.Xor[1:] {
		v, err := e.and(term)
		if err != nil {
			return nil, err
		}
		acc.Xor(acc, v)
		e.trace("^", acc)
	}
	return acc, nil
}

func (e *Evaluator) and(x *AndExpr) (*bitset.BitSet, error) {
	acc, err := e.shift(x.Head)
	if err != nil {
		return nil, err
	}
	for _, term := range x.Tail {
		v, err := e.shift(term.Operand)
		if err != nil {
			return nil, err
		}
		switch term.Op {
		case "&":
			acc.And(acc, v)
		case "&^":
			acc.AndNot(acc, v)
		default:
			return nil, fmt.Errorf("unknown operator %q", term.Op)
		}
		e.trace(term.Op, acc)
	}
	return acc, nil
}

func (e *Evaluator) shift(x *ShiftExpr) (*bitset.BitSet, error) {
	v, err := e.unary(x.Operand)
	if err != nil {
		return nil, err
	}
	for _, s := range x.Shifts {
		switch s.Op {
		case "<<":
			v.Lsh(v, s.Amount)
		case ">>":
			v.Rsh(v, s.Amount)
		case "<<<":
			v.RotateLeft(s.Amount)
		case ">>>":
			v.RotateRight(s.Amount)
		default:
			return nil, fmt.Errorf("unknown shift operator %q", s.Op)
		}
		e.trace(s.Op, v, "amount", s.Amount)
	}
	return v, nil
}

func (e *Evaluator) unary(x *Unary) (*bitset.BitSet, error) {
	v, err := e.primary(x.Operand)
	if err != nil {
		return nil, err
	}
	for range x.Nots {
		v.Not(v)
		e.trace("~", v)
	}
	return v, nil
}

func (e *Evaluator) primary(x *Primary) (*bitset.BitSet, error) {
	switch {
	case x.Sub != nil:
		return e.expression(x.Sub)
	case x.Set != nil:
		return e.indexSet(x.Set)
	case x.Bits != nil:
		return e.bits(*x.Bits)
	case x.Const != nil:
		if *x.Const == "all" {
			return bitset.NewFull(e.n)
		}
		return bitset.New(e.n)
	}
	return nil, fmt.Errorf("invalid primary expression")
}

func (e *Evaluator) indexSet(x *IndexSet) (*bitset.BitSet, error) {
	var singles []int
	for _, item := range x.Items {
		if item.End == nil {
			singles = append(singles, item.Start)
		}
	}
	b, err := bitset.FromOnes(e.n, singles)
	if err != nil {
		return nil, err
	}
	for _, item := range x.Items {
		if item.End != nil {
			b.SetRange(item.Start, *item.End)
		}
	}
	return b, nil
}

func (e *Evaluator) bits(lit string) (*bitset.BitSet, error) {
	digits := strings.ReplaceAll(strings.TrimPrefix(lit, "0b"), "_", "")
	values := make([]bool, len(digits))
	for i := 0; i < len(digits); i++ {
		values[i] = digits[i] == '1'
	}
	b, err := bitset.FromSlice(e.n, values)
	if err != nil {
		return nil, fmt.Errorf("bit string %s: %w", lit, err)
	}
	return b, nil
}

func (e *Evaluator) trace(op string, v *bitset.BitSet, args ...any) {
	e.logger.Debug("apply", append([]any{"op", op, "count", v.Count()}, args...)...)
}
