// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package main

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/pflag"

	"github.com/bpowers/bitset/internal/expr"
)

var (
	count = pflag.IntP("count", "c", 1000, "number of expressions to print")
	size  = pflag.IntP("size", "n", 64, "bit count every expression is valid for")
	depth = pflag.IntP("depth", "d", 4, "maximum nesting depth")
	seed  = pflag.Int64("seed", 0, "random seed (0 picks one)")
)

func newRand() *rand.Rand {
	if *seed != 0 {
		return rand.New(rand.NewSource(*seed))
	}
	var seedBytes [8]byte
	if _, err := crand.Read(seedBytes[:]); err != nil {
		panic(err)
	}
	s := int64(binary.LittleEndian.Uint64(seedBytes[:]))
	return rand.New(rand.NewSource(s))
}

func main() {
	pflag.Parse()
	if *size < 1 {
		fmt.Fprintf(os.Stderr, "error: --size must be at least 1, got %d\n", *size)
		os.Exit(1)
	}
	rng := newRand()

	for i := 0; i < *count; i++ {
		fmt.Printf("%d\t%s\n", *size, expr.Generate(rng, *size, *depth))
	}
}
