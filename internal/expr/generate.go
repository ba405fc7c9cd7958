// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package expr

import (
	"math/rand"
	"strconv"
	"strings"
)

var binaryOps = []string{"|", "^", "&", "&^"}
var shiftOps = []string{"<<", ">>", "<<<", ">>>"}

// Generate returns a random expression that is valid for sets of n bits,
// nested at most depth levels deep.
func Generate(rng *rand.Rand, n, depth int) string {
	g := generator{rng: rng, n: n}
	g.expr(depth)
	return g.sb.String()
}

type generator struct {
	rng *rand.Rand
	n   int
	sb  strings.Builder
}

func (g *generator) expr(depth int) {
	if depth <= 0 {
		g.primary()
		return
	}
	switch g.rng.Intn(5) {
	case 0, 1:
		g.sb.WriteByte('(')
		g.expr(depth - 1)
		g.sb.WriteString(" " + binaryOps[g.rng.Intn(len(binaryOps))] + " ")
		g.expr(depth - 1)
		g.sb.WriteByte(')')
	case 2:
		g.sb.WriteString("~(")
		g.expr(depth - 1)
		g.sb.WriteByte(')')
	case 3:
		g.sb.WriteByte('(')
		g.expr(depth - 1)
		g.sb.WriteString(") " + shiftOps[g.rng.Intn(len(shiftOps))] + " ")
		g.sb.WriteString(strconv.Itoa(g.rng.Intn(2*g.n + 1)))
	default:
		g.primary()
	}
}

func (g *generator) primary() {
	switch g.rng.Intn(6) {
	case 0:
		g.sb.WriteString("all")
	case 1:
		g.sb.WriteString("none")
	case 2, 3:
		g.bits()
	default:
		g.indexSet()
	}
}

func (g *generator) bits() {
	g.sb.WriteString("0b")
	for i := 0; i < g.n; i++ {
		if i > 0 && i%8 == 0 {
			g.sb.WriteByte('_')
		}
		g.sb.WriteByte(byte('0' + g.rng.Intn(2)))
	}
}

func (g *generator) indexSet() {
	g.sb.WriteByte('{')
	items := g.rng.Intn(4)
	for i := 0; i < items; i++ {
		if i > 0 {
			g.sb.WriteString(", ")
		}
		start := g.rng.Intn(g.n)
		g.sb.WriteString(strconv.Itoa(start))
		if g.rng.Intn(2) == 0 {
			end := start + g.rng.Intn(g.n-start+1)
			g.sb.WriteString(".." + strconv.Itoa(end))
		}
	}
	g.sb.WriteByte('}')
}
