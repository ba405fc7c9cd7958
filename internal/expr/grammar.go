// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package expr

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

/*
This file contains a participle grammar for bitset expressions.  Every
expression is evaluated against a single bit count, so literals carry no
size of their own.  Operators bind, from loosest to tightest:

	|          union
	^          symmetric difference
	& &^       intersection, difference
	<< >>      shift (by an integer)
	<<< >>>    rotate (by an integer)
	~          complement (prefix)

Primaries are parenthesized expressions, index sets such as {0, 3..7},
bit strings such as 0b1010_0001 (index 0 first), and the constants all and
none.
*/

////////////////////////////////////////////////////////////////////////////////

var (
	Options = []participle.Option{ // nolint:gochecknoglobals
		participle.Lexer(
			lexer.MustSimple([]lexer.SimpleRule{
				{Name: "Bits", Pattern: `0b[01_]+`},
				{Name: "Int", Pattern: `[0-9]+`},
				{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
				{Name: "Operator", Pattern: `<<<|>>>|<<|>>|&\^|\.\.|[&|^~(){},]`},
				{Name: "whitespace", Pattern: `\s+`},
			}),
		),
	}

	parser = participle.MustBuild[Expression](Options...) // nolint:gochecknoglobals
)

// Parse parses a single expression.
func Parse(s string) (*Expression, error) {
	return parser.ParseString("", s)
}

// Expression is a union of one or more XorExprs.
type Expression struct {
	Or []*XorExpr `@@ ( "|" @@ )*`
}

// XorExpr is a symmetric difference of one or more AndExprs.
type XorExpr struct {
	Xor []*AndExpr `@@ ( "^" @@ )*`
}

// AndExpr is an intersection or difference chain, applied left to right.
type AndExpr struct {
	Head *ShiftExpr `@@`
	Tail []*AndTerm `@@*`
}

type AndTerm struct {
	Op      string     `@( "&^" | "&" )`
	Operand *ShiftExpr `@@`
}

// ShiftExpr applies zero or more shifts/rotations, left to right.
type ShiftExpr struct {
	Operand *Unary   `@@`
	Shifts  []*Shift `@@*`
}

type Shift struct {
	Op     string `@( "<<<" | ">>>" | "<<" | ">>" )`
	Amount int    `@Int`
}

// Unary is a primary with any number of prefix complements.
type Unary struct {
	Nots    []string `( @"~" )*`
	Operand *Primary `@@`
}

type Primary struct {
	Sub   *Expression `  "(" @@ ")"`
	Set   *IndexSet   `| @@`
	Bits  *string     `| @Bits`
	Const *string     `| @( "all" | "none" )`
}

// IndexSet lists the indices that are set; everything else is unset.
type IndexSet struct {
	Open  bool    `@"{"`
	Items []*Item `( @@ ( "," @@ )* )? "}"`
}

// Item is either a single index or the half-open range Start..End.
type Item struct {
	Start int  `@Int`
	End   *int `( ".." @Int )?`
}
