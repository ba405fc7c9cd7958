// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"iter"
	"os"
	"slices"
	"strconv"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/bpowers/bitset/bitset"
)

var (
	setColor   = color.New(color.FgGreen, color.Bold)
	unsetColor = color.New(color.FgHiBlack)
)

// summary is the JSON form of an evaluated set.
type summary struct {
	Len   int    `json:"len"`
	Bits  string `json:"bits"`
	Ones  []int  `json:"ones"`
	Count int    `json:"count"`
	First *int   `json:"first"`
	Hash  string `json:"hash"`
}

func summarize(b *bitset.BitSet) summary {
	s := summary{
		Len:   b.Len(),
		Bits:  b.String(),
		Ones:  slices.AppendSeq(make([]int, 0, b.Count()), b.Ones()),
		Count: b.Count(),
		Hash:  strconv.FormatUint(b.Hash(), 16),
	}
	if first, ok := b.FirstSet(); ok {
		s.First = &first
	}
	return s
}

func writeJSON(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}

// renderText writes the bits of b wrapped to width columns, each line
// prefixed with the index of its first bit.
func renderText(w io.Writer, b *bitset.BitSet, width int) error {
	bits := b.String()
	labelWidth := len(strconv.Itoa(b.Len() - 1))
	perLine := width - labelWidth - 2
	if perLine < 8 {
		perLine = 8
	}
	perLine -= perLine % 8
	for start := 0; start < len(bits); start += perLine {
		end := min(start+perLine, len(bits))
		if _, err := fmt.Fprintf(w, "%*d  ", labelWidth, start); err != nil {
			return err
		}
		line := bits[start:end]
		// print runs of equal bits with a single escape sequence each
		for len(line) > 0 {
			run := 1
			for run < len(line) && line[run] == line[0] {
				run++
			}
			c := unsetColor
			if line[0] == '1' {
				c = setColor
			}
			if _, err := c.Fprint(w, line[:run]); err != nil {
				return err
			}
			line = line[run:]
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	first := "none"
	if i, ok := b.FirstSet(); ok {
		first = strconv.Itoa(i)
	}
	_, err := fmt.Fprintf(w, "count=%d first=%s\n", b.Count(), first)
	return err
}

// writeIndices writes one index per line, or a JSON array.
func writeIndices(w io.Writer, seq iter.Seq[int]) error {
	indices := slices.AppendSeq(make([]int, 0), seq)
	if jsonOut {
		return writeJSON(w, indices)
	}
	for _, i := range indices {
		if _, err := fmt.Fprintln(w, i); err != nil {
			return err
		}
	}
	return nil
}

var evalCmd = &cobra.Command{
	Use:   "eval [expression]",
	Short: "Evaluate an expression and print the resulting set",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		b := evaluate(args[0])
		if jsonOut {
			checkErr(writeJSON(os.Stdout, summarize(b)))
			return
		}
		checkErr(renderText(os.Stdout, b, termWidth()))
	},
}

var onesCmd = &cobra.Command{
	Use:   "ones [expression]",
	Short: "Print the indices of the set bits, ascending",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		checkErr(writeIndices(os.Stdout, evaluate(args[0]).Ones()))
	},
}

var zerosCmd = &cobra.Command{
	Use:   "zeros [expression]",
	Short: "Print the indices of the unset bits, ascending",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		checkErr(writeIndices(os.Stdout, evaluate(args[0]).Zeros()))
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(onesCmd)
	rootCmd.AddCommand(zerosCmd)
}
