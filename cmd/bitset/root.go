// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bpowers/bitset/bitset"
	"github.com/bpowers/bitset/internal/expr"
)

var (
	size    int
	jsonOut bool
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "bitset",
	Short: "Evaluate expressions over fixed-size bitsets",
	Long: `Evaluate expressions over fixed-size bitsets.

Every set in an expression has --size bits.  Sets are written as index sets
({0, 3..7}), bit strings (0b1010_0001, index 0 first), or the constants all
and none, and combined with | ^ & &^ ~ << >> <<< (rotate left) and >>>
(rotate right).`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
		if noColor {
			color.NoColor = true
		}
	},
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func bailf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func checkErr(err error) {
	if err != nil {
		bailf("error: %v", err)
	}
}

// evaluate evaluates src for the configured size, exiting on any error.
func evaluate(src string) *bitset.BitSet {
	ev, err := expr.NewEvaluator(size, expr.WithLogger(slog.Default()))
	checkErr(err)
	b, err := ev.Eval(src)
	checkErr(err)
	slog.Debug("evaluated", "expr", src, "len", b.Len(), "count", b.Count())
	return b
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&size, "size", "n", 0, "number of bits in every set")
	rootCmd.PersistentFlags().BoolVarP(&jsonOut, "json", "", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every applied operator to stderr")
	rootCmd.PersistentFlags().BoolVarP(&noColor, "no-color", "", false, "disable colored output")
	_ = rootCmd.MarkPersistentFlagRequired("size")
}
