// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package main

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/bpowers/bitset/bitset"
)

func init() {
	color.NoColor = true
}

func TestRenderText(t *testing.T) {
	b, err := bitset.FromOnes(20, []int{1, 2, 19})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderText(&buf, b, 12))
	// 12 columns minus a 2-digit label and 2 spaces leaves one byte of bits per line
	require.Equal(t, ""+
		" 0  01100000\n"+
		" 8  00000000\n"+
		"16  0001\n"+
		"count=3 first=1\n", buf.String())

	buf.Reset()
	require.NoError(t, renderText(&buf, bitset.MustNew(3), 80))
	require.Equal(t, "0  000\ncount=0 first=none\n", buf.String())
}

func TestSummarize(t *testing.T) {
	b, err := bitset.FromOnes(10, []int{0, 2, 5})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, summarize(b)))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, float64(10), got["len"])
	require.Equal(t, "1010010000", got["bits"])
	require.Equal(t, []any{float64(0), float64(2), float64(5)}, got["ones"])
	require.Equal(t, float64(3), got["count"])
	require.Equal(t, float64(0), got["first"])
	require.NotEmpty(t, got["hash"])

	buf.Reset()
	require.NoError(t, writeJSON(&buf, summarize(bitset.MustNew(4))))
	require.JSONEq(t, `{"len":4,"bits":"0000","ones":[],"count":0,"first":null,"hash":"`+
		summarize(bitset.MustNew(4)).Hash+`"}`, buf.String())
}

func TestWriteIndices(t *testing.T) {
	b, err := bitset.FromOnes(6, []int{1, 4})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeIndices(&buf, b.Zeros()))
	require.Equal(t, "0\n2\n3\n5\n", buf.String())

	jsonOut = true
	defer func() { jsonOut = false }()
	buf.Reset()
	require.NoError(t, writeIndices(&buf, b.Ones()))
	require.JSONEq(t, `[1, 4]`, buf.String())
}
