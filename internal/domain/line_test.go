package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleLine = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"

func TestParseLineRoundTrip(t *testing.T) {
	g, err := ParseLine(sampleLine)
	require.NoError(t, err)
	require.Equal(t, uint8(5), g.At(0, 0))
	require.Equal(t, uint8(0), g.At(0, 2))
	require.Equal(t, uint8(9), g.At(8, 8))

	dotted := strings.ReplaceAll(sampleLine, "0", ".")
	require.Equal(t, dotted, g.Line())

	again, err := ParseLine(g.Line())
	require.NoError(t, err)
	require.Equal(t, g, again)
}

func TestParseLineRejectsMalformed(t *testing.T) {
	cases := []struct {
		name string
		line string
	}{
		{"short", sampleLine[:80]},
		{"long", sampleLine + "1"},
		{"letter", "a" + sampleLine[1:]},
		{"space", " " + sampleLine[1:]},
		{"empty", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseLine(tc.line)
			require.ErrorIs(t, err, ErrMalformedInput)
		})
	}
}

func TestGridJSONForm(t *testing.T) {
	g, err := ParseLine(sampleLine)
	require.NoError(t, err)

	p := Puzzle{ID: "x", Grid: g, FreeCells: g.FreeCells()}
	data, err := json.Marshal(p)
	require.NoError(t, err)
	require.Contains(t, string(data), `"grid":"53..7...`)

	var back Puzzle
	require.NoError(t, json.Unmarshal(data, &back))
	require.Equal(t, g, back.Grid)
}

func TestFreeCells(t *testing.T) {
	var empty Grid
	require.Equal(t, 81, empty.FreeCells())

	g, err := ParseLine(sampleLine)
	require.NoError(t, err)
	require.Equal(t, 51, g.FreeCells())
}
