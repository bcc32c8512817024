package netlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValueBareNumber(t *testing.T) {
	v, err := ParseValue("1.5")
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)
}

func TestParseValueSuffixes(t *testing.T) {
	cases := map[string]float64{
		"1k":   1e3,
		"1meg": 1e6,
		"1g":   1e9,
		"1t":   1e12,
		"1m":   1e-3,
		"1u":   1e-6,
		"1n":   1e-9,
		"1p":   1e-12,
		"1f":   1e-15,
		"2.5K": 2.5e3,
	}
	for in, want := range cases {
		got, err := ParseValue(in)
		require.NoErrorf(t, err, "input %q", in)
		assert.InDeltaf(t, want, got, want*1e-9, "input %q", in)
	}
}

func TestParseValueScientificNotation(t *testing.T) {
	v, err := ParseValue("1.5e-6")
	require.NoError(t, err)
	assert.InDelta(t, 1.5e-6, v, 1e-18)
}

func TestParseValueRejectsGarbage(t *testing.T) {
	_, err := ParseValue("not-a-number")
	assert.Error(t, err)
}

func TestParseValueNegative(t *testing.T) {
	v, err := ParseValue("-2.2k")
	require.NoError(t, err)
	assert.Equal(t, -2200.0, v)
}
