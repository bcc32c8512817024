package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMagnitudeUsesScientificOutsideBenchRange(t *testing.T) {
	assert.Contains(t, Magnitude(1500), "e+")
	assert.Contains(t, Magnitude(0.0001), "e-")
}

func TestMagnitudeUsesFixedPointInBenchRange(t *testing.T) {
	got := Magnitude(732.5)
	assert.False(t, strings.Contains(got, "e+"))
	assert.False(t, strings.Contains(got, "e-"))
}

func TestMagnitudePhaseFormat(t *testing.T) {
	got := MagnitudePhase("V(out)", 1.0, 90.0)
	assert.True(t, strings.HasPrefix(got, "V(out)="))
	assert.True(t, strings.HasSuffix(got, "<  90.0deg"))
}

func TestFrequencyPicksUnit(t *testing.T) {
	assert.Contains(t, Frequency(1.5e6), "MHz")
	assert.Contains(t, Frequency(1.5e3), "kHz")
	assert.Contains(t, Frequency(500), "Hz")
}
