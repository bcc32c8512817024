package solve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gospice/gospice/pkg/mna"
)

// A 1000/2000 ohm voltage divider off a 1V source, using the branch-current
// (G2) formulation for the source: three unknowns, V(in), V(out), I(V1).
func dividerTriplets() (g, b []mna.Triplet) {
	const (
		vIn  = 0
		vOut = 1
		iV1  = 2
	)
	g = []mna.Triplet{
		// R1 = 1k between in and out
		{Row: vIn, Col: vIn, Value: 1.0 / 1000},
		{Row: vIn, Col: vOut, Value: -1.0 / 1000},
		{Row: vOut, Col: vIn, Value: -1.0 / 1000},
		{Row: vOut, Col: vOut, Value: 1.0/1000 + 1.0/2000},
		// V1 branch: V(in) - 0 = 1.0
		{Row: vIn, Col: iV1, Value: 1},
		{Row: iV1, Col: vIn, Value: 1},
	}
	b = []mna.Triplet{
		{Row: iV1, Col: mna.ColRHS, Value: 1.0},
	}
	return
}

func TestRealSolverSolvesVoltageDivider(t *testing.T) {
	s, err := NewRealSolver(3)
	require.NoError(t, err)

	g, b := dividerTriplets()
	s.Load(g, b)

	x, err := s.Solve()
	require.NoError(t, err)
	require.Len(t, x, 3)

	assert.InDelta(t, 1.0, x[0], 1e-9)
	assert.InDelta(t, 2.0/3.0, x[1], 1e-6)
	assert.InDelta(t, -1.0/3000.0, x[2], 1e-9)
}

func TestRealSolverLoadClearsPriorState(t *testing.T) {
	s, err := NewRealSolver(3)
	require.NoError(t, err)

	g, b := dividerTriplets()
	s.Load(g, b)
	x1, err := s.Solve()
	require.NoError(t, err)

	// Loading the same triplets again must not accumulate on top of the
	// previous load.
	s.Load(g, b)
	x2, err := s.Solve()
	require.NoError(t, err)

	assert.InDelta(t, x1[0], x2[0], 1e-9)
	assert.InDelta(t, x1[1], x2[1], 1e-9)
}

func TestComplexSolverSolvesRCLowPass(t *testing.T) {
	// An RC low-pass (R=1k, C=100nF) at 1kHz, voltage-source driven via
	// a branch current, solved directly (no NR needed: linear).
	const (
		vIn  = 0
		vOut = 1
		iV1  = 2
	)
	omega := 2 * 3.141592653589793 * 1000.0
	r := 1000.0
	c := 100e-9

	yc := complex(0, omega*c)
	g := []mna.ComplexTriplet{
		{Row: vIn, Col: vIn, Value: complex(1.0/r, 0)},
		{Row: vIn, Col: vOut, Value: complex(-1.0/r, 0)},
		{Row: vOut, Col: vIn, Value: complex(-1.0/r, 0)},
		{Row: vOut, Col: vOut, Value: complex(1.0/r, 0) + yc},
		{Row: vIn, Col: iV1, Value: 1},
		{Row: iV1, Col: vIn, Value: 1},
	}
	b := []mna.ComplexTriplet{
		{Row: iV1, Col: mna.ColRHS, Value: complex(1.0, 0)},
	}

	s, err := NewComplexSolver(3)
	require.NoError(t, err)
	s.Load(g, b)

	x, err := s.Solve()
	require.NoError(t, err)
	require.Len(t, x, 3)

	// H(jw) = 1 / (1 + jwRC), the standard single-pole low-pass transfer
	// function, independent of the sparse solve path under test.
	want := 1.0 / complex(1, omega*r*c)
	assert.InDelta(t, 1.0, real(x[0]), 1e-9)
	assert.InDelta(t, real(want), real(x[1]), 1e-6)
	assert.InDelta(t, imag(want), imag(x[1]), 1e-6)
}
