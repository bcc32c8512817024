package stamp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gospice/gospice/pkg/mna"
)

func TestG1BothNodesFloating(t *testing.T) {
	out := G1(0, 1, 2.0)
	assert.ElementsMatch(t, []mna.Triplet{
		{Row: 0, Col: 0, Value: 2.0},
		{Row: 0, Col: 1, Value: -2.0},
		{Row: 1, Col: 0, Value: -2.0},
		{Row: 1, Col: 1, Value: 2.0},
	}, out)
}

func TestG1GroundedNode(t *testing.T) {
	out := G1(0, -1, 2.0)
	assert.ElementsMatch(t, []mna.Triplet{{Row: 0, Col: 0, Value: 2.0}}, out)

	out = G1(-1, 0, 2.0)
	assert.ElementsMatch(t, []mna.Triplet{{Row: 0, Col: 0, Value: 2.0}}, out)
}

func TestComplexG1(t *testing.T) {
	y := complex(0, 3.0)
	out := ComplexG1(0, 1, y)
	assert.ElementsMatch(t, []mna.ComplexTriplet{
		{Row: 0, Col: 0, Value: y},
		{Row: 0, Col: 1, Value: -y},
		{Row: 1, Col: 0, Value: -y},
		{Row: 1, Col: 1, Value: y},
	}, out)
}

func TestCurrentSourceStamp(t *testing.T) {
	out := CurrentSourceStamp(0, 1, 0.5)
	assert.ElementsMatch(t, []mna.Triplet{
		{Row: 0, Col: mna.ColRHS, Value: -0.5},
		{Row: 1, Col: mna.ColRHS, Value: 0.5},
	}, out)
}

func TestBranch2(t *testing.T) {
	out := Branch2(0, 1, 2)
	assert.ElementsMatch(t, []mna.Triplet{
		{Row: 0, Col: 2, Value: 1},
		{Row: 2, Col: 0, Value: 1},
		{Row: 1, Col: 2, Value: -1},
		{Row: 2, Col: 1, Value: -1},
	}, out)
}

func TestBranch2GroundedTerminal(t *testing.T) {
	out := Branch2(-1, 0, 1)
	assert.ElementsMatch(t, []mna.Triplet{
		{Row: 0, Col: 1, Value: -1},
		{Row: 1, Col: 0, Value: -1},
	}, out)
}

func TestRHSGroundedRowIsNil(t *testing.T) {
	assert.Nil(t, RHS(-1, 1.0))
	assert.Equal(t, []mna.Triplet{{Row: 0, Col: mna.ColRHS, Value: 1.0}}, RHS(0, 1.0))
}

func TestComplexRHSGroundedRowIsNil(t *testing.T) {
	assert.Nil(t, ComplexRHS(-1, complex(1, 0)))
}
