package device

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gospice/gospice/pkg/mna"
)

func newMosfet() *Mosfet {
	return NewMosfet("M1", []string{"d", "g", "s"}, 1.0, 2e-5, 1e-4, 1e-4, 0.0)
}

func TestMosfetCutoffRegion(t *testing.T) {
	m := newMosfet()
	id, gds, gm := m.companion(0.5, 1.0) // vgs < Vto
	assert.Equal(t, 0.0, id)
	assert.Equal(t, 0.0, gds)
	assert.Equal(t, 0.0, gm)
}

func TestMosfetLinearRegion(t *testing.T) {
	m := newMosfet()
	// vov = vgs - vto = 2 - 1 = 1; vds = 0.3 < vov -> linear/triode region
	id, gds, gm := m.companion(2.0, 0.3)
	beta := m.beta()
	assert.InDelta(t, beta*(1*0.3-0.3*0.3/2), id, 1e-12)
	assert.Greater(t, gds, 0.0)
	assert.Greater(t, gm, 0.0)
}

func TestMosfetSaturationRegion(t *testing.T) {
	m := newMosfet()
	// vov = 1; vds = 5 > vov -> saturation
	id, gds, gm := m.companion(2.0, 5.0)
	beta := m.beta()
	assert.InDelta(t, (beta/2)*1*1, id, 1e-12)
	assert.Greater(t, gm, 0.0)
	assert.Equal(t, 0.0, gds) // lambda = 0, so gds collapses to zero
}

func TestMosfetBiasResolvesFromSourceReferencedVoltages(t *testing.T) {
	m := newMosfet()
	sol := mna.Solution{}
	sol.Set(mna.Voltage("d"), 5.0)
	sol.Set(mna.Voltage("g"), 2.0)
	sol.Set(mna.Voltage("s"), 0.5)

	vgs, vds := m.bias(sol)
	assert.InDelta(t, 1.5, vgs, 1e-9)
	assert.InDelta(t, 4.5, vds, 1e-9)
}

func TestMosfetIsNonlinear(t *testing.T) {
	m := newMosfet()
	assert.False(t, m.IsLinear())
}
