package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gospice/gospice/pkg/circuit"
	"github.com/gospice/gospice/pkg/config"
	"github.com/gospice/gospice/pkg/device"
	"github.com/gospice/gospice/pkg/mna"
)

func buildVoltageDivider(t *testing.T) *circuit.Circuit {
	t.Helper()
	src := device.NewVoltageSource("V1", []string{"in", "0"}, device.Waveform{Kind: device.DC, DCValue: 1.0})
	r1 := device.NewResistor("R1", []string{"in", "out"}, 1000, false)
	r2 := device.NewResistor("R2", []string{"out", "0"}, 2000, false)
	ckt, err := circuit.Build("divider", []device.Device{src, r1, r2}, nil)
	require.NoError(t, err)
	return ckt
}

func TestOPVoltageDivider(t *testing.T) {
	op := NewOP(buildVoltageDivider(t), config.Default(), nil)
	require.NoError(t, op.Run())

	assert.InDelta(t, 1.0, op.Solution.Get(mna.Voltage("in")), 1e-9)
	assert.InDelta(t, 2.0/3.0, op.Solution.Get(mna.Voltage("out")), 1e-6)
	assert.InDelta(t, -1.0/3000.0, op.Solution.Get(mna.Current("V1")), 1e-9)
}

// A second independent source exercises superposition through the same
// MNA assembly path rather than any source-specific shortcut.
func TestOPTwoSourceResistiveCircuit(t *testing.T) {
	v1 := device.NewVoltageSource("V1", []string{"a", "0"}, device.Waveform{Kind: device.DC, DCValue: 5.0})
	v2 := device.NewVoltageSource("V2", []string{"b", "0"}, device.Waveform{Kind: device.DC, DCValue: 2.0})
	r := device.NewResistor("R1", []string{"a", "b"}, 1000, false)

	ckt, err := circuit.Build("twosource", []device.Device{v1, v2, r}, nil)
	require.NoError(t, err)

	op := NewOP(ckt, config.Default(), nil)
	require.NoError(t, op.Run())

	assert.InDelta(t, 5.0, op.Solution.Get(mna.Voltage("a")), 1e-9)
	assert.InDelta(t, 2.0, op.Solution.Get(mna.Voltage("b")), 1e-9)
	// Current through R1 from a to b: (5-2)/1000.
	assert.InDelta(t, 3.0/1000.0, -op.Solution.Get(mna.Current("V1")), 1e-9)
}

// KCL residual: at an internal node fed by one resistor and drained by
// two parallel resistors, the sum of branch currents computed from the
// solved node voltages via Ohm's law must cancel to zero. This doesn't
// rely on any device exposing a branch-current unknown -- it recomputes
// current independently from the solution, so a wrong conductance
// stamp (not just a wrong RHS) would show up as a nonzero residual.
func TestOPKCLResidualAtInternalNode(t *testing.T) {
	src := device.NewVoltageSource("V1", []string{"in", "0"}, device.Waveform{Kind: device.DC, DCValue: 9.0})
	r1 := device.NewResistor("R1", []string{"in", "mid"}, 1000, false)
	r2 := device.NewResistor("R2", []string{"mid", "0"}, 2000, false)
	r3 := device.NewResistor("R3", []string{"mid", "0"}, 3000, false)

	ckt, err := circuit.Build("kcl", []device.Device{src, r1, r2, r3}, nil)
	require.NoError(t, err)

	op := NewOP(ckt, config.Default(), nil)
	require.NoError(t, op.Run())

	vIn := op.Solution.Get(mna.Voltage("in"))
	vMid := op.Solution.Get(mna.Voltage("mid"))

	iIntoMid := (vIn - vMid) / 1000
	iOutR2 := vMid / 2000
	iOutR3 := vMid / 3000

	assert.InDelta(t, 9.0, vIn, 1e-9)
	assert.InDelta(t, 0.0, iIntoMid-iOutR2-iOutR3, 1e-9)
}
