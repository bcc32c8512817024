// Package device implements the per-element algorithms: the linear
// stamps for R/L/C/V/I, the nonlinear diode and MOSFET models, and a
// BJT stub.
package device

import (
	"github.com/gospice/gospice/internal/consts"
	"github.com/gospice/gospice/pkg/mna"
	"github.com/gospice/gospice/pkg/stamp"
)

// Device is the full contract a circuit element satisfies: identity,
// topology, and the stamp.Stamper protocol.
type Device interface {
	stamp.Stamper
	ID() string
	Kind() string
	NodeNames() []string
	// BranchUnknown reports the mna.Unknown for this device's branch
	// current: V, L and I always have one, R has one when its G2 flag
	// is set. ok is false for devices with no branch unknown.
	BranchUnknown() (mna.Unknown, bool)
}

// Base carries the identity and topology every device shares.
type Base struct {
	Name  string
	Nodes []string
}

func (b Base) ID() string            { return b.Name }
func (b Base) NodeNames() []string   { return b.Nodes }
func (b Base) node(i int) string     { return b.Nodes[i] }
func (b Base) voltageAt(idx *mna.IndexMap, i int) int {
	v, _ := idx.VoltageIndex(b.Nodes[i])
	return v
}

// noBranch is embedded by devices with no branch-current unknown
// (capacitor, diode, MOSFET, BJT stub). The resistor decides per its
// G2 flag in its own BranchUnknown.
type noBranch struct{}

func (noBranch) BranchUnknown() (mna.Unknown, bool) { return mna.Unknown{}, false }

// thermalVoltage resolves kT/q for a device, falling back to room
// temperature when temp is unset.
func thermalVoltage(temp float64) float64 {
	return consts.ThermalVoltage(temp)
}

// nodeVoltage returns sol's value for node, or 0 for ground / an unset
// entry (before the first NR iteration has populated sol).
func nodeVoltage(sol mna.Solution, node string) float64 {
	if mna.IsGround(node) {
		return 0
	}
	return sol.Get(mna.Voltage(node))
}
