// Package circuit builds the Index Map from a parsed netlist and
// assembles device stamps into triplet lists for the analysis engines
// to factor and solve.
package circuit

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/gospice/gospice/pkg/device"
	"github.com/gospice/gospice/pkg/mna"
	"github.com/gospice/gospice/pkg/spiceerr"
)

// Circuit is an elaborated netlist: the device list plus the Index Map
// built by walking it once in device order, giving every unknown a
// stable, deterministic index.
type Circuit struct {
	Name    string
	Devices []device.Device
	Index   *mna.IndexMap

	log *logrus.Entry
}

// Build walks the devices once, in order. For each device it first
// assigns the branch-current unknown, if the device reports one via
// BranchUnknown, and then a node-voltage unknown for each of its
// non-ground nodes that has none yet, in declared node order.
func Build(name string, devices []device.Device, log *logrus.Entry) (*Circuit, error) {
	if len(devices) == 0 {
		return nil, errors.Wrap(spiceerr.ErrEmptyNetlist, "circuit.Build")
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	idx := mna.NewIndexMap()
	for _, d := range devices {
		if u, ok := d.BranchUnknown(); ok {
			idx.Allocate(u)
		}
		if _, ok := d.(*device.BJT); ok {
			return nil, errors.Wrapf(spiceerr.ErrInvalidElementFormat, "device %s: BJT modeling beyond a stub is not supported", d.ID())
		}
		for _, n := range d.NodeNames() {
			if mna.IsGround(n) {
				continue
			}
			idx.Allocate(mna.Voltage(n))
		}
	}

	log.WithFields(logrus.Fields{
		"circuit": name,
		"devices": len(devices),
		"unknowns": idx.Size(),
	}).Debug("circuit index map built")

	return &Circuit{Name: name, Devices: devices, Index: idx, log: log}, nil
}

// Size is the order of the linear system (number of unknowns).
func (c *Circuit) Size() int { return c.Index.Size() }

// HasNonlinearDevices reports whether Newton-Raphson iteration is
// needed at all, or a single linear solve suffices.
func (c *Circuit) HasNonlinearDevices() bool {
	for _, d := range c.Devices {
		lin, ok := d.(interface{ IsLinear() bool })
		if !ok || !lin.IsLinear() {
			return true
		}
	}
	return false
}

// StampDC assembles the summed DC conductance triplets and RHS
// triplets for every device at the given guess sol.
func (c *Circuit) StampDC(sol mna.Solution) (g, b []mna.Triplet) {
	var gAll, bAll []mna.Triplet
	for _, d := range c.Devices {
		gAll = append(gAll, d.StampGDC(c.Index, sol)...)
		bAll = append(bAll, d.StampBDC(c.Index, sol)...)
	}
	return mna.SumTriplets(gAll), mna.SumTriplets(bAll)
}

// StampAC assembles the complex admittance and phasor-excitation
// triplets at angular frequency omega, linearized at DC bias sol.
func (c *Circuit) StampAC(sol mna.Solution, omega float64) (g, b []mna.ComplexTriplet) {
	var gAll, bAll []mna.ComplexTriplet
	for _, d := range c.Devices {
		gAll = append(gAll, d.StampGAC(c.Index, sol, omega)...)
		bAll = append(bAll, d.StampBAC(c.Index, sol, omega)...)
	}
	return mna.SumComplexTriplets(gAll), mna.SumComplexTriplets(bAll)
}

// StampTran assembles the backward-Euler companion-model triplets for
// a step of size h from prev to the current guess sol.
func (c *Circuit) StampTran(sol, prev mna.Solution, h float64) (g, b []mna.Triplet) {
	var gAll, bAll []mna.Triplet
	for _, d := range c.Devices {
		gAll = append(gAll, d.StampGTran(c.Index, sol, prev, h)...)
		bAll = append(bAll, d.StampBTran(c.Index, sol, prev, h)...)
	}
	return mna.SumTriplets(gAll), mna.SumTriplets(bAll)
}

// Solution builds a Solution map from a dense unknown vector x
// (0-indexed, matching c.Index's allocation order).
func (c *Circuit) Solution(x []float64) mna.Solution {
	sol := make(mna.Solution, len(x)+1)
	for _, u := range c.Index.Unknowns() {
		i, _ := c.Index.Index(u)
		sol[u.String()] = x[i]
	}
	return sol
}

// ComplexSolution is the AC analogue of Solution.
func (c *Circuit) ComplexSolution(x []complex128, freq float64) mna.ComplexSolution {
	sol := make(mna.ComplexSolution, len(x)+1)
	for _, u := range c.Index.Unknowns() {
		i, _ := c.Index.Index(u)
		sol[u.String()] = x[i]
	}
	sol[mna.FrequencyKey] = complex(freq, 0)
	return sol
}
