package device

import (
	"github.com/gospice/gospice/pkg/mna"
	"github.com/gospice/gospice/pkg/stamp"
)

// Capacitor implements open circuit at DC, admittance jωC
// at AC, and a backward-Euler companion model (G_eq = C/h) in
// transient analysis.
type Capacitor struct {
	Base
	noBranch
	Farads float64
}

func NewCapacitor(name string, nodes []string, farads float64) *Capacitor {
	return &Capacitor{Base: Base{Name: name, Nodes: nodes}, Farads: farads}
}

func (c *Capacitor) Kind() string   { return "C" }
func (c *Capacitor) IsLinear() bool { return true }

func (c *Capacitor) StampGDC(idx *mna.IndexMap, sol mna.Solution) []mna.Triplet { return nil }
func (c *Capacitor) StampBDC(idx *mna.IndexMap, sol mna.Solution) []mna.Triplet { return nil }

func (c *Capacitor) StampGAC(idx *mna.IndexMap, sol mna.Solution, omega float64) []mna.ComplexTriplet {
	p, m := c.voltageAt(idx, 0), c.voltageAt(idx, 1)
	return stamp.ComplexG1(p, m, complex(0, omega*c.Farads))
}

func (c *Capacitor) StampBAC(idx *mna.IndexMap, sol mna.Solution, omega float64) []mna.ComplexTriplet {
	return nil
}

func (c *Capacitor) StampGTran(idx *mna.IndexMap, sol, prev mna.Solution, h float64) []mna.Triplet {
	p, m := c.voltageAt(idx, 0), c.voltageAt(idx, 1)
	return stamp.G1(p, m, c.Farads/h)
}

func (c *Capacitor) StampBTran(idx *mna.IndexMap, sol, prev mna.Solution, h float64) []mna.Triplet {
	geq := c.Farads / h
	vPrev := nodeVoltage(prev, c.Nodes[0]) - nodeVoltage(prev, c.Nodes[1])
	ieq := geq * vPrev

	p, m := c.voltageAt(idx, 0), c.voltageAt(idx, 1)
	var out []mna.Triplet
	if p >= 0 {
		out = append(out, mna.Triplet{Row: p, Col: mna.ColRHS, Value: ieq})
	}
	if m >= 0 {
		out = append(out, mna.Triplet{Row: m, Col: mna.ColRHS, Value: -ieq})
	}
	return out
}
