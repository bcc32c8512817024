package device

import (
	"github.com/gospice/gospice/pkg/mna"
	"github.com/gospice/gospice/pkg/stamp"
)

// Mosfet implements the N-channel Shichman-Hodges Level 1 model.
// Nodes are [drain, gate, source]; the bulk terminal a full Level 1-3
// model carries is out of scope here (tied to the source, as is
// conventional for a 3-terminal discrete NMOS).
type Mosfet struct {
	Base
	noBranch
	Vto    float64
	Kp     float64
	W, L   float64
	Lambda float64
}

func NewMosfet(name string, nodes []string, vto, kp, w, l, lambda float64) *Mosfet {
	return &Mosfet{Base: Base{Name: name, Nodes: nodes}, Vto: vto, Kp: kp, W: w, L: l, Lambda: lambda}
}

func (m *Mosfet) Kind() string   { return "M" }
func (m *Mosfet) IsLinear() bool { return false }

func (m *Mosfet) beta() float64 { return m.Kp * (m.W / m.L) }

// companion returns the drain current and the two partial
// conductances (w.r.t V_ds and V_gs) at the given bias, across the
// cutoff, triode, and saturation regions.
func (m *Mosfet) companion(vgs, vds float64) (id, gds, gm float64) {
	beta := m.beta()
	vov := vgs - m.Vto
	switch {
	case vgs <= m.Vto:
		return 0, 0, 0
	case vds >= 0 && vds <= vov:
		id = beta * (vov*vds - vds*vds/2)
		gm = beta * vds
		gds = beta * (vov - vds)
	default:
		id = (beta / 2) * vov * vov * (1 + m.Lambda*vds)
		gm = beta * vov * (1 + m.Lambda*vds)
		gds = (beta / 2) * m.Lambda * vov * vov
	}
	return
}

func (m *Mosfet) bias(sol mna.Solution) (vgs, vds float64) {
	d, g, s := m.Nodes[0], m.Nodes[1], m.Nodes[2]
	vd, vg, vs := nodeVoltage(sol, d), nodeVoltage(sol, g), nodeVoltage(sol, s)
	return vg - vs, vd - vs
}

func (m *Mosfet) stampDC(idx *mna.IndexMap, sol mna.Solution, withRHS bool) (g []mna.Triplet, b []mna.Triplet) {
	vgs, vds := m.bias(sol)
	id, gds, gm := m.companion(vgs, vds)
	ieq := id - gds*vds - gm*vgs

	drain, _ := idx.VoltageIndex(m.Nodes[0])
	source, _ := idx.VoltageIndex(m.Nodes[2])

	g = stamp.G1(drain, source, gds)
	// voltage-controlled current source gm*vgs, current into D out of S,
	// controlled by V_gs = V_gate - V_source.
	gate, _ := idx.VoltageIndex(m.Nodes[1])
	if drain >= 0 {
		if gate >= 0 {
			g = append(g, mna.Triplet{Row: drain, Col: gate, Value: gm})
		}
		if source >= 0 {
			g = append(g, mna.Triplet{Row: drain, Col: source, Value: -gm})
		}
	}
	if source >= 0 {
		if gate >= 0 {
			g = append(g, mna.Triplet{Row: source, Col: gate, Value: -gm})
		}
		g = append(g, mna.Triplet{Row: source, Col: source, Value: gm})
	}

	if withRHS {
		if drain >= 0 {
			b = append(b, mna.Triplet{Row: drain, Col: mna.ColRHS, Value: -ieq})
		}
		if source >= 0 {
			b = append(b, mna.Triplet{Row: source, Col: mna.ColRHS, Value: ieq})
		}
	}
	return
}

func (m *Mosfet) StampGDC(idx *mna.IndexMap, sol mna.Solution) []mna.Triplet {
	g, _ := m.stampDC(idx, sol, false)
	return g
}

func (m *Mosfet) StampBDC(idx *mna.IndexMap, sol mna.Solution) []mna.Triplet {
	_, b := m.stampDC(idx, sol, true)
	return b
}

func (m *Mosfet) StampGAC(idx *mna.IndexMap, sol mna.Solution, omega float64) []mna.ComplexTriplet {
	g, _ := m.stampDC(idx, sol, false)
	out := make([]mna.ComplexTriplet, len(g))
	for i, t := range g {
		out[i] = mna.ComplexTriplet{Row: t.Row, Col: t.Col, Value: complex(t.Value, 0)}
	}
	return out
}

func (m *Mosfet) StampBAC(idx *mna.IndexMap, sol mna.Solution, omega float64) []mna.ComplexTriplet {
	return nil
}

func (m *Mosfet) StampGTran(idx *mna.IndexMap, sol, prev mna.Solution, h float64) []mna.Triplet {
	return m.StampGDC(idx, sol)
}

func (m *Mosfet) StampBTran(idx *mna.IndexMap, sol, prev mna.Solution, h float64) []mna.Triplet {
	return m.StampBDC(idx, sol)
}
