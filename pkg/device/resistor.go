package device

import (
	"github.com/gospice/gospice/pkg/mna"
	"github.com/gospice/gospice/pkg/stamp"
)

// Resistor can stamp in either G1 or G2 form. When G2 is true it exposes its
// current as a branch unknown (V_p - V_m - r*I = 0) instead of
// stamping conductance directly; otherwise it stamps the G1 admittance
// form.
type Resistor struct {
	Base
	Ohms float64
	G2   bool
}

func NewResistor(name string, nodes []string, ohms float64, g2 bool) *Resistor {
	return &Resistor{Base: Base{Name: name, Nodes: nodes}, Ohms: ohms, G2: g2}
}

func (r *Resistor) Kind() string  { return "R" }
func (r *Resistor) IsLinear() bool { return true }

func (r *Resistor) BranchUnknown() (mna.Unknown, bool) {
	if !r.G2 {
		return mna.Unknown{}, false
	}
	return mna.Current(r.Name), true
}

func (r *Resistor) conductanceStamp(idx *mna.IndexMap) []mna.Triplet {
	p, m := r.voltageAt(idx, 0), r.voltageAt(idx, 1)
	if !r.G2 {
		return stamp.G1(p, m, 1.0/r.Ohms)
	}
	b, _ := idx.Index(mna.Current(r.Name))
	out := stamp.Branch2(p, m, b)
	out = append(out, mna.Triplet{Row: b, Col: b, Value: -r.Ohms})
	return out
}

func (r *Resistor) StampGDC(idx *mna.IndexMap, sol mna.Solution) []mna.Triplet {
	return r.conductanceStamp(idx)
}

func (r *Resistor) StampBDC(idx *mna.IndexMap, sol mna.Solution) []mna.Triplet {
	return nil
}

func (r *Resistor) StampGAC(idx *mna.IndexMap, sol mna.Solution, omega float64) []mna.ComplexTriplet {
	p, m := r.voltageAt(idx, 0), r.voltageAt(idx, 1)
	if !r.G2 {
		return stamp.ComplexG1(p, m, complex(1.0/r.Ohms, 0))
	}
	b, _ := idx.Index(mna.Current(r.Name))
	out := stamp.ComplexBranch2(p, m, b)
	out = append(out, mna.ComplexTriplet{Row: b, Col: b, Value: complex(-r.Ohms, 0)})
	return out
}

func (r *Resistor) StampBAC(idx *mna.IndexMap, sol mna.Solution, omega float64) []mna.ComplexTriplet {
	return nil
}

func (r *Resistor) StampGTran(idx *mna.IndexMap, sol, prev mna.Solution, h float64) []mna.Triplet {
	return r.conductanceStamp(idx)
}

func (r *Resistor) StampBTran(idx *mna.IndexMap, sol, prev mna.Solution, h float64) []mna.Triplet {
	return nil
}
