package device

import (
	"github.com/gospice/gospice/pkg/mna"
	"github.com/gospice/gospice/pkg/stamp"
)

// CurrentSource is stamped in its observable-branch form:
// a branch current unknown is introduced even though the source value
// is fixed, so the delivered current is reportable like any other
// branch quantity.
type CurrentSource struct {
	Base
	Wave Waveform
}

func NewCurrentSource(name string, nodes []string, wave Waveform) *CurrentSource {
	return &CurrentSource{Base: Base{Name: name, Nodes: nodes}, Wave: wave}
}

func (i *CurrentSource) Kind() string   { return "I" }
func (i *CurrentSource) IsLinear() bool { return true }

func (i *CurrentSource) BranchUnknown() (mna.Unknown, bool) { return mna.Current(i.Name), true }

func (i *CurrentSource) topology(idx *mna.IndexMap) (p, m, b int) {
	p, m = i.voltageAt(idx, 0), i.voltageAt(idx, 1)
	b, _ = idx.Index(mna.Current(i.Name))
	return
}

// constraintStamp enforces G[b,b]=+1, G[p,b]=+1, G[m,b]=-1, i.e. the
// branch unknown is pinned to equal the source current, and that
// current is drawn out of p and delivered into m through the KCL rows.
func (i *CurrentSource) constraintStamp(idx *mna.IndexMap) []mna.Triplet {
	p, m, b := i.topology(idx)
	out := []mna.Triplet{{Row: b, Col: b, Value: 1}}
	if p >= 0 {
		out = append(out, mna.Triplet{Row: p, Col: b, Value: 1})
	}
	if m >= 0 {
		out = append(out, mna.Triplet{Row: m, Col: b, Value: -1})
	}
	return out
}

func (i *CurrentSource) complexConstraintStamp(idx *mna.IndexMap) []mna.ComplexTriplet {
	p, m, b := i.topology(idx)
	out := []mna.ComplexTriplet{{Row: b, Col: b, Value: 1}}
	if p >= 0 {
		out = append(out, mna.ComplexTriplet{Row: p, Col: b, Value: 1})
	}
	if m >= 0 {
		out = append(out, mna.ComplexTriplet{Row: m, Col: b, Value: -1})
	}
	return out
}

func (i *CurrentSource) StampGDC(idx *mna.IndexMap, sol mna.Solution) []mna.Triplet {
	return i.constraintStamp(idx)
}

func (i *CurrentSource) StampBDC(idx *mna.IndexMap, sol mna.Solution) []mna.Triplet {
	_, _, b := i.topology(idx)
	return stamp.RHS(b, i.Wave.DCValue)
}

func (i *CurrentSource) StampGAC(idx *mna.IndexMap, sol mna.Solution, omega float64) []mna.ComplexTriplet {
	return i.complexConstraintStamp(idx)
}

func (i *CurrentSource) StampBAC(idx *mna.IndexMap, sol mna.Solution, omega float64) []mna.ComplexTriplet {
	_, _, b := i.topology(idx)
	return stamp.ComplexRHS(b, i.Wave.ACPhasor())
}

func (i *CurrentSource) StampGTran(idx *mna.IndexMap, sol, prev mna.Solution, h float64) []mna.Triplet {
	return i.constraintStamp(idx)
}

func (i *CurrentSource) StampBTran(idx *mna.IndexMap, sol, prev mna.Solution, h float64) []mna.Triplet {
	_, _, b := i.topology(idx)
	t := sol[mna.TimeKey]
	return stamp.RHS(b, i.Wave.At(t))
}
