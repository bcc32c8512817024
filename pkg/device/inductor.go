package device

import (
	"github.com/gospice/gospice/pkg/mna"
	"github.com/gospice/gospice/pkg/stamp"
)

// Inductor implements short circuit in branch-current
// form at DC, jωL added to the branch equation at AC, and a
// backward-Euler companion model (-L/h) in transient analysis.
type Inductor struct {
	Base
	Henries float64
}

func NewInductor(name string, nodes []string, henries float64) *Inductor {
	return &Inductor{Base: Base{Name: name, Nodes: nodes}, Henries: henries}
}

func (l *Inductor) Kind() string   { return "L" }
func (l *Inductor) IsLinear() bool { return true }

func (l *Inductor) BranchUnknown() (mna.Unknown, bool) { return mna.Current(l.Name), true }

func (l *Inductor) topology(idx *mna.IndexMap) (p, m, b int) {
	p, m = l.voltageAt(idx, 0), l.voltageAt(idx, 1)
	b, _ = idx.Index(mna.Current(l.Name))
	return
}

func (l *Inductor) StampGDC(idx *mna.IndexMap, sol mna.Solution) []mna.Triplet {
	p, m, b := l.topology(idx)
	return stamp.Branch2(p, m, b)
}

func (l *Inductor) StampBDC(idx *mna.IndexMap, sol mna.Solution) []mna.Triplet { return nil }

func (l *Inductor) StampGAC(idx *mna.IndexMap, sol mna.Solution, omega float64) []mna.ComplexTriplet {
	p, m, b := l.topology(idx)
	out := stamp.ComplexBranch2(p, m, b)
	out = append(out, mna.ComplexTriplet{Row: b, Col: b, Value: complex(0, -omega*l.Henries)})
	return out
}

func (l *Inductor) StampBAC(idx *mna.IndexMap, sol mna.Solution, omega float64) []mna.ComplexTriplet {
	return nil
}

func (l *Inductor) StampGTran(idx *mna.IndexMap, sol, prev mna.Solution, h float64) []mna.Triplet {
	p, m, b := l.topology(idx)
	out := stamp.Branch2(p, m, b)
	out = append(out, mna.Triplet{Row: b, Col: b, Value: -l.Henries / h})
	return out
}

func (l *Inductor) StampBTran(idx *mna.IndexMap, sol, prev mna.Solution, h float64) []mna.Triplet {
	_, _, b := l.topology(idx)
	iPrev := prev.Get(mna.Current(l.Name))
	return stamp.RHS(b, -(l.Henries/h)*iPrev)
}
