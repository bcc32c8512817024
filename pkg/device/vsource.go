package device

import (
	"github.com/gospice/gospice/pkg/mna"
	"github.com/gospice/gospice/pkg/stamp"
)

// VoltageSource is always a G2 element, enforcing
// V_p - V_m = source_value(analysis, t).
type VoltageSource struct {
	Base
	Wave Waveform
}

func NewVoltageSource(name string, nodes []string, wave Waveform) *VoltageSource {
	return &VoltageSource{Base: Base{Name: name, Nodes: nodes}, Wave: wave}
}

func (v *VoltageSource) Kind() string   { return "V" }
func (v *VoltageSource) IsLinear() bool { return true }

func (v *VoltageSource) BranchUnknown() (mna.Unknown, bool) { return mna.Current(v.Name), true }

func (v *VoltageSource) topology(idx *mna.IndexMap) (p, m, b int) {
	p, m = v.voltageAt(idx, 0), v.voltageAt(idx, 1)
	b, _ = idx.Index(mna.Current(v.Name))
	return
}

func (v *VoltageSource) StampGDC(idx *mna.IndexMap, sol mna.Solution) []mna.Triplet {
	p, m, b := v.topology(idx)
	return stamp.Branch2(p, m, b)
}

func (v *VoltageSource) StampBDC(idx *mna.IndexMap, sol mna.Solution) []mna.Triplet {
	_, _, b := v.topology(idx)
	return stamp.RHS(b, v.Wave.DCValue)
}

func (v *VoltageSource) StampGAC(idx *mna.IndexMap, sol mna.Solution, omega float64) []mna.ComplexTriplet {
	p, m, b := v.topology(idx)
	return stamp.ComplexBranch2(p, m, b)
}

func (v *VoltageSource) StampBAC(idx *mna.IndexMap, sol mna.Solution, omega float64) []mna.ComplexTriplet {
	_, _, b := v.topology(idx)
	return stamp.ComplexRHS(b, v.Wave.ACPhasor())
}

func (v *VoltageSource) StampGTran(idx *mna.IndexMap, sol, prev mna.Solution, h float64) []mna.Triplet {
	p, m, b := v.topology(idx)
	return stamp.Branch2(p, m, b)
}

func (v *VoltageSource) StampBTran(idx *mna.IndexMap, sol, prev mna.Solution, h float64) []mna.Triplet {
	_, _, b := v.topology(idx)
	t := sol[mna.TimeKey]
	return stamp.RHS(b, v.Wave.At(t))
}
