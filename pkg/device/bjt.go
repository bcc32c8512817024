package device

import (
	"github.com/gospice/gospice/pkg/mna"
	"github.com/gospice/gospice/pkg/spiceerr"
)

// BJT is a stub: it parses into a typed element so a netlist
// mentioning Q devices doesn't fail at parse time, but any analysis
// that reaches it rejects the circuit. A full Gummel-Poon model is out
// of scope here; see DESIGN.md.
type BJT struct {
	Base
	noBranch
}

func NewBJT(name string, nodes []string) *BJT {
	return &BJT{Base: Base{Name: name, Nodes: nodes}}
}

func (q *BJT) Kind() string   { return "Q" }
func (q *BJT) IsLinear() bool { return false }

func (q *BJT) unsupported() error {
	return spiceerr.Newf(spiceerr.InvalidElementFormat, "BJT %q is not supported: multi-terminal BJT modeling is out of scope", q.Name)
}

func (q *BJT) StampGDC(idx *mna.IndexMap, sol mna.Solution) []mna.Triplet { panic(q.unsupported()) }
func (q *BJT) StampBDC(idx *mna.IndexMap, sol mna.Solution) []mna.Triplet { panic(q.unsupported()) }

func (q *BJT) StampGAC(idx *mna.IndexMap, sol mna.Solution, omega float64) []mna.ComplexTriplet {
	panic(q.unsupported())
}

func (q *BJT) StampBAC(idx *mna.IndexMap, sol mna.Solution, omega float64) []mna.ComplexTriplet {
	panic(q.unsupported())
}

func (q *BJT) StampGTran(idx *mna.IndexMap, sol, prev mna.Solution, h float64) []mna.Triplet {
	panic(q.unsupported())
}

func (q *BJT) StampBTran(idx *mna.IndexMap, sol, prev mna.Solution, h float64) []mna.Triplet {
	panic(q.unsupported())
}
