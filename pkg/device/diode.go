package device

import (
	"math"

	"github.com/gospice/gospice/internal/consts"
	"github.com/gospice/gospice/pkg/mna"
	"github.com/gospice/gospice/pkg/stamp"
)

// Diode implements the Shockley equation linearized at
// the current Newton-Raphson guess, with voltage limiting against
// exponential overflow.
type Diode struct {
	Base
	noBranch
	Is   float64
	N    float64
	Temp float64

	prevVd float64
}

func NewDiode(name string, nodes []string, is, n float64) *Diode {
	return &Diode{Base: Base{Name: name, Nodes: nodes}, Is: is, N: n, Temp: consts.RoomTemp}
}

func (d *Diode) Kind() string   { return "D" }
func (d *Diode) IsLinear() bool { return false }

// linearize returns the companion (Id, Gd) pair for a clamped
// junction voltage vd.
func (d *Diode) linearize(vd float64) (id, gd float64) {
	vt := thermalVoltage(d.Temp)
	arg := vd / (d.N * vt)
	if arg > 80 {
		arg = 80 // exp(80) safely below math.MaxFloat64, vd was already clamped below
	}
	exp := math.Exp(arg)
	id = d.Is * (exp - 1)
	gd = (d.Is / (d.N * vt)) * exp
	return
}

// junctionVoltage resolves V_d from sol, defaulting to 0.5V to seed
// forward conduction when the node has no prior guess (first NR
// iteration).
func (d *Diode) junctionVoltage(sol mna.Solution) float64 {
	vt := thermalVoltage(d.Temp)
	vd := nodeVoltage(sol, d.Nodes[0]) - nodeVoltage(sol, d.Nodes[1])
	if vd == 0 {
		vd = 0.5
	}
	return stamp.LimitVoltage(vd, d.prevVd, d.N, vt, d.Is)
}

func (d *Diode) StampGDC(idx *mna.IndexMap, sol mna.Solution) []mna.Triplet {
	vd := d.junctionVoltage(sol)
	d.prevVd = vd
	_, gd := d.linearize(vd)
	p, m := d.voltageAt(idx, 0), d.voltageAt(idx, 1)
	return stamp.G1(p, m, gd)
}

func (d *Diode) StampBDC(idx *mna.IndexMap, sol mna.Solution) []mna.Triplet {
	vd := d.junctionVoltage(sol)
	id, gd := d.linearize(vd)
	ieq := id - gd*vd

	p, m := d.voltageAt(idx, 0), d.voltageAt(idx, 1)
	var out []mna.Triplet
	if p >= 0 {
		out = append(out, mna.Triplet{Row: p, Col: mna.ColRHS, Value: -ieq})
	}
	if m >= 0 {
		out = append(out, mna.Triplet{Row: m, Col: mna.ColRHS, Value: ieq})
	}
	return out
}

func (d *Diode) StampGAC(idx *mna.IndexMap, sol mna.Solution, omega float64) []mna.ComplexTriplet {
	_, gd := d.linearize(d.junctionVoltage(sol))
	p, m := d.voltageAt(idx, 0), d.voltageAt(idx, 1)
	return stamp.ComplexG1(p, m, complex(gd, 0))
}

func (d *Diode) StampBAC(idx *mna.IndexMap, sol mna.Solution, omega float64) []mna.ComplexTriplet {
	return nil
}

func (d *Diode) StampGTran(idx *mna.IndexMap, sol, prev mna.Solution, h float64) []mna.Triplet {
	return d.StampGDC(idx, sol)
}

func (d *Diode) StampBTran(idx *mna.IndexMap, sol, prev mna.Solution, h float64) []mna.Triplet {
	return d.StampBDC(idx, sol)
}
