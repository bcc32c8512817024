// Package stamp defines the contract every device implements to
// contribute to the MNA system: six operations covering the
// {DC, AC, Transient} x {conductance, excitation} product.
package stamp

import "github.com/gospice/gospice/pkg/mna"

// Stamper is implemented by every circuit element. Each method returns
// the triplets it contributes; ground-node rows/columns are simply
// never emitted (the only negative index in a triplet is
// mna.ColRHS, marking a right-hand-side entry).
type Stamper interface {
	// StampGDC returns the Jacobian of the KCL residual with respect to
	// the unknowns, evaluated at the current Newton-Raphson guess sol.
	StampGDC(idx *mna.IndexMap, sol mna.Solution) []mna.Triplet

	// StampBDC returns the residual-side (RHS) contribution at sol.
	StampBDC(idx *mna.IndexMap, sol mna.Solution) []mna.Triplet

	// StampGAC returns the complex admittance contribution linearized
	// at the DC bias point sol, for angular frequency omega.
	StampGAC(idx *mna.IndexMap, sol mna.Solution, omega float64) []mna.ComplexTriplet

	// StampBAC returns the complex phasor excitation at omega.
	StampBAC(idx *mna.IndexMap, sol mna.Solution, omega float64) []mna.ComplexTriplet

	// StampGTran returns the companion-model conductance for a
	// backward-Euler step of size h, given the previous time-step
	// solution prev.
	StampGTran(idx *mna.IndexMap, sol, prev mna.Solution, h float64) []mna.Triplet

	// StampBTran returns the companion-model equivalent source,
	// including any transient waveform value at the current time.
	StampBTran(idx *mna.IndexMap, sol, prev mna.Solution, h float64) []mna.Triplet
}

// Linear marks a device whose stamps never depend on sol, so the
// Newton-Raphson driver can skip it when deciding whether a circuit
// needs iteration at all.
type Linear interface {
	IsLinear() bool
}

// G1 returns the four-triplet admittance pattern for a conductance g
// between nodes p and m (either may be -1 for ground, per
// mna.IndexMap.VoltageIndex).
func G1(p, m int, g float64) []mna.Triplet {
	var out []mna.Triplet
	if p >= 0 {
		out = append(out, mna.Triplet{Row: p, Col: p, Value: g})
		if m >= 0 {
			out = append(out, mna.Triplet{Row: p, Col: m, Value: -g})
		}
	}
	if m >= 0 {
		if p >= 0 {
			out = append(out, mna.Triplet{Row: m, Col: p, Value: -g})
		}
		out = append(out, mna.Triplet{Row: m, Col: m, Value: g})
	}
	return out
}

// ComplexG1 is the AC analogue of G1.
func ComplexG1(p, m int, y complex128) []mna.ComplexTriplet {
	var out []mna.ComplexTriplet
	if p >= 0 {
		out = append(out, mna.ComplexTriplet{Row: p, Col: p, Value: y})
		if m >= 0 {
			out = append(out, mna.ComplexTriplet{Row: p, Col: m, Value: -y})
		}
	}
	if m >= 0 {
		if p >= 0 {
			out = append(out, mna.ComplexTriplet{Row: m, Col: p, Value: -y})
		}
		out = append(out, mna.ComplexTriplet{Row: m, Col: m, Value: y})
	}
	return out
}

// CurrentSourceStamp returns the KCL contribution of a current i
// flowing from node p to node m (no branch variable): out of p, into
// m. Used directly when a device folds its excitation into KCL rather
// than exposing a branch current.
func CurrentSourceStamp(p, m int, i float64) []mna.Triplet {
	var out []mna.Triplet
	if p >= 0 {
		out = append(out, mna.Triplet{Row: p, Col: mna.ColRHS, Value: -i})
	}
	if m >= 0 {
		out = append(out, mna.Triplet{Row: m, Col: mna.ColRHS, Value: i})
	}
	return out
}

// Branch2 returns the G2 stamp shared by V, L and R-with-branch:
// the branch row/column coupling a current unknown b to the two
// terminal voltages p and m, i.e. the off-diagonal +1/-1 pattern of
// V_p - V_m - (branch law) = 0.
func Branch2(p, m, b int) []mna.Triplet {
	var out []mna.Triplet
	if p >= 0 {
		out = append(out, mna.Triplet{Row: p, Col: b, Value: 1})
		out = append(out, mna.Triplet{Row: b, Col: p, Value: 1})
	}
	if m >= 0 {
		out = append(out, mna.Triplet{Row: m, Col: b, Value: -1})
		out = append(out, mna.Triplet{Row: b, Col: m, Value: -1})
	}
	return out
}

// ComplexBranch2 is the AC analogue of Branch2.
func ComplexBranch2(p, m, b int) []mna.ComplexTriplet {
	var out []mna.ComplexTriplet
	if p >= 0 {
		out = append(out, mna.ComplexTriplet{Row: p, Col: b, Value: 1})
		out = append(out, mna.ComplexTriplet{Row: b, Col: p, Value: 1})
	}
	if m >= 0 {
		out = append(out, mna.ComplexTriplet{Row: m, Col: b, Value: -1})
		out = append(out, mna.ComplexTriplet{Row: b, Col: m, Value: -1})
	}
	return out
}

// RHS returns a single RHS triplet for row, or nil if row is grounded.
func RHS(row int, value float64) []mna.Triplet {
	if row < 0 {
		return nil
	}
	return []mna.Triplet{{Row: row, Col: mna.ColRHS, Value: value}}
}

// ComplexRHS is the AC analogue of RHS.
func ComplexRHS(row int, value complex128) []mna.ComplexTriplet {
	if row < 0 {
		return nil
	}
	return []mna.ComplexTriplet{{Row: row, Col: mna.ColRHS, Value: value}}
}
