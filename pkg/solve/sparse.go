// Package solve implements a thin build-from-triplets -> factor ->
// solve wrapper over github.com/edp1096/sparse.
package solve

import (
	"github.com/edp1096/sparse"
	"github.com/pkg/errors"

	"github.com/gospice/gospice/pkg/mna"
	"github.com/gospice/gospice/pkg/spiceerr"
)

// RealSolver factors and solves a real-valued system assembled from
// triplets, for OP, DC sweep, and transient analysis.
type RealSolver struct {
	size int
	mat  *sparse.Matrix
	rhs  []float64
}

func NewRealSolver(size int) (*RealSolver, error) {
	config := &sparse.Configuration{
		Real:           true,
		Expandable:     true,
		ModifiedNodal:  true,
		TiesMultiplier: 5,
	}
	mat, err := sparse.Create(int64(size), config)
	if err != nil {
		return nil, errors.Wrap(err, "solve: creating sparse matrix")
	}
	return &RealSolver{size: size, mat: mat, rhs: make([]float64, size+1)}, nil
}

// Load clears any prior contributions and loads g (coefficient
// triplets) and b (RHS triplets, column mna.ColRHS).
func (s *RealSolver) Load(g, b []mna.Triplet) {
	s.mat.Clear()
	for i := range s.rhs {
		s.rhs[i] = 0
	}
	for _, t := range g {
		s.mat.GetElement(int64(t.Row+1), int64(t.Col+1)).Real += t.Value
	}
	for _, t := range b {
		s.rhs[t.Row+1] += t.Value
	}
}

// Solve factors the loaded matrix and solves for x, returning a
// 0-indexed solution vector of length size.
func (s *RealSolver) Solve() ([]float64, error) {
	if err := s.mat.Factor(); err != nil {
		return nil, errors.Wrapf(spiceerr.ErrDecompositionFailed, "solve: %v", err)
	}
	sol, err := s.mat.Solve(s.rhs)
	if err != nil {
		return nil, errors.Wrapf(spiceerr.ErrDecompositionFailed, "solve: %v", err)
	}
	out := make([]float64, s.size)
	for i := 0; i < s.size; i++ {
		out[i] = sol[i+1]
	}
	return out, nil
}

// ComplexSolver is the AC analogue of RealSolver.
type ComplexSolver struct {
	size int
	mat  *sparse.Matrix
	rhs  []float64
	rhsI []float64
}

func NewComplexSolver(size int) (*ComplexSolver, error) {
	config := &sparse.Configuration{
		Real:                    true,
		Complex:                 true,
		SeparatedComplexVectors: true,
		Expandable:              true,
		ModifiedNodal:           true,
		TiesMultiplier:          5,
	}
	mat, err := sparse.Create(int64(size), config)
	if err != nil {
		return nil, errors.Wrap(err, "solve: creating complex sparse matrix")
	}
	return &ComplexSolver{
		size: size, mat: mat,
		rhs: make([]float64, size+1), rhsI: make([]float64, size+1),
	}, nil
}

func (s *ComplexSolver) Load(g, b []mna.ComplexTriplet) {
	s.mat.Clear()
	for i := range s.rhs {
		s.rhs[i] = 0
		s.rhsI[i] = 0
	}
	for _, t := range g {
		e := s.mat.GetElement(int64(t.Row+1), int64(t.Col+1))
		e.Real += real(t.Value)
		e.Imag += imag(t.Value)
	}
	for _, t := range b {
		s.rhs[t.Row+1] += real(t.Value)
		s.rhsI[t.Row+1] += imag(t.Value)
	}
}

func (s *ComplexSolver) Solve() ([]complex128, error) {
	if err := s.mat.Factor(); err != nil {
		return nil, errors.Wrapf(spiceerr.ErrDecompositionFailed, "solve: %v", err)
	}
	solR, solI, err := s.mat.SolveComplex(s.rhs, s.rhsI)
	if err != nil {
		return nil, errors.Wrapf(spiceerr.ErrDecompositionFailed, "solve: %v", err)
	}
	out := make([]complex128, s.size)
	for i := 0; i < s.size; i++ {
		out[i] = complex(solR[i+1], solI[i+1])
	}
	return out, nil
}
