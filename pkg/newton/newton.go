// Package newton implements the Newton-Raphson driver: iterate
// stamp -> assemble -> solve -> update until convergence,
// falling back to gmin stepping when a nonlinear circuit's initial
// guess doesn't converge directly.
package newton

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/gospice/gospice/pkg/circuit"
	"github.com/gospice/gospice/pkg/config"
	"github.com/gospice/gospice/pkg/mna"
	"github.com/gospice/gospice/pkg/solve"
	"github.com/gospice/gospice/pkg/spiceerr"
)

// Stepper assembles the DC-like stamps for a given guess; OP, DC
// sweep, and each transient time point all drive the same Newton loop
// through this narrow interface, differing only in what "DC" stamps
// mean for that analysis (plain DC vs. backward-Euler companion).
type Stepper interface {
	Stamp(sol mna.Solution) (g, b []mna.Triplet)
}

type dcStepper struct{ ckt *circuit.Circuit }

func (s dcStepper) Stamp(sol mna.Solution) (g, b []mna.Triplet) { return s.ckt.StampDC(sol) }

// DCStepper adapts a circuit's plain DC stamps to the Stepper
// interface, for OP and DC-sweep analysis.
func DCStepper(ckt *circuit.Circuit) Stepper { return dcStepper{ckt: ckt} }

type tranStepper struct {
	ckt  *circuit.Circuit
	prev mna.Solution
	h    float64
}

func (s tranStepper) Stamp(sol mna.Solution) (g, b []mna.Triplet) {
	return s.ckt.StampTran(sol, s.prev, s.h)
}

// TranStepper adapts a circuit's companion-model stamps at time step h
// from prev to the Stepper interface, for transient analysis.
func TranStepper(ckt *circuit.Circuit, prev mna.Solution, h float64) Stepper {
	return tranStepper{ckt: ckt, prev: prev, h: h}
}

// Solve runs the Newton-Raphson iteration to convergence. seed pre-populates x_prev
// (e.g. the previous time point's solution, for transient warm-start);
// pass nil/empty to start from the all-zero guess.
func Solve(ckt *circuit.Circuit, step Stepper, cfg config.Solver, seed mna.Solution) (mna.Solution, error) {
	xPrev := mna.Solution{}
	for k, v := range seed {
		xPrev[k] = v
	}

	solver, err := solve.NewRealSolver(ckt.Size())
	if err != nil {
		return nil, errors.Wrap(err, "newton: allocating solver")
	}

	linear := !ckt.HasNonlinearDevices()

	for iter := 0; iter < cfg.MaximumIterations; iter++ {
		g, b := step.Stamp(xPrev)
		solver.Load(g, b)
		x, err := solver.Solve()
		if err != nil {
			return nil, errors.Wrapf(err, "newton: iteration %d", iter)
		}
		xCurr := ckt.Solution(x)
		if t, ok := xPrev[mna.TimeKey]; ok {
			xCurr[mna.TimeKey] = t
		}

		if linear {
			return xCurr, nil
		}
		if iter > 0 && mna.Converged(xCurr, xPrev, cfg.RelativeTolerance, cfg.VoltageAbsoluteTolerance, cfg.CurrentAbsoluteTolerance) {
			return xCurr, nil
		}
		xPrev = xCurr
	}

	return nil, errors.Wrapf(spiceerr.ErrMaximumIterationsExceeded, "newton: no convergence in %d iterations", cfg.MaximumIterations)
}

// SolveWithGminStepping is the fallback path for stiff nonlinear
// circuits: ramp a parallel
// conductance from a large value down to zero, using each converged
// solution as the next step's seed, so a difficult operating point is
// reached through a sequence of easier ones rather than in a single
// Newton loop from a cold start. This wraps the same per-iteration
// stamp -> assemble -> solve -> update loop in Solve; it does not add
// a new per-iteration Jacobian term.
func SolveWithGminStepping(ckt *circuit.Circuit, step Stepper, cfg config.Solver, log *logrus.Entry) (mna.Solution, error) {
	sol, err := Solve(ckt, step, cfg, nil)
	if err == nil {
		return sol, nil
	}
	if !errors.Is(err, spiceerr.ErrMaximumIterationsExceeded) {
		return nil, err
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	log.Warn("direct Newton-Raphson failed to converge, falling back to gmin stepping")

	seed := mna.Solution{}
	gminSteps := []float64{1e-3, 1e-6, 1e-9, 1e-12}
	for _, gmin := range gminSteps {
		gsol, gerr := solveWithShuntConductance(ckt, step, cfg, seed, gmin)
		if gerr != nil {
			return nil, errors.Wrapf(gerr, "newton: gmin stepping failed at gmin=%g", gmin)
		}
		seed = gsol
	}
	return seed, nil
}

// solveWithShuntConductance runs Solve after adding gmin in parallel
// across every node to ground, improving conditioning for a first
// pass, then re-solves at gmin=0 (the user's requested accuracy)
// seeded from that easier solution.
func solveWithShuntConductance(ckt *circuit.Circuit, step Stepper, cfg config.Solver, seed mna.Solution, gmin float64) (mna.Solution, error) {
	shunted := shuntStepper{inner: step, ckt: ckt, gmin: gmin}
	sol, err := Solve(ckt, shunted, cfg, seed)
	if err != nil {
		return nil, err
	}
	return Solve(ckt, step, cfg, sol)
}

type shuntStepper struct {
	inner Stepper
	ckt   *circuit.Circuit
	gmin  float64
}

func (s shuntStepper) Stamp(sol mna.Solution) (g, b []mna.Triplet) {
	g, b = s.inner.Stamp(sol)
	for _, u := range s.ckt.Index.Unknowns() {
		if u.Kind != mna.NodeVoltage {
			continue
		}
		i, _ := s.ckt.Index.Index(u)
		g = append(g, mna.Triplet{Row: i, Col: i, Value: s.gmin})
	}
	return g, b
}
