package analysis

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/gospice/gospice/pkg/circuit"
	"github.com/gospice/gospice/pkg/config"
	"github.com/gospice/gospice/pkg/mna"
	"github.com/gospice/gospice/pkg/newton"
)

// Transient implements an initial OP at t=0, then N fixed
// backward-Euler steps of size Step, each warm-started from the
// previous step's solution. Adaptive step-size control is explicitly
// out of scope; Step is constant for the whole run.
type Transient struct {
	options
	Circuit   *circuit.Circuit
	StopTime  float64
	Step      float64
	Solutions []mna.Solution
}

func NewTransient(ckt *circuit.Circuit, stopTime, step float64, cfg config.Solver, log *logrus.Entry) *Transient {
	return &Transient{options: newOptions(cfg, log), Circuit: ckt, StopTime: stopTime, Step: step}
}

func (t *Transient) Run() error {
	op := NewOP(t.Circuit, t.cfg, t.log)
	if err := op.Run(); err != nil {
		return errors.Wrap(err, "tran: computing initial operating point")
	}
	initial := op.Solution
	initial[mna.TimeKey] = 0.0
	t.Solutions = append(t.Solutions, initial)

	n := int(t.StopTime/t.Step + 0.5)
	prev := initial
	for k := 1; k <= n; k++ {
		time := float64(k) * t.Step

		seed := mna.Solution{}
		for key, v := range prev {
			seed[key] = v
		}
		seed[mna.TimeKey] = time

		sol, err := newton.Solve(t.Circuit, newton.TranStepper(t.Circuit, prev, t.Step), t.cfg, seed)
		if err != nil {
			sol, err = newton.SolveWithGminStepping(t.Circuit, newton.TranStepper(t.Circuit, prev, t.Step), t.cfg, t.log)
			if err != nil {
				return errors.Wrapf(err, "tran: step %d (t=%g)", k, time)
			}
		}
		sol[mna.TimeKey] = time
		t.Solutions = append(t.Solutions, sol)
		prev = sol
	}
	return nil
}
