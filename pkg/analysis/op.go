package analysis

import (
	"github.com/sirupsen/logrus"

	"github.com/gospice/gospice/pkg/circuit"
	"github.com/gospice/gospice/pkg/config"
	"github.com/gospice/gospice/pkg/mna"
	"github.com/gospice/gospice/pkg/newton"
)

// OP runs the Newton-Raphson driver once
// against the plain DC stamps (capacitors' DC stamps are already an
// open circuit so no separate element filtering is
// needed here beyond what each device's own StampGDC/StampBDC does).
type OP struct {
	options
	Circuit  *circuit.Circuit
	Solution mna.Solution
}

func NewOP(ckt *circuit.Circuit, cfg config.Solver, log *logrus.Entry) *OP {
	return &OP{options: newOptions(cfg, log), Circuit: ckt}
}

func (op *OP) Run() error {
	sol, err := newton.SolveWithGminStepping(op.Circuit, newton.DCStepper(op.Circuit), op.cfg, op.log)
	if err != nil {
		return err
	}
	op.Solution = sol
	return nil
}
