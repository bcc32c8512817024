package analysis

import (
	"math"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/gospice/gospice/pkg/circuit"
	"github.com/gospice/gospice/pkg/config"
	"github.com/gospice/gospice/pkg/mna"
	"github.com/gospice/gospice/pkg/solve"
)

// ACPoint is one frequency's complex solution.
type ACPoint struct {
	Frequency float64
	Solution  mna.ComplexSolution
}

// AC runs one DC operating point, linearizing
// nonlinear devices around that bias, then a direct complex solve per
// requested frequency (no Newton iteration -- AC is linear by
// construction around the fixed bias point).
type AC struct {
	options
	Circuit     *circuit.Circuit
	Frequencies []float64
	Points      []ACPoint
}

// NewAC builds a logarithmically (decade) spaced frequency list from
// fStart to fStop with pointsPerDecade points, the classic SPICE "DEC"
// sweep shape.
func NewAC(ckt *circuit.Circuit, fStart, fStop float64, pointsPerDecade int, cfg config.Solver, log *logrus.Entry) *AC {
	return &AC{options: newOptions(cfg, log), Circuit: ckt, Frequencies: decadeSweep(fStart, fStop, pointsPerDecade)}
}

func decadeSweep(fStart, fStop float64, pointsPerDecade int) []float64 {
	if fStart <= 0 || fStop <= fStart || pointsPerDecade <= 0 {
		return []float64{fStart}
	}
	decades := math.Log10(fStop / fStart)
	n := int(decades*float64(pointsPerDecade)) + 1
	out := make([]float64, 0, n+1)
	logStep := decades / float64(n)
	for i := 0; i <= n; i++ {
		out = append(out, fStart*math.Pow(10, float64(i)*logStep))
	}
	return out
}

func (ac *AC) Run() error {
	op := NewOP(ac.Circuit, ac.cfg, ac.log)
	if err := op.Run(); err != nil {
		return errors.Wrap(err, "ac: computing dc bias point")
	}

	solver, err := solve.NewComplexSolver(ac.Circuit.Size())
	if err != nil {
		return errors.Wrap(err, "ac: allocating solver")
	}

	for _, freq := range ac.Frequencies {
		omega := 2 * math.Pi * freq
		g, b := ac.Circuit.StampAC(op.Solution, omega)
		solver.Load(g, b)
		x, err := solver.Solve()
		if err != nil {
			return errors.Wrapf(err, "ac: f=%g", freq)
		}
		ac.Points = append(ac.Points, ACPoint{Frequency: freq, Solution: ac.Circuit.ComplexSolution(x, freq)})
	}
	return nil
}
