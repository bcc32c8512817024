package analysis

import (
	"math"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/gospice/gospice/pkg/circuit"
	"github.com/gospice/gospice/pkg/config"
	"github.com/gospice/gospice/pkg/device"
	"github.com/gospice/gospice/pkg/mna"
	"github.com/gospice/gospice/pkg/newton"
	"github.com/gospice/gospice/pkg/spiceerr"
)

// DCSweep sweeps an independent source's value
// over [Start, Stop] in Step increments, warm-starting each step's OP
// solve from the previous step's solution.
type DCSweep struct {
	options
	Circuit  *circuit.Circuit
	Source   string
	Start    float64
	Stop     float64
	Step     float64
	Solutions []mna.Solution
}

func NewDCSweep(ckt *circuit.Circuit, source string, start, stop, step float64, cfg config.Solver, log *logrus.Entry) *DCSweep {
	return &DCSweep{options: newOptions(cfg, log), Circuit: ckt, Source: source, Start: start, Stop: stop, Step: step}
}

// sweepableValue abstracts the settable DC value shared by
// VoltageSource and CurrentSource, the only legal sweep targets.
type sweepableValue interface {
	DCValue() float64
	SetDCValue(float64)
}

func (d *DCSweep) findSource() (sweepableValue, error) {
	for _, dev := range d.Circuit.Devices {
		if dev.ID() != d.Source {
			continue
		}
		switch v := dev.(type) {
		case *device.VoltageSource:
			return voltageSourceValue{v}, nil
		case *device.CurrentSource:
			return currentSourceValue{v}, nil
		default:
			return nil, errors.Wrapf(spiceerr.ErrInvalidElementFormat, "dc sweep: element %q is a %s, not an independent source", d.Source, dev.Kind())
		}
	}
	return nil, errors.Wrapf(spiceerr.ErrElementNotFound, "dc sweep: element %q not found", d.Source)
}

func (d *DCSweep) Run() error {
	src, err := d.findSource()
	if err != nil {
		return err
	}
	original := src.DCValue()
	defer src.SetDCValue(original)

	// number of steps is floor(|stop-start|/step)+1, computed
	// as an integer to avoid floating-point rounding accumulation.
	n := int(math.Floor(math.Abs(d.Stop-d.Start) / d.Step))

	var seed mna.Solution
	for k := 0; k <= n; k++ {
		src.SetDCValue(d.Start + float64(k)*d.Step)

		sol, err := newton.Solve(d.Circuit, newton.DCStepper(d.Circuit), d.cfg, seed)
		if err != nil {
			sol, err = newtonWithGminFallback(d, seed)
			if err != nil {
				return errors.Wrapf(err, "dc sweep: step %d", k)
			}
		}
		d.Solutions = append(d.Solutions, sol)
		seed = sol
	}
	return nil
}

func newtonWithGminFallback(d *DCSweep, seed mna.Solution) (mna.Solution, error) {
	return newton.SolveWithGminStepping(d.Circuit, newton.DCStepper(d.Circuit), d.cfg, d.log)
}

type voltageSourceValue struct{ v *device.VoltageSource }

func (s voltageSourceValue) DCValue() float64      { return s.v.Wave.DCValue }
func (s voltageSourceValue) SetDCValue(x float64)  { s.v.Wave.DCValue = x }

type currentSourceValue struct{ v *device.CurrentSource }

func (s currentSourceValue) DCValue() float64     { return s.v.Wave.DCValue }
func (s currentSourceValue) SetDCValue(x float64) { s.v.Wave.DCValue = x }
