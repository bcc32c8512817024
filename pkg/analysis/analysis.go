// Package analysis implements the four analysis drivers (OP, DC
// sweep, AC, TRAN), each orchestrating the Newton-Raphson driver
// (pkg/newton) and the sparse solver (pkg/solve) around a circuit.
package analysis

import (
	"github.com/sirupsen/logrus"

	"github.com/gospice/gospice/pkg/config"
)

// Engine is the shared shape of the four analysis drivers: configured
// once, run once, producing whatever result type is natural for that
// analysis (OP: a single mna.Solution; DC/TRAN: a slice; AC: a
// frequency-indexed slice of complex solutions).
type Engine interface {
	Run() error
}

// options bundles the pieces every engine needs: solver tolerances and
// a logger. Each concrete engine embeds this rather than repeating the
// fields.
type options struct {
	cfg config.Solver
	log *logrus.Entry
}

func newOptions(cfg config.Solver, log *logrus.Entry) options {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return options{cfg: cfg, log: log}
}
