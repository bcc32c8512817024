package mna

import "gonum.org/v1/gonum/floats/scalar"

// Solution is a mapping unknown-name -> scalar value for DC/TRAN
// analyses. Time-indexed analyses additionally carry the synthetic
// "time" key.
type Solution map[string]float64

// ComplexSolution is the AC analogue, additionally carrying "frequency".
type ComplexSolution map[string]complex128

const (
	TimeKey      = "time"
	FrequencyKey = "frequency"
)

// Get returns the value for an Unknown, defaulting to 0 for an unknown
// not yet present (e.g. before the first NR iteration).
func (s Solution) Get(u Unknown) float64 {
	return s[u.String()]
}

func (s Solution) Set(u Unknown, v float64) {
	s[u.String()] = v
}

// Converged reports whether every shared unknown between a and b is within
// tolerance: V(.) unknowns use voltageAbsTol, I(.) unknowns use
// currentAbsTol, both OR'd with the relative tolerance. Keys outside that
// naming scheme (e.g. "time") are ignored.
func Converged(a, b Solution, relTol, voltageAbsTol, currentAbsTol float64) bool {
	for key, av := range a {
		bv, ok := b[key]
		if !ok {
			continue
		}
		absTol := voltageAbsTol
		if len(key) > 0 && key[0] == 'I' {
			absTol = currentAbsTol
		} else if len(key) == 0 || key[0] != 'V' {
			continue
		}
		if !scalar.EqualWithinAbsOrRel(av, bv, absTol, relTol) {
			return false
		}
	}
	return true
}
