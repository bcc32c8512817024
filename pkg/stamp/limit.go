package stamp

import "math"

// CriticalVoltage returns the junction voltage V_c above which the
// Shockley exponential would overflow a float64:
// V_c = N*Vt*ln(maxFloat*N*Vt/Is).
func CriticalVoltage(n, vt, is float64) float64 {
	if is <= 0 {
		is = 1e-16
	}
	return n * vt * math.Log(math.MaxFloat64*n*vt/is)
}

// LimitVoltage clamps a prospective junction voltage vNew to
// CriticalVoltage given the previous iterate vOld, damping the step so
// the Shockley exponential never overflows mid-iteration. This is a
// numerical safeguard only: it never changes the converged solution,
// only the path the Newton-Raphson iteration takes to it.
func LimitVoltage(vNew, vOld, n, vt, is float64) float64 {
	vc := CriticalVoltage(n, vt, is)
	if vNew > vc && math.Abs(vNew-vOld) > 2*vt {
		if vOld > 0 {
			arg := (vNew - vOld) / vt
			if arg > 0 {
				return vOld + vt*math.Log1p(arg)
			}
		}
		return vc
	}
	return vNew
}
