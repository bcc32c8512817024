// Package format renders engineering-notation strings for diagnostic
// logging: magnitude/phase pairs for AC points, frequencies in Hz/kHz/MHz.
package format

import "fmt"

// Magnitude renders value the way a bench meter would: scientific
// notation outside [1m, 1k), fixed-point inside it.
func Magnitude(value float64) string {
	if value >= 1000 || (value < 0.001 && value != 0) {
		return fmt.Sprintf("%8.2e", value)
	}
	return fmt.Sprintf("%8.3g", value)
}

// Phase renders a phase angle in degrees to one decimal place.
func Phase(degrees float64) string {
	return fmt.Sprintf("%6.1f", degrees)
}

// MagnitudePhase renders "name=mag<phasedeg" for a log line summarizing
// one AC point.
func MagnitudePhase(name string, magnitude, phaseDeg float64) string {
	return fmt.Sprintf("%s=%s<%sdeg", name, Magnitude(magnitude), Phase(phaseDeg))
}

// Frequency renders freq in Hz, kHz, or MHz depending on magnitude.
func Frequency(freq float64) string {
	switch {
	case freq >= 1e6:
		return fmt.Sprintf("%7.3f MHz", freq/1e6)
	case freq >= 1e3:
		return fmt.Sprintf("%7.3f kHz", freq/1e3)
	default:
		return fmt.Sprintf("%7.3f Hz ", freq)
	}
}
