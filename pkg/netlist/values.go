package netlist

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/gospice/gospice/pkg/spiceerr"
)

var magnitudeSuffix = map[string]float64{
	"t":   1e12,
	"g":   1e9,
	"meg": 1e6,
	"k":   1e3,
	"m":   1e-3,
	"u":   1e-6,
	"n":   1e-9,
	"p":   1e-12,
	"f":   1e-15,
}

var valuePattern = regexp.MustCompile(`(?i)^([-+]?\d*\.?\d+(?:[eE][-+]?\d+)?)(meg|[tgkmunpf])?$`)

// ParseValue parses a SPICE numeric literal with an optional magnitude
// suffix (f p n u m k meg g t, case-insensitive).
func ParseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	m := valuePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, errors.Wrapf(spiceerr.ErrInvalidFormat, "value %q", s)
	}
	num, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, errors.Wrapf(spiceerr.ErrInvalidFormat, "value %q: %v", s, err)
	}
	if m[2] != "" {
		num *= magnitudeSuffix[strings.ToLower(m[2])]
	}
	return num, nil
}
