package netlist

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/gospice/gospice/pkg/device"
	"github.com/gospice/gospice/pkg/spiceerr"
)

// BuildDevices resolves every parsed Element into a device.Device,
// looking up .model references for D and M elements.
func (n *Netlist) BuildDevices() ([]device.Device, error) {
	devices := make([]device.Device, 0, len(n.Elements))
	for _, elem := range n.Elements {
		d, err := n.buildDevice(elem)
		if err != nil {
			return nil, err
		}
		devices = append(devices, d)
	}
	return devices, nil
}

func (n *Netlist) buildDevice(elem Element) (device.Device, error) {
	switch elem.Type {
	case "R":
		return device.NewResistor(elem.Name, elem.Nodes, elem.Value, elem.G2), nil
	case "C":
		return device.NewCapacitor(elem.Name, elem.Nodes, elem.Value), nil
	case "L":
		return device.NewInductor(elem.Name, elem.Nodes, elem.Value), nil
	case "V":
		wave, err := buildWaveform(elem)
		if err != nil {
			return nil, err
		}
		return device.NewVoltageSource(elem.Name, elem.Nodes, wave), nil
	case "I":
		wave, err := buildWaveform(elem)
		if err != nil {
			return nil, err
		}
		return device.NewCurrentSource(elem.Name, elem.Nodes, wave), nil
	case "D":
		model, ok := n.Models[strings.ToLower(elem.Model)]
		is, nn := 1e-14, 1.0
		if ok {
			if v, ok := model.Params["IS"]; ok {
				is = v
			}
			if v, ok := model.Params["N"]; ok {
				nn = v
			}
		}
		return device.NewDiode(elem.Name, elem.Nodes, is, nn), nil
	case "M":
		return n.buildMosfet(elem)
	case "Q":
		return device.NewBJT(elem.Name, elem.Nodes), nil
	default:
		return nil, errors.Wrapf(spiceerr.ErrInvalidElementFormat, "unknown element type %q (%s)", elem.Type, elem.Name)
	}
}

func (n *Netlist) buildMosfet(elem Element) (device.Device, error) {
	vto, kp, lambda := 1.0, 2e-5, 0.0
	if model, ok := n.Models[strings.ToLower(elem.Model)]; ok {
		if v, ok := model.Params["VTO"]; ok {
			vto = v
		}
		if v, ok := model.Params["KP"]; ok {
			kp = v
		}
		if v, ok := model.Params["LAMBDA"]; ok {
			lambda = v
		}
	}
	w, l, mult := 1e-4, 1e-4, 1.0
	if v, ok := elem.Params["W"]; ok {
		if pv, err := ParseValue(v); err == nil {
			w = pv
		}
	}
	if v, ok := elem.Params["L"]; ok {
		if pv, err := ParseValue(v); err == nil {
			l = pv
		}
	}
	if v, ok := elem.Params["M"]; ok {
		if pv, err := strconv.ParseFloat(v, 64); err == nil {
			mult = pv
		}
	}
	// M<N|P><n> d g s b <model> -- the bulk terminal is dropped; the
	// Mosfet model ties bulk to source as is conventional for discrete
	// devices (see DESIGN.md).
	nodes := elem.Nodes[:3]
	return device.NewMosfet(elem.Name, nodes, vto, kp*mult, w, l, lambda), nil
}

func buildWaveform(elem Element) (device.Waveform, error) {
	kind := elem.Params["type"]
	w := device.Waveform{Kind: device.DC, DCValue: elem.Value}

	switch kind {
	case "sin":
		w.Kind = device.SIN
		args := strings.Fields(elem.Params["args"])
		vals, err := parseFloats(args)
		if err != nil {
			return w, errors.Wrapf(err, "SIN(%s)", elem.Params["args"])
		}
		if len(vals) > 0 {
			w.DCValue = vals[0]
		}
		if len(vals) > 1 {
			w.Amplitude = vals[1]
		}
		if len(vals) > 2 {
			w.Freq = vals[2]
		}
		if len(vals) > 5 {
			w.PhaseDeg = vals[5]
		}
	case "pulse":
		w.Kind = device.PULSE
		args := strings.Fields(elem.Params["args"])
		vals, err := parseFloats(args)
		if err != nil {
			return w, errors.Wrapf(err, "PULSE(%s)", elem.Params["args"])
		}
		fields := []*float64{&w.V1, &w.V2, &w.Delay, &w.Rise, &w.Fall, &w.PulseWidth, &w.Period}
		for i, f := range fields {
			if i < len(vals) {
				*f = vals[i]
			}
		}
	case "pwl":
		w.Kind = device.PWL
		args := strings.Fields(elem.Params["args"])
		vals, err := parseFloats(args)
		if err != nil {
			return w, errors.Wrapf(err, "PWL(%s)", elem.Params["args"])
		}
		for i := 0; i+1 < len(vals); i += 2 {
			w.Times = append(w.Times, vals[i])
			w.Values = append(w.Values, vals[i+1])
		}
	}

	if ac, ok := elem.Params["ac"]; ok {
		acFields := strings.Fields(ac)
		vals, err := parseFloats(acFields)
		if err != nil {
			return w, errors.Wrapf(err, "AC(%s)", ac)
		}
		if len(vals) > 0 {
			w.ACMagnitude = vals[0]
		}
		if len(vals) > 1 {
			w.ACPhaseDeg = vals[1]
		}
	}

	return w, nil
}

func parseFloats(tokens []string) ([]float64, error) {
	out := make([]float64, len(tokens))
	for i, t := range tokens {
		v, err := ParseValue(t)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
