package commands

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/gospice/gospice/pkg/circuit"
	"github.com/gospice/gospice/pkg/netlist"
)

func loadCircuit(path string) (*circuit.Circuit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading netlist %s", path)
	}
	nl, err := netlist.Parse(string(data))
	if err != nil {
		return nil, errors.Wrap(err, "parsing netlist")
	}
	devices, err := nl.BuildDevices()
	if err != nil {
		return nil, errors.Wrap(err, "building devices")
	}
	return circuit.Build(path, devices, logrus.WithField("netlist", path))
}
