package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMatchesSpecMandatedValues(t *testing.T) {
	d := Default()
	assert.Equal(t, 1e-3, d.RelativeTolerance)
	assert.Equal(t, 1e-6, d.VoltageAbsoluteTolerance)
	assert.Equal(t, 1e-12, d.CurrentAbsoluteTolerance)
	assert.Equal(t, 300, d.MaximumIterations)
	assert.Equal(t, 1e-3, d.MinimumResistance)
	assert.Equal(t, 1e-12, d.MinimumConductance)
}

func TestLoadWithNoOverridesReturnsDefaults(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs, Default())

	got, err := Load(fs, "")
	require.NoError(t, err)
	assert.Equal(t, Default(), got)
}

func TestLoadHonorsParsedFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs, Default())

	require.NoError(t, fs.Parse([]string{"--maximum-iterations=50"}))

	got, err := Load(fs, "")
	require.NoError(t, err)
	assert.Equal(t, 50, got.MaximumIterations)
}

func TestLoadRejectsUnreadableConfigFile(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs, Default())

	_, err := Load(fs, "/nonexistent/path/does-not-exist.yaml")
	assert.Error(t, err)
}
