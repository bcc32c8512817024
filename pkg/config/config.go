// Package config defines the solver configuration surface
// and loads it the way the rest of this module's ambient stack loads
// configuration: Viper backing a set of pflag flags, so CLI flags,
// environment variables (GOSPICE_*), and an optional config file all
// resolve into one Solver value.
package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Solver holds the six solver tunables.
type Solver struct {
	RelativeTolerance        float64 `mapstructure:"relative_tolerance"`
	VoltageAbsoluteTolerance float64 `mapstructure:"voltage_absolute_tolerance"`
	CurrentAbsoluteTolerance float64 `mapstructure:"current_absolute_tolerance"`
	MaximumIterations        int     `mapstructure:"maximum_iterations"`
	MinimumResistance        float64 `mapstructure:"minimum_resistance"`
	MinimumConductance       float64 `mapstructure:"minimum_conductance"`
}

// Default returns the hard-coded defaults.
func Default() Solver {
	return Solver{
		RelativeTolerance:        1e-3,
		VoltageAbsoluteTolerance: 1e-6,
		CurrentAbsoluteTolerance: 1e-12,
		MaximumIterations:        300,
		MinimumResistance:        1e-3,
		MinimumConductance:       1e-12,
	}
}

// BindFlags registers the solver config as pflags on fs, defaulting to
// the values already set on cfg (typically config.Default()).
func BindFlags(fs *pflag.FlagSet, cfg Solver) {
	fs.Float64("relative-tolerance", cfg.RelativeTolerance, "max per-unknown relative change accepted as converged")
	fs.Float64("voltage-absolute-tolerance", cfg.VoltageAbsoluteTolerance, "min absolute voltage tolerance")
	fs.Float64("current-absolute-tolerance", cfg.CurrentAbsoluteTolerance, "min absolute current tolerance")
	fs.Int("maximum-iterations", cfg.MaximumIterations, "Newton-Raphson iteration cap")
	fs.Float64("minimum-resistance", cfg.MinimumResistance, "lower clamp for resistances")
	fs.Float64("minimum-conductance", cfg.MinimumConductance, "lower clamp for conductances")
}

// Load resolves a Solver from (in increasing precedence): hard defaults,
// an optional config file, GOSPICE_* environment variables, and flags
// already parsed into fs.
func Load(fs *pflag.FlagSet, configFile string) (Solver, error) {
	v := viper.New()
	cfg := Default()
	v.SetDefault("relative_tolerance", cfg.RelativeTolerance)
	v.SetDefault("voltage_absolute_tolerance", cfg.VoltageAbsoluteTolerance)
	v.SetDefault("current_absolute_tolerance", cfg.CurrentAbsoluteTolerance)
	v.SetDefault("maximum_iterations", cfg.MaximumIterations)
	v.SetDefault("minimum_resistance", cfg.MinimumResistance)
	v.SetDefault("minimum_conductance", cfg.MinimumConductance)

	v.SetEnvPrefix("GOSPICE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Solver{}, err
		}
	}

	if fs != nil {
		// Flags are named with hyphens; bind each under its underscore
		// key so it overrides the same setting the mapstructure tags read.
		var bindErr error
		fs.VisitAll(func(f *pflag.Flag) {
			if bindErr == nil {
				bindErr = v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
			}
		})
		if bindErr != nil {
			return Solver{}, bindErr
		}
	}

	var out Solver
	if err := v.Unmarshal(&out); err != nil {
		return Solver{}, err
	}
	return out, nil
}
