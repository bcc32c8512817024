// Package commands implements the gospice CLI command tree: a Cobra
// root command with op/dc/ac/tran subcommands, each reading a netlist
// and running one analysis engine.
package commands

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gospice/gospice/pkg/config"
)

var (
	configFile string
	debug      bool
)

// NewRootCmd builds the gospice command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gospice",
		Short: "A SPICE-compatible analog circuit simulator",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}

	root.PersistentFlags().StringVar(&configFile, "config", "", "path to a solver config file")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	root.AddCommand(newOPCmd(), newDCCmd(), newACCmd(), newTranCmd())
	return root
}

// loadSolverConfig resolves the solver config from flags already bound
// on cmd (via config.BindFlags at command construction time), layered
// over GOSPICE_* environment variables, an optional --config file, and
// the hard-coded defaults.
func loadSolverConfig(cmd *cobra.Command) (config.Solver, error) {
	return config.Load(cmd.Flags(), configFile)
}
