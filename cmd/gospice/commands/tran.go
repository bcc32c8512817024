package commands

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gospice/gospice/pkg/analysis"
	"github.com/gospice/gospice/pkg/config"
	"github.com/gospice/gospice/pkg/resultio"
)

func newTranCmd() *cobra.Command {
	var stopTime, step float64

	cmd := &cobra.Command{
		Use:   "tran <netlist>",
		Short: "Run a transient analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ckt, err := loadCircuit(args[0])
			if err != nil {
				return err
			}
			cfg, err := loadSolverConfig(cmd)
			if err != nil {
				return err
			}

			tran := analysis.NewTransient(ckt, stopTime, step, cfg, logrus.WithField("analysis", "tran"))
			if err := tran.Run(); err != nil {
				return err
			}
			return resultio.WriteCSV(os.Stdout, tran.Solutions)
		},
	}
	cmd.Flags().Float64Var(&stopTime, "stop", 0, "stop time (s)")
	cmd.Flags().Float64Var(&step, "step", 0, "fixed time step (s)")
	cmd.MarkFlagRequired("stop")
	cmd.MarkFlagRequired("step")
	config.BindFlags(cmd.Flags(), config.Default())
	return cmd
}
