package commands

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gospice/gospice/pkg/analysis"
	"github.com/gospice/gospice/pkg/config"
	"github.com/gospice/gospice/pkg/resultio"
)

func newDCCmd() *cobra.Command {
	var source string
	var start, stop, step float64

	cmd := &cobra.Command{
		Use:   "dc <netlist>",
		Short: "Run a DC sweep analysis",
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

			sweep := analysis.NewDCSweep(ckt, source, start, stop, step, cfg, logrus.WithField("analysis", "dc"))
			if err := sweep.Run(); err != nil {
				return err
			}
			return resultio.WriteCSV(os.Stdout, sweep.Solutions)
		},
	}
	cmd.Flags().StringVar(&source, "source", "", "independent source to sweep (required)")
	cmd.Flags().Float64Var(&start, "start", 0, "sweep start value")
	cmd.Flags().Float64Var(&stop, "stop", 0, "sweep stop value")
	cmd.Flags().Float64Var(&step, "step", 0, "sweep step size")
	cmd.MarkFlagRequired("source")
	cmd.MarkFlagRequired("step")
	config.BindFlags(cmd.Flags(), config.Default())
	return cmd
}
