package commands

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gospice/gospice/pkg/analysis"
	"github.com/gospice/gospice/pkg/config"
	"github.com/gospice/gospice/pkg/mna"
	"github.com/gospice/gospice/pkg/resultio"
)

func newOPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "op <netlist>",
		Short: "Run an operating-point analysis",
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

			op := analysis.NewOP(ckt, cfg, logrus.WithField("analysis", "op"))
			if err := op.Run(); err != nil {
				return err
			}
			return resultio.WriteCSV(os.Stdout, []mna.Solution{op.Solution})
		},
	}
	config.BindFlags(cmd.Flags(), config.Default())
	return cmd
}
