package commands

import (
	"math"
	"math/cmplx"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gospice/gospice/internal/format"
	"github.com/gospice/gospice/pkg/analysis"
	"github.com/gospice/gospice/pkg/config"
	"github.com/gospice/gospice/pkg/mna"
	"github.com/gospice/gospice/pkg/resultio"
)

func newACCmd() *cobra.Command {
	var fStart, fStop float64
	var pointsPerDecade int

	cmd := &cobra.Command{
		Use:   "ac <netlist>",
		Short: "Run an AC small-signal analysis",
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

			log := logrus.WithField("analysis", "ac")
			ac := analysis.NewAC(ckt, fStart, fStop, pointsPerDecade, cfg, log)
			if err := ac.Run(); err != nil {
				return err
			}

			rows := make([]mna.Solution, len(ac.Points))
			for i, pt := range ac.Points {
				row := mna.Solution{mna.FrequencyKey: pt.Frequency}
				for k, v := range pt.Solution {
					if k == mna.FrequencyKey {
						continue
					}
					row[k+"_re"] = real(v)
					row[k+"_im"] = imag(v)
					mag, phase := cmplx.Abs(v), cmplx.Phase(v)*180/math.Pi
					log.Debugf("%s %s", format.Frequency(pt.Frequency), format.MagnitudePhase(k, mag, phase))
				}
				rows[i] = row
			}
			return resultio.WriteCSV(os.Stdout, rows)
		},
	}
	cmd.Flags().Float64Var(&fStart, "fstart", 1, "sweep start frequency (Hz)")
	cmd.Flags().Float64Var(&fStop, "fstop", 1e6, "sweep stop frequency (Hz)")
	cmd.Flags().IntVar(&pointsPerDecade, "points-per-decade", 10, "points per decade")
	config.BindFlags(cmd.Flags(), config.Default())
	return cmd
}
