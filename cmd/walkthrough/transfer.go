package main

import (
	"csrfdemo/models"
	"csrfdemo/simulator"

	"github.com/spf13/cobra"
)

func newTransferCmd() *cobra.Command {
	var (
		mode   string
		origin string
		amount int64
	)

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Log in and send a single transfer",
		Long: `Log in and send a single transfer.

An amount of 0 uses the origin's default: $100 for legitimate requests and
$500 for malicious ones.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := models.ParseMode(mode)
			if err != nil {
				return err
			}
			o, err := models.ParseOrigin(origin)
			if err != nil {
				return err
			}
			if amount == 0 {
				amount = o.DefaultAmount()
			}

			sim := simulator.New(simulator.WithMode(m))
			sim.Login()
			res, err := sim.SimulateTransfer(o, amount)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printEntries(w, sim.State().Log)
			outcomeColor(res).Fprintf(w, "outcome: %s\n", res.Outcome())
			printState(w, sim.State())
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", string(models.ModeVulnerable), "Simulation mode (vulnerable, protected)")
	cmd.Flags().StringVar(&origin, "origin", string(models.OriginMalicious), "Request origin (legitimate, malicious)")
	cmd.Flags().Int64Var(&amount, "amount", 0, "Transfer amount in dollars")
	return cmd
}
