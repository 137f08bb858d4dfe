package main

import (
	"csrfdemo/models"
	"csrfdemo/simulator"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

type step struct {
	label string
	run   func(*simulator.Simulator) error
}

type scenario struct {
	name        string
	mode        models.Mode
	steps       []step
	wantBalance int64
}

func loginStep() step {
	return step{label: "log in", run: func(s *simulator.Simulator) error {
		s.Login()
		return nil
	}}
}

func transferStep(origin models.Origin, amount int64) step {
	return step{
		label: fmt.Sprintf("%s transfer of $%d", origin, amount),
		run: func(s *simulator.Simulator) error {
			_, err := s.SimulateTransfer(origin, amount)
			return err
		},
	}
}

func modeStep(mode models.Mode) step {
	return step{
		label: "switch to " + mode.String(),
		run:   func(s *simulator.Simulator) error { return s.SetMode(mode) },
	}
}

var scenarios = []scenario{
	{
		name:        "A: forged transfer against an unprotected bank",
		mode:        models.ModeVulnerable,
		steps:       []step{loginStep(), transferStep(models.OriginMalicious, 500)},
		wantBalance: 500,
	},
	{
		name:        "B: forged transfer against a token-checking bank",
		mode:        models.ModeProtected,
		steps:       []step{loginStep(), transferStep(models.OriginMalicious, 500)},
		wantBalance: 1000,
	},
	{
		name:        "C: legitimate transfer with a valid token",
		mode:        models.ModeProtected,
		steps:       []step{loginStep(), transferStep(models.OriginLegitimate, 100)},
		wantBalance: 900,
	},
	{
		name:        "D: switching modes ends the session",
		mode:        models.ModeVulnerable,
		steps:       []step{loginStep(), modeStep(models.ModeProtected)},
		wantBalance: 1000,
	},
}

// runScenario prints the log lines each step produced and the final state
func runScenario(w io.Writer, sc scenario) error {
	sim := simulator.New(simulator.WithMode(sc.mode))

	printHeader(w, sc.name)
	for _, st := range sc.steps {
		before := len(sim.State().Log)
		if err := st.run(sim); err != nil {
			return fmt.Errorf("%s: %w", st.label, err)
		}
		fmt.Fprintf(w, "> %s\n", st.label)
		if log := sim.State().Log; len(log) >= before {
			printEntries(w, log[before:])
		}
	}

	state := sim.State()
	printState(w, state)
	if state.Balance != sc.wantBalance {
		dangerColor.Fprintf(w, "unexpected balance: want $%d\n", sc.wantBalance)
		return fmt.Errorf("%s: balance $%d, want $%d", sc.name, state.Balance, sc.wantBalance)
	}
	fmt.Fprintln(w)
	return nil
}

func newScenariosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios",
		Short: "Run the four reference attack scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, sc := range scenarios {
				if err := runScenario(w, sc); err != nil {
					return err
				}
			}
			successColor.Fprintf(w, "%d scenarios passed\n", len(scenarios))
			return nil
		},
	}
}
