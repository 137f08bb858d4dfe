// Command walkthrough drives the CSRF simulator from a terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var noColor bool

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "walkthrough",
		Short: "Step through CSRF attacks against a simulated bank",
		Long: `Step through CSRF attacks against a simulated bank.

Every command runs its own in-memory simulator. Nothing is sent over the
network except by the watch command, which follows a running server's state
feed on Redis.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				color.NoColor = true
			}
		},
	}

	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	root.AddCommand(newScenariosCmd())
	root.AddCommand(newTransferCmd())
	root.AddCommand(newWatchCmd())
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
