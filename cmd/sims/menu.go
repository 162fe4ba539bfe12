package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vkarpenko/tui-sims/internal/platform/tui"
	"github.com/vkarpenko/tui-sims/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a simulation from the interactive menu",
	Long: `Open the selection menu. Choosing an entry runs it; quitting a
simulation returns to the menu until you quit the menu itself.`,
	Run: runMenu,
}

func runMenu(cmd *cobra.Command, args []string) {
	for {
		result, err := tui.RunMenu(runtimeConfig())
		if err != nil {
			logger.Error("menu failed", "error", err)
			os.Exit(1)
		}
		if result.Quit {
			return
		}

		applyConfigPath(result.SimID)

		sim, err := registry.Create(result.SimID)
		if err != nil {
			logger.Error("cannot create simulation", "error", err)
			os.Exit(1)
		}

		runCfg := result.Config
		if runCfg.Seed == 0 {
			// Fresh randomness for every run started from the menu.
			runCfg.Seed = time.Now().UnixNano()
		}
		if err := tui.Run(sim, runCfg); err != nil {
			logger.Error("simulation failed", "error", err)
			os.Exit(1)
		}
	}
}
