// sims is a terminal-based deck of small interactive simulations.
//
// Usage:
//
//	sims list          - List available simulations
//	sims play <sim>    - Run a simulation directly
//	sims menu          - Start the interactive picker menu
//
// Global flags:
//
//	--fps <rate>      - Platform tick rate (default: 60)
//	--seed <value>    - RNG seed for reproducible runs
//	--config <path>   - Custom tuning YAML for the chosen simulation
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import simulations to register them
	_ "github.com/vkarpenko/tui-sims/internal/sims/cube"
	_ "github.com/vkarpenko/tui-sims/internal/sims/life"
	_ "github.com/vkarpenko/tui-sims/internal/sims/snake"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagConfig string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "sims",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sims",
	Short: "Terminal simulation deck - Life, Snake and a spinning cube",
	Long: `sims is a terminal playground of small fixed-tick simulations:
Conway's Game of Life, a classic Snake, and a rotating 3D wireframe cube.

Available commands:
  list     - Show all available simulations
  play     - Run a specific simulation directly
  menu     - Interactive picker menu

Examples:
  sims list
  sims play life
  sims play snake --fps 30
  sims menu`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Platform tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
}
