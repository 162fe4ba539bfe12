package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vkarpenko/tui-sims/internal/core"
	"github.com/vkarpenko/tui-sims/internal/platform/tui"
	"github.com/vkarpenko/tui-sims/internal/registry"
	"github.com/vkarpenko/tui-sims/internal/sims/cube"
	"github.com/vkarpenko/tui-sims/internal/sims/life"
	"github.com/vkarpenko/tui-sims/internal/sims/snake"
)

var playCmd = &cobra.Command{
	Use:   "play <sim>",
	Short: "Run a simulation",
	Long: `Start the specified simulation directly, skipping the menu.

Controls (vary per simulation):
  Arrows     - Cursor / direction / spin
  S, Enter   - Toggle cell (Life)
  P          - Pause/resume (Life)
  N          - Single step while paused (Life)
  H          - History trail (Life)
  C          - Clear grid (Life)
  R          - Reset (Snake, Cube)
  +/-        - Simulation speed (Life, Snake)
  Q/Ctrl+C   - Back to the shell

Examples:
  sims play life
  sims play snake --seed 42
  sims play cube --config ./my-cube.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

// runtimeConfig builds the session config from the global flags and the
// current terminal size, keeping the 80x24 default when stdout is not a
// terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}

// applyConfigPath forwards the --config flag to the chosen sim package.
func applyConfigPath(simID string) {
	switch simID {
	case "life":
		life.SetConfigPath(flagConfig)
	case "snake":
		snake.SetConfigPath(flagConfig)
	case "cube":
		cube.SetConfigPath(flagConfig)
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	simID := args[0]

	if !registry.Exists(simID) {
		logger.Error("unknown simulation", "id", simID)
		logger.Print("Run 'sims list' to see available simulations.")
		os.Exit(1)
	}

	cfg := runtimeConfig()
	applyConfigPath(simID)

	sim, err := registry.Create(simID)
	if err != nil {
		logger.Error("cannot create simulation", "error", err)
		os.Exit(1)
	}

	if err := tui.Run(sim, cfg); err != nil {
		if errors.Is(err, core.ErrInvalidViewport) {
			logger.Error("terminal too small for this simulation", "error", err)
		} else {
			logger.Error("simulation failed", "error", err)
		}
		os.Exit(1)
	}
}
