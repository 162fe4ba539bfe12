package config

import (
	_ "embed"
)

//go:embed defaults/life.yaml
var defaultLifeYAML []byte

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/cube.yaml
var defaultCubeYAML []byte

// DefaultLifeConfig returns the default Game of Life configuration.
func DefaultLifeConfig() LifeConfig {
	return LifeConfig{
		Timing: LifeTiming{
			StepEveryTicks: 24, // 400ms at 60 ticks/s
			MinStepTicks:   3,  // 50ms
			MaxStepTicks:   60, // 1s
			SpeedDelta:     3,
		},
		History: false,
	}
}

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Timing: SnakeTiming{
			StepEveryTicks: 6, // 100ms at 60 ticks/s
			MinStepTicks:   2,
			MaxStepTicks:   18,
			SpeedDelta:     2,
		},
	}
}

// DefaultCubeConfig returns the default cube configuration.
func DefaultCubeConfig() CubeConfig {
	return CubeConfig{
		StepEveryTicks: 3, // 50ms at 60 ticks/s
		HalfExtent:     8,
		AccelStep:      0.25,
	}
}

// GetDefaultYAML returns the embedded default YAML for a simulation.
func GetDefaultYAML(simID string) []byte {
	switch simID {
	case "life":
		return defaultLifeYAML
	case "snake":
		return defaultSnakeYAML
	case "cube":
		return defaultCubeYAML
	default:
		return nil
	}
}
