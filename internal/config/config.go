// Package config provides YAML-based tuning for the simulations.
package config

// LifeConfig contains tuning for the Game of Life engine.
type LifeConfig struct {
	Timing  LifeTiming `yaml:"timing"`
	History bool       `yaml:"history"` // Show the fading trail by default
}

// LifeTiming defines the step-interval bounds, in platform ticks.
// With the default 60 ticks/s, 24 ticks is one generation every 400ms.
type LifeTiming struct {
	StepEveryTicks int `yaml:"step_every_ticks"`
	MinStepTicks   int `yaml:"min_step_ticks"`
	MaxStepTicks   int `yaml:"max_step_ticks"`
	SpeedDelta     int `yaml:"speed_delta"` // Ticks added/removed per speed key
}

// SnakeConfig contains tuning for the Snake engine.
type SnakeConfig struct {
	Timing SnakeTiming `yaml:"timing"`
}

// SnakeTiming defines the movement interval bounds, in platform ticks.
type SnakeTiming struct {
	StepEveryTicks int `yaml:"step_every_ticks"`
	MinStepTicks   int `yaml:"min_step_ticks"`
	MaxStepTicks   int `yaml:"max_step_ticks"`
	SpeedDelta     int `yaml:"speed_delta"`
}

// CubeConfig contains tuning for the wireframe cube engine.
type CubeConfig struct {
	StepEveryTicks int     `yaml:"step_every_ticks"`
	HalfExtent     float64 `yaml:"half_extent"` // Cube half-size in cells
	AccelStep      float64 `yaml:"accel_step"`  // Degrees/step added per key press
}
