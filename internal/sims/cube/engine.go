// Package cube implements a rotating 3D wireframe cube. The geometry is
// fixed; the only mutable state is two accumulated angles and their angular
// velocities, driven by arrow-key acceleration.
package cube

import (
	"fmt"
	"math"

	"github.com/vkarpenko/tui-sims/internal/config"
	"github.com/vkarpenko/tui-sims/internal/core"
	"github.com/vkarpenko/tui-sims/internal/registry"
)

const hudHeight = 2

// Vertex is a point in model space.
type Vertex struct {
	X, Y, Z float64
}

// Segment is a projected 2D wireframe line.
type Segment struct {
	X1, Y1 float64
	X2, Y2 float64
}

// Axis selects which rotation an acceleration applies to.
type Axis int

const (
	AxisTheta Axis = iota // Rotation about the horizontal axis (y, z pair)
	AxisSigma             // Rotation about the vertical axis (x, z pair)
)

// edges lists the 12 cube edges as vertex index pairs: the near face, the
// far face, and the four connecting struts.
var edges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// Engine implements the wireframe cube simulation.
type Engine struct {
	vertices [8]Vertex

	theta      float64 // Degrees, unbounded
	sigma      float64
	thetaSpeed float64
	sigmaSpeed float64

	screenW        int
	screenH        int
	stepEveryTicks int
	stepTicker     int

	cfg config.CubeConfig
}

var configPath string

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new cube engine.
func New() *Engine {
	return &Engine{}
}

func init() {
	registry.Register("cube", func() registry.Sim {
		return New()
	})
}

// ID returns the simulation identifier.
func (e *Engine) ID() string {
	return "cube"
}

// Title returns the display name.
func (e *Engine) Title() string {
	return "Cube"
}

// Description returns the menu pane text.
func (e *Engine) Description() string {
	return `Cube:
Rotate a 3D rendered wireframe cube.

Arrows accelerate the two spins, R stops and resets the rotation.`
}

// Reset initializes the engine: geometry from config, all angles and speeds
// zero.
func (e *Engine) Reset(cfg core.RuntimeConfig) error {
	cubeCfg, err := config.LoadCube(configPath)
	if err != nil {
		return fmt.Errorf("cube: %w", err)
	}
	e.cfg = cubeCfg

	// The squashed projection needs roughly a half-extent of room on each
	// side of the origin, diagonal included.
	minW := int(cubeCfg.HalfExtent*2) + 4
	minH := int(cubeCfg.HalfExtent) + hudHeight + 4
	if err := cfg.ValidateViewport(minW, minH); err != nil {
		return fmt.Errorf("cube: %w", err)
	}

	s := cubeCfg.HalfExtent
	e.vertices = [8]Vertex{
		{-s, -s, -s},
		{s, -s, -s},
		{s, s, -s},
		{-s, s, -s},
		{-s, -s, s},
		{s, -s, s},
		{s, s, s},
		{-s, s, s},
	}

	e.screenW = cfg.ScreenW
	e.screenH = cfg.ScreenH
	e.stepEveryTicks = cubeCfg.StepEveryTicks
	e.stepTicker = 0
	e.resetRotation()
	return nil
}

// resetRotation zeroes the four scalars; geometry is never mutated.
func (e *Engine) resetRotation() {
	e.theta = 0
	e.sigma = 0
	e.thetaSpeed = 0
	e.sigmaSpeed = 0
}

// Accelerate adds delta to the angular velocity of the given axis. Speeds
// are not clamped and may grow without bound.
func (e *Engine) Accelerate(axis Axis, delta float64) {
	switch axis {
	case AxisTheta:
		e.thetaSpeed += delta
	case AxisSigma:
		e.sigmaSpeed += delta
	}
}

// Step processes one platform tick: input first, then an angle accumulation
// when the interval has elapsed.
func (e *Engine) Step(in core.InputFrame) core.StepResult {
	switch {
	case in.Has(core.ActionUp):
		e.Accelerate(AxisTheta, e.cfg.AccelStep)
	case in.Has(core.ActionDown):
		e.Accelerate(AxisTheta, -e.cfg.AccelStep)
	case in.Has(core.ActionLeft):
		e.Accelerate(AxisSigma, e.cfg.AccelStep)
	case in.Has(core.ActionRight):
		e.Accelerate(AxisSigma, -e.cfg.AccelStep)
	case in.Has(core.ActionReset):
		e.resetRotation()
	}

	e.stepTicker++
	if e.stepTicker >= e.stepEveryTicks {
		e.stepTicker = 0
		e.advance()
	}

	return core.StepResult{State: e.State()}
}

// advance accumulates the angles. Angles are unbounded; no wraparound.
func (e *Engine) advance() {
	e.theta += e.thetaSpeed
	e.sigma += e.sigmaSpeed
}

// Project rotates every vertex about the horizontal axis by theta (y, z
// pair) and then about the vertical axis by sigma (x, z pair), translates by
// the origin, drops z, and emits one 2D segment per edge. It is a pure read:
// repeated calls without Step yield identical output.
func (e *Engine) Project(originX, originY float64) []Segment {
	theta := e.theta * math.Pi / 180
	sigma := e.sigma * math.Pi / 180
	sinT, cosT := math.Sin(theta), math.Cos(theta)
	sinS, cosS := math.Sin(sigma), math.Cos(sigma)

	var rotated [8]Vertex
	for i, v := range e.vertices {
		x, y, z := v.X, v.Y*cosT-v.Z*sinT, v.Y*sinT+v.Z*cosT
		x, z = x*cosS+z*sinS, -x*sinS+z*cosS
		rotated[i] = Vertex{X: x, Y: y, Z: z}
	}

	segments := make([]Segment, 0, len(edges))
	for _, edge := range edges {
		a, b := rotated[edge[0]], rotated[edge[1]]
		segments = append(segments, Segment{
			X1: a.X + originX,
			Y1: a.Y + originY,
			X2: b.X + originX,
			Y2: b.Y + originY,
		})
	}
	return segments
}

// State returns the current externally visible state.
func (e *Engine) State() core.SimState {
	return core.SimState{}
}

// Render draws the wireframe to the screen. Projection happens in model
// space; the renderer maps it to screen cells with a 2:1 vertical squash to
// compensate for the terminal cell aspect ratio.
func (e *Engine) Render(dst *core.Screen) {
	dst.Clear()

	hud := fmt.Sprintf(" Cube — theta: %.1f  sigma: %.1f", e.theta, e.sigma)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	cx := float64(dst.Width()) / 2
	cy := float64(dst.Height()+hudHeight) / 2

	for _, seg := range e.Project(0, 0) {
		x0 := int(math.Round(cx + seg.X1))
		y0 := int(math.Round(cy - seg.Y1*0.5))
		x1 := int(math.Round(cx + seg.X2))
		y1 := int(math.Round(cy - seg.Y2*0.5))
		dst.DrawLine(x0, y0, x1, y1, '•', core.ColorCyan)
	}
}
