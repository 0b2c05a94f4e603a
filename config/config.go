package config

import (
	"image/color"

	"github.com/automoto/doomerang-orbit/shared/orbit"
	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer used by the viewer.
const Default ecs.LayerID = 0

// OrbitPresetConfig bundles everything needed to spawn one orbiter.
type OrbitPresetConfig struct {
	Curve     orbit.CurveConfig
	Traversal orbit.Settings
	AutoPlay  bool // call Play() right after spawning
}

// OrbitConfig contains orbit system configuration
type OrbitConfig struct {
	TickRate      int     // ticks per second
	TickDelta     float64 // seconds advanced per tick (1 / TickRate)
	DefaultPreset string
	Presets       map[string]OrbitPresetConfig

	// Spatial object kept in sync with each orbiter
	ObjectSize float64
	CellSize   int
}

// DebugConfig contains debug overlay options
type DebugConfig struct {
	ShowPaths  bool // draw baked polylines
	ShowRange  bool // highlight the active traversal range
	ShowLabels bool // print name/state next to each orbiter
	RangeStep  int  // draw every Nth sample of the range highlight
}

// Config holds general viewer configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Orbit OrbitConfig
var Debug DebugConfig

// Debug overlay colors
var (
	PathColor    = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	RangeColor   = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	OrbiterColor = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	HeadingColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// SetTickRate updates TickRate and the derived TickDelta together.
func SetTickRate(rate int) {
	if rate <= 0 {
		return
	}
	Orbit.TickRate = rate
	Orbit.TickDelta = 1.0 / float64(rate)
}

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Debug = DebugConfig{
		ShowPaths:  true,
		ShowRange:  true,
		ShowLabels: true,
		RangeStep:  4,
	}

	Orbit = OrbitConfig{
		DefaultPreset: "ring",
		ObjectSize:    16,
		CellSize:      16,
		Presets: map[string]OrbitPresetConfig{
			// Plain ellipse, endless loop
			"ring": {
				Curve: orbit.CurveConfig{
					RadiusX:       140,
					RadiusZ:       90,
					Roundness:     0,
					Resolution:    720,
					StraightSpeed: 160,
					CornerSpeed:   160,
				},
				Traversal: orbit.Settings{
					StartAngle:    0,
					EndAngle:      360,
					Mode:          orbit.Repeat,
					SelfSpinSpeed: 180,
				},
				AutoPlay: true,
			},
			// Rounded rectangle, fast straights and slow corners
			"track": {
				Curve: orbit.CurveConfig{
					RadiusX:       200,
					RadiusZ:       110,
					Roundness:     0.8,
					Resolution:    2000,
					StraightSpeed: 220,
					CornerSpeed:   70,
				},
				Traversal: orbit.Settings{
					StartAngle:    0,
					EndAngle:      360,
					Direction:     orbit.CW,
					Mode:          orbit.Repeat,
					SelfSpinSpeed: 360,
					SpinRamp:      0.75,
				},
				AutoPlay: true,
			},
			// Swings back and forth across the lower half
			"pendulum": {
				Curve: orbit.CurveConfig{
					RadiusX:       120,
					RadiusZ:       120,
					Roundness:     0.3,
					Resolution:    720,
					StraightSpeed: 140,
					CornerSpeed:   60,
				},
				Traversal: orbit.Settings{
					InitialAngle: 200,
					StartAngle:   200,
					EndAngle:     340,
					Mode:         orbit.PingPong,
				},
				AutoPlay: true,
			},
			// One pass over the top half, then stops
			"sweep": {
				Curve: orbit.CurveConfig{
					RadiusX:       160,
					RadiusZ:       100,
					Roundness:     0.5,
					Resolution:    1000,
					StraightSpeed: 120,
					CornerSpeed:   80,
				},
				Traversal: orbit.Settings{
					StartAngle:    0,
					EndAngle:      180,
					Mode:          orbit.Once,
					SelfSpinSpeed: 90,
				},
				AutoPlay: true,
			},
			// Clockwise patrol over a quarter arc, wrapping back to its start
			"patrol": {
				Curve: orbit.CurveConfig{
					RadiusX:       100,
					RadiusZ:       60,
					Roundness:     0.6,
					Resolution:    500,
					StraightSpeed: 90,
					CornerSpeed:   45,
				},
				Traversal: orbit.Settings{
					InitialAngle: 135,
					StartAngle:   135,
					EndAngle:     45,
					Direction:    orbit.CW,
					Mode:         orbit.Repeat,
				},
				AutoPlay: true,
			},
		},
	}
	SetTickRate(60)
}
