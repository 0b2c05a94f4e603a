// Package orbit bakes closed superellipse paths and drives an entity along
// them by arc length. It has no dependencies on ebitengine, donburi, or resolv.
package orbit

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/doomerang-orbit/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	// MinResolution is the smallest sample count a curve is baked with.
	MinResolution = 100
	// MinRadius keeps a degenerate radius from collapsing the curve.
	MinRadius = 1e-3
)

var (
	ErrResolution = errors.New("resolution below minimum")
	ErrRadius     = errors.New("radius must be positive")
	ErrRoundness  = errors.New("roundness must be within [0,1]")
	ErrSpeed      = errors.New("speed must be positive")
	ErrNonFinite  = errors.New("value must be finite")
)

// CurveConfig holds the shape and speed parameters of an orbit.
type CurveConfig struct {
	RadiusX       float64
	RadiusZ       float64
	Roundness     float64 // 0 = ellipse, 1 = near-rectangular
	Resolution    int     // sample count, raised to MinResolution
	StraightSpeed float64 // units/second on straight segments
	CornerSpeed   float64 // units/second through corners
	InitialHeight float64 // constant y offset
}

// Normalize returns a copy with out-of-domain values corrected. Non-finite
// fields take the same floors as their out-of-range counterparts.
func (c CurveConfig) Normalize() CurveConfig {
	if c.Resolution < MinResolution {
		c.Resolution = MinResolution
	}
	c.Roundness = gamemath.Clamp(gamemath.Finite(c.Roundness, 0), 0, 1)
	c.RadiusX = gamemath.Finite(c.RadiusX, MinRadius)
	c.RadiusZ = gamemath.Finite(c.RadiusZ, MinRadius)
	c.StraightSpeed = gamemath.Finite(c.StraightSpeed, 0)
	c.CornerSpeed = gamemath.Finite(c.CornerSpeed, 0)
	c.InitialHeight = gamemath.Finite(c.InitialHeight, 0)
	if c.RadiusX < MinRadius {
		c.RadiusX = MinRadius
	}
	if c.RadiusZ < MinRadius {
		c.RadiusZ = MinRadius
	}
	c.StraightSpeed = math.Max(c.StraightSpeed, 0)
	c.CornerSpeed = math.Max(c.CornerSpeed, 0)
	return c
}

// Validate reports every field Normalize would have to correct.
func (c CurveConfig) Validate() error {
	var errs []error
	if c.Resolution < MinResolution {
		errs = append(errs, fmt.Errorf("%w: %d < %d", ErrResolution, c.Resolution, MinResolution))
	}
	fields := []struct {
		name  string
		value float64
		err   error
	}{
		{"radiusX", c.RadiusX, ErrRadius},
		{"radiusZ", c.RadiusZ, ErrRadius},
		{"straightSpeed", c.StraightSpeed, ErrSpeed},
		{"cornerSpeed", c.CornerSpeed, ErrSpeed},
	}
	for _, f := range fields {
		switch {
		case !isFinite(f.value):
			errs = append(errs, fmt.Errorf("%w: %s=%g", ErrNonFinite, f.name, f.value))
		case f.value <= 0:
			errs = append(errs, fmt.Errorf("%w: %s=%g", f.err, f.name, f.value))
		}
	}
	if !isFinite(c.Roundness) {
		errs = append(errs, fmt.Errorf("%w: roundness=%g", ErrNonFinite, c.Roundness))
	} else if c.Roundness < 0 || c.Roundness > 1 {
		errs = append(errs, fmt.Errorf("%w: %g", ErrRoundness, c.Roundness))
	}
	if !isFinite(c.InitialHeight) {
		errs = append(errs, fmt.Errorf("%w: initialHeight=%g", ErrNonFinite, c.InitialHeight))
	}
	return errors.Join(errs...)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// PathPoint is one baked sample.
type PathPoint struct {
	Position          mgl64.Vec3
	DistanceFromStart float64
	SpeedAtPoint      float64
}

// BakedCurve is the discretized closed curve. The closing segment from the
// last point back to point 0 is counted in TotalPerimeter only.
type BakedCurve struct {
	Points         []PathPoint
	TotalPerimeter float64
	Config         CurveConfig
}

// Bake samples the superellipse described by cfg at Resolution equally
// spaced angles. It is a full rebuild and never reuses a previous table.
func Bake(cfg CurveConfig) *BakedCurve {
	cfg = cfg.Normalize()
	n := cfg.Resolution
	power := 2.0 / gamemath.SuperellipseExponent(cfg.Roundness)

	points := make([]PathPoint, n)
	var total float64
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		x, z := gamemath.SuperellipsePoint(theta, power, cfg.RadiusX, cfg.RadiusZ)
		pos := mgl64.Vec3{x, cfg.InitialHeight, z}

		if i > 0 {
			total += pos.Sub(points[i-1].Position).Len()
		}
		points[i] = PathPoint{
			Position:          pos,
			DistanceFromStart: total,
			SpeedAtPoint:      gamemath.CornerSpeed(theta, cfg.StraightSpeed, cfg.CornerSpeed),
		}
	}
	total += points[0].Position.Sub(points[n-1].Position).Len()

	return &BakedCurve{
		Points:         points,
		TotalPerimeter: total,
		Config:         cfg,
	}
}

// Len returns the number of baked samples.
func (c *BakedCurve) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Points)
}
