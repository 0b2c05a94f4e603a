package orbit

import (
	"math"

	"github.com/automoto/doomerang-orbit/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

var up = mgl64.Vec3{0, 1, 0}

// spinner is the cosmetic self-rotation about the vertical axis. It never
// touches path state.
type spinner struct {
	speed float64 // degrees/second
	dir   Direction
	ramp  *gween.Tween
	yaw   float64
}

func newSpinner(speed float64, dir Direction, rampSeconds float64) spinner {
	s := spinner{speed: gamemath.Finite(speed, 0), dir: dir}
	if rampSeconds > 0 && !math.IsInf(rampSeconds, 1) {
		// The ramp scales the spin rate from 0 to 1 after each Play.
		s.ramp = gween.New(0, 1, float32(rampSeconds), ease.OutQuad)
	}
	return s
}

func (s *spinner) restart() {
	if s.ramp != nil {
		s.ramp.Reset()
	}
}

func (s *spinner) advance(dt float64) {
	rate := s.speed
	if s.ramp != nil {
		factor, _ := s.ramp.Update(float32(dt))
		rate *= float64(factor)
	}
	s.yaw = gamemath.WrapAngle(s.yaw + rate*dt*s.dir.Sign())
}

func (s *spinner) rotation() mgl64.Quat {
	return mgl64.QuatRotate(mgl64.DegToRad(s.yaw), up)
}
