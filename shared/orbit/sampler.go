package orbit

import (
	"sort"

	"github.com/automoto/doomerang-orbit/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// segment locates the pair (i, i+1 mod n) bracketing distance d, which must
// already be wrapped into [0, TotalPerimeter). It returns the two indices and
// the interpolation factor between them.
func (c *BakedCurve) segment(d float64) (i, j int, t float64) {
	n := len(c.Points)
	// first index whose distance exceeds d, minus one
	i = sort.Search(n, func(k int) bool {
		return c.Points[k].DistanceFromStart > d
	}) - 1
	if i < 0 {
		i = 0
	}
	j = (i + 1) % n

	start := c.Points[i].DistanceFromStart
	end := c.TotalPerimeter
	if j != 0 {
		end = c.Points[j].DistanceFromStart
	}
	if span := end - start; span > 0 {
		t = (d - start) / span
	}
	return i, j, gamemath.Clamp(t, 0, 1)
}

// PositionAt returns the interpolated position at arc length d. Any real d is
// accepted and wrapped by the perimeter.
func (c *BakedCurve) PositionAt(d float64) mgl64.Vec3 {
	if c.Len() == 0 {
		return mgl64.Vec3{}
	}
	if c.TotalPerimeter <= 0 {
		return c.Points[0].Position
	}
	i, j, t := c.segment(gamemath.WrapDistance(d, c.TotalPerimeter))
	a, b := c.Points[i].Position, c.Points[j].Position
	return a.Add(b.Sub(a).Mul(t))
}

// SpeedAt returns the interpolated target speed at arc length d.
func (c *BakedCurve) SpeedAt(d float64) float64 {
	if c.Len() == 0 {
		return 0
	}
	if c.TotalPerimeter <= 0 {
		return c.Points[0].SpeedAtPoint
	}
	i, j, t := c.segment(gamemath.WrapDistance(d, c.TotalPerimeter))
	return gamemath.Lerp(c.Points[i].SpeedAtPoint, c.Points[j].SpeedAtPoint, t)
}
