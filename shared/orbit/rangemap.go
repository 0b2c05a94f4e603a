package orbit

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/automoto/doomerang-orbit/shared/gamemath"
)

const (
	// AngleEpsilon is the tolerance in degrees for full-loop detection.
	AngleEpsilon = 1e-3
	// MinRangeLength floors degenerate ranges so progress ratios stay finite.
	MinRangeLength = 1e-6
)

var ErrUnknownDirection = errors.New("unknown orbit direction")

// Direction is the sense of travel around the orbit. CCW follows increasing
// sample angle and increasing arc length.
type Direction int

const (
	CCW Direction = iota
	CW
)

func (d Direction) String() string {
	switch d {
	case CCW:
		return "ccw"
	case CW:
		return "cw"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Sign is +1 for CCW and -1 for CW.
func (d Direction) Sign() float64 {
	if d == CW {
		return -1
	}
	return 1
}

// ParseDirection accepts "ccw"/"counterclockwise" and "cw"/"clockwise".
// An empty string means CCW.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ccw", "counterclockwise":
		return CCW, nil
	case "cw", "clockwise":
		return CW, nil
	}
	return CCW, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// TraversalRange is the arc-length sub-interval a traversal is confined to.
type TraversalRange struct {
	StartAngle       float64
	EndAngle         float64
	Direction        Direction
	RangeStartOffset float64
	RangeLength      float64
	IsFullLoop       bool
}

// AngleToDistance returns the arc length of the sample nearest to angle
// (degrees). The angle is wrapped into [0,360) first; NaN and infinite
// angles are treated as 0.
func (c *BakedCurve) AngleToDistance(angle float64) float64 {
	n := c.Len()
	if n == 0 {
		return 0
	}
	a := gamemath.WrapAngle(gamemath.Finite(angle, 0))
	idx := int(math.Round(a/360*float64(n))) % n
	return c.Points[idx].DistanceFromStart
}

// DirectionalDistance is the arc length travelled from 'from' to 'to' when
// moving in dir.
func (c *BakedCurve) DirectionalDistance(from, to float64, dir Direction) float64 {
	if dir == CW {
		return gamemath.ForwardDistance(to, from, c.TotalPerimeter)
	}
	return gamemath.ForwardDistance(from, to, c.TotalPerimeter)
}

// IsFullLoop reports whether start and end describe the whole orbit.
func IsFullLoop(startAngle, endAngle float64) bool {
	diff := math.Abs(startAngle - endAngle)
	if diff < AngleEpsilon || math.Abs(diff-360) < AngleEpsilon {
		return true
	}
	wrapped := math.Abs(gamemath.WrapAngle(startAngle) - gamemath.WrapAngle(endAngle))
	return wrapped < AngleEpsilon || math.Abs(wrapped-360) < AngleEpsilon
}

// ComputeRange converts an angular range into an arc-length range.
func (c *BakedCurve) ComputeRange(startAngle, endAngle float64, dir Direction) TraversalRange {
	r := TraversalRange{
		StartAngle:       startAngle,
		EndAngle:         endAngle,
		Direction:        dir,
		RangeStartOffset: c.AngleToDistance(startAngle),
		IsFullLoop:       IsFullLoop(startAngle, endAngle),
	}
	if r.IsFullLoop {
		r.RangeLength = c.TotalPerimeter
	} else {
		r.RangeLength = c.DirectionalDistance(r.RangeStartOffset, c.AngleToDistance(endAngle), dir)
	}
	if r.RangeLength < MinRangeLength {
		r.RangeLength = MinRangeLength
	}
	return r
}
