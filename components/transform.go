package components

import (
	"github.com/automoto/doomerang-orbit/shared/orbit"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// TransformData is the world-space pose of an orbiter.
type TransformData struct {
	Position mgl64.Vec3
	Yaw      float64
	Rotation mgl64.Quat
}

// Heading is the entity's local +X axis after rotation, useful for drawing
// the spin direction.
func (t *TransformData) Heading() mgl64.Vec3 {
	return t.Rotation.Rotate(mgl64.Vec3{1, 0, 0})
}

// ScreenPos maps the orbit plane onto screen space: world X is screen X and
// world Z is screen Y.
func (t *TransformData) ScreenPos() (float64, float64) {
	return t.Position.X(), t.Position.Z()
}

var Transform = donburi.NewComponentType[TransformData]()

// OrbitPoseSink writes driver poses into an entry's Transform, offset by the
// orbit center.
type OrbitPoseSink struct {
	Entry *donburi.Entry
}

func (s OrbitPoseSink) SetPose(p orbit.Pose) {
	if s.Entry == nil || !s.Entry.Valid() {
		return
	}
	center := mgl64.Vec3{}
	if s.Entry.HasComponent(Orbit) {
		center = Orbit.Get(s.Entry).Center
	}
	t := Transform.Get(s.Entry)
	t.Position = center.Add(p.Position)
	t.Yaw = p.Yaw
	t.Rotation = p.Rotation
}
