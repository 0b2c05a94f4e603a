package systems

import (
	"testing"

	"github.com/automoto/doomerang-orbit/components"
	cfg "github.com/automoto/doomerang-orbit/config"
	"github.com/automoto/doomerang-orbit/shared/orbit"
	"github.com/automoto/doomerang-orbit/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestECS() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 640, 360, 16, 16)
	components.RangeCompleted.Subscribe(e.World, CountCompletions)
	return e
}

func oncePreset() cfg.OrbitPresetConfig {
	return cfg.OrbitPresetConfig{
		Curve: orbit.CurveConfig{
			RadiusX: 50, RadiusZ: 50, Resolution: 360,
			StraightSpeed: 60, CornerSpeed: 60,
		},
		Traversal: orbit.Settings{StartAngle: 0, EndAngle: 90, Mode: orbit.Once},
		AutoPlay:  true,
	}
}

func TestUpdateOrbiters_OnceCompletesAndCounts(t *testing.T) {
	e := newTestECS()
	center := mgl64.Vec3{200, 0, 150}
	entry := factory.CreateOrbiter(e, "arc", center, oncePreset())

	o := components.Orbit.Get(entry)
	require.Equal(t, orbit.Playing, o.Driver.State())

	// quarter circle of radius 50 at 60 u/s takes a bit over a second
	for i := 0; i < 3*cfg.Orbit.TickRate; i++ {
		UpdateOrbiters(e)
	}

	assert.Equal(t, orbit.Finished, o.Driver.State())
	assert.Equal(t, 1, o.Completions)

	tr := components.Transform.Get(entry)
	want := center.Add(o.Driver.Pose().Position)
	assert.InDelta(t, want.X(), tr.Position.X(), 1e-9)
	assert.InDelta(t, want.Z(), tr.Position.Z(), 1e-9)
	// 90 degrees on a circle sits at +Z
	assert.InDelta(t, 200.0, tr.Position.X(), 1.0)
	assert.InDelta(t, 200.0, tr.Position.Z(), 1.0)
}

func TestUpdateObjects_FollowsTransform(t *testing.T) {
	e := newTestECS()
	entry := factory.CreateOrbiter(e, "arc", mgl64.Vec3{100, 0, 100}, oncePreset())

	for i := 0; i < 10; i++ {
		UpdateOrbiters(e)
	}
	UpdateObjects(e)

	x, y := components.Object.Get(entry).Center()
	tx, ty := components.Transform.Get(entry).ScreenPos()
	assert.InDelta(t, tx, x, 1e-9)
	assert.InDelta(t, ty, y, 1e-9)
}

func TestSetOrbitersPlayingAndReset(t *testing.T) {
	e := newTestECS()
	p := oncePreset()
	p.AutoPlay = false
	entry := factory.CreateOrbiter(e, "arc", mgl64.Vec3{}, p)
	d := components.Orbit.Get(entry).Driver

	UpdateOrbiters(e)
	assert.Equal(t, 0.0, d.Motion().CurrentProgress)

	SetOrbitersPlaying(e, true)
	UpdateOrbiters(e)
	assert.Greater(t, d.Motion().CurrentProgress, 0.0)

	SetOrbitersPlaying(e, false)
	before := d.Motion().CurrentProgress
	UpdateOrbiters(e)
	assert.Equal(t, before, d.Motion().CurrentProgress)

	ResetOrbiters(e)
	assert.Equal(t, 0.0, d.Motion().CurrentProgress)
}

func TestCountCompletions_IgnoresInvalidEntries(t *testing.T) {
	w := donburi.NewWorld()
	assert.NotPanics(t, func() {
		CountCompletions(w, components.RangeCompletedData{})
	})
}
