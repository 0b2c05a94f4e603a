package sim

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/automoto/doomerang-orbit/assets"
	"github.com/automoto/doomerang-orbit/components"
	cfg "github.com/automoto/doomerang-orbit/config"
	"github.com/automoto/doomerang-orbit/shared/orbit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const demoTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="40" height="20" tilewidth="16" tileheight="16" infinite="0" nextlayerid="2" nextobjectid="3">
 <objectgroup id="1" name="OrbitPaths">
  <object id="1" name="swing" x="100" y="60" width="160" height="160">
   <properties>
    <property name="preset" value="pendulum"/>
   </properties>
  </object>
  <object id="2" name="lap" x="300" y="40" width="200" height="100">
   <properties>
    <property name="mode" value="once"/>
    <property name="startAngle" type="float" value="0"/>
    <property name="endAngle" type="float" value="45"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func TestSpawnPreset_StepCountsCompletions(t *testing.T) {
	e, entry, err := SpawnPreset("sweep", Options{Width: 640, Height: 360})
	require.NoError(t, err)

	loop := NewGameLoop(e, cfg.Orbit.TickRate)
	var seen int
	loop.OnTick = func(tick int) { seen = tick }

	o := components.Orbit.Get(entry)
	for i := 0; i < 60 && o.Driver.State() != orbit.Finished; i++ {
		loop.Step(cfg.Orbit.TickRate)
	}

	assert.Equal(t, orbit.Finished, o.Driver.State())
	assert.Equal(t, 1, o.Completions)
	assert.Equal(t, loop.Ticks(), seen)
}

func TestSpawnPreset_Unknown(t *testing.T) {
	_, _, err := SpawnPreset("nope", Options{Width: 100, Height: 100})
	assert.Error(t, err)
}

func TestLoadMap(t *testing.T) {
	fsys := fstest.MapFS{"demo.tmx": {Data: []byte(demoTMX)}}

	e, entries, err := LoadMap(fsys, "demo.tmx", Options{})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	swing := components.Orbit.Get(entries[0])
	assert.Equal(t, "pendulum", swing.Preset)
	assert.Equal(t, orbit.PingPong, swing.Driver.Motion().Mode)

	lap := components.Orbit.Get(entries[1])
	assert.Equal(t, orbit.Once, lap.Driver.Motion().Mode)
	assert.Equal(t, 100.0, lap.Driver.Curve().Config.RadiusX)

	NewGameLoop(e, cfg.Orbit.TickRate).Step(10 * cfg.Orbit.TickRate)
	assert.Equal(t, orbit.Finished, lap.Driver.State())
	assert.Equal(t, 1, lap.Completions)
	assert.GreaterOrEqual(t, swing.Completions, 1)
}

func TestGameLoop_RunStops(t *testing.T) {
	e := NewWorld(Options{Width: 64, Height: 64})
	loop := NewGameLoop(e, 1000)

	done := make(chan struct{})
	go func() {
		loop.Run(0)
		close(done)
	}()

	assert.Eventually(t, func() bool { return loop.Ticks() > 0 }, time.Second, time.Millisecond)
	loop.Stop()
	loop.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop did not stop")
	}
	assert.False(t, loop.Running())
}

func TestGameLoop_RunMaxTicks(t *testing.T) {
	loop := NewGameLoop(NewWorld(Options{Width: 64, Height: 64}), 1000)
	loop.Run(5)
	assert.Equal(t, 5, loop.Ticks())
}

func TestLoadMap_BundledDemo(t *testing.T) {
	e, entries, err := LoadMap(assets.Maps(), assets.DemoMap, Options{})
	require.NoError(t, err)
	require.Len(t, entries, 4)

	NewGameLoop(e, cfg.Orbit.TickRate).Step(cfg.Orbit.TickRate)
	for _, entry := range entries {
		o := components.Orbit.Get(entry)
		assert.Equal(t, orbit.Playing, o.Driver.State(), o.Name)
		assert.Greater(t, o.Driver.Pose().Yaw+o.Driver.ProgressRatio(), 0.0, o.Name)
	}
}
