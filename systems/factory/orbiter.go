package factory

import (
	"errors"
	"fmt"

	"github.com/automoto/doomerang-orbit/archetypes"
	"github.com/automoto/doomerang-orbit/components"
	cfg "github.com/automoto/doomerang-orbit/config"
	"github.com/automoto/doomerang-orbit/shared/leveldata"
	"github.com/automoto/doomerang-orbit/shared/orbit"
	"github.com/automoto/doomerang-orbit/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var ErrUnknownPreset = errors.New("unknown orbit preset")

// CreateOrbiter spawns an entity that follows the preset's curve around
// center. Range completions are published as components.RangeCompleted.
func CreateOrbiter(ecs *ecs.ECS, name string, center mgl64.Vec3, preset cfg.OrbitPresetConfig) *donburi.Entry {
	orbiter := archetypes.Orbiter.Spawn(ecs)

	driver := orbit.NewDriver(preset.Curve, preset.Traversal)
	components.Orbit.SetValue(orbiter, components.OrbitData{
		Name:   name,
		Center: center,
		Driver: driver,
	})

	size := cfg.Orbit.ObjectSize
	obj := resolv.NewObject(center.X()-size/2, center.Z()-size/2, size, size, tags.ResolvOrbiter)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = orbiter // Link for O(1) lookup
	components.Object.SetValue(orbiter, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	world := ecs.World
	driver.OnRangeCompleted(func(c orbit.Completion) {
		components.RangeCompleted.Publish(world, components.RangeCompletedData{
			Entry:      orbiter,
			Name:       name,
			Completion: c,
		})
	})

	// Writing the pose also syncs Transform with the initial placement
	driver.SetPoseSink(components.OrbitPoseSink{Entry: orbiter})
	driver.ResetToInitialPosition(preset.Traversal.InitialAngle)
	components.Object.Get(orbiter).MoveCenterTo(components.Transform.Get(orbiter).ScreenPos())

	if preset.AutoPlay {
		driver.Play()
	}

	return orbiter
}

// CreateOrbiterFromPath spawns an orbiter for a TMX rectangle. The path's
// preset (or the default preset) supplies anything the map leaves unset.
func CreateOrbiterFromPath(ecs *ecs.ECS, path leveldata.OrbitPath) (*donburi.Entry, error) {
	preset, err := PresetForPath(path)
	if err != nil {
		return nil, err
	}
	center := mgl64.Vec3{path.CenterX, 0, path.CenterY}
	e := CreateOrbiter(ecs, path.Name, center, preset)
	components.Orbit.Get(e).Preset = presetName(path)
	return e, nil
}

// PresetForPath resolves the preset a TMX rectangle asks for and applies its
// property overrides. The rectangle's size always sets the radii.
func PresetForPath(path leveldata.OrbitPath) (cfg.OrbitPresetConfig, error) {
	name := presetName(path)
	p, ok := cfg.Orbit.Presets[name]
	if !ok {
		return cfg.OrbitPresetConfig{}, fmt.Errorf("%s: %w %q", path.Name, ErrUnknownPreset, name)
	}

	p.Curve.RadiusX = path.RadiusX
	p.Curve.RadiusZ = path.RadiusZ

	floats := map[string]*float64{
		leveldata.PropRoundness:     &p.Curve.Roundness,
		leveldata.PropStraightSpeed: &p.Curve.StraightSpeed,
		leveldata.PropCornerSpeed:   &p.Curve.CornerSpeed,
		leveldata.PropHeight:        &p.Curve.InitialHeight,
		leveldata.PropInitialAngle:  &p.Traversal.InitialAngle,
		leveldata.PropStartAngle:    &p.Traversal.StartAngle,
		leveldata.PropEndAngle:      &p.Traversal.EndAngle,
		leveldata.PropSpinSpeed:     &p.Traversal.SelfSpinSpeed,
		leveldata.PropSpinRamp:      &p.Traversal.SpinRamp,
	}
	for prop, dst := range floats {
		if v, ok := path.Floats[prop]; ok {
			*dst = v
		}
	}
	if v, ok := path.Ints[leveldata.PropResolution]; ok {
		p.Curve.Resolution = v
	}
	if v, ok := path.Bools[leveldata.PropAutoPlay]; ok {
		p.AutoPlay = v
	}

	var errs []error
	if v, ok := path.Strings[leveldata.PropMode]; ok {
		mode, err := orbit.ParseMode(v)
		errs = append(errs, err)
		p.Traversal.Mode = mode
	}
	if v, ok := path.Strings[leveldata.PropDirection]; ok {
		dir, err := orbit.ParseDirection(v)
		errs = append(errs, err)
		p.Traversal.Direction = dir
	}
	if v, ok := path.Strings[leveldata.PropSpinDirection]; ok {
		dir, err := orbit.ParseDirection(v)
		errs = append(errs, err)
		p.Traversal.SelfSpinDirection = dir
	}
	errs = append(errs, p.Curve.Validate())

	if err := errors.Join(errs...); err != nil {
		return cfg.OrbitPresetConfig{}, fmt.Errorf("orbit %s: %w", path.Name, err)
	}
	return p, nil
}

// CreateOrbitersFromMap spawns every path in m, stopping at the first error.
func CreateOrbitersFromMap(ecs *ecs.ECS, m *leveldata.OrbitMap) ([]*donburi.Entry, error) {
	entries := make([]*donburi.Entry, 0, len(m.Paths))
	for _, path := range m.Paths {
		e, err := CreateOrbiterFromPath(ecs, path)
		if err != nil {
			return entries, fmt.Errorf("map %s: %w", m.Name, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// CreateOrbiterFromPreset spawns an orbiter using a named preset unchanged.
func CreateOrbiterFromPreset(ecs *ecs.ECS, name, preset string, center mgl64.Vec3) (*donburi.Entry, error) {
	p, ok := cfg.Orbit.Presets[preset]
	if !ok {
		return nil, fmt.Errorf("%s: %w %q", name, ErrUnknownPreset, preset)
	}
	e := CreateOrbiter(ecs, name, center, p)
	components.Orbit.Get(e).Preset = preset
	return e, nil
}

func presetName(path leveldata.OrbitPath) string {
	if path.Preset != "" {
		return path.Preset
	}
	return cfg.Orbit.DefaultPreset
}
