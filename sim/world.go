// Package sim wires orbiters into a donburi world and drives it at a fixed
// tick rate, with or without a window.
package sim

import (
	"fmt"
	"io/fs"

	"github.com/automoto/doomerang-orbit/components"
	cfg "github.com/automoto/doomerang-orbit/config"
	"github.com/automoto/doomerang-orbit/shared/leveldata"
	"github.com/automoto/doomerang-orbit/systems"
	"github.com/automoto/doomerang-orbit/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options controls how NewWorld populates the world.
type Options struct {
	Width, Height int

	// LogCompletions logs every range-completed event.
	LogCompletions bool
}

// NewWorld builds an ECS with the orbit systems registered and an empty
// spatial index sized width x height.
func NewWorld(opts Options) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateOrbiters)
	e.AddSystem(systems.UpdateObjects)

	factory.CreateSpace(e, opts.Width, opts.Height, cfg.Orbit.CellSize, cfg.Orbit.CellSize)

	components.RangeCompleted.Subscribe(e.World, systems.CountCompletions)
	if opts.LogCompletions {
		components.RangeCompleted.Subscribe(e.World, systems.LogCompletions)
	}
	return e
}

// LoadMap builds a world sized to the TMX map at path and spawns one orbiter
// per rectangle in its OrbitPaths group.
func LoadMap(fsys fs.FS, path string, opts Options) (*ecs.ECS, []*donburi.Entry, error) {
	m, err := leveldata.LoadOrbitMap(fsys, path)
	if err != nil {
		return nil, nil, err
	}
	opts.Width, opts.Height = m.MapWidth, m.MapHeight
	e := NewWorld(opts)
	entries, err := factory.CreateOrbitersFromMap(e, m)
	if err != nil {
		return nil, nil, err
	}
	return e, entries, nil
}

// SpawnPreset builds a world with a single orbiter using the named preset,
// centered in the world.
func SpawnPreset(preset string, opts Options) (*ecs.ECS, *donburi.Entry, error) {
	e := NewWorld(opts)
	center := mgl64.Vec3{float64(opts.Width) / 2, 0, float64(opts.Height) / 2}
	entry, err := factory.CreateOrbiterFromPreset(e, preset, preset, center)
	if err != nil {
		return nil, nil, fmt.Errorf("spawn preset: %w", err)
	}
	return e, entry, nil
}
