package archetypes

import (
	"github.com/automoto/doomerang-orbit/components"
	cfg "github.com/automoto/doomerang-orbit/config"
	"github.com/automoto/doomerang-orbit/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Orbiter = newArchetype(
		tags.Orbiter,
		components.Orbit,
		components.Transform,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
