package systems

import (
	"github.com/automoto/doomerang-orbit/components"
	"github.com/automoto/doomerang-orbit/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves each orbiter's spatial object onto its transform.
func UpdateObjects(ecs *ecs.ECS) {
	tags.Orbiter.Each(ecs.World, func(e *donburi.Entry) {
		t := components.Transform.Get(e)
		components.Object.Get(e).MoveCenterTo(t.ScreenPos())
	})
}
