package systems

import (
	"log"

	"github.com/automoto/doomerang-orbit/components"
	cfg "github.com/automoto/doomerang-orbit/config"
	"github.com/automoto/doomerang-orbit/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateOrbiters advances every orbiter by one fixed tick, then delivers the
// range-completed events raised during the tick.
func UpdateOrbiters(ecs *ecs.ECS) {
	dt := cfg.Orbit.TickDelta
	tags.Orbiter.Each(ecs.World, func(e *donburi.Entry) {
		components.Orbit.Get(e).Driver.Tick(dt)
	})
	components.RangeCompleted.ProcessEvents(ecs.World)
}

// CountCompletions bumps the completion counter on the orbiter that raised
// the event.
func CountCompletions(w donburi.World, ev components.RangeCompletedData) {
	if ev.Entry == nil || !ev.Entry.Valid() || !ev.Entry.HasComponent(components.Orbit) {
		return
	}
	components.Orbit.Get(ev.Entry).Completions++
}

func LogCompletions(w donburi.World, ev components.RangeCompletedData) {
	c := ev.Completion
	log.Printf("[orbit] %s completed %s range %.1f..%.1f (%s)",
		ev.Name, c.Mode, c.StartAngle, c.EndAngle, c.Direction)
}

// SetOrbitersPlaying starts or stops every orbiter.
func SetOrbitersPlaying(ecs *ecs.ECS, playing bool) {
	tags.Orbiter.Each(ecs.World, func(e *donburi.Entry) {
		d := components.Orbit.Get(e).Driver
		if playing {
			d.Play()
		} else {
			d.Stop()
		}
	})
}

// ResetOrbiters places every orbiter back on its initial angle.
func ResetOrbiters(ecs *ecs.ECS) {
	tags.Orbiter.Each(ecs.World, func(e *donburi.Entry) {
		d := components.Orbit.Get(e).Driver
		d.ResetToInitialPosition(d.Settings().InitialAngle)
	})
}
