package components

import (
	"github.com/automoto/doomerang-orbit/shared/orbit"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

type RangeCompletedData struct {
	Entry      *donburi.Entry
	Name       string
	Completion orbit.Completion
}

// RangeCompleted is published by an orbiter's driver each time it finishes
// its traversal range. Subscribers run when the event queue is processed.
var RangeCompleted = events.NewEventType[RangeCompletedData]()
