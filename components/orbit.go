package components

import (
	"github.com/automoto/doomerang-orbit/shared/orbit"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type OrbitData struct {
	Name   string
	Preset string

	// World-space point the baked curve is centered on
	Center mgl64.Vec3
	Driver *orbit.Driver

	// Number of range-completed events seen for this orbiter
	Completions int
}

var Orbit = donburi.NewComponentType[OrbitData]()
