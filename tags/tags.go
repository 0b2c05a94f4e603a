package tags

import "github.com/yohamta/donburi"

var (
	Orbiter = donburi.NewTag().SetName("Orbiter")
)

// Resolv tags for spatial queries
const (
	ResolvOrbiter = "orbiter"
)
