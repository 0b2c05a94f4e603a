package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/automoto/doomerang-orbit/assets"
	"github.com/automoto/doomerang-orbit/components"
	"github.com/automoto/doomerang-orbit/config"
	"github.com/automoto/doomerang-orbit/sim"
	"github.com/automoto/doomerang-orbit/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func main() {
	mapPath := flag.String("map", "", "TMX file with an OrbitPaths object group")
	preset := flag.String("preset", "", "Preset to run instead of a map")
	ticks := flag.Int("ticks", 600, "Ticks to simulate (0 = until interrupted, realtime only)")
	tickRate := flag.Int("tickrate", 60, "Simulation ticks per second")
	realtime := flag.Bool("realtime", false, "Pace ticks with the wall clock")
	every := flag.Int("every", 60, "Log orbiter poses every N ticks (0 = never)")
	flag.Parse()

	config.SetTickRate(*tickRate)
	opts := sim.Options{Width: config.C.Width, Height: config.C.Height, LogCompletions: true}

	var world *ecs.ECS
	var err error
	switch {
	case *mapPath != "":
		world, _, err = sim.LoadMap(os.DirFS(filepath.Dir(*mapPath)), filepath.Base(*mapPath), opts)
	case *preset != "":
		world, _, err = sim.SpawnPreset(*preset, opts)
	default:
		world, _, err = sim.LoadMap(assets.Maps(), assets.DemoMap, opts)
	}
	if err != nil {
		log.Fatalf("Failed to build world: %v", err)
	}

	loop := sim.NewGameLoop(world, config.Orbit.TickRate)
	if *every > 0 {
		loop.OnTick = func(tick int) {
			if tick%*every == 0 {
				logPoses(world, tick)
			}
		}
	}

	if !*realtime {
		if *ticks <= 0 {
			log.Fatalf("-ticks must be positive without -realtime")
		}
		loop.Step(*ticks)
		logPoses(world, loop.Ticks())
		return
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down...")
		loop.Stop()
	}()

	log.Printf("Running %d ticks at %d/s", *ticks, config.Orbit.TickRate)
	loop.Run(*ticks)
	logPoses(world, loop.Ticks())
}

func logPoses(world *ecs.ECS, tick int) {
	tags.Orbiter.Each(world.World, func(e *donburi.Entry) {
		o := components.Orbit.Get(e)
		t := components.Transform.Get(e)
		log.Printf("[tick %d] %s %s pos=(%.2f, %.2f, %.2f) yaw=%.1f progress=%.3f completions=%d",
			tick, o.Name, o.Driver.State(),
			t.Position.X(), t.Position.Y(), t.Position.Z(),
			t.Yaw, o.Driver.ProgressRatio(), o.Completions)
	})
}
