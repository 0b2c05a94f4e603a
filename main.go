package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/doomerang-orbit/assets"
	"github.com/automoto/doomerang-orbit/config"
	"github.com/automoto/doomerang-orbit/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	mapPath := flag.String("map", "", "TMX file with an OrbitPaths object group")
	preset := flag.String("preset", "", "Preset to show instead of a map")
	tickRate := flag.Int("tickrate", 60, "Simulation ticks per second")
	flag.Parse()

	config.SetTickRate(*tickRate)
	ebiten.SetTPS(config.Orbit.TickRate)

	var scene Scene
	var err error
	switch {
	case *mapPath != "":
		scene, err = scenes.NewOrbitSceneFromMap(os.DirFS(filepath.Dir(*mapPath)), filepath.Base(*mapPath))
	case *preset != "":
		scene, err = scenes.NewOrbitSceneFromPreset(*preset)
	default:
		scene, err = scenes.NewOrbitSceneFromMap(assets.Maps(), assets.DemoMap)
	}
	if err != nil {
		log.Fatalf("Failed to build scene: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Orbit")

	if err := ebiten.RunGame(&Game{scene: scene}); err != nil {
		log.Fatal(err)
	}
}
