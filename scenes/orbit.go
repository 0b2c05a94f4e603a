package scenes

import (
	"image/color"
	"io/fs"

	cfg "github.com/automoto/doomerang-orbit/config"
	"github.com/automoto/doomerang-orbit/sim"
	"github.com/automoto/doomerang-orbit/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// OrbitScene shows orbiters moving along their baked paths with a debug
// overlay.
type OrbitScene struct {
	ecs     *ecs.ECS
	playing bool
}

// NewOrbitSceneFromMap spawns one orbiter per rectangle in a TMX map.
func NewOrbitSceneFromMap(fsys fs.FS, path string) (*OrbitScene, error) {
	e, _, err := sim.LoadMap(fsys, path, sim.Options{LogCompletions: true})
	if err != nil {
		return nil, err
	}
	return newOrbitScene(e), nil
}

// NewOrbitSceneFromPreset spawns a single orbiter in the middle of the screen.
func NewOrbitSceneFromPreset(preset string) (*OrbitScene, error) {
	e, _, err := sim.SpawnPreset(preset, sim.Options{
		Width:          cfg.C.Width,
		Height:         cfg.C.Height,
		LogCompletions: true,
	})
	if err != nil {
		return nil, err
	}
	return newOrbitScene(e), nil
}

func newOrbitScene(e *ecs.ECS) *OrbitScene {
	e.AddRenderer(cfg.Default, systems.DrawOrbitPaths)
	e.AddRenderer(cfg.Default, systems.DrawOrbiters)
	e.AddRenderer(cfg.Default, systems.DrawHelp)
	return &OrbitScene{ecs: e, playing: true}
}

func (s *OrbitScene) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.playing = !s.playing
		systems.SetOrbitersPlaying(s.ecs, s.playing)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		systems.ResetOrbiters(s.ecs)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		cfg.Debug.ShowPaths = !cfg.Debug.ShowPaths
	}
	s.ecs.Update()
}

func (s *OrbitScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	s.ecs.Draw(screen)
}
