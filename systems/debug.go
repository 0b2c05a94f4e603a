package systems

import (
	"fmt"

	"github.com/automoto/doomerang-orbit/components"
	cfg "github.com/automoto/doomerang-orbit/config"
	"github.com/automoto/doomerang-orbit/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawOrbitPaths draws each baked curve as a closed polyline and, when
// enabled, the active traversal range on top of it.
func DrawOrbitPaths(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowPaths {
		return
	}
	tags.Orbiter.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Orbit.Get(e)
		curve := o.Driver.Curve()
		n := curve.Len()
		if n < 2 {
			return
		}
		cx, cz := float32(o.Center.X()), float32(o.Center.Z())
		for i := 0; i < n; i++ {
			a := curve.Points[i].Position
			b := curve.Points[(i+1)%n].Position
			vector.StrokeLine(screen,
				cx+float32(a.X()), cz+float32(a.Z()),
				cx+float32(b.X()), cz+float32(b.Z()),
				1, cfg.PathColor, false)
		}

		if !cfg.Debug.ShowRange {
			return
		}
		rng := o.Driver.Range()
		step := max(cfg.Debug.RangeStep, 1)
		samples := int(rng.RangeLength / curve.TotalPerimeter * float64(n))
		for k := 0; k <= samples; k += step {
			d := rng.RangeStartOffset + rng.Direction.Sign()*float64(k)/float64(n)*curve.TotalPerimeter
			p := curve.PositionAt(d)
			vector.FillCircle(screen, cx+float32(p.X()), cz+float32(p.Z()), 1.5, cfg.RangeColor, false)
		}
	})
}

// DrawOrbiters draws each orbiter's spatial box, its spin heading and a
// name/state label.
func DrawOrbiters(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Orbiter.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		t := components.Transform.Get(e)
		x, y := t.ScreenPos()

		vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, cfg.OrbiterColor, false)

		h := t.Heading().Mul(obj.W)
		vector.StrokeLine(screen, float32(x), float32(y), float32(x+h.X()), float32(y+h.Z()), 1, cfg.HeadingColor, false)

		if cfg.Debug.ShowLabels {
			o := components.Orbit.Get(e)
			label := fmt.Sprintf("%s %s %d", o.Name, o.Driver.State(), o.Completions)
			ebitenutil.DebugPrintAt(screen, label, int(obj.X), int(obj.Y+obj.H)+2)
		}
	})
}

// DrawHelp prints the viewer key bindings.
func DrawHelp(ecs *ecs.ECS, screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, "SPACE play/stop  R reset  P paths", 4, 4)
}
