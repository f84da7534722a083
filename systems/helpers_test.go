package systems

import (
	"testing"

	"github.com/automoto/heartkeep/components"
	cfg "github.com/automoto/heartkeep/config"
	"github.com/automoto/heartkeep/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/filter"
)

func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	t.Cleanup(cfg.Reset)
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSession(e, 1)
	return e
}

func setDelta(e *ecs.ECS, dt float64) {
	c, _ := components.Clock.First(e.World)
	components.Clock.Get(c).Delta = dt
}

func sessionInput(e *ecs.ECS) *components.InputData {
	return input(e.World)
}

// spawnBoxes creates a bare entity at (x, y) holding the given channel boxes.
func spawnBoxes(e *ecs.ECS, x, y float64, boxes map[components.Channel]components.Hitbox, extra ...donburi.IComponentType) *donburi.Entry {
	cs := append([]donburi.IComponentType{components.Transform, components.HitState}, extra...)
	entry := e.World.Entry(e.World.Create(cs...))
	components.Transform.SetValue(entry, components.TransformData{Vec2: dmath.Vec2{X: x, Y: y}})
	hs := components.NewHitState()
	for ch, box := range boxes {
		hs.SetBox(ch, box)
	}
	components.HitState.SetValue(entry, hs)
	return entry
}

func square(size float64) components.Hitbox {
	return components.NewHitboxRect(size, size, 0, 0)
}

func finishAnimation(e *donburi.Entry) {
	components.Animation.Get(e).Step(100)
}

func countOf(e *ecs.ECS, c donburi.IComponentType) int {
	n := 0
	donburi.NewQuery(filter.Contains(c)).Each(e.World, func(*donburi.Entry) { n++ })
	return n
}
