package factory

import (
	"github.com/automoto/heartkeep/archetypes"
	"github.com/automoto/heartkeep/components"
	cfg "github.com/automoto/heartkeep/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateWall spawns a static w x h body centered on (x, y).
func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	components.Transform.SetValue(wall, components.TransformData{Vec2: dmath.Vec2{X: x, Y: y}})
	components.Physical.SetValue(wall, components.NewWallPhysical(w, h))
	components.Sprite.SetValue(wall, components.SpriteData{Index: cfg.SpriteWall})

	return wall
}
