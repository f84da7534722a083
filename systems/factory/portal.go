package factory

import (
	"github.com/automoto/heartkeep/archetypes"
	"github.com/automoto/heartkeep/components"
	cfg "github.com/automoto/heartkeep/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreatePortal spawns a closed level exit. It has no trigger box until it opens.
func CreatePortal(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	portal := archetypes.Portal.Spawn(ecs)

	components.Transform.SetValue(portal, components.TransformData{Vec2: dmath.Vec2{X: x, Y: y}})
	components.Sprite.SetValue(portal, components.SpriteData{Index: cfg.SpritePortalClosed})
	components.HitState.SetValue(portal, components.NewHitState())
	components.Portal.SetValue(portal, components.PortalData{
		Size: cfg.Level.PortalSize,
		Spin: SpinAnimation(cfg.SpritePortalSpin, cfg.Animation.SpinFrame),
	})

	return portal
}
