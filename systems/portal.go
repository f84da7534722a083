package systems

import (
	"github.com/automoto/heartkeep/components"
	cfg "github.com/automoto/heartkeep/config"
	"github.com/automoto/heartkeep/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePortals opens every exit once no enemies remain and grows the
// trigger box of exits that are still opening.
func UpdatePortals(ecs *ecs.ECS) {
	ws := worldState(ecs.World)
	if ws == nil {
		return
	}
	dt := delta(ecs.World)

	components.Portal.Each(ecs.World, func(e *donburi.Entry) {
		portal := components.Portal.Get(e)
		if !portal.Opened && ws.EnemiesRemaining <= 0 {
			portal.Opened = true
			ws.ExitOpened = true
			portal.Grow = gween.New(0, float32(portal.Size), float32(cfg.Level.PortalOpenTime), ease.OutQuad)
			if portal.Spin != nil && e.HasComponent(components.Animation) {
				components.Animation.Get(e).StartLoop(portal.Spin)
			}
		}
		if portal.Grow == nil || !e.HasComponent(components.HitState) {
			return
		}
		size, done := portal.Grow.Update(float32(dt))
		components.HitState.Get(e).Set(components.ChannelPortal, float64(size), float64(size), 0, 0)
		if done {
			portal.Grow = nil
		}
	})
}

// NewExitSystem reports whether the player is standing in an open exit.
func NewExitSystem() *HitboxCollisionSystem {
	return &HitboxCollisionSystem{
		Source: components.ChannelPortal,
		Target: components.ChannelEnemyHittable,
		Before: func(ecs *ecs.ECS) {
			if ws := worldState(ecs.World); ws != nil {
				ws.StandingOnExit = false
			}
		},
		Gate: func(ecs *ecs.ECS) bool {
			ws := worldState(ecs.World)
			return ws != nil && ws.ExitOpened
		},
		Collide: func(ecs *ecs.ECS, hit HitboxHit) {
			if hit.Target.HasComponent(tags.Player) {
				worldState(ecs.World).StandingOnExit = true
			}
		},
	}
}
