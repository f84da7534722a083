package factory

import (
	"github.com/automoto/heartkeep/archetypes"
	"github.com/automoto/heartkeep/components"
	cfg "github.com/automoto/heartkeep/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns the player carrying over health and upgrades from state.
func CreatePlayer(ecs *ecs.ECS, x, y float64, state components.PlayerState) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Transform.SetValue(player, components.TransformData{Vec2: dmath.Vec2{X: x, Y: y}})
	components.Facing.SetValue(player, components.FacingData{Rotation: components.East})
	components.Physical.SetValue(player, components.NewPhysical(cfg.Player.Size))
	components.Sprite.SetValue(player, components.SpriteData{Index: cfg.SpritePlayerIdle})

	components.Player.SetValue(player, components.PlayerData{
		WalkAccel: cfg.Player.WalkAccel,
		WalkSpeed: cfg.Player.WalkSpeed,
		BigHearts: state.Has(components.GoldenAegis),
		Healthy:   state.Has(components.HeartBracelet),
		Idle:      IdleAnimation(cfg.SpritePlayerIdle),
		Walking:   WalkingAnimation(cfg.SpritePlayerIdle, cfg.SpritePlayerWalk0, cfg.SpritePlayerWalk1, cfg.Animation.WalkFrame),
		Attack:    PlayerAttackAnimation(),
	})

	hs := components.NewHitState()
	hs.Set(components.ChannelEnemyHittable, 16, 16, 0, 0)
	hs.Set(components.ChannelPlayerInteract, 24, 16, 8, 0)
	components.HitState.SetValue(player, hs)

	components.Health.SetValue(player, components.HealthData{
		Max:    state.MaxHealth,
		Left:   state.Health,
		Invuln: cfg.Player.SpawnInvuln,
	})

	return player
}
