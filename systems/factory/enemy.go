package factory

import (
	"github.com/automoto/heartkeep/archetypes"
	"github.com/automoto/heartkeep/components"
	cfg "github.com/automoto/heartkeep/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateGoblin spawns a wandering melee enemy and counts it toward the
// enemies that must die before the exit opens.
func CreateGoblin(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	goblin := archetypes.Goblin.Spawn(ecs)

	components.Transform.SetValue(goblin, components.TransformData{Vec2: dmath.Vec2{X: x, Y: y}})
	components.Facing.SetValue(goblin, components.FacingData{Rotation: components.East})
	components.Physical.SetValue(goblin, components.NewPhysical(cfg.Enemy.GoblinSize))
	components.Sprite.SetValue(goblin, components.SpriteData{Index: cfg.SpriteGoblinIdle})
	components.Health.SetValue(goblin, components.NewHealth(cfg.Enemy.GoblinHealth))

	hs := components.NewHitState()
	hs.Set(components.ChannelEnemyAiming, 20, 10, 16, 0)
	hs.Set(components.ChannelEnemySight, 64, 64, 20, 0)
	hs.Set(components.ChannelPlayerHittable, 12, 12, 0, 0)
	components.HitState.SetValue(goblin, hs)

	components.ChaseAndWander.SetValue(goblin, components.ChaseAndWanderData{
		WanderSpeed:    cfg.Enemy.GoblinWanderSpeed,
		ChaseSpeed:     cfg.Enemy.GoblinChaseSpeed,
		WanderProgress: -1,
		Idle:           IdleAnimation(cfg.SpriteGoblinIdle),
		Walking:        WalkingAnimation(cfg.SpriteGoblinIdle, cfg.SpriteGoblinWalk0, cfg.SpriteGoblinWalk1, cfg.Animation.WalkFrame),
	})
	components.MeleeEnemy.SetValue(goblin, components.MeleeEnemyData{
		Damage: cfg.Enemy.GoblinDamage,
		Attack: GoblinAttackAnimation(),
	})

	if ws, ok := components.WorldState.First(ecs.World); ok {
		components.WorldState.Get(ws).EnemiesRemaining++
	}

	return goblin
}
