package systems

import (
	"github.com/automoto/heartkeep/components"
	cfg "github.com/automoto/heartkeep/config"
	"github.com/yohamta/donburi/ecs"
)

// NewPlayerAttackSystem resolves the player's swings against anything
// carrying a player-hittable box.
func NewPlayerAttackSystem() *HitboxCollisionSystem {
	return &HitboxCollisionSystem{
		Source: components.ChannelPlayerAttack,
		Target: components.ChannelPlayerHittable,
		Collide: func(_ *ecs.ECS, hit HitboxHit) {
			if !staggerTarget(hit) {
				return
			}
			if hit.Source.HasComponent(components.Player) && hit.Target.HasComponent(components.Health) {
				components.Health.Get(hit.Target).Left -= cfg.Combat.PlayerAttackDamage
			}
		},
	}
}

// NewEnemyAttackSystem resolves melee enemy swings against the player.
func NewEnemyAttackSystem() *HitboxCollisionSystem {
	return &HitboxCollisionSystem{
		Source: components.ChannelEnemyAttack,
		Target: components.ChannelEnemyHittable,
		Collide: func(_ *ecs.ECS, hit HitboxHit) {
			if !staggerTarget(hit) {
				return
			}
			if hit.Source.HasComponent(components.MeleeEnemy) && hit.Target.HasComponent(components.Health) {
				damage := components.MeleeEnemy.Get(hit.Source).Damage
				components.Health.Get(hit.Target).HitFor(damage, cfg.Combat.MeleeInvuln)
			}
		},
	}
}
