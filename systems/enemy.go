package systems

import (
	"github.com/automoto/heartkeep/components"
	cfg "github.com/automoto/heartkeep/config"
	"github.com/automoto/heartkeep/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/filter"
)

var wanderDirections = [4]dmath.Vec2{
	{X: 1, Y: 0},
	{X: -1, Y: 0},
	{X: 0, Y: 1},
	{X: 0, Y: -1},
}

// NewSightSystem makes enemies remember where they last saw the player.
func NewSightSystem() *HitboxCollisionSystem {
	return &HitboxCollisionSystem{
		Source: components.ChannelEnemySight,
		Target: components.ChannelEnemyHittable,
		Collide: func(_ *ecs.ECS, hit HitboxHit) {
			if !hit.Source.HasComponent(components.ChaseAndWander) {
				return
			}
			pos := components.Transform.Get(hit.Target).Vec2
			components.ChaseAndWander.Get(hit.Source).AwareOf = &pos
		},
	}
}

// NewAimingSystem flags melee enemies whose aiming box covers the player.
// The flag is rebuilt from scratch every tick.
func NewAimingSystem() *HitboxCollisionSystem {
	return &HitboxCollisionSystem{
		Source: components.ChannelEnemyAiming,
		Target: components.ChannelEnemyHittable,
		Before: func(ecs *ecs.ECS) {
			components.MeleeEnemy.Each(ecs.World, func(e *donburi.Entry) {
				components.MeleeEnemy.Get(e).InMelee = false
			})
		},
		Collide: func(_ *ecs.ECS, hit HitboxHit) {
			if hit.Source.HasComponent(components.MeleeEnemy) {
				components.MeleeEnemy.Get(hit.Source).InMelee = true
			}
		},
	}
}

// UpdateMeleeEnemies drops enemy attack boxes left over from a finished swing.
func UpdateMeleeEnemies(ecs *ecs.ECS) {
	components.MeleeEnemy.Each(ecs.World, func(e *donburi.Entry) {
		if stateOf(e) != components.StateAttacking && e.HasComponent(components.HitState) {
			components.HitState.Get(e).Clear(components.ChannelEnemyAttack)
		}
	})
}

var chaserQuery = donburi.NewQuery(filter.Contains(
	components.ChaseAndWander,
	components.Animation,
	components.Transform,
	components.Velocity,
))

// UpdateChaseAndWander moves idle or walking enemies. Once an enemy has seen
// the player it attacks when in melee range and otherwise closes in; before
// that it alternates short random walks with pauses.
func UpdateChaseAndWander(ecs *ecs.ECS) {
	dt := delta(ecs.World)
	rng := randomSource(ecs.World)

	chaserQuery.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		if anim.State() != components.StateIdle && anim.State() != components.StateWalking {
			return
		}
		enemy := components.ChaseAndWander.Get(e)
		velocity := components.Velocity.Get(e)

		if enemy.AwareOf != nil {
			if e.HasComponent(components.MeleeEnemy) {
				melee := components.MeleeEnemy.Get(e)
				if melee.InMelee && melee.Attack != nil {
					anim.Start(melee.Attack, components.StateAttacking)
					return
				}
			}
			pos := components.Transform.Get(e)
			dx := enemy.AwareOf.X - pos.X
			dy := enemy.AwareOf.Y - pos.Y
			if gamemath.Length(dx, dy) > cfg.Enemy.ChaseMinDistance {
				nx, ny := gamemath.Normalize(dx, dy)
				walk(e, anim, enemy, velocity, nx*enemy.ChaseSpeed, ny*enemy.ChaseSpeed)
			} else {
				idle(anim, enemy, velocity)
			}
			return
		}

		enemy.WanderProgress -= dt
		if enemy.WanderDir != nil {
			if enemy.WanderProgress <= 0 {
				idle(anim, enemy, velocity)
				enemy.WanderProgress = between(rng, cfg.Enemy.WanderPauseMin, cfg.Enemy.WanderPauseMax)
				enemy.WanderDir = nil
			} else if anim.State() != components.StateWalking {
				dir := *enemy.WanderDir
				walk(e, anim, enemy, velocity, dir.X*enemy.WanderSpeed, dir.Y*enemy.WanderSpeed)
			}
			return
		}
		if enemy.WanderProgress <= 0 {
			enemy.WanderProgress = between(rng, cfg.Enemy.IdleCooldownMin, cfg.Enemy.IdleCooldownMax)
			dir := wanderDirections[pick(rng, len(wanderDirections))]
			enemy.WanderDir = &dir
		}
	})
}

func walk(e *donburi.Entry, anim *components.AnimationData, enemy *components.ChaseAndWanderData, velocity *components.VelocityData, vx, vy float64) {
	if anim.State() != components.StateWalking && enemy.Walking != nil {
		anim.Start(enemy.Walking, components.StateWalking)
	}
	velocity.X, velocity.Y = vx, vy
	setFacing(e, facingFor(vx, vy))
}

func idle(anim *components.AnimationData, enemy *components.ChaseAndWanderData, velocity *components.VelocityData) {
	if enemy.Idle != nil {
		anim.Start(enemy.Idle, components.StateIdle)
	}
	velocity.X, velocity.Y = 0, 0
}

func between(rng *components.RandomData, lo, hi float64) float64 {
	if rng == nil || rng.Rand == nil {
		return lo
	}
	return rng.Between(lo, hi)
}

func pick(rng *components.RandomData, n int) int {
	if rng == nil || rng.Rand == nil {
		return 0
	}
	return rng.Intn(n)
}
