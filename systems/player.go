package systems

import (
	"github.com/automoto/heartkeep/components"
	cfg "github.com/automoto/heartkeep/config"
	"github.com/automoto/heartkeep/shared/gamemath"
	"github.com/automoto/heartkeep/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayerMovement turns the movement axes into velocity and facing.
// Nothing happens unless both axes are bound.
func UpdatePlayerMovement(ecs *ecs.ECS) {
	in := input(ecs.World)
	if in == nil {
		return
	}
	xTilt, okX := in.Axis(cfg.AxisLeftRight)
	yTilt, okY := in.Axis(cfg.AxisUpDown)
	if !okX || !okY {
		return
	}
	dt := delta(ecs.World)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Velocity) || !e.HasComponent(components.Animation) {
			return
		}
		anim := components.Animation.Get(e)
		if anim.State() != components.StateIdle && anim.State() != components.StateWalking {
			return
		}
		player := components.Player.Get(e)
		v := components.Velocity.Get(e)

		v.X = gamemath.WalkAxis(v.X, xTilt, player.WalkAccel, player.WalkSpeed, cfg.Player.DecelFactor, dt)
		v.Y = gamemath.WalkAxis(v.Y, yTilt, player.WalkAccel, player.WalkSpeed, cfg.Player.DecelFactor, dt)

		if xTilt != 0 || yTilt != 0 {
			setFacing(e, facingFor(v.X, v.Y))
			if anim.State() == components.StateIdle && player.Walking != nil {
				anim.Start(player.Walking, components.StateWalking)
			}
			return
		}
		if (anim.State() == components.StateWalking || !anim.Active()) && player.Idle != nil {
			anim.Start(player.Idle, components.StateIdle)
		}
	})
}

// UpdatePlayerAttack starts a swing on the attack action and clears the
// attack box whenever the player is not mid-swing.
func UpdatePlayerAttack(ecs *ecs.ECS) {
	attacking := false
	if in := input(ecs.World); in != nil {
		attacking = in.ActionDown(cfg.ActionAttack)
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Animation) {
			return
		}
		anim := components.Animation.Get(e)
		player := components.Player.Get(e)
		if attacking && player.Attack != nil &&
			(anim.State() == components.StateIdle || anim.State() == components.StateWalking) {
			anim.Start(player.Attack, components.StateAttacking)
		}
		if anim.State() != components.StateAttacking && e.HasComponent(components.HitState) {
			components.HitState.Get(e).Clear(components.ChannelPlayerAttack)
		}
	})
}
