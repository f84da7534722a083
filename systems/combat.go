package systems

import (
	"github.com/automoto/heartkeep/components"
	cfg "github.com/automoto/heartkeep/config"
	"github.com/yohamta/donburi"
)

// knockbackAnimation pushes backwards (East-relative) for distance at the
// configured speed, then holds still briefly.
func knockbackAnimation(distance float64) *components.HitboxAnimation {
	speed := cfg.Combat.KnockbackSpeed
	anim := components.NewHitboxAnimation()
	anim.AddFrameWithVelocity(-speed, 0, distance/speed)
	anim.AddFrameWithVelocity(0, 0, cfg.Combat.KnockbackStop)
	return anim
}

// staggerTarget plays the hit reaction on the target of hit. It reports
// false when the target is already reeling (or still immune) and the hit
// should be dropped entirely.
func staggerTarget(hit HitboxHit) bool {
	target := hit.Target
	if isStaggered(target) {
		return false
	}
	if cfg.Combat.RespectInvulnerability && target.HasComponent(components.Health) &&
		components.Health.Get(target).Invulnerable() {
		return false
	}

	switch {
	case target.HasComponent(components.StaggerAnimation):
		startStagger(target, components.StaggerAnimation.Get(target).Stagger)
	case target.HasComponent(components.Velocity):
		startStagger(target, knockbackAnimation(cfg.Combat.KnockbackDistance))
		// face the attacker so the backwards push carries the target away
		setFacing(target, facingFor(-hit.DX, -hit.DY))
	}
	return true
}

func startStagger(e *donburi.Entry, anim *components.HitboxAnimation) {
	if anim == nil || !e.HasComponent(components.Animation) {
		return
	}
	components.Animation.Get(e).Start(anim, components.StateStaggered)
}
