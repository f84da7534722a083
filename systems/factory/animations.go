package factory

import (
	"github.com/automoto/heartkeep/components"
	cfg "github.com/automoto/heartkeep/config"
)

// IdleAnimation holds a single sprite.
func IdleAnimation(sprite int) *components.HitboxAnimation {
	anim := components.NewHitboxAnimation()
	f := anim.AddFrame(cfg.Animation.IdleFrame)
	anim.SetSprite(f, sprite)
	return anim
}

// WalkingAnimation alternates the two step sprites with the idle pose.
func WalkingAnimation(idle, step0, step1 int, frame float64) *components.HitboxAnimation {
	anim := components.NewHitboxAnimation()
	for _, sprite := range []int{step0, idle, step1, idle} {
		f := anim.AddFrame(frame)
		anim.SetSprite(f, sprite)
	}
	return anim
}

// SpinAnimation cycles through sprites; meant for StartLoop.
func SpinAnimation(sprites []int, frame float64) *components.HitboxAnimation {
	anim := components.NewHitboxAnimation()
	for _, sprite := range sprites {
		f := anim.AddFrame(frame)
		anim.SetSprite(f, sprite)
	}
	return anim
}

// PlayerAttackAnimation is a wind-up followed by a wide then a narrow swing.
func PlayerAttackAnimation() *components.HitboxAnimation {
	anim := components.NewHitboxAnimation()
	f := anim.AddFrameWithVelocity(0, 0, 0.1)
	anim.SetSprite(f, cfg.SpritePlayerAttack0)

	f = anim.AddFrameWithVelocity(0, 0, 0.2)
	anim.SetHitbox(f, components.ChannelPlayerAttack, components.NewHitboxAt(8, 8, 0))
	anim.SetSprite(f, cfg.SpritePlayerAttack1)

	f = anim.AddFrameWithVelocity(0, 0, 0.2)
	anim.SetHitbox(f, components.ChannelPlayerAttack, components.NewHitboxAt(4, 10, 0))
	anim.SetSprite(f, cfg.SpritePlayerAttack2)
	return anim
}

// GoblinAttackAnimation lunges forward with two stabs and then recovers.
func GoblinAttackAnimation() *components.HitboxAnimation {
	anim := components.NewHitboxAnimation()
	f := anim.AddFrameWithVelocity(0, 0, 0.125)
	anim.SetSprite(f, cfg.SpriteGoblinAttack0)

	f = anim.AddFrameWithVelocity(50, 0, 0.125)
	anim.SetSprite(f, cfg.SpriteGoblinAttack1)
	anim.SetHitbox(f, components.ChannelEnemyAttack, components.NewHitboxAt(4, 8, 2))

	f = anim.AddFrameWithVelocity(50, 0, 0.375)
	anim.SetSprite(f, cfg.SpriteGoblinAttack2)

	f = anim.AddFrameWithVelocity(50, 0, 0.125)
	anim.SetSprite(f, cfg.SpriteGoblinAttack3)
	anim.SetHitbox(f, components.ChannelEnemyAttack, components.NewHitboxAt(4, 8, -2))

	f = anim.AddFrameWithVelocity(50, 0, 0.375)
	anim.SetSprite(f, cfg.SpriteGoblinAttack4)

	f = anim.AddFrameWithVelocity(0, 0, 0.5)
	anim.SetSprite(f, cfg.SpriteGoblinIdle)
	return anim
}
