package systems

import (
	"github.com/automoto/heartkeep/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations steps every controller and applies the frame it lands on.
func UpdateAnimations(ecs *ecs.ECS) {
	dt := delta(ecs.World)
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		frame, ok := components.Animation.Get(e).Step(dt)
		if !ok {
			return
		}
		applyFrame(e, frame)
	})
}

// applyFrame copies whatever the frame sets onto e. Parts the entity has no
// component for are skipped.
func applyFrame(e *donburi.Entry, frame *components.AnimationFrame) {
	if frame.Velocity != nil && e.HasComponent(components.Velocity) {
		facing := components.East
		if e.HasComponent(components.Facing) {
			facing = components.Facing.Get(e).Rotation
		}
		v := components.Velocity.Get(e)
		v.X, v.Y = facing.Rotate(frame.Velocity.X, frame.Velocity.Y)
	}
	if frame.Sprite != nil && e.HasComponent(components.Sprite) {
		components.Sprite.Get(e).Index = *frame.Sprite
	}
	if len(frame.Boxes) > 0 && e.HasComponent(components.HitState) {
		hs := components.HitState.Get(e)
		for ch, box := range frame.Boxes {
			hs.SetBox(ch, box)
		}
	}
}

// UpdateFacing turns every entity's channel boxes toward its facing.
func UpdateFacing(ecs *ecs.ECS) {
	components.Facing.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.HitState) {
			components.HitState.Get(e).Rotate(components.Facing.Get(e).Rotation)
		}
	})
}
