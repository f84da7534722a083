package factory

import (
	"github.com/automoto/heartkeep/archetypes"
	"github.com/automoto/heartkeep/components"
	cfg "github.com/automoto/heartkeep/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateChest spawns a chest selling upgrade for cost hearts. One spinning
// heart per heart of cost floats above it.
func CreateChest(ecs *ecs.ECS, x, y float64, cost int, upgrade components.Upgrade) *donburi.Entry {
	chest := archetypes.Chest.Spawn(ecs)

	components.Transform.SetValue(chest, components.TransformData{Vec2: dmath.Vec2{X: x, Y: y}})
	components.Facing.SetValue(chest, components.FacingData{Rotation: components.East})
	components.Physical.SetValue(chest, components.NewPhysical(cfg.Level.ChestSize))
	components.Sprite.SetValue(chest, components.SpriteData{Index: cfg.SpriteChest})
	components.Health.SetValue(chest, components.NewHealth(cfg.Level.ChestHealth))
	components.Chest.SetValue(chest, components.ChestData{Cost: cost, Upgrade: upgrade})

	hs := components.NewHitState()
	hs.Set(components.ChannelPlayerInteractable, 16, 16, 0, 0)
	components.HitState.SetValue(chest, hs)

	switch cost {
	case 1:
		CreateHeartSpin(ecs, chest, 0, 8)
	case 2:
		CreateHeartSpin(ecs, chest, -4, 8)
		CreateHeartSpin(ecs, chest, 4, 8)
	}

	return chest
}

// CreateHeartSpin attaches a looping heart decoration to parent.
func CreateHeartSpin(ecs *ecs.ECS, parent *donburi.Entry, dx, dy float64) *donburi.Entry {
	heart := archetypes.Decoration.Spawn(ecs)

	pos := components.Transform.Get(parent).Vec2
	components.Transform.SetValue(heart, components.TransformData{Vec2: dmath.Vec2{X: pos.X + dx, Y: pos.Y + dy}})
	components.Attachment.SetValue(heart, components.AttachmentData{
		Parent: parent.Entity(),
		Offset: dmath.Vec2{X: dx, Y: dy},
	})
	components.Sprite.SetValue(heart, components.SpriteData{Index: cfg.SpriteHeartSpin[0]})
	components.Animation.Get(heart).StartLoop(SpinAnimation(cfg.SpriteHeartSpin, cfg.Animation.SpinFrame))

	return heart
}
