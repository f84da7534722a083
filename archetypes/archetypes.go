package archetypes

import (
	"github.com/automoto/heartkeep/components"
	"github.com/automoto/heartkeep/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
		components.Velocity,
		components.Facing,
		components.Physical,
		components.HitState,
		components.Animation,
		components.Health,
		components.Sprite,
	)
	Goblin = newArchetype(
		tags.Enemy,
		components.Transform,
		components.Velocity,
		components.Facing,
		components.Physical,
		components.HitState,
		components.Animation,
		components.Health,
		components.Sprite,
		components.ChaseAndWander,
		components.MeleeEnemy,
	)
	Chest = newArchetype(
		tags.Chest,
		components.Chest,
		components.Transform,
		components.Velocity,
		components.Facing,
		components.Physical,
		components.HitState,
		components.Animation,
		components.Health,
		components.Sprite,
	)
	Portal = newArchetype(
		tags.Portal,
		components.Portal,
		components.Transform,
		components.HitState,
		components.Animation,
		components.Sprite,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Transform,
		components.Physical,
		components.Sprite,
	)
	Decoration = newArchetype(
		tags.Decoration,
		components.Transform,
		components.Attachment,
		components.Animation,
		components.Sprite,
	)
	Session = newArchetype(
		tags.Session,
		components.WorldState,
		components.Clock,
		components.Input,
		components.Random,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return ecs.World.Entry(ecs.World.Create(all...))
}
