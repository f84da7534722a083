package systems

import (
	"github.com/automoto/heartkeep/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAttachments keeps decorations pinned to their parents. A decoration
// whose parent is gone is removed.
func UpdateAttachments(ecs *ecs.ECS) {
	var orphans []donburi.Entity
	components.Attachment.Each(ecs.World, func(e *donburi.Entry) {
		att := components.Attachment.Get(e)
		if !ecs.World.Valid(att.Parent) {
			orphans = append(orphans, e.Entity())
			return
		}
		parent := ecs.World.Entry(att.Parent)
		if !parent.HasComponent(components.Transform) || !e.HasComponent(components.Transform) {
			return
		}
		pos := components.Transform.Get(parent).Vec2
		t := components.Transform.Get(e)
		t.X = pos.X + att.Offset.X
		t.Y = pos.Y + att.Offset.Y
	})
	for _, o := range orphans {
		ecs.World.Remove(o)
	}
}

func removeAttachments(ecs *ecs.ECS, parent donburi.Entity) {
	var children []donburi.Entity
	components.Attachment.Each(ecs.World, func(e *donburi.Entry) {
		if components.Attachment.Get(e).Parent == parent {
			children = append(children, e.Entity())
		}
	})
	for _, c := range children {
		ecs.World.Remove(c)
	}
}
