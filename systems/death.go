package systems

import (
	"github.com/automoto/heartkeep/components"
	"github.com/automoto/heartkeep/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths ticks invulnerability down and removes everything whose
// health ran out. A staggered entity is kept until its hit reaction ends.
func UpdateDeaths(ecs *ecs.ECS) {
	dt := delta(ecs.World)

	var dead []*donburi.Entry
	components.Health.Each(ecs.World, func(e *donburi.Entry) {
		health := components.Health.Get(e)
		health.Invuln -= dt
		if health.Dead() && !isStaggered(e) {
			dead = append(dead, e)
		}
	})

	for _, e := range dead {
		destroy(ecs, e)
	}
}

func destroy(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if ws := worldState(ecs.World); ws != nil {
		if e.HasComponent(tags.Enemy) {
			ws.EnemiesRemaining--
		}
		if e.HasComponent(tags.Player) {
			ws.GameOver = true
		}
	}
	removeAttachments(ecs, e.Entity())
	ecs.World.Remove(e.Entity())
}
