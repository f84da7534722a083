package factory

import (
	"github.com/automoto/heartkeep/components"
	"github.com/automoto/heartkeep/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnLevel populates the world from level and returns the player. The
// session must already exist so goblins are counted toward the exit.
func SpawnLevel(ecs *ecs.ECS, level *leveldata.Level, state components.PlayerState) *donburi.Entry {
	for _, w := range level.Walls {
		CreateWall(ecs, w.X, w.Y, w.W, w.H)
	}
	for _, c := range level.Chests {
		CreateChest(ecs, c.X, c.Y, c.Cost, components.ParseUpgrade(c.Upgrade))
	}
	for _, g := range level.Goblins {
		CreateGoblin(ecs, g.X, g.Y)
	}
	if level.Portal != nil {
		CreatePortal(ecs, level.Portal.X, level.Portal.Y)
	}
	return CreatePlayer(ecs, level.Player.X, level.Player.Y, state)
}
