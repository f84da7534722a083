package systems

import (
	"github.com/automoto/heartkeep/components"
	cfg "github.com/automoto/heartkeep/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewPurchaseSystem lets the player open chests while holding interact.
// Opening always consumes the chest; the upgrade inside is only granted
// when the player can pay for it and does not own it yet.
func NewPurchaseSystem() *HitboxCollisionSystem {
	return &HitboxCollisionSystem{
		Source: components.ChannelPlayerInteract,
		Target: components.ChannelPlayerInteractable,
		Gate: func(ecs *ecs.ECS) bool {
			in := input(ecs.World)
			return in != nil && in.ActionDown(cfg.ActionInteract)
		},
		Collide: func(_ *ecs.ECS, hit HitboxHit) {
			chest := hit.Target
			if !chest.HasComponent(components.Chest) || !chest.HasComponent(components.Health) {
				return
			}
			chestHealth := components.Health.Get(chest)
			if chestHealth.Dead() {
				return
			}
			chestHealth.Left = 0

			buyer := hit.Source
			if buyer.HasComponent(components.Player) && buyer.HasComponent(components.Health) {
				purchase(buyer, components.Chest.Get(chest))
			}
		},
	}
}

func purchase(buyer *donburi.Entry, chest *components.ChestData) bool {
	player := components.Player.Get(buyer)
	health := components.Health.Get(buyer)
	if chest.Upgrade == components.UpgradeNone || player.Has(chest.Upgrade) {
		return false
	}
	amount := chest.Cost * player.HeartSize()
	if health.Left <= amount || health.Max <= amount {
		return false
	}

	health.Pay(amount)
	switch chest.Upgrade {
	case components.GoldenAegis:
		player.BigHearts = true
		health.Embiggen()
	case components.HeartBracelet:
		player.Healthy = true
	}
	return true
}
