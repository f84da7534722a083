package systems

import (
	"math"

	"github.com/automoto/heartkeep/components"
	cfg "github.com/automoto/heartkeep/config"
	"github.com/automoto/heartkeep/shared/gamemath"
	"github.com/automoto/heartkeep/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/filter"
)

// UpdateBots generates input for bot-controlled players.
// Must run BEFORE UpdatePlayerMovement so the intent systems see this tick's decision.
func UpdateBots(e *ecs.ECS) {
	in := input(e.World)
	if in == nil {
		return
	}
	dt := delta(e.World)
	rng := randomSource(e.World)

	components.Bot.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Transform) {
			return
		}
		bot := components.Bot.Get(entry)
		pos := components.Transform.Get(entry).Vec2

		bot.DecisionTimer -= dt
		bot.AttackCooldown -= dt

		// Re-target on the decision timer or when the old target is gone
		if bot.DecisionTimer <= 0 || !bot.HasTarget || !e.World.Valid(bot.Target) {
			bot.Target, bot.Interact, bot.HasTarget = chooseBotTarget(e.World, entry, pos)
			bot.DecisionTimer = between(rng, cfg.Bot.DecisionMin, cfg.Bot.DecisionMax)
		}

		writeBotInput(e.World, in, bot, pos)
	})
}

func writeBotInput(w donburi.World, in *components.InputData, bot *components.BotData, pos dmath.Vec2) {
	in.Actions[cfg.ActionAttack] = false
	in.Actions[cfg.ActionInteract] = false
	in.Axes[cfg.AxisLeftRight] = 0
	in.Axes[cfg.AxisUpDown] = 0

	if !bot.HasTarget || !w.Valid(bot.Target) {
		return
	}
	target := w.Entry(bot.Target)
	if !target.HasComponent(components.Transform) {
		return
	}
	goal := components.Transform.Get(target).Vec2
	dx, dy := goal.X-pos.X, goal.Y-pos.Y
	dist := gamemath.Length(dx, dy)

	if dist > cfg.Bot.StopDistance {
		in.Axes[cfg.AxisLeftRight], in.Axes[cfg.AxisUpDown] = gamemath.Normalize(dx, dy)
	}
	if dist > cfg.Bot.AttackRange {
		return
	}
	if bot.Interact {
		in.Actions[cfg.ActionInteract] = true
		return
	}
	if target.HasComponent(tags.Enemy) && bot.AttackCooldown <= 0 {
		in.Actions[cfg.ActionAttack] = true
		bot.AttackCooldown = cfg.Bot.AttackCooldown
	}
}

// chooseBotTarget prefers the nearest enemy, then a chest worth buying, then
// the exit once it is open.
func chooseBotTarget(w donburi.World, self *donburi.Entry, pos dmath.Vec2) (donburi.Entity, bool, bool) {
	if enemy, ok := nearest(w, tags.Enemy, pos, nil); ok {
		return enemy, false, true
	}
	if self.HasComponent(components.Player) && self.HasComponent(components.Health) {
		player := components.Player.Get(self)
		health := components.Health.Get(self)
		chest, ok := nearest(w, tags.Chest, pos, func(e *donburi.Entry) bool {
			c := components.Chest.Get(e)
			amount := c.Cost * player.HeartSize()
			return c.Upgrade != components.UpgradeNone && !player.Has(c.Upgrade) &&
				health.Left > amount && health.Max > amount
		})
		if ok {
			return chest, true, true
		}
	}
	if ws := worldState(w); ws != nil && ws.ExitOpened {
		if portal, ok := nearest(w, tags.Portal, pos, nil); ok {
			return portal, false, true
		}
	}
	return 0, false, false
}

func nearest(w donburi.World, tag donburi.IComponentType, pos dmath.Vec2, keep func(*donburi.Entry) bool) (donburi.Entity, bool) {
	var best donburi.Entity
	bestDist := math.Inf(1)
	found := false
	donburi.NewQuery(filter.Contains(tag, components.Transform)).Each(w, func(e *donburi.Entry) {
		if keep != nil && !keep(e) {
			return
		}
		p := components.Transform.Get(e).Vec2
		if d := gamemath.Length(p.X-pos.X, p.Y-pos.Y); d < bestDist {
			best, bestDist, found = e.Entity(), d, true
		}
	})
	return best, found
}
