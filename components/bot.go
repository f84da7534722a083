package components

import "github.com/yohamta/donburi"

// BotData lets the simulation steer the player itself. The headless runner
// attaches it to the player so a level can be played without a host.
type BotData struct {
	DecisionTimer  float64
	AttackCooldown float64

	Target    donburi.Entity
	HasTarget bool
	// Interact means the target is a chest to open rather than something to hit.
	Interact bool
}

var Bot = donburi.NewComponentType[BotData]()
