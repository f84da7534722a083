package components

import "github.com/yohamta/donburi"

// WorldStateData is the per-level record the exit logic reads and flags.
type WorldStateData struct {
	EnemiesRemaining int
	StandingOnExit   bool
	ExitOpened       bool
	GameOver         bool
}

var WorldState = donburi.NewComponentType[WorldStateData]()
