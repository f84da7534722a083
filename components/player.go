package components

import (
	"github.com/yohamta/donburi"
)

// Upgrade is a permanent perk bought from a chest.
type Upgrade int

const (
	UpgradeNone Upgrade = iota
	// GoldenAegis doubles health; hearts are worth 4 points instead of 2.
	GoldenAegis
	// HeartBracelet restores a heart every time a level is cleared.
	HeartBracelet
)

func (u Upgrade) String() string {
	switch u {
	case GoldenAegis:
		return "golden_aegis"
	case HeartBracelet:
		return "heart_bracelet"
	}
	return "none"
}

// ParseUpgrade maps a level or config name back to an Upgrade.
func ParseUpgrade(name string) Upgrade {
	switch name {
	case "golden_aegis", "GoldenAegis":
		return GoldenAegis
	case "heart_bracelet", "HeartBracelet":
		return HeartBracelet
	}
	return UpgradeNone
}

type PlayerData struct {
	WalkAccel float64
	WalkSpeed float64
	BigHearts bool
	Healthy   bool

	Idle    *HitboxAnimation
	Walking *HitboxAnimation
	Attack  *HitboxAnimation
}

// HeartSize is how many health points one heart is worth.
func (p *PlayerData) HeartSize() int {
	if p.BigHearts {
		return 4
	}
	return 2
}

func (p *PlayerData) Has(u Upgrade) bool {
	switch u {
	case GoldenAegis:
		return p.BigHearts
	case HeartBracelet:
		return p.Healthy
	}
	return false
}

func (p *PlayerData) Upgrades() []Upgrade {
	var out []Upgrade
	if p.BigHearts {
		out = append(out, GoldenAegis)
	}
	if p.Healthy {
		out = append(out, HeartBracelet)
	}
	return out
}

var Player = donburi.NewComponentType[PlayerData]()

// PlayerState is what survives from one level to the next.
type PlayerState struct {
	Health    int
	MaxHealth int
	Levels    int
	Upgrades  []Upgrade
}

func NewPlayerState(health int) PlayerState {
	return PlayerState{Health: health, MaxHealth: health}
}

// Advance records a cleared level with the player's health at the exit.
func (s PlayerState) Advance(maxHealth, health int, upgrades []Upgrade) PlayerState {
	return PlayerState{
		Health:    health,
		MaxHealth: maxHealth,
		Levels:    s.Levels + 1,
		Upgrades:  append([]Upgrade(nil), upgrades...),
	}
}

func (s PlayerState) Has(u Upgrade) bool {
	for _, have := range s.Upgrades {
		if have == u {
			return true
		}
	}
	return false
}
