package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Max  int
	Left int
	// Invuln is the remaining damage immunity in seconds. It keeps counting
	// down past zero; anything above zero means immune.
	Invuln float64
}

func NewHealth(amount int) HealthData {
	return HealthData{Max: amount, Left: amount}
}

func (h *HealthData) HitFor(amount int, invuln float64) {
	h.Left -= amount
	h.Invuln = invuln
}

// Pay permanently removes amount from both current and max health.
func (h *HealthData) Pay(amount int) {
	h.Left -= amount
	h.Max -= amount
}

func (h *HealthData) Embiggen() {
	h.Left *= 2
	h.Max *= 2
}

func (h *HealthData) Invulnerable() bool {
	return h.Invuln > 0
}

func (h *HealthData) Dead() bool {
	return h.Left <= 0
}

var Health = donburi.NewComponentType[HealthData]()
