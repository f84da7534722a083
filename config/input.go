package config

// Named actions and axes the simulation reads from the host.
const (
	ActionAttack   = "attack"
	ActionInteract = "interact"

	AxisLeftRight = "leftright"
	AxisUpDown    = "updown"
)
