package factory

import (
	"math/rand"

	"github.com/automoto/heartkeep/archetypes"
	"github.com/automoto/heartkeep/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession spawns the singleton holding world state, clock, input and
// the seeded random source.
func CreateSession(ecs *ecs.ECS, seed int64) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)

	components.Input.SetValue(session, components.InputData{
		Actions: make(map[string]bool),
		Axes:    make(map[string]float64),
	})
	components.Random.SetValue(session, components.RandomData{Rand: rand.New(rand.NewSource(seed))})

	return session
}
