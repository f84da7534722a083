package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

type ClockData struct {
	Delta   float64
	Elapsed float64
	Ticks   int
}

var Clock = donburi.NewComponentType[ClockData]()

// RandomData is the seeded source every random decision in a session draws from.
type RandomData struct {
	*rand.Rand
}

// Between returns a uniform float in [lo, hi).
func (r RandomData) Between(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

var Random = donburi.NewComponentType[RandomData]()
