package systems

import (
	"math"

	"github.com/automoto/heartkeep/components"
	"github.com/yohamta/donburi"
)

func delta(w donburi.World) float64 {
	if e, ok := components.Clock.First(w); ok {
		return components.Clock.Get(e).Delta
	}
	return 0
}

func worldState(w donburi.World) *components.WorldStateData {
	if e, ok := components.WorldState.First(w); ok {
		return components.WorldState.Get(e)
	}
	return nil
}

func input(w donburi.World) *components.InputData {
	if e, ok := components.Input.First(w); ok {
		return components.Input.Get(e)
	}
	return nil
}

// randomSource returns nil when the world has no session random.
func randomSource(w donburi.World) *components.RandomData {
	if e, ok := components.Random.First(w); ok {
		return components.Random.Get(e)
	}
	return nil
}

func stateOf(e *donburi.Entry) components.AnimationState {
	if !e.HasComponent(components.Animation) {
		return components.StateIdle
	}
	return components.Animation.Get(e).State()
}

func isStaggered(e *donburi.Entry) bool {
	return stateOf(e) == components.StateStaggered
}

// facingFor picks the cardinal direction of the dominant axis. Ties go to
// the vertical axis.
func facingFor(x, y float64) components.Rotation {
	if math.Abs(x) > math.Abs(y) {
		if x > 0 {
			return components.East
		}
		return components.West
	}
	if y > 0 {
		return components.North
	}
	return components.South
}

func setFacing(e *donburi.Entry, r components.Rotation) {
	if e.HasComponent(components.Facing) {
		components.Facing.Get(e).Rotation = r
	}
}
