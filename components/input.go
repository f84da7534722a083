package components

import "github.com/yohamta/donburi"

// InputData is the host's input for the current tick. An axis missing from
// Axes is unbound, which is different from an axis at rest.
type InputData struct {
	Actions map[string]bool
	Axes    map[string]float64
}

func (i *InputData) ActionDown(name string) bool {
	return i.Actions[name]
}

func (i *InputData) Axis(name string) (float64, bool) {
	v, ok := i.Axes[name]
	return v, ok
}

var Input = donburi.NewComponentType[InputData]()
