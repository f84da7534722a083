// Package host defines what the simulation needs from the program embedding
// it: input for the current tick and the time since the last one.
package host

// Input exposes named boolean actions and named analog axes. An unbound
// axis reports ok=false, which is different from an axis at rest.
type Input interface {
	ActionDown(name string) bool
	Axis(name string) (value float64, ok bool)
}

// Clock reports the seconds elapsed since the previous tick.
type Clock interface {
	DeltaSeconds() float64
}

// FixedClock advances by the same step every tick.
type FixedClock float64

// NewFixedClock returns a clock stepping 1/tickRate seconds.
func NewFixedClock(tickRate int) FixedClock {
	if tickRate <= 0 {
		return 0
	}
	return FixedClock(1 / float64(tickRate))
}

func (c FixedClock) DeltaSeconds() float64 {
	return float64(c)
}

// MapInput is a mutable Input backed by maps. It is what tests and the
// headless runner hand to a scene.
type MapInput struct {
	actions map[string]bool
	axes    map[string]float64
}

func NewMapInput() *MapInput {
	return &MapInput{
		actions: make(map[string]bool),
		axes:    make(map[string]float64),
	}
}

// NewCenteredInput returns an input with the given axes bound and at rest.
func NewCenteredInput(axes ...string) *MapInput {
	in := NewMapInput()
	for _, a := range axes {
		in.axes[a] = 0
	}
	return in
}

func (m *MapInput) Press(action string) {
	m.actions[action] = true
}

func (m *MapInput) Release(action string) {
	delete(m.actions, action)
}

func (m *MapInput) SetAxis(axis string, value float64) {
	m.axes[axis] = value
}

func (m *MapInput) Unbind(axis string) {
	delete(m.axes, axis)
}

func (m *MapInput) ActionDown(name string) bool {
	return m.actions[name]
}

func (m *MapInput) Axis(name string) (float64, bool) {
	v, ok := m.axes[name]
	return v, ok
}
