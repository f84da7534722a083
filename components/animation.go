package components

import (
	"math"

	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// AnimationState is the gameplay meaning of whatever an AnimationController is playing.
type AnimationState int

const (
	StateIdle AnimationState = iota
	StateWalking
	StateAttacking
	StateStaggered
)

func (s AnimationState) String() string {
	switch s {
	case StateWalking:
		return "walking"
	case StateAttacking:
		return "attacking"
	case StateStaggered:
		return "staggered"
	}
	return "idle"
}

// AnimationFrame is one timed step. Velocity is East-relative and rotated by
// the owner's facing when applied. Boxes only overwrite the channels listed.
type AnimationFrame struct {
	Duration float64
	Velocity *dmath.Vec2
	Sprite   *int
	Boxes    map[Channel]Hitbox
}

// HitboxAnimation is an ordered list of frames. Build it once, then share it;
// controllers never modify the frames they play.
type HitboxAnimation struct {
	frames []AnimationFrame
}

func NewHitboxAnimation() *HitboxAnimation {
	return &HitboxAnimation{}
}

// AddFrame appends a frame that leaves velocity untouched and returns its index.
func (a *HitboxAnimation) AddFrame(duration float64) int {
	a.frames = append(a.frames, AnimationFrame{Duration: duration})
	return len(a.frames) - 1
}

// AddFrameWithVelocity appends a frame that overrides velocity and returns its index.
func (a *HitboxAnimation) AddFrameWithVelocity(vx, vy, duration float64) int {
	a.frames = append(a.frames, AnimationFrame{
		Duration: duration,
		Velocity: &dmath.Vec2{X: vx, Y: vy},
	})
	return len(a.frames) - 1
}

func (a *HitboxAnimation) SetHitbox(frame int, ch Channel, box Hitbox) {
	if frame < 0 || frame >= len(a.frames) || !ch.Valid() {
		return
	}
	f := &a.frames[frame]
	if f.Boxes == nil {
		f.Boxes = make(map[Channel]Hitbox)
	}
	f.Boxes[ch] = box
}

func (a *HitboxAnimation) SetSprite(frame, sprite int) {
	if frame < 0 || frame >= len(a.frames) {
		return
	}
	a.frames[frame].Sprite = &sprite
}

func (a *HitboxAnimation) Len() int {
	return len(a.frames)
}

// Duration is the total length of one pass through the frames.
func (a *HitboxAnimation) Duration() float64 {
	total := 0.0
	for _, f := range a.frames {
		total += f.Duration
	}
	return total
}

// FrameAt returns the frame whose window contains progress. Windows are
// half open, so a progress equal to a boundary belongs to the later frame.
func (a *HitboxAnimation) FrameAt(progress float64) (*AnimationFrame, bool) {
	left := progress
	for i := range a.frames {
		if left < a.frames[i].Duration {
			return &a.frames[i], true
		}
		left -= a.frames[i].Duration
	}
	return nil, false
}

// boundaryEpsilon absorbs the rounding left by wrapping accumulated progress.
const boundaryEpsilon = 1e-9

// Wrap folds progress into a single pass. Results within boundaryEpsilon of a
// frame boundary snap onto it, so 0.3 in a 0.2 loop lands on 0.1 rather than
// just below it.
func (a *HitboxAnimation) Wrap(progress float64) float64 {
	total := a.Duration()
	if total <= 0 {
		return 0
	}
	w := math.Mod(progress, total)
	edge := 0.0
	for _, f := range a.frames {
		if math.Abs(w-edge) < boundaryEpsilon {
			w = edge
			break
		}
		edge += f.Duration
	}
	if total-w < boundaryEpsilon {
		w = 0
	}
	return w
}

// AnimationData drives one entity's current HitboxAnimation.
type AnimationData struct {
	animation *HitboxAnimation
	progress  float64
	state     AnimationState
	looping   bool
}

// Start plays animation from the beginning under the given state.
func (a *AnimationData) Start(animation *HitboxAnimation, state AnimationState) {
	a.animation = animation
	a.progress = 0
	a.state = state
	a.looping = false
}

// StartLoop plays animation forever. The state is left to the caller.
func (a *AnimationData) StartLoop(animation *HitboxAnimation) {
	a.animation = animation
	a.progress = 0
	a.looping = true
}

// Step advances by dt and returns the frame to apply this tick. When a
// non-looping animation runs out the controller falls back to Idle.
func (a *AnimationData) Step(dt float64) (*AnimationFrame, bool) {
	a.progress += dt
	if a.animation == nil {
		a.state = StateIdle
		return nil, false
	}

	frame, ok := a.animation.FrameAt(a.progress)
	if !ok && a.looping {
		if a.animation.Duration() > 0 {
			frame, ok = a.animation.FrameAt(a.animation.Wrap(a.progress))
		}
	}
	if !ok {
		a.animation = nil
		a.state = StateIdle
		return nil, false
	}
	return frame, true
}

func (a *AnimationData) Active() bool {
	return a.animation != nil
}

func (a *AnimationData) State() AnimationState {
	return a.state
}

func (a *AnimationData) Looping() bool {
	return a.looping
}

func (a *AnimationData) Progress() float64 {
	return a.progress
}

var Animation = donburi.NewComponentType[AnimationData]()
