package components

import (
	"image/color"
	"math"

	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// Channel is a slot in an entity's HitState. Channels describe what a box is
// for (attacking, being hit, seeing, ...), not what kind of entity owns it.
type Channel int

const (
	ChannelEnemyAttack Channel = iota
	ChannelEnemyHittable
	ChannelPlayerAttack
	ChannelPlayerHittable
	ChannelEnemySight
	ChannelEnemyAiming
	ChannelPortal
	ChannelPlayerInteract
	ChannelPlayerInteractable
)

// HitStateSize is the number of channel slots every HitState carries.
const HitStateSize = 16

func (c Channel) Valid() bool {
	return c >= 0 && c < HitStateSize
}

func (c Channel) String() string {
	switch c {
	case ChannelEnemyAttack:
		return "enemy-attack"
	case ChannelEnemyHittable:
		return "enemy-hittable"
	case ChannelPlayerAttack:
		return "player-attack"
	case ChannelPlayerHittable:
		return "player-hittable"
	case ChannelEnemySight:
		return "enemy-sight"
	case ChannelEnemyAiming:
		return "enemy-aiming"
	case ChannelPortal:
		return "portal"
	case ChannelPlayerInteract:
		return "player-interact"
	case ChannelPlayerInteractable:
		return "player-interactable"
	}
	return "channel"
}

// Rotation is one of the four cardinal facings. Boxes are authored facing East.
type Rotation int

const (
	East Rotation = iota
	South
	West
	North
)

// Rotate maps an East-relative vector into this facing (y points up).
func (r Rotation) Rotate(x, y float64) (float64, float64) {
	switch r {
	case South:
		return y, -x
	case West:
		return -x, -y
	case North:
		return -y, x
	}
	return x, y
}

// Transposed reports whether boxes read in this facing swap width and height.
func (r Rotation) Transposed() bool {
	return r == North || r == South
}

func (r Rotation) String() string {
	switch r {
	case South:
		return "south"
	case West:
		return "west"
	case North:
		return "north"
	}
	return "east"
}

// HitboxCollision is the result of an overlap test: the signed center delta
// from the first box to the second and the remaining gap on each axis.
type HitboxCollision struct {
	DX, DY         float64
	DepthX, DepthY float64
}

// Hitbox is an axis aligned rectangle centered on its owner's position plus Offset.
type Hitbox struct {
	Width  float64
	Height float64
	Offset dmath.Vec2
	Color  *color.RGBA // debug overlay only
}

// NewHitbox returns a square box with the given half extent.
func NewHitbox(size float64) Hitbox {
	return Hitbox{Width: size * 2, Height: size * 2}
}

// NewHitboxAt returns a square box with the given half extent at a local offset.
func NewHitboxAt(size, x, y float64) Hitbox {
	return Hitbox{Width: size * 2, Height: size * 2, Offset: dmath.Vec2{X: x, Y: y}}
}

// NewHitboxRect returns a box with full width and height at a local offset.
func NewHitboxRect(width, height, x, y float64) Hitbox {
	return Hitbox{Width: width, Height: height, Offset: dmath.Vec2{X: x, Y: y}}
}

// Depth tests h placed at pos against other placed at otherPos.
func (h Hitbox) Depth(pos dmath.Vec2, other Hitbox, otherPos dmath.Vec2) (HitboxCollision, bool) {
	dx := (otherPos.X + other.Offset.X) - (pos.X + h.Offset.X)
	dy := (otherPos.Y + other.Offset.Y) - (pos.Y + h.Offset.Y)
	sw := (h.Width + other.Width) / 2
	sh := (h.Height + other.Height) / 2
	if math.Abs(dx) < sw && math.Abs(dy) < sh {
		return HitboxCollision{
			DX:     dx,
			DY:     dy,
			DepthX: sw - math.Abs(dx),
			DepthY: sh - math.Abs(dy),
		}, true
	}
	return HitboxCollision{}, false
}

// Rotated returns the box as seen when its owner faces r.
func (h Hitbox) Rotated(r Rotation) Hitbox {
	out := h
	out.Offset.X, out.Offset.Y = r.Rotate(h.Offset.X, h.Offset.Y)
	if r.Transposed() {
		out.Width, out.Height = h.Height, h.Width
	}
	return out
}

type hitSlot struct {
	box Hitbox
	set bool
}

// HitStateData holds an entity's channel boxes in unrotated local space.
// The facing is only applied when boxes are read back.
type HitStateData struct {
	slots    [HitStateSize]hitSlot
	rotation Rotation
}

func NewHitState() HitStateData {
	return HitStateData{rotation: East}
}

// Set installs a width x height box at the local offset (x, y).
func (h *HitStateData) Set(ch Channel, width, height, x, y float64) {
	h.SetBox(ch, NewHitboxRect(width, height, x, y))
}

func (h *HitStateData) SetBox(ch Channel, box Hitbox) {
	if !ch.Valid() {
		return
	}
	h.slots[ch] = hitSlot{box: box, set: true}
}

func (h *HitStateData) Clear(ch Channel) {
	if !ch.Valid() {
		return
	}
	h.slots[ch] = hitSlot{}
}

func (h *HitStateData) Rotate(r Rotation) {
	h.rotation = r
}

func (h *HitStateData) Rotation() Rotation {
	return h.rotation
}

// Has reports whether a box is installed, without paying for the rotation.
func (h *HitStateData) Has(ch Channel) bool {
	return ch.Valid() && h.slots[ch].set
}

// Get returns the box at ch rotated into the current facing.
func (h *HitStateData) Get(ch Channel) (Hitbox, bool) {
	if !h.Has(ch) {
		return Hitbox{}, false
	}
	return h.slots[ch].box.Rotated(h.rotation), true
}

// Raw returns the stored, unrotated box at ch.
func (h *HitStateData) Raw(ch Channel) (Hitbox, bool) {
	if !h.Has(ch) {
		return Hitbox{}, false
	}
	return h.slots[ch].box, true
}

// GetAll returns every installed box rotated into the current facing.
func (h *HitStateData) GetAll() map[Channel]Hitbox {
	out := make(map[Channel]Hitbox)
	for i, slot := range h.slots {
		if slot.set {
			out[Channel(i)] = slot.box.Rotated(h.rotation)
		}
	}
	return out
}

var HitState = donburi.NewComponentType[HitStateData]()
