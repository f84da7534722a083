package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

type VelocityData struct {
	dmath.Vec2
}

var Velocity = donburi.NewComponentType[VelocityData]()

// PhysicalData is the body used to push overlapping entities apart.
// Static bodies push but are never pushed.
type PhysicalData struct {
	Box    Hitbox
	Static bool
}

func NewPhysical(size float64) PhysicalData {
	return PhysicalData{Box: NewHitbox(size)}
}

func NewStaticPhysical(size float64) PhysicalData {
	return PhysicalData{Box: NewHitbox(size), Static: true}
}

func NewWallPhysical(width, height float64) PhysicalData {
	return PhysicalData{Box: NewHitboxRect(width, height, 0, 0), Static: true}
}

func (p *PhysicalData) Depth(pos dmath.Vec2, other *PhysicalData, otherPos dmath.Vec2) (HitboxCollision, bool) {
	return p.Box.Depth(pos, other.Box, otherPos)
}

var Physical = donburi.NewComponentType[PhysicalData]()
