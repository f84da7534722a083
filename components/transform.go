package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// TransformData is an entity's world position. Y points up.
type TransformData struct {
	dmath.Vec2
}

var Transform = donburi.NewComponentType[TransformData]()

// FacingData is the cardinal direction an entity looks toward.
type FacingData struct {
	Rotation Rotation
}

var Facing = donburi.NewComponentType[FacingData]()

// AttachmentData pins a decoration to a parent entity.
type AttachmentData struct {
	Parent donburi.Entity
	Offset dmath.Vec2
}

var Attachment = donburi.NewComponentType[AttachmentData]()
