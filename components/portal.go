package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PortalData is the level exit. It stays shut until the last enemy dies,
// then its trigger box grows in along Grow.
type PortalData struct {
	Opened bool
	Grow   *gween.Tween
	Size   float64
	Spin   *HitboxAnimation
}

var Portal = donburi.NewComponentType[PortalData]()
