package components

import "github.com/yohamta/donburi"

// SpriteData is the sheet index a renderer should draw for this entity.
type SpriteData struct {
	Index int
}

var Sprite = donburi.NewComponentType[SpriteData]()
