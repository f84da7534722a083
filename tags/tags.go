package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Chest      = donburi.NewTag().SetName("Chest")
	Portal     = donburi.NewTag().SetName("Portal")
	Wall       = donburi.NewTag().SetName("Wall")
	Decoration = donburi.NewTag().SetName("Decoration")
	Session    = donburi.NewTag().SetName("Session")
)

// Resolv tags for the restitution broadphase
const (
	ResolvBody   = "body"
	ResolvStatic = "static"
)
