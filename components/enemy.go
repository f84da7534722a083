package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// ChaseAndWanderData is the aggro state of an enemy that roams until it
// spots the player and then closes in.
type ChaseAndWanderData struct {
	WanderSpeed float64
	ChaseSpeed  float64

	// AwareOf is the last place the player was seen; nil until first sighting.
	AwareOf *dmath.Vec2

	// WanderProgress counts down the current leg, or the pause before the
	// next one when WanderDir is nil.
	WanderProgress float64
	WanderDir      *dmath.Vec2

	Walking *HitboxAnimation
	Idle    *HitboxAnimation
}

var ChaseAndWander = donburi.NewComponentType[ChaseAndWanderData]()

// MeleeEnemyData is the attack half of an enemy. InMelee is recomputed every tick.
type MeleeEnemyData struct {
	Damage  int
	InMelee bool
	Attack  *HitboxAnimation
}

var MeleeEnemy = donburi.NewComponentType[MeleeEnemyData]()

// StaggerAnimationData replaces the default knockback when the entity is hit.
type StaggerAnimationData struct {
	Stagger *HitboxAnimation
}

var StaggerAnimation = donburi.NewComponentType[StaggerAnimationData]()
