package config

// Sprite sheet indices handed to the renderer.
const (
	SpriteChest = 0

	SpritePlayerIdle    = 1
	SpritePlayerAttack0 = 2
	SpritePlayerAttack1 = 3
	SpritePlayerAttack2 = 4
	SpritePlayerWalk0   = 5
	SpritePlayerWalk1   = 6

	SpriteGoblinIdle    = 7
	SpriteGoblinWalk0   = 8
	SpriteGoblinWalk1   = 9
	SpriteGoblinAttack0 = 10
	SpriteGoblinAttack1 = 11
	SpriteGoblinAttack3 = 12
	SpriteGoblinAttack2 = 13
	SpriteGoblinAttack4 = 14

	SpriteWall         = 29
	SpritePortalClosed = 54
)

var (
	SpriteHeartSpin  = []int{30, 31, 32, 33, 34, 35, 36, 37}
	SpritePortalSpin = []int{55, 56, 57, 58, 59, 60, 61}
)
