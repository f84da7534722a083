// Package leveldata provides TMX level parsing for the dungeon scenes.
// It has no dependencies on donburi or the simulation packages, pure data only.
package leveldata

// Rect is an axis aligned area given by its center and full size, in world
// units with y pointing up.
type Rect struct {
	X, Y, W, H float64
}

// Point is a spawn location in world units with y pointing up.
type Point struct {
	X, Y float64
}

// ChestSpawn places a chest selling Upgrade for Cost hearts.
type ChestSpawn struct {
	Point
	Cost    int
	Upgrade string
}

// Level holds everything needed to populate one dungeon room.
type Level struct {
	Name    string
	Width   float64
	Height  float64
	Walls   []Rect
	Player  Point
	Goblins []Point
	Chests  []ChestSpawn
	Portal  *Point
}
