package components

import "github.com/yohamta/donburi"

type ChestData struct {
	// Cost is in hearts; the health price depends on the buyer's heart size.
	Cost    int
	Upgrade Upgrade
}

var Chest = donburi.NewComponentType[ChestData]()
