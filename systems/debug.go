package systems

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/automoto/heartkeep/components"
	"github.com/yohamta/donburi"
)

// HitboxOutline is one channel box placed in world space, ready for an
// overlay or a log line.
type HitboxOutline struct {
	Entity  donburi.Entity
	Channel components.Channel
	X, Y    float64 // bottom-left corner
	W, H    float64
	Color   color.RGBA
}

func (o HitboxOutline) String() string {
	return fmt.Sprintf("%v %s (%.1f,%.1f %.1fx%.1f)", o.Entity, o.Channel, o.X, o.Y, o.W, o.H)
}

// DebugHitboxes snapshots every installed channel box, rotated by its
// owner's facing, sorted by entity then channel.
func DebugHitboxes(w donburi.World) []HitboxOutline {
	var out []HitboxOutline
	hitboxQuery.Each(w, func(e *donburi.Entry) {
		pos := components.Transform.Get(e).Vec2
		for ch, box := range components.HitState.Get(e).GetAll() {
			c := channelColor(ch)
			if box.Color != nil {
				c = *box.Color
			}
			out = append(out, HitboxOutline{
				Entity:  e.Entity(),
				Channel: ch,
				X:       pos.X + box.Offset.X - box.Width/2,
				Y:       pos.Y + box.Offset.Y - box.Height/2,
				W:       box.Width,
				H:       box.Height,
				Color:   c,
			})
		}
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Entity != out[j].Entity {
			return out[i].Entity < out[j].Entity
		}
		return out[i].Channel < out[j].Channel
	})
	return out
}

func channelColor(ch components.Channel) color.RGBA {
	switch ch {
	case components.ChannelPlayerAttack, components.ChannelEnemyAttack:
		return color.RGBA{255, 0, 0, 255} // Red
	case components.ChannelPlayerHittable, components.ChannelEnemyHittable:
		return color.RGBA{0, 0, 255, 255} // Blue
	case components.ChannelEnemySight, components.ChannelEnemyAiming:
		return color.RGBA{255, 255, 0, 255} // Yellow
	case components.ChannelPortal:
		return color.RGBA{0, 255, 0, 255} // Green
	}
	return color.RGBA{0, 255, 255, 255} // Cyan default
}
