package systems

import (
	"math"

	"github.com/automoto/heartkeep/components"
	cfg "github.com/automoto/heartkeep/config"
	"github.com/automoto/heartkeep/shared/gamemath"
	"github.com/automoto/heartkeep/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/filter"
)

// UpdateVelocity moves every entity by its velocity for this tick.
func UpdateVelocity(ecs *ecs.ECS) {
	dt := delta(ecs.World)
	velocityQuery.Each(ecs.World, func(e *donburi.Entry) {
		v := components.Velocity.Get(e)
		t := components.Transform.Get(e)
		t.X += v.X * dt
		t.Y += v.Y * dt
	})
}

var (
	velocityQuery = donburi.NewQuery(filter.Contains(components.Velocity, components.Transform))
	bodyQuery     = donburi.NewQuery(filter.Contains(components.Physical, components.Transform))
)

type body struct {
	entry    *donburi.Entry
	pos      dmath.Vec2
	physical components.PhysicalData
	object   *resolv.Object
}

// UpdateRestitution pushes overlapping bodies apart. Every correction is
// computed from the positions at the start of the pass; static bodies push
// at full strength, two dynamic bodies each take half.
func UpdateRestitution(ecs *ecs.ECS) {
	bodies := snapshotBodies(ecs.World)
	if len(bodies) < 2 {
		return
	}
	broadphase(bodies)

	corrections := make([]dmath.Vec2, len(bodies))
	for i := range bodies {
		me := &bodies[i]
		if me.physical.Static {
			continue
		}
		near := me.object.Check(0, 0)
		if near == nil {
			continue
		}
		seen := make(map[int]bool, len(near.Objects))
		for _, obj := range near.Objects {
			j, ok := obj.Data.(int)
			if !ok || j == i || seen[j] {
				continue
			}
			seen[j] = true
			other := &bodies[j]
			c, ok := me.physical.Depth(me.pos, &other.physical, other.pos)
			if !ok {
				continue
			}
			factor := 2.0
			if other.physical.Static {
				factor = 1
			}
			dirX := gamemath.Signum(me.pos.X - other.pos.X)
			dirY := gamemath.Signum(me.pos.Y - other.pos.Y)
			if math.Abs(c.DepthY) > math.Abs(c.DepthX) {
				corrections[i].X += c.DepthX * dirX / factor
			} else {
				corrections[i].Y += c.DepthY * dirY / factor
			}
		}
	}

	for i, b := range bodies {
		if corrections[i].X == 0 && corrections[i].Y == 0 {
			continue
		}
		t := components.Transform.Get(b.entry)
		t.X += corrections[i].X
		t.Y += corrections[i].Y
	}
}

func snapshotBodies(w donburi.World) []body {
	var bodies []body
	bodyQuery.Each(w, func(e *donburi.Entry) {
		bodies = append(bodies, body{
			entry:    e,
			pos:      components.Transform.Get(e).Vec2,
			physical: *components.Physical.Get(e),
		})
	})
	return bodies
}

// broadphase drops every body into a resolv space sized to the snapshot so
// each body only runs the exact depth test against bodies in nearby cells.
func broadphase(bodies []body) {
	margin := cfg.Physics.Margin
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, b := range bodies {
		x0, y0, x1, y1 := bounds(b)
		minX, minY = math.Min(minX, x0), math.Min(minY, y0)
		maxX, maxY = math.Max(maxX, x1), math.Max(maxY, y1)
	}

	cell := cfg.Physics.CellSize
	width := int(math.Ceil(maxX-minX+2*margin)) + cell
	height := int(math.Ceil(maxY-minY+2*margin)) + cell
	space := resolv.NewSpace(width, height, cell, cell)

	for i := range bodies {
		x0, y0, x1, y1 := bounds(bodies[i])
		tag := tags.ResolvBody
		if bodies[i].physical.Static {
			tag = tags.ResolvStatic
		}
		obj := resolv.NewObject(
			x0-minX, y0-minY,
			x1-x0+2*margin, y1-y0+2*margin,
			tag,
		)
		obj.Data = i
		space.Add(obj)
		bodies[i].object = obj
	}
}

func bounds(b body) (x0, y0, x1, y1 float64) {
	box := b.physical.Box
	cx := b.pos.X + box.Offset.X
	cy := b.pos.Y + box.Offset.Y
	return cx - box.Width/2, cy - box.Height/2, cx + box.Width/2, cy + box.Height/2
}
