package systems

import (
	"github.com/automoto/heartkeep/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// HitboxHit is one overlap between a source box and a target box.
type HitboxHit struct {
	Source *donburi.Entry
	Target *donburi.Entry
	components.HitboxCollision
}

var hitboxQuery = donburi.NewQuery(filter.Contains(components.HitState, components.Transform))

// ScanHitboxes tests every entity's source channel against every other
// entity's target channel. The scan is directed: A's source against B's
// target is a different pair from B's source against A's target. Entities
// without a transform never take part.
func ScanHitboxes(w donburi.World, source, target components.Channel) []HitboxHit {
	var holders []*donburi.Entry
	hitboxQuery.Each(w, func(e *donburi.Entry) {
		holders = append(holders, e)
	})

	var hits []HitboxHit
	for _, a := range holders {
		attack, ok := components.HitState.Get(a).Get(source)
		if !ok {
			continue
		}
		posA := components.Transform.Get(a).Vec2
		for _, b := range holders {
			if a.Entity() == b.Entity() {
				continue
			}
			hit, ok := components.HitState.Get(b).Get(target)
			if !ok {
				continue
			}
			posB := components.Transform.Get(b).Vec2
			if c, ok := attack.Depth(posA, hit, posB); ok {
				hits = append(hits, HitboxHit{Source: a, Target: b, HitboxCollision: c})
			}
		}
	}
	return hits
}

// HitboxCollisionSystem pairs a channel scan with the response for each hit.
// The scan finishes before any response runs, so responses never change
// which pairs were found this tick.
type HitboxCollisionSystem struct {
	Source components.Channel
	Target components.Channel

	// Before runs every tick ahead of the gate and the scan.
	Before func(ecs *ecs.ECS)
	// Gate skips the scan for this tick when it returns false.
	Gate    func(ecs *ecs.ECS) bool
	Collide func(ecs *ecs.ECS, hit HitboxHit)
}

func (s *HitboxCollisionSystem) Update(ecs *ecs.ECS) {
	if s.Before != nil {
		s.Before(ecs)
	}
	if s.Gate != nil && !s.Gate(ecs) {
		return
	}
	for _, hit := range ScanHitboxes(ecs.World, s.Source, s.Target) {
		if !hit.Source.Valid() || !hit.Target.Valid() {
			continue
		}
		s.Collide(ecs, hit)
	}
}
