package systems

import (
	"testing"

	"github.com/automoto/heartkeep/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	attackCh = components.ChannelPlayerAttack
	hitCh    = components.ChannelPlayerHittable
)

func TestScanNeverHitsSelf(t *testing.T) {
	e := newTestECS(t)
	spawnBoxes(e, 0, 0, map[components.Channel]components.Hitbox{
		attackCh: square(10),
		hitCh:    square(10),
	})

	assert.Empty(t, ScanHitboxes(e.World, attackCh, hitCh))
}

func TestScanFansOutToEveryTarget(t *testing.T) {
	e := newTestECS(t)
	attacker := spawnBoxes(e, 0, 0, map[components.Channel]components.Hitbox{attackCh: square(20)})
	for _, x := range []float64{-5, 0, 5} {
		spawnBoxes(e, x, 0, map[components.Channel]components.Hitbox{hitCh: square(4)})
	}
	spawnBoxes(e, 100, 0, map[components.Channel]components.Hitbox{hitCh: square(4)})

	hits := ScanHitboxes(e.World, attackCh, hitCh)
	require.Len(t, hits, 3)
	for _, h := range hits {
		assert.Equal(t, attacker.Entity(), h.Source.Entity())
		assert.NotEqual(t, attacker.Entity(), h.Target.Entity())
	}
}

func TestScanIsDirected(t *testing.T) {
	e := newTestECS(t)
	a := spawnBoxes(e, 0, 0, map[components.Channel]components.Hitbox{attackCh: square(10)})
	b := spawnBoxes(e, 4, 3, map[components.Channel]components.Hitbox{hitCh: square(6)})

	hits := ScanHitboxes(e.World, attackCh, hitCh)
	require.Len(t, hits, 1)
	assert.Equal(t, a.Entity(), hits[0].Source.Entity())
	assert.Equal(t, b.Entity(), hits[0].Target.Entity())
	assert.Equal(t, 4.0, hits[0].DX)
	assert.Equal(t, 3.0, hits[0].DY)
	assert.Equal(t, 4.0, hits[0].DepthX)
	assert.Equal(t, 5.0, hits[0].DepthY)

	assert.Empty(t, ScanHitboxes(e.World, hitCh, attackCh))
}

func TestScanSymmetricSetupFiresTwice(t *testing.T) {
	e := newTestECS(t)
	both := map[components.Channel]components.Hitbox{attackCh: square(10), hitCh: square(10)}
	spawnBoxes(e, 0, 0, both)
	spawnBoxes(e, 2, 0, both)

	assert.Len(t, ScanHitboxes(e.World, attackCh, hitCh), 2)
}

func TestScanSkipsEntitiesWithoutTransform(t *testing.T) {
	e := newTestECS(t)
	spawnBoxes(e, 0, 0, map[components.Channel]components.Hitbox{attackCh: square(10)})

	loose := e.World.Entry(e.World.Create(components.HitState))
	hs := components.NewHitState()
	hs.SetBox(hitCh, square(10))
	components.HitState.SetValue(loose, hs)

	assert.Empty(t, ScanHitboxes(e.World, attackCh, hitCh))
}

func TestScanReadsRotatedBoxes(t *testing.T) {
	e := newTestECS(t)
	attacker := spawnBoxes(e, 0, 0, map[components.Channel]components.Hitbox{
		attackCh: components.NewHitboxRect(8, 4, 8, 0),
	})
	spawnBoxes(e, -8, 0, map[components.Channel]components.Hitbox{hitCh: square(2)})

	assert.Empty(t, ScanHitboxes(e.World, attackCh, hitCh), "facing east, reaching away")

	components.HitState.Get(attacker).Rotate(components.West)
	assert.Len(t, ScanHitboxes(e.World, attackCh, hitCh), 1)
}

func TestCollisionSystemGate(t *testing.T) {
	e := newTestECS(t)
	spawnBoxes(e, 0, 0, map[components.Channel]components.Hitbox{attackCh: square(10)})
	spawnBoxes(e, 1, 0, map[components.Channel]components.Hitbox{hitCh: square(10)})

	open := false
	before, collided := 0, 0
	sys := &HitboxCollisionSystem{
		Source: attackCh,
		Target: hitCh,
		Before: func(*ecs.ECS) { before++ },
		Gate:   func(*ecs.ECS) bool { return open },
		Collide: func(*ecs.ECS, HitboxHit) {
			collided++
		},
	}

	sys.Update(e)
	assert.Equal(t, 1, before)
	assert.Zero(t, collided)

	open = true
	sys.Update(e)
	assert.Equal(t, 2, before)
	assert.Equal(t, 1, collided)
}

func TestCollisionSystemSkipsRemovedEntries(t *testing.T) {
	e := newTestECS(t)
	spawnBoxes(e, 0, 0, map[components.Channel]components.Hitbox{attackCh: square(10)})
	for i := 0; i < 2; i++ {
		spawnBoxes(e, 1, 0, map[components.Channel]components.Hitbox{hitCh: square(10)})
	}

	var seen []donburi.Entity
	sys := &HitboxCollisionSystem{
		Source: attackCh,
		Target: hitCh,
		Collide: func(ecs *ecs.ECS, hit HitboxHit) {
			seen = append(seen, hit.Target.Entity())
			// removing the attacker voids the rest of its hits
			ecs.World.Remove(hit.Source.Entity())
		},
	}
	sys.Update(e)
	assert.Len(t, seen, 1)
}
