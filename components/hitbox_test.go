package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"
)

func vec(x, y float64) dmath.Vec2 {
	return dmath.Vec2{X: x, Y: y}
}

func TestHitboxDepth(t *testing.T) {
	a := NewHitbox(4)
	b := NewHitboxAt(2, 1, 0)

	c, ok := a.Depth(vec(0, 0), b, vec(4, 3))
	require.True(t, ok)
	assert.Equal(t, 5.0, c.DX)
	assert.Equal(t, 3.0, c.DY)
	assert.Equal(t, 1.0, c.DepthX)
	assert.Equal(t, 3.0, c.DepthY)
}

func TestHitboxDepthTouchingIsNotOverlap(t *testing.T) {
	a := NewHitbox(4)
	_, ok := a.Depth(vec(0, 0), NewHitbox(4), vec(8, 0))
	assert.False(t, ok)

	_, ok = a.Depth(vec(0, 0), NewHitbox(4), vec(7.5, 0))
	assert.True(t, ok)
}

func TestHitboxDepthSymmetric(t *testing.T) {
	cases := []struct {
		a, b   Hitbox
		pa, pb dmath.Vec2
	}{
		{NewHitbox(4), NewHitbox(4), vec(0, 0), vec(3, -2)},
		{NewHitboxAt(4, 8, 2), NewHitboxRect(12, 12, 0, 0), vec(10, 10), vec(20, 12)},
		{NewHitboxRect(20, 10, 16, 0), NewHitbox(8), vec(-4, 0), vec(30, 40)},
		{NewHitbox(1), NewHitbox(1), vec(0, 0), vec(2, 2)},
	}
	for _, tc := range cases {
		ab, okAB := tc.a.Depth(tc.pa, tc.b, tc.pb)
		ba, okBA := tc.b.Depth(tc.pb, tc.a, tc.pa)
		require.Equal(t, okAB, okBA)
		if !okAB {
			continue
		}
		assert.Equal(t, ab.DX, -ba.DX)
		assert.Equal(t, ab.DY, -ba.DY)
		assert.Equal(t, ab.DepthX, ba.DepthX)
		assert.Equal(t, ab.DepthY, ba.DepthY)
	}
}

func TestRotationRotate(t *testing.T) {
	x, y := East.Rotate(8, 2)
	assert.Equal(t, []float64{8, 2}, []float64{x, y})
	x, y = South.Rotate(8, 2)
	assert.Equal(t, []float64{2, -8}, []float64{x, y})
	x, y = West.Rotate(8, 2)
	assert.Equal(t, []float64{-8, -2}, []float64{x, y})
	x, y = North.Rotate(8, 2)
	assert.Equal(t, []float64{-2, 8}, []float64{x, y})
}

func TestHitStateRotatedReads(t *testing.T) {
	hs := NewHitState()
	hs.Set(ChannelPlayerInteract, 24, 16, 8, 0)

	box, ok := hs.Get(ChannelPlayerInteract)
	require.True(t, ok)
	assert.Equal(t, 24.0, box.Width)
	assert.Equal(t, 16.0, box.Height)
	assert.Equal(t, vec(8, 0), box.Offset)

	hs.Rotate(North)
	box, _ = hs.Get(ChannelPlayerInteract)
	assert.Equal(t, 16.0, box.Width)
	assert.Equal(t, 24.0, box.Height)
	assert.Equal(t, vec(0, 8), box.Offset)

	hs.Rotate(West)
	box, _ = hs.Get(ChannelPlayerInteract)
	assert.Equal(t, 24.0, box.Width)
	assert.Equal(t, vec(-8, 0), box.Offset)

	// storage stays in local space, so turning back restores the first read
	hs.Rotate(East)
	box, _ = hs.Get(ChannelPlayerInteract)
	raw, _ := hs.Raw(ChannelPlayerInteract)
	assert.Equal(t, raw, box)
}

func TestHitStateClearAndBounds(t *testing.T) {
	hs := NewHitState()
	hs.Set(ChannelEnemyAttack, 8, 8, 0, 0)
	hs.Set(Channel(HitStateSize), 8, 8, 0, 0)
	hs.Set(Channel(-1), 8, 8, 0, 0)

	assert.Len(t, hs.GetAll(), 1)
	assert.True(t, hs.Has(ChannelEnemyAttack))

	hs.Clear(ChannelEnemyAttack)
	_, ok := hs.Get(ChannelEnemyAttack)
	assert.False(t, ok)
	assert.Empty(t, hs.GetAll())
}

func TestHitStateGetAllRotates(t *testing.T) {
	hs := NewHitState()
	hs.Set(ChannelEnemyAiming, 20, 10, 16, 0)
	hs.Set(ChannelPlayerHittable, 12, 12, 0, 0)
	hs.Rotate(South)

	all := hs.GetAll()
	require.Len(t, all, 2)
	assert.Equal(t, vec(0, -16), all[ChannelEnemyAiming].Offset)
	assert.Equal(t, 10.0, all[ChannelEnemyAiming].Width)
	assert.Equal(t, 20.0, all[ChannelEnemyAiming].Height)
}
