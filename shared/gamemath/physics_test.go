package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignumTreatsZeroAsPositive(t *testing.T) {
	assert.Equal(t, 1.0, Signum(0))
	assert.Equal(t, 1.0, Signum(3))
	assert.Equal(t, -1.0, Signum(-0.5))
}

func TestNormalize(t *testing.T) {
	x, y := Normalize(3, 4)
	assert.InDelta(t, 0.6, x, 1e-9)
	assert.InDelta(t, 0.8, y, 1e-9)

	x, y = Normalize(0, 0)
	assert.Zero(t, x)
	assert.Zero(t, y)
	assert.Equal(t, 5.0, Length(3, 4))
}

func TestWalkAxis(t *testing.T) {
	const accel, maxSpeed, decel, dt = 400.0, 100.0, 3.0, 0.125

	// starting from rest counts as reversing
	assert.Equal(t, 150.0, WalkAxis(0, 1, accel, 1000, decel, dt))
	assert.Equal(t, 100.0, WalkAxis(90, 1, accel, maxSpeed, decel, dt))
	assert.Equal(t, -50.0, WalkAxis(0, -1, accel, maxSpeed, decel, dt))

	// braking snaps to zero rather than flipping direction
	assert.Equal(t, 0.0, WalkAxis(40, 0, accel, maxSpeed, decel, dt))
	assert.Equal(t, 0.0, WalkAxis(0, 0, accel, maxSpeed, decel, dt))

	// reversing uses the multiplied acceleration
	assert.Equal(t, -70.0, WalkAxis(80, -1, accel, maxSpeed, decel, dt))
}
