package gamemath

import "math"

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Signum returns 1 or -1. Zero counts as positive, so overlapping bodies at
// the exact same spot still get pushed apart.
func Signum(v float64) float64 {
	return math.Copysign(1, v)
}

func Length(x, y float64) float64 {
	return math.Sqrt(x*x + y*y)
}

// Normalize returns the unit vector of (x, y), or zero for the zero vector.
func Normalize(x, y float64) (float64, float64) {
	if x == 0 && y == 0 {
		return 0, 0
	}
	l := Length(x, y)
	return x / l, y / l
}

// WalkAxis advances one velocity axis for a tilt in [-1, 1]. Acceleration
// against the current motion is multiplied by decel. With no tilt the axis
// brakes toward zero and snaps to rest instead of overshooting.
func WalkAxis(v, tilt, accel, maxSpeed, decel, dt float64) float64 {
	a := 0.0
	switch {
	case tilt < 0:
		a = -accel
	case tilt > 0:
		a = accel
	case v != 0:
		a = -accel * Signum(v)
	}
	if (a > 0 && v <= 0) || (a < 0 && v > 0) {
		a *= decel
	}
	if tilt == 0 && math.Abs(a)*dt > math.Abs(v) {
		v = 0
	} else {
		v += a * dt
	}
	return ClampSpeed(v, maxSpeed)
}
