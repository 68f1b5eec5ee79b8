package locomotion

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	worldUp      = rl.Vector3{X: 0, Y: 1, Z: 0}
	worldRight   = rl.Vector3{X: 1, Y: 0, Z: 0}
	worldForward = rl.Vector3{X: 0, Y: 0, Z: 1}
)

const epsilon = 1e-6

// normalize divides by the length instead of multiplying by its inverse so
// that symmetric sums such as (0, 1.98, 0) come out exactly unit length.
func normalize(v rl.Vector3) rl.Vector3 {
	l := rl.Vector3Length(v)
	if l < epsilon {
		return rl.Vector3{}
	}
	return rl.Vector3{X: v.X / l, Y: v.Y / l, Z: v.Z / l}
}

// normalizeOr returns fallback when v has no usable direction.
func normalizeOr(v, fallback rl.Vector3) rl.Vector3 {
	if rl.Vector3Length(v) < epsilon {
		return fallback
	}
	return normalize(v)
}

func projectOnPlane(v, normal rl.Vector3) rl.Vector3 {
	return rl.Vector3Subtract(v, rl.Vector3Scale(normal, rl.Vector3DotProduct(v, normal)))
}

func moveTowards(current, target, maxDelta float32) float32 {
	if absf(target-current) <= maxDelta {
		return target
	}
	if target > current {
		return current + maxDelta
	}
	return current - maxDelta
}

func clampMagnitude(v rl.Vector2, max float32) rl.Vector2 {
	l := float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
	if l <= max || l == 0 {
		return v
	}
	s := max / l
	return rl.Vector2{X: v.X * s, Y: v.Y * s}
}

// rotationFromTo returns the shortest rotation taking direction from onto
// direction to. Opposite vectors rotate half a turn around any perpendicular.
func rotationFromTo(from, to rl.Vector3) rl.Quaternion {
	from = normalize(from)
	to = normalize(to)
	d := rl.Vector3DotProduct(from, to)
	if d >= 1-epsilon {
		return rl.QuaternionIdentity()
	}
	if d <= -1+epsilon {
		axis := rl.Vector3CrossProduct(worldRight, from)
		if rl.Vector3Length(axis) < epsilon {
			axis = rl.Vector3CrossProduct(worldUp, from)
		}
		return rl.QuaternionFromAxisAngle(normalize(axis), math.Pi)
	}
	c := rl.Vector3CrossProduct(from, to)
	return rl.QuaternionNormalize(rl.Quaternion{X: c.X, Y: c.Y, Z: c.Z, W: 1 + d})
}

// angularStep converts an angular velocity in radians per second into the
// rotation it produces over dt.
func angularStep(omega rl.Vector3, dt float32) rl.Quaternion {
	speed := rl.Vector3Length(omega)
	if speed < epsilon || dt <= 0 {
		return rl.QuaternionIdentity()
	}
	return rl.QuaternionFromAxisAngle(rl.Vector3Scale(omega, 1/speed), speed*dt)
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func clampf(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func sqrtf(x float32) float32 {
	if x <= 0 {
		return 0
	}
	return float32(math.Sqrt(float64(x)))
}
