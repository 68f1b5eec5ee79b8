package locomotion

import rl "github.com/gen2brain/raylib-go/raylib"

// DesiredVelocity turns two-axis input (X = right, Y = forward) into a
// horizontal target velocity. The input is clamped to unit length. With a
// frame, its forward and right are flattened onto the horizontal plane;
// without one the world axes are used.
func DesiredVelocity(input rl.Vector2, frame Frame, maxSpeed float32) rl.Vector3 {
	input = clampMagnitude(input, 1)

	forward, right := worldForward, worldRight
	if frame != nil {
		f := frame.Forward()
		f.Y = 0
		forward = normalizeOr(f, worldForward)
		r := frame.Right()
		r.Y = 0
		right = normalizeOr(r, worldRight)
	}

	v := rl.Vector3Add(rl.Vector3Scale(forward, input.Y), rl.Vector3Scale(right, input.X))
	return rl.Vector3Scale(v, maxSpeed)
}

// ContactAxes returns world right and forward projected onto the contact
// plane and normalized.
func ContactAxes(normal rl.Vector3) (x, z rl.Vector3) {
	x = normalize(projectOnPlane(worldRight, normal))
	z = normalize(projectOnPlane(worldForward, normal))
	return x, z
}

// AdjustVelocity moves the tangential part of velocity, measured relative to
// the platform, toward desired by at most maxSpeedChange on each plane axis
// independently (not by vector magnitude, so diagonal turns are slightly
// faster). The component along the normal and the platform velocity are
// carried through untouched.
func AdjustVelocity(velocity, platformVelocity, desired, normal rl.Vector3, maxSpeedChange float32) rl.Vector3 {
	xAxis, zAxis := ContactAxes(normal)

	relative := rl.Vector3Subtract(velocity, platformVelocity)
	currentX := rl.Vector3DotProduct(relative, xAxis)
	currentZ := rl.Vector3DotProduct(relative, zAxis)

	newX := moveTowards(currentX, desired.X, maxSpeedChange)
	newZ := moveTowards(currentZ, desired.Z, maxSpeedChange)

	velocity = rl.Vector3Add(velocity, rl.Vector3Scale(xAxis, newX-currentX))
	return rl.Vector3Add(velocity, rl.Vector3Scale(zAxis, newZ-currentZ))
}
