package locomotion

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// minRollDistance is the per-frame travel below which the mesh does not roll.
const minRollDistance = 0.001

// roll turns orientation by the rotation a ball of the given radius picks up
// when it travels movement over a surface with planeNormal. It also returns
// the rolling axis; ok is false when the motion has no rolling component.
func roll(orientation rl.Quaternion, movement, planeNormal rl.Vector3, distance, factor, radius float32) (rl.Quaternion, rl.Vector3, bool) {
	degrees := distance * factor * rl.Rad2deg / radius

	movement = projectOnPlane(movement, planeNormal)
	axis := normalize(rl.Vector3CrossProduct(planeNormal, movement))
	if axis == (rl.Vector3{}) {
		return orientation, axis, false
	}

	delta := rl.QuaternionFromAxisAngle(axis, degrees*rl.Deg2rad)
	return rl.QuaternionMultiply(delta, orientation), axis, true
}

// align turns the mesh so its up axis approaches the rolling axis, by at most
// alignSpeed degrees per unit travelled.
func align(orientation rl.Quaternion, axis rl.Vector3, traveled, alignSpeed float32) rl.Quaternion {
	ballAxis := rl.Vector3RotateByQuaternion(worldUp, orientation)
	dot := clampf(rl.Vector3DotProduct(ballAxis, axis), -1, 1)
	angle := float32(math.Acos(float64(dot))) * rl.Rad2deg
	maxAngle := alignSpeed * traveled

	aligned := rl.QuaternionMultiply(rotationFromTo(ballAxis, axis), orientation)
	if angle <= maxAngle {
		return aligned
	}
	return rl.QuaternionSlerp(orientation, aligned, maxAngle/angle)
}

// OnRenderFrame updates the mesh orientation from the distance travelled
// since the previous frame. It runs once per rendered frame, independent of
// the physics step rate.
func (c *Controller) OnRenderFrame(dt float32) {
	if c.mesh == nil {
		return
	}

	movement := rl.Vector3Scale(rl.Vector3Subtract(c.body.Velocity(), c.conn.lastVelocity), dt)
	distance := rl.Vector3Length(movement)

	orientation := c.mesh.Orientation()
	rotated := false
	if connected := c.contacts.Connected(); connected != nil && connected == c.conn.previous {
		orientation = rl.QuaternionMultiply(angularStep(connected.AngularVelocity(), dt), orientation)
		rotated = true
	}

	if distance < minRollDistance {
		if rotated {
			c.mesh.SetOrientation(rl.QuaternionNormalize(orientation))
		}
		return
	}

	planeNormal := c.lastContactNormal
	factor := float32(1)
	if !c.contacts.Grounded() {
		if c.contacts.OnSteep() {
			planeNormal = c.lastSteepNormal
		} else {
			factor = c.cfg.AirRotation
		}
	}
	planeNormal = normalizeOr(planeNormal, worldUp)

	orientation, axis, ok := roll(orientation, movement, planeNormal, distance, factor, c.cfg.BallRadius)
	if ok && c.cfg.AlignBall && c.cfg.AlignSpeed > 0 {
		orientation = align(orientation, axis, distance, c.cfg.AlignSpeed)
	}
	c.mesh.SetOrientation(rl.QuaternionNormalize(orientation))
}
