package locomotion

import rl "github.com/gen2brain/raylib-go/raylib"

// connection tracks the platform under the ball across steps and derives its
// velocity at the ball's position by finite difference.
type connection struct {
	previous     Connection
	worldAnchor  rl.Vector3
	localAnchor  rl.Vector3
	velocity     rl.Vector3
	lastVelocity rl.Vector3
}

// canCarry reports whether body is heavy enough, or kinematic, to move the ball.
func canCarry(body Connection, ballMass float32) bool {
	return body.IsKinematic() || body.Mass() >= ballMass
}

// update measures how far the anchor point moved with body since the last
// step. The velocity stays zero unless body is the same one as last step.
func (c *connection) update(body Connection, position rl.Vector3, dt float32) {
	if body == c.previous && dt > 0 {
		moved := rl.Vector3Subtract(body.TransformPoint(c.localAnchor), c.worldAnchor)
		c.velocity = rl.Vector3Scale(moved, 1/dt)
	}
	c.worldAnchor = position
	c.localAnchor = body.InverseTransformPoint(position)
}

// advance closes a step: current values become the history.
func (c *connection) advance(current Connection) {
	c.lastVelocity = c.velocity
	c.velocity = rl.Vector3{}
	c.previous = current
}
