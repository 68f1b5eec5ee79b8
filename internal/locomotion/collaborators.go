package locomotion

import rl "github.com/gen2brain/raylib-go/raylib"

// Body is the physics body driven by the controller. The physics engine owns
// its state; the controller reads it and writes the velocity once per step.
type Body interface {
	Position() rl.Vector3
	Velocity() rl.Vector3
	SetVelocity(v rl.Vector3)
	Mass() float32
}

// Connection is a body the ball can rest on, possibly moving. The controller
// compares connections with == between steps, so two values must be equal
// exactly when they stand for the same body. Static geometry is reported as
// a nil Connection.
type Connection interface {
	IsKinematic() bool
	Mass() float32
	TransformPoint(local rl.Vector3) rl.Vector3
	InverseTransformPoint(world rl.Vector3) rl.Vector3
	// AngularVelocity is in radians per second, world space.
	AngularVelocity() rl.Vector3
}

// Hit is the nearest result of a raycast.
type Hit struct {
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
	Body     Connection
}

// World gives the controller the gravity vector and scene queries.
type World interface {
	Gravity() rl.Vector3
	Raycast(origin, direction rl.Vector3, maxDistance float32, mask uint32) (Hit, bool)
}

// Frame reinterprets the input axes, usually the camera.
type Frame interface {
	Forward() rl.Vector3
	Right() rl.Vector3
}

// Mesh is the visual transform of the ball. It is never read by physics.
type Mesh interface {
	Orientation() rl.Quaternion
	SetOrientation(q rl.Quaternion)
}
