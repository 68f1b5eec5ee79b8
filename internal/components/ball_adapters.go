package components

import (
	"ballance/internal/engine"
	"ballance/internal/locomotion"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ballBody exposes a Rigidbody as the controller's body.
type ballBody struct {
	rb *Rigidbody
}

func (b ballBody) Position() rl.Vector3     { return b.rb.GetGameObject().WorldPosition() }
func (b ballBody) Velocity() rl.Vector3     { return b.rb.Velocity }
func (b ballBody) SetVelocity(v rl.Vector3) { b.rb.Velocity = v }
func (b ballBody) Mass() float32            { return b.rb.Mass }

// rigidbodyConnection is the ball's view of a body it touches. Values
// wrapping the same Rigidbody compare equal.
type rigidbodyConnection struct {
	rb *Rigidbody
}

func (c rigidbodyConnection) IsKinematic() bool { return c.rb.IsKinematic }
func (c rigidbodyConnection) Mass() float32     { return c.rb.Mass }

func (c rigidbodyConnection) TransformPoint(local rl.Vector3) rl.Vector3 {
	return c.rb.GetGameObject().TransformPoint(local)
}

func (c rigidbodyConnection) InverseTransformPoint(world rl.Vector3) rl.Vector3 {
	return c.rb.GetGameObject().InverseTransformPoint(world)
}

func (c rigidbodyConnection) AngularVelocity() rl.Vector3 {
	return c.rb.AngularVelocityRad()
}

// platformOf returns the connection for obj, nil for static geometry.
func platformOf(obj *engine.GameObject) locomotion.Connection {
	rb := engine.GetComponent[*Rigidbody](obj)
	if rb == nil {
		return nil
	}
	return rigidbodyConnection{rb}
}

// worldAdapter answers the controller's world queries from the scene.
type worldAdapter struct {
	access engine.WorldAccess
}

var defaultGravity = rl.Vector3{Y: -9.81}

func (w worldAdapter) Gravity() rl.Vector3 {
	if w.access == nil {
		return defaultGravity
	}
	return w.access.Gravity()
}

func (w worldAdapter) Raycast(origin, direction rl.Vector3, maxDistance float32, mask uint32) (locomotion.Hit, bool) {
	if w.access == nil {
		return locomotion.Hit{}, false
	}
	hit, ok := w.access.Raycast(origin, direction, maxDistance, mask)
	if !ok {
		return locomotion.Hit{}, false
	}
	return locomotion.Hit{
		Point:    hit.Point,
		Normal:   hit.Normal,
		Distance: hit.Distance,
		Body:     platformOf(hit.GameObject),
	}, true
}

// objectMesh rolls an object in world space.
type objectMesh struct {
	obj *engine.GameObject
}

func (m objectMesh) Orientation() rl.Quaternion     { return m.obj.WorldRotation() }
func (m objectMesh) SetOrientation(q rl.Quaternion) { m.obj.SetWorldRotation(q) }
