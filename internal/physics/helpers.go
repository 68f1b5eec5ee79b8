package physics

import (
	"ballance/internal/components"
	"ballance/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// cross computes the cross product of two vectors
func cross(a, b rl.Vector3) rl.Vector3 {
	return rl.Vector3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// shape is the collider of one object. Exactly one field is set.
type shape struct {
	sphere *components.SphereCollider
	box    *components.BoxCollider
}

func shapeOf(g *engine.GameObject) (shape, bool) {
	if s := engine.GetComponent[*components.SphereCollider](g); s != nil {
		return shape{sphere: s}, true
	}
	if b := engine.GetComponent[*components.BoxCollider](g); b != nil {
		return shape{box: b}, true
	}
	return shape{}, false
}

func (s shape) isTrigger() bool {
	if s.sphere != nil {
		return s.sphere.IsTrigger
	}
	return s.box.IsTrigger
}

func (s shape) center() rl.Vector3 {
	if s.sphere != nil {
		return s.sphere.GetCenter()
	}
	return s.box.GetCenter()
}

func (s shape) bounds() AABB {
	if s.sphere != nil {
		d := 2 * s.sphere.GetWorldRadius()
		return NewAABBFromCenter(s.sphere.GetCenter(), rl.Vector3{X: d, Y: d, Z: d})
	}
	return NewOBBFromBox(s.box).Bounds()
}

// overlaps is the broad phase test, padded by ContactOffset.
func (s shape) overlaps(other shape) bool {
	return s.bounds().Expand(ContactOffset).Intersects(other.bounds())
}

// contains reports whether point lies inside the collider.
func (s shape) contains(point rl.Vector3) bool {
	if s.sphere != nil {
		r := s.sphere.GetWorldRadius()
		d := rl.Vector3Subtract(point, s.sphere.GetCenter())
		return rl.Vector3DotProduct(d, d) < r*r
	}
	return NewOBBFromBox(s.box).Contains(point)
}

// inverseMass is zero for static and kinematic bodies.
func inverseMass(rb *components.Rigidbody) float32 {
	if rb == nil || rb.IsKinematic || rb.Mass <= 0 {
		return 0
	}
	return 1 / rb.Mass
}

func velocityOf(rb *components.Rigidbody) rl.Vector3 {
	if rb == nil {
		return rl.Vector3{}
	}
	return rb.Velocity
}

// angularStep is the rotation by omega (radians per second) over dt.
func angularStep(omega rl.Vector3, dt float32) rl.Quaternion {
	angle := rl.Vector3Length(omega) * dt
	if angle < 1e-7 {
		return rl.QuaternionIdentity()
	}
	return rl.QuaternionFromAxisAngle(rl.Vector3Normalize(omega), angle)
}
