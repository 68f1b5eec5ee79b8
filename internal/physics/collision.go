package physics

import (
	"ballance/internal/components"
	"ballance/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ContactOffset is how far apart two colliders may be and still report a
// contact. Bodies are only pushed apart while penetrating.
const ContactOffset = 0.01

const torqueScale = 50.0

// computeContact finds the contact between the colliders of a and b. The
// normal points toward a.
func computeContact(sa, sb shape) (engine.ContactPoint, bool) {
	switch {
	case sa.sphere != nil && sb.sphere != nil:
		return sphereVsSphere(sa.sphere, sb.sphere)
	case sa.sphere != nil:
		return sphereVsBox(sa.sphere, NewOBBFromBox(sb.box))
	case sb.sphere != nil:
		cp, ok := sphereVsBox(sb.sphere, NewOBBFromBox(sa.box))
		cp.Normal = rl.Vector3Negate(cp.Normal)
		return cp, ok
	default:
		return boxVsBox(NewOBBFromBox(sa.box), NewOBBFromBox(sb.box))
	}
}

func sphereVsSphere(a, b *components.SphereCollider) (engine.ContactPoint, bool) {
	ca, cb := a.GetCenter(), b.GetCenter()
	ra, rb := a.GetWorldRadius(), b.GetWorldRadius()

	diff := rl.Vector3Subtract(ca, cb)
	dist := rl.Vector3Length(diff)
	separation := dist - (ra + rb)
	if separation >= ContactOffset {
		return engine.ContactPoint{}, false
	}

	normal := rl.Vector3{Y: 1}
	if dist > 0.0001 {
		normal = rl.Vector3Scale(diff, 1/dist)
	}
	return engine.ContactPoint{
		Point:      rl.Vector3Add(cb, rl.Vector3Scale(normal, rb)),
		Normal:     normal,
		Separation: separation,
	}, true
}

// sphereVsBox handles centers outside the box with the closest point, and
// centers inside it with the nearest face.
func sphereVsBox(s *components.SphereCollider, obb OBB) (engine.ContactPoint, bool) {
	center := s.GetCenter()
	radius := s.GetWorldRadius()

	closest := ClosestPointOnOBB(obb, center)
	diff := rl.Vector3Subtract(center, closest)
	dist := rl.Vector3Length(diff)

	if dist > 0.0001 {
		separation := dist - radius
		if separation >= ContactOffset {
			return engine.ContactPoint{}, false
		}
		return engine.ContactPoint{
			Point:      closest,
			Normal:     rl.Vector3Scale(diff, 1/dist),
			Separation: separation,
		}, true
	}

	normal, depth := obb.ExitFace(center)
	return engine.ContactPoint{
		Point:      rl.Vector3Add(center, rl.Vector3Scale(normal, depth)),
		Normal:     normal,
		Separation: -(depth + radius),
	}, true
}

func boxVsBox(a, b OBB) (engine.ContactPoint, bool) {
	pushOut := a.ResolveOBB(b)
	pushLen := rl.Vector3Length(pushOut)
	if pushLen < 0.0001 {
		return engine.ContactPoint{}, false
	}
	return engine.ContactPoint{
		Point:      ClosestPointOnOBB(b, a.Center),
		Normal:     rl.Vector3Scale(pushOut, 1/pushLen),
		Separation: -pushLen,
	}, true
}

// resolveContact separates a and b along the contact normal and applies the
// bounce and friction impulses. rbB is nil for static geometry.
func resolveContact(a, b *engine.GameObject, rbA, rbB *components.Rigidbody, cp engine.ContactPoint) {
	if cp.Separation >= 0 {
		return
	}
	invA, invB := inverseMass(rbA), inverseMass(rbB)
	invSum := invA + invB
	if invSum == 0 {
		return
	}
	normal := cp.Normal

	// Split the push based on mass ratio
	depth := -cp.Separation
	a.Transform.Position = rl.Vector3Add(a.Transform.Position, rl.Vector3Scale(normal, depth*invA/invSum))
	b.Transform.Position = rl.Vector3Subtract(b.Transform.Position, rl.Vector3Scale(normal, depth*invB/invSum))

	relVel := rl.Vector3Subtract(velocityOf(rbA), velocityOf(rbB))
	velAlongNormal := rl.Vector3DotProduct(relVel, normal)

	// Only resolve if objects are moving toward each other
	if velAlongNormal >= 0 {
		return
	}

	e, friction := rbA.Bounciness, rbA.Friction
	if rbB != nil && invB > 0 {
		e = (rbA.Bounciness + rbB.Bounciness) / 2
		friction = (rbA.Friction + rbB.Friction) / 2
	}

	j := -(1 + e) * velAlongNormal / invSum
	impulse := rl.Vector3Scale(normal, j)

	// Friction removes part of the sliding velocity
	tangent := rl.Vector3Subtract(relVel, rl.Vector3Scale(normal, velAlongNormal))
	impulse = rl.Vector3Subtract(impulse, rl.Vector3Scale(tangent, clampf(friction, 0, 1)/invSum))

	rbA.AddVelocity(rl.Vector3Scale(impulse, invA))
	if rbB != nil {
		rbB.AddVelocity(rl.Vector3Scale(impulse, -invB))
	}

	applyTorque(a, rbA, cp.Point, impulse)
	if rbB != nil && invB > 0 {
		applyTorque(b, rbB, cp.Point, rl.Vector3Negate(impulse))
	}
}

// applyTorque spins a free body from an impulse at point.
func applyTorque(g *engine.GameObject, rb *components.Rigidbody, point, impulse rl.Vector3) {
	if rb.FreezeRotation || rb.IsKinematic {
		return
	}
	r := rl.Vector3Subtract(point, g.WorldPosition())
	torque := cross(r, impulse)
	rb.AngularVelocity = rl.Vector3Add(rb.AngularVelocity, rl.Vector3Scale(torque, torqueScale/rb.Mass))
}
