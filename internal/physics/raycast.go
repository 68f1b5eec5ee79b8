package physics

import (
	"math"

	"ballance/internal/components"
	"ballance/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Raycast returns the closest non-trigger collider hit along the ray whose
// layer is in mask. Colliders that contain origin are skipped.
func (p *PhysicsWorld) Raycast(origin, direction rl.Vector3, maxDistance float32, mask uint32) (engine.RaycastResult, bool) {
	if rl.Vector3Length(direction) < 0.0001 || maxDistance < 0 {
		return engine.RaycastResult{}, false
	}
	direction = rl.Vector3Normalize(direction)

	var closestHit engine.RaycastResult
	closestHit.Distance = maxDistance
	hit := false

	for _, list := range [][]*engine.GameObject{p.Objects, p.Kinematics, p.Statics} {
		for _, obj := range list {
			if mask&obj.LayerMask() == 0 || !obj.ActiveInHierarchy() {
				continue
			}
			s, ok := shapeOf(obj)
			if !ok || s.isTrigger() || s.contains(origin) {
				continue
			}

			var hitInfo engine.RaycastResult
			if s.sphere != nil {
				hitInfo, ok = raycastSphere(origin, direction, s.sphere, maxDistance)
			} else {
				hitInfo, ok = raycastBox(origin, direction, s.box, maxDistance)
			}
			if ok && hitInfo.Distance <= closestHit.Distance {
				closestHit = hitInfo
				closestHit.GameObject = obj
				hit = true
			}
		}
	}

	return closestHit, hit
}

// raycastBox runs the slab test in the box's local axes.
func raycastBox(origin, direction rl.Vector3, box *components.BoxCollider, maxDistance float32) (engine.RaycastResult, bool) {
	obb := NewOBBFromBox(box)
	lo := obb.ToLocal(origin)
	ld := rl.Vector3{
		X: rl.Vector3DotProduct(direction, obb.Axes[0]),
		Y: rl.Vector3DotProduct(direction, obb.Axes[1]),
		Z: rl.Vector3DotProduct(direction, obb.Axes[2]),
	}
	o := [3]float32{lo.X, lo.Y, lo.Z}
	d := [3]float32{ld.X, ld.Y, ld.Z}
	half := [3]float32{obb.HalfSize.X, obb.HalfSize.Y, obb.HalfSize.Z}

	tmin := float32(-math.MaxFloat32)
	tmax := float32(math.MaxFloat32)
	entryAxis, entrySign := -1, float32(0)

	for i := 0; i < 3; i++ {
		if absf(d[i]) < 1e-8 {
			if o[i] < -half[i] || o[i] > half[i] {
				return engine.RaycastResult{}, false
			}
			continue
		}
		t1 := (-half[i] - o[i]) / d[i]
		t2 := (half[i] - o[i]) / d[i]
		sign := float32(-1) // entering through the -axis face
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1
		}
		if t1 > tmin {
			tmin = t1
			entryAxis, entrySign = i, sign
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return engine.RaycastResult{}, false
		}
	}

	if tmin < 0 || tmin > maxDistance || entryAxis < 0 {
		return engine.RaycastResult{}, false
	}

	var local rl.Vector3
	switch entryAxis {
	case 0:
		local.X = entrySign
	case 1:
		local.Y = entrySign
	case 2:
		local.Z = entrySign
	}

	return engine.RaycastResult{
		Point:    rl.Vector3Add(origin, rl.Vector3Scale(direction, tmin)),
		Normal:   obb.ToWorldDirection(local),
		Distance: tmin,
	}, true
}

func raycastSphere(origin, direction rl.Vector3, sphere *components.SphereCollider, maxDistance float32) (engine.RaycastResult, bool) {
	center := sphere.GetCenter()
	radius := sphere.GetWorldRadius()

	oc := rl.Vector3Subtract(origin, center)
	b := rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius

	discriminant := b*b - c
	if discriminant < 0 {
		return engine.RaycastResult{}, false
	}

	t := -b - float32(math.Sqrt(float64(discriminant)))
	if t < 0 || t > maxDistance {
		return engine.RaycastResult{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Normalize(rl.Vector3Subtract(point, center))

	return engine.RaycastResult{Point: point, Normal: normal, Distance: t}, true
}
