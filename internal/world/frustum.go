package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Frustum represents the 6 planes of a view frustum for culling
type Frustum struct {
	planes [6]Plane // left, right, bottom, top, near, far
}

// Plane represents a plane in 3D space (ax + by + cz + d = 0)
type Plane struct {
	normal   rl.Vector3
	distance float32
}

const (
	nearPlane = 0.05
	farPlane  = 1000.0
)

// ExtractFrustum builds the view frustum of camera for a viewport of the
// given aspect ratio, using the Gribb/Hartmann plane extraction.
func ExtractFrustum(camera rl.Camera3D, aspect float32) Frustum {
	view := rl.MatrixLookAt(camera.Position, camera.Target, camera.Up)

	var proj rl.Matrix
	if camera.Projection == rl.CameraPerspective {
		proj = rl.MatrixPerspective(camera.Fovy*rl.Deg2rad, aspect, nearPlane, farPlane)
	} else {
		halfH := camera.Fovy / 2.0
		halfW := halfH * aspect
		proj = rl.MatrixOrtho(-halfW, halfW, -halfH, halfH, nearPlane, farPlane)
	}

	// Combine view and projection: VP = P * V
	m := rl.MatrixMultiply(view, proj)

	row := func(i int) [4]float32 {
		switch i {
		case 0:
			return [4]float32{m.M0, m.M4, m.M8, m.M12}
		case 1:
			return [4]float32{m.M1, m.M5, m.M9, m.M13}
		case 2:
			return [4]float32{m.M2, m.M6, m.M10, m.M14}
		default:
			return [4]float32{m.M3, m.M7, m.M11, m.M15}
		}
	}
	w := row(3)

	var f Frustum
	for i := 0; i < 3; i++ {
		r := row(i)
		f.planes[2*i] = planeFrom(w, r, 1)
		f.planes[2*i+1] = planeFrom(w, r, -1)
	}
	return f
}

// planeFrom returns the normalized plane w + sign*r.
func planeFrom(w, r [4]float32, sign float32) Plane {
	p := Plane{
		normal: rl.Vector3{
			X: w[0] + sign*r[0],
			Y: w[1] + sign*r[1],
			Z: w[2] + sign*r[2],
		},
		distance: w[3] + sign*r[3],
	}
	length := rl.Vector3Length(p.normal)
	if length == 0 {
		return p
	}
	return Plane{
		normal:   rl.Vector3Scale(p.normal, 1.0/length),
		distance: p.distance / length,
	}
}

// ContainsSphere tests if a sphere is inside or intersects the frustum
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for i := 0; i < 6; i++ {
		// If sphere is completely behind any plane, it's outside
		if f.planes[i].signedDistance(center) < -radius {
			return false
		}
	}
	return true
}

func (f *Frustum) ContainsPoint(point rl.Vector3) bool {
	return f.ContainsSphere(point, 0)
}

func (p Plane) signedDistance(point rl.Vector3) float32 {
	return rl.Vector3DotProduct(p.normal, point) + p.distance
}
