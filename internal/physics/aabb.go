package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// AABB is the world-space bounding box used to skip narrow phase tests.
type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

// Bounds returns the smallest AABB enclosing o.
func (o OBB) Bounds() AABB {
	h := o.HalfSize
	extent := rl.Vector3{
		X: absf(o.Axes[0].X)*h.X + absf(o.Axes[1].X)*h.Y + absf(o.Axes[2].X)*h.Z,
		Y: absf(o.Axes[0].Y)*h.X + absf(o.Axes[1].Y)*h.Y + absf(o.Axes[2].Y)*h.Z,
		Z: absf(o.Axes[0].Z)*h.X + absf(o.Axes[1].Z)*h.Y + absf(o.Axes[2].Z)*h.Z,
	}
	return AABB{
		Min: rl.Vector3Subtract(o.Center, extent),
		Max: rl.Vector3Add(o.Center, extent),
	}
}

// Expand grows the box by margin on every side.
func (a AABB) Expand(margin float32) AABB {
	m := rl.Vector3{X: margin, Y: margin, Z: margin}
	return AABB{Min: rl.Vector3Subtract(a.Min, m), Max: rl.Vector3Add(a.Max, m)}
}

func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}
