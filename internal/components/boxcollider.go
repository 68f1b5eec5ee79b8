package components

import (
	"ballance/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type BoxCollider struct {
	engine.BaseComponent
	Size      rl.Vector3
	Offset    rl.Vector3
	IsTrigger bool
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:   size,
		Offset: rl.Vector3{},
	}
}

// GetCenter returns the world-space center of this collider
func (b *BoxCollider) GetCenter() rl.Vector3 {
	return b.GetGameObject().TransformPoint(b.Offset)
}

// GetWorldSize returns the size scaled by the world scale, always positive.
func (b *BoxCollider) GetWorldSize() rl.Vector3 {
	scale := b.GetGameObject().WorldScale()
	return rl.Vector3{
		X: absf(b.Size.X * scale.X),
		Y: absf(b.Size.Y * scale.Y),
		Z: absf(b.Size.Z * scale.Z),
	}
}

// Axes returns the box's local X, Y and Z axes in world space.
func (b *BoxCollider) Axes() [3]rl.Vector3 {
	rot := b.GetGameObject().WorldRotation()
	return [3]rl.Vector3{
		rl.Vector3RotateByQuaternion(rl.Vector3{X: 1}, rot),
		rl.Vector3RotateByQuaternion(rl.Vector3{Y: 1}, rot),
		rl.Vector3RotateByQuaternion(rl.Vector3{Z: 1}, rot),
	}
}
