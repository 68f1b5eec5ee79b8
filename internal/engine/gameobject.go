package engine

import (
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var nextUID atomic.Uint64

type Transform struct {
	Position rl.Vector3
	Rotation rl.Quaternion
	Scale    rl.Vector3
}

// SetEuler sets the rotation from pitch/yaw/roll in degrees, the form scene
// files use.
func (t *Transform) SetEuler(degrees rl.Vector3) {
	t.Rotation = rl.QuaternionFromEuler(degrees.X*rl.Deg2rad, degrees.Y*rl.Deg2rad, degrees.Z*rl.Deg2rad)
}

// Euler returns the rotation as pitch/yaw/roll in degrees.
func (t Transform) Euler() rl.Vector3 {
	return rl.Vector3Scale(rl.QuaternionToEuler(t.Rotation), rl.Rad2deg)
}

type GameObject struct {
	UID        uint64
	Name       string
	Tags       []string
	Layer      int // collision layer, 0-31
	Transform  Transform
	Active     bool
	Scene      *Scene
	Parent     *GameObject
	Children   []*GameObject
	components []Component
	started    bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:    nextUID.Add(1),
		Name:   name,
		Active: true,
		Transform: Transform{
			Rotation: rl.QuaternionIdentity(),
			Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		components: make([]Component, 0),
		Children:   make([]*GameObject, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

// GetComponent returns the first component of type T, or the zero value.
func GetComponent[T any](g *GameObject) T {
	var zero T
	if g == nil {
		return zero
	}
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

// GetComponentInChildren searches g and then its descendants depth-first.
func GetComponentInChildren[T any](g *GameObject) T {
	found, _ := findInChildren[T](g)
	return found
}

func findInChildren[T any](g *GameObject) (T, bool) {
	if g != nil {
		for _, c := range g.components {
			if typed, ok := c.(T); ok {
				return typed, true
			}
		}
		for _, child := range g.Children {
			if found, ok := findInChildren[T](child); ok {
				return found, true
			}
		}
	}
	var zero T
	return zero, false
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	for _, c := range g.components {
		c.Start()
	}
	g.started = true
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
}

// FixedUpdate runs once per physics step, before the physics world advances.
func (g *GameObject) FixedUpdate(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		if f, ok := c.(FixedUpdater); ok {
			f.FixedUpdate(deltaTime)
		}
	}
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// LayerMask is the single bit of g's layer.
func (g *GameObject) LayerMask() uint32 {
	return 1 << uint(g.Layer&31)
}

// ActiveInHierarchy reports whether g and all its parents are active.
func (g *GameObject) ActiveInHierarchy() bool {
	for obj := g; obj != nil; obj = obj.Parent {
		if !obj.Active {
			return false
		}
	}
	return true
}

func (g *GameObject) AddChild(child *GameObject) {
	child.Parent = g
	g.Children = append(g.Children, child)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

func (g *GameObject) WorldPosition() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Position
	}
	return g.Parent.TransformPoint(g.Transform.Position)
}

func (g *GameObject) WorldRotation() rl.Quaternion {
	if g.Parent == nil {
		return g.Transform.Rotation
	}
	return rl.QuaternionMultiply(g.Parent.WorldRotation(), g.Transform.Rotation)
}

func (g *GameObject) WorldScale() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Scale
	}
	ps := g.Parent.WorldScale()
	return rl.Vector3{
		X: ps.X * g.Transform.Scale.X,
		Y: ps.Y * g.Transform.Scale.Y,
		Z: ps.Z * g.Transform.Scale.Z,
	}
}

// SetWorldRotation sets the local rotation so that the world rotation is q.
func (g *GameObject) SetWorldRotation(q rl.Quaternion) {
	if g.Parent == nil {
		g.Transform.Rotation = q
		return
	}
	g.Transform.Rotation = rl.QuaternionMultiply(rl.QuaternionInvert(g.Parent.WorldRotation()), q)
}

// TransformPoint converts a point from g's local space to world space.
func (g *GameObject) TransformPoint(local rl.Vector3) rl.Vector3 {
	s := g.WorldScale()
	scaled := rl.Vector3{X: local.X * s.X, Y: local.Y * s.Y, Z: local.Z * s.Z}
	return rl.Vector3Add(g.WorldPosition(), rl.Vector3RotateByQuaternion(scaled, g.WorldRotation()))
}

// InverseTransformPoint converts a world point into g's local space.
// Zero scale axes map to zero.
func (g *GameObject) InverseTransformPoint(world rl.Vector3) rl.Vector3 {
	offset := rl.Vector3Subtract(world, g.WorldPosition())
	local := rl.Vector3RotateByQuaternion(offset, rl.QuaternionInvert(g.WorldRotation()))
	s := g.WorldScale()
	return rl.Vector3{X: safeDiv(local.X, s.X), Y: safeDiv(local.Y, s.Y), Z: safeDiv(local.Z, s.Z)}
}

func safeDiv(a, b float32) float32 {
	if b == 0 {
		return 0
	}
	return a / b
}

// TransformDirection rotates a local direction into world space.
func (g *GameObject) TransformDirection(local rl.Vector3) rl.Vector3 {
	return rl.Vector3RotateByQuaternion(local, g.WorldRotation())
}

func (g *GameObject) Up() rl.Vector3      { return g.TransformDirection(rl.Vector3{Y: 1}) }
func (g *GameObject) Forward() rl.Vector3 { return g.TransformDirection(rl.Vector3{Z: 1}) }
func (g *GameObject) Right() rl.Vector3   { return g.TransformDirection(rl.Vector3{X: 1}) }

// InverseTransformDirection rotates a world direction into g's local space.
func (g *GameObject) InverseTransformDirection(world rl.Vector3) rl.Vector3 {
	return rl.Vector3RotateByQuaternion(world, rl.QuaternionInvert(g.WorldRotation()))
}
