package locomotion

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type fakeBody struct {
	position rl.Vector3
	velocity rl.Vector3
	mass     float32
}

func (b *fakeBody) Position() rl.Vector3     { return b.position }
func (b *fakeBody) Velocity() rl.Vector3     { return b.velocity }
func (b *fakeBody) SetVelocity(v rl.Vector3) { b.velocity = v }
func (b *fakeBody) Mass() float32            { return b.mass }

type fakeWorld struct {
	gravity rl.Vector3
	hit     Hit
	hasHit  bool
	casts   int
}

func (w *fakeWorld) Gravity() rl.Vector3 { return w.gravity }

func (w *fakeWorld) Raycast(origin, direction rl.Vector3, maxDistance float32, mask uint32) (Hit, bool) {
	w.casts++
	if !w.hasHit || w.hit.Distance > maxDistance {
		return Hit{}, false
	}
	return w.hit, true
}

// fakePlatform translates without rotating its frame.
type fakePlatform struct {
	position  rl.Vector3
	kinematic bool
	mass      float32
	angular   rl.Vector3
}

func (p *fakePlatform) IsKinematic() bool { return p.kinematic }
func (p *fakePlatform) Mass() float32     { return p.mass }
func (p *fakePlatform) TransformPoint(local rl.Vector3) rl.Vector3 {
	return rl.Vector3Add(local, p.position)
}
func (p *fakePlatform) InverseTransformPoint(world rl.Vector3) rl.Vector3 {
	return rl.Vector3Subtract(world, p.position)
}
func (p *fakePlatform) AngularVelocity() rl.Vector3 { return p.angular }

type fakeMesh struct {
	orientation rl.Quaternion
	writes      int
}

func (m *fakeMesh) Orientation() rl.Quaternion { return m.orientation }
func (m *fakeMesh) SetOrientation(q rl.Quaternion) {
	m.orientation = q
	m.writes++
}

type fakeFrame struct {
	forward rl.Vector3
	right   rl.Vector3
}

func (f fakeFrame) Forward() rl.Vector3 { return f.forward }
func (f fakeFrame) Right() rl.Vector3   { return f.right }

var up = rl.Vector3{Y: 1}

func newFakes() (*fakeBody, *fakeWorld) {
	return &fakeBody{mass: 1}, &fakeWorld{gravity: rl.Vector3{Y: -9.81}}
}

func near(a, b, tolerance float32) bool {
	return float32(math.Abs(float64(a-b))) <= tolerance
}

func nearVec(a, b rl.Vector3, tolerance float32) bool {
	return near(a.X, b.X, tolerance) && near(a.Y, b.Y, tolerance) && near(a.Z, b.Z, tolerance)
}

// sameRotation compares quaternions up to sign.
func sameRotation(a, b rl.Quaternion, tolerance float32) bool {
	d := a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
	return near(float32(math.Abs(float64(d))), 1, tolerance)
}
