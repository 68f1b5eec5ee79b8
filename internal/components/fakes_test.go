package components

import (
	"math"

	"ballance/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// fakeWorld answers every raycast with hit when set.
type fakeWorld struct {
	gravity rl.Vector3
	hit     *engine.RaycastResult
	casts   int
}

func newFakeWorld() *fakeWorld {
	return &fakeWorld{gravity: rl.Vector3{Y: -9.81}}
}

func (w *fakeWorld) Gravity() rl.Vector3      { return w.gravity }
func (w *fakeWorld) FixedDeltaTime() float32 { return 0.02 }

func (w *fakeWorld) Raycast(origin, direction rl.Vector3, maxDistance float32, mask uint32) (engine.RaycastResult, bool) {
	w.casts++
	if w.hit == nil || w.hit.Distance > maxDistance {
		return engine.RaycastResult{}, false
	}
	return *w.hit, true
}

type fakeInput struct {
	move rl.Vector2
	jump bool
}

func (f *fakeInput) Move() rl.Vector2 { return f.move }

func (f *fakeInput) JumpPressed() bool {
	j := f.jump
	f.jump = false
	return j
}

type fakeLook struct {
	look rl.Vector2
}

func (f *fakeLook) Look() rl.Vector2 { return f.look }

// snapCounter counts PreventSnapToGround calls.
type snapCounter struct {
	engine.BaseComponent
	calls int
}

func (s *snapCounter) PreventSnapToGround() { s.calls++ }

func near(a, b, tolerance float32) bool {
	return float32(math.Abs(float64(a-b))) <= tolerance
}

func nearVec(a, b rl.Vector3, tolerance float32) bool {
	return near(a.X, b.X, tolerance) && near(a.Y, b.Y, tolerance) && near(a.Z, b.Z, tolerance)
}

func upContact(other *engine.GameObject) engine.Collision {
	return engine.Collision{
		Other:    other,
		Contacts: []engine.ContactPoint{{Normal: rl.Vector3{Y: 1}}},
	}
}
