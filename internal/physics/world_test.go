package physics

import (
	"math"
	"testing"

	"ballance/internal/components"
	"ballance/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const step = float32(0.02)

// recorder collects collision and trigger callbacks.
type recorder struct {
	engine.BaseComponent
	events  []string
	normals []rl.Vector3
}

func (r *recorder) OnCollisionEnter(c engine.Collision) {
	r.events = append(r.events, "enter:"+c.Other.Name)
	r.keepNormals(c)
}

func (r *recorder) OnCollisionStay(c engine.Collision) {
	r.events = append(r.events, "stay:"+c.Other.Name)
	r.keepNormals(c)
}

func (r *recorder) OnCollisionExit(other *engine.GameObject) {
	r.events = append(r.events, "exit:"+other.Name)
}

func (r *recorder) keepNormals(c engine.Collision) {
	for _, cp := range c.Contacts {
		r.normals = append(r.normals, cp.Normal)
	}
}

type triggerRecorder struct {
	engine.BaseComponent
	events []string
}

func (r *triggerRecorder) OnTriggerEnter(other *engine.GameObject) {
	r.events = append(r.events, "enter:"+other.Name)
}

func (r *triggerRecorder) OnTriggerStay(other *engine.GameObject) {
	r.events = append(r.events, "stay:"+other.Name)
}

func (r *triggerRecorder) OnTriggerExit(other *engine.GameObject) {
	r.events = append(r.events, "exit:"+other.Name)
}

func newBox(name string, pos, size rl.Vector3) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Transform.Position = pos
	g.AddComponent(components.NewBoxCollider(size))
	return g
}

func newBall(name string, pos rl.Vector3, radius float32) (*engine.GameObject, *components.Rigidbody) {
	g := engine.NewGameObject(name)
	g.Transform.Position = pos
	rb := components.NewRigidbody()
	rb.Bounciness = 0
	rb.Friction = 0
	g.AddComponent(rb)
	g.AddComponent(components.NewSphereCollider(radius))
	return g, rb
}

func near(a, b, tolerance float32) bool {
	return float32(math.Abs(float64(a-b))) <= tolerance
}

func nearVec(a, b rl.Vector3, tolerance float32) bool {
	return near(a.X, b.X, tolerance) && near(a.Y, b.Y, tolerance) && near(a.Z, b.Z, tolerance)
}

func TestNewPhysicsWorld(t *testing.T) {
	p := NewPhysicsWorld()
	if p.Gravity.Y != -9.81 {
		t.Errorf("Expected gravity -9.81, got %f", p.Gravity.Y)
	}
}

func TestAddObjectSortsByRigidbody(t *testing.T) {
	p := NewPhysicsWorld()

	floor := newBox("Floor", rl.Vector3{}, rl.Vector3{X: 10, Y: 1, Z: 10})
	ball, _ := newBall("Ball", rl.Vector3{Y: 2}, 0.5)
	platform := newBox("Platform", rl.Vector3{}, rl.Vector3{X: 2, Y: 0.5, Z: 2})
	rb := components.NewRigidbody()
	rb.IsKinematic = true
	platform.AddComponent(rb)
	empty := engine.NewGameObject("Empty")

	p.AddObject(floor)
	p.AddObject(ball)
	p.AddObject(platform)
	p.AddObject(empty)

	if len(p.Statics) != 1 || p.Statics[0] != floor {
		t.Errorf("Expected floor in statics, got %d statics", len(p.Statics))
	}
	if len(p.Objects) != 1 || p.Objects[0] != ball {
		t.Errorf("Expected ball in objects, got %d objects", len(p.Objects))
	}
	if len(p.Kinematics) != 1 || p.Kinematics[0] != platform {
		t.Errorf("Expected platform in kinematics, got %d kinematics", len(p.Kinematics))
	}

	p.RemoveObject(ball)
	if p.DynamicObjectCount() != 0 {
		t.Errorf("Expected 0 dynamic objects after removal, got %d", p.DynamicObjectCount())
	}
}

func TestSphereRestsOnBox(t *testing.T) {
	p := NewPhysicsWorld()
	floor := newBox("Floor", rl.Vector3{}, rl.Vector3{X: 10, Y: 1, Z: 10})
	ball, rb := newBall("Ball", rl.Vector3{Y: 1}, 0.5)
	rec := &recorder{}
	ball.AddComponent(rec)
	p.AddObject(floor)
	p.AddObject(ball)

	for i := 0; i < 10; i++ {
		p.Step(step)
	}

	if !near(ball.Transform.Position.Y, 1, 0.01) {
		t.Errorf("Expected ball to rest at y=1, got %f", ball.Transform.Position.Y)
	}
	if !near(rb.Velocity.Y, 0, 0.001) {
		t.Errorf("Expected no vertical velocity at rest, got %f", rb.Velocity.Y)
	}
	if len(rec.events) != 10 {
		t.Fatalf("Expected 10 callbacks, got %v", rec.events)
	}
	if rec.events[0] != "enter:Floor" || rec.events[9] != "stay:Floor" {
		t.Errorf("Expected enter then stay, got %v", rec.events)
	}
	for _, n := range rec.normals {
		if !nearVec(n, rl.Vector3{Y: 1}, 1e-4) {
			t.Errorf("Expected contact normal up, got %v", n)
		}
	}
}

func TestFloorReceivesFlippedNormal(t *testing.T) {
	p := NewPhysicsWorld()
	floor := newBox("Floor", rl.Vector3{}, rl.Vector3{X: 10, Y: 1, Z: 10})
	rec := &recorder{}
	floor.AddComponent(rec)
	ball, _ := newBall("Ball", rl.Vector3{Y: 1}, 0.5)
	p.AddObject(floor)
	p.AddObject(ball)

	p.Step(step)

	if len(rec.normals) != 1 || !nearVec(rec.normals[0], rl.Vector3{Y: -1}, 1e-4) {
		t.Errorf("Expected floor to see a downward normal, got %v", rec.normals)
	}
}

func TestSlopeContactNormal(t *testing.T) {
	slope := newBox("Slope", rl.Vector3{}, rl.Vector3{X: 10, Y: 1, Z: 10})
	slope.Transform.SetEuler(rl.Vector3{Z: 30})
	up := slope.Up()

	ball, _ := newBall("Ball", rl.Vector3Scale(up, 0.999), 0.5)
	sa, _ := shapeOf(ball)
	sb, _ := shapeOf(slope)

	cp, ok := computeContact(sa, sb)
	if !ok {
		t.Fatal("Expected contact with slope")
	}
	if !nearVec(cp.Normal, up, 1e-4) {
		t.Errorf("Expected normal %v, got %v", up, cp.Normal)
	}
	if cp.Separation >= 0 {
		t.Errorf("Expected penetration, got separation %f", cp.Separation)
	}
	if ny := cp.Normal.Y; !near(ny, float32(math.Cos(math.Pi/6)), 1e-4) {
		t.Errorf("Expected normal.y cos(30), got %f", ny)
	}
}

func TestSphereInsideBoxUsesNearestFace(t *testing.T) {
	box := newBox("Box", rl.Vector3{}, rl.Vector3{X: 4, Y: 2, Z: 4})
	ball, _ := newBall("Ball", rl.Vector3{Y: 0.8}, 0.5)
	sa, _ := shapeOf(ball)
	sb, _ := shapeOf(box)

	cp, ok := computeContact(sa, sb)
	if !ok {
		t.Fatal("Expected contact")
	}
	if !nearVec(cp.Normal, rl.Vector3{Y: 1}, 1e-5) {
		t.Errorf("Expected normal up, got %v", cp.Normal)
	}
	if !near(cp.Separation, -0.7, 1e-5) {
		t.Errorf("Expected separation -0.7, got %f", cp.Separation)
	}
}

func TestCollisionExit(t *testing.T) {
	p := NewPhysicsWorld()
	floor := newBox("Floor", rl.Vector3{}, rl.Vector3{X: 10, Y: 1, Z: 10})
	ball, rb := newBall("Ball", rl.Vector3{Y: 1}, 0.5)
	rec := &recorder{}
	ball.AddComponent(rec)
	p.AddObject(floor)
	p.AddObject(ball)

	p.Step(step)
	rb.Velocity = rl.Vector3{Y: 5}
	p.Step(step)

	want := []string{"enter:Floor", "exit:Floor"}
	if len(rec.events) != len(want) {
		t.Fatalf("Expected %v, got %v", want, rec.events)
	}
	for i := range want {
		if rec.events[i] != want[i] {
			t.Errorf("Event %d: expected %s, got %s", i, want[i], rec.events[i])
		}
	}
}

func TestBounciness(t *testing.T) {
	p := NewPhysicsWorld()
	p.Gravity = rl.Vector3{}
	floor := newBox("Floor", rl.Vector3{}, rl.Vector3{X: 10, Y: 1, Z: 10})
	ball, rb := newBall("Ball", rl.Vector3{Y: 1.05}, 0.5)
	rb.Bounciness = 0.5
	rb.Velocity = rl.Vector3{Y: -5}
	p.AddObject(floor)
	p.AddObject(ball)

	p.Step(step)

	if !near(rb.Velocity.Y, 2.5, 1e-4) {
		t.Errorf("Expected bounce to 2.5, got %f", rb.Velocity.Y)
	}
}

func TestSpheresSplitPush(t *testing.T) {
	p := NewPhysicsWorld()
	p.Gravity = rl.Vector3{}
	a, _ := newBall("A", rl.Vector3{X: -0.4}, 0.5)
	b, _ := newBall("B", rl.Vector3{X: 0.4}, 0.5)
	p.AddObject(a)
	p.AddObject(b)

	p.Step(step)

	if !near(a.Transform.Position.X, -0.5, 1e-5) || !near(b.Transform.Position.X, 0.5, 1e-5) {
		t.Errorf("Expected spheres pushed to -0.5 and 0.5, got %f and %f", a.Transform.Position.X, b.Transform.Position.X)
	}
}

func TestKinematicIntegration(t *testing.T) {
	p := NewPhysicsWorld()
	platform := newBox("Platform", rl.Vector3{}, rl.Vector3{X: 2, Y: 0.5, Z: 2})
	rb := components.NewRigidbody()
	rb.IsKinematic = true
	rb.Velocity = rl.Vector3{X: 1}
	rb.AngularVelocity = rl.Vector3{Y: 90}
	platform.AddComponent(rb)
	p.AddObject(platform)

	for i := 0; i < 50; i++ {
		p.Step(step)
	}

	if !nearVec(platform.Transform.Position, rl.Vector3{X: 1}, 1e-4) {
		t.Errorf("Expected platform at x=1, got %v", platform.Transform.Position)
	}
	if right := platform.Right(); !nearVec(right, rl.Vector3{Z: -1}, 1e-3) {
		t.Errorf("Expected quarter turn about Y, right axis is %v", right)
	}
}

func TestKinematicIgnoresStatics(t *testing.T) {
	p := NewPhysicsWorld()
	wall := newBox("Wall", rl.Vector3{}, rl.Vector3{X: 1, Y: 1, Z: 1})
	platform := newBox("Platform", rl.Vector3{X: 0.5}, rl.Vector3{X: 1, Y: 1, Z: 1})
	rb := components.NewRigidbody()
	rb.IsKinematic = true
	platform.AddComponent(rb)
	rec := &recorder{}
	platform.AddComponent(rec)
	p.AddObject(wall)
	p.AddObject(platform)

	p.Step(step)

	if platform.Transform.Position.X != 0.5 {
		t.Errorf("Kinematic body was pushed to %f", platform.Transform.Position.X)
	}
	if len(rec.events) != 0 {
		t.Errorf("Expected no callbacks, got %v", rec.events)
	}
}

func TestFreezeRotation(t *testing.T) {
	p := NewPhysicsWorld()
	ball, rb := newBall("Ball", rl.Vector3{}, 0.5)
	rb.UseGravity = false
	rb.FreezeRotation = true
	rb.AngularVelocity = rl.Vector3{X: 180}
	p.AddObject(ball)

	p.Step(step)

	if ball.Transform.Rotation != rl.QuaternionIdentity() {
		t.Errorf("Frozen body rotated to %v", ball.Transform.Rotation)
	}
}

func TestTriggerEnterStayExit(t *testing.T) {
	p := NewPhysicsWorld()
	zone := newBox("Zone", rl.Vector3{}, rl.Vector3{X: 1, Y: 1, Z: 1})
	engine.GetComponent[*components.BoxCollider](zone).IsTrigger = true
	zoneRec := &triggerRecorder{}
	zone.AddComponent(zoneRec)

	ball, rb := newBall("Ball", rl.Vector3{X: -1.1}, 0.5)
	rb.UseGravity = false
	rb.Velocity = rl.Vector3{X: 10}
	ballRec := &triggerRecorder{}
	ball.AddComponent(ballRec)

	p.AddObject(zone)
	p.AddObject(ball)

	// x: -0.9 enter, ..., leaves once x >= 1.0
	for i := 0; i < 12; i++ {
		p.Step(step)
	}

	if !near(ball.Transform.Position.X, 1.3, 1e-4) {
		t.Errorf("Trigger changed the ball's motion, x=%f", ball.Transform.Position.X)
	}
	if len(zoneRec.events) == 0 || zoneRec.events[0] != "enter:Ball" {
		t.Fatalf("Expected enter first, got %v", zoneRec.events)
	}
	last := zoneRec.events[len(zoneRec.events)-1]
	if last != "exit:Ball" {
		t.Errorf("Expected exit last, got %v", zoneRec.events)
	}
	for _, e := range zoneRec.events[1 : len(zoneRec.events)-1] {
		if e != "stay:Ball" {
			t.Errorf("Expected only stay between enter and exit, got %v", zoneRec.events)
			break
		}
	}
	if len(ballRec.events) != len(zoneRec.events) || ballRec.events[0] != "enter:Zone" {
		t.Errorf("Ball should see the same callbacks, got %v", ballRec.events)
	}
}

func TestInactiveObjectsIgnored(t *testing.T) {
	p := NewPhysicsWorld()
	floor := newBox("Floor", rl.Vector3{}, rl.Vector3{X: 10, Y: 1, Z: 10})
	floor.Active = false
	ball, _ := newBall("Ball", rl.Vector3{Y: 1}, 0.5)
	p.AddObject(floor)
	p.AddObject(ball)

	p.Step(step)

	if ball.Transform.Position.Y >= 1 {
		t.Errorf("Expected ball to fall through inactive floor, y=%f", ball.Transform.Position.Y)
	}
	if _, ok := p.Raycast(rl.Vector3{X: 3, Y: 5}, rl.Vector3{Y: -1}, 10, engine.AllLayers); ok {
		t.Error("Raycast hit an inactive object")
	}
}
