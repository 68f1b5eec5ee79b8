package physics

import (
	"testing"

	"ballance/internal/components"
	"ballance/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestRaycastHitsTopFace(t *testing.T) {
	p := NewPhysicsWorld()
	box := newBox("Box", rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2})
	p.AddObject(box)

	hit, ok := p.Raycast(rl.Vector3{Y: 5}, rl.Vector3{Y: -1}, 10, engine.AllLayers)
	if !ok {
		t.Fatal("Expected raycast to hit the box")
	}
	if hit.GameObject != box {
		t.Errorf("Expected hit on Box, got %v", hit.GameObject)
	}
	if !near(hit.Distance, 4, 1e-5) {
		t.Errorf("Expected distance 4, got %f", hit.Distance)
	}
	if !nearVec(hit.Normal, rl.Vector3{Y: 1}, 1e-5) {
		t.Errorf("Expected normal up, got %v", hit.Normal)
	}
	if !nearVec(hit.Point, rl.Vector3{Y: 1}, 1e-5) {
		t.Errorf("Expected point (0,1,0), got %v", hit.Point)
	}
}

func TestRaycastSideFace(t *testing.T) {
	p := NewPhysicsWorld()
	p.AddObject(newBox("Box", rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2}))

	hit, ok := p.Raycast(rl.Vector3{X: 5}, rl.Vector3{X: -2}, 10, engine.AllLayers)
	if !ok {
		t.Fatal("Expected raycast to hit the box")
	}
	if !near(hit.Distance, 4, 1e-5) {
		t.Errorf("Expected distance 4, got %f", hit.Distance)
	}
	if !nearVec(hit.Normal, rl.Vector3{X: 1}, 1e-5) {
		t.Errorf("Expected normal +X, got %v", hit.Normal)
	}
}

func TestRaycastRotatedBox(t *testing.T) {
	p := NewPhysicsWorld()
	slope := newBox("Slope", rl.Vector3{}, rl.Vector3{X: 10, Y: 1, Z: 10})
	slope.Transform.SetEuler(rl.Vector3{Z: 30})
	p.AddObject(slope)

	hit, ok := p.Raycast(rl.Vector3{Y: 5}, rl.Vector3{Y: -1}, 10, engine.AllLayers)
	if !ok {
		t.Fatal("Expected raycast to hit the slope")
	}
	if !nearVec(hit.Normal, slope.Up(), 1e-4) {
		t.Errorf("Expected slope normal %v, got %v", slope.Up(), hit.Normal)
	}
}

func TestRaycastMaxDistance(t *testing.T) {
	p := NewPhysicsWorld()
	p.AddObject(newBox("Box", rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2}))

	if _, ok := p.Raycast(rl.Vector3{Y: 5}, rl.Vector3{Y: -1}, 3.9, engine.AllLayers); ok {
		t.Error("Expected miss beyond max distance")
	}
	if _, ok := p.Raycast(rl.Vector3{Y: 5}, rl.Vector3{Y: 1}, 10, engine.AllLayers); ok {
		t.Error("Expected miss behind the origin")
	}
	if _, ok := p.Raycast(rl.Vector3{Y: 5}, rl.Vector3{}, 10, engine.AllLayers); ok {
		t.Error("Expected miss for a zero direction")
	}
}

func TestRaycastLayerMask(t *testing.T) {
	p := NewPhysicsWorld()
	box := newBox("Box", rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2})
	box.Layer = 3
	p.AddObject(box)

	if _, ok := p.Raycast(rl.Vector3{Y: 5}, rl.Vector3{Y: -1}, 10, engine.AllLayers&^(1<<3)); ok {
		t.Error("Expected layer 3 to be masked out")
	}
	if _, ok := p.Raycast(rl.Vector3{Y: 5}, rl.Vector3{Y: -1}, 10, 1<<3); !ok {
		t.Error("Expected hit with layer 3 in the mask")
	}
}

func TestRaycastNearestHit(t *testing.T) {
	p := NewPhysicsWorld()
	far := newBox("Far", rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2})
	top := newBox("Top", rl.Vector3{Y: 3}, rl.Vector3{X: 2, Y: 1, Z: 2})
	p.AddObject(far)
	p.AddObject(top)

	hit, ok := p.Raycast(rl.Vector3{Y: 10}, rl.Vector3{Y: -1}, 20, engine.AllLayers)
	if !ok || hit.GameObject != top {
		t.Fatalf("Expected nearest hit on Top, got %v", hit.GameObject)
	}
	if !near(hit.Distance, 6.5, 1e-5) {
		t.Errorf("Expected distance 6.5, got %f", hit.Distance)
	}
}

func TestRaycastSkipsTriggersAndContainingColliders(t *testing.T) {
	p := NewPhysicsWorld()
	zone := newBox("Zone", rl.Vector3{Y: 3}, rl.Vector3{X: 2, Y: 1, Z: 2})
	engine.GetComponent[*components.BoxCollider](zone).IsTrigger = true
	floor := newBox("Floor", rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2})
	ball, _ := newBall("Ball", rl.Vector3{Y: 5}, 0.5)
	p.AddObject(zone)
	p.AddObject(floor)
	p.AddObject(ball)

	hit, ok := p.Raycast(rl.Vector3{Y: 5}, rl.Vector3{Y: -1}, 10, engine.AllLayers)
	if !ok {
		t.Fatal("Expected raycast to reach the floor")
	}
	if hit.GameObject != floor {
		t.Errorf("Expected hit on Floor, got %s", hit.GameObject.Name)
	}
}

func TestRaycastSphere(t *testing.T) {
	p := NewPhysicsWorld()
	ball, _ := newBall("Ball", rl.Vector3{}, 1)
	p.AddObject(ball)

	hit, ok := p.Raycast(rl.Vector3{Z: -5}, rl.Vector3{Z: 1}, 10, engine.AllLayers)
	if !ok {
		t.Fatal("Expected raycast to hit the sphere")
	}
	if !near(hit.Distance, 4, 1e-5) {
		t.Errorf("Expected distance 4, got %f", hit.Distance)
	}
	if !nearVec(hit.Normal, rl.Vector3{Z: -1}, 1e-5) {
		t.Errorf("Expected normal -Z, got %v", hit.Normal)
	}
}
