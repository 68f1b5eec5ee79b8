package components

import (
	"testing"

	"ballance/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestCreateRegisteredScripts(t *testing.T) {
	for _, name := range []string{"BallMovement", "OrbitCamera", "AccelerationZone", "Activation", "MaterialSelector", "PlatformMover"} {
		if engine.CreateScript(name, nil) == nil {
			t.Errorf("Expected %s to be registered", name)
		}
	}
}

func TestAccelerationZoneDefaults(t *testing.T) {
	zone, ok := engine.CreateScript("AccelerationZone", nil).(*AccelerationZone)
	if !ok {
		t.Fatal("Expected an AccelerationZone")
	}
	if zone.Speed != 10 || zone.Acceleration != 0 {
		t.Errorf("Expected speed 10 and acceleration 0, got %f and %f", zone.Speed, zone.Acceleration)
	}
}

func TestMaterialSelectorProps(t *testing.T) {
	c := engine.CreateScript("MaterialSelector", map[string]any{
		"materials": []any{"Red", "Green", "#10203040"},
	})
	m := c.(*MaterialSelector)
	if len(m.Materials) != 3 || m.Materials[0] != rl.Red || m.Materials[2] != (rl.Color{R: 0x10, G: 0x20, B: 0x30, A: 0x40}) {
		t.Fatalf("Unexpected materials %v", m.Materials)
	}

	name, props, ok := engine.SerializeScript(c)
	if !ok || name != "MaterialSelector" {
		t.Fatalf("Expected MaterialSelector, got %q", name)
	}
	names := props["materials"].([]string)
	if names[0] != "Red" || names[1] != "Green" || names[2] != "#10203040" {
		t.Errorf("Unexpected material names %v", names)
	}
}

func TestPlatformMoverProps(t *testing.T) {
	c := engine.CreateScript("PlatformMover", map[string]any{
		"rotationAxis":   []any{1.0, 0.0, 0.0},
		"movementRadius": 2.5,
	})
	m := c.(*PlatformMover)
	if m.RotationAxis != (rl.Vector3{X: 1}) {
		t.Errorf("Expected axis +X, got %v", m.RotationAxis)
	}
	if m.MovementRadius != 2.5 || m.MovementSpeed != 1 {
		t.Errorf("Expected radius 2.5 and default speed 1, got %f and %f", m.MovementRadius, m.MovementSpeed)
	}
}

func TestOrbitCameraProps(t *testing.T) {
	c := engine.CreateScript("OrbitCamera", map[string]any{"focus": "Ball", "pitch": 20.0, "yaw": 180.0})
	o := c.(*OrbitCamera)
	if o.Focus != "Ball" || o.Angles() != (rl.Vector2{X: 20, Y: 180}) {
		t.Errorf("Unexpected camera %q %v", o.Focus, o.Angles())
	}

	_, props, ok := engine.SerializeScript(o)
	if !ok || props["yaw"] != float32(180) {
		t.Errorf("Expected yaw 180 in %v", props)
	}
}

func TestLookupColor(t *testing.T) {
	if LookupColor("Nope") != rl.White {
		t.Error("Expected unknown names to be white")
	}
	if got := LookupColor(ColorName(rl.Color{R: 1, G: 2, B: 3, A: 4})); got != (rl.Color{R: 1, G: 2, B: 3, A: 4}) {
		t.Errorf("Expected hex colors to round trip, got %v", got)
	}
}
