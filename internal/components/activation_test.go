package components

import (
	"testing"

	"ballance/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestActivationEvents(t *testing.T) {
	g := engine.NewGameObject("Pad")
	act := &Activation{}
	g.AddComponent(act)
	g.Start()

	var entered, left int
	act.OnEnter.AddListener(func() { entered++ })
	act.OnLeave.AddListener(func() { left++ })

	ball, _, _ := newBody("Ball")
	act.OnTriggerEnter(ball)
	act.OnTriggerStay(ball)
	act.OnTriggerExit(ball)

	if entered != 1 || left != 1 {
		t.Errorf("Expected 1 enter and 1 leave, got %d and %d", entered, left)
	}

	act.OnTriggerEnter(engine.NewGameObject("Wall"))
	if entered != 1 {
		t.Error("Expected objects without a Rigidbody to be ignored")
	}
}

func TestActivationScriptSelectsMaterial(t *testing.T) {
	scene := engine.NewScene("Test")
	sign, _, renderer := newSign()
	scene.AddGameObject(sign)

	pad := engine.NewGameObject("Pad")
	act := &Activation{
		OnEnterScript: `select_material("Sign", 1)`,
		OnLeaveScript: `select_material("Sign", 0)`,
	}
	pad.AddComponent(act)
	scene.AddGameObject(pad)
	scene.Start()

	ball, _, _ := newBody("Ball")
	act.OnTriggerEnter(ball)
	if renderer.Color != rl.Green {
		t.Errorf("Expected green after enter, got %v", renderer.Color)
	}
	act.OnTriggerExit(ball)
	if renderer.Color != rl.Red {
		t.Errorf("Expected red after leave, got %v", renderer.Color)
	}
}

func TestActivationScriptPreventsSnapOnOther(t *testing.T) {
	scene := engine.NewScene("Test")
	ball, _, snaps := newBody("Ball")
	scene.AddGameObject(ball)

	pad := engine.NewGameObject("Pad")
	act := &Activation{OnEnterScript: `prevent_snap(other)`}
	pad.AddComponent(act)
	scene.AddGameObject(pad)
	scene.Start()

	act.OnTriggerEnter(ball)
	if snaps.calls != 1 {
		t.Errorf("Expected 1 PreventSnapToGround call, got %d", snaps.calls)
	}
}

func TestActivationBadScriptIsDisabled(t *testing.T) {
	g := engine.NewGameObject("Pad")
	act := &Activation{OnEnterScript: `select_material(`}
	g.AddComponent(act)
	g.Start()

	var entered int
	act.OnEnter.AddListener(func() { entered++ })
	ball, _, _ := newBody("Ball")
	act.OnTriggerEnter(ball)

	if entered != 1 {
		t.Error("Expected events to fire without a script")
	}
}

func TestSceneHostErrors(t *testing.T) {
	scene := engine.NewScene("Test")
	scene.AddGameObject(engine.NewGameObject("Plain"))
	host := sceneHost{scene}

	if err := host.SelectMaterial("Missing", 0); err == nil {
		t.Error("Expected error for a missing object")
	}
	if err := host.SelectMaterial("Plain", 0); err == nil {
		t.Error("Expected error for an object without a MaterialSelector")
	}
	if err := (sceneHost{}).SetActive("Plain", false); err == nil {
		t.Error("Expected error without a scene")
	}
	if err := host.SetActive("Plain", false); err != nil {
		t.Fatalf("SetActive failed: %v", err)
	}
	if scene.FindByName("Plain").Active {
		t.Error("Expected Plain to be inactive")
	}
}
