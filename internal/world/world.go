package world

import (
	"log"
	"math"

	"ballance/internal/components"
	"ballance/internal/config"
	"ballance/internal/engine"
	"ballance/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// World owns the scene and the physics simulation and runs them on a fixed
// physics clock. It is the scene's engine.WorldAccess.
type World struct {
	Scene   *engine.Scene
	Physics *physics.PhysicsWorld

	fixedStep   float32
	maxSteps    int
	accumulator float32
}

func New(settings config.WorldSettings) *World {
	w := &World{
		Scene:   engine.NewScene("Main"),
		Physics: physics.NewPhysicsWorld(),
	}
	w.Scene.World = w
	w.SetSettings(settings)
	return w
}

// SetSettings applies gravity and the physics clock. Non-positive values
// fall back to 50 steps per second and 5 steps per frame.
func (w *World) SetSettings(s config.WorldSettings) {
	w.Physics.Gravity = s.Gravity
	w.fixedStep = s.FixedStep
	if w.fixedStep <= 0 {
		w.fixedStep = 1.0 / 50
	}
	w.maxSteps = s.MaxSteps
	if w.maxSteps <= 0 {
		w.maxSteps = 5
	}
}

func (w *World) Gravity() rl.Vector3 {
	return w.Physics.Gravity
}

func (w *World) FixedDeltaTime() float32 {
	return w.fixedStep
}

func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32, mask uint32) (engine.RaycastResult, bool) {
	return w.Physics.Raycast(origin, direction, maxDistance, mask)
}

// Add registers g with the scene and the physics world. Children are added
// separately.
func (w *World) Add(g *engine.GameObject) {
	w.Scene.AddGameObject(g)
	w.Physics.AddObject(g)
}

// Remove takes g and its descendants out of the scene and the simulation.
func (w *World) Remove(g *engine.GameObject) {
	w.removeBodies(g)
	w.Scene.RemoveGameObject(g)
}

func (w *World) removeBodies(g *engine.GameObject) {
	for _, child := range g.Children {
		w.removeBodies(child)
	}
	w.Physics.RemoveObject(g)
}

func (w *World) Start() {
	w.Scene.Start()
}

// Update advances one rendered frame: as many fixed steps as the elapsed
// time covers, then the per-frame update. It returns the number of steps.
func (w *World) Update(deltaTime float32) int {
	w.accumulator += deltaTime

	steps := 0
	for w.accumulator >= w.fixedStep && steps < w.maxSteps {
		w.Scene.FixedUpdate(w.fixedStep)
		w.Physics.Step(w.fixedStep)
		w.accumulator -= w.fixedStep
		steps++
	}

	if w.accumulator >= w.fixedStep {
		kept := float32(math.Mod(float64(w.accumulator), float64(w.fixedStep)))
		log.Printf("World: dropped %.3fs of simulation after %d steps", w.accumulator-kept, steps)
		w.accumulator = kept
	}

	w.Scene.Update(deltaTime)
	return steps
}

// Player returns the first object with a BallMovement, or nil.
func (w *World) Player() *components.BallMovement {
	for _, g := range w.Scene.GameObjects {
		if b := engine.GetComponent[*components.BallMovement](g); b != nil {
			return b
		}
	}
	return nil
}

// Camera returns the first OrbitCamera, or nil.
func (w *World) Camera() *components.OrbitCamera {
	for _, g := range w.Scene.GameObjects {
		if c := engine.GetComponent[*components.OrbitCamera](g); c != nil {
			return c
		}
	}
	return nil
}

// Unload frees every GPU model of the scene.
func (w *World) Unload() {
	for _, g := range w.Scene.GameObjects {
		if renderer := engine.GetComponent[*components.ModelRenderer](g); renderer != nil {
			renderer.Unload()
		}
	}
}
