package components

import (
	"log"
	"math"

	"ballance/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PlatformMover drives a kinematic platform around a loop while spinning it.
// It only sets velocities; the physics step moves the platform, so bodies
// resting on it can follow.
type PlatformMover struct {
	engine.BaseComponent
	StartPosition  rl.Vector3
	RotationAxis   rl.Vector3
	RotationSpeed  float32 // degrees per second
	MovementRadius float32
	MovementSpeed  float32 // radians per second along the loop
	BobHeight      float32
	Phase          float32

	rb   *Rigidbody
	time float32
}

func (p *PlatformMover) Start() {
	g := p.GetGameObject()
	p.StartPosition = g.Transform.Position
	p.rb = engine.GetComponent[*Rigidbody](g)
	if p.rb == nil || !p.rb.IsKinematic {
		log.Printf("PlatformMover: %s needs a kinematic Rigidbody, disabled", g.Name)
		p.rb = nil
		return
	}
	if rl.Vector3Length(p.RotationAxis) < 0.0001 {
		p.RotationAxis = rl.Vector3{Y: 1}
	}
	p.RotationAxis = rl.Vector3Normalize(p.RotationAxis)
	// Start on the loop.
	g.Transform.Position = p.positionAt(0)
}

// positionAt is the point of the loop at time t.
func (p *PlatformMover) positionAt(t float32) rl.Vector3 {
	a := float64(t*p.MovementSpeed + p.Phase)
	offset := rl.Vector3{
		X: float32(math.Cos(a)) * p.MovementRadius,
		Y: float32(math.Sin(2*a)) * p.BobHeight,
		Z: float32(math.Sin(a)) * p.MovementRadius,
	}
	return rl.Vector3Add(p.StartPosition, offset)
}

func (p *PlatformMover) FixedUpdate(deltaTime float32) {
	if p.rb == nil || deltaTime <= 0 {
		return
	}
	p.time += deltaTime

	g := p.GetGameObject()
	next := p.positionAt(p.time)
	p.rb.Velocity = rl.Vector3Scale(rl.Vector3Subtract(next, g.Transform.Position), 1/deltaTime)
	p.rb.AngularVelocity = rl.Vector3Scale(p.RotationAxis, p.RotationSpeed)
}
