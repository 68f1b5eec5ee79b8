package components

import "ballance/internal/engine"

const defaultFixedDelta = 1.0 / 50

// AccelerationZone is a trigger that launches bodies along its local up
// axis, up to Speed. Balls inside it do not snap to the ground.
type AccelerationZone struct {
	engine.BaseComponent
	Speed        float32
	Acceleration float32 // per second; 0 sets the speed at once
}

func (z *AccelerationZone) OnTriggerEnter(other *engine.GameObject) {}
func (z *AccelerationZone) OnTriggerExit(other *engine.GameObject)  {}

func (z *AccelerationZone) OnTriggerStay(other *engine.GameObject) {
	if rb := engine.GetComponent[*Rigidbody](other); rb != nil {
		z.accelerate(other, rb)
	}
}

func (z *AccelerationZone) accelerate(other *engine.GameObject, rb *Rigidbody) {
	for _, c := range other.Components() {
		if s, ok := c.(SnapPreventer); ok {
			s.PreventSnapToGround()
		}
	}

	g := z.GetGameObject()
	velocity := g.InverseTransformDirection(rb.Velocity)
	if velocity.Y >= z.Speed {
		return
	}

	if z.Acceleration > 0 {
		velocity.Y = moveTowards(velocity.Y, z.Speed, z.Acceleration*fixedDelta(g))
	} else {
		velocity.Y = z.Speed
	}
	rb.Velocity = g.TransformDirection(velocity)
}

func fixedDelta(g *engine.GameObject) float32 {
	if g.Scene != nil && g.Scene.World != nil {
		return g.Scene.World.FixedDeltaTime()
	}
	return defaultFixedDelta
}

func moveTowards(current, target, maxDelta float32) float32 {
	if absf(target-current) <= maxDelta {
		return target
	}
	if target > current {
		return current + maxDelta
	}
	return current - maxDelta
}
