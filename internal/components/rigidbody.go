package components

import (
	"ballance/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Rigidbody struct {
	engine.BaseComponent
	Velocity        rl.Vector3
	AngularVelocity rl.Vector3 // degrees per second on each axis, world space
	Mass            float32
	Bounciness      float32 // 0 = no bounce, 1 = perfect bounce
	Friction        float32 // 0 = ice, 1 = stops immediately
	AngularDamping  float32 // how fast rotation slows down
	UseGravity      bool
	IsKinematic     bool // moves by its own velocity, never pushed by contacts
	FreezeRotation  bool // contacts and integration leave the rotation alone
}

func NewRigidbody() *Rigidbody {
	return &Rigidbody{
		Mass:           1.0,
		Bounciness:     0.5,
		Friction:       0.1,
		AngularDamping: 0.98, // slight damping each frame
		UseGravity:     true,
	}
}

// AngularVelocityRad returns the angular velocity in radians per second.
func (r *Rigidbody) AngularVelocityRad() rl.Vector3 {
	return rl.Vector3Scale(r.AngularVelocity, rl.Deg2rad)
}

// AddVelocity changes the velocity of a dynamic body. Kinematic bodies ignore it.
func (r *Rigidbody) AddVelocity(dv rl.Vector3) {
	if r.IsKinematic {
		return
	}
	r.Velocity = rl.Vector3Add(r.Velocity, dv)
}
