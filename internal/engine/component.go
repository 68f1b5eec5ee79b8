package engine

import rl "github.com/gen2brain/raylib-go/raylib"

type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// FixedUpdater is implemented by components that run on the physics step.
type FixedUpdater interface {
	FixedUpdate(deltaTime float32)
}

// ContactPoint is one point of a collision. Normal points toward the
// receiving object.
type ContactPoint struct {
	Point      rl.Vector3
	Normal     rl.Vector3
	Separation float32 // negative while penetrating
}

// Collision describes the contact between the receiver and Other during one
// physics step.
type Collision struct {
	Other    *GameObject
	Contacts []ContactPoint
}

// CollisionHandler is implemented by components that want to receive collision callbacks.
// Enter fires on the first step of a contact, Stay on every later step, Exit once
// the objects separate.
type CollisionHandler interface {
	OnCollisionEnter(c Collision)
	OnCollisionStay(c Collision)
	OnCollisionExit(other *GameObject)
}

// TriggerHandler receives overlap callbacks from trigger colliders. Both the
// trigger's object and the object entering it are notified.
type TriggerHandler interface {
	OnTriggerEnter(other *GameObject)
	OnTriggerStay(other *GameObject)
	OnTriggerExit(other *GameObject)
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}
