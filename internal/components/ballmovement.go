package components

import (
	"log"

	"ballance/internal/engine"
	"ballance/internal/locomotion"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// InputSource is polled once per frame for the player's intent.
type InputSource interface {
	// Move is the stick or WASD vector, x right and y forward.
	Move() rl.Vector2
	JumpPressed() bool
}

// SnapPreventer is implemented by components that stick to the ground and
// can be told to let go for a moment.
type SnapPreventer interface {
	PreventSnapToGround()
}

// BallMovement drives a rolling ball from player input. The physics body is
// the ball's Rigidbody; the visual mesh is a child object that the
// controller rolls every frame.
type BallMovement struct {
	engine.BaseComponent
	Config locomotion.Config
	Input  InputSource
	// InputSpace names the object whose view frames the input, usually the
	// camera. Empty means world axes.
	InputSpace string
	// Ball names the child holding the visual mesh. Empty means the first
	// child.
	Ball string

	body       *Rigidbody
	controller *locomotion.Controller
}

func NewBallMovement() *BallMovement {
	return &BallMovement{Config: locomotion.DefaultConfig()}
}

func (b *BallMovement) Start() {
	g := b.GetGameObject()
	b.body = engine.GetComponent[*Rigidbody](g)
	if b.body == nil {
		log.Printf("BallMovement: %s has no Rigidbody, disabled", g.Name)
		return
	}
	// The mesh rolls, the body does not.
	b.body.FreezeRotation = true

	var opts []locomotion.Option
	if frame := b.findFrame(); frame != nil {
		opts = append(opts, locomotion.WithFrame(frame))
	}
	if mesh := b.findMesh(); mesh != nil {
		opts = append(opts, locomotion.WithMesh(objectMesh{mesh}))
	}

	cfg := b.Config
	logAdjusted(g.Name, cfg.Clamp())
	b.Config = cfg

	var access engine.WorldAccess
	if g.Scene != nil {
		access = g.Scene.World
	}
	b.controller = locomotion.New(cfg, ballBody{b.body}, worldAdapter{access}, opts...)
}

func (b *BallMovement) findFrame() locomotion.Frame {
	if b.InputSpace == "" || b.GetGameObject().Scene == nil {
		return nil
	}
	obj := b.GetGameObject().Scene.FindByName(b.InputSpace)
	if obj == nil {
		log.Printf("BallMovement: input space %q not found, using world axes", b.InputSpace)
		return nil
	}
	if cam := engine.GetComponent[*OrbitCamera](obj); cam != nil {
		return cam
	}
	return obj
}

func (b *BallMovement) findMesh() *engine.GameObject {
	g := b.GetGameObject()
	for _, child := range g.Children {
		if b.Ball == "" || child.Name == b.Ball {
			return child
		}
	}
	if b.Ball != "" {
		log.Printf("BallMovement: ball mesh %q not found under %s", b.Ball, g.Name)
	}
	return nil
}

// Update samples input and rolls the mesh.
func (b *BallMovement) Update(deltaTime float32) {
	if b.controller == nil {
		return
	}
	if b.Input != nil {
		b.controller.SetInput(b.Input.Move(), b.Input.JumpPressed())
	}
	b.controller.OnRenderFrame(deltaTime)
}

func (b *BallMovement) FixedUpdate(deltaTime float32) {
	if b.controller == nil {
		return
	}
	b.controller.OnPhysicsStep(deltaTime)
}

func (b *BallMovement) OnCollisionEnter(c engine.Collision) { b.recordContacts(c) }
func (b *BallMovement) OnCollisionStay(c engine.Collision)  { b.recordContacts(c) }
func (b *BallMovement) OnCollisionExit(other *engine.GameObject) {}

func (b *BallMovement) recordContacts(c engine.Collision) {
	if b.controller == nil {
		return
	}
	body := platformOf(c.Other)
	for _, contact := range c.Contacts {
		b.controller.RecordContact(contact.Normal, body)
	}
}

// PreventSnapToGround implements SnapPreventer.
func (b *BallMovement) PreventSnapToGround() {
	if b.controller != nil {
		b.controller.PreventSnapToGround()
	}
}

// SetConfig applies new tuning, logging whatever had to be clamped.
func (b *BallMovement) SetConfig(cfg locomotion.Config) {
	name := ""
	if g := b.GetGameObject(); g != nil {
		name = g.Name
	}
	if b.controller == nil {
		logAdjusted(name, cfg.Clamp())
		b.Config = cfg
		return
	}
	logAdjusted(name, b.controller.SetConfig(cfg))
	b.Config = b.controller.Config()
}

// Controller is nil until Start has run with a Rigidbody present.
func (b *BallMovement) Controller() *locomotion.Controller {
	return b.controller
}

func logAdjusted(name string, adjusted []string) {
	for _, msg := range adjusted {
		log.Printf("BallMovement: %s: %s", name, msg)
	}
}
