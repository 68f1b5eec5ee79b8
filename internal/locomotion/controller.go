package locomotion

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// snapTolerance keeps balls moving right at the snap speed limit airborne.
const snapTolerance = 0.01

// Controller is the locomotion state of one ball. The physics loop calls
// RecordContact for every contact of a step, then OnPhysicsStep at the start
// of the next one; the render loop calls OnRenderFrame.
type Controller struct {
	cfg          Config
	minGroundDot float32

	body  Body
	world World
	frame Frame
	mesh  Mesh

	contacts Contacts
	jumps    JumpState
	conn     connection

	velocity        rl.Vector3
	desiredVelocity rl.Vector3
	desiredJump     bool
	lastJump        JumpKind

	contactNormal     rl.Vector3
	steepNormal       rl.Vector3
	lastContactNormal rl.Vector3
	lastSteepNormal   rl.Vector3
}

// Option configures optional collaborators of a Controller.
type Option func(*Controller)

// WithFrame makes input relative to frame, usually the camera.
func WithFrame(frame Frame) Option {
	return func(c *Controller) { c.frame = frame }
}

// WithMesh enables visual rolling of mesh.
func WithMesh(mesh Mesh) Option {
	return func(c *Controller) { c.mesh = mesh }
}

// New creates a controller for body. cfg is clamped; world must not be nil.
func New(cfg Config, body Body, world World, opts ...Option) *Controller {
	c := &Controller{
		body:              body,
		world:             world,
		contactNormal:     worldUp,
		lastContactNormal: worldUp,
	}
	c.SetConfig(cfg)
	c.contacts = NewContacts(c.minGroundDot)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetConfig replaces the tuning, clamping it first. It returns the clamp
// messages so callers can log them.
func (c *Controller) SetConfig(cfg Config) []string {
	adjusted := cfg.Clamp()
	c.cfg = cfg
	c.minGroundDot = cfg.MinGroundDot()
	c.contacts.setThreshold(c.minGroundDot)
	return adjusted
}

func (c *Controller) Config() Config { return c.cfg }

// SetFrame swaps the input frame. nil means world axes.
func (c *Controller) SetFrame(frame Frame) { c.frame = frame }

// SetInput stores the player's intent for the next physics step. A jump
// request stays latched until a step consumes it.
func (c *Controller) SetInput(move rl.Vector2, jump bool) {
	c.desiredVelocity = DesiredVelocity(move, c.frame, c.cfg.MaxSpeed)
	c.desiredJump = c.desiredJump || jump
}

// RecordContact reports one contact normal of the current step. body is nil
// for static geometry.
func (c *Controller) RecordContact(normal rl.Vector3, body Connection) {
	c.contacts.Record(normal, body)
}

// PreventSnapToGround makes the next snap checks fail, as if the ball had
// just jumped.
func (c *Controller) PreventSnapToGround() {
	c.jumps.StepsSinceJump = suppressSnap
}

// OnPhysicsStep runs one fixed step: classify, integrate, jump, write back.
func (c *Controller) OnPhysicsStep(dt float32) {
	c.updateState(dt)

	accel := c.cfg.AccelerationAir
	if c.contacts.Grounded() {
		accel = c.cfg.AccelerationGround
	}
	c.velocity = AdjustVelocity(c.velocity, c.conn.velocity, c.desiredVelocity, c.contactNormal, accel*dt)

	c.lastJump = JumpNone
	if c.desiredJump {
		c.desiredJump = false
		c.jump()
	}

	c.body.SetVelocity(c.velocity)
	c.clearState()
}

func (c *Controller) updateState(dt float32) {
	c.jumps.tick()
	c.velocity = c.body.Velocity()

	if c.contacts.Grounded() || c.snapToGround() || c.contacts.ResolveCrevasse() {
		c.jumps.land()
		c.contactNormal = c.contacts.GroundNormal()
	} else {
		c.contactNormal = worldUp
	}
	c.steepNormal = c.contacts.SteepNormal()

	if body := c.contacts.Connected(); body != nil && canCarry(body, c.body.Mass()) {
		c.conn.update(body, c.body.Position(), dt)
	}
}

func (c *Controller) snapToGround() bool {
	if !c.jumps.CanSnap() {
		return false
	}
	speed := rl.Vector3Length(c.velocity)
	if speed > c.cfg.MaxSnapSpeed*c.cfg.MaxSpeed-snapTolerance {
		return false
	}
	hit, ok := c.world.Raycast(c.body.Position(), rl.Vector3{Y: -1}, c.cfg.ProbeDistance, c.cfg.ProbeMask)
	if !ok || hit.Normal.Y < c.minGroundDot {
		return false
	}

	c.contacts.snap(hit.Normal, hit.Body)
	if dot := rl.Vector3DotProduct(c.velocity, hit.Normal); dot > 0 {
		along := rl.Vector3Subtract(c.velocity, rl.Vector3Scale(hit.Normal, dot))
		c.velocity = rl.Vector3Scale(normalize(along), speed)
	}
	return true
}

func (c *Controller) jump() {
	normal, kind := c.jumps.choose(&c.cfg, c.contacts.Grounded(), c.contacts.OnSteep(), c.contactNormal, c.steepNormal)
	if kind == JumpNone {
		return
	}
	c.jumps.StepsSinceJump = 0
	c.lastJump = kind
	speed := JumpSpeed(c.world.Gravity(), c.cfg.JumpHeight)
	c.velocity = ApplyJump(c.velocity, JumpDirection(normal), speed)
}

func (c *Controller) clearState() {
	c.lastContactNormal = c.contactNormal
	if c.contacts.OnSteep() {
		c.lastSteepNormal = c.steepNormal
	}
	c.conn.advance(c.contacts.Connected())
	c.contacts.Reset()
}

func (c *Controller) IsGrounded() bool { return c.contacts.Grounded() }
func (c *Controller) IsOnSteep() bool  { return c.contacts.OnSteep() }

// Velocity is the velocity written to the body by the last step.
func (c *Controller) Velocity() rl.Vector3 { return c.velocity }

// ContactNormal is the ground normal used by the last step, world up when
// airborne.
func (c *Controller) ContactNormal() rl.Vector3 { return c.contactNormal }

// PlatformVelocity is the velocity of the connected platform measured by the
// last step.
func (c *Controller) PlatformVelocity() rl.Vector3 { return c.conn.lastVelocity }

func (c *Controller) JumpState() JumpState { return c.jumps }

// LastJump reports the jump granted by the last step, JumpNone if none.
func (c *Controller) LastJump() JumpKind { return c.lastJump }
