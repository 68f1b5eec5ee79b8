package physics

import (
	"log"
	"unsafe"

	"ballance/internal/components"
	"ballance/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Spatial grid cell size - objects within same or neighboring cells are checked
const CellSize = 5.0

// Cell key for spatial hashing
type CellKey struct {
	X, Y, Z int
}

func posToCell(pos rl.Vector3) CellKey {
	return CellKey{
		X: int(pos.X / CellSize),
		Y: int(pos.Y / CellSize),
		Z: int(pos.Z / CellSize),
	}
}

// CollisionPair represents two objects that are colliding
type CollisionPair struct {
	A, B *engine.GameObject
}

// makePair creates a consistent collision pair (smaller pointer first)
func makePair(a, b *engine.GameObject) CollisionPair {
	ptrA, ptrB := uintptr(unsafe.Pointer(a)), uintptr(unsafe.Pointer(b))
	if ptrA > ptrB {
		return CollisionPair{A: b, B: a}
	}
	return CollisionPair{A: a, B: b}
}

// pairContacts holds the contacts of one pair, normals pointing toward A.
type pairContacts struct {
	pair     CollisionPair
	contacts []engine.ContactPoint
}

type PhysicsWorld struct {
	Gravity    rl.Vector3
	Objects    []*engine.GameObject // dynamic rigidbodies
	Kinematics []*engine.GameObject // kinematic rigidbodies (moving platforms)
	Statics    []*engine.GameObject // no rigidbody (floor, walls, trigger volumes)
	grid       map[CellKey][]*engine.GameObject

	// Collision tracking for callbacks, in the order pairs were found
	activeCollisions  map[CollisionPair]bool
	currentCollisions map[CollisionPair]int // index into contacts
	contacts          []pairContacts
	activeOrder       []CollisionPair

	activeTriggers  map[CollisionPair]bool
	currentTriggers map[CollisionPair]bool
	triggerOrder    []CollisionPair
	activeTrigOrder []CollisionPair
}

func NewPhysicsWorld() *PhysicsWorld {
	return &PhysicsWorld{
		Gravity:           rl.Vector3{X: 0, Y: -9.81, Z: 0},
		Objects:           make([]*engine.GameObject, 0),
		Kinematics:        make([]*engine.GameObject, 0),
		Statics:           make([]*engine.GameObject, 0),
		grid:              make(map[CellKey][]*engine.GameObject),
		activeCollisions:  make(map[CollisionPair]bool),
		currentCollisions: make(map[CollisionPair]int),
		activeTriggers:    make(map[CollisionPair]bool),
		currentTriggers:   make(map[CollisionPair]bool),
	}
}

// AddObject sorts g into the dynamic, kinematic or static list by its
// Rigidbody. Objects without a collider are ignored.
func (p *PhysicsWorld) AddObject(g *engine.GameObject) {
	if _, ok := shapeOf(g); !ok {
		if engine.GetComponent[*components.Rigidbody](g) != nil {
			log.Printf("Physics: %s has a Rigidbody but no collider, skipped", g.Name)
		}
		return
	}
	rb := engine.GetComponent[*components.Rigidbody](g)
	if rb == nil {
		p.Statics = append(p.Statics, g)
	} else if rb.IsKinematic {
		p.Kinematics = append(p.Kinematics, g)
	} else {
		p.Objects = append(p.Objects, g)
	}
}

func (p *PhysicsWorld) RemoveObject(g *engine.GameObject) {
	p.Objects = removeFrom(p.Objects, g)
	p.Kinematics = removeFrom(p.Kinematics, g)
	p.Statics = removeFrom(p.Statics, g)

	for pair := range p.activeCollisions {
		if pair.A == g || pair.B == g {
			delete(p.activeCollisions, pair)
		}
	}
	for pair := range p.activeTriggers {
		if pair.A == g || pair.B == g {
			delete(p.activeTriggers, pair)
		}
	}
	p.activeOrder = keepActive(p.activeOrder, p.activeCollisions)
	p.activeTrigOrder = keepActive(p.activeTrigOrder, p.activeTriggers)
}

func removeFrom(list []*engine.GameObject, g *engine.GameObject) []*engine.GameObject {
	for i, obj := range list {
		if obj == g {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

func keepActive(order []CollisionPair, active map[CollisionPair]bool) []CollisionPair {
	kept := order[:0]
	for _, pair := range order {
		if active[pair] {
			kept = append(kept, pair)
		}
	}
	return kept
}

// DynamicObjectCount returns the number of dynamic physics objects
func (p *PhysicsWorld) DynamicObjectCount() int {
	return len(p.Objects)
}

// Step advances the simulation by deltaTime and then sends the collision
// and trigger callbacks of this step.
func (p *PhysicsWorld) Step(deltaTime float32) {
	p.beginStep()

	// 1. Integrate forces and velocities
	p.integrate(deltaTime)

	// 2. Dynamic vs dynamic, broad phase by spatial hashing
	p.rebuildGrid()
	checked := make(map[CollisionPair]bool)
	for _, obj := range p.Objects {
		for _, other := range p.getNeighborObjects(obj) {
			if obj == other {
				continue
			}
			pair := makePair(obj, other)
			if checked[pair] {
				continue
			}
			checked[pair] = true
			p.collide(obj, other)
		}
	}

	// 3. Dynamic vs kinematic and static
	for _, obj := range p.Objects {
		for _, kinematic := range p.Kinematics {
			p.collide(obj, kinematic)
		}
		for _, static := range p.Statics {
			p.collide(obj, static)
		}
	}

	// 4. Trigger overlaps
	p.detectTriggers()

	// 5. Dispatch callbacks
	p.dispatchCollisionCallbacks()
	p.dispatchTriggerCallbacks()
}

func (p *PhysicsWorld) beginStep() {
	clear(p.currentCollisions)
	p.contacts = p.contacts[:0]
	clear(p.currentTriggers)
	p.triggerOrder = p.triggerOrder[:0]
}

func (p *PhysicsWorld) integrate(deltaTime float32) {
	for _, obj := range p.Objects {
		rb := engine.GetComponent[*components.Rigidbody](obj)
		if rb == nil || !obj.ActiveInHierarchy() {
			continue
		}

		if rb.UseGravity {
			rb.Velocity = rl.Vector3Add(rb.Velocity, rl.Vector3Scale(p.Gravity, deltaTime))
		}
		obj.Transform.Position = rl.Vector3Add(obj.Transform.Position, rl.Vector3Scale(rb.Velocity, deltaTime))

		if rb.FreezeRotation {
			rb.AngularVelocity = rl.Vector3{}
			continue
		}
		integrateRotation(obj, rb, deltaTime)

		// Apply angular damping (time-based so it's framerate independent)
		damping := float32(1.0) - (1.0-rb.AngularDamping)*deltaTime*60
		if damping < 0 {
			damping = 0
		}
		rb.AngularVelocity = rl.Vector3Scale(rb.AngularVelocity, damping)
	}

	// Kinematic bodies follow their own velocities exactly
	for _, obj := range p.Kinematics {
		rb := engine.GetComponent[*components.Rigidbody](obj)
		if rb == nil || !obj.ActiveInHierarchy() {
			continue
		}
		obj.Transform.Position = rl.Vector3Add(obj.Transform.Position, rl.Vector3Scale(rb.Velocity, deltaTime))
		integrateRotation(obj, rb, deltaTime)
	}
}

func integrateRotation(obj *engine.GameObject, rb *components.Rigidbody, deltaTime float32) {
	step := angularStep(rb.AngularVelocityRad(), deltaTime)
	obj.Transform.Rotation = rl.QuaternionNormalize(rl.QuaternionMultiply(step, obj.Transform.Rotation))
}

// rebuildGrid clears and repopulates the spatial hash grid
func (p *PhysicsWorld) rebuildGrid() {
	for k := range p.grid {
		delete(p.grid, k)
	}
	for _, obj := range p.Objects {
		cell := posToCell(obj.Transform.Position)
		p.grid[cell] = append(p.grid[cell], obj)
	}
}

// getNeighborObjects returns all objects in same cell and 26 neighboring cells
func (p *PhysicsWorld) getNeighborObjects(obj *engine.GameObject) []*engine.GameObject {
	cell := posToCell(obj.Transform.Position)
	var neighbors []*engine.GameObject

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				key := CellKey{cell.X + dx, cell.Y + dy, cell.Z + dz}
				neighbors = append(neighbors, p.grid[key]...)
			}
		}
	}
	return neighbors
}

// collide tests a dynamic object against another collider and resolves the
// contact. Trigger colliders are left to detectTriggers.
func (p *PhysicsWorld) collide(obj, other *engine.GameObject) {
	if !obj.ActiveInHierarchy() || !other.ActiveInHierarchy() {
		return
	}
	sa, okA := shapeOf(obj)
	sb, okB := shapeOf(other)
	if !okA || !okB || sa.isTrigger() || sb.isTrigger() || !sa.overlaps(sb) {
		return
	}

	cp, ok := computeContact(sa, sb)
	if !ok {
		return
	}
	p.recordCollision(obj, other, cp)

	rbA := engine.GetComponent[*components.Rigidbody](obj)
	rbB := engine.GetComponent[*components.Rigidbody](other)
	resolveContact(obj, other, rbA, rbB, cp)
}

// recordCollision marks a collision pair as active this step. cp.Normal
// points toward a.
func (p *PhysicsWorld) recordCollision(a, b *engine.GameObject, cp engine.ContactPoint) {
	pair := makePair(a, b)
	if pair.A != a {
		cp.Normal = rl.Vector3Negate(cp.Normal)
	}
	if i, ok := p.currentCollisions[pair]; ok {
		p.contacts[i].contacts = append(p.contacts[i].contacts, cp)
		return
	}
	p.currentCollisions[pair] = len(p.contacts)
	p.contacts = append(p.contacts, pairContacts{pair: pair, contacts: []engine.ContactPoint{cp}})
}

// detectTriggers finds every rigidbody overlapping a trigger collider.
func (p *PhysicsWorld) detectTriggers() {
	bodies := make([]*engine.GameObject, 0, len(p.Objects)+len(p.Kinematics))
	bodies = append(bodies, p.Objects...)
	bodies = append(bodies, p.Kinematics...)

	for _, list := range [][]*engine.GameObject{p.Statics, p.Kinematics, p.Objects} {
		for _, trigger := range list {
			st, ok := shapeOf(trigger)
			if !ok || !st.isTrigger() || !trigger.ActiveInHierarchy() {
				continue
			}
			for _, body := range bodies {
				if body == trigger || !body.ActiveInHierarchy() {
					continue
				}
				sb, ok := shapeOf(body)
				if !ok || !sb.overlaps(st) {
					continue
				}
				cp, ok := computeContact(sb, st)
				if !ok || cp.Separation >= 0 {
					continue
				}
				pair := makePair(trigger, body)
				if p.currentTriggers[pair] {
					continue
				}
				p.currentTriggers[pair] = true
				p.triggerOrder = append(p.triggerOrder, pair)
			}
		}
	}
}

// dispatchCollisionCallbacks sends Enter for new pairs, Stay for continuing
// pairs and Exit for pairs that separated.
func (p *PhysicsWorld) dispatchCollisionCallbacks() {
	for _, pc := range p.contacts {
		flipped := make([]engine.ContactPoint, len(pc.contacts))
		for i, cp := range pc.contacts {
			cp.Normal = rl.Vector3Negate(cp.Normal)
			flipped[i] = cp
		}
		toA := engine.Collision{Other: pc.pair.B, Contacts: pc.contacts}
		toB := engine.Collision{Other: pc.pair.A, Contacts: flipped}

		if p.activeCollisions[pc.pair] {
			notifyCollisionStay(pc.pair.A, toA)
			notifyCollisionStay(pc.pair.B, toB)
		} else {
			notifyCollisionEnter(pc.pair.A, toA)
			notifyCollisionEnter(pc.pair.B, toB)
		}
	}

	for _, pair := range p.activeOrder {
		if _, ok := p.currentCollisions[pair]; !ok {
			notifyCollisionExit(pair.A, pair.B)
			notifyCollisionExit(pair.B, pair.A)
		}
	}

	// Swap buffers
	clear(p.activeCollisions)
	p.activeOrder = p.activeOrder[:0]
	for _, pc := range p.contacts {
		p.activeCollisions[pc.pair] = true
		p.activeOrder = append(p.activeOrder, pc.pair)
	}
}

func (p *PhysicsWorld) dispatchTriggerCallbacks() {
	for _, pair := range p.triggerOrder {
		if p.activeTriggers[pair] {
			notifyTrigger(pair.A, pair.B, engine.TriggerHandler.OnTriggerStay)
			notifyTrigger(pair.B, pair.A, engine.TriggerHandler.OnTriggerStay)
		} else {
			notifyTrigger(pair.A, pair.B, engine.TriggerHandler.OnTriggerEnter)
			notifyTrigger(pair.B, pair.A, engine.TriggerHandler.OnTriggerEnter)
		}
	}

	for _, pair := range p.activeTrigOrder {
		if !p.currentTriggers[pair] {
			notifyTrigger(pair.A, pair.B, engine.TriggerHandler.OnTriggerExit)
			notifyTrigger(pair.B, pair.A, engine.TriggerHandler.OnTriggerExit)
		}
	}

	clear(p.activeTriggers)
	p.activeTrigOrder = p.activeTrigOrder[:0]
	for _, pair := range p.triggerOrder {
		p.activeTriggers[pair] = true
		p.activeTrigOrder = append(p.activeTrigOrder, pair)
	}
}

// notifyCollisionEnter calls OnCollisionEnter on all handlers in obj
func notifyCollisionEnter(obj *engine.GameObject, c engine.Collision) {
	for _, comp := range obj.Components() {
		if handler, ok := comp.(engine.CollisionHandler); ok {
			handler.OnCollisionEnter(c)
		}
	}
}

func notifyCollisionStay(obj *engine.GameObject, c engine.Collision) {
	for _, comp := range obj.Components() {
		if handler, ok := comp.(engine.CollisionHandler); ok {
			handler.OnCollisionStay(c)
		}
	}
}

// notifyCollisionExit calls OnCollisionExit on all handlers in obj
func notifyCollisionExit(obj, other *engine.GameObject) {
	for _, comp := range obj.Components() {
		if handler, ok := comp.(engine.CollisionHandler); ok {
			handler.OnCollisionExit(other)
		}
	}
}

func notifyTrigger(obj, other *engine.GameObject, call func(engine.TriggerHandler, *engine.GameObject)) {
	for _, comp := range obj.Components() {
		if handler, ok := comp.(engine.TriggerHandler); ok {
			call(handler, other)
		}
	}
}
