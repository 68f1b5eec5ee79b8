package locomotion

import rl "github.com/gen2brain/raylib-go/raylib"

// steepMinY separates steep faces from walls and undersides.
const steepMinY = 0.01

// Contacts accumulates the collision normals reported during one physics
// step. Recording only sums and counts, so call order within a step does not
// matter.
type Contacts struct {
	minGroundDot float32

	groundCount  int
	steepCount   int
	groundNormal rl.Vector3 // raw sum until normalized
	steepNormal  rl.Vector3 // raw sum until normalized
	connected    Connection
}

// NewContacts returns an empty accumulator using the given ground threshold.
func NewContacts(minGroundDot float32) Contacts {
	return Contacts{minGroundDot: minGroundDot}
}

// Record classifies one contact normal. body may be nil for static geometry.
func (c *Contacts) Record(normal rl.Vector3, body Connection) {
	if normal.Y >= c.minGroundDot {
		c.groundCount++
		c.groundNormal = rl.Vector3Add(c.groundNormal, normal)
		c.connected = body
		return
	}
	if normal.Y > steepMinY {
		c.steepCount++
		c.steepNormal = rl.Vector3Add(c.steepNormal, normal)
		if c.groundCount == 0 {
			c.connected = body
		}
	}
}

// Reset clears the accumulator for the next step.
func (c *Contacts) Reset() {
	c.groundCount = 0
	c.steepCount = 0
	c.groundNormal = rl.Vector3{}
	c.steepNormal = rl.Vector3{}
	c.connected = nil
}

func (c *Contacts) Grounded() bool   { return c.groundCount > 0 }
func (c *Contacts) OnSteep() bool    { return c.steepCount > 0 }
func (c *Contacts) GroundCount() int { return c.groundCount }
func (c *Contacts) SteepCount() int  { return c.steepCount }

// Connected is the body the ball rests on, nil for static ground or air.
func (c *Contacts) Connected() Connection { return c.connected }

// GroundNormal is the normalized sum of the ground normals when more than
// one was recorded, the single normal otherwise.
func (c *Contacts) GroundNormal() rl.Vector3 {
	if c.groundCount > 1 {
		return normalize(c.groundNormal)
	}
	return c.groundNormal
}

// SteepNormal is the normalized sum of the steep normals.
func (c *Contacts) SteepNormal() rl.Vector3 {
	if c.steepCount > 1 {
		return normalize(c.steepNormal)
	}
	return c.steepNormal
}

// ResolveCrevasse reclassifies the ball as grounded when two or more steep
// contacts together form a walkable normal, as in a concave corner. A single
// steep contact never qualifies.
func (c *Contacts) ResolveCrevasse() bool {
	if c.steepCount < 2 {
		return false
	}
	n := normalize(c.steepNormal)
	if n.Y < c.minGroundDot {
		return false
	}
	c.groundCount = 1
	c.groundNormal = n
	return true
}

// snap forces a single ground contact found by a probe.
func (c *Contacts) snap(normal rl.Vector3, body Connection) {
	c.groundCount = 1
	c.groundNormal = normal
	c.connected = body
}

func (c *Contacts) setThreshold(minGroundDot float32) {
	c.minGroundDot = minGroundDot
}
