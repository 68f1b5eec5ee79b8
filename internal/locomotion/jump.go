package locomotion

import rl "github.com/gen2brain/raylib-go/raylib"

// JumpKind tells which rule granted a jump.
type JumpKind int

const (
	JumpNone JumpKind = iota
	JumpGround
	JumpSteep
	JumpAir
)

func (k JumpKind) String() string {
	switch k {
	case JumpGround:
		return "ground"
	case JumpSteep:
		return "steep"
	case JumpAir:
		return "air"
	default:
		return "none"
	}
}

// suppressSnap is stored in StepsSinceJump to fail the next snap checks.
const suppressSnap = -1

// JumpState holds the jump budgets and the step counters the snap and reset
// rules look at.
type JumpState struct {
	SteepPhase         int
	AirPhase           int
	StepsSinceGrounded int
	StepsSinceJump     int
}

func (j *JumpState) tick() {
	j.StepsSinceGrounded++
	j.StepsSinceJump++
}

// land records a grounded step. Budgets only refill once the ball has been
// off the jump for more than one step, so the step of a jump cannot reset it.
func (j *JumpState) land() {
	j.StepsSinceGrounded = 0
	if j.StepsSinceJump > 1 {
		j.SteepPhase = 0
		j.AirPhase = 0
	}
}

// CanSnap reports whether ground snapping is allowed this step: airborne for
// at most one step and no jump within the last two.
func (j *JumpState) CanSnap() bool {
	return j.StepsSinceGrounded <= 1 && j.StepsSinceJump > 2
}

// choose picks the jump direction for the current contact state, consuming
// budget as it goes. It returns JumpNone when the request must be dropped.
func (j *JumpState) choose(cfg *Config, onGround, onSteep bool, contactNormal, steepNormal rl.Vector3) (rl.Vector3, JumpKind) {
	switch {
	case onGround || (onSteep && cfg.SteepJumpReset):
		j.AirPhase = 0
		j.SteepPhase = 0
		return contactNormal, JumpGround

	case cfg.MaxSteepJumps > 0 && j.SteepPhase <= cfg.MaxSteepJumps && onSteep:
		if j.SteepPhase == 0 {
			j.SteepPhase = 1
		}
		j.SteepPhase++
		return steepNormal, JumpSteep

	case cfg.MaxAirJumps > 0 && j.AirPhase <= cfg.MaxAirJumps:
		if j.AirPhase == 0 {
			j.AirPhase = 1
		}
		j.AirPhase++
		return contactNormal, JumpAir
	}
	return rl.Vector3{}, JumpNone
}

// JumpSpeed is the launch speed that reaches height under gravity.
func JumpSpeed(gravity rl.Vector3, height float32) float32 {
	return sqrtf(2 * -gravity.Y * height)
}

// JumpDirection blends a surface normal with world up so wall jumps still
// gain height.
func JumpDirection(normal rl.Vector3) rl.Vector3 {
	return normalizeOr(rl.Vector3Add(normal, worldUp), worldUp)
}

// ApplyJump adds speed along direction, minus whatever velocity already
// points that way. The result never loses speed along direction.
func ApplyJump(velocity, direction rl.Vector3, speed float32) rl.Vector3 {
	aligned := rl.Vector3DotProduct(velocity, direction)
	if aligned > 0 {
		speed -= aligned
		if speed < 0 {
			speed = 0
		}
	}
	return rl.Vector3Add(velocity, rl.Vector3Scale(direction, speed))
}
