package locomotion

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// AllLayers is the probe mask that accepts every collision layer.
const AllLayers uint32 = math.MaxUint32

const minBallRadius = 0.01

// Config holds the tuning of a ball. Field comments give the accepted range;
// Clamp pulls out-of-range values back into it.
type Config struct {
	// Visual ball
	BallRadius  float32 `yaml:"ball_radius"`  // > 0, radius used to convert distance into roll angle
	AirRotation float32 `yaml:"air_rotation"` // >= 0, roll rate factor while fully airborne
	AlignBall   bool    `yaml:"align_ball"`   // keep the mesh pole aligned with the rolling axis
	AlignSpeed  float32 `yaml:"align_speed"`  // >= 0, degrees of alignment per unit travelled

	// Movement
	MaxSpeed           float32 `yaml:"max_speed"`           // [0, 15]
	AccelerationGround float32 `yaml:"acceleration_ground"` // [0, 30]
	AccelerationAir    float32 `yaml:"acceleration_air"`    // [0, 30]
	MaxGroundAngle     float32 `yaml:"max_ground_angle"`    // [0, 90] degrees
	MaxSnapSpeed       float32 `yaml:"max_snap_speed"`      // [0, 5] fraction of MaxSpeed
	ProbeDistance      float32 `yaml:"probe_distance"`      // >= 0
	ProbeMask          uint32  `yaml:"probe_mask"`

	// Jump
	JumpHeight     float32 `yaml:"jump_height"`      // [0, 10]
	MaxSteepJumps  int     `yaml:"max_steep_jumps"`  // [0, 5]
	SteepJumpReset bool    `yaml:"steep_jump_reset"` // steep contacts restore the jump budget
	MaxAirJumps    int     `yaml:"max_air_jumps"`    // [0, 5]
}

// DefaultConfig returns the tuning the demo level is built around.
func DefaultConfig() Config {
	return Config{
		BallRadius:         0.5,
		AirRotation:        0.5,
		AlignBall:          true,
		AlignSpeed:         20,
		MaxSpeed:           5,
		AccelerationGround: 10,
		AccelerationAir:    5,
		MaxGroundAngle:     25,
		MaxSnapSpeed:       0.5,
		ProbeDistance:      1,
		ProbeMask:          AllLayers,
		JumpHeight:         2,
		MaxSteepJumps:      1,
		MaxAirJumps:        0,
	}
}

// Clamp corrects every field into its documented range and reports what it
// changed. It never fails.
func (c *Config) Clamp() []string {
	var adjusted []string
	clampField := func(name string, v *float32, min, max float32) {
		nan := math.IsNaN(float64(*v))
		if !nan && *v >= min && *v <= max {
			return
		}
		old := *v
		if nan {
			*v = min
		} else {
			*v = clampf(*v, min, max)
		}
		adjusted = append(adjusted, fmt.Sprintf("%s %g clamped to %g", name, old, *v))
	}
	clampCount := func(name string, v *int, min, max int) {
		if *v < min || *v > max {
			old := *v
			if *v < min {
				*v = min
			} else {
				*v = max
			}
			adjusted = append(adjusted, fmt.Sprintf("%s %d clamped to %d", name, old, *v))
		}
	}

	clampField("ball_radius", &c.BallRadius, minBallRadius, math.MaxFloat32)
	clampField("air_rotation", &c.AirRotation, 0, math.MaxFloat32)
	clampField("align_speed", &c.AlignSpeed, 0, math.MaxFloat32)
	clampField("max_speed", &c.MaxSpeed, 0, 15)
	clampField("acceleration_ground", &c.AccelerationGround, 0, 30)
	clampField("acceleration_air", &c.AccelerationAir, 0, 30)
	clampField("max_ground_angle", &c.MaxGroundAngle, 0, 90)
	clampField("max_snap_speed", &c.MaxSnapSpeed, 0, 5)
	clampField("probe_distance", &c.ProbeDistance, 0, math.MaxFloat32)
	clampField("jump_height", &c.JumpHeight, 0, 10)
	clampCount("max_steep_jumps", &c.MaxSteepJumps, 0, 5)
	clampCount("max_air_jumps", &c.MaxAirJumps, 0, 5)

	return adjusted
}

// MinGroundDot is the smallest normal Y component that still counts as ground.
func (c Config) MinGroundDot() float32 {
	return float32(math.Cos(float64(c.MaxGroundAngle * rl.Deg2rad)))
}
