package components

import (
	"fmt"
	"log"
	"math"

	"ballance/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// LookSource reports the view rotation input of one frame, x horizontal and
// y vertical.
type LookSource interface {
	Look() rl.Vector2
}

// OrbitSettings tune an OrbitCamera.
type OrbitSettings struct {
	FocusOffset      rl.Vector3 `yaml:"focus_offset"`
	Distance         float32    `yaml:"distance"`           // [1, 30]
	FocusRadius      float32    `yaml:"focus_radius"`       // >= 0, slack before the camera follows
	FocusCentering   float32    `yaml:"focus_centering"`    // [0, 1], how fast the focus recenters
	Sensitivity      float32    `yaml:"sensitivity"`        // [0.1, 5]
	MinVerticalAngle float32    `yaml:"min_vertical_angle"` // [-89, 89] degrees
	MaxVerticalAngle float32    `yaml:"max_vertical_angle"` // [-89, 89] degrees, >= MinVerticalAngle
	ObstructionMask  uint32     `yaml:"obstruction_mask"`
}

func DefaultOrbitSettings() OrbitSettings {
	return OrbitSettings{
		FocusOffset:      rl.Vector3{Y: 1},
		Distance:         10,
		FocusRadius:      1,
		FocusCentering:   0.9,
		Sensitivity:      1,
		MinVerticalAngle: -30,
		MaxVerticalAngle: 60,
		ObstructionMask:  engine.AllLayers,
	}
}

// Clamp corrects every field into its range and reports the changes.
func (s *OrbitSettings) Clamp() []string {
	var adjusted []string
	clampField := func(name string, v *float32, min, max float32) {
		nan := math.IsNaN(float64(*v))
		if !nan && *v >= min && *v <= max {
			return
		}
		old := *v
		switch {
		case nan || *v < min:
			*v = min
		default:
			*v = max
		}
		adjusted = append(adjusted, fmt.Sprintf("%s %g clamped to %g", name, old, *v))
	}
	clampField("distance", &s.Distance, 1, 30)
	clampField("focus_radius", &s.FocusRadius, 0, math.MaxFloat32)
	clampField("focus_centering", &s.FocusCentering, 0, 1)
	clampField("sensitivity", &s.Sensitivity, 0.1, 5)
	clampField("min_vertical_angle", &s.MinVerticalAngle, -89, 89)
	clampField("max_vertical_angle", &s.MaxVerticalAngle, -89, 89)
	if s.MaxVerticalAngle < s.MinVerticalAngle {
		adjusted = append(adjusted, fmt.Sprintf("max_vertical_angle %g raised to min_vertical_angle %g", s.MaxVerticalAngle, s.MinVerticalAngle))
		s.MaxVerticalAngle = s.MinVerticalAngle
	}
	return adjusted
}

// OrbitCamera follows a focus object at a fixed distance and orbits it from
// look input. It is also the frame the ball's input is read in.
type OrbitCamera struct {
	engine.BaseComponent
	Settings OrbitSettings
	Focus    string // name of the followed object
	Look     LookSource
	FOV      float32

	focus       *engine.GameObject
	focusPoint  rl.Vector3
	orbitAngles rl.Vector2 // x pitch, y yaw, degrees
}

func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Settings:    DefaultOrbitSettings(),
		FOV:         60,
		orbitAngles: rl.Vector2{X: 45, Y: 0},
	}
}

func (o *OrbitCamera) Start() {
	g := o.GetGameObject()
	o.SetSettings(o.Settings)
	if g.Scene != nil && o.Focus != "" {
		o.focus = g.Scene.FindByName(o.Focus)
	}
	if o.focus == nil {
		log.Printf("OrbitCamera: focus %q not found", o.Focus)
		return
	}
	o.focusPoint = o.targetPoint()
	o.constrainAngles()
	g.Transform.Rotation = orbitRotation(o.orbitAngles)
	o.place(g.Transform.Rotation)
}

// SetSettings applies new tuning, logging whatever had to be clamped.
func (o *OrbitCamera) SetSettings(s OrbitSettings) {
	for _, msg := range s.Clamp() {
		log.Printf("OrbitCamera: %s", msg)
	}
	o.Settings = s
}

func (o *OrbitCamera) Update(deltaTime float32) {
	if o.focus == nil {
		return
	}
	o.updateFocusPoint(deltaTime)

	lookRotation := o.GetGameObject().Transform.Rotation
	if o.manualRotation(deltaTime) {
		o.constrainAngles()
		lookRotation = orbitRotation(o.orbitAngles)
	}
	o.place(lookRotation)
}

func (o *OrbitCamera) targetPoint() rl.Vector3 {
	return rl.Vector3Add(o.focus.WorldPosition(), o.Settings.FocusOffset)
}

func (o *OrbitCamera) updateFocusPoint(deltaTime float32) {
	target := o.targetPoint()
	if o.Settings.FocusRadius <= 0 {
		o.focusPoint = target
		return
	}

	distance := rl.Vector3Distance(target, o.focusPoint)
	t := float32(1)
	if distance > 0.01 && o.Settings.FocusCentering > 0 {
		t = float32(math.Pow(float64(1-o.Settings.FocusCentering), float64(deltaTime)))
	}
	if distance > o.Settings.FocusRadius {
		t = min(t, o.Settings.FocusRadius/distance)
	}
	o.focusPoint = rl.Vector3Lerp(target, o.focusPoint, t)
}

func (o *OrbitCamera) manualRotation(deltaTime float32) bool {
	if o.Look == nil {
		return false
	}
	look := o.Look.Look()
	input := rl.Vector2{X: -look.Y, Y: -look.X}

	const e = 0.001
	if input.X < -e || input.X > e || input.Y < -e || input.Y > e {
		speed := o.Settings.Sensitivity * 360 * deltaTime
		o.orbitAngles = rl.Vector2Add(o.orbitAngles, rl.Vector2Scale(input, speed))
		return true
	}
	return false
}

func (o *OrbitCamera) constrainAngles() {
	o.orbitAngles.X = clampf(o.orbitAngles.X, o.Settings.MinVerticalAngle, o.Settings.MaxVerticalAngle)
	if o.orbitAngles.Y < 0 {
		o.orbitAngles.Y += 360
	} else if o.orbitAngles.Y >= 360 {
		o.orbitAngles.Y -= 360
	}
}

// place puts the camera behind the focus point, pulled in front of anything
// that blocks the view of the focus object.
func (o *OrbitCamera) place(lookRotation rl.Quaternion) {
	g := o.GetGameObject()
	lookDirection := rl.Vector3RotateByQuaternion(rl.Vector3{Z: 1}, lookRotation)
	lookPosition := rl.Vector3Subtract(o.focusPoint, rl.Vector3Scale(lookDirection, o.Settings.Distance))

	castFrom := o.targetPoint()
	castLine := rl.Vector3Subtract(lookPosition, castFrom)
	castDistance := rl.Vector3Length(castLine)
	if castDistance > 0.0001 && g.Scene != nil && g.Scene.World != nil {
		castDirection := rl.Vector3Scale(castLine, 1/castDistance)
		if hit, ok := g.Scene.World.Raycast(castFrom, castDirection, castDistance, o.Settings.ObstructionMask); ok {
			lookPosition = rl.Vector3Add(castFrom, rl.Vector3Scale(castDirection, hit.Distance))
		}
	}

	g.Transform.Position = lookPosition
	g.Transform.Rotation = lookRotation
}

// Angles returns pitch and yaw in degrees.
func (o *OrbitCamera) Angles() rl.Vector2 { return o.orbitAngles }

// SetAngles sets pitch and yaw in degrees; they are constrained on use.
func (o *OrbitCamera) SetAngles(a rl.Vector2) {
	o.orbitAngles = a
	o.constrainAngles()
}

// Forward is the view direction.
func (o *OrbitCamera) Forward() rl.Vector3 {
	return o.GetGameObject().Forward()
}

// Right is the screen right direction. Raylib is right handed, so this is
// the object's -X axis.
func (o *OrbitCamera) Right() rl.Vector3 {
	return rl.Vector3Negate(o.GetGameObject().Right())
}

// Camera3D is the raylib camera for this view.
func (o *OrbitCamera) Camera3D() rl.Camera3D {
	g := o.GetGameObject()
	pos := g.WorldPosition()
	return rl.Camera3D{
		Position:   pos,
		Target:     rl.Vector3Add(pos, o.Forward()),
		Up:         g.Up(),
		Fovy:       o.FOV,
		Projection: rl.CameraPerspective,
	}
}

// orbitRotation turns pitch/yaw degrees into a rotation, yaw applied last.
func orbitRotation(angles rl.Vector2) rl.Quaternion {
	pitch := rl.QuaternionFromAxisAngle(rl.Vector3{X: 1}, angles.X*rl.Deg2rad)
	yaw := rl.QuaternionFromAxisAngle(rl.Vector3{Y: 1}, angles.Y*rl.Deg2rad)
	return rl.QuaternionMultiply(yaw, pitch)
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
