package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	stickDeadzone = 0.15
	mouseScale    = 0.1
	gamepad       = 0
)

// Input polls keyboard, mouse and the first gamepad once per frame. It
// implements components.InputSource for the ball and components.LookSource
// for the camera.
type Input struct {
	move rl.Vector2
	look rl.Vector2
	jump bool

	// MouseLook is off while the cursor is free for the tuning panel.
	MouseLook bool
}

func NewInput() *Input {
	return &Input{MouseLook: true}
}

// Poll samples the devices for this frame.
func (in *Input) Poll() {
	keys := keyAxes(
		rl.IsKeyDown(rl.KeyW) || rl.IsKeyDown(rl.KeyUp),
		rl.IsKeyDown(rl.KeyS) || rl.IsKeyDown(rl.KeyDown),
		rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft),
		rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight),
	)
	in.jump = rl.IsKeyPressed(rl.KeySpace)

	var leftStick, rightStick rl.Vector2
	if rl.IsGamepadAvailable(gamepad) {
		leftStick = rl.Vector2{
			X: rl.GetGamepadAxisMovement(gamepad, rl.GamepadAxisLeftX),
			Y: -rl.GetGamepadAxisMovement(gamepad, rl.GamepadAxisLeftY),
		}
		rightStick = rl.Vector2{
			X: rl.GetGamepadAxisMovement(gamepad, rl.GamepadAxisRightX),
			Y: -rl.GetGamepadAxisMovement(gamepad, rl.GamepadAxisRightY),
		}
		in.jump = in.jump || rl.IsGamepadButtonPressed(gamepad, rl.GamepadButtonRightFaceDown)
	}
	in.move = combineMove(keys, deadzone(leftStick, stickDeadzone))

	var mouse rl.Vector2
	if in.MouseLook {
		mouse = rl.GetMouseDelta()
	}
	in.look = combineLook(mouse, deadzone(rightStick, stickDeadzone))
}

func (in *Input) Move() rl.Vector2  { return in.move }
func (in *Input) JumpPressed() bool { return in.jump }
func (in *Input) Look() rl.Vector2  { return in.look }

// keyAxes turns four direction keys into a vector, x right and y forward.
func keyAxes(up, down, left, right bool) rl.Vector2 {
	var v rl.Vector2
	if up {
		v.Y++
	}
	if down {
		v.Y--
	}
	if right {
		v.X++
	}
	if left {
		v.X--
	}
	return v
}

// combineMove sums keys and stick and keeps the result inside the unit
// circle.
func combineMove(keys, stick rl.Vector2) rl.Vector2 {
	return rl.Vector2ClampValue(rl.Vector2Add(keys, stick), 0, 1)
}

// combineLook maps a mouse delta in screen pixels, y down, onto the stick
// convention of y up.
func combineLook(mouseDelta, stick rl.Vector2) rl.Vector2 {
	mouse := rl.Vector2{X: mouseDelta.X * mouseScale, Y: -mouseDelta.Y * mouseScale}
	return rl.Vector2Add(mouse, stick)
}

// deadzone zeroes small stick deflections and rescales the rest so output
// starts at 0 on the deadzone edge.
func deadzone(v rl.Vector2, zone float32) rl.Vector2 {
	length := rl.Vector2Length(v)
	if length <= zone {
		return rl.Vector2{}
	}
	scaled := (min(length, 1) - zone) / (1 - zone)
	return rl.Vector2Scale(v, scaled/length)
}
