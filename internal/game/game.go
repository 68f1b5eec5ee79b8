package game

import (
	"fmt"
	"log"
	"time"

	"ballance/internal/config"
	"ballance/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Game struct {
	World    *world.World
	Renderer *world.Renderer
	Input    *Input
	Panel    *TuningPanel
	Profile  config.Profile

	// TuningPath is where the panel saves the profile. Empty disables saving.
	TuningPath string
	// Watcher, when set, delivers reloaded profiles between frames.
	Watcher *config.Watcher

	DebugMode bool

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
	steps    int
}

// New wires the input to the scene's ball and camera and applies profile.
func New(w *world.World, profile config.Profile) *Game {
	g := &Game{
		World:    w,
		Renderer: world.NewRenderer(),
		Input:    NewInput(),
		Panel:    NewTuningPanel(),
	}
	if ball := w.Player(); ball != nil {
		ball.Input = g.Input
	} else {
		log.Println("Game: scene has no BallMovement")
	}
	if cam := w.Camera(); cam != nil {
		cam.Look = g.Input
	} else {
		log.Println("Game: scene has no OrbitCamera")
	}
	g.ApplyProfile(profile)
	return g
}

// ApplyProfile clamps profile and pushes it into the ball, the camera and the
// world clock.
func (g *Game) ApplyProfile(profile config.Profile) {
	for _, msg := range profile.Clamp() {
		log.Printf("Game: tuning %s", msg)
	}
	g.Profile = profile
	if ball := g.World.Player(); ball != nil {
		ball.SetConfig(profile.Ball)
	}
	if cam := g.World.Camera(); cam != nil {
		cam.SetSettings(profile.Camera)
	}
	g.World.SetSettings(profile.World)
}

// pollWatcher applies every profile the watcher has queued since the last
// frame.
func (g *Game) pollWatcher() {
	if g.Watcher == nil {
		return
	}
	for {
		select {
		case p, ok := <-g.Watcher.Profiles:
			if !ok {
				g.Watcher = nil
				return
			}
			g.ApplyProfile(p)
		case err := <-g.Watcher.Errors:
			log.Printf("Game: tuning reload: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Run(title string, fps int32) {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(1280, 720, title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(fps)
	rl.DisableCursor()

	g.World.Start()
	defer g.World.Unload()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
}

func (g *Game) Update() {
	updateStart := time.Now()
	g.pollWatcher()

	if rl.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.togglePanel()
	}

	g.Input.Poll()
	g.steps = g.World.Update(rl.GetFrameTime())

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (g *Game) togglePanel() {
	g.Panel.Visible = !g.Panel.Visible
	g.Input.MouseLook = !g.Panel.Visible
	if g.Panel.Visible {
		rl.EnableCursor()
	} else {
		rl.DisableCursor()
	}
}

func (g *Game) Draw() {
	cam := g.World.Camera()
	if cam == nil {
		return
	}

	rl.BeginDrawing()
	drawStart := time.Now()
	g.Renderer.Draw(cam.Camera3D(), g.World.Scene)
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.DrawUI()
	rl.EndDrawing()
}

func (g *Game) DrawUI() {
	rl.DrawText("WASD to roll, Space to jump, Mouse to orbit", 10, 10, 20, rl.DarkGray)
	rl.DrawText("Tab for tuning, F1 for debug view", 10, 35, 20, rl.DarkGray)
	rl.DrawFPS(10, 60)

	if ball := g.World.Player(); ball != nil {
		edited, changed, save := g.Panel.Draw(ball.Config)
		if changed {
			ball.SetConfig(edited)
			g.Profile.Ball = ball.Config
		}
		if save {
			g.saveProfile()
		}
	}

	if g.DebugMode {
		g.drawDebug()
	}
}

func (g *Game) saveProfile() {
	if g.TuningPath == "" {
		log.Println("Game: no tuning file to save to")
		return
	}
	if err := config.Save(g.TuningPath, g.Profile); err != nil {
		log.Printf("Game: %v", err)
		return
	}
	log.Printf("Game: saved tuning to %s", g.TuningPath)
}

func (g *Game) drawDebug() {
	y := int32(85)
	line := func(color rl.Color, format string, args ...any) {
		rl.DrawText(fmt.Sprintf(format, args...), 10, y, 16, color)
		y += 20
	}

	if ball := g.World.Player(); ball != nil && ball.Controller() != nil {
		c := ball.Controller()
		v := c.Velocity()
		state := "air"
		if c.IsGrounded() {
			state = "ground"
		} else if c.IsOnSteep() {
			state = "steep"
		}
		jumps := c.JumpState()
		line(rl.Yellow, "Velocity: (%.2f, %.2f, %.2f) %.2f m/s", v.X, v.Y, v.Z, rl.Vector3Length(v))
		line(rl.Yellow, "State: %s  since grounded %d  since jump %d", state, jumps.StepsSinceGrounded, jumps.StepsSinceJump)
		line(rl.Yellow, "Last jump: %v", c.LastJump())
	}

	line(rl.Green, "Update: %.2f ms (%d steps)", g.updateMs, g.steps)
	line(rl.Green, "Draw:   %.2f ms (%d drawn, %d culled)", g.drawMs, g.Renderer.Drawn, g.Renderer.Culled)
	line(rl.Lime, "Total:  %.2f ms", g.updateMs+g.drawMs)
}
