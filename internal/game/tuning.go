package game

import (
	"fmt"
	"math"

	"ballance/internal/locomotion"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Panel colors
var (
	colorBgPanel   = rl.NewColor(18, 18, 24, 235)
	colorBgElement = rl.NewColor(28, 28, 38, 255)
	colorBgHover   = rl.NewColor(38, 38, 52, 255)
	colorAccent    = rl.NewColor(108, 99, 255, 255)
	colorText      = rl.NewColor(200, 200, 208, 255)
	colorTextLight = rl.NewColor(255, 255, 255, 255)
)

type floatSlider struct {
	label    string
	min, max float32
	field    func(c *locomotion.Config) *float32
}

type intSlider struct {
	label    string
	min, max int
	field    func(c *locomotion.Config) *int
}

// Slider ranges stay inside what Config.Clamp accepts.
var floatSliders = []floatSlider{
	{"Max speed", 0, 15, func(c *locomotion.Config) *float32 { return &c.MaxSpeed }},
	{"Ground accel", 0, 30, func(c *locomotion.Config) *float32 { return &c.AccelerationGround }},
	{"Air accel", 0, 30, func(c *locomotion.Config) *float32 { return &c.AccelerationAir }},
	{"Ground angle", 0, 90, func(c *locomotion.Config) *float32 { return &c.MaxGroundAngle }},
	{"Snap speed", 0, 5, func(c *locomotion.Config) *float32 { return &c.MaxSnapSpeed }},
	{"Probe distance", 0, 5, func(c *locomotion.Config) *float32 { return &c.ProbeDistance }},
	{"Jump height", 0, 10, func(c *locomotion.Config) *float32 { return &c.JumpHeight }},
	{"Air rotation", 0, 2, func(c *locomotion.Config) *float32 { return &c.AirRotation }},
	{"Align speed", 0, 90, func(c *locomotion.Config) *float32 { return &c.AlignSpeed }},
}

var intSliders = []intSlider{
	{"Steep jumps", 0, 5, func(c *locomotion.Config) *int { return &c.MaxSteepJumps }},
	{"Air jumps", 0, 5, func(c *locomotion.Config) *int { return &c.MaxAirJumps }},
}

const (
	panelWidth  = 300
	rowHeight   = 22
	labelWidth  = 110
	valueWidth  = 44
	panelMargin = 10
)

// TuningPanel is a raygui overlay editing a locomotion.Config live.
type TuningPanel struct {
	Visible bool

	styled bool
}

func NewTuningPanel() *TuningPanel {
	return &TuningPanel{}
}

func (p *TuningPanel) style() {
	if p.styled {
		return
	}
	p.styled = true
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgPanel))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorText))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextLight))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextLight))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 14)
}

// Draw shows the panel for cfg and returns the edited copy. changed reports
// whether any control moved; save whether the save button was pressed.
func (p *TuningPanel) Draw(cfg locomotion.Config) (edited locomotion.Config, changed, save bool) {
	edited = cfg
	if !p.Visible {
		return edited, false, false
	}
	p.style()

	rows := len(floatSliders) + len(intSliders) + 3
	x := float32(rl.GetScreenWidth() - panelWidth - panelMargin)
	y := float32(panelMargin)
	rl.DrawRectangle(int32(x), int32(y), panelWidth, int32(rows*rowHeight+2*panelMargin), colorBgPanel)
	rl.DrawRectangleLines(int32(x), int32(y), panelWidth, int32(rows*rowHeight+2*panelMargin), colorAccent)

	x += panelMargin
	y += panelMargin
	sliderWidth := float32(panelWidth - labelWidth - valueWidth - 2*panelMargin)
	row := func() (label, slider rl.Rectangle) {
		label = rl.Rectangle{X: x, Y: y, Width: labelWidth, Height: rowHeight - 4}
		slider = rl.Rectangle{X: x + labelWidth, Y: y, Width: sliderWidth, Height: rowHeight - 4}
		y += rowHeight
		return label, slider
	}

	for _, s := range floatSliders {
		label, bounds := row()
		gui.Label(label, s.label)
		v := s.field(&edited)
		*v = gui.Slider(bounds, "", fmt.Sprintf("%.2f", *v), *v, s.min, s.max)
	}
	for _, s := range intSliders {
		label, bounds := row()
		gui.Label(label, s.label)
		v := s.field(&edited)
		f := gui.Slider(bounds, "", fmt.Sprintf("%d", *v), float32(*v), float32(s.min), float32(s.max))
		*v = int(math.Round(float64(f)))
	}

	_, bounds := row()
	bounds.X = x
	bounds.Width = rowHeight - 4
	edited.SteepJumpReset = gui.CheckBox(bounds, "Steep jump reset", edited.SteepJumpReset)
	_, bounds = row()
	bounds.X = x
	bounds.Width = rowHeight - 4
	edited.AlignBall = gui.CheckBox(bounds, "Align ball", edited.AlignBall)

	_, bounds = row()
	bounds.X = x
	bounds.Width = panelWidth - 2*panelMargin
	save = gui.Button(bounds, "Save profile")

	return edited, edited != cfg, save
}
