package config

import (
	"fmt"
	"os"

	"ballance/internal/components"
	"ballance/internal/locomotion"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// Profile is one tuning file: the ball, the camera following it and the
// physics clock.
type Profile struct {
	Ball   locomotion.Config        `yaml:"ball"`
	Camera components.OrbitSettings `yaml:"camera"`
	World  WorldSettings            `yaml:"world"`
}

type WorldSettings struct {
	Gravity   rl.Vector3 `yaml:"gravity"`
	FixedStep float32    `yaml:"fixed_step"` // seconds, [1/240, 1/20]
	MaxSteps  int        `yaml:"max_steps"`  // [1, 20] physics steps per frame
}

func Default() Profile {
	return Profile{
		Ball:   locomotion.DefaultConfig(),
		Camera: components.DefaultOrbitSettings(),
		World: WorldSettings{
			Gravity:   rl.Vector3{Y: -9.81},
			FixedStep: 1.0 / 50,
			MaxSteps:  5,
		},
	}
}

// Clamp corrects every section and returns the adjustments, prefixed with
// the section name.
func (p *Profile) Clamp() []string {
	var adjusted []string
	for _, msg := range p.Ball.Clamp() {
		adjusted = append(adjusted, "ball: "+msg)
	}
	for _, msg := range p.Camera.Clamp() {
		adjusted = append(adjusted, "camera: "+msg)
	}

	w := &p.World
	if w.FixedStep < 1.0/240 || w.FixedStep > 1.0/20 {
		old := w.FixedStep
		w.FixedStep = min(max(w.FixedStep, 1.0/240), 1.0/20)
		adjusted = append(adjusted, fmt.Sprintf("world: fixed_step %g clamped to %g", old, w.FixedStep))
	}
	if w.MaxSteps < 1 || w.MaxSteps > 20 {
		old := w.MaxSteps
		w.MaxSteps = min(max(w.MaxSteps, 1), 20)
		adjusted = append(adjusted, fmt.Sprintf("world: max_steps %d clamped to %d", old, w.MaxSteps))
	}
	return adjusted
}

// LoadFile decodes a YAML file over fallback, so keys missing from the file
// keep their fallback values.
func LoadFile[T any](filename string, fallback T) (T, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fallback, fmt.Errorf("config: load %s: %w", filename, err)
	}

	spec := fallback
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return fallback, fmt.Errorf("config: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

// Load reads a tuning profile on top of Default. The result is not clamped.
func Load(filename string) (Profile, error) {
	return LoadFile(filename, Default())
}

func Save(filename string, p Profile) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("config: marshal %s: %w", filename, err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("config: save %s: %w", filename, err)
	}
	return nil
}
