package components

import (
	"ballance/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterScript("BallMovement", ballMovementFactory, ballMovementSerializer)
	engine.RegisterScript("OrbitCamera", orbitCameraFactory, orbitCameraSerializer)
	engine.RegisterScript("AccelerationZone", accelerationZoneFactory, accelerationZoneSerializer)
	engine.RegisterScript("Activation", activationFactory, activationSerializer)
	engine.RegisterScript("MaterialSelector", materialSelectorFactory, materialSelectorSerializer)
	engine.RegisterScript("PlatformMover", platformMoverFactory, platformMoverSerializer)
}

func ballMovementFactory(props map[string]any) engine.Component {
	p := engine.Props(props)
	b := NewBallMovement()
	b.InputSpace = p.String("inputSpace", "")
	b.Ball = p.String("ball", "")
	return b
}

func ballMovementSerializer(c engine.Component) map[string]any {
	b, ok := c.(*BallMovement)
	if !ok {
		return nil
	}
	return map[string]any{
		"inputSpace": b.InputSpace,
		"ball":       b.Ball,
	}
}

func orbitCameraFactory(props map[string]any) engine.Component {
	p := engine.Props(props)
	o := NewOrbitCamera()
	o.Focus = p.String("focus", "")
	o.FOV = p.Float("fov", o.FOV)
	o.orbitAngles = rl.Vector2{
		X: p.Float("pitch", o.orbitAngles.X),
		Y: p.Float("yaw", o.orbitAngles.Y),
	}
	return o
}

func orbitCameraSerializer(c engine.Component) map[string]any {
	o, ok := c.(*OrbitCamera)
	if !ok {
		return nil
	}
	return map[string]any{
		"focus": o.Focus,
		"fov":   o.FOV,
		"pitch": o.orbitAngles.X,
		"yaw":   o.orbitAngles.Y,
	}
}

func accelerationZoneFactory(props map[string]any) engine.Component {
	p := engine.Props(props)
	return &AccelerationZone{
		Speed:        p.Float("speed", 10),
		Acceleration: p.Float("acceleration", 0),
	}
}

func accelerationZoneSerializer(c engine.Component) map[string]any {
	z, ok := c.(*AccelerationZone)
	if !ok {
		return nil
	}
	return map[string]any{
		"speed":        z.Speed,
		"acceleration": z.Acceleration,
	}
}

func activationFactory(props map[string]any) engine.Component {
	p := engine.Props(props)
	return &Activation{
		OnEnterScript: p.String("onEnter", ""),
		OnLeaveScript: p.String("onLeave", ""),
	}
}

func activationSerializer(c engine.Component) map[string]any {
	a, ok := c.(*Activation)
	if !ok {
		return nil
	}
	return map[string]any{
		"onEnter": a.OnEnterScript,
		"onLeave": a.OnLeaveScript,
	}
}

func materialSelectorFactory(props map[string]any) engine.Component {
	p := engine.Props(props)
	m := &MaterialSelector{}
	for _, name := range p.Strings("materials") {
		m.Materials = append(m.Materials, LookupColor(name))
	}
	return m
}

func materialSelectorSerializer(c engine.Component) map[string]any {
	m, ok := c.(*MaterialSelector)
	if !ok {
		return nil
	}
	names := make([]string, len(m.Materials))
	for i, color := range m.Materials {
		names[i] = ColorName(color)
	}
	return map[string]any{"materials": names}
}

func platformMoverFactory(props map[string]any) engine.Component {
	p := engine.Props(props)
	axis := p.Vector3("rotationAxis", [3]float32{0, 1, 0})
	return &PlatformMover{
		RotationAxis:   rl.Vector3{X: axis[0], Y: axis[1], Z: axis[2]},
		RotationSpeed:  p.Float("rotationSpeed", 0),
		MovementRadius: p.Float("movementRadius", 0),
		MovementSpeed:  p.Float("movementSpeed", 1),
		BobHeight:      p.Float("bobHeight", 0),
		Phase:          p.Float("phase", 0),
	}
}

func platformMoverSerializer(c engine.Component) map[string]any {
	m, ok := c.(*PlatformMover)
	if !ok {
		return nil
	}
	return map[string]any{
		"rotationAxis":   [3]float32{m.RotationAxis.X, m.RotationAxis.Y, m.RotationAxis.Z},
		"rotationSpeed":  m.RotationSpeed,
		"movementRadius": m.MovementRadius,
		"movementSpeed":  m.MovementSpeed,
		"bobHeight":      m.BobHeight,
		"phase":          m.Phase,
	}
}
