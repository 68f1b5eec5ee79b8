package components

import (
	"log"

	"ballance/internal/engine"
	"ballance/internal/scripting"
)

// Activation is a trigger that fires events when a body enters or leaves
// it. Listeners are Go callbacks; OnEnterScript and OnLeaveScript are tengo
// actions run after them.
type Activation struct {
	engine.BaseComponent
	OnEnter       engine.Event
	OnLeave       engine.Event
	OnEnterScript string
	OnLeaveScript string

	enter *scripting.Action
	leave *scripting.Action
}

func (a *Activation) Start() {
	name := a.GetGameObject().Name
	a.enter = compileAction(name+".onEnter", a.OnEnterScript)
	a.leave = compileAction(name+".onLeave", a.OnLeaveScript)
}

func compileAction(name, src string) *scripting.Action {
	if src == "" {
		return nil
	}
	action, err := scripting.Compile(name, src)
	if err != nil {
		log.Printf("Activation: %v", err)
		return nil
	}
	return action
}

func (a *Activation) OnTriggerEnter(other *engine.GameObject) {
	if engine.GetComponent[*Rigidbody](other) == nil {
		return
	}
	a.OnEnter.Invoke()
	a.run(a.enter, other)
}

func (a *Activation) OnTriggerStay(other *engine.GameObject) {}

func (a *Activation) OnTriggerExit(other *engine.GameObject) {
	if engine.GetComponent[*Rigidbody](other) == nil {
		return
	}
	a.OnLeave.Invoke()
	a.run(a.leave, other)
}

func (a *Activation) run(action *scripting.Action, other *engine.GameObject) {
	if action == nil {
		return
	}
	if err := action.Run(sceneHost{a.GetGameObject().Scene}, other.Name); err != nil {
		log.Printf("Activation: %v", err)
	}
}
