package components

import (
	"fmt"
	"log"

	"ballance/internal/engine"
)

// sceneHost lets activator scripts act on the objects of a scene.
type sceneHost struct {
	scene *engine.Scene
}

func (h sceneHost) find(name string) (*engine.GameObject, error) {
	if h.scene == nil {
		return nil, fmt.Errorf("no scene")
	}
	obj := h.scene.FindByName(name)
	if obj == nil {
		return nil, fmt.Errorf("no object named %q", name)
	}
	return obj, nil
}

func (h sceneHost) SelectMaterial(object string, index int) error {
	obj, err := h.find(object)
	if err != nil {
		return err
	}
	selector := engine.GetComponent[*MaterialSelector](obj)
	if selector == nil {
		return fmt.Errorf("%s has no MaterialSelector", object)
	}
	selector.Select(index)
	return nil
}

func (h sceneHost) PreventSnap(object string) error {
	obj, err := h.find(object)
	if err != nil {
		return err
	}
	for _, c := range obj.Components() {
		if s, ok := c.(SnapPreventer); ok {
			s.PreventSnapToGround()
		}
	}
	return nil
}

func (h sceneHost) SetActive(object string, active bool) error {
	obj, err := h.find(object)
	if err != nil {
		return err
	}
	obj.Active = active
	return nil
}

func (h sceneHost) Log(msg string) {
	log.Printf("Script: %s", msg)
}
