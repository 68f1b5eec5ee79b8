package components

import (
	"ballance/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MaterialSelector swaps the color of a renderer between a fixed set.
type MaterialSelector struct {
	engine.BaseComponent
	Materials []rl.Color
	Renderer  *ModelRenderer // found on the object or its children when nil
}

func (m *MaterialSelector) Start() {
	if m.Renderer == nil {
		m.Renderer = engine.GetComponentInChildren[*ModelRenderer](m.GetGameObject())
	}
}

// Select applies material index. Out of range indices are ignored.
func (m *MaterialSelector) Select(index int) {
	if m.Renderer == nil || index < 0 || index >= len(m.Materials) {
		return
	}
	m.Renderer.SetColor(m.Materials[index])
}
