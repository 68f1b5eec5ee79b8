package world

import (
	"ballance/internal/components"
	"ballance/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer draws the ModelRenderers of a scene, skipping those outside the
// camera's frustum.
type Renderer struct {
	Background rl.Color
	ShowGrid   bool

	// Drawn and Culled count the renderers of the last frame.
	Drawn  int
	Culled int
}

func NewRenderer() *Renderer {
	return &Renderer{Background: rl.RayWhite, ShowGrid: true}
}

// Draw renders the scene through camera. It must be called between
// rl.BeginDrawing and rl.EndDrawing.
func (r *Renderer) Draw(camera rl.Camera3D, scene *engine.Scene) {
	aspect := float32(rl.GetScreenWidth()) / float32(max(rl.GetScreenHeight(), 1))
	visible := r.Visible(ExtractFrustum(camera, aspect), scene.GameObjects)

	rl.ClearBackground(r.Background)
	rl.BeginMode3D(camera)
	if r.ShowGrid {
		rl.DrawGrid(40, 1)
	}
	for _, renderer := range visible {
		renderer.Draw()
	}
	rl.EndMode3D()
}

// Visible returns the active renderers whose bounds touch the frustum and
// updates Drawn and Culled.
func (r *Renderer) Visible(f Frustum, objects []*engine.GameObject) []*components.ModelRenderer {
	r.Drawn, r.Culled = 0, 0
	var visible []*components.ModelRenderer
	for _, g := range objects {
		renderer := engine.GetComponent[*components.ModelRenderer](g)
		if renderer == nil || !g.ActiveInHierarchy() {
			continue
		}
		if !f.ContainsSphere(g.WorldPosition(), renderer.BoundingRadius()) {
			r.Culled++
			continue
		}
		r.Drawn++
		visible = append(visible, renderer)
	}
	return visible
}
