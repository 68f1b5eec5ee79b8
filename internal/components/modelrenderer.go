package components

import (
	"ballance/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Mesh kinds a ModelRenderer can generate.
const (
	MeshCube   = "cube"
	MeshSphere = "sphere"
	MeshPlane  = "plane"
)

// ModelRenderer draws a generated mesh with a flat color. The GPU model is
// created on first draw, so renderers can be built without a window.
type ModelRenderer struct {
	engine.BaseComponent
	MeshType string
	MeshSize []float32
	Color    rl.Color
	Wires    bool // draw the edges on top, makes rolling visible

	model  rl.Model
	loaded bool
}

func NewModelRenderer(meshType string, meshSize []float32, color rl.Color) *ModelRenderer {
	return &ModelRenderer{
		MeshType: meshType,
		MeshSize: meshSize,
		Color:    color,
	}
}

// SetColor swaps the material color.
func (m *ModelRenderer) SetColor(c rl.Color) {
	m.Color = c
	if m.loaded {
		m.model.Materials.Maps.Color = c
	}
}

// genMesh returns false when MeshSize is too short for MeshType.
func (m *ModelRenderer) genMesh() (rl.Mesh, bool) {
	switch m.MeshType {
	case MeshCube:
		if len(m.MeshSize) >= 3 {
			return rl.GenMeshCube(m.MeshSize[0], m.MeshSize[1], m.MeshSize[2]), true
		}
	case MeshPlane:
		if len(m.MeshSize) >= 2 {
			return rl.GenMeshPlane(m.MeshSize[0], m.MeshSize[1], 1, 1), true
		}
	case MeshSphere:
		if len(m.MeshSize) >= 1 {
			return rl.GenMeshSphere(m.MeshSize[0], 16, 16), true
		}
	}
	return rl.Mesh{}, false
}

func (m *ModelRenderer) load() bool {
	if m.loaded {
		return true
	}
	mesh, ok := m.genMesh()
	if !ok {
		return false
	}
	m.model = rl.LoadModelFromMesh(mesh)
	m.model.Materials.Maps.Color = m.Color
	m.loaded = true
	return true
}

// BoundingRadius is the radius of a sphere around the object's origin that
// holds the whole mesh.
func (m *ModelRenderer) BoundingRadius() float32 {
	var half rl.Vector3
	switch m.MeshType {
	case MeshCube:
		if len(m.MeshSize) >= 3 {
			half = rl.Vector3{X: m.MeshSize[0] / 2, Y: m.MeshSize[1] / 2, Z: m.MeshSize[2] / 2}
		}
	case MeshPlane:
		if len(m.MeshSize) >= 2 {
			half = rl.Vector3{X: m.MeshSize[0] / 2, Z: m.MeshSize[1] / 2}
		}
	case MeshSphere:
		if len(m.MeshSize) >= 1 {
			half = rl.Vector3{X: m.MeshSize[0], Y: m.MeshSize[0], Z: m.MeshSize[0]}
		}
	}
	scale := m.GetGameObject().WorldScale()
	half = rl.Vector3{X: half.X * absf(scale.X), Y: half.Y * absf(scale.Y), Z: half.Z * absf(scale.Z)}
	return rl.Vector3Length(half)
}

// Matrix is the object's world transform: scale, then rotate, then translate.
func (m *ModelRenderer) Matrix() rl.Matrix {
	g := m.GetGameObject()
	scale := g.WorldScale()
	pos := g.WorldPosition()

	scaleMatrix := rl.MatrixScale(scale.X, scale.Y, scale.Z)
	rotMatrix := rl.QuaternionToMatrix(g.WorldRotation())
	transMatrix := rl.MatrixTranslate(pos.X, pos.Y, pos.Z)

	return rl.MatrixMultiply(rl.MatrixMultiply(scaleMatrix, rotMatrix), transMatrix)
}

func (m *ModelRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.ActiveInHierarchy() {
		return
	}
	if !m.load() {
		return
	}

	m.model.Transform = m.Matrix()
	rl.DrawModel(m.model, rl.Vector3Zero(), 1.0, rl.White)
	if m.Wires {
		rl.DrawModelWires(m.model, rl.Vector3Zero(), 1.0, rl.Black)
	}
}

func (m *ModelRenderer) Unload() {
	if m.loaded {
		rl.UnloadModel(m.model)
		m.loaded = false
	}
}
