package world

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"ballance/internal/components"
	"ballance/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// --- JSON types ---

type SceneFile struct {
	Objects []ObjectDef `json:"objects"`
}

// ObjectDef is one object. Transforms are local to Parent, rotation is
// pitch/yaw/roll in degrees. Parents must come before their children.
type ObjectDef struct {
	Name       string            `json:"name"`
	Parent     string            `json:"parent,omitempty"`
	Tags       []string          `json:"tags,omitempty"`
	Layer      int               `json:"layer,omitempty"`
	Inactive   bool              `json:"inactive,omitempty"`
	Position   [3]float32        `json:"position"`
	Rotation   [3]float32        `json:"rotation"`
	Scale      [3]float32        `json:"scale"`
	Components []json.RawMessage `json:"components"`
}

type componentHeader struct {
	Type string `json:"type"`
}

type modelRendererDef struct {
	Type     string    `json:"type"`
	Mesh     string    `json:"mesh"`
	MeshSize []float32 `json:"meshSize"`
	Color    string    `json:"color"`
	Wires    bool      `json:"wires,omitempty"`
}

type boxColliderDef struct {
	Type      string     `json:"type"`
	Size      [3]float32 `json:"size"`
	Offset    [3]float32 `json:"offset,omitempty"`
	IsTrigger bool       `json:"isTrigger,omitempty"`
}

type sphereColliderDef struct {
	Type      string     `json:"type"`
	Radius    float32    `json:"radius"`
	Offset    [3]float32 `json:"offset,omitempty"`
	IsTrigger bool       `json:"isTrigger,omitempty"`
}

// rigidbodyDef uses pointers where zero is a meaningful value.
type rigidbodyDef struct {
	Type           string   `json:"type"`
	Mass           float32  `json:"mass,omitempty"`
	Bounciness     *float32 `json:"bounciness,omitempty"`
	Friction       *float32 `json:"friction,omitempty"`
	AngularDamping *float32 `json:"angularDamping,omitempty"`
	UseGravity     *bool    `json:"useGravity,omitempty"`
	IsKinematic    bool     `json:"isKinematic,omitempty"`
	FreezeRotation bool     `json:"freezeRotation,omitempty"`
}

type scriptDef struct {
	Type  string         `json:"type"`
	Name  string         `json:"name"`
	Props map[string]any `json:"props,omitempty"`
}

func vec3(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

func array3(v rl.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// --- Loading ---

// LoadScene adds the objects of a scene file to the world. It does not
// start them.
func (w *World) LoadScene(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("scene: read %s: %w", path, err)
	}

	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("scene: parse %s: %w", path, err)
	}

	loaded := make(map[string]*engine.GameObject, len(sf.Objects))
	for _, objDef := range sf.Objects {
		g := engine.NewGameObject(objDef.Name)
		g.Tags = objDef.Tags
		g.Layer = objDef.Layer
		g.Active = !objDef.Inactive
		g.Transform.Position = vec3(objDef.Position)
		g.Transform.SetEuler(vec3(objDef.Rotation))

		// Default scale to 1 if zero
		if objDef.Scale != [3]float32{} {
			g.Transform.Scale = vec3(objDef.Scale)
		}

		if objDef.Parent != "" {
			parent, ok := loaded[objDef.Parent]
			if !ok {
				return fmt.Errorf("scene: %s: parent %q of %s not found", path, objDef.Parent, objDef.Name)
			}
			parent.AddChild(g)
		}

		for _, raw := range objDef.Components {
			if err := loadComponent(g, raw); err != nil {
				return fmt.Errorf("scene: %s: object %s: %w", path, objDef.Name, err)
			}
		}

		loaded[objDef.Name] = g
		w.Add(g)
	}

	return nil
}

func loadComponent(g *engine.GameObject, raw json.RawMessage) error {
	var header componentHeader
	if err := json.Unmarshal(raw, &header); err != nil {
		return err
	}

	switch header.Type {
	case "ModelRenderer":
		var def modelRendererDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return err
		}
		renderer := components.NewModelRenderer(def.Mesh, def.MeshSize, components.LookupColor(def.Color))
		renderer.Wires = def.Wires
		g.AddComponent(renderer)

	case "BoxCollider":
		var def boxColliderDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return err
		}
		col := components.NewBoxCollider(vec3(def.Size))
		col.Offset = vec3(def.Offset)
		col.IsTrigger = def.IsTrigger
		g.AddComponent(col)

	case "SphereCollider":
		var def sphereColliderDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return err
		}
		col := components.NewSphereCollider(def.Radius)
		col.Offset = vec3(def.Offset)
		col.IsTrigger = def.IsTrigger
		g.AddComponent(col)

	case "Rigidbody":
		var def rigidbodyDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return err
		}
		g.AddComponent(newRigidbody(def))

	case "Script":
		var def scriptDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return err
		}
		comp := engine.CreateScript(def.Name, def.Props)
		if comp == nil {
			log.Printf("Scene: unknown script %q on %s, skipped", def.Name, g.Name)
			return nil
		}
		g.AddComponent(comp)

	default:
		log.Printf("Scene: unknown component type %q on %s, skipped", header.Type, g.Name)
	}
	return nil
}

func newRigidbody(def rigidbodyDef) *components.Rigidbody {
	rb := components.NewRigidbody()
	if def.Mass > 0 {
		rb.Mass = def.Mass
	}
	if def.Bounciness != nil {
		rb.Bounciness = *def.Bounciness
	}
	if def.Friction != nil {
		rb.Friction = *def.Friction
	}
	if def.AngularDamping != nil {
		rb.AngularDamping = *def.AngularDamping
	}
	if def.UseGravity != nil {
		rb.UseGravity = *def.UseGravity
	}
	rb.IsKinematic = def.IsKinematic
	rb.FreezeRotation = def.FreezeRotation
	return rb
}

// --- Saving ---

func (w *World) SaveScene(path string) error {
	var sf SceneFile

	for _, g := range w.Scene.GameObjects {
		objDef := ObjectDef{
			Name:     g.Name,
			Tags:     g.Tags,
			Layer:    g.Layer,
			Inactive: !g.Active,
			Position: array3(g.Transform.Position),
			Rotation: array3(g.Transform.Euler()),
			Scale:    array3(g.Transform.Scale),
		}
		if g.Parent != nil {
			objDef.Parent = g.Parent.Name
		}

		for _, c := range g.Components() {
			if raw := serializeComponent(c); raw != nil {
				objDef.Components = append(objDef.Components, raw)
			}
		}

		sf.Objects = append(sf.Objects, objDef)
	}

	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return fmt.Errorf("scene: marshal %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("scene: write %s: %w", path, err)
	}

	return nil
}

func serializeComponent(c engine.Component) json.RawMessage {
	var def any

	switch comp := c.(type) {
	case *components.ModelRenderer:
		def = modelRendererDef{
			Type:     "ModelRenderer",
			Mesh:     comp.MeshType,
			MeshSize: comp.MeshSize,
			Color:    components.ColorName(comp.Color),
			Wires:    comp.Wires,
		}

	case *components.BoxCollider:
		def = boxColliderDef{
			Type:      "BoxCollider",
			Size:      array3(comp.Size),
			Offset:    array3(comp.Offset),
			IsTrigger: comp.IsTrigger,
		}

	case *components.SphereCollider:
		def = sphereColliderDef{
			Type:      "SphereCollider",
			Radius:    comp.Radius,
			Offset:    array3(comp.Offset),
			IsTrigger: comp.IsTrigger,
		}

	case *components.Rigidbody:
		bounciness, friction, damping, useGravity := comp.Bounciness, comp.Friction, comp.AngularDamping, comp.UseGravity
		def = rigidbodyDef{
			Type:           "Rigidbody",
			Mass:           comp.Mass,
			Bounciness:     &bounciness,
			Friction:       &friction,
			AngularDamping: &damping,
			UseGravity:     &useGravity,
			IsKinematic:    comp.IsKinematic,
			FreezeRotation: comp.FreezeRotation,
		}

	default:
		// Try script registry
		if name, props, ok := engine.SerializeScript(c); ok {
			def = scriptDef{Type: "Script", Name: name, Props: props}
		} else {
			return nil
		}
	}

	data, err := json.Marshal(def)
	if err != nil {
		return nil
	}
	return data
}
