package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// AllLayers is the raycast mask matching every layer.
const AllLayers uint32 = 0xFFFFFFFF

// RaycastResult holds information about a raycast hit.
// Defined here to avoid circular imports with physics package.
type RaycastResult struct {
	GameObject *GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// WorldAccess provides components with access to world-level operations
// without creating circular import dependencies.
type WorldAccess interface {
	Gravity() rl.Vector3
	// FixedDeltaTime is the length of one physics step in seconds.
	FixedDeltaTime() float32
	// Raycast returns the nearest non-trigger collider along the ray whose
	// layer is in mask. Colliders containing origin are ignored.
	Raycast(origin, direction rl.Vector3, maxDistance float32, mask uint32) (RaycastResult, bool)
}
