package engine

import (
	"fmt"
	"sort"
)

// ScriptFactory creates a Component from JSON props.
type ScriptFactory func(props map[string]any) Component

// ScriptSerializer converts a Component back to props for JSON saving.
// It returns nil for components it does not own.
type ScriptSerializer func(c Component) map[string]any

type scriptEntry struct {
	factory    ScriptFactory
	serializer ScriptSerializer
}

var scriptRegistry = map[string]scriptEntry{}

// RegisterScript registers a named script with a factory and optional serializer.
// The serializer is used when saving the scene back to JSON.
func RegisterScript(name string, factory ScriptFactory, serializer ScriptSerializer) {
	if _, exists := scriptRegistry[name]; exists {
		panic(fmt.Sprintf("script %q already registered", name))
	}
	scriptRegistry[name] = scriptEntry{factory: factory, serializer: serializer}
}

// CreateScript looks up a registered script by name and creates it with the given props.
func CreateScript(name string, props map[string]any) Component {
	entry, ok := scriptRegistry[name]
	if !ok {
		return nil
	}
	if props == nil {
		props = map[string]any{}
	}
	return entry.factory(props)
}

// SerializeScript tries to serialize a component by checking all registered scripts.
// Returns (name, props, true) if found, ("", nil, false) otherwise.
func SerializeScript(c Component) (string, map[string]any, bool) {
	for name, entry := range scriptRegistry {
		if entry.serializer == nil {
			continue
		}
		if props := entry.serializer(c); props != nil {
			return name, props, true
		}
	}
	return "", nil, false
}

// RegisteredScripts returns the registered script names in sorted order.
func RegisteredScripts() []string {
	names := make([]string, 0, len(scriptRegistry))
	for name := range scriptRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Props wraps script props decoded from JSON, where numbers are float64.
type Props map[string]any

func (p Props) Float(key string, fallback float32) float32 {
	if v, ok := p[key].(float64); ok {
		return float32(v)
	}
	return fallback
}

func (p Props) Int(key string, fallback int) int {
	if v, ok := p[key].(float64); ok {
		return int(v)
	}
	return fallback
}

func (p Props) Bool(key string, fallback bool) bool {
	if v, ok := p[key].(bool); ok {
		return v
	}
	return fallback
}

func (p Props) String(key string, fallback string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return fallback
}

// Vector3 reads a three element array.
func (p Props) Vector3(key string, fallback [3]float32) [3]float32 {
	arr, ok := p[key].([]any)
	if !ok || len(arr) != 3 {
		return fallback
	}
	var out [3]float32
	for i, v := range arr {
		f, ok := v.(float64)
		if !ok {
			return fallback
		}
		out[i] = float32(f)
	}
	return out
}

// Strings reads an array of strings, skipping other values.
func (p Props) Strings(key string) []string {
	arr, ok := p[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, v := range arr {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
