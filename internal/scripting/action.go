// Package scripting runs the small tengo programs attached to activators.
package scripting

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Host is the part of the game an action can reach. Objects are addressed
// by name.
type Host interface {
	SelectMaterial(object string, index int) error
	PreventSnap(object string) error
	SetActive(object string, active bool) error
	Log(msg string)
}

// modules scripts may import. os is not among them.
var modules = []string{"math", "text", "times", "fmt", "enum", "json"}

// prelude binds the host functions to plain names before the user code.
const prelude = `
select_material := __host.select_material
prevent_snap := __host.prevent_snap
set_active := __host.set_active
log := __host.log
other := __other
`

// Action is a compiled activator script.
type Action struct {
	Name     string
	compiled *tengo.Compiled
}

// Compile parses and compiles src. name only labels errors.
func Compile(name, src string) (*Action, error) {
	script := tengo.NewScript([]byte(prelude + "\n" + src))
	_ = script.Add("__host", map[string]any{})
	_ = script.Add("__other", "")
	script.SetImports(stdlib.GetModuleMap(modules...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("scripting: compile %s: %w", name, err)
	}
	return &Action{Name: name, compiled: compiled}, nil
}

// Run executes the action once. other is the name of the object that
// caused it.
func (a *Action) Run(host Host, other string) error {
	if a == nil || a.compiled == nil {
		return fmt.Errorf("scripting: nil action")
	}
	if err := a.compiled.Set("__host", hostObject(host)); err != nil {
		return fmt.Errorf("scripting: %s: %w", a.Name, err)
	}
	if err := a.compiled.Set("__other", other); err != nil {
		return fmt.Errorf("scripting: %s: %w", a.Name, err)
	}
	if err := a.compiled.Run(); err != nil {
		return fmt.Errorf("scripting: run %s: %w", a.Name, err)
	}
	return nil
}

func hostObject(host Host) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["select_material"] = &tengo.UserFunction{Name: "select_material", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 2 {
			return nil, tengo.ErrWrongNumArguments
		}
		name, err := stringArg("object", args[0])
		if err != nil {
			return nil, err
		}
		index, ok := tengo.ToInt(args[1])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "index", Expected: "int", Found: args[1].TypeName()}
		}
		if err := host.SelectMaterial(name, index); err != nil {
			return nil, err
		}
		return tengo.UndefinedValue, nil
	}}

	values["prevent_snap"] = &tengo.UserFunction{Name: "prevent_snap", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 1 {
			return nil, tengo.ErrWrongNumArguments
		}
		name, err := stringArg("object", args[0])
		if err != nil {
			return nil, err
		}
		if err := host.PreventSnap(name); err != nil {
			return nil, err
		}
		return tengo.UndefinedValue, nil
	}}

	values["set_active"] = &tengo.UserFunction{Name: "set_active", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 2 {
			return nil, tengo.ErrWrongNumArguments
		}
		name, err := stringArg("object", args[0])
		if err != nil {
			return nil, err
		}
		active, ok := tengo.ToBool(args[1])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "active", Expected: "bool", Found: args[1].TypeName()}
		}
		if err := host.SetActive(name, active); err != nil {
			return nil, err
		}
		return tengo.UndefinedValue, nil
	}}

	values["log"] = &tengo.UserFunction{Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
		parts := make([]string, 0, len(args))
		for _, arg := range args {
			parts = append(parts, objectAsString(arg))
		}
		host.Log(strings.Join(parts, " "))
		return tengo.UndefinedValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func stringArg(name string, obj tengo.Object) (string, error) {
	s, ok := obj.(*tengo.String)
	if !ok {
		return "", tengo.ErrInvalidArgumentType{Name: name, Expected: "string", Found: obj.TypeName()}
	}
	return s.Value, nil
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}
