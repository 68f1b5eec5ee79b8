package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

const componentsDir = "internal/components"

// The generated component is a trigger volume, the usual shape of level
// gameplay scripts. It stops the ball from snapping while inside.
const tmpl = `package components

import "ballance/internal/engine"

// {{.Name}} reacts to bodies inside its trigger volume.
type {{.Name}} struct {
	engine.BaseComponent
	Strength float32
}

func (s *{{.Name}}) OnTriggerEnter(other *engine.GameObject) {}

func (s *{{.Name}}) OnTriggerStay(other *engine.GameObject) {
	if body := engine.GetComponent[*Rigidbody](other); body == nil {
		return
	}
	for _, c := range other.Components() {
		if p, ok := c.(SnapPreventer); ok {
			p.PreventSnapToGround()
		}
	}
}

func (s *{{.Name}}) OnTriggerExit(other *engine.GameObject) {}

func init() {
	engine.RegisterScript("{{.Name}}", {{.Lower}}Factory, {{.Lower}}Serializer)
}

func {{.Lower}}Factory(props map[string]any) engine.Component {
	p := engine.Props(props)
	return &{{.Name}}{Strength: p.Float("strength", 1)}
}

func {{.Lower}}Serializer(c engine.Component) map[string]any {
	s, ok := c.(*{{.Name}})
	if !ok {
		return nil
	}
	return map[string]any{
		"strength": s.Strength,
	}
}
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: go run ./cmd/newscript <ScriptName>\n")
		fmt.Fprintf(os.Stderr, "Example: go run ./cmd/newscript BouncePad\n")
		os.Exit(1)
	}

	name := os.Args[1]
	if err := validName(name); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	outPath := filepath.Join(componentsDir, toSnakeCase(name)+".go")
	if _, err := os.Stat(outPath); err == nil {
		fmt.Fprintf(os.Stderr, "Error: %s already exists\n", outPath)
		os.Exit(1)
	}

	if err := os.WriteFile(outPath, []byte(render(name)), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Created %s\n", outPath)
	fmt.Printf("Script \"%s\" registered. Add it to a trigger object:\n\n", name)
	fmt.Printf("  {\n")
	fmt.Printf("    \"type\": \"Script\",\n")
	fmt.Printf("    \"name\": \"%s\",\n", name)
	fmt.Printf("    \"props\": { \"strength\": 1.0 }\n")
	fmt.Printf("  }\n")
}

func validName(name string) error {
	if name == "" || !unicode.IsUpper(rune(name[0])) {
		return fmt.Errorf("script name must start with an uppercase letter")
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return fmt.Errorf("script name %q must be a Go identifier", name)
		}
	}
	return nil
}

func render(name string) string {
	lower := string(unicode.ToLower(rune(name[0]))) + name[1:]
	content := strings.ReplaceAll(tmpl, "{{.Name}}", name)
	return strings.ReplaceAll(content, "{{.Lower}}", lower)
}

func toSnakeCase(s string) string {
	var result []rune
	for i, r := range s {
		if unicode.IsUpper(r) && i > 0 {
			result = append(result, '_')
		}
		result = append(result, unicode.ToLower(r))
	}
	return string(result)
}
