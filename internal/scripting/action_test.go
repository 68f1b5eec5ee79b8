package scripting

import (
	"errors"
	"strings"
	"testing"
)

type call struct {
	fn     string
	object string
	arg    any
}

type fakeHost struct {
	calls []call
	logs  []string
	err   error
}

func (h *fakeHost) SelectMaterial(object string, index int) error {
	h.calls = append(h.calls, call{"select_material", object, index})
	return h.err
}

func (h *fakeHost) PreventSnap(object string) error {
	h.calls = append(h.calls, call{"prevent_snap", object, nil})
	return h.err
}

func (h *fakeHost) SetActive(object string, active bool) error {
	h.calls = append(h.calls, call{"set_active", object, active})
	return h.err
}

func (h *fakeHost) Log(msg string) {
	h.logs = append(h.logs, msg)
}

func TestCompileError(t *testing.T) {
	_, err := Compile("broken", `select_material("Sign", `)
	if err == nil {
		t.Fatal("Expected compile error")
	}
	if !strings.Contains(err.Error(), "broken") {
		t.Errorf("Expected error to name the script, got %q", err.Error())
	}
}

func TestRunSelectMaterial(t *testing.T) {
	action, err := Compile("enter", `select_material("Sign", 1)`)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	host := &fakeHost{}
	if err := action.Run(host, "Ball"); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(host.calls) != 1 {
		t.Fatalf("Expected 1 call, got %d", len(host.calls))
	}
	want := call{"select_material", "Sign", 1}
	if host.calls[0] != want {
		t.Errorf("Expected %v, got %v", want, host.calls[0])
	}
}

func TestRunUsesOther(t *testing.T) {
	action, err := Compile("enter", `
prevent_snap(other)
set_active("Door", false)
log("entered by", other)
`)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	host := &fakeHost{}
	if err := action.Run(host, "Ball"); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(host.calls) != 2 {
		t.Fatalf("Expected 2 calls, got %d", len(host.calls))
	}
	if host.calls[0] != (call{"prevent_snap", "Ball", nil}) {
		t.Errorf("Unexpected first call %v", host.calls[0])
	}
	if host.calls[1] != (call{"set_active", "Door", false}) {
		t.Errorf("Unexpected second call %v", host.calls[1])
	}
	if len(host.logs) != 1 || host.logs[0] != "entered by Ball" {
		t.Errorf("Expected log 'entered by Ball', got %v", host.logs)
	}
}

func TestRunTwice(t *testing.T) {
	action, err := Compile("leave", `log(other)`)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	host := &fakeHost{}
	_ = action.Run(host, "A")
	_ = action.Run(host, "B")

	if len(host.logs) != 2 || host.logs[0] != "A" || host.logs[1] != "B" {
		t.Errorf("Expected logs [A B], got %v", host.logs)
	}
}

func TestRunWrongArguments(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"missing index", `select_material("Sign")`},
		{"index not int", `select_material("Sign", "one")`},
		{"object not string", `prevent_snap(3)`},
		{"object name not string", `set_active(1, true)`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, err := Compile(tt.name, tt.src)
			if err != nil {
				t.Fatalf("Compile failed: %v", err)
			}
			host := &fakeHost{}
			if err := action.Run(host, "Ball"); err == nil {
				t.Error("Expected runtime error")
			}
			if len(host.calls) != 0 {
				t.Errorf("Host should not be called, got %v", host.calls)
			}
		})
	}
}

func TestRunHostError(t *testing.T) {
	action, err := Compile("enter", `select_material("Missing", 0)`)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	hostErr := errors.New("no object named Missing")
	err = action.Run(&fakeHost{err: hostErr}, "Ball")
	if err == nil {
		t.Fatal("Expected host error to surface")
	}
	if !strings.Contains(err.Error(), "no object named Missing") {
		t.Errorf("Expected host error text, got %q", err.Error())
	}
}

func TestRunStdlibImport(t *testing.T) {
	action, err := Compile("math", `
math := import("math")
select_material("Sign", math.abs(-2.0))
`)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	host := &fakeHost{}
	if err := action.Run(host, ""); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(host.calls) != 1 || host.calls[0].arg != 2 {
		t.Errorf("Expected select_material index 2, got %v", host.calls)
	}
}

func TestOSModuleUnavailable(t *testing.T) {
	if _, err := Compile("os", `os := import("os")`); err == nil {
		t.Error("Expected os import to fail")
	}
}

func TestRunNilAction(t *testing.T) {
	var action *Action
	if err := action.Run(&fakeHost{}, ""); err == nil {
		t.Error("Expected error from nil action")
	}
}
