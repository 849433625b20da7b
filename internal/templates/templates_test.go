package templates

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"minimal", false},
		{"counter", false},
		{"nonexistent", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := Get(tt.name)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error")
				}
				return
			}
			if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
			if tmpl == nil {
				t.Fatal("Template should not be nil")
			}
			if tmpl.Name != tt.name {
				t.Errorf("Name = %q, want %q", tmpl.Name, tt.name)
			}
		})
	}
}

func TestList(t *testing.T) {
	names := List()

	expected := map[string]bool{
		"minimal": false,
		"counter": false,
	}
	for _, name := range names {
		if _, ok := expected[name]; ok {
			expected[name] = true
		}
	}
	for name, found := range expected {
		if !found {
			t.Errorf("Template %q not found in list", name)
		}
	}
}

func TestCreateMinimal(t *testing.T) {
	tmpDir := t.TempDir()

	tmpl, _ := Get("minimal")
	cfg := Config{
		ProjectName: "test-app",
		ModulePath:  "github.com/test/test-app",
		Description: "A test application",
	}

	if err := tmpl.Create(tmpDir, cfg); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	for _, f := range []string{"main.go", "rynex.json", "public/styles.css", "go.mod"} {
		if _, err := os.Stat(filepath.Join(tmpDir, filepath.FromSlash(f))); err != nil {
			t.Errorf("missing %s: %v", f, err)
		}
	}

	// Template variables are substituted.
	mainGo, err := os.ReadFile(filepath.Join(tmpDir, "main.go"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(mainGo), "Welcome to test-app") {
		t.Error("main.go should contain the project name")
	}
	if strings.Contains(string(mainGo), "{{") {
		t.Error("main.go should not contain unexpanded template syntax")
	}

	goMod, err := os.ReadFile(filepath.Join(tmpDir, "go.mod"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(goMod), "module github.com/test/test-app") {
		t.Error("go.mod should contain the module path")
	}
}

func TestCreateCounter(t *testing.T) {
	tmpDir := t.TempDir()

	tmpl, _ := Get("counter")
	if err := tmpl.Create(tmpDir, Config{ProjectName: "counter-app", ModulePath: "example.com/counter"}); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	mainGo, err := os.ReadFile(filepath.Join(tmpDir, "main.go"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(mainGo), "reactive.NewReactive") {
		t.Error("counter template should use reactive state")
	}
	if !strings.Contains(string(mainGo), "vdom.DynText") {
		t.Error("counter template should use a dynamic text binding")
	}
}
