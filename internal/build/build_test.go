package build

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/razen-core/rynex/internal/config"
)

// testProject writes a minimal project tree and returns its loaded config.
func testProject(t *testing.T, publicFiles map[string]string) *config.Config {
	t.Helper()
	dir := t.TempDir()

	if err := os.MkdirAll(filepath.Join(dir, "app"), 0755); err != nil {
		t.Fatal(err)
	}
	for name, content := range publicFiles {
		path := filepath.Join(dir, "public", filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	cfg := config.New()
	if err := cfg.SaveTo(filepath.Join(dir, config.ConfigFileName)); err != nil {
		t.Fatal(err)
	}
	loaded, err := config.Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	return loaded
}

func TestHashFile(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.txt")

	if err := os.WriteFile(testFile, []byte("hello world"), 0644); err != nil {
		t.Fatal(err)
	}

	hash, err := hashFile(testFile)
	if err != nil {
		t.Fatalf("hashFile error: %v", err)
	}
	if len(hash) != 64 { // SHA256 produces 64 hex characters
		t.Errorf("Hash length = %d, want 64", len(hash))
	}

	hash2, _ := hashFile(testFile)
	if hash != hash2 {
		t.Error("Hash should be consistent")
	}

	os.WriteFile(testFile, []byte("different content"), 0644)
	hash3, _ := hashFile(testFile)
	if hash == hash3 {
		t.Error("Different content should produce different hash")
	}
}

func TestHashFileNotFound(t *testing.T) {
	if _, err := hashFile(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestBuildCopiesAssetsWithHashes(t *testing.T) {
	cfg := testProject(t, map[string]string{
		"logo.png":       "png-bytes",
		"css/styles.css": "body{}",
	})

	builder := New(cfg, Options{SkipCompile: true})
	result, err := builder.Build(context.Background())
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	if result.AssetCount != 2 {
		t.Errorf("AssetCount = %d, want 2", result.AssetCount)
	}

	// Manifest entries point at hashed output names.
	out, ok := result.Manifest["logo.png"]
	if !ok {
		t.Fatalf("manifest missing logo.png: %v", result.Manifest)
	}
	if !strings.HasPrefix(out, "assets/logo.") || !strings.HasSuffix(out, ".png") {
		t.Errorf("manifest entry = %q, want hashed assets/logo.*.png", out)
	}

	// The hashed file exists on disk.
	hashed := filepath.Join(cfg.OutputPath(), filepath.FromSlash(out))
	if _, err := os.Stat(hashed); err != nil {
		t.Errorf("hashed asset missing: %v", err)
	}

	// manifest.json round-trips.
	data, err := os.ReadFile(filepath.Join(cfg.OutputPath(), "manifest.json"))
	if err != nil {
		t.Fatalf("manifest.json missing: %v", err)
	}
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("manifest.json invalid: %v", err)
	}
	if m["logo.png"] != out {
		t.Errorf("manifest.json[logo.png] = %q, want %q", m["logo.png"], out)
	}
}

func TestBuildWithoutHashing(t *testing.T) {
	cfg := testProject(t, map[string]string{"logo.png": "png-bytes"})
	cfg.Build.HashAssets = false

	result, err := New(cfg, Options{SkipCompile: true}).Build(context.Background())
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if result.Manifest["logo.png"] != "assets/logo.png" {
		t.Errorf("manifest = %v, want unhashed name", result.Manifest)
	}
}

func TestBuildMissingSource(t *testing.T) {
	dir := t.TempDir()
	cfg := config.New()
	if err := cfg.SaveTo(filepath.Join(dir, config.ConfigFileName)); err != nil {
		t.Fatal(err)
	}
	loaded, err := config.Load(dir)
	if err != nil {
		t.Fatal(err)
	}

	_, err = New(loaded, Options{SkipCompile: true}).Build(context.Background())
	if err == nil {
		t.Fatal("Expected error for missing source directory")
	}
	if !strings.Contains(err.Error(), "RX301") {
		t.Errorf("error = %v, want RX301", err)
	}
}

func TestBuildCleansPreviousOutput(t *testing.T) {
	cfg := testProject(t, map[string]string{"logo.png": "png-bytes"})

	stale := filepath.Join(cfg.OutputPath(), "stale.txt")
	if err := os.MkdirAll(cfg.OutputPath(), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(stale, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := New(cfg, Options{SkipCompile: true}).Build(context.Background()); err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Error("stale output should be removed")
	}
}

func TestClean(t *testing.T) {
	cfg := testProject(t, nil)
	if err := os.MkdirAll(cfg.OutputPath(), 0755); err != nil {
		t.Fatal(err)
	}

	if err := New(cfg, Options{}).Clean(); err != nil {
		t.Fatalf("Clean error: %v", err)
	}
	if _, err := os.Stat(cfg.OutputPath()); !os.IsNotExist(err) {
		t.Error("output directory should be removed")
	}
}
