package dev

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherBasic(t *testing.T) {
	tmpDir := t.TempDir()

	testFile := filepath.Join(tmpDir, "main.go")
	if err := os.WriteFile(testFile, []byte("package main"), 0644); err != nil {
		t.Fatal(err)
	}

	watcher := NewWatcher(WatcherConfig{
		Paths:    []string{tmpDir},
		Debounce: 50 * time.Millisecond,
	})

	changes := make(chan Change, 10)
	watcher.OnChange(func(c Change) {
		changes <- c
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go watcher.Start(ctx)

	// Wait for the initial scan.
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(testFile, []byte("package main\n\nfunc main() {}"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case change := <-changes:
		if change.Type != ChangeSource {
			t.Errorf("Expected source change, got %v", change.Type)
		}
		if change.Path != testFile {
			t.Errorf("Expected path %q, got %q", testFile, change.Path)
		}
	case <-time.After(2 * time.Second):
		t.Error("Timeout waiting for change")
	}

	watcher.Stop()
}

func TestWatcherNewFile(t *testing.T) {
	tmpDir := t.TempDir()

	watcher := NewWatcher(WatcherConfig{
		Paths:    []string{tmpDir},
		Debounce: 50 * time.Millisecond,
	})

	changes := make(chan Change, 10)
	watcher.OnChange(func(c Change) {
		changes <- c
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go watcher.Start(ctx)
	time.Sleep(100 * time.Millisecond)

	newFile := filepath.Join(tmpDir, "styles.css")
	if err := os.WriteFile(newFile, []byte("body {}"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case change := <-changes:
		if change.Type != ChangeStyle {
			t.Errorf("Expected style change, got %v", change.Type)
		}
	case <-time.After(2 * time.Second):
		t.Error("Timeout waiting for new file change")
	}

	watcher.Stop()
}

func TestWatcherIgnoresTestFiles(t *testing.T) {
	tmpDir := t.TempDir()

	watcher := NewWatcher(WatcherConfig{
		Paths:    []string{tmpDir},
		Debounce: 50 * time.Millisecond,
	})

	changes := make(chan Change, 10)
	watcher.OnChange(func(c Change) {
		changes <- c
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go watcher.Start(ctx)
	time.Sleep(100 * time.Millisecond)

	ignored := filepath.Join(tmpDir, "main_test.go")
	if err := os.WriteFile(ignored, []byte("package main"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case change := <-changes:
		t.Errorf("Unexpected change for ignored file: %+v", change)
	case <-time.After(300 * time.Millisecond):
	}

	watcher.Stop()
}

func TestWatcherStopIdempotent(t *testing.T) {
	watcher := NewWatcher(WatcherConfig{Paths: []string{t.TempDir()}})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go watcher.Start(ctx)
	time.Sleep(50 * time.Millisecond)

	if !watcher.IsRunning() {
		t.Error("watcher should be running")
	}
	watcher.Stop()
	watcher.Stop()
	if watcher.IsRunning() {
		t.Error("watcher should be stopped")
	}
}

func TestShouldIgnore(t *testing.T) {
	w := NewWatcher(WatcherConfig{
		Ignore: []string{"*_test.go", ".git", "node_modules", "dist/assets", "*.tmp"},
	})

	tests := []struct {
		path string
		want bool
	}{
		{"/proj/app/main.go", false},
		{"/proj/app/main_test.go", true},
		{"/proj/.git/HEAD", true},
		{"/proj/node_modules/pkg/index.js", true},
		{"/proj/dist/assets/logo.png", true},
		{"/proj/dist/other/logo.png", false},
		{"/proj/cache.tmp", true},
	}

	for _, tt := range tests {
		if got := w.shouldIgnore(tt.path); got != tt.want {
			t.Errorf("shouldIgnore(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestClassify(t *testing.T) {
	w := NewWatcher(WatcherConfig{RoutesDir: "/proj/app/routes"})

	tests := []struct {
		path string
		want ChangeType
	}{
		{"/proj/app/main.go", ChangeSource},
		{"/proj/app/routes/index.go", ChangeRoute},
		{"/proj/app/routes/blog/slug_.go", ChangeRoute},
		{"/proj/app/routesfoo/x.go", ChangeSource},
		{"/proj/public/styles.css", ChangeStyle},
		{"/proj/public/app.scss", ChangeStyle},
		{"/proj/public/logo.png", ChangeAsset},
		{"/proj/public/index.html", ChangeAsset},
	}

	for _, tt := range tests {
		if got := w.classify(tt.path); got != tt.want {
			t.Errorf("classify(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestWatcherReportsRouteChanges(t *testing.T) {
	tmpDir := t.TempDir()
	routesDir := filepath.Join(tmpDir, "app", "routes")
	if err := os.MkdirAll(routesDir, 0755); err != nil {
		t.Fatal(err)
	}

	watcher := NewWatcher(WatcherConfig{
		Paths:     []string{tmpDir},
		RoutesDir: routesDir,
		Debounce:  50 * time.Millisecond,
	})

	changes := make(chan Change, 10)
	watcher.OnChange(func(c Change) {
		changes <- c
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go watcher.Start(ctx)
	time.Sleep(100 * time.Millisecond)

	routeFile := filepath.Join(routesDir, "index.go")
	if err := os.WriteFile(routeFile, []byte("package routes"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case change := <-changes:
		if change.Type != ChangeRoute {
			t.Errorf("Expected route change, got %v", change.Type)
		}
	case <-time.After(2 * time.Second):
		t.Error("Timeout waiting for route change")
	}

	watcher.Stop()
}

func TestWatcherDetectsDeletedFile(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "main.go")
	if err := os.WriteFile(testFile, []byte("package main"), 0644); err != nil {
		t.Fatal(err)
	}

	watcher := NewWatcher(WatcherConfig{
		Paths:    []string{tmpDir},
		Debounce: 50 * time.Millisecond,
	})

	changes := make(chan Change, 10)
	watcher.OnChange(func(c Change) {
		changes <- c
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go watcher.Start(ctx)
	time.Sleep(100 * time.Millisecond)

	if err := os.Remove(testFile); err != nil {
		t.Fatal(err)
	}

	select {
	case change := <-changes:
		if change.Path != testFile {
			t.Errorf("Expected path %q, got %q", testFile, change.Path)
		}
	case <-time.After(2 * time.Second):
		t.Error("Timeout waiting for delete change")
	}

	watcher.Stop()
}

func TestIsWithinDir(t *testing.T) {
	tests := []struct {
		path, dir string
		want      bool
	}{
		{"/proj/app/routes/index.go", "/proj/app/routes", true},
		{"/proj/app/routes", "/proj/app/routes", true},
		{"/proj/app/routesfoo/x.go", "/proj/app/routes", false},
		{"/proj/app/main.go", "/proj/app/routes", false},
	}

	for _, tt := range tests {
		if got := isWithinDir(tt.path, tt.dir); got != tt.want {
			t.Errorf("isWithinDir(%q, %q) = %v, want %v", tt.path, tt.dir, got, tt.want)
		}
	}
}
