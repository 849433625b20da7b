package dev

import (
	"context"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// ChangeType represents the type of file change.
type ChangeType int

const (
	ChangeSource ChangeType = iota
	ChangeRoute
	ChangeStyle
	ChangeAsset
)

// Change represents a detected file change.
type Change struct {
	Path string
	Type ChangeType
}

// WatcherConfig configures the file watcher.
type WatcherConfig struct {
	// Paths are the directories to watch.
	Paths []string

	// RoutesDir is the file-based routing directory. Go files under it
	// are reported as ChangeRoute so the server can re-scan routes
	// before rebuilding.
	RoutesDir string

	// Ignore patterns to skip (globs or path segments).
	Ignore []string

	// Debounce is the polling interval.
	Debounce time.Duration
}

// DefaultIgnore contains default patterns to ignore: build outputs,
// tooling state, tests, and editor droppings.
var DefaultIgnore = []string{
	".rynex",
	"dist",
	".git",
	"node_modules",
	"testdata",
	"*_test.go",
	"*.tmp",
	"*.swp",
	"*~",
	".DS_Store",
}

// Watcher monitors files for changes by polling modification times.
// Each poll takes a full snapshot and diffs it against the previous
// one, so additions, modifications, and deletions all surface from
// the same pass.
type Watcher struct {
	config   WatcherConfig
	ignore   *ignoreSet
	onChange func(Change)
	mu       sync.Mutex
	running  bool
	stopCh   chan struct{}
	snap     map[string]time.Time
}

// NewWatcher creates a new file watcher.
func NewWatcher(config WatcherConfig) *Watcher {
	if config.Debounce == 0 {
		config.Debounce = 100 * time.Millisecond
	}
	if len(config.Ignore) == 0 {
		config.Ignore = DefaultIgnore
	}

	return &Watcher{
		config: config,
		ignore: newIgnoreSet(config.Ignore),
	}
}

// OnChange sets the callback for file changes.
func (w *Watcher) OnChange(fn func(Change)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Start begins watching for file changes. It blocks until the context is
// cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.stopCh = make(chan struct{})
	w.snap = w.snapshot()
	w.mu.Unlock()

	ticker := time.NewTicker(w.config.Debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.stopCh:
			return nil
		case <-ticker.C:
			w.poll()
		}
	}
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		close(w.stopCh)
		w.running = false
	}
}

// IsRunning returns whether the watcher is running.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// snapshot walks the watched paths and records every non-ignored
// file's modification time.
func (w *Watcher) snapshot() map[string]time.Time {
	snap := make(map[string]time.Time)
	for _, root := range w.config.Paths {
		filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if d.IsDir() {
				if w.shouldIgnore(p) {
					return filepath.SkipDir
				}
				return nil
			}
			if w.shouldIgnore(p) {
				return nil
			}
			if info, err := d.Info(); err == nil {
				snap[p] = info.ModTime()
			}
			return nil
		})
	}
	return snap
}

// poll diffs a fresh snapshot against the previous one and reports
// every added, modified, and deleted file.
func (w *Watcher) poll() {
	w.mu.Lock()
	callback := w.onChange
	prev := w.snap
	w.mu.Unlock()

	next := w.snapshot()

	w.mu.Lock()
	w.snap = next
	w.mu.Unlock()

	if callback == nil {
		return
	}

	var changed []string
	for p, mod := range next {
		if last, ok := prev[p]; !ok || mod.After(last) {
			changed = append(changed, p)
		}
	}
	for p := range prev {
		if _, ok := next[p]; !ok {
			changed = append(changed, p)
		}
	}

	// Stable order so multi-file saves log predictably.
	sort.Strings(changed)
	for _, p := range changed {
		callback(Change{Path: p, Type: w.classify(p)})
	}
}

// classify determines a file's change type. Go files inside the
// routing directory carry their own type.
func (w *Watcher) classify(p string) ChangeType {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".go":
		if w.config.RoutesDir != "" && isWithinDir(p, w.config.RoutesDir) {
			return ChangeRoute
		}
		return ChangeSource
	case ".css", ".scss", ".sass", ".less":
		return ChangeStyle
	default:
		return ChangeAsset
	}
}

func (w *Watcher) shouldIgnore(p string) bool {
	return w.ignore.Match(p)
}

// ignoreSet is a compiled form of the ignore patterns. Patterns sort
// into three kinds at construction: base-name globs ("*_test.go"),
// full-path globs ("dist/*.map"), and literal segment sequences
// ("node_modules", "dist/assets") matched anywhere in the path.
type ignoreSet struct {
	nameGlobs []string
	pathGlobs []string
	segments  [][]string
}

func newIgnoreSet(patterns []string) *ignoreSet {
	s := &ignoreSet{}
	for _, pattern := range patterns {
		pattern = strings.TrimSpace(filepath.ToSlash(pattern))
		if pattern == "" {
			continue
		}

		hasGlob := strings.ContainsAny(pattern, "*?[")
		hasSep := strings.Contains(pattern, "/")

		switch {
		case hasGlob && hasSep:
			s.pathGlobs = append(s.pathGlobs, pattern)
		case hasGlob:
			s.nameGlobs = append(s.nameGlobs, pattern)
		default:
			s.segments = append(s.segments, splitPathSegments(pattern))
		}
	}
	return s
}

// Match reports whether the path hits any ignore pattern.
func (s *ignoreSet) Match(fullPath string) bool {
	normalized := filepath.ToSlash(fullPath)
	name := path.Base(normalized)

	for _, pattern := range s.nameGlobs {
		if matched, _ := path.Match(pattern, name); matched {
			return true
		}
	}
	for _, pattern := range s.pathGlobs {
		if matched, _ := path.Match(pattern, normalized); matched {
			return true
		}
	}

	parts := splitPathSegments(normalized)
	for _, want := range s.segments {
		if containsSegments(parts, want) {
			return true
		}
	}
	return false
}

// containsSegments reports whether want occurs as a consecutive run
// inside parts.
func containsSegments(parts, want []string) bool {
	if len(want) == 0 || len(want) > len(parts) {
		return false
	}
	for i := 0; i <= len(parts)-len(want); i++ {
		match := true
		for j := range want {
			if parts[i+j] != want[j] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// isWithinDir reports whether path is inside dir.
func isWithinDir(p, dir string) bool {
	absPath, err := filepath.Abs(p)
	if err != nil {
		return false
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	absPath = filepath.Clean(absPath)
	absDir = filepath.Clean(absDir)
	if absPath == absDir {
		return true
	}
	if !strings.HasSuffix(absDir, string(os.PathSeparator)) {
		absDir += string(os.PathSeparator)
	}
	return strings.HasPrefix(absPath, absDir)
}

func splitPathSegments(p string) []string {
	if p == "" {
		return nil
	}
	parts := strings.Split(p, "/")
	result := parts[:0]
	for _, part := range parts {
		if part != "" && part != "." {
			result = append(result, part)
		}
	}
	return result
}
