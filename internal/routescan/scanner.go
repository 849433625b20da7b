package routescan

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/razen-core/rynex/internal/errors"
)

// Route is a single scanned route.
type Route struct {
	// FilePath is the route source file, relative to the routes root.
	FilePath string

	// Pattern is the derived URL pattern (e.g. "/users/:id").
	Pattern string

	// Params are the dynamic parameter names, in path order.
	Params []string

	// IsCatchAll reports whether the route ends in a catch-all segment.
	IsCatchAll bool

	// IsIndex reports whether the route came from an index file.
	IsIndex bool

	// IsLayout reports whether the file is a layout wrapper, not a page.
	IsLayout bool
}

// Scanner scans a directory tree for route files.
type Scanner struct {
	rootDir string

	// Extensions are the file extensions treated as route files.
	Extensions []string
}

// NewScanner creates a scanner rooted at the given routes directory.
func NewScanner(rootDir string) *Scanner {
	return &Scanner{
		rootDir:    rootDir,
		Extensions: []string{".go"},
	}
}

var (
	paramRe    = regexp.MustCompile(`^\[([A-Za-z_][A-Za-z0-9_]*)\]$`)
	catchAllRe = regexp.MustCompile(`^\[\.\.\.([A-Za-z_][A-Za-z0-9_]*)\]$`)
	emptyRe    = regexp.MustCompile(`^\[(\.\.\.)?\]$`)
)

// Scan walks the routes directory and returns validated routes sorted by
// specificity (static segments before params, params before catch-alls).
func (s *Scanner) Scan() ([]Route, error) {
	if _, err := os.Stat(s.rootDir); err != nil {
		return nil, errors.New("RX200").
			WithDetail("Routes directory does not exist: " + s.rootDir).
			WithSuggestion("Create the directory or set paths.routes in rynex.json")
	}

	var routes []Route

	err := filepath.WalkDir(s.rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// Hidden and underscore directories are not routable.
			name := d.Name()
			if path != s.rootDir && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !s.isRouteFile(path) {
			return nil
		}

		rel, err := filepath.Rel(s.rootDir, path)
		if err != nil {
			return err
		}

		route, err := s.routeFromFile(rel)
		if err != nil {
			return err
		}
		if route != nil {
			routes = append(routes, *route)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := validate(routes); err != nil {
		return nil, err
	}

	sortBySpecificity(routes)
	return routes, nil
}

// isRouteFile reports whether the path has a route file extension and is
// not a test file.
func (s *Scanner) isRouteFile(path string) bool {
	if strings.HasSuffix(path, "_test.go") {
		return false
	}
	ext := filepath.Ext(path)
	for _, e := range s.Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// routeFromFile derives a Route from a relative file path. Returns nil for
// files that do not produce a route of their own.
func (s *Scanner) routeFromFile(rel string) (*Route, error) {
	rel = filepath.ToSlash(rel)
	base := strings.TrimSuffix(filepath.Base(rel), filepath.Ext(rel))

	route := &Route{FilePath: rel}

	switch base {
	case "layout", "_layout":
		route.IsLayout = true
	case "index":
		route.IsIndex = true
	default:
		if strings.HasPrefix(base, "_") {
			// Other underscore files (e.g. _error) are support files.
			return nil, nil
		}
	}

	trimmed := strings.TrimSuffix(rel, filepath.Ext(rel))
	segments := strings.Split(trimmed, "/")

	// Index and layout files map to their directory.
	if route.IsIndex || route.IsLayout {
		segments = segments[:len(segments)-1]
	}

	var parts []string
	for i, seg := range segments {
		if emptyRe.MatchString(seg) {
			return nil, errors.New("RX202").
				WithDetail("Empty parameter segment in " + rel)
		}
		if m := catchAllRe.FindStringSubmatch(seg); m != nil {
			if i != len(segments)-1 {
				return nil, errors.New("RX203").
					WithDetail("Catch-all segment [..." + m[1] + "] must be last in " + rel)
			}
			route.IsCatchAll = true
			route.Params = append(route.Params, m[1])
			parts = append(parts, "*"+m[1])
			continue
		}
		if m := paramRe.FindStringSubmatch(seg); m != nil {
			route.Params = append(route.Params, m[1])
			parts = append(parts, ":"+m[1])
			continue
		}
		if strings.Contains(seg, "[") || strings.Contains(seg, "]") {
			return nil, errors.New("RX202").
				WithDetail("Malformed parameter segment " + seg + " in " + rel)
		}
		parts = append(parts, seg)
	}

	route.Pattern = "/" + strings.Join(parts, "/")
	if route.Pattern == "//" {
		route.Pattern = "/"
	}
	return route, nil
}

// validate rejects duplicate URL patterns. Layout files never conflict with
// the pages they wrap.
func validate(routes []Route) error {
	seen := make(map[string]string)
	for _, r := range routes {
		if r.IsLayout {
			continue
		}
		if prev, ok := seen[r.Pattern]; ok {
			return errors.New("RX201").
				WithDetail("Both " + prev + " and " + r.FilePath + " resolve to " + r.Pattern)
		}
		seen[r.Pattern] = r.FilePath
	}
	return nil
}

// sortBySpecificity orders routes so that static patterns match before
// parameterized ones, and catch-alls match last.
func sortBySpecificity(routes []Route) {
	sort.SliceStable(routes, func(i, j int) bool {
		si, sj := specificity(routes[i]), specificity(routes[j])
		if si != sj {
			return si > sj
		}
		return routes[i].Pattern < routes[j].Pattern
	})
}

// specificity scores a route: static segments are worth more than params,
// and a catch-all ranks below everything at its depth.
func specificity(r Route) int {
	score := 0
	for _, seg := range strings.Split(strings.TrimPrefix(r.Pattern, "/"), "/") {
		switch {
		case seg == "":
		case strings.HasPrefix(seg, "*"):
			score -= 100
		case strings.HasPrefix(seg, ":"):
			score += 1
		default:
			score += 10
		}
	}
	return score
}
