package templates

import (
	"bytes"
	"os"
	"path/filepath"
	"text/template"

	"github.com/razen-core/rynex/internal/errors"
)

// Config contains template configuration.
type Config struct {
	// ProjectName is the name of the project.
	ProjectName string

	// ModulePath is the Go module path.
	ModulePath string

	// Description is a short project description.
	Description string
}

// Template represents a project template.
type Template struct {
	// Name is the template name.
	Name string

	// Description describes the template.
	Description string

	// Files is a map of relative paths to file contents.
	Files map[string]string
}

// Available templates.
var templates = map[string]*Template{
	"minimal": minimalTemplate(),
	"counter": counterTemplate(),
}

// Get returns a template by name.
func Get(name string) (*Template, error) {
	tmpl, ok := templates[name]
	if !ok {
		return nil, errors.New("RX601").
			WithDetail("Template '" + name + "' not found")
	}
	return tmpl, nil
}

// List returns all available template names.
func List() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	return names
}

// Create generates a project from the template.
func (t *Template) Create(dir string, cfg Config) error {
	for relPath, content := range t.Files {
		tmpl, err := template.New(relPath).Parse(content)
		if err != nil {
			return errors.Newf(errors.CategoryCLI, "invalid template %s: %v", relPath, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, cfg); err != nil {
			return errors.Newf(errors.CategoryCLI, "template execute error %s: %v", relPath, err)
		}

		fullPath := filepath.Join(dir, filepath.FromSlash(relPath))
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(fullPath, buf.Bytes(), 0644); err != nil {
			return err
		}
	}

	return nil
}

// minimalTemplate returns the minimal template.
func minimalTemplate() *Template {
	return &Template{
		Name:        "minimal",
		Description: "Just the essentials for a Rynex app",
		Files: map[string]string{
			"main.go": `package main

import (
	"log"
	"net/http"
	"os"

	. "github.com/razen-core/rynex/el"
	"github.com/razen-core/rynex/pkg/vdom"
)

func main() {
	mux := http.NewServeMux()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		page := Div(Class("app"),
			H1(Text("Welcome to {{.ProjectName}}")),
			P(Text("{{.Description}}")),
		)

		renderer := vdom.NewRenderer(vdom.RendererConfig{Pretty: true})
		html, err := renderer.RenderToString(page)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<!DOCTYPE html>\n<html><head><title>{{.ProjectName}}</title><link rel=\"stylesheet\" href=\"/styles.css\"></head><body>" + html + "</body></html>"))
	})

	mux.Handle("/styles.css", http.FileServer(http.Dir("public")))

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	log.Println("Server running at http://localhost:" + port)
	if err := http.ListenAndServe(":"+port, mux); err != nil {
		log.Fatal(err)
	}
}
`,
			"rynex.json": `{
  "name": "{{.ProjectName}}",
  "version": "0.1.0",
  "dev": {
    "port": 3000,
    "hotReload": true
  },
  "build": {
    "output": "dist",
    "hashAssets": true,
    "manifest": true
  }
}
`,
			"public/styles.css": `body {
  font-family: system-ui, sans-serif;
  max-width: 800px;
  margin: 0 auto;
  padding: 2rem;
}

h1 {
  color: #2563eb;
}
`,
			"app/routes/index.go": `package routes

// Index is the home page route.
`,
			".gitignore": `dist/
.rynex/
*.tmp
`,
			"go.mod": `module {{.ModulePath}}

go 1.23

require github.com/razen-core/rynex v0.1.0
`,
		},
	}
}

// counterTemplate returns the counter template, demonstrating reactive state.
func counterTemplate() *Template {
	t := minimalTemplate()

	files := make(map[string]string, len(t.Files))
	for k, v := range t.Files {
		files[k] = v
	}

	files["main.go"] = `package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	. "github.com/razen-core/rynex/el"
	"github.com/razen-core/rynex/pkg/reactive"
	"github.com/razen-core/rynex/pkg/vdom"
)

func main() {
	state := reactive.NewReactive(map[string]any{
		"count": 0,
	})

	// Log every change to the counter.
	reactive.Watch(func() any {
		return state.Get("count")
	}, func(newVal, _ any) {
		log.Printf("count is now %v", newVal)
	})

	page := Div(Class("app"),
		H1(Text("{{.ProjectName}}")),
		P(Text("Count: "), vdom.DynText(func() string {
			return fmt.Sprint(state.Get("count"))
		})),
		P(A(Href("/increment"), Text("Increment"))),
	)

	mux := http.NewServeMux()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		renderer := vdom.NewRenderer(vdom.RendererConfig{Pretty: true})
		html, err := renderer.RenderToString(page)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<!DOCTYPE html>\n<html><head><title>{{.ProjectName}}</title></head><body>" + html + "</body></html>"))
	})

	mux.HandleFunc("/increment", func(w http.ResponseWriter, r *http.Request) {
		state.Set("count", state.Peek("count").(int)+1)
		reactive.Settle()
		http.Redirect(w, r, "/", http.StatusSeeOther)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	log.Println("Server running at http://localhost:" + port)
	if err := http.ListenAndServe(":"+port, mux); err != nil {
		log.Fatal(err)
	}
}
`

	return &Template{
		Name:        "counter",
		Description: "A counter app showing reactive state",
		Files:       files,
	}
}
