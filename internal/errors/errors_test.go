package errors

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "runtime error",
			code:    "RX001",
			wantMsg: "Reactive field not found",
			wantCat: CategoryRuntime,
		},
		{
			name:    "config error",
			code:    "RX100",
			wantMsg: "rynex.json not found",
			wantCat: CategoryConfig,
		},
		{
			name:    "route error",
			code:    "RX201",
			wantMsg: "Conflicting routes",
			wantCat: CategoryRoutes,
		},
		{
			name:    "unknown error code",
			code:    "RX999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryBuild, "file %q not found", "main.go")
	if err.Message != `file "main.go" not found` {
		t.Errorf("Message = %q, want %q", err.Message, `file "main.go" not found`)
	}
	if err.Category != CategoryBuild {
		t.Errorf("Category = %q, want %q", err.Category, CategoryBuild)
	}
}

func TestRynexError_Error(t *testing.T) {
	err := New("RX100")
	got := err.Error()
	want := "RX100: rynex.json not found"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	// Without code
	err2 := &RynexError{Message: "test error"}
	if err2.Error() != "test error" {
		t.Errorf("Error() = %q, want %q", err2.Error(), "test error")
	}
}

func TestWrapUnwrap(t *testing.T) {
	inner := stderrors.New("disk full")
	err := New("RX302").Wrap(inner)

	if !stderrors.Is(err, inner) {
		t.Error("errors.Is should find the wrapped error")
	}

	var re *RynexError
	if !stderrors.As(err, &re) {
		t.Error("errors.As should find *RynexError")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "RX300") != nil {
		t.Error("FromError(nil) should return nil")
	}

	// Already a RynexError: returned as-is.
	orig := New("RX201")
	if got := FromError(orig, "RX300"); got != orig {
		t.Error("FromError should pass through an existing RynexError")
	}

	wrapped := FromError(stderrors.New("boom"), "RX300")
	if wrapped.Code != "RX300" {
		t.Errorf("Code = %q, want RX300", wrapped.Code)
	}
	if wrapped.Wrapped == nil {
		t.Error("Wrapped should be set")
	}
}

func TestWithLocation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "routes.go")
	content := "line one\nline two\nline three\nline four\nline five\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	err := New("RX202").WithLocation(path, 3, 7)
	if err.Location == nil {
		t.Fatal("Location should be set")
	}
	if err.Location.Line != 3 || err.Location.Column != 7 {
		t.Errorf("Location = %v, want line 3 col 7", err.Location)
	}
	if len(err.Context) == 0 {
		t.Error("Context lines should be read from the file")
	}
	if got := err.Location.String(); !strings.HasSuffix(got, "routes.go:3:7") {
		t.Errorf("Location.String() = %q", got)
	}
}

func TestWithLocationFromError(t *testing.T) {
	compilerErr := stderrors.New("app/main.go:12:5: undefined: counter")
	err := New("RX300").WithLocationFromError(compilerErr)
	if err.Location == nil {
		t.Fatal("Location should be parsed from compiler error")
	}
	if err.Location.File != "app/main.go" || err.Location.Line != 12 || err.Location.Column != 5 {
		t.Errorf("Location = %+v", err.Location)
	}
}

func TestFormatCompact(t *testing.T) {
	err := New("RX101")
	err.Location = &Location{File: "rynex.json", Line: 4}
	got := err.FormatCompact()
	want := "rynex.json:4: RX101: rynex.json is not valid JSON"
	if got != want {
		t.Errorf("FormatCompact() = %q, want %q", got, want)
	}
}

func TestFormatJSON(t *testing.T) {
	err := New("RX103").WithSuggestion("use a port between 1 and 65535")
	got := err.FormatJSON()

	for _, frag := range []string{
		`"code":"RX103"`,
		`"category":"config"`,
		`"message":"Port out of range"`,
		`"suggestion":"use a port between 1 and 65535"`,
	} {
		if !strings.Contains(got, frag) {
			t.Errorf("FormatJSON() missing %q:\n%s", frag, got)
		}
	}
}

func TestFormatWithoutColors(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("RX600").
		WithSuggestion("pick another name").
		WithExample("rynex create my-app")
	out := err.Format()

	if strings.Contains(out, "\033[") {
		t.Error("Format() should not emit ANSI codes when colors are disabled")
	}
	for _, frag := range []string{"ERROR RX600", "Hint: pick another name", "rynex create my-app", "Learn more:"} {
		if !strings.Contains(out, frag) {
			t.Errorf("Format() missing %q:\n%s", frag, out)
		}
	}
}

func TestCodes(t *testing.T) {
	codes := Codes()
	if len(codes) == 0 {
		t.Fatal("registry should not be empty")
	}
	seen := make(map[string]bool, len(codes))
	for _, c := range codes {
		if !strings.HasPrefix(c, "RX") {
			t.Errorf("code %q does not use the RX prefix", c)
		}
		if seen[c] {
			t.Errorf("duplicate code %q", c)
		}
		seen[c] = true
	}
}
