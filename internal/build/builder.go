package build

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/razen-core/rynex/internal/config"
	"github.com/razen-core/rynex/internal/errors"
)

// Result contains the build output.
type Result struct {
	// Duration is how long the build took.
	Duration time.Duration

	// Binary is the path to the compiled application binary.
	Binary string

	// Assets is the path to the copied asset directory.
	Assets string

	// Manifest maps source asset names to their output names.
	Manifest map[string]string

	// AssetCount is the number of static assets copied.
	AssetCount int

	// AssetBytes is the total size of copied assets.
	AssetBytes int64
}

// Options configures the builder.
type Options struct {
	// SkipCompile skips the Go compile step and only processes assets.
	SkipCompile bool

	// Verbose enables verbose output.
	Verbose bool

	// OnProgress is called with progress updates.
	OnProgress func(step string)
}

// Builder handles production builds.
type Builder struct {
	config  *config.Config
	options Options
}

// New creates a new builder.
func New(cfg *config.Config, options Options) *Builder {
	return &Builder{
		config:  cfg,
		options: options,
	}
}

// Build performs a production build: compile, copy assets, write manifest.
func (b *Builder) Build(ctx context.Context) (*Result, error) {
	start := time.Now()
	result := &Result{
		Manifest: make(map[string]string),
	}

	if _, err := os.Stat(b.config.SourcePath()); os.IsNotExist(err) {
		return nil, errors.New("RX301").
			WithDetail("Source directory does not exist: " + b.config.SourcePath())
	}

	outputDir := b.config.OutputPath()
	assetsDir := filepath.Join(outputDir, "assets")

	b.progress("Cleaning output directory...")
	if err := os.RemoveAll(outputDir); err != nil {
		return nil, errors.New("RX302").Wrap(err)
	}
	if err := os.MkdirAll(assetsDir, 0755); err != nil {
		return nil, errors.New("RX302").Wrap(err)
	}

	if !b.options.SkipCompile {
		b.progress("Compiling...")
		binaryPath := filepath.Join(outputDir, "app")
		if err := b.compile(ctx, binaryPath); err != nil {
			return nil, err
		}
		result.Binary = binaryPath
	}

	b.progress("Copying static assets...")
	if err := b.copyAssets(assetsDir, result); err != nil {
		return nil, err
	}

	if b.config.Build.Manifest {
		b.progress("Writing manifest...")
		if err := b.writeManifest(outputDir, result.Manifest); err != nil {
			return nil, errors.New("RX302").Wrap(err)
		}
	}

	result.Duration = time.Since(start)
	result.Assets = assetsDir

	return result, nil
}

// compile builds the project binary with go build.
func (b *Builder) compile(ctx context.Context, output string) error {
	args := []string{"build", "-o", output, "-trimpath"}
	if b.config.Build.Minify {
		args = append(args, "-ldflags", "-s -w")
	}
	args = append(args, ".")

	cmd := exec.CommandContext(ctx, "go", args...)
	cmd.Dir = b.config.Dir()
	cmd.Env = append(os.Environ(), "CGO_ENABLED=0")

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return errors.New("RX300").
			WithDetail(stderr.String()).
			WithLocationFromError(firstCompilerError(stderr.String())).
			Wrap(err)
	}
	return nil
}

// firstCompilerError extracts the first file:line:col diagnostic from go
// build output, if any.
func firstCompilerError(output string) error {
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, ":", 4)
		if len(parts) >= 3 {
			return fmt.Errorf("%s", line)
		}
	}
	return nil
}

// copyAssets copies the public directory into the output, optionally
// renaming each file with a content hash.
func (b *Builder) copyAssets(assetsDir string, result *Result) error {
	srcDir := b.config.PublicPath()
	if _, err := os.Stat(srcDir); os.IsNotExist(err) {
		return nil // no public directory
	}

	return filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		outName := relPath
		if b.config.Build.HashAssets {
			hash, err := hashFile(path)
			if err != nil {
				return errors.New("RX303").Wrap(err)
			}
			ext := filepath.Ext(relPath)
			base := strings.TrimSuffix(relPath, ext)
			outName = fmt.Sprintf("%s.%s%s", base, hash[:8], ext)
		}

		destPath := filepath.Join(assetsDir, filepath.FromSlash(outName))
		if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
			return errors.New("RX303").Wrap(err)
		}
		n, err := copyFile(path, destPath)
		if err != nil {
			return errors.New("RX303").
				WithDetail("Failed to copy " + relPath).
				Wrap(err)
		}

		result.Manifest[relPath] = "assets/" + outName
		result.AssetCount++
		result.AssetBytes += n
		return nil
	})
}

// writeManifest writes the asset manifest as manifest.json.
func (b *Builder) writeManifest(outputDir string, manifest map[string]string) error {
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(filepath.Join(outputDir, "manifest.json"), data, 0644)
}

// progress reports build progress.
func (b *Builder) progress(step string) {
	if b.options.OnProgress != nil {
		b.options.OnProgress(step)
	}
}

// Clean removes the build output directory.
func (b *Builder) Clean() error {
	return os.RemoveAll(b.config.OutputPath())
}

// hashFile returns the SHA256 hash of a file.
func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// copyFile copies a file and returns the number of bytes written.
func copyFile(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return 0, err
	}
	defer out.Close()

	return io.Copy(out, in)
}
