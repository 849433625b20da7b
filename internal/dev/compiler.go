package dev

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"github.com/razen-core/rynex/internal/errors"
)

// CompilerConfig configures the project compiler.
type CompilerConfig struct {
	// ProjectPath is the root directory of the project.
	ProjectPath string

	// BinaryPath is where to write the compiled binary.
	BinaryPath string

	// CachePath is where to store the build cache.
	CachePath string

	// Env are additional environment variables for the app process.
	Env []string
}

// CompileResult contains the result of a build.
type CompileResult struct {
	// Success indicates if the build succeeded.
	Success bool

	// Duration is how long the build took.
	Duration time.Duration

	// Output is the compiler output.
	Output string

	// Error is the build error, if any.
	Error error
}

// Compiler handles compilation and app process management.
type Compiler struct {
	config  CompilerConfig
	process *processHandle
	mu      sync.Mutex
}

// NewCompiler creates a new compiler.
func NewCompiler(config CompilerConfig) *Compiler {
	if config.BinaryPath == "" {
		config.BinaryPath = filepath.Join(config.ProjectPath, ".rynex", "app")
	}
	if config.CachePath == "" {
		config.CachePath = filepath.Join(config.ProjectPath, ".rynex", "cache")
	}

	return &Compiler{config: config}
}

// Build compiles the project.
func (c *Compiler) Build(ctx context.Context) CompileResult {
	start := time.Now()

	if err := os.MkdirAll(filepath.Dir(c.config.BinaryPath), 0755); err != nil {
		return CompileResult{
			Duration: time.Since(start),
			Error:    errors.New("RX302").Wrap(err),
		}
	}
	if err := os.MkdirAll(c.config.CachePath, 0755); err != nil {
		return CompileResult{
			Duration: time.Since(start),
			Error:    errors.New("RX302").Wrap(err),
		}
	}

	cmd := exec.CommandContext(ctx, "go", "build", "-o", c.config.BinaryPath, ".")
	cmd.Dir = c.config.ProjectPath
	cmd.Env = append(os.Environ(), "GOCACHE="+c.config.CachePath)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	duration := time.Since(start)

	output := stderr.String()
	if output == "" {
		output = stdout.String()
	}

	if err != nil {
		return CompileResult{
			Success:  false,
			Duration: duration,
			Output:   output,
			Error:    errors.New("RX300").WithDetail(output).Wrap(err),
		}
	}

	return CompileResult{
		Success:  true,
		Duration: duration,
		Output:   output,
	}
}

// Start runs the compiled binary, stopping any previous instance first.
func (c *Compiler) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.process != nil {
		stopProcess(c.process)
		c.process = nil
	}

	env := append(os.Environ(), "RYNEX_DEV=1")
	env = append(env, c.config.Env...)

	proc, err := startProcess(ctx, c.config.BinaryPath, c.config.ProjectPath, env)
	if err != nil {
		return errors.New("RX300").Wrap(err)
	}

	c.process = proc
	return nil
}

// Stop stops the running app process.
func (c *Compiler) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.process != nil {
		stopProcess(c.process)
		c.process = nil
	}
}

// Restart stops the current process and starts a new one.
func (c *Compiler) Restart(ctx context.Context) error {
	c.Stop()
	return c.Start(ctx)
}
