package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/razen-core/rynex/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "rynex.json"

	// DefaultPort is the default development server port.
	DefaultPort = 3000

	// DefaultHost is the default development server host.
	DefaultHost = "localhost"

	// DefaultOutput is the default build output directory.
	DefaultOutput = "dist"

	// DefaultSource is the default application source directory.
	DefaultSource = "app"
)

// Config represents the complete rynex.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Version is the project version.
	Version string `json:"version,omitempty"`

	// Port is the default server port (convenience field, also in Dev).
	Port int `json:"port,omitempty"`

	// Paths contains path configuration for project directories.
	Paths PathsConfig `json:"paths,omitempty"`

	// Dev contains development server configuration.
	Dev DevConfig `json:"dev,omitempty"`

	// Build contains production build configuration.
	Build BuildConfig `json:"build,omitempty"`

	// Deploy contains deployment target configuration.
	Deploy DeployConfig `json:"deploy,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// PathsConfig contains path configuration for project directories.
type PathsConfig struct {
	// Source is the application source directory.
	Source string `json:"source,omitempty"`

	// Routes is the path to the routes directory.
	Routes string `json:"routes,omitempty"`

	// Public is the directory containing static files copied verbatim.
	Public string `json:"public,omitempty"`
}

// DevConfig contains development server settings.
type DevConfig struct {
	// Port is the port to run the dev server on.
	Port int `json:"port,omitempty"`

	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// OpenBrowser opens the browser automatically on start.
	OpenBrowser bool `json:"openBrowser,omitempty"`

	// Watch contains paths to watch for changes.
	Watch []string `json:"watch,omitempty"`

	// Ignore contains patterns to ignore during watch.
	Ignore []string `json:"ignore,omitempty"`

	// DebounceMs is the rebuild debounce window in milliseconds.
	DebounceMs int `json:"debounceMs,omitempty"`

	// HotReload enables live reload over WebSocket.
	HotReload bool `json:"hotReload,omitempty"`
}

// BuildConfig contains production build settings.
type BuildConfig struct {
	// Output is the output directory for builds.
	Output string `json:"output,omitempty"`

	// Minify enables minification of emitted assets.
	Minify bool `json:"minify,omitempty"`

	// HashAssets enables content-hash cache busting of asset filenames.
	HashAssets bool `json:"hashAssets,omitempty"`

	// Manifest enables writing a manifest.json mapping source names to
	// hashed output names.
	Manifest bool `json:"manifest,omitempty"`
}

// DeployConfig contains deployment target settings.
type DeployConfig struct {
	// Bucket is the S3 bucket to sync the build output to.
	Bucket string `json:"bucket,omitempty"`

	// Region is the AWS region of the bucket.
	Region string `json:"region,omitempty"`

	// Prefix is the key prefix inside the bucket.
	Prefix string `json:"prefix,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Version: "0.1.0",
		Port:    DefaultPort,
		Paths: PathsConfig{
			Source: DefaultSource,
			Routes: "app/routes",
			Public: "public",
		},
		Dev: DevConfig{
			Port:       DefaultPort,
			Host:       DefaultHost,
			HotReload:  true,
			Watch:      []string{"app", "public"},
			Ignore:     []string{"dist", "node_modules", ".git"},
			DebounceMs: 100,
		},
		Build: BuildConfig{
			Output:     DefaultOutput,
			Minify:     true,
			HashAssets: true,
			Manifest:   true,
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for rynex.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("RX100").
				WithDetail("No rynex.json found in " + filepath.Dir(path)).
				WithSuggestion("Run 'rynex create' to create a new project or create rynex.json manually")
		}
		return nil, errors.New("RX101").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("RX101").
			WithDetail("Failed to parse rynex.json: " + err.Error()).
			WithSuggestion("Check that rynex.json is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("RX101").Wrap(err)
	}

	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("RX101").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.Dev.Port == 0 {
		c.Dev.Port = c.Port
	}
	if c.Dev.Host == "" {
		c.Dev.Host = DefaultHost
	}
	if c.Dev.Watch == nil {
		c.Dev.Watch = []string{"app", "public"}
	}
	if c.Dev.Ignore == nil {
		c.Dev.Ignore = []string{"dist", "node_modules", ".git"}
	}
	if c.Dev.DebounceMs == 0 {
		c.Dev.DebounceMs = 100
	}

	if c.Build.Output == "" {
		c.Build.Output = DefaultOutput
	}

	if c.Paths.Source == "" {
		c.Paths.Source = DefaultSource
	}
	if c.Paths.Routes == "" {
		c.Paths.Routes = filepath.Join(c.Paths.Source, "routes")
	}
	if c.Paths.Public == "" {
		c.Paths.Public = "public"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Dev.Port < 1 || c.Dev.Port > 65535 {
		return errors.New("RX103").
			WithDetail("Port must be between 1 and 65535, got " + strconv.Itoa(c.Dev.Port))
	}
	if c.Dev.DebounceMs < 0 {
		return errors.New("RX102").
			WithDetail("debounceMs must not be negative")
	}
	if c.Deploy.Bucket != "" && c.Deploy.Region == "" {
		return errors.New("RX102").
			WithDetail("deploy.region is required when deploy.bucket is set")
	}
	return nil
}

// DevAddress returns the address string for the dev server.
func (c *Config) DevAddress() string {
	return c.Dev.Host + ":" + strconv.Itoa(c.Dev.Port)
}

// DevURL returns the full URL for the dev server.
func (c *Config) DevURL() string {
	return "http://" + c.DevAddress()
}

// abs resolves a configured path against the project root.
func (c *Config) abs(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir(), path)
}

// OutputPath returns the absolute path to the build output directory.
func (c *Config) OutputPath() string {
	return c.abs(c.Build.Output)
}

// SourcePath returns the absolute path to the source directory.
func (c *Config) SourcePath() string {
	return c.abs(c.Paths.Source)
}

// RoutesPath returns the absolute path to the routes directory.
func (c *Config) RoutesPath() string {
	return c.abs(c.Paths.Routes)
}

// PublicPath returns the absolute path to the public directory.
func (c *Config) PublicPath() string {
	return c.abs(c.Paths.Public)
}

// HasDeployTarget reports whether a deploy target is configured.
func (c *Config) HasDeployTarget() bool {
	return c.Deploy.Bucket != ""
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing rynex.json, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("RX100").
				WithDetail("No rynex.json found in " + startDir + " or any parent directory").
				WithSuggestion("Run 'rynex create' to create a new project")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the current working directory.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}

	return Load(root)
}
