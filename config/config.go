// Package config provides configuration loading and access for the dot field.
package config

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	getter "github.com/hashicorp/go-getter"
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/oripop/field"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all application configuration.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Params    field.Params    `yaml:"params"`
	Animation AnimationConfig `yaml:"animation"`
	Frames    FramesConfig    `yaml:"frames"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// AnimationConfig controls how wall-clock time advances field time.
type AnimationConfig struct {
	Speed  float64 `yaml:"speed"`
	Paused bool    `yaml:"paused"`
}

// FramesConfig holds frame precomputation settings.
type FramesConfig struct {
	Workers   int `yaml:"workers"`    // 0 = GOMAXPROCS
	CacheSize int `yaml:"cache_size"` // Entries per cache shard
	Lookahead int `yaml:"lookahead"`  // Frames rendered ahead of the viewer
}

// TelemetryConfig holds stats output settings.
type TelemetryConfig struct {
	OutputDir string `yaml:"output_dir"`
	WriteDots bool   `yaml:"write_dots"`
	LogEvery  int    `yaml:"log_every"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32 float32 // Screen.Width as float32
	ScreenH32 float32 // Screen.Height as float32
	Source    string  // Where the config was loaded from ("" = defaults)
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given source, or uses embedded defaults if src is empty.
// Must be called before Cfg().
func Init(src string) error {
	cfg, err := Load(src)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from src, merging with embedded defaults.
// If src is empty, only embedded defaults are used.
func Load(src string) (*Config, error) {
	return LoadContext(context.Background(), src)
}

// LoadContext is Load with a context for remote sources. src may be a local
// path or any go-getter source such as https://host/cfg.yaml or s3::bucket/key.
func LoadContext(ctx context.Context, src string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if src != "" {
		data, err := read(ctx, src)
		if err != nil {
			return nil, err
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.Derived.Source = src
	cfg.computeDerived()

	return cfg, nil
}

// IsRemote reports whether src needs fetching rather than a local read.
func IsRemote(src string) bool {
	return strings.Contains(src, "::") || strings.Contains(src, "://")
}

func read(ctx context.Context, src string) ([]byte, error) {
	if !IsRemote(src) {
		data, err := os.ReadFile(src)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		return data, nil
	}

	dir, err := os.MkdirTemp("", "oripop-config-")
	if err != nil {
		return nil, fmt.Errorf("creating fetch dir: %w", err)
	}
	defer os.RemoveAll(dir)

	pwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolving working dir: %w", err)
	}

	dst := filepath.Join(dir, "config.yaml")
	client := &getter.Client{
		Ctx:  ctx,
		Src:  src,
		Dst:  dst,
		Pwd:  pwd,
		Mode: getter.ClientModeFile,
	}
	if err := client.Get(); err != nil {
		return nil, fmt.Errorf("fetching config %q: %w", src, err)
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		return nil, fmt.Errorf("reading fetched config: %w", err)
	}
	return data, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	if c.Screen.TargetFPS <= 0 {
		c.Screen.TargetFPS = field.FramesPerSecond
	}
	if c.Frames.Lookahead < 0 {
		c.Frames.Lookahead = 0
	}
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// ParamsYAML renders just the params block, for copying into a config file.
func ParamsYAML(p field.Params) (string, error) {
	data, err := yaml.Marshal(struct {
		Params field.Params `yaml:"params"`
	}{p})
	if err != nil {
		return "", fmt.Errorf("marshaling params: %w", err)
	}
	return string(data), nil
}
