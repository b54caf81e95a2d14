package sandboxconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"particle-sandbox/internal/env"
	"particle-sandbox/internal/logger"
	"particle-sandbox/internal/physics"
	"particle-sandbox/internal/sandbox"
)

// ConfigPath is the default config file, relative to the process working directory.
const ConfigPath = "config/sandbox.yaml"

// Config holds everything fixed at startup: world size, body defaults, friction and gravity,
// stepping mode and display settings. It is not changed while the simulation runs.
type Config struct {
	Width         float32 `yaml:"width"`
	Height        float32 `yaml:"height"`
	Capacity      int     `yaml:"capacity"`
	Friction      float32 `yaml:"friction"`
	Gravity       float32 `yaml:"gravity"`
	Radius        float32 `yaml:"radius"`
	Mass          float32 `yaml:"mass"`
	VelocityScale float32 `yaml:"velocity_scale"`
	// FixedStep in seconds; 0 steps once per frame with the measured frame time.
	FixedStep   float32 `yaml:"fixed_step"`
	MaxSubSteps int     `yaml:"max_sub_steps"`
	Seed        uint64  `yaml:"seed,omitempty"`
	TargetFPS   int     `yaml:"target_fps"`
	ShowHUD     bool    `yaml:"show_hud"`
	LogPath     string  `yaml:"log_path"`
}

// Default returns the stock sandbox: 800x800, 100 bodies of radius 20 and mass 1.
func Default() Config {
	return Config{
		Width:         physics.DefaultWidth,
		Height:        physics.DefaultHeight,
		Capacity:      physics.DefaultCapacity,
		Friction:      0.005,
		Gravity:       5,
		Radius:        physics.DefaultRadius,
		Mass:          physics.DefaultMass,
		VelocityScale: physics.DefaultVelocityScale,
		MaxSubSteps:   sandbox.DefaultMaxSubSteps,
		TargetFPS:     60,
		ShowHUD:       true,
		LogPath:       logger.LogFilePath,
	}
}

// Load reads the config at path on top of Default(). A missing file yields Default() and no error;
// unreadable or malformed files and invalid values are errors.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return c, fmt.Errorf("sandboxconfig: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Default(), fmt.Errorf("sandboxconfig: %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Default(), err
	}
	return c, nil
}

// Save writes c to path as YAML, creating the directory if needed.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("sandboxconfig: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("sandboxconfig: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("sandboxconfig: %w", err)
	}
	return nil
}

// Environment variables read by ApplyEnv.
const (
	EnvFriction  = "SANDBOX_FRICTION"
	EnvGravity   = "SANDBOX_GRAVITY"
	EnvCapacity  = "SANDBOX_CAPACITY"
	EnvFixedStep = "SANDBOX_FIXED_STEP"
)

// ApplyEnv overrides fields from SANDBOX_* environment variables that are set, then validates.
func (c *Config) ApplyEnv() error {
	floats := []struct {
		key string
		dst *float32
	}{
		{EnvFriction, &c.Friction},
		{EnvGravity, &c.Gravity},
		{EnvFixedStep, &c.FixedStep},
	}
	for _, f := range floats {
		v, ok, err := env.Float32(f.key)
		if err != nil {
			return fmt.Errorf("sandboxconfig: %w", err)
		}
		if ok {
			*f.dst = v
		}
	}
	n, ok, err := env.Int(EnvCapacity)
	if err != nil {
		return fmt.Errorf("sandboxconfig: %w", err)
	}
	if ok {
		c.Capacity = n
	}
	return c.Validate()
}

// Validate reports the first setting that would make the simulation meaningless.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("sandboxconfig: size must be positive, got %gx%g", c.Width, c.Height)
	case c.Capacity <= 0:
		return fmt.Errorf("sandboxconfig: capacity must be positive, got %d", c.Capacity)
	case c.Friction < 0 || c.Friction > 1:
		return fmt.Errorf("sandboxconfig: friction must be in [0,1], got %g", c.Friction)
	case c.Radius <= 0:
		return fmt.Errorf("sandboxconfig: radius must be positive, got %g", c.Radius)
	case 2*c.Radius > c.Width || 2*c.Radius > c.Height:
		return fmt.Errorf("sandboxconfig: radius %g does not fit a %gx%g world", c.Radius, c.Width, c.Height)
	case c.Mass <= 0:
		return fmt.Errorf("sandboxconfig: mass must be positive, got %g", c.Mass)
	case c.VelocityScale <= 0:
		return fmt.Errorf("sandboxconfig: velocity_scale must be positive, got %g", c.VelocityScale)
	case c.FixedStep < 0:
		return fmt.Errorf("sandboxconfig: fixed_step must not be negative, got %g", c.FixedStep)
	}
	return nil
}

// WorldOptions returns the physics settings of c.
func (c Config) WorldOptions() physics.Options {
	return physics.Options{
		Bounds:        physics.Bounds{Width: c.Width, Height: c.Height},
		Capacity:      c.Capacity,
		Friction:      c.Friction,
		Gravity:       c.Gravity,
		Radius:        c.Radius,
		Mass:          c.Mass,
		VelocityScale: c.VelocityScale,
	}
}

// SandboxOptions returns the stepping settings of c.
func (c Config) SandboxOptions() sandbox.Options {
	return sandbox.Options{FixedStep: c.FixedStep, MaxSubSteps: c.MaxSubSteps}
}
