package sandboxconfig

import (
	"os"
	"path/filepath"
	"testing"

	"particle-sandbox/internal/physics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingReturnsDefault(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
	assert.NoError(t, c.Validate())
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sandbox.yaml")
	require.NoError(t, os.WriteFile(path, []byte("friction: 0.1\ngravity: -2.5\ncapacity: 10\n"), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, float32(0.1), c.Friction)
	assert.Equal(t, float32(-2.5), c.Gravity)
	assert.Equal(t, 10, c.Capacity)
	assert.Equal(t, float32(physics.DefaultWidth), c.Width)
	assert.Equal(t, float32(physics.DefaultRadius), c.Radius)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("friction: [1, 2\n"), 0644))
	_, err := Load(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("friction: 1.5\n"), 0644))
	_, err = Load(invalid)
	assert.ErrorContains(t, err, "friction")
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "sandbox.yaml")
	c := Default()
	c.Friction = 0.25
	c.FixedStep = 1.0 / 120
	c.Seed = 99
	require.NoError(t, Save(path, c))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvFriction, "0.2")
	t.Setenv(EnvGravity, "9.5")
	t.Setenv(EnvCapacity, "5")
	t.Setenv(EnvFixedStep, "")

	c := Default()
	require.NoError(t, c.ApplyEnv())
	assert.Equal(t, float32(0.2), c.Friction)
	assert.Equal(t, float32(9.5), c.Gravity)
	assert.Equal(t, 5, c.Capacity)
	assert.Equal(t, float32(0), c.FixedStep)

	t.Setenv(EnvCapacity, "lots")
	c = Default()
	assert.Error(t, c.ApplyEnv())

	t.Setenv(EnvCapacity, "0")
	c = Default()
	assert.ErrorContains(t, c.ApplyEnv(), "capacity")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{"size", func(c *Config) { c.Width = 0 }, "size"},
		{"capacity", func(c *Config) { c.Capacity = -1 }, "capacity"},
		{"friction low", func(c *Config) { c.Friction = -0.1 }, "friction"},
		{"radius", func(c *Config) { c.Radius = 0 }, "radius"},
		{"radius too big", func(c *Config) { c.Radius = 500 }, "does not fit"},
		{"mass", func(c *Config) { c.Mass = 0 }, "mass"},
		{"velocity scale", func(c *Config) { c.VelocityScale = 0 }, "velocity_scale"},
		{"fixed step", func(c *Config) { c.FixedStep = -1 }, "fixed_step"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			assert.ErrorContains(t, c.Validate(), tt.want)
		})
	}
}

func TestOptions(t *testing.T) {
	c := Default()
	c.Friction = 0.3
	c.FixedStep = 0.01
	w := c.WorldOptions()
	assert.Equal(t, physics.Bounds{Width: 800, Height: 800}, w.Bounds)
	assert.Equal(t, float32(0.3), w.Friction)
	assert.Equal(t, c.Capacity, w.Capacity)

	s := c.SandboxOptions()
	assert.Equal(t, float32(0.01), s.FixedStep)
	assert.Equal(t, c.MaxSubSteps, s.MaxSubSteps)
}
