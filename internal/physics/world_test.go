package physics

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var red = color.RGBA{R: 255, A: 255}

func TestNewWorldDefaults(t *testing.T) {
	w := NewWorld(Options{Friction: 0.2, Gravity: 1.5})
	opts := w.Options()
	assert.Equal(t, DefaultOptions().Bounds, opts.Bounds)
	assert.Equal(t, DefaultCapacity, opts.Capacity)
	assert.Equal(t, float32(DefaultRadius), opts.Radius)
	assert.Equal(t, float32(DefaultMass), opts.Mass)
	assert.Equal(t, float32(DefaultVelocityScale), opts.VelocityScale)
	assert.Equal(t, float32(0.2), opts.Friction)
	assert.Equal(t, float32(1.5), opts.Gravity)
}

func TestWorldSpawnLaunchVelocity(t *testing.T) {
	w := NewWorld(DefaultOptions())
	ok := w.Spawn(SpawnRequest{Anchor: V2(100, 100), Release: V2(110, 96)}, red)
	require.True(t, ok)
	require.Equal(t, 1, w.Len())

	b := w.Body(0)
	assert.Equal(t, V2(100, 100), b.Position)
	assert.Equal(t, V2(-30, 12), b.Velocity)
	assert.Equal(t, float32(20), b.Radius)
	assert.Equal(t, float32(1), b.Mass)
	assert.Equal(t, red, b.Color)
}

func TestWorldSpawnZeroDrag(t *testing.T) {
	w := NewWorld(DefaultOptions())
	w.Spawn(SpawnRequest{Anchor: V2(50, 60), Release: V2(50, 60)}, red)
	assert.True(t, w.Body(0).Velocity.IsZero())
}

func TestWorldCapacity(t *testing.T) {
	w := NewWorld(DefaultOptions())
	req := SpawnRequest{Anchor: V2(400, 400), Release: V2(400, 400)}
	for i := 0; i < DefaultCapacity; i++ {
		require.True(t, w.Spawn(req, red))
	}
	assert.False(t, w.Spawn(req, red))
	assert.Equal(t, DefaultCapacity, w.Len())
	assert.False(t, w.AddBody(NewBody(V2(1, 1), V2(0, 0), 0, 0, red)))
	assert.Equal(t, DefaultCapacity, w.Len())
}

func TestWorldStepOrder(t *testing.T) {
	opts := DefaultOptions()
	opts.Friction = 0.5
	opts.Gravity = 2
	w := NewWorld(opts)
	w.AddBody(NewBody(V2(400, 400), V2(10, 0), 20, 1, red))

	w.Step(1)
	b := w.Body(0)
	// Moved with the old velocity, then damped, then gravity added.
	assert.Equal(t, V2(410, 400), b.Position)
	assert.Equal(t, V2(5, 2), b.Velocity)
}

func TestWorldStepCountsCollisions(t *testing.T) {
	w := NewWorld(DefaultOptions())
	w.AddBody(NewBody(V2(100, 100), V2(5, 0), 20, 1, red))
	w.AddBody(NewBody(V2(120, 100), V2(-5, 0), 20, 1, red))

	assert.Equal(t, 1, w.Step(0))
	assert.Equal(t, 1, w.Collisions())
	assert.Equal(t, V2(-5, 0), w.Body(0).Velocity)

	assert.Equal(t, 0, w.Step(0))
	assert.Equal(t, 1, w.Collisions())
}

func TestWorldSnapshot(t *testing.T) {
	w := NewWorld(DefaultOptions())
	w.Spawn(SpawnRequest{Anchor: V2(10, 20), Release: V2(15, 20)}, red)

	snap := w.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, BodyView{Position: V2(10, 20), Radius: 20, Color: red}, snap[0])

	snap[0].Position = V2(0, 0)
	assert.Equal(t, V2(10, 20), w.Body(0).Position)
}
