package sandbox

import (
	"math"
	"testing"

	"particle-sandbox/internal/physics"

	"github.com/stretchr/testify/assert"
)

func TestScriptReleasesPerFrame(t *testing.T) {
	reqs := RandomSpawns(5, physics.Bounds{Width: 800, Height: 800}, 20, 50, 3)
	s := NewScript(reqs, 2)

	assert.Len(t, s.SpawnRequests(), 2)
	assert.Len(t, s.SpawnRequests(), 2)
	assert.Len(t, s.SpawnRequests(), 1)
	assert.Nil(t, s.SpawnRequests())
	assert.Equal(t, 0, s.Remaining())

	_, _, ok := s.Preview()
	assert.False(t, ok)
}

func TestRandomSpawnsInsideBounds(t *testing.T) {
	bounds := physics.Bounds{Width: 400, Height: 300}
	reqs := RandomSpawns(200, bounds, 20, 30, 11)
	for _, r := range reqs {
		assert.GreaterOrEqual(t, r.Anchor.X, float32(20))
		assert.LessOrEqual(t, r.Anchor.X, float32(380))
		assert.GreaterOrEqual(t, r.Anchor.Y, float32(20))
		assert.LessOrEqual(t, r.Anchor.Y, float32(280))
		drag := r.Release.Sub(r.Anchor)
		assert.LessOrEqual(t, drag.X, float32(30))
		assert.GreaterOrEqual(t, drag.X, float32(-30))
	}
	assert.Equal(t, reqs, RandomSpawns(200, bounds, 20, 30, 11))
}

func TestScriptedRunStaysFinite(t *testing.T) {
	opts := physics.DefaultOptions()
	opts.Friction = 0.01
	opts.Gravity = 2
	world := physics.NewWorld(opts)
	reqs := RandomSpawns(60, opts.Bounds, opts.Radius, 80, 5)
	sb := New(world, NewScript(reqs, 10), nil, nil, Options{})

	for i := 0; i < 300; i++ {
		sb.Frame(1.0 / 60)
	}
	assert.Equal(t, 60, world.Len())
	for _, v := range world.Snapshot() {
		assert.False(t, math.IsNaN(float64(v.Position.X)))
		assert.False(t, math.IsNaN(float64(v.Position.Y)))
	}
}
