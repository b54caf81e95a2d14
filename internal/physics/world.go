package physics

import (
	"image/color"

	"github.com/jinzhu/copier"
)

const (
	// DefaultCapacity bounds the body count so the O(n²) pair check stays cheap.
	DefaultCapacity = 100
	// DefaultVelocityScale converts drag length in pixels into launch speed in pixels/second.
	DefaultVelocityScale = 3.0
	DefaultWidth         = 800
	DefaultHeight        = 800
)

// Options configure a World. Zero fields are replaced by the package defaults in NewWorld,
// except Friction and Gravity where zero is a valid setting.
type Options struct {
	Bounds        Bounds
	Capacity      int
	Friction      float32
	Gravity       float32
	Radius        float32
	Mass          float32
	VelocityScale float32
}

// DefaultOptions returns an 800x800 world holding up to 100 bodies, with no friction or gravity.
func DefaultOptions() Options {
	return Options{
		Bounds:        Bounds{Width: DefaultWidth, Height: DefaultHeight},
		Capacity:      DefaultCapacity,
		Radius:        DefaultRadius,
		Mass:          DefaultMass,
		VelocityScale: DefaultVelocityScale,
	}
}

// SpawnRequest is a finished drag: the press point and the release point.
type SpawnRequest struct {
	Anchor  Vec2
	Release Vec2
}

// LaunchVelocity returns the velocity a body spawned from req starts with.
// It points opposite the drag and grows linearly with drag length; a zero-length drag gives zero velocity.
func LaunchVelocity(req SpawnRequest, scale float32) Vec2 {
	drag := req.Release.Sub(req.Anchor)
	if drag.IsZero() {
		return Vec2{}
	}
	return drag.Scale(-scale)
}

// World holds the bodies and runs one physics step per frame: integrate and apply friction
// per body, then resolve collisions across all pairs.
type World struct {
	opts       Options
	bodies     []*Body
	collisions int
}

// NewWorld returns an empty world configured by opts.
func NewWorld(opts Options) *World {
	def := DefaultOptions()
	if opts.Bounds.Width <= 0 || opts.Bounds.Height <= 0 {
		opts.Bounds = def.Bounds
	}
	if opts.Capacity <= 0 {
		opts.Capacity = def.Capacity
	}
	if opts.Radius <= 0 {
		opts.Radius = def.Radius
	}
	if opts.Mass <= 0 {
		opts.Mass = def.Mass
	}
	if opts.VelocityScale <= 0 {
		opts.VelocityScale = def.VelocityScale
	}
	return &World{
		opts:   opts,
		bodies: make([]*Body, 0, opts.Capacity),
	}
}

// Options returns the settings the world was created with, after defaults were applied.
func (w *World) Options() Options {
	return w.opts
}

// Spawn adds a body for req at its anchor point. When the world is full the request is
// dropped and Spawn returns false; this is not an error.
func (w *World) Spawn(req SpawnRequest, c color.RGBA) bool {
	if len(w.bodies) >= w.opts.Capacity {
		return false
	}
	v := LaunchVelocity(req, w.opts.VelocityScale)
	w.bodies = append(w.bodies, NewBody(req.Anchor, v, w.opts.Radius, w.opts.Mass, c))
	return true
}

// AddBody appends an already built body, subject to the same capacity check as Spawn.
func (w *World) AddBody(b *Body) bool {
	if len(w.bodies) >= w.opts.Capacity {
		return false
	}
	w.bodies = append(w.bodies, b)
	return true
}

// Step advances the simulation by dt seconds and returns the number of contacts resolved.
// Collisions are resolved after every body has moved, on the already integrated positions.
func (w *World) Step(dt float32) int {
	for _, b := range w.bodies {
		Integrate(b, dt, w.opts.Bounds)
		ApplyFriction(b, w.opts.Friction, w.opts.Gravity)
	}
	n := ResolveCollisions(w.bodies)
	w.collisions += n
	return n
}

// Len returns the number of bodies.
func (w *World) Len() int {
	return len(w.bodies)
}

// Collisions returns the running contact count since the world was created.
func (w *World) Collisions() int {
	return w.collisions
}

// Body returns the i-th body in spawn order.
func (w *World) Body(i int) *Body {
	return w.bodies[i]
}

// Snapshot returns a copy of what the renderer needs for every body, in spawn order.
func (w *World) Snapshot() []BodyView {
	out := make([]BodyView, len(w.bodies))
	for i, b := range w.bodies {
		_ = copier.Copy(&out[i], b)
	}
	return out
}
