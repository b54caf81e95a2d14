package sandbox

import (
	"particle-sandbox/internal/palette"
	"particle-sandbox/internal/physics"
)

// DefaultMaxSubSteps caps how many fixed steps one frame may run before the backlog is dropped.
const DefaultMaxSubSteps = 8

// Input supplies finished drags and the drag in progress.
type Input interface {
	SpawnRequests() []physics.SpawnRequest
	Preview() (anchor, tip physics.Vec2, ok bool)
}

// Preview is the launch line drawn while a drag is in progress.
type Preview struct {
	Anchor physics.Vec2
	Tip    physics.Vec2
	Active bool
}

// Renderer draws one frame from a snapshot of the bodies.
type Renderer interface {
	Draw(bodies []physics.BodyView, preview Preview)
}

// Stats is what the sandbox reports each frame.
type Stats struct {
	Bodies     int
	Collisions int
}

// Reporter receives Stats once per frame and once more at shutdown.
type Reporter interface {
	Report(s Stats)
	Final(s Stats)
}

// Options control how wall-clock frame time is turned into physics steps.
// FixedStep == 0 runs exactly one step of the measured frame time per frame.
// FixedStep > 0 drains an accumulator in FixedStep slices, at most MaxSubSteps per frame.
type Options struct {
	FixedStep   float32
	MaxSubSteps int
}

// Sandbox is the per-frame orchestrator: it spawns bodies from input, steps the world and reports.
// It owns all mutable simulation state; nothing here is safe for concurrent use.
type Sandbox struct {
	world       *physics.World
	input       Input
	colors      *palette.Palette
	reporter    Reporter
	opts        Options
	accumulator float32
	frames      int
}

// New returns a sandbox driving world. input and reporter may be nil.
func New(world *physics.World, input Input, colors *palette.Palette, reporter Reporter, opts Options) *Sandbox {
	if opts.FixedStep < 0 {
		opts.FixedStep = 0
	}
	if opts.MaxSubSteps <= 0 {
		opts.MaxSubSteps = DefaultMaxSubSteps
	}
	if colors == nil {
		colors = palette.New(0)
	}
	return &Sandbox{
		world:    world,
		input:    input,
		colors:   colors,
		reporter: reporter,
		opts:     opts,
	}
}

// World returns the world being simulated.
func (s *Sandbox) World() *physics.World {
	return s.world
}

// Frame runs one frame with dt seconds of elapsed time and returns the number of physics steps taken.
// Spawn requests beyond the world's capacity are dropped without notice.
func (s *Sandbox) Frame(dt float32) int {
	if dt < 0 {
		dt = 0
	}
	if s.input != nil {
		for _, req := range s.input.SpawnRequests() {
			s.world.Spawn(req, s.colors.Next())
		}
	}

	steps := 0
	if s.opts.FixedStep == 0 {
		s.world.Step(dt)
		steps = 1
	} else {
		s.accumulator += dt
		for s.accumulator >= s.opts.FixedStep && steps < s.opts.MaxSubSteps {
			s.world.Step(s.opts.FixedStep)
			s.accumulator -= s.opts.FixedStep
			steps++
		}
		if steps == s.opts.MaxSubSteps {
			s.accumulator = 0
		}
	}

	s.frames++
	if s.reporter != nil {
		s.reporter.Report(s.Stats())
	}
	return steps
}

// Frames returns how many frames have run.
func (s *Sandbox) Frames() int {
	return s.frames
}

// Render hands r the current body snapshot and drag preview.
func (s *Sandbox) Render(r Renderer) {
	var p Preview
	if s.input != nil {
		p.Anchor, p.Tip, p.Active = s.input.Preview()
	}
	r.Draw(s.world.Snapshot(), p)
}

// Stats returns the current body count and the running collision count.
func (s *Sandbox) Stats() Stats {
	return Stats{Bodies: s.world.Len(), Collisions: s.world.Collisions()}
}

// Close reports the final stats once and returns them.
func (s *Sandbox) Close() Stats {
	st := s.Stats()
	if s.reporter != nil {
		s.reporter.Final(st)
	}
	return st
}

// Reporters fans each report out to every reporter in order.
type Reporters []Reporter

func (rs Reporters) Report(s Stats) {
	for _, r := range rs {
		r.Report(s)
	}
}

func (rs Reporters) Final(s Stats) {
	for _, r := range rs {
		r.Final(s)
	}
}
