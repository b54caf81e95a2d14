package sandbox

import (
	"golang.org/x/exp/rand"

	"particle-sandbox/internal/physics"
)

// Script is an Input that replays a fixed list of spawn requests, a few per frame.
// It never reports a drag in progress.
type Script struct {
	reqs     []physics.SpawnRequest
	perFrame int
}

// NewScript returns a script releasing perFrame requests per frame (all at once if perFrame <= 0).
func NewScript(reqs []physics.SpawnRequest, perFrame int) *Script {
	if perFrame <= 0 {
		perFrame = len(reqs)
	}
	return &Script{reqs: reqs, perFrame: perFrame}
}

func (s *Script) SpawnRequests() []physics.SpawnRequest {
	n := min(s.perFrame, len(s.reqs))
	if n == 0 {
		return nil
	}
	out := s.reqs[:n]
	s.reqs = s.reqs[n:]
	return out
}

func (s *Script) Preview() (anchor, tip physics.Vec2, ok bool) {
	return physics.Vec2{}, physics.Vec2{}, false
}

// Remaining returns how many requests have not been released yet.
func (s *Script) Remaining() int {
	return len(s.reqs)
}

// RandomSpawns builds n spawn requests with anchors inside bounds (kept one radius off the walls)
// and drags of up to maxDrag pixels in each axis.
func RandomSpawns(n int, bounds physics.Bounds, radius, maxDrag float32, seed uint64) []physics.SpawnRequest {
	rng := rand.New(rand.NewSource(seed))
	reqs := make([]physics.SpawnRequest, n)
	for i := range reqs {
		anchor := physics.V2(
			radius+rng.Float32()*(bounds.Width-2*radius),
			radius+rng.Float32()*(bounds.Height-2*radius),
		)
		drag := physics.V2((rng.Float32()*2-1)*maxDrag, (rng.Float32()*2-1)*maxDrag)
		reqs[i] = physics.SpawnRequest{Anchor: anchor, Release: anchor.Add(drag)}
	}
	return reqs
}
