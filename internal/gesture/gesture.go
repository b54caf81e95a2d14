package gesture

import "particle-sandbox/internal/physics"

// Tracker turns mouse press/move/release into spawn requests.
// A press anchors the drag, a release finishes it; finished drags queue up until
// SpawnRequests drains them once per frame.
type Tracker struct {
	dragging bool
	anchor   physics.Vec2
	cursor   physics.Vec2
	pending  []physics.SpawnRequest
}

// New returns a tracker with no drag in progress.
func New() *Tracker {
	return &Tracker{}
}

// Press starts a drag anchored at p. A press during a drag re-anchors it.
func (t *Tracker) Press(p physics.Vec2) {
	t.dragging = true
	t.anchor = p
	t.cursor = p
}

// Move updates the cursor of the current drag. Ignored when not dragging.
func (t *Tracker) Move(p physics.Vec2) {
	if t.dragging {
		t.cursor = p
	}
}

// Release ends the drag at p and queues the resulting spawn request.
// It returns false when no drag was in progress.
func (t *Tracker) Release(p physics.Vec2) (physics.SpawnRequest, bool) {
	if !t.dragging {
		return physics.SpawnRequest{}, false
	}
	t.dragging = false
	req := physics.SpawnRequest{Anchor: t.anchor, Release: p}
	t.pending = append(t.pending, req)
	return req, true
}

// Dragging reports whether a drag is in progress.
func (t *Tracker) Dragging() bool {
	return t.dragging
}

// SpawnRequests returns the drags finished since the last call and clears the queue.
func (t *Tracker) SpawnRequests() []physics.SpawnRequest {
	if len(t.pending) == 0 {
		return nil
	}
	out := t.pending
	t.pending = nil
	return out
}

// Preview returns the launch line for the drag in progress: from the anchor to the
// cursor mirrored through the anchor, so it points where the body will fly.
func (t *Tracker) Preview() (anchor, tip physics.Vec2, ok bool) {
	if !t.dragging {
		return physics.Vec2{}, physics.Vec2{}, false
	}
	tip = t.anchor.Scale(2).Sub(t.cursor)
	return t.anchor, tip, true
}
