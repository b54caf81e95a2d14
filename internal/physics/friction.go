package physics

import "github.com/chewxy/math32"

// RestThreshold is the speed below which a damped velocity component snaps to zero.
const RestThreshold = 0.01

// ApplyFriction damps a moving body by (1 - friction) and then adds gravity to its vertical velocity.
// Components whose magnitude drops below RestThreshold after damping become exactly zero.
// Gravity is added every call, also for a body at rest.
func ApplyFriction(b *Body, friction, gravity float32) {
	if !b.Velocity.IsZero() {
		b.Velocity = b.Velocity.Scale(1 - friction)
		if math32.Abs(b.Velocity.X) < RestThreshold {
			b.Velocity.X = 0
		}
		if math32.Abs(b.Velocity.Y) < RestThreshold {
			b.Velocity.Y = 0
		}
	}
	b.Velocity.Y += gravity
}
