package physics

// Integrate moves b by its velocity over dt seconds, then reflects it off the walls of bounds.
// Each axis is checked on its own: when the body's edge crosses a wall, that velocity
// component is inverted and the position is clamped so the edge lies on the wall.
func Integrate(b *Body, dt float32, bounds Bounds) {
	b.Position = b.Position.Add(b.Velocity.Scale(dt))

	r := b.Radius
	if b.Position.X-r < 0 || b.Position.X+r > bounds.Width {
		b.Velocity.X = -b.Velocity.X
		if b.Position.X < r {
			b.Position.X = r
		} else {
			b.Position.X = bounds.Width - r
		}
	}
	if b.Position.Y-r < 0 || b.Position.Y+r > bounds.Height {
		b.Velocity.Y = -b.Velocity.Y
		if b.Position.Y < r {
			b.Position.Y = r
		} else {
			b.Position.Y = bounds.Height - r
		}
	}
}
