package physics

// MinContactDistance is the center distance under which two bodies are treated as coincident.
// Coincident bodies are pushed apart along +X instead of dividing by a zero distance.
const MinContactDistance = 1e-4

// overlapMargin is added to the penetration depth so separated bodies end up slightly apart.
const overlapMargin = 1.0

// ResolveCollisions checks every unordered pair of bodies for circle overlap and resolves
// each contact with an elastic impulse along the contact normal followed by an even
// positional split. It returns the number of colliding pairs found in this pass.
// A pair that stays in contact is counted again on every pass.
func ResolveCollisions(bodies []*Body) int {
	collisions := 0
	for i := 0; i < len(bodies); i++ {
		bi := bodies[i]
		for j := i + 1; j < len(bodies); j++ {
			bj := bodies[j]
			if resolvePair(bi, bj) {
				collisions++
			}
		}
	}
	return collisions
}

// resolvePair handles one pair and reports whether they were in contact.
func resolvePair(bi, bj *Body) bool {
	d := bj.Position.Sub(bi.Position)
	distance := d.Len()
	if distance > bi.Radius+bj.Radius {
		return false
	}

	var n Vec2
	if distance < MinContactDistance {
		n = Vec2{X: 1}
		distance = 0
	} else {
		n = d.Scale(1 / distance)
	}

	// Tangential components are left untouched.
	p := 2 * (bi.Velocity.Dot(n) - bj.Velocity.Dot(n)) / (bi.Mass + bj.Mass)
	bi.Velocity = bi.Velocity.Sub(n.Scale(p * bj.Mass))
	bj.Velocity = bj.Velocity.Add(n.Scale(p * bi.Mass))

	overlap := 0.5 * (bi.Radius + bj.Radius - distance + overlapMargin)
	bi.Position = bi.Position.Sub(n.Scale(overlap))
	bj.Position = bj.Position.Add(n.Scale(overlap))
	return true
}
