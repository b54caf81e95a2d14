package physics

import "image/color"

const (
	// DefaultRadius is the radius every spawned body gets unless configured otherwise.
	DefaultRadius = 20
	// DefaultMass is the mass every spawned body gets unless configured otherwise.
	DefaultMass = 1
)

// Body is a circular body with position, velocity, radius and mass.
// Radius and mass are fixed once the body is created. Color is only used for drawing.
type Body struct {
	Position Vec2
	Velocity Vec2
	Radius   float32
	Mass     float32
	Color    color.RGBA
}

// NewBody returns a body at position moving with velocity.
// A non-positive radius or mass is replaced by DefaultRadius or DefaultMass.
func NewBody(position, velocity Vec2, radius, mass float32, c color.RGBA) *Body {
	if radius <= 0 {
		radius = DefaultRadius
	}
	if mass <= 0 {
		mass = DefaultMass
	}
	return &Body{
		Position: position,
		Velocity: velocity,
		Radius:   radius,
		Mass:     mass,
		Color:    c,
	}
}

// BodyView is the read-only part of a body handed to the renderer each frame.
type BodyView struct {
	Position Vec2
	Radius   float32
	Color    color.RGBA
}

// Bounds is the rectangular domain [0, Width] x [0, Height] bodies are kept inside.
type Bounds struct {
	Width  float32
	Height float32
}
