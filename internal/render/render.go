package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"particle-sandbox/internal/physics"
	"particle-sandbox/internal/sandbox"
)

// previewColor is the launch line drawn while dragging.
var previewColor = rl.NewColor(255, 0, 0, 255)

// Renderer draws bodies as filled circles with raylib. It implements sandbox.Renderer.
// Call Draw between BeginDrawing and EndDrawing.
type Renderer struct{}

// New returns a raylib renderer.
func New() *Renderer {
	return &Renderer{}
}

// Draw renders the drag preview first, then every body on top of it in spawn order.
func (r *Renderer) Draw(bodies []physics.BodyView, preview sandbox.Preview) {
	if preview.Active {
		rl.DrawLineV(toVector2(preview.Anchor), toVector2(preview.Tip), previewColor)
	}
	for _, b := range bodies {
		rl.DrawCircleV(toVector2(b.Position), b.Radius, b.Color)
	}
}

func toVector2(v physics.Vec2) rl.Vector2 {
	return rl.NewVector2(v.X, v.Y)
}
