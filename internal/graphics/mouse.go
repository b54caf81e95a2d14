package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"particle-sandbox/internal/gesture"
	"particle-sandbox/internal/physics"
)

// PollMouse feeds this frame's left-button state and cursor position into t.
func PollMouse(t *gesture.Tracker) {
	pos := rl.GetMousePosition()
	p := physics.V2(pos.X, pos.Y)
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		t.Press(p)
	}
	t.Move(p)
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		t.Release(p)
	}
}
