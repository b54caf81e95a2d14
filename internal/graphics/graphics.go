package graphics

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Window describes the window Run opens.
type Window struct {
	Width     int32
	Height    int32
	Title     string
	TargetFPS int32
}

// Run opens the window and runs the main loop until the user closes it. Each frame it calls
// update with the elapsed wall-clock seconds, then clears the screen and calls draw.
// The window is released when Run returns. A window that cannot be created is an error.
func Run(w Window, update func(dt float32), draw func()) error {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(w.Width, w.Height, w.Title)
	if !rl.IsWindowReady() {
		return fmt.Errorf("graphics: could not create %dx%d window", w.Width, w.Height)
	}
	defer rl.CloseWindow()

	if w.TargetFPS > 0 {
		rl.SetTargetFPS(w.TargetFPS)
	}

	for !rl.WindowShouldClose() {
		update(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
	return nil
}
