package debug

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"particle-sandbox/internal/sandbox"
)

const (
	hudFontSize   = 20
	hudPadding    = 12
	hudLineHeight = hudFontSize + 4
	// updateInterval: only refresh the text every N frames to reduce allocations.
	updateInterval = 30
)

// HUD draws FPS, body count and collision count in the top-left corner.
// It implements sandbox.Reporter so it always shows the latest stats.
type HUD struct {
	Visible    bool
	stats      sandbox.Stats
	frameCount uint32
	lines      []string
}

// New returns a HUD; visible controls whether Draw renders anything.
func New(visible bool) *HUD {
	return &HUD{Visible: visible}
}

func (h *HUD) Report(s sandbox.Stats) {
	h.stats = s
}

func (h *HUD) Final(s sandbox.Stats) {
	h.stats = s
}

// Text returns the HUD lines for the given fps.
func (h *HUD) Text(fps int32) []string {
	return []string{
		fmt.Sprintf("FPS: %d", fps),
		fmt.Sprintf("Bodies: %d", h.stats.Bodies),
		fmt.Sprintf("Collisions: %d", h.stats.Collisions),
	}
}

// Draw renders the overlay. Call after the bodies so it stays on top.
func (h *HUD) Draw() {
	if !h.Visible {
		return
	}
	if h.lines == nil || h.frameCount%updateInterval == 0 {
		h.lines = h.Text(rl.GetFPS())
	}
	h.frameCount++

	y := int32(hudPadding)
	for _, line := range h.lines {
		rl.DrawText(line, hudPadding, y, hudFontSize, rl.Green)
		y += hudLineHeight
	}
}
