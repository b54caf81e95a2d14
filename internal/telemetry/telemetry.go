package telemetry

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"particle-sandbox/internal/logger"
	"particle-sandbox/internal/sandbox"
)

const statusLines = 3

// Console prints the simulation status block to a terminal, rewriting it in place every frame.
// It implements sandbox.Reporter.
type Console struct {
	out     *termenv.Output
	log     *logger.Logger
	printed bool
}

// New returns a Console writing to w. log, if not nil, receives the final report.
func New(w io.Writer, log *logger.Logger) *Console {
	return &Console{out: termenv.NewOutput(w), log: log}
}

// Report redraws the status block with s.
func (c *Console) Report(s sandbox.Stats) {
	if c.printed {
		c.out.CursorPrevLine(statusLines)
	}
	c.write(s)
	c.printed = true
}

// Final redraws the status block one last time and logs it.
func (c *Console) Final(s sandbox.Stats) {
	c.Report(s)
	if c.log != nil {
		c.log.Logf("shutdown: bodies=%d collisions=%d", s.Bodies, s.Collisions)
	}
}

func (c *Console) write(s sandbox.Stats) {
	lines := [statusLines]string{
		"SIMULATION DATA",
		fmt.Sprintf("Bodies: %d", s.Bodies),
		fmt.Sprintf("Collisions: %d", s.Collisions),
	}
	for _, l := range lines {
		c.out.ClearLine()
		fmt.Fprintln(c.out, l)
	}
}
