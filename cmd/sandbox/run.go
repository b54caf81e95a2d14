package main

import (
	"flag"
	"os"

	"particle-sandbox/internal/commands"
	"particle-sandbox/internal/debug"
	"particle-sandbox/internal/gesture"
	"particle-sandbox/internal/graphics"
	"particle-sandbox/internal/logger"
	"particle-sandbox/internal/palette"
	"particle-sandbox/internal/physics"
	"particle-sandbox/internal/render"
	"particle-sandbox/internal/sandbox"
	"particle-sandbox/internal/sandboxconfig"
	"particle-sandbox/internal/telemetry"
)

const windowTitle = "Collision Sandbox"

func registerRun(reg *commands.Registry) {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	var cf configFlags
	cf.register(fs)
	reg.Register("run", "open the sandbox window (default)", fs, func() error {
		cfg, err := cf.load(fs)
		if err != nil {
			return err
		}
		return runWindow(cfg)
	})
}

// runWindow runs the interactive sandbox: drag with the left mouse button to launch a body.
func runWindow(cfg sandboxconfig.Config) error {
	log := logger.New(cfg.LogPath)
	logStart(log, cfg)

	tracker := gesture.New()
	hud := debug.New(cfg.ShowHUD)
	world := physics.NewWorld(cfg.WorldOptions())
	reporters := sandbox.Reporters{telemetry.New(os.Stdout, log), hud}
	sb := sandbox.New(world, tracker, palette.New(cfg.Seed), reporters, cfg.SandboxOptions())
	r := render.New()

	win := graphics.Window{
		Width:     int32(cfg.Width),
		Height:    int32(cfg.Height),
		Title:     windowTitle,
		TargetFPS: int32(cfg.TargetFPS),
	}
	update := func(dt float32) {
		graphics.PollMouse(tracker)
		sb.Frame(dt)
	}
	draw := func() {
		sb.Render(r)
		hud.Draw()
	}
	if err := graphics.Run(win, update, draw); err != nil {
		log.Log(err.Error())
		return err
	}
	sb.Close()
	return nil
}

func logStart(log *logger.Logger, cfg sandboxconfig.Config) {
	log.Logf("start: %gx%g capacity=%d friction=%g gravity=%g fixed_step=%g",
		cfg.Width, cfg.Height, cfg.Capacity, cfg.Friction, cfg.Gravity, cfg.FixedStep)
}
