package main

import (
	"flag"
	"fmt"
	"os"

	"particle-sandbox/internal/commands"
	"particle-sandbox/internal/logger"
	"particle-sandbox/internal/palette"
	"particle-sandbox/internal/physics"
	"particle-sandbox/internal/sandbox"
	"particle-sandbox/internal/sandboxconfig"
	"particle-sandbox/internal/telemetry"
)

type headlessFlags struct {
	frames   int
	spawn    int
	perFrame int
	dt       float64
	maxDrag  float64
	status   bool
}

func registerHeadless(reg *commands.Registry) {
	fs := flag.NewFlagSet("headless", flag.ContinueOnError)
	var cf configFlags
	cf.register(fs)
	var hf headlessFlags
	fs.IntVar(&hf.frames, "frames", 600, "number of frames to simulate")
	fs.IntVar(&hf.spawn, "spawn", 50, "number of random bodies to launch")
	fs.IntVar(&hf.perFrame, "per-frame", 1, "bodies launched per frame until -spawn is reached")
	fs.Float64Var(&hf.dt, "dt", 1.0/60, "seconds of simulated time per frame")
	fs.Float64Var(&hf.maxDrag, "max-drag", 60, "largest random drag per axis, in pixels")
	fs.BoolVar(&hf.status, "status", false, "print the status block every frame")
	reg.Register("headless", "simulate random launches without a window", fs, func() error {
		cfg, err := cf.load(fs)
		if err != nil {
			return err
		}
		if hf.frames < 0 || hf.spawn < 0 || hf.dt < 0 {
			return fmt.Errorf("headless: -frames, -spawn and -dt must not be negative")
		}
		st := runHeadless(cfg, hf, telemetry.New(os.Stdout, logger.New(cfg.LogPath)))
		fmt.Printf("frames=%d bodies=%d collisions=%d\n", hf.frames, st.Bodies, st.Collisions)
		return nil
	})
}

// finalOnly forwards only the shutdown report.
type finalOnly struct {
	sandbox.Reporter
}

func (finalOnly) Report(sandbox.Stats) {}

func runHeadless(cfg sandboxconfig.Config, hf headlessFlags, console sandbox.Reporter) sandbox.Stats {
	world := physics.NewWorld(cfg.WorldOptions())
	opts := world.Options()
	seed := cfg.Seed
	if seed == 0 {
		seed = 1
	}
	reqs := sandbox.RandomSpawns(hf.spawn, opts.Bounds, opts.Radius, float32(hf.maxDrag), seed)

	var rep sandbox.Reporter = finalOnly{console}
	if hf.status {
		rep = console
	}
	sb := sandbox.New(world, sandbox.NewScript(reqs, hf.perFrame), palette.New(seed), rep, cfg.SandboxOptions())
	for i := 0; i < hf.frames; i++ {
		sb.Frame(float32(hf.dt))
	}
	return sb.Close()
}
