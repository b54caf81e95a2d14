package main

import (
	"flag"

	"particle-sandbox/internal/sandboxconfig"
)

// configFlags are the settings every subcommand accepts. They override the config file and environment.
type configFlags struct {
	path      string
	friction  float64
	gravity   float64
	fixedStep float64
	capacity  int
	seed      uint64
}

func (c *configFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.path, "config", sandboxconfig.ConfigPath, "path to the YAML config file")
	fs.Float64Var(&c.friction, "friction", 0, "velocity damping per frame, in [0,1]")
	fs.Float64Var(&c.gravity, "gravity", 0, "downward velocity added per frame")
	fs.Float64Var(&c.fixedStep, "fixed-step", 0, "physics step in seconds; 0 uses the frame time")
	fs.IntVar(&c.capacity, "capacity", 0, "maximum number of bodies")
	fs.Uint64Var(&c.seed, "seed", 0, "random seed for colors and headless launches; 0 picks one from the clock")
}

// load reads the config file, applies SANDBOX_* environment overrides, then the flags
// that were set explicitly on fs.
func (c *configFlags) load(fs *flag.FlagSet) (sandboxconfig.Config, error) {
	cfg, err := sandboxconfig.Load(c.path)
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "friction":
			cfg.Friction = float32(c.friction)
		case "gravity":
			cfg.Gravity = float32(c.gravity)
		case "fixed-step":
			cfg.FixedStep = float32(c.fixedStep)
		case "capacity":
			cfg.Capacity = c.capacity
		case "seed":
			cfg.Seed = c.seed
		}
	})
	return cfg, cfg.Validate()
}
