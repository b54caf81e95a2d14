package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"particle-sandbox/internal/commands"
	"particle-sandbox/internal/env"
)

func main() {
	if err := env.Load(".env"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	reg := commands.NewRegistry()
	registerRun(reg)
	registerHeadless(reg)
	reg.Default = "run"

	if err := reg.Execute(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			reg.Usage(os.Stderr)
			return
		}
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, commands.ErrUnknownCommand) {
			reg.Usage(os.Stderr)
		}
		os.Exit(1)
	}
}
