package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

// ErrUnknownCommand is returned by Execute for a subcommand that was never registered.
var ErrUnknownCommand = errors.New("unknown command")

// Command is a subcommand with its own flags and a Run function.
// Flags are defined on FlagSet; Run is called after Parse and can read flag state.
type Command struct {
	Name    string
	Summary string
	FlagSet *flag.FlagSet
	Run     func() error
}

// Registry holds subcommands by name. Add commands with Register; run with Execute.
type Registry struct {
	cmds  map[string]*Command
	order []string
	// Default is run when no subcommand is given or the first argument is a flag.
	Default string
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register adds a subcommand. fs is that command's FlagSet; run is called after fs.Parse succeeds.
func (r *Registry) Register(name, summary string, fs *flag.FlagSet, run func() error) {
	if _, ok := r.cmds[name]; !ok {
		r.order = append(r.order, name)
	}
	r.cmds[name] = &Command{Name: name, Summary: summary, FlagSet: fs, Run: run}
}

// Execute runs the subcommand in args[0] with args[1:] as flag/positional arguments.
// With no args, or when args[0] is a flag, the Default command gets all of args.
func (r *Registry) Execute(args []string) error {
	name := r.Default
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		name, args = args[0], args[1:]
	}
	if name == "" {
		return fmt.Errorf("missing subcommand")
	}
	cmd, ok := r.cmds[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	if err := cmd.FlagSet.Parse(args); err != nil {
		return err
	}
	return cmd.Run()
}

// Usage writes one line per registered subcommand, in registration order.
func (r *Registry) Usage(w io.Writer) {
	fmt.Fprintln(w, "commands:")
	for _, name := range r.order {
		fmt.Fprintf(w, "  %-10s %s\n", name, r.cmds[name].Summary)
	}
}
