// Package commands dispatches command-line subcommands, each with its own flag set.
package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
)

// Usage errors returned by Execute. Errors from a command's Run are returned unwrapped.
var (
	ErrNoCommand      = errors.New("missing subcommand")
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadFlags       = errors.New("invalid arguments")
)

// IsUsage reports whether err came from parsing the command line rather than from running a command.
// flag.ErrHelp is not a usage error.
func IsUsage(err error) bool {
	return errors.Is(err, ErrNoCommand) || errors.Is(err, ErrUnknownCommand) || errors.Is(err, ErrBadFlags)
}

// Command is a subcommand with its own flags and a Run function.
// Flags are defined on FlagSet; Run is called after Parse and receives the remaining positional args.
type Command struct {
	Name    string
	Usage   string
	FlagSet *flag.FlagSet
	Run     func(args []string) error
}

// Registry holds subcommands by name. Add commands with Register; run with Execute.
type Registry struct {
	cmds map[string]*Command
	def  string
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register adds a subcommand. fs is that command's FlagSet; run is called after fs.Parse(args[1:]) succeeds.
func (r *Registry) Register(name, usage string, fs *flag.FlagSet, run func(args []string) error) {
	r.cmds[name] = &Command{Name: name, Usage: usage, FlagSet: fs, Run: run}
}

// SetDefault names the subcommand run when args is empty or starts with a flag.
func (r *Registry) SetDefault(name string) {
	r.def = name
}

// Names returns the registered subcommand names in order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for n := range r.cmds {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Execute runs the subcommand in args[0] with args[1:] as flag/positional arguments.
// Returns an error for unknown command, parse error, or from Run().
func (r *Registry) Execute(args []string) error {
	if r.def != "" && (len(args) == 0 || (len(args[0]) > 0 && args[0][0] == '-')) {
		args = append([]string{r.def}, args...)
	}
	if len(args) == 0 {
		return ErrNoCommand
	}
	name := args[0]
	cmd, ok := r.cmds[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	if err := cmd.FlagSet.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %s: %w", ErrBadFlags, name, err)
	}
	return cmd.Run(cmd.FlagSet.Args())
}

// PrintUsage writes one line per subcommand.
func (r *Registry) PrintUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: solarsystem <command> [flags]")
	for _, n := range r.Names() {
		fmt.Fprintf(w, "  %-8s %s\n", n, r.cmds[n].Usage)
	}
}
