package zfish

import (
	"fmt"
	"sort"

	orderedmap "github.com/wk8/go-ordered-map"
)

// Command is a named node of the command tree: the application at the root,
// a subcommand everywhere else. It owns its Arg descriptors (declaration
// order defines the positional sequence and help order), child Commands and
// mutually exclusive groups. The tree is built top-down before parsing and
// treated as read-only afterwards, so a single tree may serve concurrent
// parses.
type Command struct {
	// Name is the identifier matched on the command line.
	Name string
	// Aliases are alternate match tokens; duplicates across siblings are a
	// configuration error.
	Aliases []string
	// About is the one-line description; LongAbout an optional extended one.
	About     string
	LongAbout string
	// Version enables the --version/-V alias at this level when non-empty.
	Version string
	// Args in declaration order.
	Args []*Arg
	// Subcommands in declaration order.
	Subcommands []*Command
	// Groups of mutually exclusive arguments.
	Groups []*ArgGroup
}

// NewCommand describes a command via option functions.
func NewCommand(name string, configs ...ConfigureCommandFunc) *Command {
	cmd := &Command{Name: name}
	cmd.Set(configs...)

	return cmd
}

// Set applies the provided option functions to the command.
func (c *Command) Set(configs ...ConfigureCommandFunc) {
	for _, config := range configs {
		config(c)
	}
}

// Lookup resolves a subcommand path ("remote", "add") below this command by
// name or alias. An unresolved component yields an UnknownSubcommandError.
func (c *Command) Lookup(path ...string) (*Command, error) {
	current := c
	for _, name := range path {
		sub := current.findSubcommand(name)
		if sub == nil {
			return nil, &UnknownSubcommandError{Token: name}
		}
		current = sub
	}

	return current, nil
}

// findSubcommand resolves a token to a child Command by name or alias.
func (c *Command) findSubcommand(token string) *Command {
	for _, sub := range c.Subcommands {
		if sub.Name == token {
			return sub
		}
		for _, alias := range sub.Aliases {
			if alias == token {
				return sub
			}
		}
	}

	return nil
}

// positionals returns the positional arguments sorted by ascending slot; the
// variadic one sorts last via its reserved index.
func (c *Command) positionals() []*Arg {
	args := make([]*Arg, 0, len(c.Args))
	for _, arg := range c.Args {
		if arg.positional() {
			args = append(args, arg)
		}
	}
	sort.SliceStable(args, func(i, j int) bool {
		return *args[i].Index < *args[j].Index
	})

	return args
}

// options returns the non-positional arguments in declaration order.
func (c *Command) options() []*Arg {
	args := make([]*Arg, 0, len(c.Args))
	for _, arg := range c.Args {
		if !arg.positional() {
			args = append(args, arg)
		}
	}

	return args
}

// compile checks the command's descriptor invariants and builds the
// insertion-ordered argument registry used by the scanner. Called once per
// ParseArgs at each level; a failure wraps ErrConfiguration.
func (c *Command) compile() (*orderedmap.OrderedMap, error) {
	if c.Name == "" {
		return nil, fmt.Errorf("%w: the 'Name' property is missing", ErrConfiguration)
	}

	registry := orderedmap.New()
	shorts := map[rune]string{}
	longs := map[string]string{}
	for _, arg := range c.Args {
		if arg.Name == "" {
			return nil, fmt.Errorf("%w: command '%s' declares an argument without a name", ErrConfiguration, c.Name)
		}
		if _, exists := registry.Get(arg.Name); exists {
			return nil, fmt.Errorf("%w: argument '%s' declared twice on command '%s'", ErrConfiguration, arg.Name, c.Name)
		}
		registry.Set(arg.Name, arg)

		if arg.Short != 0 {
			if prior, exists := shorts[arg.Short]; exists {
				return nil, fmt.Errorf("%w: short flag '%c' used by both '%s' and '%s'", ErrConfiguration, arg.Short, prior, arg.Name)
			}
			shorts[arg.Short] = arg.Name
		}
		if arg.Long != "" {
			if prior, exists := longs[arg.Long]; exists {
				return nil, fmt.Errorf("%w: long flag '%s' used by both '%s' and '%s'", ErrConfiguration, arg.Long, prior, arg.Name)
			}
			longs[arg.Long] = arg.Name
		}
	}

	if err := c.checkPositionals(); err != nil {
		return nil, err
	}
	if err := c.checkSubcommands(); err != nil {
		return nil, err
	}

	return registry, nil
}

// checkPositionals enforces at most one variadic positional and unique,
// contiguous slots starting at 0 for the explicit ones.
func (c *Command) checkPositionals() error {
	var indices []int
	variadics := 0
	for _, arg := range c.Args {
		if !arg.positional() {
			continue
		}
		if arg.Last {
			variadics++
			if variadics > 1 {
				return fmt.Errorf("%w: command '%s' declares more than one variadic positional", ErrConfiguration, c.Name)
			}
			continue
		}
		if *arg.Index < 0 {
			return fmt.Errorf("%w: positional index must be non-negative, got %d for '%s'", ErrConfiguration, *arg.Index, arg.Name)
		}
		indices = append(indices, *arg.Index)
	}

	sort.Ints(indices)
	for i, index := range indices {
		if index != i {
			return fmt.Errorf("%w: positional indices on command '%s' must be unique and contiguous from 0", ErrConfiguration, c.Name)
		}
	}

	return nil
}

// checkSubcommands enforces unique names and aliases across siblings.
func (c *Command) checkSubcommands() error {
	seen := map[string]string{}
	for _, sub := range c.Subcommands {
		tokens := append([]string{sub.Name}, sub.Aliases...)
		for _, token := range tokens {
			if prior, exists := seen[token]; exists {
				return fmt.Errorf("%w: subcommand token '%s' matches both '%s' and '%s'", ErrConfiguration, token, prior, sub.Name)
			}
			seen[token] = sub.Name
		}
	}

	return nil
}
