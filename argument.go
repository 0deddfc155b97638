package zfish

import (
	"fmt"
	"math"
	"strings"
)

// VariadicIndex is the reserved positional slot of a variadic argument
// (SetLast). It sorts after every explicit index so the variadic positional
// always absorbs the tail.
const VariadicIndex = math.MaxInt

// Arg describes a single command-line argument: a flag, an option taking a
// value, or a positional. An Arg is built once via NewArg and treated as
// read-only for the lifetime of any parse using it.
type Arg struct {
	// Name uniquely identifies the argument within its owning Command and
	// keys its resolved value in Matches.
	Name string
	// Short is the single-character flag form ('v' for -v); 0 means none.
	Short rune
	// Long is the long flag form ("verbose" for --verbose); empty means none.
	Long string
	// Help is the one-line description shown in help output.
	Help string
	// Required arguments must be present on the command line itself;
	// env/default backfill does not satisfy Required.
	Required bool
	// TakesValue is true by default. When false the argument is a pure flag
	// whose presence alone is meaningful.
	TakesValue bool
	// Multiple accumulates repeated occurrences into an ordered sequence.
	Multiple bool
	// DefaultValue is applied when neither the command line nor Env
	// produced a value. Empty means no default.
	DefaultValue string
	// Env names an environment variable consulted before DefaultValue.
	Env string
	// PossibleValues restricts accepted values to members of the set.
	// Empty means unrestricted.
	PossibleValues []string
	// Validator is run against every accepted value after the
	// PossibleValues check.
	Validator ValidatorFunc
	// Requires lists argument names that must also be present whenever this
	// argument is present.
	Requires []string
	// ConflictsWith lists argument names that must be absent whenever this
	// argument is present.
	ConflictsWith []string
	// ValueDelimiter splits a single token into a sequence; setting it
	// implies Multiple. 0 means no splitting.
	ValueDelimiter rune
	// Index marks the argument as positional at the given 0-based slot.
	// nil means non-positional.
	Index *int
	// Last marks the variadic trailing positional ([FILES]...).
	Last bool
}

// NewArg describes an argument via option functions. Arguments take a value
// by default; use SetTakesValue(false) for pure flags.
func NewArg(name string, configs ...ConfigureArgumentFunc) *Arg {
	arg := &Arg{
		Name:       name,
		TakesValue: true,
	}
	arg.Set(configs...)

	return arg
}

// Set applies the provided option functions to the argument.
func (a *Arg) Set(configs ...ConfigureArgumentFunc) {
	for _, config := range configs {
		config(a)
	}
}

// positional reports whether the argument occupies a positional slot.
func (a *Arg) positional() bool {
	return a.Index != nil
}

// matchesShort reports whether c is the argument's short form.
func (a *Arg) matchesShort(c rune) bool {
	return a.Short != 0 && a.Short == c
}

// matchesIdentifier reports whether the identifier resolves to this argument
// by name, short form or long form.
func (a *Arg) matchesIdentifier(identifier string) bool {
	if a.Name == identifier || (a.Long != "" && a.Long == identifier) {
		return true
	}

	return a.Short != 0 && string(a.Short) == identifier
}

// validate checks one value against PossibleValues and the custom Validator.
func (a *Arg) validate(value string) error {
	if len(a.PossibleValues) > 0 {
		member := false
		for _, possible := range a.PossibleValues {
			if possible == value {
				member = true
				break
			}
		}
		if !member {
			return fmt.Errorf("invalid value '%s', expected one of: %s",
				value, strings.Join(a.PossibleValues, ", "))
		}
	}

	if a.Validator != nil {
		return a.Validator(value)
	}

	return nil
}

// String returns a human-readable description of the argument, mainly for
// diagnostics and configuration dumps.
func (a *Arg) String() string {
	buf := strings.Builder{}
	switch {
	case a.positional():
		buf.WriteString(a.Name)
	case a.Long != "":
		buf.WriteString("--" + a.Long)
		if a.Short != 0 {
			buf.WriteString(" or -" + string(a.Short))
		}
	case a.Short != 0:
		buf.WriteString("-" + string(a.Short))
	default:
		buf.WriteString(a.Name)
	}

	if a.Help != "" {
		buf.WriteString(" \"" + a.Help + "\"")
	}
	if a.DefaultValue != "" {
		buf.WriteString(fmt.Sprintf(" (default: %s)", a.DefaultValue))
	}
	if a.Required {
		buf.WriteString(" (required)")
	} else {
		buf.WriteString(" (optional)")
	}

	return buf.String()
}
