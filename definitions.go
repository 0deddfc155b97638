// Package zfish provides the command-line processing engine of the ZFish
// toolkit.
//
// Programs are described declaratively: a Command holds Arg descriptors,
// nested sub-Commands (with aliases) and mutually exclusive ArgGroups. A
// single call to ParseArgs scans the raw argument slice left to right with
// one token of lookahead, descends recursively into a recognized subcommand,
// runs a fixed validation pipeline and returns an immutable Matches which is
// queried by argument name. Help text is generated deterministically from
// the same descriptors.
//
// The engine never writes to output streams and never terminates the
// process; the App shim is the only place where help/version rendering and
// exit codes live.
package zfish

// ValueKind discriminates the three shapes a resolved argument value can
// take in a Matches.
type ValueKind int

const (
	// KindSingle denotes a single string value
	KindSingle ValueKind = iota
	// KindMultiple denotes an ordered sequence of string values
	KindMultiple
	// KindFlag denotes a boolean presence value
	KindFlag
)

// String returns the string representation of a ValueKind
func (k ValueKind) String() string {
	switch k {
	case KindSingle:
		return "single"
	case KindMultiple:
		return "multiple"
	case KindFlag:
		return "flag"
	default:
		return "unknown"
	}
}

// ValidatorFunc is a user-supplied check run against each accepted value of
// an Arg. A non-nil error rejects the value and fails the parse.
type ValidatorFunc func(value string) error

// ConfigureArgumentFunc is used when defining Arg descriptors
type ConfigureArgumentFunc func(arg *Arg)

// ConfigureCommandFunc is used when defining Command descriptors
type ConfigureCommandFunc func(cmd *Command)

// ConfigureGroupFunc is used when defining ArgGroup descriptors
type ConfigureGroupFunc func(group *ArgGroup)
