package zfish

import (
	"errors"
	"fmt"
)

// Signals, not failures. ParseArgs aborts with one of these when the user
// asks for help or version text; the caller decides how to render it.
var (
	ErrHelpRequested    = errors.New("help requested")
	ErrVersionRequested = errors.New("version requested")
)

var (
	// ErrConfiguration wraps descriptor problems detected before scanning
	// (duplicate names, broken positional indices and the like). These are
	// programmer errors, distinct from the parse error taxonomy below.
	ErrConfiguration = errors.New("invalid command configuration")

	// ErrArgumentNotFound is returned by typed Matches accessors when the
	// named argument has no resolved value.
	ErrArgumentNotFound = errors.New("argument not found")
)

// MissingArgumentError reports a required argument (or required group)
// absent from the command line.
type MissingArgumentError struct {
	Name string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("the argument '%s' is required", e.Name)
}

// UnknownArgumentError reports a flag token that resolves to no declared Arg
// on the current Command.
type UnknownArgumentError struct {
	Token string
}

func (e *UnknownArgumentError) Error() string {
	return fmt.Sprintf("unknown argument '%s'", e.Token)
}

// UnknownSubcommandError reports a failed explicit subcommand dispatch (see
// Command.Lookup). The scanner itself never raises it: an unmatched leading
// token is buffered as a positional candidate instead.
type UnknownSubcommandError struct {
	Token string
}

func (e *UnknownSubcommandError) Error() string {
	return fmt.Sprintf("unknown subcommand '%s'", e.Token)
}

// ValidationError reports a value rejected by an Arg's possible-values set
// or its custom validator.
type ValidationError struct {
	Name    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for '%s': %s", e.Name, e.Message)
}

// ArgumentConflictError reports two mutually exclusive arguments both
// present, either via ConflictsWith or a group violation.
type ArgumentConflictError struct {
	First  string
	Second string
}

func (e *ArgumentConflictError) Error() string {
	return fmt.Sprintf("the argument '%s' cannot be used with '%s'", e.First, e.Second)
}

// MissingDependencyError reports an unsatisfied Requires relationship.
type MissingDependencyError struct {
	Name     string
	Requires string
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("the argument '%s' requires '%s'", e.Name, e.Requires)
}
