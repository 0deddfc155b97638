// Package parse holds the low-level argument stream primitives used by the
// scanner: a positioned cursor over an argv slice and a shell-style string
// splitter.
package parse

import "errors"

// ErrInvalidPosition is returned when a position outside the argument list
// is accessed.
var ErrInvalidPosition = errors.New("invalid position")

// State is a cursor over the raw argument list at one command level. The
// scanner advances it token by token with one token of lookahead.
type State interface {
	Pos() int                      // current position
	Advance() bool                 // move to the next argument, false at the end
	CurrentArg() string            // argument at the current position
	Peek() string                  // next argument without advancing, "" at the end
	HasNext() bool                 // whether a lookahead token exists
	Skip()                         // consume the lookahead token
	Rest() []string                // arguments after the current position
	Args() []string                // the entire argument list
	ArgAt(pos int) (string, error) // argument at a specific position
	Len() int                      // length of the argument list
}

// DefaultState is the slice-backed State implementation.
type DefaultState struct {
	pos  int
	args []string
}

// NewState creates a State positioned before the first argument.
func NewState(args []string) State {
	return &DefaultState{
		pos:  -1,
		args: args,
	}
}

// Pos returns the current position in the argument list
func (s *DefaultState) Pos() int {
	return s.pos
}

// Advance moves to the next argument, returning true if one exists
func (s *DefaultState) Advance() bool {
	if s.pos+1 < len(s.args) {
		s.pos++
		return true
	}

	return false
}

// CurrentArg returns the argument at the current position
func (s *DefaultState) CurrentArg() string {
	if s.pos < 0 || s.pos >= len(s.args) {
		return ""
	}

	return s.args[s.pos]
}

// Peek returns the next argument without advancing the current position
func (s *DefaultState) Peek() string {
	if s.pos+1 < len(s.args) {
		return s.args[s.pos+1]
	}

	return ""
}

// HasNext reports whether a lookahead token exists
func (s *DefaultState) HasNext() bool {
	return s.pos+1 < len(s.args)
}

// Skip consumes the lookahead token
func (s *DefaultState) Skip() {
	s.pos++
}

// Rest returns the arguments after the current position
func (s *DefaultState) Rest() []string {
	if s.pos+1 >= len(s.args) {
		return nil
	}

	return s.args[s.pos+1:]
}

// Args returns the entire argument list
func (s *DefaultState) Args() []string {
	return s.args
}

// ArgAt returns the argument at a specific position
func (s *DefaultState) ArgAt(pos int) (string, error) {
	if pos < 0 || pos >= len(s.args) {
		return "", ErrInvalidPosition
	}

	return s.args[pos], nil
}

// Len returns the length of the argument list
func (s *DefaultState) Len() int {
	return len(s.args)
}
