package zfish

import (
	"fmt"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
	orderedmap "github.com/wk8/go-ordered-map"
)

// Value is the tagged result of resolving one argument: a single string, an
// ordered sequence, or a boolean flag. The kind is inspectable so callers
// can distinguish cardinality without guessing.
type Value struct {
	kind     ValueKind
	single   string
	multiple []string
	flag     bool
}

func singleValue(s string) Value {
	return Value{kind: KindSingle, single: s}
}

func multipleValue(values []string) Value {
	return Value{kind: KindMultiple, multiple: values}
}

func flagValue(set bool) Value {
	return Value{kind: KindFlag, flag: set}
}

// Kind returns the value's cardinality tag.
func (v Value) Kind() ValueKind {
	return v.kind
}

// AsString returns the single string value, if that is the value's kind.
func (v Value) AsString() (string, bool) {
	if v.kind != KindSingle {
		return "", false
	}

	return v.single, true
}

// AsBool returns the flag state, if the value is a flag.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindFlag {
		return false, false
	}

	return v.flag, true
}

// AsSlice returns the value sequence, if the value is multiple.
func (v Value) AsSlice() ([]string, bool) {
	if v.kind != KindMultiple {
		return nil, false
	}

	return v.multiple, true
}

// Matches is the resolved result of parsing one Command level. It is
// mutated only during that level's scan and validation, then returned and
// treated as immutable. A Matches owns its subcommand's Matches outright.
type Matches struct {
	commandName string
	args        *orderedmap.OrderedMap
	subName     string
	subMatches  *Matches
}

func newMatches(commandName string) *Matches {
	return &Matches{
		commandName: commandName,
		args:        orderedmap.New(),
	}
}

// CommandName returns the name of the Command that produced this result.
func (m *Matches) CommandName() string {
	return m.commandName
}

// IsPresent reports whether the named argument resolved to any value.
func (m *Matches) IsPresent(name string) bool {
	_, found := m.args.Get(name)

	return found
}

// Lookup returns the named argument's tagged value.
func (m *Matches) Lookup(name string) (Value, bool) {
	raw, found := m.args.Get(name)
	if !found {
		return Value{}, false
	}

	return raw.(Value), true
}

// ValueOf returns the named argument's single string value. Absence and a
// non-single kind both report false.
func (m *Matches) ValueOf(name string) (string, bool) {
	value, found := m.Lookup(name)
	if !found {
		return "", false
	}

	return value.AsString()
}

// IsFlagSet reports whether the named flag argument is present and set.
func (m *Matches) IsFlagSet(name string) bool {
	value, found := m.Lookup(name)
	if !found {
		return false
	}
	set, ok := value.AsBool()

	return ok && set
}

// ValuesOf returns the named argument's value sequence. Absence and a
// non-multiple kind both report false.
func (m *Matches) ValuesOf(name string) ([]string, bool) {
	value, found := m.Lookup(name)
	if !found {
		return nil, false
	}

	return value.AsSlice()
}

// Names returns the resolved argument names in resolution order.
func (m *Matches) Names() []string {
	names := make([]string, 0, m.args.Len())
	for pair := m.args.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key.(string))
	}

	return names
}

// Subcommand returns the token that selected the subcommand (the alias when
// one was typed) and its nested Matches, or "" and nil when this level's
// scan recognized none.
func (m *Matches) Subcommand() (string, *Matches) {
	return m.subName, m.subMatches
}

// SubcommandName returns the token that selected the subcommand, or "".
func (m *Matches) SubcommandName() string {
	return m.subName
}

// SubcommandMatches returns the nested Matches when name is the token that
// selected the subcommand, nil otherwise.
func (m *Matches) SubcommandMatches(name string) *Matches {
	if m.subName != name {
		return nil
	}

	return m.subMatches
}

// GetBool converts the named argument to a boolean: the state of a flag, or
// the parsed value of a single.
func (m *Matches) GetBool(name string) (bool, error) {
	value, found := m.Lookup(name)
	if !found {
		return false, fmt.Errorf("%w: %s", ErrArgumentNotFound, name)
	}
	if set, ok := value.AsBool(); ok {
		return set, nil
	}
	raw, _ := value.AsString()

	return strconv.ParseBool(raw)
}

// GetInt converts the named argument's single value to an int64 of the
// given bit size.
func (m *Matches) GetInt(name string, bitSize int) (int64, error) {
	raw, found := m.ValueOf(name)
	if !found {
		return 0, fmt.Errorf("%w: %s", ErrArgumentNotFound, name)
	}

	return strconv.ParseInt(raw, 10, bitSize)
}

// GetFloat converts the named argument's single value to a float64 of the
// given bit size.
func (m *Matches) GetFloat(name string, bitSize int) (float64, error) {
	raw, found := m.ValueOf(name)
	if !found {
		return 0, fmt.Errorf("%w: %s", ErrArgumentNotFound, name)
	}

	return strconv.ParseFloat(raw, bitSize)
}

// GetDuration converts the named argument's single value to a
// time.Duration.
func (m *Matches) GetDuration(name string) (time.Duration, error) {
	raw, found := m.ValueOf(name)
	if !found {
		return 0, fmt.Errorf("%w: %s", ErrArgumentNotFound, name)
	}

	return time.ParseDuration(raw)
}

// GetTime converts the named argument's single value to a time.Time,
// accepting any of the formats dateparse recognizes.
func (m *Matches) GetTime(name string) (time.Time, error) {
	raw, found := m.ValueOf(name)
	if !found {
		return time.Time{}, fmt.Errorf("%w: %s", ErrArgumentNotFound, name)
	}

	return dateparse.ParseAny(raw)
}

// insert stores a value under name, overwriting any previous one.
func (m *Matches) insert(name string, value Value) {
	m.args.Set(name, value)
}

// appendValue accumulates one more value for a multiple argument,
// initializing the sequence on first occurrence.
func (m *Matches) appendValue(name, value string) {
	if raw, found := m.args.Get(name); found {
		existing := raw.(Value)
		if existing.kind != KindMultiple {
			// A single stored earlier (a short-form default) stays; the new
			// value is dropped.
			return
		}
		existing.multiple = append(existing.multiple, value)
		m.args.Set(name, existing)
		return
	}

	m.args.Set(name, multipleValue([]string{value}))
}

// setSubcommand attaches the nested result of a recognized subcommand.
func (m *Matches) setSubcommand(name string, matches *Matches) {
	m.subName = name
	m.subMatches = matches
}
