package zfish

// WithShort sets the single-character flag form, e.g. 'v' for -v.
func WithShort(short rune) ConfigureArgumentFunc {
	return func(arg *Arg) {
		arg.Short = short
	}
}

// WithLong sets the long flag form, e.g. "verbose" for --verbose.
func WithLong(long string) ConfigureArgumentFunc {
	return func(arg *Arg) {
		arg.Long = long
	}
}

// WithHelp sets the description shown in help output.
func WithHelp(help string) ConfigureArgumentFunc {
	return func(arg *Arg) {
		arg.Help = help
	}
}

// SetRequired when true, the argument must be supplied on the command line.
// Environment and default backfill do not satisfy a required argument.
func SetRequired(required bool) ConfigureArgumentFunc {
	return func(arg *Arg) {
		arg.Required = required
	}
}

// SetTakesValue when false, the argument is a pure flag whose presence alone
// is recorded.
func SetTakesValue(takesValue bool) ConfigureArgumentFunc {
	return func(arg *Arg) {
		arg.TakesValue = takesValue
	}
}

// SetMultiple when true, repeated occurrences accumulate into an ordered
// sequence instead of overwriting.
func SetMultiple(multiple bool) ConfigureArgumentFunc {
	return func(arg *Arg) {
		arg.Multiple = multiple
	}
}

// WithDefault sets the value applied when neither the command line nor the
// environment produced one.
func WithDefault(defaultValue string) ConfigureArgumentFunc {
	return func(arg *Arg) {
		arg.DefaultValue = defaultValue
	}
}

// WithEnv names an environment variable consulted before the default value
// when the argument is absent from the command line.
func WithEnv(env string) ConfigureArgumentFunc {
	return func(arg *Arg) {
		arg.Env = env
	}
}

// WithPossibleValues restricts accepted values to members of the given set.
func WithPossibleValues(values ...string) ConfigureArgumentFunc {
	return func(arg *Arg) {
		arg.PossibleValues = values
	}
}

// WithValidator sets a custom check run against every accepted value.
func WithValidator(validator ValidatorFunc) ConfigureArgumentFunc {
	return func(arg *Arg) {
		arg.Validator = validator
	}
}

// WithRequires names arguments that must also be present whenever this one
// is present.
func WithRequires(names ...string) ConfigureArgumentFunc {
	return func(arg *Arg) {
		arg.Requires = append(arg.Requires, names...)
	}
}

// WithConflicts names arguments that must be absent whenever this one is
// present.
func WithConflicts(names ...string) ConfigureArgumentFunc {
	return func(arg *Arg) {
		arg.ConflictsWith = append(arg.ConflictsWith, names...)
	}
}

// WithValueDelimiter splits a single token into a sequence on the given
// rune, e.g. ',' turns "rust,cli,tool" into three values. Implies Multiple.
func WithValueDelimiter(delimiter rune) ConfigureArgumentFunc {
	return func(arg *Arg) {
		arg.ValueDelimiter = delimiter
		arg.Multiple = true
	}
}

// WithIndex marks the argument as positional at the given 0-based slot.
// Slots must be contiguous from 0 within a Command.
func WithIndex(index int) ConfigureArgumentFunc {
	return func(arg *Arg) {
		idx := index
		arg.Index = &idx
	}
}

// SetLast marks the variadic trailing positional which absorbs every
// remaining unclaimed token. Implies Multiple and the reserved variadic
// slot; at most one per Command.
func SetLast(last bool) ConfigureArgumentFunc {
	return func(arg *Arg) {
		arg.Last = last
		if last {
			arg.Multiple = true
			idx := VariadicIndex
			arg.Index = &idx
		}
	}
}
