package zfish

// WithAbout sets the one-line description shown at the top of help output.
func WithAbout(about string) ConfigureCommandFunc {
	return func(cmd *Command) {
		cmd.About = about
	}
}

// WithLongAbout sets an extended description rendered below the about line.
func WithLongAbout(longAbout string) ConfigureCommandFunc {
	return func(cmd *Command) {
		cmd.LongAbout = longAbout
	}
}

// WithVersion sets the version string and enables the --version/-V alias at
// this command level.
func WithVersion(version string) ConfigureCommandFunc {
	return func(cmd *Command) {
		cmd.Version = version
	}
}

// WithArgs appends argument descriptors; declaration order defines the
// positional sequence and help order.
func WithArgs(args ...*Arg) ConfigureCommandFunc {
	return func(cmd *Command) {
		cmd.Args = append(cmd.Args, args...)
	}
}

// WithSubcommands appends child commands.
func WithSubcommands(subcommands ...*Command) ConfigureCommandFunc {
	return func(cmd *Command) {
		cmd.Subcommands = append(cmd.Subcommands, subcommands...)
	}
}

// WithAliases appends alternate match tokens for this command.
func WithAliases(aliases ...string) ConfigureCommandFunc {
	return func(cmd *Command) {
		cmd.Aliases = append(cmd.Aliases, aliases...)
	}
}

// WithGroups appends mutually exclusive argument groups.
func WithGroups(groups ...*ArgGroup) ConfigureCommandFunc {
	return func(cmd *Command) {
		cmd.Groups = append(cmd.Groups, groups...)
	}
}
