package zfish

// ArgGroup names a set of mutually exclusive arguments. At most one member
// may be present on the command line; a required group additionally demands
// that at least one member is present.
type ArgGroup struct {
	Name     string
	Args     []string
	Required bool
}

// NewGroup describes an argument group via option functions.
func NewGroup(name string, configs ...ConfigureGroupFunc) *ArgGroup {
	group := &ArgGroup{Name: name}
	for _, config := range configs {
		config(group)
	}

	return group
}

// WithGroupArgs adds member argument names to the group.
func WithGroupArgs(names ...string) ConfigureGroupFunc {
	return func(group *ArgGroup) {
		group.Args = append(group.Args, names...)
	}
}

// SetGroupRequired when true, at least one member of the group must be
// present on the command line.
func SetGroupRequired(required bool) ConfigureGroupFunc {
	return func(group *ArgGroup) {
		group.Required = required
	}
}
