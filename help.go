package zfish

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
)

// column at which description text starts in help listings
const helpColumn = 30

// GenerateHelp renders the command's help text. The output is a pure
// function of the descriptors: about header, usage line, then ARGS, OPTIONS
// and COMMANDS sections, each listing entries in declaration order (ARGS in
// slot order) with descriptions aligned at a fixed column.
func (c *Command) GenerateHelp() string {
	buf := strings.Builder{}

	if c.About != "" {
		buf.WriteString(c.About + "\n")
	}
	if c.LongAbout != "" {
		buf.WriteString("\n" + c.LongAbout + "\n")
	}
	if c.Version != "" {
		buf.WriteString(fmt.Sprintf("\nVersion: %s\n", c.Version))
	}

	positionals := c.positionals()
	options := c.options()

	buf.WriteString("\nUSAGE:\n    " + c.Name)
	if len(options) > 0 {
		buf.WriteString(" [OPTIONS]")
	}
	for _, arg := range positionals {
		placeholder := strcase.ToScreamingSnake(arg.Name)
		switch {
		case arg.Last:
			buf.WriteString(fmt.Sprintf(" [%s]...", placeholder))
		case arg.Required:
			buf.WriteString(fmt.Sprintf(" <%s>", placeholder))
		default:
			buf.WriteString(fmt.Sprintf(" [%s]", placeholder))
		}
	}
	if len(c.Subcommands) > 0 {
		buf.WriteString(" <COMMAND>")
	}
	buf.WriteString("\n")

	if len(positionals) > 0 {
		buf.WriteString("\nARGS:\n")
		for _, arg := range positionals {
			line := fmt.Sprintf("    <%s>", strcase.ToScreamingSnake(arg.Name))
			line = padTo(line, helpColumn) + arg.Help
			if arg.Required {
				line += " [required]"
			}
			buf.WriteString(line + "\n")
		}
	}

	if len(options) > 0 {
		buf.WriteString("\nOPTIONS:\n")
		for _, arg := range options {
			line := "    "
			if arg.Short != 0 {
				line += "-" + string(arg.Short)
				if arg.Long != "" {
					line += ", "
				}
			}
			if arg.Long != "" {
				line += "--" + arg.Long
			}
			if arg.TakesValue {
				line += fmt.Sprintf(" <%s>", strcase.ToScreamingSnake(arg.Name))
			}
			line = padTo(line, helpColumn) + arg.Help
			if arg.Required {
				line += " [required]"
			}
			if arg.DefaultValue != "" {
				line += fmt.Sprintf(" [default: %s]", arg.DefaultValue)
			}
			buf.WriteString(line + "\n")
		}
	}

	if len(c.Subcommands) > 0 {
		buf.WriteString("\nCOMMANDS:\n")
		for _, sub := range c.Subcommands {
			line := "    " + sub.Name
			if len(sub.Aliases) > 0 {
				line += fmt.Sprintf(" (%s)", strings.Join(sub.Aliases, ", "))
			}
			buf.WriteString(padTo(line, helpColumn) + sub.About + "\n")
		}
		buf.WriteString("\nRun '<COMMAND> --help' for more information on a specific command.\n")
	}

	return buf.String()
}

// padTo extends line with spaces up to the given column; a line already past
// the column is returned unchanged.
func padTo(line string, column int) string {
	if len(line) >= column {
		return line
	}

	return line + strings.Repeat(" ", column-len(line))
}
