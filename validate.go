package zfish

import (
	"fmt"
	"os"
	"strings"
)

// runValidation checks the scanned Matches against the command's constraints
// and backfills absent options. Stages run in a fixed order so error
// precedence is deterministic:
//
//  1. required presence, judged before any backfill so only explicit
//     command-line occurrences satisfy Required
//  2. env and default backfill, environment first
//  3. Requires relationships
//  4. ConflictsWith relationships
//  5. group exclusivity and group requiredness
func (c *Command) runValidation(matches *Matches) error {
	for _, arg := range c.Args {
		if arg.Required && !matches.IsPresent(arg.Name) {
			return &MissingArgumentError{Name: arg.Name}
		}
	}

	for _, arg := range c.Args {
		if matches.IsPresent(arg.Name) {
			continue
		}
		if arg.Env != "" {
			if value, found := os.LookupEnv(arg.Env); found {
				matches.insert(arg.Name, singleValue(value))
				continue
			}
		}
		if arg.DefaultValue != "" {
			matches.insert(arg.Name, singleValue(arg.DefaultValue))
		}
	}

	for _, arg := range c.Args {
		if !matches.IsPresent(arg.Name) {
			continue
		}
		for _, required := range arg.Requires {
			if !matches.IsPresent(required) {
				return &MissingDependencyError{Name: arg.Name, Requires: required}
			}
		}
	}

	for _, arg := range c.Args {
		if !matches.IsPresent(arg.Name) {
			continue
		}
		for _, conflict := range arg.ConflictsWith {
			if matches.IsPresent(conflict) {
				return &ArgumentConflictError{First: arg.Name, Second: conflict}
			}
		}
	}

	for _, group := range c.Groups {
		var present []string
		for _, name := range group.Args {
			if matches.IsPresent(name) {
				present = append(present, name)
			}
		}
		if len(present) > 1 {
			return &ArgumentConflictError{First: present[0], Second: present[1]}
		}
		if group.Required && len(present) == 0 {
			return &MissingArgumentError{
				Name: fmt.Sprintf("%s (one of: %s)", group.Name, strings.Join(group.Args, ", ")),
			}
		}
	}

	return nil
}
