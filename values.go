package zfish

import "strings"

// processValue validates one raw value and records it under the argument's
// name. A delimiter splits the token into a whitespace-trimmed sequence that
// replaces any previous occurrence; a multiple argument accumulates instead;
// everything else overwrites, so repeats are last-write-wins.
func processValue(arg *Arg, raw string, matches *Matches) error {
	if arg.ValueDelimiter != 0 {
		parts := strings.Split(raw, string(arg.ValueDelimiter))
		values := make([]string, 0, len(parts))
		for _, part := range parts {
			value := strings.TrimSpace(part)
			if err := arg.validate(value); err != nil {
				return &ValidationError{Name: arg.Name, Message: err.Error()}
			}
			values = append(values, value)
		}
		matches.insert(arg.Name, multipleValue(values))

		return nil
	}

	if err := arg.validate(raw); err != nil {
		return &ValidationError{Name: arg.Name, Message: err.Error()}
	}

	if arg.Multiple {
		matches.appendValue(arg.Name, raw)
		return nil
	}

	matches.insert(arg.Name, singleValue(raw))

	return nil
}
