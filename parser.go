package zfish

import (
	"strings"

	"github.com/ef-ds/deque"
	orderedmap "github.com/wk8/go-ordered-map"

	"github.com/JeetKarena/ZFish/parse"
)

// ParseArgs scans args against this command's descriptors and returns the
// resolved Matches. The token stream is consumed left to right with one token
// of lookahead; the first non-flag token naming a subcommand hands the rest
// of the stream to that subcommand, any other non-flag token is buffered as a
// positional candidate. Help and version requests abort the scan with
// ErrHelpRequested and ErrVersionRequested so the caller can render them.
//
// args holds this level's tokens only, without the program name.
func (c *Command) ParseArgs(args []string) (*Matches, error) {
	registry, err := c.compile()
	if err != nil {
		return nil, err
	}

	matches := newMatches(c.Name)
	candidates := deque.New()
	state := parse.NewState(args)

	for state.Advance() {
		token := state.CurrentArg()

		switch {
		case token == "--help" || token == "-h":
			return nil, ErrHelpRequested
		case (token == "--version" || token == "-V") && c.Version != "":
			return nil, ErrVersionRequested
		case token == "-":
			// A bare dash is conventionally stdin; the scanner has no use
			// for it and drops it.
		case !strings.HasPrefix(token, "-"):
			if sub := c.findSubcommand(token); sub != nil {
				subMatches, err := sub.ParseArgs(state.Rest())
				if err != nil {
					return nil, err
				}
				matches.setSubcommand(token, subMatches)
				c.assignPositionals(candidates, matches)

				return matches, c.runValidation(matches)
			}
			candidates.PushBack(token)
		case strings.HasPrefix(token, "--"):
			if err := c.scanLong(registry, token[2:], state, matches); err != nil {
				return nil, err
			}
		default:
			if err := c.scanShorts(registry, token[1:], state, matches); err != nil {
				return nil, err
			}
		}
	}

	c.assignPositionals(candidates, matches)

	return matches, c.runValidation(matches)
}

// scanLong handles one --flag token, with or without an inline =value.
func (c *Command) scanLong(registry *orderedmap.OrderedMap, body string, state parse.State, matches *Matches) error {
	if identifier, inline, found := strings.Cut(body, "="); found {
		arg := findByIdentifier(registry, identifier)
		if arg == nil {
			return &UnknownArgumentError{Token: identifier}
		}

		// An inline value is taken at face value even for pure flags; the
		// explicit = makes the intent unambiguous.
		return processValue(arg, inline, matches)
	}

	arg := findByIdentifier(registry, body)
	if arg == nil {
		return &UnknownArgumentError{Token: body}
	}
	if !arg.TakesValue {
		matches.insert(arg.Name, flagValue(true))
		return nil
	}

	return c.consumeValue(arg, state, matches)
}

// scanShorts handles a combined short token ("-vdq"). Only the trailing
// character may consume the lookahead token; earlier value-taking characters
// fall back to their default or resolve to nothing.
func (c *Command) scanShorts(registry *orderedmap.OrderedMap, body string, state parse.State, matches *Matches) error {
	runes := []rune(body)
	for i, ch := range runes {
		arg := findByShort(registry, ch)
		if arg == nil {
			return &UnknownArgumentError{Token: string(ch)}
		}

		switch {
		case !arg.TakesValue:
			matches.insert(arg.Name, flagValue(true))
		case i == len(runes)-1:
			if err := c.consumeValue(arg, state, matches); err != nil {
				return err
			}
		case arg.DefaultValue != "":
			matches.insert(arg.Name, singleValue(arg.DefaultValue))
		}
	}

	return nil
}

// consumeValue resolves a value-taking argument against the lookahead token.
// A token starting with '-' is never taken as a value; without a usable
// lookahead the argument falls back to its default, or to nothing at all.
func (c *Command) consumeValue(arg *Arg, state parse.State, matches *Matches) error {
	if state.HasNext() && !strings.HasPrefix(state.Peek(), "-") {
		value := state.Peek()
		state.Skip()

		return processValue(arg, value, matches)
	}

	if arg.DefaultValue != "" {
		matches.insert(arg.Name, singleValue(arg.DefaultValue))
	}

	return nil
}

// assignPositionals distributes the buffered candidates over the positional
// slots in index order. The variadic positional absorbs every candidate from
// its slot onward and is recorded only when that tail is non-empty. Excess
// candidates with no slot to land in are dropped.
func (c *Command) assignPositionals(candidates *deque.Deque, matches *Matches) {
	values := make([]string, 0, candidates.Len())
	for {
		raw, ok := candidates.PopFront()
		if !ok {
			break
		}
		values = append(values, raw.(string))
	}

	for i, arg := range c.positionals() {
		if arg.Last {
			if i < len(values) {
				matches.insert(arg.Name, multipleValue(values[i:]))
			}

			return
		}
		if i < len(values) {
			matches.insert(arg.Name, singleValue(values[i]))
		}
	}
}

// findByIdentifier resolves a long-form identifier through the registry,
// first as an exact name, then against each argument's long and short forms.
func findByIdentifier(registry *orderedmap.OrderedMap, identifier string) *Arg {
	if raw, found := registry.Get(identifier); found {
		return raw.(*Arg)
	}
	for pair := registry.Oldest(); pair != nil; pair = pair.Next() {
		arg := pair.Value.(*Arg)
		if arg.matchesIdentifier(identifier) {
			return arg
		}
	}

	return nil
}

// findByShort resolves a short-form character through the registry.
func findByShort(registry *orderedmap.OrderedMap, ch rune) *Arg {
	for pair := registry.Oldest(); pair != nil; pair = pair.Next() {
		arg := pair.Value.(*Arg)
		if arg.matchesShort(ch) {
			return arg
		}
	}

	return nil
}
