package zfish

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/JeetKarena/ZFish/parse"
)

// App wraps a root Command with process-level behavior: rendering help and
// version text, reporting parse errors and exiting. The try variants return
// instead of exiting, for callers that want to handle signals themselves.
type App struct {
	cmd    *Command
	stdout io.Writer
	stderr io.Writer
	exit   func(code int)
}

// NewApp wraps the root command with the process defaults (os.Stdout,
// os.Stderr, os.Exit).
func NewApp(cmd *Command) *App {
	return &App{
		cmd:    cmd,
		stdout: os.Stdout,
		stderr: os.Stderr,
		exit:   os.Exit,
	}
}

// Command returns the wrapped root command.
func (a *App) Command() *Command {
	return a.cmd
}

// GetMatches parses os.Args, handling help, version and errors itself.
func (a *App) GetMatches() *Matches {
	return a.GetMatchesFrom(os.Args)
}

// GetMatchesFrom parses argv (program name first), handling help, version
// and errors itself. A help or version request from any command level prints
// the root command's text and exits 0; a parse error is reported on stderr
// and exits 1.
func (a *App) GetMatchesFrom(argv []string) *Matches {
	matches, err := a.TryGetMatchesFrom(argv)
	switch {
	case err == nil:
		return matches
	case errors.Is(err, ErrHelpRequested):
		fmt.Fprintln(a.stdout, a.cmd.GenerateHelp())
		a.exit(0)
	case errors.Is(err, ErrVersionRequested):
		if a.cmd.Version != "" {
			fmt.Fprintf(a.stdout, "%s %s\n", a.cmd.Name, a.cmd.Version)
		} else {
			fmt.Fprintln(a.stdout, a.cmd.Name)
		}
		a.exit(0)
	default:
		fmt.Fprintf(a.stderr, "error: %s\n\nFor more information try --help\n", err)
		a.exit(1)
	}

	return nil
}

// TryGetMatchesFrom parses argv (program name first) and returns the result
// or the error, exiting never.
func (a *App) TryGetMatchesFrom(argv []string) (*Matches, error) {
	if len(argv) == 0 {
		return a.cmd.ParseArgs(nil)
	}

	return a.cmd.ParseArgs(argv[1:])
}

// TryGetMatchesString splits a full command line (program name first) with
// shell quoting rules and parses it.
func (a *App) TryGetMatchesString(line string) (*Matches, error) {
	argv, err := parse.Split(line)
	if err != nil {
		return nil, err
	}

	return a.TryGetMatchesFrom(argv)
}
