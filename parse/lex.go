package parse

import "github.com/google/shlex"

// Split breaks a command line string into tokens following shell quoting
// rules, so "commit -m 'two words'" yields three tokens.
func Split(line string) ([]string, error) {
	return shlex.Split(line)
}
