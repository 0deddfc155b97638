package zfish

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommand_ValidationRequiredArgument(t *testing.T) {
	cmd := NewCommand("commit", WithArgs(
		NewArg("message", WithShort('m'), SetRequired(true)),
	))

	_, err := cmd.ParseArgs(nil)
	var missing *MissingArgumentError
	assert.ErrorAs(t, err, &missing)
	assert.Equal(t, "the argument 'message' is required", err.Error())
}

func TestCommand_ValidationRequiredNotSatisfiedByDefault(t *testing.T) {
	cmd := NewCommand("commit", WithArgs(
		NewArg("message", WithShort('m'), SetRequired(true), WithDefault("wip")),
	))

	_, err := cmd.ParseArgs(nil)
	var missing *MissingArgumentError
	assert.ErrorAs(t, err, &missing, "a default must not satisfy a required argument")
}

func TestCommand_ValidationRequiredNotSatisfiedByEnv(t *testing.T) {
	t.Setenv("COMMIT_MESSAGE", "from env")
	cmd := NewCommand("commit", WithArgs(
		NewArg("message", WithShort('m'), SetRequired(true), WithEnv("COMMIT_MESSAGE")),
	))

	_, err := cmd.ParseArgs(nil)
	var missing *MissingArgumentError
	assert.ErrorAs(t, err, &missing, "an environment value must not satisfy a required argument")
}

func TestCommand_ValidationDefaultBackfill(t *testing.T) {
	cmd := NewCommand("build", WithArgs(
		NewArg("jobs", WithShort('j'), WithDefault("4")),
	))

	matches, err := cmd.ParseArgs(nil)
	assert.Nil(t, err)
	jobs, found := matches.ValueOf("jobs")
	assert.True(t, found, "an absent optional argument with a default should be backfilled")
	assert.Equal(t, "4", jobs)
}

func TestCommand_ValidationBackfillsAbsentPositional(t *testing.T) {
	cmd := NewCommand("list", WithArgs(
		NewArg("dir", WithIndex(0), WithDefault(".")),
	))

	matches, err := cmd.ParseArgs(nil)
	assert.Nil(t, err)
	dir, found := matches.ValueOf("dir")
	assert.True(t, found, "an absent positional with a default should be backfilled")
	assert.Equal(t, ".", dir)

	matches, err = cmd.ParseArgs([]string{"/tmp"})
	assert.Nil(t, err)
	dir, _ = matches.ValueOf("dir")
	assert.Equal(t, "/tmp", dir, "an explicit candidate should win over the default")
}

func TestCommand_ValidationBackfillsPositionalFromEnv(t *testing.T) {
	t.Setenv("LIST_DIR", "/home")
	cmd := NewCommand("list", WithArgs(
		NewArg("dir", WithIndex(0), WithEnv("LIST_DIR"), WithDefault(".")),
	))

	matches, err := cmd.ParseArgs(nil)
	assert.Nil(t, err)
	dir, _ := matches.ValueOf("dir")
	assert.Equal(t, "/home", dir, "the environment should backfill an absent positional before the default")
}

func TestCommand_ValidationEnvBeatsDefault(t *testing.T) {
	t.Setenv("BUILD_JOBS", "8")
	cmd := NewCommand("build", WithArgs(
		NewArg("jobs", WithShort('j'), WithEnv("BUILD_JOBS"), WithDefault("4")),
	))

	matches, err := cmd.ParseArgs(nil)
	assert.Nil(t, err)
	jobs, _ := matches.ValueOf("jobs")
	assert.Equal(t, "8", jobs, "the environment should win over the default")
}

func TestCommand_ValidationCommandLineBeatsEnv(t *testing.T) {
	t.Setenv("BUILD_JOBS", "8")
	cmd := NewCommand("build", WithArgs(
		NewArg("jobs", WithShort('j'), WithEnv("BUILD_JOBS"), WithDefault("4")),
	))

	matches, err := cmd.ParseArgs([]string{"-j", "2"})
	assert.Nil(t, err)
	jobs, _ := matches.ValueOf("jobs")
	assert.Equal(t, "2", jobs, "an explicit value should win over env and default")
}

func TestCommand_ValidationRequires(t *testing.T) {
	cmd := NewCommand("push", WithArgs(
		NewArg("force", WithShort('f'), SetTakesValue(false), WithRequires("remote")),
		NewArg("remote", WithShort('r')),
	))

	_, err := cmd.ParseArgs([]string{"-f"})
	var dependency *MissingDependencyError
	assert.ErrorAs(t, err, &dependency)
	assert.Equal(t, "the argument 'force' requires 'remote'", err.Error())

	_, err = cmd.ParseArgs([]string{"-f", "-r", "origin"})
	assert.Nil(t, err, "a satisfied dependency should pass")
}

func TestCommand_ValidationRequiresSatisfiedByBackfill(t *testing.T) {
	cmd := NewCommand("push", WithArgs(
		NewArg("force", WithShort('f'), SetTakesValue(false), WithRequires("remote")),
		NewArg("remote", WithShort('r'), WithDefault("origin")),
	))

	_, err := cmd.ParseArgs([]string{"-f"})
	assert.Nil(t, err, "backfill runs before dependency checks, so a default satisfies Requires")
}

func TestCommand_ValidationConflicts(t *testing.T) {
	cmd := NewCommand("log", WithArgs(
		NewArg("verbose", WithShort('v'), SetTakesValue(false), WithConflicts("quiet")),
		NewArg("quiet", WithShort('q'), SetTakesValue(false)),
	))

	_, err := cmd.ParseArgs([]string{"-v", "-q"})
	var conflict *ArgumentConflictError
	assert.ErrorAs(t, err, &conflict)
	assert.Equal(t, "the argument 'verbose' cannot be used with 'quiet'", err.Error())

	_, err = cmd.ParseArgs([]string{"-v"})
	assert.Nil(t, err, "either argument alone should pass")
}

func TestCommand_ValidationGroupExclusivity(t *testing.T) {
	cmd := NewCommand("output",
		WithArgs(
			NewArg("json", SetTakesValue(false), WithLong("json")),
			NewArg("yaml", SetTakesValue(false), WithLong("yaml")),
		),
		WithGroups(NewGroup("format", WithGroupArgs("json", "yaml"))))

	_, err := cmd.ParseArgs([]string{"--json", "--yaml"})
	var conflict *ArgumentConflictError
	assert.ErrorAs(t, err, &conflict, "two members of one group must not both be present")
	assert.Equal(t, "json", conflict.First)
	assert.Equal(t, "yaml", conflict.Second)

	_, err = cmd.ParseArgs([]string{"--json"})
	assert.Nil(t, err)

	_, err = cmd.ParseArgs(nil)
	assert.Nil(t, err, "an optional group may be entirely absent")
}

func TestCommand_ValidationRequiredGroup(t *testing.T) {
	cmd := NewCommand("output",
		WithArgs(
			NewArg("json", SetTakesValue(false), WithLong("json")),
			NewArg("yaml", SetTakesValue(false), WithLong("yaml")),
		),
		WithGroups(NewGroup("format",
			WithGroupArgs("json", "yaml"),
			SetGroupRequired(true))))

	_, err := cmd.ParseArgs(nil)
	var missing *MissingArgumentError
	assert.ErrorAs(t, err, &missing, "a required group needs at least one member present")
	assert.Equal(t, "format (one of: json, yaml)", missing.Name)

	_, err = cmd.ParseArgs([]string{"--yaml"})
	assert.Nil(t, err)
}

func TestCommand_ValidationStageOrder(t *testing.T) {
	// Both a required argument and a conflict are violated; the required
	// check runs first.
	cmd := NewCommand("tool", WithArgs(
		NewArg("target", SetRequired(true), WithLong("target")),
		NewArg("verbose", WithShort('v'), SetTakesValue(false), WithConflicts("quiet")),
		NewArg("quiet", WithShort('q'), SetTakesValue(false)),
	))

	_, err := cmd.ParseArgs([]string{"-v", "-q"})
	var missing *MissingArgumentError
	assert.ErrorAs(t, err, &missing, "required presence is checked before conflicts")
	assert.Equal(t, "target", missing.Name)
}

func TestProcessValue_ValidationErrorCarriesArgumentName(t *testing.T) {
	cmd := NewCommand("tool", WithArgs(
		NewArg("format", WithLong("format"), WithPossibleValues("json", "yaml")),
	))

	_, err := cmd.ParseArgs([]string{"--format", "xml"})
	var invalid *ValidationError
	assert.ErrorAs(t, err, &invalid)
	assert.Equal(t, "format", invalid.Name)
	assert.Equal(t, "validation failed for 'format': invalid value 'xml', expected one of: json, yaml", err.Error())
}
