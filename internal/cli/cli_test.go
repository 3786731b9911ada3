package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osa-filters/tests/testutil"
)

// ---------- Command tree tests ----------

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCommand()
	names := make([]string, 0, len(root.Commands()))
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	for _, name := range []string{"eval", "lint", "list"} {
		assert.Contains(t, names, name, "missing subcommand: %s", name)
	}
}

func TestRootCommandVersion(t *testing.T) {
	root := newRootCommand()
	assert.Equal(t, "dev", root.Version)
}

// ---------- Command execution tests ----------

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCommand()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	out, err := runCommand(t, "list")
	require.NoError(t, err)
	for _, name := range []string{"netloc", "pip_constraint_update", "git_link_parse", "deprecated"} {
		assert.Contains(t, out, name)
	}
}

func TestEvalScalarFilter(t *testing.T) {
	out, err := runCommand(t, "eval", "bit_length_power_of_2", "5")
	require.NoError(t, err)
	assert.Equal(t, "8\n", out)
}

func TestEvalListArgumentFromFile(t *testing.T) {
	path := testutil.WriteFile(t, "requirements.txt", "#comment\nFoo>=1.0\nbar\n")

	out, err := runCommand(t, "eval", "pip_requirement_names", "@"+path)
	require.NoError(t, err)
	assert.Equal(t, "bar\nfoo\n", out)
}

func TestEvalUnknownFilter(t *testing.T) {
	_, err := runCommand(t, "eval", "no_such_filter")
	require.Error(t, err)
	assert.Equal(t, 5, exitCodeForError(err))
}

func TestEvalYAMLOutput(t *testing.T) {
	out, err := runCommand(t, "eval", "--output", "yaml", "git_link_parse", "https://example.com/org/repo")
	require.NoError(t, err)
	assert.Contains(t, out, "name: repo")
	assert.Contains(t, out, "version: master")
}

func TestLintCommand(t *testing.T) {
	path := testutil.WriteFile(t, "requirements.txt", "Babel>=2.5.3\nrequests>=banana\n")

	out, err := runCommand(t, "lint", path)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
	assert.Contains(t, out, "checked 2 requirements")
	assert.Contains(t, out, "invalid version spec")
}

func TestLintCommandCleanFile(t *testing.T) {
	path := testutil.WriteFile(t, "requirements.txt", "Babel>=2.5.3\n")

	out, err := runCommand(t, "lint", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "checked 1 requirements"))
}

func TestExitCodes(t *testing.T) {
	assert.Equal(t, 2, exitCodeForError(errbuilder.New().WithCode(errbuilder.CodeInvalidArgument).WithMsg("bad")))
	assert.Equal(t, 3, exitCodeForError(errbuilder.New().WithCode(errbuilder.CodeFailedPrecondition).WithMsg("fatal")))
	assert.Equal(t, 5, exitCodeForError(errbuilder.New().WithCode(errbuilder.CodeNotFound).WithMsg("missing")))
}
