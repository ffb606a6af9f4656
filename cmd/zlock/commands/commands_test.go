package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zlock/cmd/zlock/commands"
	"go.trai.ch/zlock/internal/app"
	"go.trai.ch/zlock/internal/build"
	"go.trai.ch/zlock/internal/core/domain"
)

type mockApp struct {
	runCalls   []domain.Request
	runOpts    app.RunOptions
	applyPath  string
	overrides  app.Overrides
	modulePath string
	err        error
	wroteTo    io.Writer
}

func (m *mockApp) Run(_ context.Context, w io.Writer, req domain.Request, opts app.RunOptions) error {
	m.runCalls = append(m.runCalls, req)
	m.runOpts = opts
	m.wroteTo = w
	return m.err
}

func (m *mockApp) Apply(_ context.Context, _ io.Writer, path string, o app.Overrides, opts app.RunOptions) error {
	m.applyPath = path
	m.overrides = o
	m.runOpts = opts
	return m.err
}

func (m *mockApp) RunModule(_ context.Context, _ io.Writer, argsPath string) error {
	m.modulePath = argsPath
	return m.err
}

func execute(t *testing.T, m *mockApp, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(m)
	out := new(bytes.Buffer)
	cli.SetOutput(out, out)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return out.String(), err
}

func TestCommands_Lock(t *testing.T) {
	m := &mockApp{}

	_, err := execute(t, m, "lock", "bash", "tcsh", "-t", "package", "-r", "oss", "-m", "pinned", "-n", "-o", "yaml")
	require.NoError(t, err)

	require.Len(t, m.runCalls, 1)
	assert.Equal(t, domain.Request{
		Names: []string{"bash", "tcsh"},
		State: domain.StatePresent,
		Options: domain.LockOptions{
			Type:    domain.PackageTypePackage,
			Repo:    "oss",
			Message: "pinned",
		},
		DryRun: true,
		Binary: domain.DefaultBinary,
	}, m.runCalls[0])
	assert.Equal(t, app.RunOptions{Output: "yaml"}, m.runOpts)
}

func TestCommands_LockRequiresNames(t *testing.T) {
	m := &mockApp{}

	_, err := execute(t, m, "lock")
	require.Error(t, err)
	assert.Empty(t, m.runCalls)
}

func TestCommands_Unlock(t *testing.T) {
	m := &mockApp{}

	_, err := execute(t, m, "unlock", "zsh", "--zypper", "/opt/zypper", "--log-json")
	require.NoError(t, err)

	require.Len(t, m.runCalls, 1)
	assert.Equal(t, domain.StateAbsent, m.runCalls[0].State)
	assert.Equal(t, []string{"zsh"}, m.runCalls[0].Names)
	assert.Equal(t, "/opt/zypper", m.runCalls[0].Binary)
	assert.True(t, m.runOpts.LogJSON)
	assert.Equal(t, "auto", m.runOpts.Output)
}

func TestCommands_UnlockRejectsMessage(t *testing.T) {
	m := &mockApp{}

	_, err := execute(t, m, "unlock", "zsh", "-m", "why")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown shorthand flag")
}

func TestCommands_ListAndPurge(t *testing.T) {
	m := &mockApp{}

	_, err := execute(t, m, "list")
	require.NoError(t, err)
	_, err = execute(t, m, "purge", "-t", "patch")
	require.NoError(t, err)

	require.Len(t, m.runCalls, 2)
	assert.Equal(t, domain.StateList, m.runCalls[0].State)
	assert.Nil(t, m.runCalls[0].Names)
	assert.Equal(t, domain.StatePurge, m.runCalls[1].State)
	assert.Equal(t, domain.PackageTypePatch, m.runCalls[1].Options.Type)
}

func TestCommands_ListRejectsArgs(t *testing.T) {
	m := &mockApp{}

	_, err := execute(t, m, "list", "bash")
	require.Error(t, err)
	assert.Empty(t, m.runCalls)
}

func TestCommands_Apply(t *testing.T) {
	t.Run("only changed flags override the file", func(t *testing.T) {
		m := &mockApp{}

		_, err := execute(t, m, "apply", "-f", "locks.yaml", "--repo", "oss", "-n")
		require.NoError(t, err)

		assert.Equal(t, "locks.yaml", m.applyPath)
		require.NotNil(t, m.overrides.Repo)
		assert.Equal(t, "oss", *m.overrides.Repo)
		require.NotNil(t, m.overrides.DryRun)
		assert.True(t, *m.overrides.DryRun)
		assert.Nil(t, m.overrides.State)
		assert.Nil(t, m.overrides.Type)
		assert.Nil(t, m.overrides.Message)
		assert.Nil(t, m.overrides.Binary)
		assert.Empty(t, m.overrides.Names)
	})

	t.Run("state and names", func(t *testing.T) {
		m := &mockApp{}

		_, err := execute(t, m, "apply", "-f", "locks.yaml", "-s", "absent", "bash")
		require.NoError(t, err)

		require.NotNil(t, m.overrides.State)
		assert.Equal(t, domain.StateAbsent, *m.overrides.State)
		assert.Equal(t, []string{"bash"}, m.overrides.Names)
	})

	t.Run("invalid state", func(t *testing.T) {
		m := &mockApp{}

		_, err := execute(t, m, "apply", "-f", "locks.yaml", "-s", "frozen")
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrInvalidState.Error())
		assert.Empty(t, m.applyPath)
	})

	t.Run("invalid type", func(t *testing.T) {
		m := &mockApp{}

		_, err := execute(t, m, "apply", "-f", "locks.yaml", "-t", "rpm")
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrInvalidPackageType.Error())
	})

	t.Run("file is required", func(t *testing.T) {
		m := &mockApp{}

		_, err := execute(t, m, "apply")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `required flag(s) "file" not set`)
	})
}

func TestCommands_Module(t *testing.T) {
	m := &mockApp{}

	_, err := execute(t, m, "module", "/tmp/args.json")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/args.json", m.modulePath)

	_, err = execute(t, &mockApp{}, "module")
	require.Error(t, err)
}

func TestCommands_PropagatesErrors(t *testing.T) {
	m := &mockApp{err: errors.New("simulated error")}

	_, err := execute(t, m, "lock", "bash")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "simulated error")
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Equal(t, "zlock version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n", out)

	out, err = execute(t, &mockApp{}, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "zlock version "+build.Version)
}
