package rsync

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trr/internal/ports"
)

type fakeRunner struct {
	result      ports.CommandResult
	err         error
	name        string
	args        []string
	interactive bool
}

func (f *fakeRunner) Run(name string, args []string, dir string) (ports.CommandResult, error) {
	f.name = name
	f.args = args
	return f.result, f.err
}

func (f *fakeRunner) RunInteractive(name string, args []string, dir string) error {
	f.name = name
	f.args = args
	f.interactive = true
	return f.err
}

func (f *fakeRunner) LookPath(name string) bool {
	return true
}

func TestCopyArguments(t *testing.T) {
	runner := &fakeRunner{}
	copier := NewCopier(runner)

	err := copier.Copy("/work", "/work/.trr/feature-x", []string{".trr", "target"}, false)
	require.NoError(t, err)

	assert.Equal(t, "rsync", runner.name)
	assert.False(t, runner.interactive)
	assert.Equal(t, []string{
		"-a",
		"--exclude", ".trr",
		"--exclude", "target",
		"/work/",
		"/work/.trr/feature-x/",
	}, runner.args)
}

func TestCopyVerboseStreamsLive(t *testing.T) {
	runner := &fakeRunner{}
	copier := NewCopier(runner)

	require.NoError(t, copier.Copy("/src", "/dst", nil, true))

	// Verbose output goes through inherited stdio so the user sees the
	// transfer as it happens
	assert.True(t, runner.interactive)
	assert.Equal(t, []string{"-a", "-v", "/src/", "/dst/"}, runner.args)
}

func TestCopyVerboseFailureIsFatal(t *testing.T) {
	runner := &fakeRunner{err: errors.New("exit status 23")}
	copier := NewCopier(runner)

	err := copier.Copy("/src", "/dst", nil, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rsync failed")
}

func TestCopyNonZeroExitIsFatal(t *testing.T) {
	runner := &fakeRunner{result: ports.CommandResult{ExitCode: 23, Stderr: "some files could not be transferred"}}
	copier := NewCopier(runner)

	err := copier.Copy("/src", "/dst", nil, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rsync failed")
	assert.Contains(t, err.Error(), "23")
}

func TestCopyStartFailure(t *testing.T) {
	runner := &fakeRunner{err: errors.New("rsync: executable not found")}
	copier := NewCopier(runner)

	require.Error(t, copier.Copy("/src", "/dst", nil, false))
}
