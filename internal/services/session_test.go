package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTmux implements ports.TmuxClient for tests
type fakeTmux struct {
	available bool
	inside    bool
	windows   []string
	sessions  []string

	windowErr  error
	sessionErr error
	sendErr    error

	ops  []string
	sent map[string][]string
}

func newFakeTmux() *fakeTmux {
	return &fakeTmux{available: true, sent: make(map[string][]string)}
}

func (f *fakeTmux) Available() bool     { return f.available }
func (f *fakeTmux) InsideSession() bool { return f.inside }

func (f *fakeTmux) NewWindow(name, dir string) error {
	f.ops = append(f.ops, "new-window "+name+" "+dir)
	return f.windowErr
}

func (f *fakeTmux) NewSession(name, dir string) error {
	f.ops = append(f.ops, "new-session "+name+" "+dir)
	return f.sessionErr
}

func (f *fakeTmux) SendKeys(target, command string) error {
	f.sent[target] = append(f.sent[target], command)
	return f.sendErr
}

func (f *fakeTmux) SelectWindow(name string) error {
	f.ops = append(f.ops, "select-window "+name)
	return nil
}

func (f *fakeTmux) Attach(name string) error {
	f.ops = append(f.ops, "attach "+name)
	return nil
}

func (f *fakeTmux) ListWindows() ([]string, error)  { return f.windows, nil }
func (f *fakeTmux) ListSessions() ([]string, error) { return f.sessions, nil }

func (f *fakeTmux) KillWindow(name string) error {
	f.ops = append(f.ops, "kill-window "+name)
	return nil
}

func (f *fakeTmux) KillSession(name string) error {
	f.ops = append(f.ops, "kill-session "+name)
	return nil
}

// fakeInspector implements ports.RepoInspector
type fakeInspector struct {
	url string
}

func (f *fakeInspector) RemoteURL() string { return f.url }

func newSessionServiceForTest(tmux *fakeTmux, remoteURL string, terminal bool) *SessionService {
	service := NewSessionService(tmux, &fakeInspector{url: remoteURL})
	service.stdinIsTerminal = func() bool { return terminal }
	return service
}

func TestSetupSkipsWhenTmuxAbsent(t *testing.T) {
	tmux := newFakeTmux()
	tmux.available = false
	service := newSessionServiceForTest(tmux, "", true)

	err := service.Setup("feature/x", "/dir", "git reset --hard", nil)

	require.NoError(t, err)
	assert.Empty(t, tmux.ops, "no tmux operations when tmux is absent")
}

func TestSetupNestedCreatesWindow(t *testing.T) {
	tmux := newFakeTmux()
	tmux.inside = true
	service := newSessionServiceForTest(tmux, "https://github.com/owner/rocket.git", true)

	err := service.Setup("feature/x", "/work/.trr/feature-x", "git reset --hard\necho @@args\n", []string{"hello", "world"})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"new-window roc-feature/x /work/.trr/feature-x",
		"select-window roc-feature/x",
	}, tmux.ops)
	// Each line goes out as one command; the placeholder is substituted
	assert.Equal(t, []string{"git reset --hard", "echo hello world"}, tmux.sent["roc-feature/x"])
}

func TestSetupStandaloneCreatesSessionAndAttaches(t *testing.T) {
	tmux := newFakeTmux()
	service := newSessionServiceForTest(tmux, "git@github.com:owner/rocket.git", true)

	err := service.Setup("feature/x", "/dir", "", nil)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"new-session roc-feature/x /dir",
		"attach roc-feature/x",
	}, tmux.ops)
}

func TestSetupHeadlessOnlyReportsPath(t *testing.T) {
	tmux := newFakeTmux()
	service := newSessionServiceForTest(tmux, "", false)

	err := service.Setup("feature/x", "/dir", "echo hi", nil)
	require.NoError(t, err)
	assert.Empty(t, tmux.ops)
	assert.Empty(t, tmux.sent)
}

func TestSetupWindowCreationFailureIsFatal(t *testing.T) {
	tmux := newFakeTmux()
	tmux.inside = true
	tmux.windowErr = errors.New("duplicate window")
	service := newSessionServiceForTest(tmux, "", true)

	require.Error(t, service.Setup("feature/x", "/dir", "", nil))
}

func TestSetupSkipsBlankInitLines(t *testing.T) {
	tmux := newFakeTmux()
	tmux.inside = true
	service := newSessionServiceForTest(tmux, "https://github.com/o/rocket.git", true)

	require.NoError(t, service.Setup("x", "/dir", "\n\none\n\n  \ntwo\n", nil))
	assert.Equal(t, []string{"one", "two"}, tmux.sent["roc-x"])
}

func TestTeardownKillsWindowFirst(t *testing.T) {
	tmux := newFakeTmux()
	tmux.inside = true
	tmux.windows = []string{"other", "roc-feature/x"}
	tmux.sessions = []string{"roc-feature/x"}
	service := newSessionServiceForTest(tmux, "https://github.com/o/rocket.git", true)

	kind, err := service.Teardown("feature/x")
	require.NoError(t, err)
	assert.Equal(t, TornDownWindow, kind)
	assert.Equal(t, []string{"kill-window roc-feature/x"}, tmux.ops)
}

func TestTeardownKillsSession(t *testing.T) {
	tmux := newFakeTmux()
	tmux.sessions = []string{"roc-feature/x"}
	service := newSessionServiceForTest(tmux, "https://github.com/o/rocket.git", true)

	kind, err := service.Teardown("feature/x")
	require.NoError(t, err)
	assert.Equal(t, TornDownSession, kind)
	assert.Equal(t, []string{"kill-session roc-feature/x"}, tmux.ops)
}

func TestTeardownReportsNothingFound(t *testing.T) {
	tmux := newFakeTmux()
	tmux.sessions = []string{"unrelated"}
	service := newSessionServiceForTest(tmux, "", true)

	kind, err := service.Teardown("feature/x")
	require.NoError(t, err)
	assert.Empty(t, kind)
	assert.Empty(t, tmux.ops)
}

func TestTeardownWhenTmuxAbsent(t *testing.T) {
	tmux := newFakeTmux()
	tmux.available = false
	service := newSessionServiceForTest(tmux, "", true)

	kind, err := service.Teardown("feature/x")
	require.NoError(t, err)
	assert.Empty(t, kind)
}
