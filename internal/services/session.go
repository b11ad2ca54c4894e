package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"

	"trr/internal/config"
	"trr/internal/domain"
	"trr/internal/logging"
	"trr/internal/ports"
)

// Teardown kinds reported by SessionService.Teardown
const (
	TornDownWindow  = "window"
	TornDownSession = "session"
)

// SessionService coordinates the tmux context bound to a workspace.
// Inside an existing tmux session it works with windows; outside, with
// standalone sessions.
type SessionService struct {
	tmux ports.TmuxClient
	git  ports.RepoInspector

	// stdinIsTerminal is swappable for tests
	stdinIsTerminal func() bool
}

// Compile-time interface verification
var _ ports.SessionCoordinator = (*SessionService)(nil)

// NewSessionService creates a SessionService
func NewSessionService(tmux ports.TmuxClient, git ports.RepoInspector) *SessionService {
	return &SessionService{
		tmux: tmux,
		git:  git,
		stdinIsTerminal: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}
}

// sessionName derives the window/session name for a branch. The prefix
// derivation is shared with Teardown so both flows always agree.
func (s *SessionService) sessionName(branch string) string {
	var workingDirName string
	if cwd, err := os.Getwd(); err == nil {
		workingDirName = filepath.Base(cwd)
	}
	prefix := domain.RepoPrefix(s.git.RemoteURL(), workingDirName)
	return domain.SessionName(prefix, branch)
}

// Setup creates the tmux context for a freshly created workspace and
// runs the configured initialization commands in it. tmux being absent
// is a warning, not an error: the workspace stays usable through its
// filesystem path. When a standalone session is created, Setup blocks
// in the attach until the user detaches or exits.
func (s *SessionService) Setup(branch, targetDir, initCommands string, extraArgs []string) error {
	if !s.tmux.Available() {
		fmt.Fprintln(os.Stderr, "Warning: tmux is not installed. Skipping tmux setup.")
		fmt.Fprintln(os.Stderr, "To use tmux integration, please install tmux.")
		return nil
	}

	name := s.sessionName(branch)
	commands := strings.ReplaceAll(initCommands, config.ArgsPlaceholder, strings.Join(extraArgs, " "))

	switch {
	case s.tmux.InsideSession():
		return s.setupWindow(name, targetDir, commands)
	case s.stdinIsTerminal():
		return s.setupSession(name, targetDir, commands)
	default:
		fmt.Printf("Not in a terminal environment. Navigate to %s to start working.\n", targetDir)
		return nil
	}
}

func (s *SessionService) setupWindow(name, targetDir, commands string) error {
	fmt.Printf("Creating new tmux window '%s' in current session...\n", name)
	if err := s.tmux.NewWindow(name, targetDir); err != nil {
		return fmt.Errorf("failed to create tmux window: %w", err)
	}

	if err := s.sendInitCommands(name, commands); err != nil {
		return err
	}

	if err := s.tmux.SelectWindow(name); err != nil {
		return fmt.Errorf("failed to switch to window %q: %w", name, err)
	}

	fmt.Printf("Switched to new window '%s'\n", name)
	return nil
}

func (s *SessionService) setupSession(name, targetDir, commands string) error {
	fmt.Printf("Creating tmux session '%s' in directory '%s'\n", name, targetDir)
	if err := s.tmux.NewSession(name, targetDir); err != nil {
		return fmt.Errorf("failed to create tmux session: %w", err)
	}

	if err := s.sendInitCommands(name, commands); err != nil {
		return err
	}

	fmt.Printf("Attaching to tmux session '%s'...\n", name)
	if err := s.tmux.Attach(name); err != nil {
		return fmt.Errorf("failed to attach to session %q: %w", name, err)
	}
	return nil
}

// sendInitCommands sends each non-empty line as one command
func (s *SessionService) sendInitCommands(target, commands string) error {
	if strings.TrimSpace(commands) == "" {
		return nil
	}

	for _, line := range strings.Split(strings.TrimSpace(commands), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := s.tmux.SendKeys(target, line); err != nil {
			return fmt.Errorf("failed to send init command to %q: %w", target, err)
		}
	}
	return nil
}

// Teardown kills the workspace's live window or session if one exists.
// Windows in the current session are checked first, then standalone
// sessions. Not finding one is normal: a workspace may never have had a
// live session, for example after a reboot.
func (s *SessionService) Teardown(branch string) (string, error) {
	if !s.tmux.Available() {
		return "", nil
	}

	name := s.sessionName(branch)

	if s.tmux.InsideSession() {
		windows, err := s.tmux.ListWindows()
		if err != nil {
			logging.Logger.Warn("Failed to list tmux windows", "error", err)
		}
		for _, window := range windows {
			if window == name {
				if err := s.tmux.KillWindow(name); err != nil {
					return TornDownWindow, fmt.Errorf("failed to kill tmux window %q: %w", name, err)
				}
				return TornDownWindow, nil
			}
		}
	}

	sessions, err := s.tmux.ListSessions()
	if err != nil {
		logging.Logger.Warn("Failed to list tmux sessions", "error", err)
	}
	for _, session := range sessions {
		if session == name {
			if err := s.tmux.KillSession(name); err != nil {
				return TornDownSession, fmt.Errorf("failed to kill tmux session %q: %w", name, err)
			}
			return TornDownSession, nil
		}
	}

	return "", nil
}
