package tmux

import (
	"fmt"
	"os"
	"strings"

	"trr/internal/logging"
	"trr/internal/ports"
)

// Client implements ports.TmuxClient by shelling out to the tmux binary
// through an injected command runner
type Client struct {
	runner ports.CommandRunner
}

// Compile-time interface verification
var _ ports.TmuxClient = (*Client)(nil)

// NewClient creates a Client
func NewClient(runner ports.CommandRunner) *Client {
	return &Client{runner: runner}
}

// Available reports whether tmux is installed
func (c *Client) Available() bool {
	return c.runner.LookPath("tmux")
}

// InsideSession reports whether the current process runs inside tmux
func (c *Client) InsideSession() bool {
	return os.Getenv("TMUX") != ""
}

// NewWindow creates a window in the current session, starting in dir
func (c *Client) NewWindow(name, dir string) error {
	return c.run("new-window", "-n", name, "-c", dir)
}

// NewSession creates a detached session starting in dir
func (c *Client) NewSession(name, dir string) error {
	return c.run("new-session", "-d", "-s", name, "-c", dir)
}

// SendKeys sends one command line to the named window or session
func (c *Client) SendKeys(target, command string) error {
	return c.run("send-keys", "-t", target, command, "Enter")
}

// SelectWindow switches focus to the named window
func (c *Client) SelectWindow(name string) error {
	return c.run("select-window", "-t", name)
}

// Attach attaches to the named session and blocks until the user
// detaches or exits
func (c *Client) Attach(name string) error {
	logging.Logger.Info("Attaching to tmux session", "name", name)
	return c.runner.RunInteractive("tmux", []string{"attach-session", "-t", name}, "")
}

// ListWindows returns window names in the current session
func (c *Client) ListWindows() ([]string, error) {
	return c.list("list-windows", "-F", "#{window_name}")
}

// ListSessions returns all session names. An exit code of 1 means no
// server is running, which is not an error.
func (c *Client) ListSessions() ([]string, error) {
	return c.list("list-sessions", "-F", "#{session_name}")
}

// KillWindow kills the named window
func (c *Client) KillWindow(name string) error {
	return c.run("kill-window", "-t", name)
}

// KillSession kills the named session
func (c *Client) KillSession(name string) error {
	return c.run("kill-session", "-t", name)
}

func (c *Client) run(args ...string) error {
	result, err := c.runner.Run("tmux", args, "")
	if err != nil {
		return fmt.Errorf("failed to run tmux %s: %w", args[0], err)
	}
	if result.ExitCode != 0 {
		return fmt.Errorf("tmux %s failed: %s", args[0], strings.TrimSpace(result.Stderr))
	}
	return nil
}

func (c *Client) list(args ...string) ([]string, error) {
	result, err := c.runner.Run("tmux", args, "")
	if err != nil {
		return nil, fmt.Errorf("failed to run tmux %s: %w", args[0], err)
	}
	if result.ExitCode != 0 {
		// tmux exits 1 when no server is running
		if result.ExitCode == 1 {
			return []string{}, nil
		}
		return nil, fmt.Errorf("tmux %s failed: %s", args[0], strings.TrimSpace(result.Stderr))
	}

	var names []string
	for _, line := range strings.Split(result.Stdout, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			names = append(names, line)
		}
	}
	return names, nil
}
