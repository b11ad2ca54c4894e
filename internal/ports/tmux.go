package ports

// TmuxClient abstracts the tmux binary. All operations address windows
// and sessions by name.
type TmuxClient interface {
	// Available reports whether tmux is installed
	Available() bool

	// InsideSession reports whether the current process runs inside a
	// tmux session
	InsideSession() bool

	// NewWindow creates a window in the current session, starting in dir
	NewWindow(name, dir string) error

	// NewSession creates a detached session starting in dir
	NewSession(name, dir string) error

	// SendKeys sends one command line to the named window or session
	SendKeys(target, command string) error

	// SelectWindow switches focus to the named window
	SelectWindow(name string) error

	// Attach attaches to the named session and blocks until the user
	// detaches or exits
	Attach(name string) error

	// ListWindows returns window names in the current session
	ListWindows() ([]string, error)

	// ListSessions returns all session names
	ListSessions() ([]string, error)

	// KillWindow kills the named window
	KillWindow(name string) error

	// KillSession kills the named session
	KillSession(name string) error
}
