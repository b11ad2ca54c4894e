package ports

// AliasExpander resolves a raw branch token against an alias table
type AliasExpander interface {
	Expand(raw string, aliases map[string]string) string
}

// TreeCopier replicates a working tree into a workspace directory
type TreeCopier interface {
	Copy(src, dst string, excludes []string, verbose bool) error
}

// SessionCoordinator manages the terminal-session context bound to a
// workspace
type SessionCoordinator interface {
	// Setup creates the window or session for a workspace and runs the
	// configured initialization commands in it. It may block when it
	// attaches to a standalone session.
	Setup(branch, targetDir, initCommands string, extraArgs []string) error

	// Teardown kills the workspace's window or session if one is live.
	// It returns what was torn down ("window" or "session", "" when
	// nothing was found); absence is not an error.
	Teardown(branch string) (string, error)
}
