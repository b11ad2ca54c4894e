package ports

import "trr/internal/domain"

// WorkspacePicker is the interactive selection oracle used by the
// deletion flow. Its search behavior is opaque to callers.
type WorkspacePicker interface {
	// Pick presents the workspaces and returns the index of the chosen
	// one, or domain.ErrSelectionAborted when the user aborts
	Pick(workspaces []domain.Workspace) (int, error)
}

// Confirmer asks the user a yes/no question, defaulting to no
type Confirmer interface {
	Confirm(title, description string) (bool, error)
}

// EditorOpener opens files in an external editor
type EditorOpener interface {
	// Open opens the specified path in an editor and waits for it to
	// exit. It returns false when no editor could be found.
	Open(path string) (bool, error)
}
