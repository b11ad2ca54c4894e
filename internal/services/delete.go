package services

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"trr/internal/config"
	"trr/internal/domain"
	"trr/internal/logging"
	"trr/internal/ports"
)

// DeleteService drives interactive selection and safe removal of a
// workspace: session teardown, directory removal, and record removal
// belong together.
type DeleteService struct {
	cfg       config.Config
	store     ports.WorkspaceStore
	picker    ports.WorkspacePicker
	confirmer ports.Confirmer
	session   ports.SessionCoordinator
}

// NewDeleteService creates a DeleteService
func NewDeleteService(
	cfg config.Config,
	store ports.WorkspaceStore,
	picker ports.WorkspacePicker,
	confirmer ports.Confirmer,
	session ports.SessionCoordinator,
) *DeleteService {
	return &DeleteService{
		cfg:       cfg,
		store:     store,
		picker:    picker,
		confirmer: confirmer,
		session:   session,
	}
}

// Delete lets the user pick a workspace and retires it. Aborted
// selection and declined confirmation leave everything untouched. A
// failed directory removal keeps the record: it is the only trace of
// the undeleted directory.
func (s *DeleteService) Delete() error {
	workspaces, err := s.store.ListAll()
	if err != nil {
		return err
	}

	if len(workspaces) == 0 {
		fmt.Println("No workspaces found.")
		return nil
	}

	index, err := s.picker.Pick(workspaces)
	if err != nil {
		if errors.Is(err, domain.ErrSelectionAborted) {
			fmt.Println("No workspace selected.")
			return nil
		}
		return err
	}
	workspace := workspaces[index]

	fmt.Printf("Selected workspace: %s\n", workspace.Branch)
	fmt.Printf("Created at: %s\n", workspace.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Println()

	confirmed, err := s.confirmer.Confirm(
		fmt.Sprintf("Delete workspace '%s'?", workspace.Branch),
		"This removes its directory, record, and any live tmux session.",
	)
	if err != nil {
		return fmt.Errorf("confirmation failed: %w", err)
	}
	if !confirmed {
		fmt.Println("Deletion cancelled.")
		return nil
	}

	// Session teardown is best-effort; a missing session must not block
	// removal of the directory and record
	kind, err := s.session.Teardown(workspace.Branch)
	switch {
	case err != nil:
		logging.Logger.Warn("Session teardown failed", "branch", workspace.Branch, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: failed to tear down tmux %s: %v\n", kind, err)
	case kind != "":
		fmt.Printf("Killed tmux %s for '%s'\n", kind, workspace.Branch)
	default:
		fmt.Printf("No live tmux session for '%s'\n", workspace.Branch)
	}

	directory := workspace.Directory
	if directory == "" {
		directory = domain.DirectoryName(workspace.Branch)
	}
	workspaceDir := filepath.Join(s.cfg.Settings.RepoSyncPath, directory)
	if _, err := os.Stat(workspaceDir); err == nil {
		fmt.Printf("Removing directory: %s\n", workspaceDir)
		if err := os.RemoveAll(workspaceDir); err != nil {
			// Keep the record: it is the only trace of this directory
			return fmt.Errorf("failed to remove workspace directory: %w", err)
		}
	}

	if err := s.store.Remove(workspace.ID); err != nil {
		return err
	}

	fmt.Printf("Successfully deleted workspace '%s'\n", workspace.Branch)
	return nil
}
