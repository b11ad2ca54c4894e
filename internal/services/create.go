package services

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"trr/internal/config"
	"trr/internal/domain"
	"trr/internal/logging"
	"trr/internal/ports"
)

// CreateService materializes a new workspace: alias expansion, record
// allocation, tree copy, branch creation, and session hand-off.
type CreateService struct {
	cfg      config.Config
	expander ports.AliasExpander
	store    ports.WorkspaceStore
	copier   ports.TreeCopier
	git      ports.BranchCreator
	session  ports.SessionCoordinator
}

// NewCreateService creates a CreateService
func NewCreateService(
	cfg config.Config,
	expander ports.AliasExpander,
	store ports.WorkspaceStore,
	copier ports.TreeCopier,
	git ports.BranchCreator,
	session ports.SessionCoordinator,
) *CreateService {
	return &CreateService{
		cfg:      cfg,
		expander: expander,
		store:    store,
		copier:   copier,
		git:      git,
		session:  session,
	}
}

// Create builds a workspace for the given branch token. The record is
// persisted before the copy so a crash mid-copy still leaves a
// traceable record; later failures intentionally leave the record and
// partial directory in place for inspection instead of rolling back.
func (s *CreateService) Create(branch string, extraArgs []string, debug bool) error {
	expanded := s.expander.Expand(branch, s.cfg.BranchAliases)
	directoryName := domain.DirectoryName(expanded)

	logging.Logger.Debug("Branch alias expansion", "raw", branch, "expanded", expanded)
	logging.Logger.Debug("Directory name", "directory", directoryName)
	if debug {
		fmt.Fprintf(os.Stderr, "Debug: Branch alias expansion: %s -> %s\n", branch, expanded)
		fmt.Fprintf(os.Stderr, "Debug: Directory name: %s\n", directoryName)
	}

	syncRoot := s.cfg.Settings.RepoSyncPath
	targetDir := filepath.Join(syncRoot, directoryName)

	// Fail fast before any allocation or copy
	if _, err := os.Stat(targetDir); err == nil {
		return fmt.Errorf("%w: %q (use a different branch name or delete the existing one first)",
			domain.ErrDirectoryExists, targetDir)
	}

	id, err := s.store.Allocate()
	if err != nil {
		return err
	}

	workspace := domain.Workspace{
		ID:        id,
		Branch:    expanded,
		CreatedAt: time.Now().UTC(),
		Directory: directoryName,
	}
	if err := s.store.Put(id, workspace); err != nil {
		return err
	}

	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return fmt.Errorf("failed to create target directory: %w", err)
	}

	currentDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// The sync root is always excluded first so copies never recurse
	// into themselves
	excludes := append([]string{syncRoot}, s.cfg.Settings.RsyncExcludes...)
	if err := s.copier.Copy(currentDir, targetDir, excludes, debug); err != nil {
		return err
	}

	absoluteTargetDir := targetDir
	if !filepath.IsAbs(absoluteTargetDir) {
		absoluteTargetDir = filepath.Join(currentDir, targetDir)
	}

	if err := s.git.CreateBranch(absoluteTargetDir, expanded); err != nil {
		return err
	}

	fmt.Println("Repository duplicated successfully:")
	fmt.Printf("  Branch: %s -> %s\n", branch, expanded)
	fmt.Printf("  ID: %s\n", id)
	fmt.Printf("  Target: %s\n", targetDir)

	return s.session.Setup(expanded, absoluteTargetDir, s.cfg.Settings.TmuxWindowInitCommands, extraArgs)
}
