package git

import (
	"fmt"
	"strings"

	"trr/internal/logging"
	"trr/internal/ports"
)

// CLIRepository implements ports.GitRepository by shelling out to git
type CLIRepository struct {
	runner ports.CommandRunner
}

// Compile-time interface verification
var _ ports.GitRepository = (*CLIRepository)(nil)

// NewCLIRepository creates a CLIRepository
func NewCLIRepository(runner ports.CommandRunner) *CLIRepository {
	return &CLIRepository{runner: runner}
}

// RemoteURL returns the origin remote URL of the current repository,
// or "" when it cannot be determined
func (r *CLIRepository) RemoteURL() string {
	result, err := r.runner.Run("git", []string{"remote", "get-url", "origin"}, "")
	if err != nil || result.ExitCode != 0 {
		logging.Logger.Debug("No origin remote URL available", "error", err, "exit_code", result.ExitCode)
		return ""
	}
	return strings.TrimSpace(result.Stdout)
}

// CreateBranch creates and checks out branch inside dir
func (r *CLIRepository) CreateBranch(dir, branch string) error {
	result, err := r.runner.Run("git", []string{"checkout", "-b", branch}, dir)
	if err != nil {
		return fmt.Errorf("failed to run git checkout: %w", err)
	}
	if result.ExitCode != 0 {
		return fmt.Errorf("failed to create git branch %q: %s", branch, strings.TrimSpace(result.Stderr))
	}

	logging.Logger.Info("Branch created", "branch", branch, "dir", dir)
	return nil
}
