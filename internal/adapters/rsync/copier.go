package rsync

import (
	"fmt"
	"strings"

	"trr/internal/logging"
	"trr/internal/ports"
)

// Copier invokes rsync to populate a workspace directory
type Copier struct {
	runner ports.CommandRunner
}

// Compile-time interface verification
var _ ports.TreeCopier = (*Copier)(nil)

// NewCopier creates a Copier
func NewCopier(runner ports.CommandRunner) *Copier {
	return &Copier{runner: runner}
}

// Copy replicates src into dst with archive-preserving semantics. One
// --exclude is passed per pattern; callers put the sync root first so
// workspace copies never recurse into themselves. verbose adds -v and
// streams the output live through inherited stdio.
func (c *Copier) Copy(src, dst string, excludes []string, verbose bool) error {
	args := []string{"-a"}
	if verbose {
		args = append(args, "-v")
	}
	for _, exclude := range excludes {
		args = append(args, "--exclude", exclude)
	}
	args = append(args, src+"/", dst+"/")

	logging.Logger.Debug("Invoking rsync", "args", args)

	if verbose {
		if err := c.runner.RunInteractive("rsync", args, ""); err != nil {
			return fmt.Errorf("rsync failed: %w", err)
		}
		return nil
	}

	result, err := c.runner.Run("rsync", args, "")
	if err != nil {
		return fmt.Errorf("failed to run rsync: %w", err)
	}
	if result.ExitCode != 0 {
		return fmt.Errorf("rsync failed with exit code %d: %s", result.ExitCode, strings.TrimSpace(result.Stderr))
	}

	return nil
}
