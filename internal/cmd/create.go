package cmd

import (
	"fmt"

	"trr/internal/logging"
)

// CreateCmd creates a new workspace for a branch
type CreateCmd struct {
	Branch string   `arg:"" help:"Branch name or alias shorthand"`
	Args   []string `arg:"" optional:"" passthrough:"" help:"Arguments to pass to tmux initialization commands"`
}

// Run executes the create command
func (c *CreateCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing create command", "branch", c.Branch, "args", c.Args, "debug", cli.Debug)

	if err := cli.Container.CreateService.Create(c.Branch, c.Args, cli.Debug); err != nil {
		logging.Logger.Error("Create failed", "branch", c.Branch, "error", err)
		return fmt.Errorf("creating repository copy: %w", err)
	}
	return nil
}
