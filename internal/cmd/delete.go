package cmd

import (
	"fmt"

	"trr/internal/logging"
)

// DeleteCmd selects and deletes a workspace
type DeleteCmd struct{}

// Run executes the delete command
func (d *DeleteCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing delete command")

	if err := cli.Container.DeleteService.Delete(); err != nil {
		logging.Logger.Error("Delete failed", "error", err)
		return fmt.Errorf("deleting repository copy: %w", err)
	}
	return nil
}
