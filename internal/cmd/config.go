package cmd

import (
	"fmt"

	"trr/internal/logging"
)

// ConfigCmd opens the config file, creating it with defaults first if
// needed
type ConfigCmd struct{}

// Run executes the config command
func (c *ConfigCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing config command")

	if err := cli.Container.ConfigService.Init(); err != nil {
		logging.Logger.Error("Config init failed", "error", err)
		return fmt.Errorf("initializing config: %w", err)
	}
	return nil
}
