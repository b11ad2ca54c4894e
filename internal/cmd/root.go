package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"trr/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Print version information" short:"V"`
	Debug       bool             `help:"Enable debug output including rsync verbose logs" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Create CreateCmd `cmd:"" aliases:"c" help:"Create a new repository copy using rsync and set up a tmux session/window (alias: c)"`
	Config ConfigCmd `cmd:"" help:"Open the config file in your editor or create it with defaults"`
	Delete DeleteCmd `cmd:"" aliases:"d" help:"Select and delete repository copies (alias: d)"`

	// Internal fields (not flags)
	Container *Container `kong:"-"`
}

// AfterApply initializes logging and the service container after CLI
// parsing
func (c *CLI) AfterApply() error {
	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Let subprocesses inherit debug settings and append to the same
	// log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("TRR_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("TRR_DEBUG_FILE", logFilePath)
		}
	}

	container, err := NewContainer()
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}
