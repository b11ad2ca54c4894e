package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"trr/internal/logging"
)

// ArgsPlaceholder is the token in init commands that gets substituted
// with the extra arguments passed to create
const ArgsPlaceholder = "@@args"

// Config represents the structure of ~/.config/trr/config.toml
type Config struct {
	Settings      Settings          `toml:"settings"`
	BranchAliases map[string]string `toml:"branch_aliases"`
}

// Settings holds the tool settings
type Settings struct {
	// RepoSyncPath is the sync root: workspace copies and their records
	// live under it
	RepoSyncPath string `toml:"repo_sync_path"`

	// TmuxWindowInitCommands is sent line by line into a fresh tmux
	// window or session; ArgsPlaceholder is substituted first
	TmuxWindowInitCommands string `toml:"tmux_window_init_commands"`

	// RsyncExcludes are extra exclusion patterns; the sync root itself
	// is always excluded
	RsyncExcludes []string `toml:"rsync_excludes"`
}

// Default returns a configuration usable with zero configuration
// present
func Default() Config {
	return Config{
		Settings: Settings{
			RepoSyncPath: ".trr",
			TmuxWindowInitCommands: `git reset --hard
tmux split-window -h
tmux send-keys -t 1 'if [ -n "@@args" ]; then echo "@@args"; fi' C-m
tmux select-pane -t 1
`,
			RsyncExcludes: []string{"target"},
		},
		BranchAliases: map[string]string{
			"@f": "feature",
			"@b": "bugfix",
			"@t": "!echo feature/$(date +%Y%m%d-%H%M%S)",
		},
	}
}

// Path returns the config file location: $TRR_CONFIG_PATH
// (tilde-expanded) or ~/.config/trr/config.toml
func Path() string {
	if path := os.Getenv("TRR_CONFIG_PATH"); path != "" {
		return ExpandPath(path)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "trr", "config.toml")
	}
	return filepath.Join(homeDir, ".config", "trr", "config.toml")
}

// ExpandPath expands a leading ~ to the home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}

// Load reads the config file, falling back to defaults when the file
// does not exist
func Load() (Config, error) {
	path := Path()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logging.Logger.Debug("No config file, using defaults", "path", path)
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	logging.Logger.Debug("Config loaded", "path", path)
	return cfg, nil
}

// Write serializes the config to the given path, creating parent
// directories as needed
func Write(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
