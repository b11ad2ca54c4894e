package services

import (
	"fmt"
	"os"

	"trr/internal/config"
	"trr/internal/ports"
)

// ConfigService materializes the default config file and opens it for
// editing
type ConfigService struct {
	opener ports.EditorOpener
}

// NewConfigService creates a ConfigService
func NewConfigService(opener ports.EditorOpener) *ConfigService {
	return &ConfigService{opener: opener}
}

// Init writes the default config when none exists, then opens it in
// the user's editor. Having no editor configured is not an error; the
// file location is printed instead.
func (s *ConfigService) Init() error {
	path := config.Path()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := config.Write(config.Default(), path); err != nil {
			return err
		}
		fmt.Printf("Created new config file at: %s\n", path)
	}

	opened, err := s.opener.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	if !opened {
		fmt.Println("No editor found in TRR_EDITOR, EDITOR, or VISUAL environment variables")
		fmt.Printf("Config file location: %s\n", path)
	}
	return nil
}
