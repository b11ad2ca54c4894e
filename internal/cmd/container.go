package cmd

import (
	"trr/internal/adapters/editor"
	"trr/internal/adapters/git"
	"trr/internal/adapters/process"
	"trr/internal/adapters/rsync"
	"trr/internal/adapters/storage"
	"trr/internal/adapters/tmux"
	"trr/internal/alias"
	"trr/internal/config"
	"trr/internal/services"
	"trr/internal/ui"
)

// Container wires adapters and services for the commands
type Container struct {
	Config        config.Config
	CreateService *services.CreateService
	DeleteService *services.DeleteService
	ConfigService *services.ConfigService
}

// NewContainer creates all services with their production adapters
func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	runner := process.NewRunner()
	store := storage.NewFileStore(cfg.Settings.RepoSyncPath)
	gitRepo := git.NewCLIRepository(runner)
	tmuxClient := tmux.NewClient(runner)
	sessionService := services.NewSessionService(tmuxClient, gitRepo)

	return &Container{
		Config: cfg,
		CreateService: services.NewCreateService(
			cfg,
			alias.NewExpander(runner),
			store,
			rsync.NewCopier(runner),
			gitRepo,
			sessionService,
		),
		DeleteService: services.NewDeleteService(
			cfg,
			store,
			ui.NewPicker(),
			ui.NewHuhConfirmer(),
			sessionService,
		),
		ConfigService: services.NewConfigService(editor.NewOpener(runner)),
	}, nil
}
