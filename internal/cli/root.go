// Package cli is the view layer: thin cobra commands that read collections
// and dispatch mutations to the services. No decision logic lives here.
package cli

import (
	"context"
	"fmt"

	"fitstudio/internal/config"
	"fitstudio/internal/seed"
	"fitstudio/internal/service"
	"fitstudio/internal/state"
	"fitstudio/internal/store"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "studio",
	Short:         "Local-first fitness studio manager",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

// App bundles the wired-up application for one CLI invocation.
type App struct {
	Config   config.Config
	Store    store.Store
	State    *state.Container
	Auth     service.AuthService
	Trainers service.TrainerService
	Clients  service.ClientService
	Library  service.ExerciseService
}

// newApp loads config, opens the store, restores state, seeds on first run,
// and wires the services. Each CLI invocation builds the world fresh.
func newApp(ctx context.Context) (*App, error) {
	// A .env file is optional; real config comes from config.yaml / env vars.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := logrus.StandardLogger()

	var st store.Store
	if cfg.Storage.Ephemeral {
		st = store.NewMemoryStore()
	} else {
		st, err = store.NewFileStore(cfg.Storage.Dir, log)
		if err != nil {
			return nil, err
		}
	}

	container := state.New(st)
	if err := container.Load(ctx); err != nil {
		return nil, err
	}

	if cfg.Seed.Enabled {
		if err := seed.New(st, container, cfg.Auth.HashIterations, log).Run(ctx); err != nil {
			return nil, fmt.Errorf("failed to seed defaults: %w", err)
		}
	}

	app := &App{
		Config:   cfg,
		Store:    st,
		State:    container,
		Auth:     service.NewAuthService(container, cfg.Auth.HashIterations),
		Trainers: service.NewTrainerService(container),
		Clients:  service.NewClientService(container),
		Library:  service.NewExerciseService(container),
	}
	app.restoreLogin(ctx)
	return app, nil
}

// requireLogin returns the authenticated user or a friendly error.
func (a *App) requireLogin() error {
	if a.Auth.CurrentUser() == nil {
		return fmt.Errorf("not logged in (run `studio login <username> <password>` first)")
	}
	return nil
}
