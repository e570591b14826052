package main

import (
	"context"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"qpaks/internal/app"
	"qpaks/internal/config"
	"qpaks/internal/flatpak"
	"qpaks/internal/logging"
	"qpaks/internal/tui"
)

type controllerAPI interface {
	tui.Controller
	Info(ctx context.Context, id string) (flatpak.Info, error)
	Install(ctx context.Context, id string) error
	Uninstall(ctx context.Context, id string) error
	Update(ctx context.Context) error
	DetailsURL(id string) string
	Remotes(ctx context.Context) ([]string, error)
	Check(ctx context.Context) (string, error)
}

var controllerFactory = func(cfg config.Config, logger *log.Logger) controllerAPI {
	return app.New(app.Options{Config: cfg, Logger: logger})
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	return cfg, nil
}

// controller builds the facade for one CLI invocation, logging to stderr.
func controller(cmd *cobra.Command, mutate ...func(*config.Config)) (controllerAPI, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	for _, fn := range mutate {
		fn(&cfg)
	}
	logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return controllerFactory(cfg, logger), nil
}

// withSpinner shows progress on stderr while fn runs.
func withSpinner(suffix string, fn func() error) error {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + suffix
	s.Start()
	defer s.Stop()
	return fn()
}
