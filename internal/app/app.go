package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"qpaks/internal/config"
	"qpaks/internal/flatpak"
	"qpaks/internal/logging"
)

var (
	// ErrEmptyID is returned when an operation needs an application id and got none.
	ErrEmptyID = errors.New("application id must not be empty")
	// ErrReservedID is returned for runtime and platform ids that qpaks does not manage.
	ErrReservedID = errors.New("application id is a reserved runtime")
	// ErrEmptyQuery is returned by Search for a blank query.
	ErrEmptyQuery = errors.New("search query must not be empty")
)

// Options configures the top-level controller.
type Options struct {
	Config config.Config
	Logger *log.Logger
}

// App exposes high-level operations that the CLI/TUI can reuse.
type App struct {
	cfg    config.Config
	cmds   flatpak.Commands
	filter flatpak.Filter
	term   flatpak.Terminal
	log    *log.Logger
}

// New constructs the shared controller facade.
func New(opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &App{
		cfg:    opts.Config,
		cmds:   opts.Config.Commands(),
		filter: opts.Config.Filter(),
		term:   opts.Config.TerminalHost(),
		log:    logger,
	}
}

// Config returns the configuration the controller was built with.
func (a *App) Config() config.Config {
	return a.cfg
}

func (a *App) validateID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", ErrEmptyID
	}
	if !a.filter.Allows(id) {
		return "", fmt.Errorf("%w: %s", ErrReservedID, id)
	}
	return id, nil
}
