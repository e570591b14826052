package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"qpaks/internal/flatpak"
)

const (
	defaultBinary        = "flatpak"
	defaultInstallRemote = "flathub"
	defaultLogLevel      = "info"
	envPrefix            = "QPAKS"
)

// Config aggregates everything the controller and front-ends can tune.
type Config struct {
	Flatpak          string               `yaml:"flatpak"`
	Terminal         string               `yaml:"terminal"`
	Installation     flatpak.Installation `yaml:"installation"`
	InstallRemote    string               `yaml:"install_remote"`
	Remotes          []flatpak.Remote     `yaml:"remotes"`
	ReservedPrefixes []string             `yaml:"reserved_prefixes"`
	EnsureRemotes    bool                 `yaml:"ensure_remotes"`
	LogLevel         string               `yaml:"log_level"`
	LogFile          string               `yaml:"log_file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Flatpak:          defaultBinary,
		Installation:     flatpak.InstallationUser,
		InstallRemote:    defaultInstallRemote,
		Remotes:          flatpak.DefaultRemotes(),
		ReservedPrefixes: append([]string(nil), flatpak.DefaultReservedPrefixes...),
		EnsureRemotes:    true,
		LogLevel:         defaultLogLevel,
		LogFile:          defaultLogFile(),
	}
}

// DefaultPath is ~/.config/qpaks/config.yaml (honouring XDG_CONFIG_HOME).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "qpaks", "config.yaml"), nil
}

// Load builds a Config from defaults, an optional YAML file and QPAKS_* environment overrides.
// An empty path means DefaultPath; a missing file at the default path is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}

	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return cfg, fmt.Errorf("load config %s: %w", path, err)
			}
		}
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects settings the flatpak commands cannot be built from.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Flatpak) == "" {
		return errors.New("flatpak binary must not be empty")
	}
	if !c.Installation.Valid() {
		return fmt.Errorf("installation must be %q or %q, got %q", flatpak.InstallationUser, flatpak.InstallationSystem, c.Installation)
	}
	if strings.TrimSpace(c.InstallRemote) == "" {
		return errors.New("install_remote must not be empty")
	}
	for i, r := range c.Remotes {
		if strings.TrimSpace(r.Name) == "" || strings.TrimSpace(r.URL) == "" {
			return fmt.Errorf("remotes[%d]: name and url are required", i)
		}
	}
	return nil
}

// Filter returns the result filter for the configured reserved prefixes.
func (c Config) Filter() flatpak.Filter {
	return flatpak.Filter{ReservedPrefixes: append([]string(nil), c.ReservedPrefixes...)}
}

// Commands returns the argv builder for the configured binary and installation.
func (c Config) Commands() flatpak.Commands {
	return flatpak.NewCommands(c.Flatpak, c.Installation)
}

// TerminalHost returns the emulator wrapper for interactive commands.
func (c Config) TerminalHost() flatpak.Terminal {
	return flatpak.Terminal{Emulator: c.Terminal}
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}
	return nil
}

type envOverrides struct {
	Flatpak          string   `envconfig:"FLATPAK"`
	Terminal         string   `envconfig:"TERMINAL"`
	Installation     string   `envconfig:"INSTALLATION"`
	InstallRemote    string   `envconfig:"INSTALL_REMOTE"`
	ReservedPrefixes []string `envconfig:"RESERVED_PREFIXES"`
	EnsureRemotes    string   `envconfig:"ENSURE_REMOTES"`
	LogLevel         string   `envconfig:"LOG_LEVEL"`
	LogFile          string   `envconfig:"LOG_FILE"`
}

func applyEnvOverrides(cfg *Config) error {
	var env envOverrides
	if err := envconfig.Process(envPrefix, &env); err != nil {
		return fmt.Errorf("read %s_* environment: %w", envPrefix, err)
	}

	if env.Flatpak != "" {
		cfg.Flatpak = env.Flatpak
	}
	if env.Terminal != "" {
		cfg.Terminal = env.Terminal
	}
	if env.Installation != "" {
		cfg.Installation = flatpak.Installation(strings.ToLower(env.Installation))
	}
	if env.InstallRemote != "" {
		cfg.InstallRemote = env.InstallRemote
	}
	if len(env.ReservedPrefixes) > 0 {
		cfg.ReservedPrefixes = env.ReservedPrefixes
	}
	if env.EnsureRemotes != "" {
		ensure, err := strconv.ParseBool(env.EnsureRemotes)
		if err != nil {
			return fmt.Errorf("parse %s_ENSURE_REMOTES: %w", envPrefix, err)
		}
		cfg.EnsureRemotes = ensure
	}
	if env.LogLevel != "" {
		cfg.LogLevel = env.LogLevel
	}
	if env.LogFile != "" {
		cfg.LogFile = env.LogFile
	}
	return nil
}

func defaultLogFile() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "qpaks", "qpaks.log")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "state", "qpaks", "qpaks.log")
}
