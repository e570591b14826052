package main

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"qpaks/internal/app"
	"qpaks/internal/config"
	"qpaks/internal/flatpak"
)

type stubController struct {
	searchFunc    func(ctx context.Context, query string) ([]flatpak.SearchResult, error)
	installedFunc func(ctx context.Context) ([]flatpak.InstalledApp, error)
	infoFunc      func(ctx context.Context, id string) (flatpak.Info, error)
	installFunc   func(ctx context.Context, id string) error
	uninstallFunc func(ctx context.Context, id string) error
	remotesFunc   func(ctx context.Context) ([]string, error)
	ensureFunc    func(ctx context.Context) (app.RemotesResult, error)
	checkFunc     func(ctx context.Context) (string, error)
}

func (s *stubController) Search(ctx context.Context, query string) ([]flatpak.SearchResult, error) {
	if s.searchFunc != nil {
		return s.searchFunc(ctx, query)
	}
	return nil, errors.New("search not implemented")
}

func (s *stubController) Installed(ctx context.Context) ([]flatpak.InstalledApp, error) {
	if s.installedFunc != nil {
		return s.installedFunc(ctx)
	}
	return nil, errors.New("installed not implemented")
}

func (s *stubController) Info(ctx context.Context, id string) (flatpak.Info, error) {
	if s.infoFunc != nil {
		return s.infoFunc(ctx, id)
	}
	return flatpak.Info{}, errors.New("info not implemented")
}

func (s *stubController) Install(ctx context.Context, id string) error {
	if s.installFunc != nil {
		return s.installFunc(ctx, id)
	}
	return errors.New("install not implemented")
}

func (s *stubController) Uninstall(ctx context.Context, id string) error {
	if s.uninstallFunc != nil {
		return s.uninstallFunc(ctx, id)
	}
	return errors.New("uninstall not implemented")
}

func (s *stubController) Update(ctx context.Context) error {
	return nil
}

func (s *stubController) InstallCmd(ctx context.Context, id string) (*exec.Cmd, error) {
	panic("InstallCmd not implemented")
}

func (s *stubController) UninstallCmd(ctx context.Context, id string) (*exec.Cmd, error) {
	panic("UninstallCmd not implemented")
}

func (s *stubController) UpdateCmd(ctx context.Context) *exec.Cmd {
	panic("UpdateCmd not implemented")
}

func (s *stubController) Run(ctx context.Context, id string) error {
	return nil
}

func (s *stubController) DetailsURL(id string) string {
	return flatpak.DetailsURL(id)
}

func (s *stubController) OpenDetails(id string) error {
	panic("OpenDetails not implemented")
}

func (s *stubController) Remotes(ctx context.Context) ([]string, error) {
	if s.remotesFunc != nil {
		return s.remotesFunc(ctx)
	}
	return nil, errors.New("remotes not implemented")
}

func (s *stubController) EnsureRemotes(ctx context.Context) (app.RemotesResult, error) {
	if s.ensureFunc != nil {
		return s.ensureFunc(ctx)
	}
	return app.RemotesResult{}, errors.New("ensure not implemented")
}

func (s *stubController) Check(ctx context.Context) (string, error) {
	if s.checkFunc != nil {
		return s.checkFunc(ctx)
	}
	return "", errors.New("check not implemented")
}

// withController swaps the factory and returns the config it was last called with.
func withController(t *testing.T, stub controllerAPI) *config.Config {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir+"/config")
	t.Setenv("XDG_STATE_HOME", dir+"/state")

	got := &config.Config{}
	origFactory := controllerFactory
	controllerFactory = func(cfg config.Config, _ *log.Logger) controllerAPI {
		*got = cfg
		return stub
	}
	t.Cleanup(func() {
		controllerFactory = origFactory
	})
	return got
}

func withOutput(t *testing.T, cmd *cobra.Command) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	origOut := cmd.OutOrStdout()
	origErr := cmd.ErrOrStderr()
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetContext(context.Background())
	t.Cleanup(func() {
		cmd.SetOut(origOut)
		cmd.SetErr(origErr)
	})
	return buf
}
