package app

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"qpaks/internal/flatpak"
)

// InstallCmd returns the interactive install command for id from the configured remote.
func (a *App) InstallCmd(ctx context.Context, id string) (*exec.Cmd, error) {
	id, err := a.validateID(id)
	if err != nil {
		return nil, err
	}
	return a.command(ctx, a.cmds.Install(a.cfg.InstallRemote, id)), nil
}

// UninstallCmd returns the interactive uninstall command for id.
func (a *App) UninstallCmd(ctx context.Context, id string) (*exec.Cmd, error) {
	id, err := a.validateID(id)
	if err != nil {
		return nil, err
	}
	return a.command(ctx, a.cmds.Uninstall(id)), nil
}

// UpdateCmd returns the interactive command updating every installed app.
func (a *App) UpdateCmd(ctx context.Context) *exec.Cmd {
	return a.command(ctx, a.cmds.Update())
}

// Install runs the install command attached to the current terminal.
func (a *App) Install(ctx context.Context, id string) error {
	cmd, err := a.InstallCmd(ctx, id)
	if err != nil {
		return err
	}
	a.log.Info("installing", "id", id, "remote", a.cfg.InstallRemote)
	return a.attach(cmd, "install")
}

// Uninstall runs the uninstall command attached to the current terminal.
func (a *App) Uninstall(ctx context.Context, id string) error {
	cmd, err := a.UninstallCmd(ctx, id)
	if err != nil {
		return err
	}
	a.log.Info("deleting", "id", id)
	return a.attach(cmd, "uninstall")
}

// Update runs the bulk update attached to the current terminal.
func (a *App) Update(ctx context.Context) error {
	a.log.Info("updating installed apps")
	return a.attach(a.UpdateCmd(ctx), "update")
}

// Run launches an installed application and returns without waiting for it.
func (a *App) Run(ctx context.Context, id string) error {
	id, err := a.validateID(id)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	a.log.Info("running", "id", id)
	if err := startDetached(a.cmds.Run(id)); err != nil {
		return fmt.Errorf("run %s: %w", id, err)
	}
	return nil
}

// DetailsURL returns the Flathub page for id.
func (a *App) DetailsURL(id string) string {
	return flatpak.DetailsURL(strings.TrimSpace(id))
}

// OpenDetails opens the Flathub page for id in the default browser.
func (a *App) OpenDetails(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrEmptyID
	}
	url := a.DetailsURL(id)
	a.log.Info("opening details", "url", url)
	if err := openBrowser(url); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	return nil
}

func (a *App) attach(cmd *exec.Cmd, action string) error {
	if err := runAttached(cmd); err != nil {
		a.log.Warn("interactive command failed", "action", action, "err", err)
		return fmt.Errorf("%s: %w", action, err)
	}
	return nil
}
