package app

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/toqueteos/webbrowser"

	"qpaks/internal/flatpak"
)

var (
	runOutput     = flatpak.Output
	startDetached = flatpak.Start
	openBrowser   = webbrowser.Open
	runAttached   = func(cmd *exec.Cmd) error {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		return cmd.Run()
	}
)

func resetExecDeps() {
	runOutput = flatpak.Output
	startDetached = flatpak.Start
	openBrowser = webbrowser.Open
	runAttached = func(cmd *exec.Cmd) error {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		return cmd.Run()
	}
}

func (a *App) output(ctx context.Context, argv []string) (string, error) {
	a.log.Debug("exec", "cmd", strings.Join(argv, " "))
	return runOutput(ctx, argv)
}

// command builds an interactive command, routed through the terminal emulator if one is configured.
func (a *App) command(ctx context.Context, argv []string) *exec.Cmd {
	argv = a.term.Wrap(argv)
	a.log.Debug("interactive", "cmd", strings.Join(argv, " "))
	return exec.CommandContext(ctx, argv[0], argv[1:]...)
}
