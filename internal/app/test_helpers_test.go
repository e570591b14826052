package app

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"qpaks/internal/config"
)

func stubExec(t *testing.T, output func(argv []string) (string, error)) *[][]string {
	t.Helper()
	resetExecDeps()
	calls := &[][]string{}
	runOutput = func(ctx context.Context, argv []string) (string, error) {
		*calls = append(*calls, append([]string(nil), argv...))
		if output == nil {
			return "", errors.New("output not stubbed")
		}
		return output(argv)
	}
	startDetached = func([]string) error { return errors.New("start not stubbed") }
	openBrowser = func(string) error { return errors.New("browser not stubbed") }
	runAttached = func(*exec.Cmd) error { return errors.New("attach not stubbed") }
	t.Cleanup(resetExecDeps)
	return calls
}

func newTestApp(mutate ...func(*config.Config)) *App {
	cfg := config.Default()
	for _, fn := range mutate {
		fn(&cfg)
	}
	return New(Options{Config: cfg})
}

func equalArgs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
