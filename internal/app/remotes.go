package app

import (
	"context"
	"fmt"
	"strings"

	"qpaks/internal/flatpak"
)

// Remote event kinds reported by EnsureRemotes.
const (
	RemoteExists     = "exists"
	RemoteAdded      = "added"
	RemoteAddFailure = "add_failure"
)

// RemoteEvent describes what happened to one configured remote.
type RemoteEvent struct {
	Kind   string
	Remote flatpak.Remote
	Err    error
}

// RemotesResult aggregates the EnsureRemotes outcome.
type RemotesResult struct {
	Events []RemoteEvent
	Added  int
	Failed int
}

// Remotes lists the names of the remotes configured in flatpak.
func (a *App) Remotes(ctx context.Context) ([]string, error) {
	out, err := a.output(ctx, a.cmds.Remotes())
	if err != nil {
		return nil, fmt.Errorf("list remotes: %w", err)
	}
	return flatpak.ParseRemotes(out), nil
}

// EnsureRemotes adds every configured remote that flatpak does not know yet.
func (a *App) EnsureRemotes(ctx context.Context) (RemotesResult, error) {
	var result RemotesResult

	existing := make(map[string]bool)
	names, err := a.Remotes(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, ctxErr
		}
		a.log.Warn("failed to retrieve existing remotes", "err", err)
	}
	for _, name := range names {
		existing[name] = true
	}

	for _, remote := range a.cfg.Remotes {
		if existing[remote.Name] {
			a.log.Debug("remote already exists, skipping", "remote", remote.Name)
			result.Events = append(result.Events, RemoteEvent{Kind: RemoteExists, Remote: remote})
			continue
		}
		if _, err := a.output(ctx, a.cmds.RemoteAdd(remote)); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return result, ctxErr
			}
			a.log.Warn("failed to add remote", "remote", remote.Name, "err", err)
			result.Events = append(result.Events, RemoteEvent{
				Kind:   RemoteAddFailure,
				Remote: remote,
				Err:    fmt.Errorf("add remote %s: %w", remote.Name, err),
			})
			result.Failed++
			continue
		}
		a.log.Info("remote added", "remote", remote.Name)
		result.Events = append(result.Events, RemoteEvent{Kind: RemoteAdded, Remote: remote})
		result.Added++
	}

	if result.Failed > 0 {
		return result, fmt.Errorf("failed to add %d of %d remotes (%s)", result.Failed, len(a.cfg.Remotes), failedRemoteNames(result.Events))
	}
	return result, nil
}

// Check verifies the flatpak binary runs and returns its version string.
func (a *App) Check(ctx context.Context) (string, error) {
	out, err := a.output(ctx, a.cmds.Version())
	if err != nil {
		return "", fmt.Errorf("flatpak is not available: %w", err)
	}
	return strings.TrimSpace(out), nil
}

func failedRemoteNames(events []RemoteEvent) string {
	names := make([]string, 0, len(events))
	for _, ev := range events {
		if ev.Kind == RemoteAddFailure {
			names = append(names, ev.Remote.Name)
		}
	}
	return strings.Join(names, ", ")
}
