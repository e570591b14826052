package app

import (
	"context"
	"fmt"
	"sort"

	"qpaks/internal/flatpak"
)

// Installed lists installed applications, querying info for each one in turn.
// An app whose info cannot be read is still returned, with an empty size.
func (a *App) Installed(ctx context.Context) ([]flatpak.InstalledApp, error) {
	out, err := a.output(ctx, a.cmds.List())
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		a.log.Warn("error retrieving installed apps", "err", err)
		return []flatpak.InstalledApp{}, nil
	}

	apps := a.filter.ParseList(out)
	for i := range apps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		info, err := a.readInfo(ctx, apps[i].ID)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			a.log.Warn("error reading app info", "id", apps[i].ID, "err", err)
			continue
		}
		apps[i].InstalledSize = info.Installed
		apps[i].Version = info.Fields["Version"]
		apps[i].Origin = info.Fields["Origin"]
	}

	sort.SliceStable(apps, func(i, j int) bool {
		if apps[i].Name != apps[j].Name {
			return apps[i].Name < apps[j].Name
		}
		return apps[i].ID < apps[j].ID
	})
	return apps, nil
}

// Info returns the parsed `flatpak info` record of an installed application.
func (a *App) Info(ctx context.Context, id string) (flatpak.Info, error) {
	id, err := a.validateID(id)
	if err != nil {
		return flatpak.Info{}, err
	}
	info, err := a.readInfo(ctx, id)
	if err != nil {
		return flatpak.Info{}, fmt.Errorf("read info for %s: %w", id, err)
	}
	return info, nil
}

func (a *App) readInfo(ctx context.Context, id string) (flatpak.Info, error) {
	out, err := a.output(ctx, a.cmds.Info(id))
	if err != nil {
		return flatpak.Info{}, err
	}
	info := flatpak.ParseInfo(out)
	if info.ID == "" {
		info.ID = id
	}
	return info, nil
}
