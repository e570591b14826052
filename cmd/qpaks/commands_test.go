package main

import (
	"context"
	"errors"
	"strings"
	"testing"

	"qpaks/internal/app"
	"qpaks/internal/flatpak"
	"qpaks/internal/tui"
)

func TestSearchFiltersByLabel(t *testing.T) {
	withController(t, &stubController{
		searchFunc: func(ctx context.Context, query string) ([]flatpak.SearchResult, error) {
			if query != "image editor" {
				t.Fatalf("unexpected query %q", query)
			}
			return []flatpak.SearchResult{
				{ID: "org.gimp.GIMP", Name: "GIMP", Label: flatpak.LabelVerifiedFOSS},
				{ID: "com.example.Free", Name: "FreeEdit", Label: flatpak.LabelFOSS},
			}, nil
		},
	})
	buf := withOutput(t, cmdSearch)

	oldLabel := searchLabel
	searchLabel = "foss"
	t.Cleanup(func() { searchLabel = oldLabel })

	if err := cmdSearch.RunE(cmdSearch, []string{"image", "editor"}); err != nil {
		t.Fatalf("RunE error: %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, "FreeEdit") || strings.Contains(got, "GIMP") {
		t.Fatalf("unexpected output %q", got)
	}
	if !strings.Contains(got, "com.example.Free ") || strings.Contains(got, "…") {
		t.Fatalf("expected untruncated cells, got %q", got)
	}
}

func TestSearchTableShowsFullCells(t *testing.T) {
	withController(t, &stubController{
		searchFunc: func(ctx context.Context, query string) ([]flatpak.SearchResult, error) {
			return []flatpak.SearchResult{{ID: "org.mozilla.firefox", Name: "Firefox", Label: flatpak.LabelVerified}}, nil
		},
	})
	buf := withOutput(t, cmdSearch)

	if err := cmdSearch.RunE(cmdSearch, []string{"firefox"}); err != nil {
		t.Fatalf("RunE error: %v", err)
	}
	got := buf.String()
	for _, want := range []string{"Firefox", "org.mozilla.firefox", "Verified"} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q: %q", want, got)
		}
	}
	if strings.Contains(got, "…") {
		t.Fatalf("cells truncated: %q", got)
	}
}

func TestSearchNotFound(t *testing.T) {
	withController(t, &stubController{
		searchFunc: func(ctx context.Context, query string) ([]flatpak.SearchResult, error) {
			return []flatpak.SearchResult{}, nil
		},
	})
	buf := withOutput(t, cmdSearch)

	if err := cmdSearch.RunE(cmdSearch, []string{"zzz"}); err != nil {
		t.Fatalf("RunE error: %v", err)
	}
	if got := buf.String(); got != "App not found\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestSearchRejectsUnknownLabel(t *testing.T) {
	withController(t, &stubController{})
	withOutput(t, cmdSearch)

	oldLabel := searchLabel
	searchLabel = "shiny"
	t.Cleanup(func() { searchLabel = oldLabel })

	if err := cmdSearch.RunE(cmdSearch, []string{"gimp"}); err == nil {
		t.Fatalf("expected error for unknown label")
	}
}

func TestListEmpty(t *testing.T) {
	withController(t, &stubController{
		installedFunc: func(ctx context.Context) ([]flatpak.InstalledApp, error) {
			return nil, nil
		},
	})
	buf := withOutput(t, cmdList)

	if err := cmdList.RunE(cmdList, nil); err != nil {
		t.Fatalf("RunE error: %v", err)
	}
	if got := buf.String(); got != "No Flatpak apps are installed yet\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestListShowsApps(t *testing.T) {
	withController(t, &stubController{
		installedFunc: func(ctx context.Context) ([]flatpak.InstalledApp, error) {
			return []flatpak.InstalledApp{{ID: "org.gimp.GIMP", Name: "GIMP", InstalledSize: "400.1 MB"}}, nil
		},
	})
	buf := withOutput(t, cmdList)

	if err := cmdList.RunE(cmdList, nil); err != nil {
		t.Fatalf("RunE error: %v", err)
	}
	got := buf.String()
	for _, want := range []string{"GIMP", "org.gimp.GIMP", "400.1 MB"} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q: %q", want, got)
		}
	}
	if strings.Contains(got, "…") {
		t.Fatalf("cells truncated: %q", got)
	}
}

func TestInfoPrintsSortedFields(t *testing.T) {
	withController(t, &stubController{
		infoFunc: func(ctx context.Context, id string) (flatpak.Info, error) {
			return flatpak.Info{
				Name:    "GIMP",
				Summary: "GNU Image Manipulation Program",
				Fields:  map[string]string{"Version": "2.10.38", "ID": id},
			}, nil
		},
	})
	buf := withOutput(t, cmdInfo)

	if err := cmdInfo.RunE(cmdInfo, []string{"org.gimp.GIMP"}); err != nil {
		t.Fatalf("RunE error: %v", err)
	}
	want := "GIMP - GNU Image Manipulation Program\n\nID: org.gimp.GIMP\nVersion: 2.10.38\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestInstallUsesRemoteFlag(t *testing.T) {
	var installed string
	cfg := withController(t, &stubController{
		installFunc: func(ctx context.Context, id string) error {
			installed = id
			return nil
		},
	})
	buf := withOutput(t, cmdInstall)

	oldRemote := installRemote
	installRemote = "flathub-verified"
	t.Cleanup(func() { installRemote = oldRemote })

	if err := cmdInstall.RunE(cmdInstall, []string{"org.gimp.GIMP"}); err != nil {
		t.Fatalf("RunE error: %v", err)
	}
	if installed != "org.gimp.GIMP" {
		t.Fatalf("unexpected install id %q", installed)
	}
	if cfg.InstallRemote != "flathub-verified" {
		t.Fatalf("expected remote override, got %q", cfg.InstallRemote)
	}
	if got := buf.String(); got != "Installed org.gimp.GIMP\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestUninstallError(t *testing.T) {
	withController(t, &stubController{
		uninstallFunc: func(ctx context.Context, id string) error {
			return app.ErrReservedID
		},
	})
	withOutput(t, cmdUninstall)

	err := cmdUninstall.RunE(cmdUninstall, []string{"org.kde.Platform"})
	if !errors.Is(err, app.ErrReservedID) {
		t.Fatalf("expected reserved id error, got %v", err)
	}
}

func TestOpenPrint(t *testing.T) {
	withController(t, &stubController{})
	buf := withOutput(t, cmdOpen)

	oldPrint := openPrintOnly
	openPrintOnly = true
	t.Cleanup(func() { openPrintOnly = oldPrint })

	if err := cmdOpen.RunE(cmdOpen, []string{"org.gimp.GIMP"}); err != nil {
		t.Fatalf("RunE error: %v", err)
	}
	if got := buf.String(); got != "https://flathub.org/apps/details/org.gimp.GIMP\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRemotesEnsureReportsEvents(t *testing.T) {
	failure := errors.New("failed to add 1 of 2 remotes (flathub-verified)")
	withController(t, &stubController{
		ensureFunc: func(ctx context.Context) (app.RemotesResult, error) {
			return app.RemotesResult{
				Events: []app.RemoteEvent{
					{Kind: app.RemoteExists, Remote: flatpak.Remote{Name: "flathub"}},
					{Kind: app.RemoteAddFailure, Remote: flatpak.Remote{Name: "flathub-verified"}, Err: errors.New("exit status 1")},
				},
				Failed: 1,
			}, failure
		},
	})
	buf := withOutput(t, cmdRemotes)

	oldEnsure := remotesEnsure
	remotesEnsure = true
	t.Cleanup(func() { remotesEnsure = oldEnsure })

	err := cmdRemotes.RunE(cmdRemotes, nil)
	if !errors.Is(err, failure) {
		t.Fatalf("expected failure, got %v", err)
	}
	want := "flathub: exists\nflathub-verified: add_failure (exit status 1)\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRemotesList(t *testing.T) {
	withController(t, &stubController{
		remotesFunc: func(ctx context.Context) ([]string, error) {
			return []string{"flathub", "flathub-verified"}, nil
		},
	})
	buf := withOutput(t, cmdRemotes)

	if err := cmdRemotes.RunE(cmdRemotes, nil); err != nil {
		t.Fatalf("RunE error: %v", err)
	}
	if got := buf.String(); got != "flathub\nflathub-verified\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestCheck(t *testing.T) {
	withController(t, &stubController{
		checkFunc: func(ctx context.Context) (string, error) {
			return "Flatpak 1.14.4", nil
		},
	})
	buf := withOutput(t, cmdCheck)

	if err := cmdCheck.RunE(cmdCheck, nil); err != nil {
		t.Fatalf("RunE error: %v", err)
	}
	if got := buf.String(); got != "Flatpak 1.14.4\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestTUIUsesConfig(t *testing.T) {
	withController(t, &stubController{})
	withOutput(t, cmdTUI)

	var gotOpts tui.Options
	origRun := runTUI
	runTUI = func(ctrl tui.Controller, opts tui.Options) error {
		gotOpts = opts
		return nil
	}
	t.Cleanup(func() { runTUI = origRun })

	if err := cmdTUI.RunE(cmdTUI, nil); err != nil {
		t.Fatalf("RunE error: %v", err)
	}
	if !gotOpts.EnsureRemotes || gotOpts.Scope != "user" {
		t.Fatalf("unexpected options %+v", gotOpts)
	}
}
