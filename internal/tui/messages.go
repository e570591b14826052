package tui

import (
	"qpaks/internal/app"
	"qpaks/internal/flatpak"
	"qpaks/internal/task"
)

type installedLoadedMsg struct {
	task task.ID
	apps []flatpak.InstalledApp
	err  error
}

type searchResultsMsg struct {
	task    task.ID
	query   string
	results []flatpak.SearchResult
	err     error
}

// execFinishedMsg is sent when a command handed the terminal back.
type execFinishedMsg struct {
	action string
	id     string
	err    error
}

type runFinishedMsg struct {
	id  string
	err error
}

type openFinishedMsg struct {
	id  string
	err error
}

type remotesEnsuredMsg struct {
	result app.RemotesResult
	err    error
}
