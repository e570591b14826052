package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"qpaks/internal/task"
)

// action is a user intent produced by a key press.
type action interface{ isAction() }

type refreshAction struct{}

type searchAction struct{ query string }

type cancelSearchAction struct{}

type installAction struct{ id string }

type uninstallAction struct{ id string }

type updateAction struct{}

type runAction struct{ id string }

type openAction struct{ id string }

type ensureRemotesAction struct{}

func (refreshAction) isAction()       {}
func (searchAction) isAction()        {}
func (cancelSearchAction) isAction()  {}
func (installAction) isAction()       {}
func (uninstallAction) isAction()     {}
func (updateAction) isAction()        {}
func (runAction) isAction()           {}
func (openAction) isAction()          {}
func (ensureRemotesAction) isAction() {}

// dispatch turns an action into the command that performs it. It is the only
// place the controller is called from.
func (m *Model) dispatch(a action) tea.Cmd {
	switch a := a.(type) {
	case refreshAction:
		ctx, h := m.refreshes.Start(context.Background())
		m.refreshTask = h.ID()
		m.loadingApps = true
		return loadInstalledCmd(ctx, m.ctrl, h.ID())

	case searchAction:
		query := strings.TrimSpace(a.query)
		if query == "" {
			m.setStatus("Type something to search for", true)
			return nil
		}
		ctx, h := m.searches.Start(context.Background())
		m.searchTask = h.ID()
		m.searching = true
		m.searchErr = nil
		m.query = query
		m.clearStatus()
		return searchCmd(ctx, m.ctrl, h.ID(), query)

	case cancelSearchAction:
		if m.searching {
			m.searches.Cancel()
			m.searching = false
			m.setStatus("Search cancelled", false)
		}
		return nil

	case installAction:
		cmd, err := m.ctrl.InstallCmd(context.Background(), a.id)
		if err != nil {
			m.setStatus(err.Error(), true)
			return nil
		}
		return tea.ExecProcess(cmd, execDone("install", a.id))

	case uninstallAction:
		cmd, err := m.ctrl.UninstallCmd(context.Background(), a.id)
		if err != nil {
			m.setStatus(err.Error(), true)
			return nil
		}
		return tea.ExecProcess(cmd, execDone("uninstall", a.id))

	case updateAction:
		return tea.ExecProcess(m.ctrl.UpdateCmd(context.Background()), execDone("update", ""))

	case runAction:
		ctrl := m.ctrl
		return func() tea.Msg {
			return runFinishedMsg{id: a.id, err: ctrl.Run(context.Background(), a.id)}
		}

	case openAction:
		ctrl := m.ctrl
		return func() tea.Msg {
			return openFinishedMsg{id: a.id, err: ctrl.OpenDetails(a.id)}
		}

	case ensureRemotesAction:
		ctrl := m.ctrl
		return func() tea.Msg {
			res, err := ctrl.EnsureRemotes(context.Background())
			return remotesEnsuredMsg{result: res, err: err}
		}
	}
	return nil
}

func execDone(action, id string) tea.ExecCallback {
	return func(err error) tea.Msg {
		return execFinishedMsg{action: action, id: id, err: err}
	}
}

func loadInstalledCmd(ctx context.Context, ctrl Controller, id task.ID) tea.Cmd {
	return func() tea.Msg {
		apps, err := ctrl.Installed(ctx)
		return installedLoadedMsg{task: id, apps: apps, err: err}
	}
}

func searchCmd(ctx context.Context, ctrl Controller, id task.ID, query string) tea.Cmd {
	return func() tea.Msg {
		results, err := ctrl.Search(ctx, query)
		return searchResultsMsg{task: id, query: query, results: results, err: err}
	}
}
