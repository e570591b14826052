package tui

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"qpaks/internal/app"
	"qpaks/internal/flatpak"
	"qpaks/internal/task"
)

// Controller defines the subset of app.App behaviour the TUI needs.
type Controller interface {
	Search(ctx context.Context, query string) ([]flatpak.SearchResult, error)
	Installed(ctx context.Context) ([]flatpak.InstalledApp, error)
	InstallCmd(ctx context.Context, id string) (*exec.Cmd, error)
	UninstallCmd(ctx context.Context, id string) (*exec.Cmd, error)
	UpdateCmd(ctx context.Context) *exec.Cmd
	Run(ctx context.Context, id string) error
	OpenDetails(id string) error
	EnsureRemotes(ctx context.Context) (app.RemotesResult, error)
}

// Options tune the TUI at startup.
type Options struct {
	// EnsureRemotes adds the configured remotes before anything else.
	EnsureRemotes bool
	// Scope is shown in the header, e.g. "user".
	Scope string
}

type screen int

const (
	screenInstalled screen = iota
	screenSearch
)

// Model represents the Bubble Tea state.
type Model struct {
	ctrl   Controller
	opts   Options
	keys   keyMap
	screen screen

	installed   list.Model
	apps        []flatpak.InstalledApp
	loadingApps bool
	appsLoaded  bool
	appsErr     error
	refreshes   *task.Latest
	refreshTask task.ID

	results    list.Model
	found      []flatpak.SearchResult
	label      flatpak.Label
	query      string
	searching  bool
	searched   bool
	searchErr  error
	searches   *task.Latest
	searchTask task.ID

	input   textinput.Model
	spinner spinner.Model
	confirm *confirmView

	statusMsg string
	statusErr bool

	width  int
	height int
}

// New constructs a TUI model with default styles.
func New(ctrl Controller, opts Options) *Model {
	if opts.Scope == "" {
		opts.Scope = string(flatpak.InstallationUser)
	}

	input := textinput.New()
	input.Placeholder = "Search Flathub"
	input.Prompt = "/ "
	input.CharLimit = 128

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &Model{
		ctrl:        ctrl,
		opts:        opts,
		keys:        defaultKeyMap(),
		installed:   newList("Installed"),
		results:     newList("Results"),
		searches:    &task.Latest{},
		refreshes:   &task.Latest{},
		input:       input,
		spinner:     sp,
		loadingApps: true,
		width:       80,
		height:      24,
	}
}

func newList(title string) list.Model {
	delegate := list.NewDefaultDelegate()
	lst := list.New([]list.Item{}, delegate, 80, 16)
	lst.Title = title
	lst.SetShowTitle(false)
	lst.SetShowHelp(false)
	lst.SetShowStatusBar(false)
	lst.SetFilteringEnabled(false)
	lst.DisableQuitKeybindings()
	return lst
}

// Run spins up the Bubble Tea program with sensible defaults.
func Run(ctrl Controller, opts Options) error {
	m := New(ctrl, opts)
	prog := tea.NewProgram(m, tea.WithAltScreen())
	_, err := prog.Run()
	m.searches.Cancel()
	m.refreshes.Cancel()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, m.dispatch(refreshAction{})}
	if m.opts.EnsureRemotes {
		cmds = append(cmds, m.dispatch(ensureRemotesAction{}))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case installedLoadedMsg:
		if !m.refreshes.Finish(msg.task) {
			return m, nil
		}
		m.loadingApps = false
		m.appsLoaded = true
		if msg.err != nil {
			m.appsErr = msg.err
			return m, nil
		}
		m.appsErr = nil
		m.apps = msg.apps
		return m, m.installed.SetItems(appItems(msg.apps))

	case searchResultsMsg:
		return m, m.applySearch(msg)

	case execFinishedMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("%s failed: %v", describe(msg.action, msg.id), msg.err), true)
		} else {
			m.setStatus(describe(msg.action, msg.id)+" finished", false)
		}
		return m, m.dispatch(refreshAction{})

	case runFinishedMsg:
		if msg.err != nil {
			m.setStatus(msg.err.Error(), true)
		} else {
			m.setStatus("Launched "+msg.id, false)
		}
		return m, nil

	case openFinishedMsg:
		if msg.err != nil {
			m.setStatus(msg.err.Error(), true)
		} else {
			m.setStatus("Opened Flathub page for "+msg.id, false)
		}
		return m, nil

	case remotesEnsuredMsg:
		switch {
		case msg.err != nil:
			m.setStatus(msg.err.Error(), true)
		case msg.result.Added > 0:
			m.setStatus(fmt.Sprintf("Added %d Flathub remotes", msg.result.Added), false)
		}
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	if m.screen == screenSearch && m.input.Focused() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) applySearch(msg searchResultsMsg) tea.Cmd {
	if !m.searches.Finish(msg.task) {
		return nil
	}
	m.searching = false
	if msg.err != nil {
		if errors.Is(msg.err, context.Canceled) {
			return nil
		}
		m.searchErr = msg.err
		return nil
	}
	m.searchErr = nil
	m.searched = true
	m.query = msg.query
	m.found = msg.results
	return m.refreshResults()
}

func (m *Model) refreshResults() tea.Cmd {
	visible := flatpak.FilterByLabel(m.found, m.label)
	return m.results.SetItems(resultItems(visible))
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.searches.Cancel()
		m.refreshes.Cancel()
		return tea.Quit
	}
	if m.confirm != nil {
		return m.handleConfirmKey(msg)
	}
	if m.screen == screenSearch {
		return m.handleSearchKey(msg)
	}
	return m.handleInstalledKey(msg)
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		id := m.confirm.ID
		m.confirm = nil
		return m.dispatch(uninstallAction{id: id})
	case key.Matches(msg, m.keys.Cancel):
		m.confirm = nil
	}
	return nil
}

func (m *Model) handleInstalledKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Search):
		return m.openSearch()
	case key.Matches(msg, m.keys.Refresh):
		return m.dispatch(refreshAction{})
	case key.Matches(msg, m.keys.Update):
		return m.dispatch(updateAction{})
	case key.Matches(msg, m.keys.Run):
		if a, ok := m.selectedApp(); ok {
			return m.dispatch(runAction{id: a.ID})
		}
		return nil
	case key.Matches(msg, m.keys.Delete):
		if a, ok := m.selectedApp(); ok {
			m.confirm = &confirmView{ID: a.ID, Name: a.Name}
		}
		return nil
	}

	var cmd tea.Cmd
	m.installed, cmd = m.installed.Update(msg)
	return cmd
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	if m.input.Focused() {
		switch {
		case key.Matches(msg, m.keys.Back):
			return m.closeSearch()
		case key.Matches(msg, m.keys.Filter):
			m.cycleLabel()
			return m.refreshResults()
		case key.Matches(msg, m.keys.Submit):
			m.input.Blur()
			return m.dispatch(searchAction{query: m.input.Value()})
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		if m.searching {
			return m.dispatch(cancelSearchAction{})
		}
		return m.closeSearch()
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Filter):
		m.cycleLabel()
		return m.refreshResults()
	case key.Matches(msg, m.keys.Search):
		return m.input.Focus()
	case key.Matches(msg, m.keys.Install):
		if r, ok := m.selectedResult(); ok {
			return m.dispatch(installAction{id: r.ID})
		}
		return nil
	case key.Matches(msg, m.keys.Open):
		if r, ok := m.selectedResult(); ok {
			return m.dispatch(openAction{id: r.ID})
		}
		return nil
	}

	var cmd tea.Cmd
	m.results, cmd = m.results.Update(msg)
	return cmd
}

func (m *Model) openSearch() tea.Cmd {
	m.screen = screenSearch
	m.clearStatus()
	return m.input.Focus()
}

func (m *Model) closeSearch() tea.Cmd {
	m.dispatch(cancelSearchAction{})
	m.input.Blur()
	m.screen = screenInstalled
	return nil
}

// cycleLabel walks none, FOSS, verified, verified & FOSS.
func (m *Model) cycleLabel() {
	m.label = (m.label + 1) % (flatpak.LabelVerifiedFOSS + 1)
}

func (m *Model) selectedApp() (flatpak.InstalledApp, bool) {
	item, ok := m.installed.SelectedItem().(appItem)
	if !ok {
		return flatpak.InstalledApp{}, false
	}
	return item.app, true
}

func (m *Model) selectedResult() (flatpak.SearchResult, bool) {
	item, ok := m.results.SelectedItem().(resultItem)
	if !ok {
		return flatpak.SearchResult{}, false
	}
	return item.result, true
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.statusMsg = msg
	m.statusErr = isErr
}

func (m *Model) clearStatus() {
	m.statusMsg = ""
	m.statusErr = false
}

func (m *Model) resize() {
	h := m.height - 9
	if h < 3 {
		h = 3
	}
	m.installed.SetSize(m.width, h)
	m.results.SetSize(m.width, h-2)
	m.input.Width = m.width - 4
}

func (m *Model) installedView() installedView {
	return installedView{
		Loading: m.loadingApps,
		Loaded:  m.appsLoaded,
		Err:     m.appsErr,
		Count:   len(m.apps),
		List:    m.installed.View(),
		Spinner: m.spinner.View(),
	}
}

func (m *Model) searchView() searchView {
	return searchView{
		Input:     m.input.View(),
		Query:     m.query,
		Filter:    m.label,
		Searching: m.searching,
		Searched:  m.searched,
		Err:       m.searchErr,
		Total:     len(m.found),
		Visible:   len(m.results.Items()),
		List:      m.results.View(),
		Spinner:   m.spinner.View(),
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(renderHeader(m.opts.Scope, m.screen == screenSearch))

	var help string
	if m.screen == screenSearch {
		b.WriteString(renderSearch(m.searchView()))
		if m.input.Focused() {
			help = helpLine(m.keys.Submit, m.keys.Filter, m.keys.Back)
		} else {
			help = helpLine(m.keys.Up, m.keys.Down, m.keys.Install, m.keys.Open, m.keys.Filter, m.keys.Search, m.keys.Back)
		}
	} else {
		b.WriteString(renderInstalled(m.installedView()))
		help = helpLine(m.keys.Up, m.keys.Down, m.keys.Run, m.keys.Delete, m.keys.Update, m.keys.Refresh, m.keys.Search, m.keys.Quit)
	}

	if m.statusMsg != "" {
		b.WriteString("\n")
		if m.statusErr {
			b.WriteString(errorStyle.Render(m.statusMsg))
		} else {
			b.WriteString(successStyle.Render(m.statusMsg))
		}
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(help))

	if m.confirm != nil {
		return renderWithModal(b.String(), "Confirm", renderConfirm(*m.confirm))
	}
	return b.String()
}

func describe(action, id string) string {
	if id == "" {
		return strings.ToUpper(action[:1]) + action[1:]
	}
	return strings.ToUpper(action[:1]) + action[1:] + " " + id
}

// appItem adapts flatpak.InstalledApp to the bubbles list item interface.
type appItem struct {
	app flatpak.InstalledApp
}

func (i appItem) Title() string { return i.app.Name }

func (i appItem) Description() string {
	parts := []string{i.app.ID}
	if i.app.Version != "" {
		parts = append(parts, i.app.Version)
	}
	if i.app.InstalledSize != "" {
		parts = append(parts, i.app.InstalledSize)
	}
	return strings.Join(parts, " · ")
}

func (i appItem) FilterValue() string { return i.app.Name + " " + i.app.ID }

func appItems(apps []flatpak.InstalledApp) []list.Item {
	items := make([]list.Item, 0, len(apps))
	for _, a := range apps {
		items = append(items, appItem{app: a})
	}
	return items
}

// resultItem adapts flatpak.SearchResult to the bubbles list item interface.
type resultItem struct {
	result flatpak.SearchResult
}

func (i resultItem) Title() string {
	if badge := labelBadge(i.result.Label); badge != "" {
		return i.result.Name + " " + badge
	}
	return i.result.Name
}

func (i resultItem) Description() string { return i.result.ID }

func (i resultItem) FilterValue() string { return i.result.Name + " " + i.result.ID }

func resultItems(results []flatpak.SearchResult) []list.Item {
	items := make([]list.Item, 0, len(results))
	for _, r := range results {
		items = append(items, resultItem{result: r})
	}
	return items
}
