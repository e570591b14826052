package tui

import (
	"fmt"
	"strings"

	"qpaks/internal/flatpak"
)

// installedView is what the installed screen needs to draw itself.
type installedView struct {
	Loading bool
	Loaded  bool
	Err     error
	Count   int
	List    string
	Spinner string
}

// searchView is what the search screen needs to draw itself.
type searchView struct {
	Input     string
	Query     string
	Filter    flatpak.Label
	Searching bool
	Searched  bool
	Err       error
	Total     int
	Visible   int
	List      string
	Spinner   string
}

type confirmView struct {
	ID   string
	Name string
}

const (
	emptyInstalledText = "No Flatpak apps are installed yet"
	emptySearchText    = "App not found"
)

func renderHeader(scope string, searching bool) string {
	title := "qpaks"
	if searching {
		title += " · search"
	}
	return titleStyle.Render(title) + scopeStyle.Render(scope+" installation") + "\n"
}

func renderInstalled(v installedView) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Installed (%d)", v.Count)))
	b.WriteString("\n\n")

	switch {
	case v.Loading && !v.Loaded:
		b.WriteString(v.Spinner + " Loading installed apps…\n")
	case v.Err != nil:
		b.WriteString(errorStyle.Render("Error: "+v.Err.Error()) + "\n")
	case v.Count == 0:
		b.WriteString(dimStyle.Render(emptyInstalledText) + "\n")
	default:
		b.WriteString(v.List)
		b.WriteString("\n")
	}
	return b.String()
}

func renderSearch(v searchView) string {
	var b strings.Builder
	b.WriteString(searchStyle.Render(v.Input))
	b.WriteString("\n")

	filter := "all"
	if v.Filter != flatpak.LabelNone {
		filter = v.Filter.String()
	}
	b.WriteString(dimStyle.Render("filter: " + filter))
	b.WriteString("\n\n")

	switch {
	case v.Searching:
		b.WriteString(fmt.Sprintf("%s Searching for %q…\n", v.Spinner, v.Query))
	case v.Err != nil:
		b.WriteString(errorStyle.Render("Error: "+v.Err.Error()) + "\n")
	case !v.Searched:
		b.WriteString(dimStyle.Render("Type a name and press enter") + "\n")
	case v.Visible == 0:
		b.WriteString(dimStyle.Render(emptySearchText) + "\n")
	default:
		if v.Visible != v.Total {
			b.WriteString(dimStyle.Render(fmt.Sprintf("%d of %d results", v.Visible, v.Total)) + "\n")
		}
		b.WriteString(v.List)
		b.WriteString("\n")
	}
	return b.String()
}

func renderConfirm(v confirmView) string {
	name := v.Name
	if name == "" {
		name = v.ID
	}
	return fmt.Sprintf("Uninstall %s?\n%s\n\n[y] Yes  [n] No", selectedStyle.Render(name), dimStyle.Render(v.ID))
}

func renderWithModal(bg, title, content string) string {
	lines := strings.Split(bg, "\n")

	modalContent := fmt.Sprintf("%s\n\n%s", titleStyle.Render(title), content)
	modalLines := strings.Split(modalStyle.Render(modalContent), "\n")

	startY := (len(lines) - len(modalLines)) / 2
	if startY < 0 {
		startY = 0
	}
	for i, mLine := range modalLines {
		idx := startY + i
		if idx < len(lines) {
			lines[idx] = mLine
		} else {
			lines = append(lines, mLine)
		}
	}
	return strings.Join(lines, "\n")
}

func labelBadge(l flatpak.Label) string {
	if l == flatpak.LabelNone {
		return ""
	}
	return labelStyle.Render("[" + l.String() + "]")
}
