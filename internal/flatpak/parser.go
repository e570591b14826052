package flatpak

import (
	"strings"
)

// NoMatchesSentinel is printed by `flatpak search` instead of an empty listing.
const NoMatchesSentinel = "No matches found"

// DefaultReservedPrefixes cover runtime and platform refs that are not end-user apps.
var DefaultReservedPrefixes = []string{
	"org.freedesktop.",
	"org.gnome.",
	"org.kde.",
}

// Filter drops records whose ids are empty or reserved.
type Filter struct {
	ReservedPrefixes []string
}

// DefaultFilter uses DefaultReservedPrefixes.
var DefaultFilter = Filter{ReservedPrefixes: DefaultReservedPrefixes}

// Allows reports whether id names an end-user application.
func (f Filter) Allows(id string) bool {
	if id == "" {
		return false
	}
	for _, prefix := range f.ReservedPrefixes {
		if prefix != "" && strings.HasPrefix(id, prefix) {
			return false
		}
	}
	return true
}

// ParseSearch parses `flatpak search --columns=application,name,remotes` output.
func (f Filter) ParseSearch(out string) []SearchResult {
	results := []SearchResult{}
	if strings.Contains(out, NoMatchesSentinel) {
		return results
	}

	eachLine(out, func(line string) {
		parts := strings.Split(line, "\t")
		if len(parts) < 2 {
			return
		}
		id := strings.TrimSpace(parts[0])
		name := strings.TrimSpace(parts[1])
		if name == "" || !f.Allows(id) {
			return
		}
		var remotes []string
		if len(parts) > 2 {
			remotes = splitRemotes(parts[2])
		}
		results = append(results, SearchResult{
			ID:    id,
			Name:  name,
			Label: LabelFor(remotes),
		})
	})
	return results
}

// ParseList parses `flatpak list --columns=application,name` output.
func (f Filter) ParseList(out string) []InstalledApp {
	apps := []InstalledApp{}
	eachLine(out, func(line string) {
		parts := strings.Split(line, "\t")
		if len(parts) < 2 {
			return
		}
		id := strings.TrimSpace(parts[0])
		name := strings.TrimSpace(parts[1])
		if name == "" || !f.Allows(id) {
			return
		}
		apps = append(apps, InstalledApp{ID: id, Name: name})
	})
	return apps
}

// LabelFor picks the strongest label from the remotes an app is published in.
func LabelFor(remotes []string) Label {
	set := make(map[string]bool, len(remotes))
	for _, r := range remotes {
		set[strings.TrimSpace(r)] = true
	}
	switch {
	case set["flathub-verified_floss"] || set["flathub-verified-floss"]:
		return LabelVerifiedFOSS
	case set["flathub-verified"]:
		return LabelVerified
	case set["flathub-floss"]:
		return LabelFOSS
	}
	return LabelNone
}

// ParseInfo parses `flatpak info <id>` output. The first non-empty line is the
// "Name - Summary" header; the rest are "Key: value" lines.
func ParseInfo(out string) Info {
	info := Info{Fields: make(map[string]string)}
	header := true
	eachLine(out, func(line string) {
		if header {
			header = false
			if !isInfoKeyLine(line) {
				name, summary, _ := strings.Cut(line, " - ")
				info.Name = strings.TrimSpace(name)
				info.Summary = strings.TrimSpace(summary)
				return
			}
		}
		key, val, ok := strings.Cut(line, ":")
		if !ok {
			return
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return
		}
		if _, seen := info.Fields[key]; seen {
			return
		}
		info.Fields[key] = strings.TrimSpace(val)
	})

	if name := info.Fields["Name"]; name != "" && info.Name == "" {
		info.Name = name
	}
	info.ID = info.Fields["ID"]
	info.Installed = info.Fields["Installed"]
	return info
}

// infoKeys are the keys `flatpak info` prints below the header.
var infoKeys = map[string]bool{
	"ID": true, "Ref": true, "Arch": true, "Branch": true, "Version": true,
	"License": true, "Origin": true, "Collection": true, "Installation": true,
	"Installed": true, "Runtime": true, "Sdk": true, "Commit": true,
	"Parent": true, "Subject": true, "Date": true, "Alt-id": true,
	"Extension": true, "Name": true,
}

func isInfoKeyLine(line string) bool {
	key, _, ok := strings.Cut(line, ":")
	return ok && infoKeys[strings.TrimSpace(key)]
}

// ParseRemotes returns the remote names from `flatpak remotes` output.
func ParseRemotes(out string) []string {
	var names []string
	eachLine(out, func(line string) {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			return
		}
		names = append(names, fields[0])
	})
	return names
}

// FilterByLabel keeps results carrying label. LabelNone keeps everything.
func FilterByLabel(results []SearchResult, label Label) []SearchResult {
	if label == LabelNone {
		return results
	}
	out := make([]SearchResult, 0, len(results))
	for _, r := range results {
		if r.Label == label {
			out = append(out, r)
		}
	}
	return out
}

func splitRemotes(col string) []string {
	var remotes []string
	for _, r := range strings.Split(col, ",") {
		if r = strings.TrimSpace(r); r != "" {
			remotes = append(remotes, r)
		}
	}
	return remotes
}

// eachLine calls fn for every non-blank line, without its trailing newline.
func eachLine(out string, fn func(line string)) {
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		fn(line)
	}
}
