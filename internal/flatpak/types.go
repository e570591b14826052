package flatpak

import "strings"

// Label classifies a search result by the Flathub subsets it appears in.
type Label int

const (
	LabelNone Label = iota
	LabelFOSS
	LabelVerified
	LabelVerifiedFOSS
)

var labelNames = map[Label]string{
	LabelNone:         "",
	LabelFOSS:         "FOSS",
	LabelVerified:     "Verified",
	LabelVerifiedFOSS: "Verified & FOSS",
}

func (l Label) String() string {
	return labelNames[l]
}

// ParseLabel accepts the CLI spellings of a label filter.
func ParseLabel(s string) (Label, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all", "none":
		return LabelNone, true
	case "foss":
		return LabelFOSS, true
	case "verified":
		return LabelVerified, true
	case "verified-foss", "verified_foss", "verified&foss", "verified & foss":
		return LabelVerifiedFOSS, true
	}
	return LabelNone, false
}

// SearchResult is one remote application matched by a search query.
type SearchResult struct {
	ID    string
	Name  string
	Label Label
}

// Matches reports whether query is a case-insensitive substring of the name or id.
func (r SearchResult) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Name), q) ||
		strings.Contains(strings.ToLower(r.ID), q)
}

// InstalledApp is an application present in the local installation.
type InstalledApp struct {
	ID            string
	Name          string
	InstalledSize string
	Version       string
	Origin        string
}

// Info holds the parsed output of `flatpak info`.
type Info struct {
	Name      string
	Summary   string
	ID        string
	Installed string
	Fields    map[string]string
}

// Remote describes a package source to register with flatpak.
type Remote struct {
	Name   string `yaml:"name"`
	URL    string `yaml:"url"`
	Subset string `yaml:"subset,omitempty"`
}

const flathubRepoURL = "https://flathub.org/repo/flathub.flatpakrepo"

// DefaultRemotes are the Flathub remote and its curated subsets.
func DefaultRemotes() []Remote {
	return []Remote{
		{Name: "flathub", URL: flathubRepoURL},
		{Name: "flathub-floss", URL: flathubRepoURL, Subset: "floss"},
		{Name: "flathub-verified_floss", URL: flathubRepoURL, Subset: "verified_floss"},
		{Name: "flathub-verified", URL: flathubRepoURL, Subset: "verified"},
	}
}

// DetailsURL returns the Flathub page of an application.
func DetailsURL(id string) string {
	return "https://flathub.org/apps/details/" + id
}
