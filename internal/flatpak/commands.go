package flatpak

import (
	"fmt"
	"strings"
)

// Installation selects the flatpak installation a command acts on.
type Installation string

const (
	InstallationUser   Installation = "user"
	InstallationSystem Installation = "system"
)

// Valid reports whether the installation is known to flatpak.
func (i Installation) Valid() bool {
	return i == InstallationUser || i == InstallationSystem
}

func (i Installation) flag() string {
	if i == "" {
		return "--" + string(InstallationUser)
	}
	return "--" + string(i)
}

// Commands builds argument vectors for the flatpak binary.
type Commands struct {
	Binary       string
	Installation Installation
}

// NewCommands returns a builder for binary, defaulting to "flatpak" and the user installation.
func NewCommands(binary string, inst Installation) Commands {
	if strings.TrimSpace(binary) == "" {
		binary = "flatpak"
	}
	if inst == "" {
		inst = InstallationUser
	}
	return Commands{Binary: binary, Installation: inst}
}

func (c Commands) argv(args ...string) []string {
	return append([]string{c.Binary}, args...)
}

func (c Commands) Search(query string) []string {
	return c.argv("search", "--columns=application,name,remotes", query)
}

func (c Commands) List() []string {
	return c.argv("list", c.Installation.flag(), "--columns=application,name")
}

func (c Commands) Info(id string) []string {
	return c.argv("info", c.Installation.flag(), id)
}

func (c Commands) Install(remote, id string) []string {
	return c.argv("install", c.Installation.flag(), remote, id, "-y")
}

func (c Commands) Uninstall(id string) []string {
	return c.argv("uninstall", c.Installation.flag(), id)
}

func (c Commands) Update() []string {
	return c.argv("update", c.Installation.flag(), "-y")
}

func (c Commands) Run(id string) []string {
	return c.argv("run", c.Installation.flag(), id)
}

func (c Commands) Remotes() []string {
	return c.argv("remotes", c.Installation.flag())
}

// RemoteAdd registers r unless a remote with the same name already exists.
func (c Commands) RemoteAdd(r Remote) []string {
	args := []string{"remote-add", "--if-not-exists", c.Installation.flag()}
	if r.Subset != "" {
		args = append(args, fmt.Sprintf("--subset=%s", r.Subset))
	}
	args = append(args, r.Name, r.URL)
	return c.argv(args...)
}

func (c Commands) Version() []string {
	return c.argv("--version")
}

// Terminal hosts interactive commands in a terminal emulator.
// A zero Terminal runs them in the current terminal.
type Terminal struct {
	Emulator string
}

// Wrap prefixes argv with the emulator invocation when one is configured.
func (t Terminal) Wrap(argv []string) []string {
	emu := strings.TrimSpace(t.Emulator)
	if emu == "" {
		return append([]string(nil), argv...)
	}
	return append([]string{emu, "-e"}, argv...)
}
