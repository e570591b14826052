package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"qpaks/internal/flatpak"
)

func init() {
	rootCmd.AddCommand(cmdList)
}

var cmdList = &cobra.Command{
	Use:   "list",
	Short: "List installed applications",
	Long:  `Lists installed Flatpak applications with their size, skipping runtimes.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, err := controller(cmd)
		if err != nil {
			return err
		}

		var apps []flatpak.InstalledApp
		err = withSpinner("Reading installed apps...", func() error {
			var err error
			apps, err = ctrl.Installed(cmd.Context())
			return err
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(apps) == 0 {
			fmt.Fprintln(out, "No Flatpak apps are installed yet")
			return nil
		}

		t := newTable("NAME", "APPLICATION ID", "VERSION", "SIZE")
		for _, a := range apps {
			t.Row(a.Name, a.ID, valueOrDash(a.Version), valueOrDash(a.InstalledSize))
		}
		fmt.Fprintln(out, t.Render())
		return nil
	},
}

func valueOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
