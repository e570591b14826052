package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"qpaks/internal/flatpak"
)

func init() {
	rootCmd.AddCommand(cmdSearch)
}

var searchLabel string

func init() {
	cmdSearch.Flags().StringVarP(&searchLabel, "label", "l", "", "Only show results with this label (foss, verified, verified-foss)")
}

var cmdSearch = &cobra.Command{
	Use:   "search <query>",
	Short: "Search Flathub for applications",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		label, ok := flatpak.ParseLabel(searchLabel)
		if !ok {
			return fmt.Errorf("unknown label %q (want foss, verified or verified-foss)", searchLabel)
		}
		ctrl, err := controller(cmd)
		if err != nil {
			return err
		}

		query := strings.Join(args, " ")
		var results []flatpak.SearchResult
		err = withSpinner("Searching Flathub...", func() error {
			var err error
			results, err = ctrl.Search(cmd.Context(), query)
			return err
		})
		if err != nil {
			return err
		}

		results = flatpak.FilterByLabel(results, label)
		out := cmd.OutOrStdout()
		if len(results) == 0 {
			fmt.Fprintln(out, "App not found")
			return nil
		}

		t := newTable("NAME", "APPLICATION ID", "LABEL")
		for _, r := range results {
			t.Row(r.Name, r.ID, r.Label.String())
		}
		fmt.Fprintln(out, t.Render())
		return nil
	},
}
