package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"qpaks/internal/app"
)

func init() {
	rootCmd.AddCommand(cmdRemotes)
}

var remotesEnsure bool

func init() {
	cmdRemotes.Flags().BoolVarP(&remotesEnsure, "ensure", "e", false, "Add the configured remotes that are missing")
}

var cmdRemotes = &cobra.Command{
	Use:   "remotes",
	Short: "List flatpak remotes, or add the configured Flathub remotes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, err := controller(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if remotesEnsure {
			var res app.RemotesResult
			ensureErr := withSpinner("Adding remotes...", func() error {
				var err error
				res, err = ctrl.EnsureRemotes(cmd.Context())
				return err
			})
			for _, ev := range res.Events {
				if ev.Err != nil {
					fmt.Fprintf(out, "%s: %s (%v)\n", ev.Remote.Name, ev.Kind, ev.Err)
					continue
				}
				fmt.Fprintf(out, "%s: %s\n", ev.Remote.Name, ev.Kind)
			}
			return ensureErr
		}

		var names []string
		err = withSpinner("Reading remotes...", func() error {
			var err error
			names, err = ctrl.Remotes(cmd.Context())
			return err
		})
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Fprintln(out, "No remotes configured")
			return nil
		}
		for _, n := range names {
			fmt.Fprintln(out, n)
		}
		return nil
	},
}
