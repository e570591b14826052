package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(cmdUninstall)
}

var cmdUninstall = &cobra.Command{
	Use:     "uninstall <application-id>",
	Aliases: []string{"rm", "remove"},
	Short:   "Uninstall an application",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, err := controller(cmd)
		if err != nil {
			return err
		}
		if err := ctrl.Uninstall(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Uninstalled %s\n", args[0])
		return nil
	},
}
