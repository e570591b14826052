package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(cmdCheck)
}

var cmdCheck = &cobra.Command{
	Use:   "check",
	Short: "Check that flatpak is installed and usable",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, err := controller(cmd)
		if err != nil {
			return err
		}
		version, err := ctrl.Check(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), version)
		return nil
	},
}
