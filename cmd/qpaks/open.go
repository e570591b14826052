package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(cmdOpen)
}

var openPrintOnly bool

func init() {
	cmdOpen.Flags().BoolVarP(&openPrintOnly, "print", "p", false, "Print the Flathub URL instead of opening a browser")
}

var cmdOpen = &cobra.Command{
	Use:   "open <application-id>",
	Short: "Open the Flathub page of an application",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, err := controller(cmd)
		if err != nil {
			return err
		}
		if openPrintOnly {
			fmt.Fprintln(cmd.OutOrStdout(), ctrl.DetailsURL(args[0]))
			return nil
		}
		return ctrl.OpenDetails(args[0])
	},
}
