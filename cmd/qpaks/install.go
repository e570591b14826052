package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"qpaks/internal/config"
)

func init() {
	rootCmd.AddCommand(cmdInstall)
}

var installRemote string

func init() {
	cmdInstall.Flags().StringVarP(&installRemote, "remote", "r", "", "Remote to install from (defaults to install_remote from config)")
}

var cmdInstall = &cobra.Command{
	Use:   "install <application-id>",
	Short: "Install an application from Flathub",
	Long:  `Runs flatpak install in the current terminal, or in the configured terminal emulator.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, err := controller(cmd, func(cfg *config.Config) {
			if installRemote != "" {
				cfg.InstallRemote = installRemote
			}
		})
		if err != nil {
			return err
		}
		if err := ctrl.Install(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Installed %s\n", args[0])
		return nil
	},
}
