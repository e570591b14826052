package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"qpaks/internal/logging"
	"qpaks/internal/tui"
)

func init() {
	rootCmd.AddCommand(cmdTUI)
}

var cmdTUI = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger, closer, err := logging.OpenFile(cfg.LogFile, cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer closer.Close()

		ctrl := controllerFactory(cfg, logger)
		opts := tui.Options{EnsureRemotes: cfg.EnsureRemotes, Scope: string(cfg.Installation)}
		if err := runTUI(ctrl, opts); err != nil {
			return fmt.Errorf("tui exited with error: %w", err)
		}
		return nil
	},
}

var runTUI = tui.Run
