package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "qpaks [command]",
	Short: "qpaks: a small Flathub front-end",
	Long: `qpaks searches Flathub, installs, runs, updates and removes Flatpak
applications. Run "qpaks tui" for the interactive interface.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the root command and returns the process exit code.
func run(ctx context.Context, args []string, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(ctx)
	if ctx.Err() != nil {
		fmt.Fprintln(stderr, "Ctrl-C pressed, quitting")
		return 0
	}
	if err != nil {
		log.New(stderr).Error(err)
		return 1
	}
	return 0
}
