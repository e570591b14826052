package main

import (
	"flag"

	"github.com/charmbracelet/log"

	"qpaks/internal/app"
	"qpaks/internal/config"
	"qpaks/internal/logging"
	"qpaks/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("load config", "err", err)
	}
	logger, closer, err := logging.OpenFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		log.Fatal("open log file", "err", err)
	}
	defer closer.Close()

	controller := app.New(app.Options{Config: cfg, Logger: logger})
	opts := tui.Options{EnsureRemotes: cfg.EnsureRemotes, Scope: string(cfg.Installation)}
	if err := tui.Run(controller, opts); err != nil {
		closer.Close()
		log.Fatal("tui exited with error", "err", err)
	}
}
