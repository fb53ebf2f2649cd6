package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/soocke/motion-extract-go/app"
	"github.com/soocke/motion-extract-go/config"
)

func main() {
	cfgPath := flag.String("config", "config.json", "path to the config file")
	flag.Parse()

	// Missing file falls back to defaults; a malformed one is reported but
	// still yields a usable config.
	cfg, err := config.Load(*cfgPath)

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)
	if err != nil {
		logger.Warn("config load failed", slog.String("path", *cfgPath), slog.Any("error", err))
	}

	application, err := app.NewApp(800, 600, cfg, logger)
	if err != nil {
		logger.Error("startup failed", slog.Any("error", err))
		os.Exit(1)
	}
	application.Start()
}
