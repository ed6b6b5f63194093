// Package main is the entry point for the Seaworld viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/seaworld/internal/config"
	"github.com/Faultbox/seaworld/internal/game"
	"github.com/Faultbox/seaworld/internal/logger"
	"github.com/Faultbox/seaworld/internal/settings"
)

func main() {
	os.Exit(run())
}

// run returns the process exit status so deferred cleanup happens first.
func run() int {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	logger.Info("=== Seaworld ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	st := settings.Load(cfg.Scene.StatePath())

	g, err := game.New(cfg, st)
	if err != nil {
		logger.Error("failed to start viewer", zap.Error(err))
		return 1
	}
	defer g.Close()

	if err := g.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		return 1
	}

	// State is only persisted after a clean shutdown
	if err := settings.Save(cfg.Scene.StatePath(), g.Settings()); err != nil {
		logger.Warn("failed to save settings", zap.String("path", cfg.Scene.StatePath()), zap.Error(err))
	}

	logger.Info("viewer closed normally")
	return 0
}
