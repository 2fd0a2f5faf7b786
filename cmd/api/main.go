package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/riskgauge/backend/internal/config"
	"github.com/riskgauge/backend/internal/database"
	"github.com/riskgauge/backend/internal/logger"
	"github.com/riskgauge/backend/internal/server"
	"github.com/riskgauge/backend/internal/version"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// Log to both stdout and a rotated file
	out := io.Writer(os.Stdout)
	if rotator, err := logger.RotatingFile(cfg.LogDir, "riskgauge.log"); err != nil {
		log.Printf("WARNING: file logging disabled: %v", err)
	} else {
		defer rotator.Close()
		out = io.MultiWriter(os.Stdout, rotator)
	}
	log.SetOutput(out)
	logger.Init(cfg.Debug, out)

	logger.Log().WithField("env", cfg.Environment).Infof("starting %s", version.Full())

	db, err := database.Connect(cfg.DatabasePath)
	if err != nil {
		logger.Log().WithError(err).Fatal("connect database")
	}

	srv, err := server.New(db, cfg)
	if err != nil {
		logger.Log().WithError(err).Fatal("build server")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Log().WithField("port", cfg.HTTPPort).Info("listening")
	if err := srv.Run(ctx); err != nil {
		logger.Log().WithError(err).Error("server error")
		return
	}
	logger.Log().Info("shut down cleanly")
}
