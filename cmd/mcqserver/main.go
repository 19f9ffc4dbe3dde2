// Command mcqserver runs the MCQ PDF extraction service: a single
// upload endpoint, a read-back endpoint, and the two static review
// pages. Every collaborator (logger, store, asset store) is
// constructed here and threaded explicitly into the router — nothing
// is reached through a package-level global.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/jeemock/mcqextract/internal/assets"
	"github.com/jeemock/mcqextract/internal/config"
	"github.com/jeemock/mcqextract/internal/httpapi"
	"github.com/jeemock/mcqextract/internal/store"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	cfg := config.DefaultConfig()
	if addr := os.Getenv("MCQEXTRACT_ADDR"); addr != "" {
		cfg = cfg.WithAddr(addr)
	}
	if dbPath := os.Getenv("MCQEXTRACT_DB"); dbPath != "" {
		cfg = cfg.WithDBPath(dbPath)
	}

	if err := run(cfg, sugar); err != nil {
		sugar.Fatalw("server exited with error", "error", err)
	}
}

func run(cfg config.Config, log *zap.SugaredLogger) error {
	db, err := store.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	assetStore, err := assets.New(cfg.ImagesDir, cfg.ImagesURLPrefix)
	if err != nil {
		return err
	}

	server := &httpapi.Server{
		Store:     db,
		Assets:    assetStore,
		Log:       log,
		StaticDir: cfg.StaticDir,
		ImagesDir: cfg.ImagesDir,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	router := server.Router()
	log.Infow("starting mcqserver", "addr", cfg.Addr)

	errCh := make(chan error, 1)
	go func() {
		errCh <- router.Run(cfg.Addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info("shutting down")
		return nil
	}
}
