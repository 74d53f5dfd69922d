package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-grooming-intake/internal/adapters/storage"
	"pet-grooming-intake/internal/config"
	"pet-grooming-intake/internal/domain/breeds"
	"pet-grooming-intake/internal/platform/logger"
	"pet-grooming-intake/internal/router"

	"golang.org/x/sync/errgroup"
)

// @title Pet Grooming Intake API
// @version 1.0
// @description Registro de sesiones de peluquería canina: fotos antes/después y planilla de clientes.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewFromEnv().Error("config error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})
	defer func() { _ = log.Sync() }()

	// Sin lista de razas no se puede operar: error fatal.
	list, err := breeds.Load(cfg.BreedsFile)
	if err != nil {
		log.Error("cannot load breed list", map[string]any{"file": cfg.BreedsFile, "error": err.Error()})
		_ = log.Sync()
		os.Exit(1)
	}

	repo, closeRepo, err := storage.Open(cfg)
	if err != nil {
		log.Error("cannot open record log", map[string]any{"backend": string(cfg.Backend), "error": err.Error()})
		_ = log.Sync()
		os.Exit(1)
	}
	defer func() { _ = closeRepo() }()

	r := router.NewRouter(router.Options{
		Repo:       repo,
		Breeds:     list,
		OutputRoot: cfg.OutputRoot,
		MaxUpload:  cfg.MaxUploadBytes,
		Logger:     log,
	})

	// Uso local: sólo loopback.
	addr := "127.0.0.1:" + cfg.Port
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting server", map[string]any{
			"addr":        addr,
			"backend":     string(cfg.Backend),
			"output_root": cfg.OutputRoot,
			"breeds":      len(list),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", map[string]any{"error": err.Error()})
		_ = log.Sync()
		os.Exit(1)
	}
	log.Info("server stopped", nil)
}
