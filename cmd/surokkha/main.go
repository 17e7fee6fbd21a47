package main

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"surokkha/internal/auth"
	"surokkha/internal/backend"
	"surokkha/internal/cli"
	apphttp "surokkha/internal/http"
	"surokkha/internal/receipt"
)

func main() {
	logger := cli.SetupLogger()
	cli.LoadEnvFile()
	cfg := cli.LoadAndValidateConfig(logger)

	ctx, stop, shutdownTimeout := cli.ShutdownContext(context.Background())
	defer stop()

	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		logger.Error("Invalid backend configuration", "error", err)
		return
	}
	result, err := backend.NewFactory(logger).CreateBackend(ctx, backendCfg)
	if err != nil {
		logger.Error("Failed to initialize data backend", "error", err, "backend", cfg.DataBackend)
		return
	}
	if result.Cleanup != nil {
		defer func() {
			if err := result.Cleanup(); err != nil {
				logger.Error("Backend cleanup error", "error", err)
			}
		}()
	}

	sessions := auth.NewSessions()
	renderer := receipt.NewRenderer(cfg.LetterheadPath, cfg.ReceiptQRURL)

	srv := apphttp.NewServer(":"+cfg.Port, result.Backend, sessions, renderer)
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 30 * time.Second // receipt and export downloads
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting surokkha server", "port", cfg.Port, "backend", cfg.DataBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", "error", err)
		return
	}
	logger.Info("Server stopped gracefully")
}
