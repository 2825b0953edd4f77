/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/valpere/translate-api/internal/config"
	"github.com/valpere/translate-api/internal/detector"
	"github.com/valpere/translate-api/internal/server"
	"github.com/valpere/translate-api/internal/store"
	"github.com/valpere/translate-api/internal/translator"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the translation API server",
	Long: `Start the HTTP server. All configuration comes from environment
variables; see the project README for the recognized options.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	logger.Info("starting translation API",
		zap.String("version", server.Version),
		zap.String("environment", cfg.Environment),
		zap.String("provider", cfg.Provider.Name),
	)

	ctx := context.Background()

	det := detector.New()

	provider, err := translator.New(ctx, &cfg.Provider, det.DetectISO, logger)
	if err != nil {
		return fmt.Errorf("failed to create translation provider: %w", err)
	}

	var history *store.Store
	if cfg.Database.Path != "" {
		history, err = store.New(cfg.Database.Path)
		if err != nil {
			return fmt.Errorf("failed to open history database: %w", err)
		}
		defer history.Close()
		logger.Info("history store opened", zap.String("path", cfg.Database.Path))
	} else {
		logger.Info("history store disabled")
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      server.New(cfg, provider, det, history, logger).Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Provider.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-quit:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	logger.Info("server exited")
	return nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.Environment == "development" {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
