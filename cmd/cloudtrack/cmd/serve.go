package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/lvnb04/cloudtrack/internal/api"
	"github.com/lvnb04/cloudtrack/internal/config"
	"github.com/lvnb04/cloudtrack/internal/engine"
	"github.com/lvnb04/cloudtrack/internal/store"
	"github.com/lvnb04/cloudtrack/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	pg, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	cancel()
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer pg.Close()

	eng, err := buildEngine(cfg, pg, log)
	if err != nil {
		return err
	}

	sched, err := engine.NewScheduler(eng, cfg.Evaluation.Interval, log)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}
	sched.Start()

	srv := api.NewServer(pg, eng, eng, log)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv.Echo.Server.ReadTimeout = cfg.Server.ReadTimeout
	srv.Echo.Server.WriteTimeout = cfg.Server.WriteTimeout

	log.Info("starting server",
		"addr", addr,
		"evaluation_interval", cfg.Evaluation.Interval,
	)

	go func() {
		if err := srv.Echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	// Let a running evaluation finish before closing the store.
	select {
	case <-sched.Stop().Done():
	case <-shutdownCtx.Done():
		log.Warn("scheduler did not stop in time")
	}

	if err := srv.Echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}
