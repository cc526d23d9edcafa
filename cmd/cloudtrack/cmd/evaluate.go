package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lvnb04/cloudtrack/internal/config"
	"github.com/lvnb04/cloudtrack/internal/store"
	"github.com/lvnb04/cloudtrack/pkg/logger"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Run one catalog evaluation and exit",
	Long: "Evaluates every tracked item once, sending any due alerts. Useful\n" +
		"for cron-style deployments that do not run the long-lived API server.",
	RunE: runEvaluate,
}

func init() {
	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(_ *cobra.Command, _ []string) error {
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

	sent, err := eng.EvaluateAll(context.Background())
	if err != nil {
		return fmt.Errorf("evaluating catalog: %w", err)
	}

	fmt.Printf("Evaluation complete: %d alert(s) sent.\n", sent)
	return nil
}
