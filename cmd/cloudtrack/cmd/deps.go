package cmd

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/lvnb04/cloudtrack/internal/config"
	"github.com/lvnb04/cloudtrack/internal/engine"
	"github.com/lvnb04/cloudtrack/internal/notify"
	"github.com/lvnb04/cloudtrack/internal/scraper"
	"github.com/lvnb04/cloudtrack/internal/store"
)

// buildEngine assembles the provider, notifier, and engine from config.
func buildEngine(cfg *config.Config, st store.Store, log *slog.Logger) (*engine.Engine, error) {
	provider := scraper.NewAPIClient(
		cfg.Scraper.APIKey,
		scraper.WithEndpoint(cfg.Scraper.Endpoint),
		scraper.WithHTTPClient(&http.Client{Timeout: cfg.Scraper.Timeout}),
		scraper.WithRateLimiter(scraper.NewRateLimiter(
			cfg.Scraper.RateLimit.PerSecond,
			cfg.Scraper.RateLimit.Burst,
			cfg.Scraper.RateLimit.DailyLimit,
		)),
	)

	notifier, err := buildNotifier(cfg, log)
	if err != nil {
		return nil, err
	}

	return engine.NewEngine(st, provider, notifier,
		engine.WithLogger(log),
		engine.WithConcurrency(cfg.Evaluation.Concurrency),
		engine.WithItemTimeout(cfg.Evaluation.ItemTimeout),
	), nil
}

func buildNotifier(cfg *config.Config, log *slog.Logger) (notify.Notifier, error) {
	var opts []notify.RouterOption

	if cfg.Notifications.Email.Enabled {
		email, err := notify.NewEmailSender(
			cfg.Notifications.Email.SMTPHost,
			cfg.Notifications.Email.SMTPPort,
			cfg.Notifications.Email.Username,
			cfg.Notifications.Email.Password,
			cfg.Notifications.Email.Sender,
		)
		if err != nil {
			return nil, fmt.Errorf("configuring email notifications: %w", err)
		}
		opts = append(opts, notify.WithEmail(email))
	}

	if cfg.Notifications.Telegram.Enabled {
		telegram, err := notify.NewTelegramSender(cfg.Notifications.Telegram.BotToken)
		if err != nil {
			return nil, fmt.Errorf("configuring telegram notifications: %w", err)
		}
		opts = append(opts, notify.WithTelegram(telegram))
	}

	if len(opts) == 0 {
		log.Warn("no notification channels configured, alerts will be discarded")
		return notify.NewNoOpNotifier(log), nil
	}

	return notify.NewRouter(log, opts...), nil
}
