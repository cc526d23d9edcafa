package notify

import (
	"context"
	"log/slog"

	domain "github.com/lvnb04/cloudtrack/pkg/types"
)

// NoOpNotifier implements Notifier by logging discarded messages. It is used
// when no notification channel is configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards messages with a log entry.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// Send logs and discards the message.
func (n *NoOpNotifier) Send(
	_ context.Context,
	channel domain.Channel,
	target string,
	msg Message,
) error {
	n.log.Debug("notification discarded (no channels configured)",
		"channel", channel,
		"target", target,
		"subject", msg.Subject,
	)
	return nil
}
