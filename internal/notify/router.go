package notify

import (
	"context"
	"fmt"
	"log/slog"

	domain "github.com/lvnb04/cloudtrack/pkg/types"
)

// Router dispatches messages to the sender registered for each channel.
// Channels without a configured sender reject delivery with an error so the
// caller can surface the misconfiguration instead of silently dropping
// notifications.
type Router struct {
	senders map[domain.Channel]Sender
	log     *slog.Logger
}

// RouterOption configures a Router.
type RouterOption func(*Router)

// WithEmail registers a sender for the email channel.
func WithEmail(s Sender) RouterOption {
	return func(r *Router) {
		r.senders[domain.ChannelEmail] = s
	}
}

// WithTelegram registers a sender for the telegram channel.
func WithTelegram(s Sender) RouterOption {
	return func(r *Router) {
		r.senders[domain.ChannelTelegram] = s
	}
}

// NewRouter creates a Router with the given channel senders.
func NewRouter(log *slog.Logger, opts ...RouterOption) *Router {
	r := &Router{
		senders: make(map[domain.Channel]Sender),
		log:     log,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Send delivers the message on the requested channel.
func (r *Router) Send(
	ctx context.Context,
	channel domain.Channel,
	target string,
	msg Message,
) error {
	sender, ok := r.senders[channel]
	if !ok {
		return fmt.Errorf("notification channel %s is not configured", channel)
	}

	if err := sender.Deliver(ctx, target, msg); err != nil {
		return err
	}

	r.log.Debug("notification delivered",
		"channel", channel,
		"subject", msg.Subject,
	)

	return nil
}
