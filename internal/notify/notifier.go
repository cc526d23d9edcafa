// Package notify defines the notification interface and channel
// implementations for alert and confirmation delivery.
package notify

import (
	"context"

	domain "github.com/lvnb04/cloudtrack/pkg/types"
)

// Message is a channel-agnostic notification. Body carries the plain-text
// rendering; HTML is optional and only used by channels that support it.
type Message struct {
	Subject string
	Body    string
	HTML    string
}

// Notifier routes a message to a destination on the given channel.
type Notifier interface {
	Send(ctx context.Context, channel domain.Channel, target string, msg Message) error
}

// Sender delivers a message to a single channel's destination. Each channel
// implementation (email, telegram) satisfies this; the Router dispatches
// between them.
type Sender interface {
	Deliver(ctx context.Context, target string, msg Message) error
}
