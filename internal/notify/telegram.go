package notify

import (
	"context"
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// telegramAPI is the subset of the bot API used for outbound delivery.
type telegramAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramSender delivers messages to Telegram chats via the bot API.
type TelegramSender struct {
	api telegramAPI
}

// TelegramOption configures a TelegramSender.
type TelegramOption func(*TelegramSender)

// WithTelegramAPI sets a pre-built bot API, overriding the one constructed
// from the token.
func WithTelegramAPI(api telegramAPI) TelegramOption {
	return func(t *TelegramSender) {
		t.api = api
	}
}

// NewTelegramSender creates a bot-API-backed sender from a bot token.
func NewTelegramSender(token string, opts ...TelegramOption) (*TelegramSender, error) {
	t := &TelegramSender{}

	for _, opt := range opts {
		opt(t)
	}

	if t.api == nil {
		api, err := tgbotapi.NewBotAPI(token)
		if err != nil {
			return nil, fmt.Errorf("creating telegram bot api: %w", err)
		}
		t.api = api
	}

	return t, nil
}

// Deliver sends the message to the target chat. The target is the numeric
// chat ID as a string.
func (t *TelegramSender) Deliver(_ context.Context, target string, msg Message) error {
	chatID, err := strconv.ParseInt(target, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid telegram chat id %q: %w", target, err)
	}

	out := tgbotapi.NewMessage(chatID, msg.Body)
	out.ParseMode = tgbotapi.ModeMarkdown
	out.DisableWebPagePreview = true

	if _, err := t.api.Send(out); err != nil {
		return fmt.Errorf("sending telegram message to chat %d: %w", chatID, err)
	}

	return nil
}
