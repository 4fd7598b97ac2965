package telegram

import (
	"context"
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	domainErrors "github.com/polkiloo/burgerbot/internal/domain/errors"
	"github.com/polkiloo/burgerbot/internal/domain/model"
)

// API is the subset of the Telegram Bot API client used by the transport.
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetUpdatesChan(cfg tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// NewAPI dials Telegram with the given bot token.
func NewAPI(token string) (API, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram connect: %w", err)
	}
	return bot, nil
}

// Sender delivers outbound conversation messages over Telegram.
type Sender struct {
	api API
}

// NewSender constructs the Telegram sender.
func NewSender(api API) *Sender {
	return &Sender{api: api}
}

// SendText sends a plain text message to the customer's chat.
func (s *Sender) SendText(_ context.Context, customerID, text string) error {
	chatID, err := parseChatID(customerID)
	if err != nil {
		return err
	}
	if _, err := s.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		return fmt.Errorf("%w: %s", domainErrors.ErrSendFailed, err)
	}
	return nil
}

// SendDocument uploads a local file to the customer's chat.
func (s *Sender) SendDocument(_ context.Context, customerID string, doc model.Document) error {
	chatID, err := parseChatID(customerID)
	if err != nil {
		return err
	}
	msg := tgbotapi.NewDocument(chatID, tgbotapi.FilePath(doc.Path))
	msg.Caption = doc.Caption
	if _, err := s.api.Send(msg); err != nil {
		return fmt.Errorf("%w: %s", domainErrors.ErrSendFailed, err)
	}
	return nil
}

func parseChatID(customerID string) (int64, error) {
	chatID, err := strconv.ParseInt(customerID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid chat id %q: %w", customerID, err)
	}
	return chatID, nil
}
