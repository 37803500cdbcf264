package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/logger"
	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/session"
)

const (
	consentCmd = "consent"
	restartCmd = "restart"
)

// Bot runs candidate interviews over Telegram. Each chat is one session.
type Bot struct {
	api           *tgbotapi.BotAPI
	s             sender
	sessions      *session.Manager
	interview     *session.Interview
	consentNotice string
}

func New(botToken string, sessions *session.Manager, interview *session.Interview, consentNotice string) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("telegram api: %w", err)
	}
	logger.Info().Str("bot", api.Self.UserName).Msg("telegram bot authorized")
	return &Bot{
		api:           api,
		s:             botAPISender{api: api},
		sessions:      sessions,
		interview:     interview,
		consentNotice: consentNotice,
	}, nil
}

// Start long-polls until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message != nil {
		b.handleIncomingMessage(ctx, update.Message)
		return
	}
	if update.CallbackQuery != nil {
		b.handleCallback(update.CallbackQuery)
	}
}

func sessionKey(chatID int64) string {
	return fmt.Sprintf("tg:%d", chatID)
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.s.Send(msg); err != nil {
		logger.Error().Err(err).Int64("chat", chatID).Msg("failed to send message")
	}
}

func (b *Bot) sendWithButton(chatID int64, text, label, data string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, data),
		),
	)
	if _, err := b.s.Send(msg); err != nil {
		logger.Error().Err(err).Int64("chat", chatID).Msg("failed to send message")
	}
}
