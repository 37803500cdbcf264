package telegram

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/logger"
	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/session"
)

const (
	consentTitle  = "🔐 Privacy & Data Consent"
	consentButton = "I Consent & Start Interview"
	restartButton = "Start New Interview"
	completeText  = "Interview Complete! Your profile has been securely submitted."
	saveFailed    = "We could not save your interview. Please send your last message again in a moment."
)

func (b *Bot) handleIncomingMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	key := sessionKey(chatID)

	if msg.IsCommand() {
		switch msg.Command() {
		case "start", restartCmd:
			sess := b.sessions.GetOrCreate(key)
			sess.Reset(b.sessions.Greeting())
			b.sendConsent(chatID)
		default:
			b.sendMessage(chatID, "Unknown command. Use /start to begin a new interview.")
		}
		return
	}

	sess := b.sessions.GetOrCreate(key)
	turn, err := b.interview.Submit(ctx, sess, msg.Text)
	switch {
	case errors.Is(err, session.ErrEmptyInput):
		return
	case errors.Is(err, session.ErrNotInterviewing):
		if sess.State() == session.Ended {
			b.sendWithButton(chatID, completeText, restartButton, restartCmd)
			return
		}
		b.sendConsent(chatID)
		return
	case err != nil:
		logger.Error().Err(err).Str("session", key).Msg("failed to finish interview")
		b.sendMessage(chatID, turn.Reply)
		b.sendMessage(chatID, saveFailed)
		return
	}

	b.sendMessage(chatID, turn.Reply)
	if turn.Ended {
		logger.Info().Str("session", key).Msg("interview completed")
		b.sendWithButton(chatID, completeText, restartButton, restartCmd)
	}
}

func (b *Bot) handleCallback(cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil || cb.Message.Chat == nil {
		return
	}
	if _, err := b.s.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		logger.Debug().Err(err).Msg("failed to answer callback")
	}
	chatID := cb.Message.Chat.ID
	sess := b.sessions.GetOrCreate(sessionKey(chatID))

	switch cb.Data {
	case consentCmd:
		if err := sess.GiveConsent(); err != nil {
			return
		}
		if tr := sess.Transcript(); len(tr) > 0 {
			b.sendMessage(chatID, tr[0].Content)
		}
	case restartCmd:
		sess.Reset(b.sessions.Greeting())
		b.sendConsent(chatID)
	}
}

func (b *Bot) sendConsent(chatID int64) {
	b.sendWithButton(chatID, consentTitle+"\n\n"+b.consentNotice, consentButton, consentCmd)
}
