// Package bot serves the chat over Telegram long polling.
package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"github.com/fundsbot/fundsbot/internal/handlers"
	"github.com/fundsbot/fundsbot/internal/logger"
)

// Responder answers a chat message.
type Responder interface {
	HandleMessage(ctx context.Context, text string) handlers.Reply
}

// Sender is the part of *tgbotapi.BotAPI used to reply.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

const startText = `👋 Hi! I keep track of your income and expenses.

Try:
• spent 50 on food
• got 1000 salary
• show my balance
• show expenses for food
• summary for april
• what did I spend on 2024-03-05`

type Bot struct {
	api       *tgbotapi.BotAPI
	sender    Sender
	responder Responder
	log       zerolog.Logger
}

func New(token string, responder Responder, log zerolog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	b := newBot(api, responder, log)
	b.api = api
	return b, nil
}

func newBot(sender Sender, responder Responder, log zerolog.Logger) *Bot {
	return &Bot{
		sender:    sender,
		responder: responder,
		log:       log,
	}
}

// Start polls for updates until ctx is cancelled. Updates are handled one at
// a time in arrival order.
func (b *Bot) Start(ctx context.Context) error {
	b.log.Info().Str("account", b.api.Self.UserName).Msg("authorized on Telegram")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.Chat == nil {
		return
	}

	log := b.log.With().Int64("chat_id", msg.Chat.ID).Int("update_id", update.UpdateID).Logger()
	ctx = logger.WithContext(ctx, log)

	if msg.IsCommand() {
		switch msg.Command() {
		case "start", "help":
			b.sendText(log, msg.Chat.ID, startText)
			return
		}
	}

	reply := b.responder.HandleMessage(ctx, msg.Text)
	if reply.Special != nil {
		b.sendSpecial(log, msg.Chat.ID, reply.Special)
		return
	}
	b.sendText(log, msg.Chat.ID, reply.Text)
}

func (b *Bot) sendSpecial(log zerolog.Logger, chatID int64, special *handlers.SpecialPayload) {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FilePath(special.ImagePath))
	photo.Caption = special.Text
	if _, err := b.sender.Send(photo); err != nil {
		log.Warn().Err(err).Str("image", special.ImagePath).Msg("failed to send photo, sending text")
		b.sendText(log, chatID, special.Text)
	}
}

func (b *Bot) sendText(log zerolog.Logger, chatID int64, text string) {
	if _, err := b.sender.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Error().Err(err).Msg("failed to send message")
	}
}
