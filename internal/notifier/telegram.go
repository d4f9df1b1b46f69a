package notifier

import (
	"context"
	"errors"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"
	log "github.com/sirupsen/logrus"
)

// Telegram delivers plain text messages through the Bot API.
type Telegram struct {
	bot *telego.Bot
}

func NewTelegram(token string, opts ...telego.BotOption) (*Telegram, error) {
	if token == "" {
		return nil, errors.New("empty telegram bot token")
	}
	bot, err := telego.NewBot(token, opts...)
	if err != nil {
		return nil, errors.New("creating telegram bot error: " + err.Error())
	}
	return &Telegram{bot: bot}, nil
}

func (t *Telegram) Send(ctx context.Context, chatID int64, text string) error {
	msg, err := t.bot.SendMessage(ctx, tu.Message(tu.ID(chatID), text))
	if err != nil {
		return errors.New("sending telegram message error: " + err.Error())
	}
	log.WithFields(log.Fields{
		"chat_id":    chatID,
		"message_id": msg.MessageID,
	}).Debug("message sent")
	return nil
}
