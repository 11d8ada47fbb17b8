package notify

import (
	"time"

	tele "gopkg.in/telebot.v3"

	"ridebook/pkg/logger"
)

// OperatorBot pushes confirmed-booking alerts to the operator chat over
// Telegram. It is optional; callers skip construction when no token is set.
type OperatorBot struct {
	bot    *tele.Bot
	chatID int64
	log    logger.ILogger
}

func NewOperatorBot(token string, chatID int64, log logger.ILogger) (*OperatorBot, error) {
	pref := tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}
	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, err
	}
	return &OperatorBot{bot: b, chatID: chatID, log: log}, nil
}

func (o *OperatorBot) Alert(text string) error {
	_, err := o.bot.Send(tele.ChatID(o.chatID), text)
	if err != nil {
		o.log.Error("failed to send operator alert", logger.Error(err))
	}
	return err
}
