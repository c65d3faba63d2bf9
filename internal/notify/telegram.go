// Package notify sends finished budgets to the shop's Telegram admin
// channel.
package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type Notifier struct {
	bot       *tgbotapi.BotAPI
	channelID int64
	logger    *zap.Logger
}

// New creates the notifier. An empty token disables it: every send becomes
// a logged no-op so the quoting flow never depends on Telegram being up.
func New(token string, channelID int64, logger *zap.Logger) (*Notifier, error) {
	if token == "" {
		return &Notifier{logger: logger}, nil
	}

	botAPI, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}

	logger.Info("Telegram notifier authorized",
		zap.String("username", botAPI.Self.UserName),
		zap.Int64("channel_id", channelID))

	return &Notifier{
		bot:       botAPI,
		channelID: channelID,
		logger:    logger,
	}, nil
}

// BudgetReady posts the formatted budget text to the admin channel.
func (n *Notifier) BudgetReady(text string) {
	if n.bot == nil || n.channelID == 0 {
		n.logger.Warn("Channel notifications disabled - no bot token or channel ID configured")
		return
	}

	msg := tgbotapi.NewMessage(n.channelID, text)
	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("Failed to send budget notification to channel",
			zap.Error(err))
	}
}
