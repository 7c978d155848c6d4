// Package notify pushes a short message to a Telegram chat when a sale is
// recorded. It is entirely optional: without the env vars the app simply runs
// without notifications.
package notify

import (
	"fmt"
	"os"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"github.com/avelar/printdesk/internal/domain"
)

type Telegram struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramFromEnv returns nil when TELEGRAM_BOT_TOKEN or TELEGRAM_CHAT_ID
// is unset or unusable.
func NewTelegramFromEnv() *Telegram {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	chat := os.Getenv("TELEGRAM_CHAT_ID")
	if token == "" || chat == "" {
		return nil
	}
	chatID, err := strconv.ParseInt(chat, 10, 64)
	if err != nil {
		log.Warn().Str("chat_id", chat).Msg("invalid TELEGRAM_CHAT_ID, notifications disabled")
		return nil
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		log.Warn().Err(err).Msg("telegram bot init failed, notifications disabled")
		return nil
	}
	return &Telegram{bot: bot, chatID: chatID}
}

func (t *Telegram) SaleCreated(s *domain.Sale) {
	text := fmt.Sprintf("New sale #%d: %.2f (%s, %s)", s.ID, s.Amount, s.PaymentMethod, s.Status)
	if s.Customer != nil {
		text += "\nCustomer: " + s.Customer.Name
	}
	if s.Product != nil {
		text += "\nService: " + s.Product.Service
	}
	if _, err := t.bot.Send(tgbotapi.NewMessage(t.chatID, text)); err != nil {
		log.Warn().Err(err).Int64("sale_id", s.ID).Msg("telegram notify failed")
	}
}
