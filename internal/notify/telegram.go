// Package notify pushes critical-report alerts to a staff Telegram chat.
package notify

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"vozurbana/backend/internal/models"
)

// TelegramNotifier posts an alert message when a report classifies at the
// critical level. It satisfies denuncia.Notifier.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramNotifier returns nil without error when token is empty, so the
// caller can wire alerting in only when configured.
func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	if token == "" {
		return nil, nil
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to start telegram bot: %w", err)
	}
	return &TelegramNotifier{bot: bot, chatID: chatID}, nil
}

// NotificarCritica sends the alert. Delivery is best effort; failures are
// logged, never propagated to the submitter.
func (n *TelegramNotifier) NotificarCritica(d *models.Denuncia) {
	text := fmt.Sprintf(
		"🚨 Denúncia crítica #%d\n%s\n%s\nEndereço: %s",
		d.ID, d.Titulo, d.Descricao, d.EnderecoDenuncia,
	)
	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.bot.Send(msg); err != nil {
		log.Printf("notify: failed to send telegram alert for denuncia %d: %v", d.ID, err)
	}
}
