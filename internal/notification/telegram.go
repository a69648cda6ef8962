package notification

import (
	"context"
	"fmt"

	"github.com/Kaywuyep/alx-travel-app-0x00/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

const dateFormat = "02.01.2006"

// TelegramNotifier posts booking activity to an operations channel.
// Guests are opaque ids here, so messages go to one configured chat
// rather than to individual users.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, b *domain.Booking, l *domain.Listing) {
	text := fmt.Sprintf(
		"*New booking*\n\n"+"Listing: %s (%s)\n"+"Stay: %s to %s\n"+"Guests: %d\n"+"Total: %.2f",
		l.Title, l.Location,
		b.StartDate.Format(dateFormat), b.EndDate.Format(dateFormat),
		b.Guests, b.TotalPrice,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingConfirmed(ctx context.Context, b *domain.Booking, l *domain.Listing) {
	text := fmt.Sprintf(
		"*Booking confirmed*\n\n"+"Listing: %s (%s)\n"+"Stay: %s to %s",
		l.Title, l.Location,
		b.StartDate.Format(dateFormat), b.EndDate.Format(dateFormat),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, b *domain.Booking, l *domain.Listing) {
	text := fmt.Sprintf(
		"*Booking cancelled*\n\n"+"Listing: %s (%s)\n"+"Stay: %s to %s",
		l.Title, l.Location,
		b.StartDate.Format(dateFormat), b.EndDate.Format(dateFormat),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.chatID == 0 {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
