package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/crowdlaunch/challenge-backend/internal/config"
	"github.com/crowdlaunch/challenge-backend/internal/entity"
)

// Notifier posts new help requests to an operations chat. It is optional
// infrastructure: when no bot token is configured every call is a no-op, and
// send failures are logged but never propagated to the intake path.
type Notifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger *zap.Logger
}

func NewNotifier(cfg config.TelegramConfig, logger *zap.Logger) (*Notifier, error) {
	if cfg.BotToken == "" {
		logger.Info("telegram notifier disabled: no bot token configured")
		return &Notifier{logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("initialize telegram bot: %w", err)
	}

	logger.Info("telegram notifier enabled",
		zap.String("bot_username", bot.Self.UserName),
		zap.Int64("chat_id", cfg.ChatID),
	)

	return &Notifier{
		bot:    bot,
		chatID: cfg.ChatID,
		logger: logger,
	}, nil
}

// NotifyHelpRequest sends a short summary of the help request to the
// configured chat. Best-effort only.
func (n *Notifier) NotifyHelpRequest(ctx context.Context, req *entity.HelpRequest) {
	if n.bot == nil {
		return
	}

	text := fmt.Sprintf(
		"New help request #%d\nType: %s\nUrgency: %s\nFrom: %s\n\n%s",
		req.ID, req.SupportType, req.Urgency, req.Email, req.Message,
	)

	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.bot.Send(msg); err != nil {
		ctxzap.Warn(ctx, "failed to send telegram notification",
			zap.Int64("help_request_id", req.ID),
			zap.Error(err),
		)
		return
	}

	ctxzap.Info(ctx, "telegram notification sent", zap.Int64("help_request_id", req.ID))
}
