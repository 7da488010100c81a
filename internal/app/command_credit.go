package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Aryant96/telegram-pdf-to-word-bot/internal/logger"
	"github.com/Aryant96/telegram-pdf-to-word-bot/pkg/telegram"
)

const creditUsage = "Usage:\n/credit USER_ID COUNT\nExample:\n/credit 123456789 10"

// handleCreditCommand is the only path that mutates another user's ledger
// entry. It rejects any sender the authorizer doesn't approve, before
// touching anything.
func (a *App) handleCreditCommand(ctx context.Context, m *telegram.Message, senderID int64) {
	chatID := m.Chat.ID
	if !a.authz(senderID) {
		a.send(ctx, chatID, "You are not the admin ❌", nil)
		return
	}

	parts := strings.Fields(m.Text)
	if len(parts) != 3 {
		a.send(ctx, chatID, creditUsage, nil)
		return
	}
	targetID, errID := strconv.ParseInt(parts[1], 10, 64)
	count, errCount := strconv.Atoi(parts[2])
	if errID != nil || errCount != nil {
		a.send(ctx, chatID, "USER_ID and COUNT must be numbers.", nil)
		return
	}
	if count <= 0 {
		a.send(ctx, chatID, "COUNT must be a positive number.", nil)
		return
	}

	if err := a.ledger.GrantCredits(ctx, targetID, count); err != nil {
		logger.Error().Err(err).Int64("target", targetID).Msg("grant credits")
		a.send(ctx, chatID, "Couldn't save the credits, try again.", nil)
		return
	}
	logger.Info().Int64("admin", senderID).Int64("target", targetID).Int("count", count).Msg("credits granted")
	a.send(ctx, chatID, fmt.Sprintf("Added %d credits for user %d ✅", count, targetID), nil)
}
