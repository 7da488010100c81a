package app

import (
	"context"
	"fmt"

	"github.com/Aryant96/telegram-pdf-to-word-bot/internal/logger"
)

// handleMeCommand reports the sender's entitlement state. Read-only.
func (a *App) handleMeCommand(ctx context.Context, chatID, userID int64) {
	freeUsed, paidRemaining, err := a.ledger.Status(ctx, userID)
	if err != nil {
		logger.Error().Err(err).Int64("user", userID).Msg("ledger status")
		a.send(ctx, chatID, msgLedgerDown, nil)
		return
	}
	free := "still available"
	if freeUsed {
		free = "used up"
	}
	msg := fmt.Sprintf("Your status:\n- free use: %s\n- paid credits left: %d", free, paidRemaining)
	a.send(ctx, chatID, msg, nil)
}
