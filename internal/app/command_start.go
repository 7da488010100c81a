package app

import "context"

func mainMenuKeyboard() [][]string {
	return [][]string{
		{menuPDFToWord},
		{menuSummaryPDF, menuSummaryWord},
		{menuSummaryText},
		{menuScanToText},
	}
}

// handleStartCommand shows the main menu and resets the chat's mode.
func (a *App) handleStartCommand(ctx context.Context, chatID int64) {
	a.send(ctx, chatID, "Hi 👋\nPick one of the options:", mainMenuKeyboard())
	a.modes.Reset(chatID)
}

func (a *App) sendMainMenu(ctx context.Context, chatID int64) {
	a.send(ctx, chatID, "Pick one of the options:", mainMenuKeyboard())
}
