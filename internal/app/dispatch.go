package app

import (
	"context"

	"github.com/Aryant96/telegram-pdf-to-word-bot/internal/capability"
	"github.com/Aryant96/telegram-pdf-to-word-bot/internal/logger"
	"github.com/Aryant96/telegram-pdf-to-word-bot/internal/model"
	"github.com/Aryant96/telegram-pdf-to-word-bot/pkg/telegram"
)

const (
	mimePDF  = "application/pdf"
	mimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

const (
	msgConverting      = "Converting your PDF to Word, hold on... ⏳"
	msgPDFNoMode       = "You haven't told me what to do with this PDF.\nPick one of the options from the menu 🌱"
	msgWordNeedsMenu   = "To summarize a Word file, first pick \"" + menuSummaryWord + "\" from the menu."
	msgUnsupportedFile = "I don't support this file type. Send a PDF or a Word (docx) file."
)

// handleDocument routes an attached file by its mime type and the chat's
// current mode. A file that doesn't fit the mode never reaches the ledger.
func (a *App) handleDocument(ctx context.Context, m *telegram.Message, userID int64, mode model.Mode) {
	chatID := m.Chat.ID
	req := capability.Request{FileID: m.Document.FileID}

	switch m.Document.MimeType {
	case mimePDF:
		switch mode {
		case model.ModePDFToWord, model.ModeSummaryPDF, model.ModeOCRPDF:
			a.dispatch(ctx, chatID, userID, mode, req)
		default:
			a.send(ctx, chatID, msgPDFNoMode, nil)
			a.sendMainMenu(ctx, chatID)
		}
	case mimeDocx:
		if mode == model.ModeSummaryWord {
			a.dispatch(ctx, chatID, userID, mode, req)
		} else {
			a.send(ctx, chatID, msgWordNeedsMenu, nil)
		}
	default:
		a.send(ctx, chatID, msgUnsupportedFile, nil)
	}
}

// dispatch runs the mode's capability for an already validated submission.
// One allowance is consumed per admitted attempt, whether or not the
// capability produced usable output.
func (a *App) dispatch(ctx context.Context, chatID, userID int64, mode model.Mode, req capability.Request) {
	c, ok := a.caps[mode]
	if !ok {
		a.send(ctx, chatID, msgStartOver, nil)
		return
	}

	source, allowed, err := a.ledger.Consume(ctx, userID)
	if err != nil {
		logger.Error().Err(err).Int64("user", userID).Msg("ledger consume")
		a.send(ctx, chatID, msgLedgerDown, nil)
		return
	}
	if !allowed {
		a.send(ctx, chatID, msgNoAccess, nil)
		return
	}

	// progress note only once the attempt is admitted
	if mode == model.ModePDFToWord {
		a.send(ctx, chatID, msgConverting, nil)
	}

	res := c.Run(ctx, req)
	logger.Info().
		Int64("user", userID).
		Str("mode", string(mode)).
		Str("source", string(source)).
		Bool("delivered", res.Kind != capability.KindFailure).
		Msg("attempt consumed")

	switch res.Kind {
	case capability.KindDocument:
		if err := a.tg.SendDocument(ctx, chatID, res.FileName, res.Data); err != nil {
			logger.Error().Err(err).Int64("chat", chatID).Msg("send document")
		}
	default:
		// summaries and absorbed failures are both plain text replies
		a.send(ctx, chatID, res.Text, nil)
	}
}
