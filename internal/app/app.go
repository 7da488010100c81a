package app

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"sync"
	"time"

	"github.com/Aryant96/telegram-pdf-to-word-bot/internal/capability"
	"github.com/Aryant96/telegram-pdf-to-word-bot/internal/logger"
	"github.com/Aryant96/telegram-pdf-to-word-bot/internal/model"
	"github.com/Aryant96/telegram-pdf-to-word-bot/internal/service"
	"github.com/Aryant96/telegram-pdf-to-word-bot/pkg/telegram"
)

const (
	creditCmd = "/credit"
	meCmd     = "/me"
	startCmd  = "/start"
)

// Menu labels, matched exactly against message text.
const (
	menuPDFToWord   = "📄 PDF → Word"
	menuSummaryPDF  = "🧾 Summarize PDF"
	menuSummaryWord = "📑 Summarize Word"
	menuSummaryText = "✍ Summarize Text"
	menuScanToText  = "🔤 Scan to Text (PDF)"
)

var menuModes = map[string]model.Mode{
	menuPDFToWord:   model.ModePDFToWord,
	menuSummaryPDF:  model.ModeSummaryPDF,
	menuSummaryWord: model.ModeSummaryWord,
	menuSummaryText: model.ModeSummaryText,
	menuScanToText:  model.ModeOCRPDF,
}

var modePrompts = map[model.Mode]string{
	model.ModePDFToWord:   "\"PDF → Word\" mode selected ✅\nSend me the PDF file.",
	model.ModeSummaryPDF:  "\"Summarize PDF\" mode selected ✅\nSend me the PDF file.",
	model.ModeSummaryWord: "\"Summarize Word\" mode selected ✅\nSend me the Word file.",
	model.ModeSummaryText: "\"Summarize Text\" mode selected ✅\nPaste your text here and I'll summarize it.",
	model.ModeOCRPDF:      "\"Scan to Text\" mode selected ✅\nSend me the scanned or image-based PDF.",
}

const (
	msgStartOver = "Press /start and pick one of the modes from the menu 🌱"
	msgNoAccess  = "You're out of uses ❌\n" +
		"Your one free use has been spent.\n" +
		"Contact the admin to top up your credits 🌱"
	msgLedgerDown = "I can't check your access right now 😔\nTry again in a bit."
)

// BotClient is the part of the Telegram client the app drives.
type BotClient interface {
	GetUpdates(ctx context.Context, offset int) ([]telegram.Update, error)
	SendMessage(ctx context.Context, chatID int64, text string, keyboard [][]string) error
	SendDocument(ctx context.Context, chatID int64, filename string, data []byte) error
	SetCommands(ctx context.Context, commands []telegram.BotCommand) error
}

// Authorizer decides whether a sender may run privileged commands.
type Authorizer func(senderID int64) bool

// StaticAdmin authorizes exactly one configured identity. A zero adminID
// authorizes nobody.
func StaticAdmin(adminID int64) Authorizer {
	return func(senderID int64) bool {
		return adminID != 0 && senderID == adminID
	}
}

// App routes inbound messages to commands, menu selections and the
// transformation capabilities.
type App struct {
	ledger *service.Ledger
	modes  *service.ModeRouter
	tg     BotClient
	caps   map[model.Mode]capability.Capability
	authz  Authorizer
}

func New(ledger *service.Ledger, modes *service.ModeRouter, tg BotClient, caps map[model.Mode]capability.Capability, authz Authorizer) *App {
	return &App{
		ledger: ledger,
		modes:  modes,
		tg:     tg,
		caps:   caps,
		authz:  authz,
	}
}

func (a *App) Run(ctx context.Context) error {
	a.setCommands(ctx)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		a.handleUpdates(ctx)
	}()

	<-ctx.Done()
	wg.Wait()
	return nil
}

func (a *App) handleUpdates(ctx context.Context) {
	offset := 0
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		updates, err := a.tg.GetUpdates(ctx, offset)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Error().Err(err).Msg("get updates")
			time.Sleep(time.Second)
			continue
		}
		for _, u := range updates {
			offset = u.UpdateID + 1
			m := u.Message
			if m == nil {
				m = u.EditedMessage
			}
			if m == nil {
				continue
			}
			// each message is its own unit of work; only the ledger
			// serializes concurrent attempts by the same user
			go a.handleMessage(ctx, m)
		}
	}
}

// handleMessage classifies one inbound message: admin command, self-status,
// session start, menu selection, mode-bound content, or free text.
func (a *App) handleMessage(ctx context.Context, m *telegram.Message) {
	chatID := m.Chat.ID
	userID := chatID
	if m.From != nil {
		userID = m.From.ID
	}

	switch {
	case strings.HasPrefix(m.Text, creditCmd):
		a.handleCreditCommand(ctx, m, userID)
		return
	case strings.HasPrefix(m.Text, meCmd):
		a.handleMeCommand(ctx, chatID, userID)
		return
	case m.Text == startCmd:
		a.handleStartCommand(ctx, chatID)
		return
	}

	if mode, ok := menuModes[m.Text]; ok {
		a.modes.Set(chatID, mode)
		a.send(ctx, chatID, modePrompts[mode], nil)
		return
	}

	mode := a.modes.Get(chatID)

	if mode == model.ModeSummaryText && m.Text != "" && !strings.HasPrefix(m.Text, "/") {
		a.dispatch(ctx, chatID, userID, mode, capability.Request{Text: m.Text})
		return
	}

	if m.Document != nil {
		a.handleDocument(ctx, m, userID, mode)
		return
	}

	if m.Text != "" {
		a.send(ctx, chatID, msgStartOver, nil)
	}
}

func (a *App) send(ctx context.Context, chatID int64, text string, keyboard [][]string) {
	if err := a.tg.SendMessage(ctx, chatID, text, keyboard); err != nil {
		logger.Error().Err(err).Int64("chat", chatID).Msg("send message")
	}
}

func (a *App) setCommands(ctx context.Context) {
	cmds := []telegram.BotCommand{
		{Command: "start", Description: "Show the mode menu"},
		{Command: "me", Description: "Show your remaining uses"},
	}
	if err := a.tg.SetCommands(ctx, cmds); err != nil {
		logger.Error().Err(err).Msg("set commands")
	}
}
