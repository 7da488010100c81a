package main

import (
	"context"

	"github.com/joho/godotenv"

	"github.com/Aryant96/telegram-pdf-to-word-bot/internal/app"
	"github.com/Aryant96/telegram-pdf-to-word-bot/internal/capability"
	"github.com/Aryant96/telegram-pdf-to-word-bot/internal/config"
	"github.com/Aryant96/telegram-pdf-to-word-bot/internal/logger"
	"github.com/Aryant96/telegram-pdf-to-word-bot/internal/model"
	"github.com/Aryant96/telegram-pdf-to-word-bot/internal/repository"
	"github.com/Aryant96/telegram-pdf-to-word-bot/internal/service"
	"github.com/Aryant96/telegram-pdf-to-word-bot/pkg/openai"
	"github.com/Aryant96/telegram-pdf-to-word-bot/pkg/telegram"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		logger.Init("pdf-to-word-bot", true)
		logger.Fatal().Err(err).Msg("load config")
	}
	logger.Init("pdf-to-word-bot", cfg.Debug)

	repo, err := newEntitlementRepository(cfg)
	if err != nil {
		logger.Fatal().Err(err).Str("backend", cfg.LedgerBackend).Msg("init ledger backend")
	}

	tgClient := telegram.NewClient(cfg.TelegramToken)
	aiClient := openai.NewClient(cfg.OpenAIToken, cfg.OpenAIBaseURL, cfg.OpenAIModel)

	ledger := service.NewLedger(repo)
	modes := service.NewModeRouter()

	caps := map[model.Mode]capability.Capability{
		model.ModePDFToWord:   &capability.PDFToWord{Files: tgClient},
		model.ModeSummaryPDF:  &capability.SummaryPDF{Files: tgClient},
		model.ModeSummaryWord: &capability.SummaryWord{Files: tgClient},
		model.ModeSummaryText: &capability.SummaryText{},
		model.ModeOCRPDF:      &capability.ScanToText{Files: tgClient, AI: aiClient},
	}

	application := app.New(ledger, modes, tgClient, caps, app.StaticAdmin(cfg.AdminID))

	logger.Info().Str("ledger", cfg.LedgerBackend).Msg("bot starting")
	if err := application.Run(context.Background()); err != nil {
		logger.Fatal().Err(err).Msg("run")
	}
}

func newEntitlementRepository(cfg *config.Config) (repository.EntitlementRepository, error) {
	switch cfg.LedgerBackend {
	case config.LedgerPostgres:
		return repository.NewPostgresEntitlementRepository(cfg.DatabaseURL)
	case config.LedgerRedis:
		return repository.NewRedisEntitlementRepository(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	default:
		return repository.NewMemoryEntitlementRepository(), nil
	}
}
