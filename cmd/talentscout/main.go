package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/auth"
	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/candidate"
	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/config"
	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/interviewer"
	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/llm"
	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/logger"
	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/prompts"
	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/scheduler"
	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/session"
	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/storage"
	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/telegram"
	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/vault"
	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/web"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		logger.Warn().Err(err).Msg(".env file not loaded")
	}

	cfg, err := config.Parse()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	logger.Init(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	catalogue, err := prompts.Load(cfg.PromptsFilePath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load prompts")
	}

	v, err := vault.New(cfg.EncryptionKey)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to init encryption")
	}
	if v.Generated() {
		logger.Warn().Msg("ENCRYPTION_KEY not set, using a per-process key: names saved in this run cannot be decrypted after restart")
	}

	client, err := llm.NewFactory(cfg).CreateClient(string(cfg.LLMProvider), cfg.OpenAIModel)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create llm client")
	}
	recruiter := interviewer.New(client, catalogue)

	store := storage.NewFileStore(cfg.CandidatesFilePath)
	candidates := candidate.NewService(store, v)

	sessions := session.NewManager(catalogue.Greeting, cfg.SessionTTL)
	interview := session.NewInterview(recruiter, candidates, catalogue.Marker)

	checker, err := auth.FromConfig(cfg.AdminPassword, cfg.AdminPasswordHash)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to init admin auth")
	}

	srv, err := web.New(web.Deps{
		Sessions:      sessions,
		Interview:     interview,
		Candidates:    candidates,
		Analyst:       recruiter,
		Auth:          checker,
		ConsentNotice: catalogue.ConsentNotice,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create web server")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.TelegramBotToken != "" {
		bot, err := telegram.New(cfg.TelegramBotToken, sessions, interview, catalogue.ConsentNotice)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to create telegram bot")
		}
		go bot.Start(ctx)
	}

	if cfg.ReportCron != "" {
		sched := scheduler.New(cfg.ReportCron)
		sched.SetReportFunction(scheduler.NewExporter(cfg.ReportDir, candidates.BulkReport).Job)
		if err := sched.Start(); err != nil {
			logger.Fatal().Err(err).Msg("failed to start scheduler")
		}
		defer sched.Stop()
	}

	go func() {
		if err := srv.Listen(cfg.HTTPAddr); err != nil {
			logger.Error().Err(err).Msg("http server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("http shutdown failed")
	}
}
