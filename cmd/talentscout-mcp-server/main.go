package main

import (
	"context"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/candidate"
	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/config"
	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/interviewer"
	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/llm"
	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/logger"
	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/prompts"
	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/storage"
	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/vault"
)

func main() {
	// stdout carries the protocol
	logger.Init(logger.Config{Level: "info", Format: "json", Output: os.Stderr})

	if err := config.LoadDotEnv(); err != nil {
		logger.Warn().Err(err).Msg(".env file not loaded")
	}
	cfg, err := config.Parse()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	logger.Init(logger.Config{Level: cfg.LogLevel, Format: "json", Output: os.Stderr})

	catalogue, err := prompts.Load(cfg.PromptsFilePath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load prompts")
	}
	v, err := vault.New(cfg.EncryptionKey)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to init encryption")
	}
	if v.Generated() {
		logger.Warn().Msg("ENCRYPTION_KEY not set, stored names will be shown as cipher text")
	}
	client, err := llm.NewFactory(cfg).CreateClient(string(cfg.LLMProvider), cfg.OpenAIModel)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create llm client")
	}

	candidates := candidate.NewService(storage.NewFileStore(cfg.CandidatesFilePath), v)
	tools := NewAdminTools(candidates, interviewer.New(client, catalogue))

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "talentscout-admin-mcp",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_candidates",
		Description: "Lists screened candidates with decrypted names, role, experience, tech stack and date",
	}, tools.ListCandidates)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_candidate_transcript",
		Description: "Returns the full interview transcript of one candidate",
	}, tools.GetTranscript)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "analyze_candidate",
		Description: "Runs the AI hiring analysis (technical, soft skills, recommendation) on one candidate",
	}, tools.AnalyzeCandidate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "daily_intake_stats",
		Description: "Counts candidates screened on a day, broken down by position and technology",
	}, tools.IntakeStats)

	logger.Info().Str("store", cfg.CandidatesFilePath).Msg("starting talentscout mcp server on stdio")
	if err := server.Run(context.Background(), mcp.NewStdioTransport()); err != nil {
		logger.Fatal().Err(err).Msg("mcp server failed")
	}
}
