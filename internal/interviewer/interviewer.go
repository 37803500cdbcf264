package interviewer

import (
	"context"
	"fmt"
	"strings"

	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/history"
	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/llm"
	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/logger"
	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/prompts"
)

var (
	converseParams = llm.Params{Temperature: 0.7, MaxTokens: 1024}
	analyzeParams  = llm.Params{Temperature: 0.2}
)

// Service turns completion calls into display text. It never returns an
// error: provider failures become an inline apology.
type Service struct {
	client  llm.Client
	prompts prompts.Catalogue
}

func New(client llm.Client, catalogue prompts.Catalogue) *Service {
	return &Service{client: client, prompts: catalogue}
}

// Converse sends the interview script followed by the whole transcript and
// returns the recruiter's next message.
func (s *Service) Converse(ctx context.Context, transcript []history.Message) string {
	msgs := make([]llm.Message, 0, len(transcript)+1)
	msgs = append(msgs, llm.Message{Role: llm.RoleSystem, Content: s.prompts.InterviewScript})
	msgs = append(msgs, history.ToLLM(history.WithoutSystem(transcript))...)

	resp, err := s.client.Generate(ctx, msgs, converseParams)
	if err != nil {
		logger.Warn().Err(err).Msg("converse failed")
		return fmt.Sprintf("I'm sorry, I'm having trouble connecting. (Error: %v)", err)
	}
	return resp.Content
}

// Analyze asks for a structured hiring assessment of a finished transcript.
func (s *Service) Analyze(ctx context.Context, transcript []history.Message) string {
	msgs := []llm.Message{
		{Role: llm.RoleSystem, Content: s.prompts.AnalysisPrompt},
		{Role: llm.RoleUser, Content: "Transcript to analyze: " + Render(transcript)},
	}
	resp, err := s.client.Generate(ctx, msgs, analyzeParams)
	if err != nil {
		logger.Warn().Err(err).Msg("analysis failed")
		return fmt.Sprintf("Analysis unavailable. (Error: %v)", err)
	}
	return resp.Content
}

// Render flattens a transcript into "ROLE: content" lines.
func Render(transcript []history.Message) string {
	var b strings.Builder
	for i, m := range transcript {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strings.ToUpper(m.Role))
		b.WriteString(": ")
		b.WriteString(m.Content)
	}
	return b.String()
}
