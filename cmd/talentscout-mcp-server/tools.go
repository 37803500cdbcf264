package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/candidate"
	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/history"
	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/interviewer"
)

// ListCandidatesParams filters list_candidates.
type ListCandidatesParams struct {
	Position string `json:"position,omitempty" mcp:"only candidates whose desired position contains this text (case-insensitive)"`
}

// CandidateIndexParams addresses one stored record.
type CandidateIndexParams struct {
	Index int `json:"index" mcp:"record index as shown by list_candidates"`
}

// IntakeStatsParams selects the day for daily_intake_stats.
type IntakeStatsParams struct {
	Date string `json:"date,omitempty" mcp:"day in YYYY-MM-DD format, defaults to today"`
}

type analyst interface {
	Analyze(ctx context.Context, transcript []history.Message) string
}

// AdminTools exposes the candidate store to MCP clients. Only analysis
// reaches outside the process.
type AdminTools struct {
	candidates *candidate.Service
	analyst    analyst
}

func NewAdminTools(candidates *candidate.Service, a analyst) *AdminTools {
	return &AdminTools{candidates: candidates, analyst: a}
}

func (t *AdminTools) ListCandidates(ctx context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[ListCandidatesParams]) (*mcp.CallToolResultFor[any], error) {
	list, err := t.candidates.List()
	if err != nil {
		return errorResult(fmt.Sprintf("❌ Failed to load candidates: %v", err)), nil
	}
	filter := strings.ToLower(strings.TrimSpace(params.Arguments.Position))

	var b strings.Builder
	shown := 0
	// List is newest first; report in store order.
	for i := len(list) - 1; i >= 0; i-- {
		c := list[i]
		if filter != "" && !strings.Contains(strings.ToLower(c.Position), filter) {
			continue
		}
		fmt.Fprintf(&b, "#%d | %s | %s | %s | %s | %s\n", c.Index, c.Name, c.Position, c.Experience, c.TechStack, c.Date)
		shown++
	}
	if shown == 0 {
		return textResult("No candidates found."), nil
	}
	return textResult(fmt.Sprintf("Candidates (%d):\n%s", shown, b.String())), nil
}

func (t *AdminTools) GetTranscript(ctx context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[CandidateIndexParams]) (*mcp.CallToolResultFor[any], error) {
	c, res := t.lookup(params.Arguments.Index)
	if res != nil {
		return res, nil
	}
	header := fmt.Sprintf("%s | %s | %s | %s\n\n", c.Name, c.Position, c.Experience, c.Date)
	return textResult(header + interviewer.Render(c.Transcript)), nil
}

func (t *AdminTools) AnalyzeCandidate(ctx context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[CandidateIndexParams]) (*mcp.CallToolResultFor[any], error) {
	c, res := t.lookup(params.Arguments.Index)
	if res != nil {
		return res, nil
	}
	return textResult(fmt.Sprintf("Analysis for %s:\n\n%s", c.Name, t.analyst.Analyze(ctx, c.Transcript))), nil
}

func (t *AdminTools) IntakeStats(ctx context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[IntakeStatsParams]) (*mcp.CallToolResultFor[any], error) {
	day := t.candidates.Today()
	if raw := strings.TrimSpace(params.Arguments.Date); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return errorResult(fmt.Sprintf("❌ Invalid date %q, expected YYYY-MM-DD", raw)), nil
		}
		day = parsed
	}
	stats, err := t.candidates.Intake(day)
	if err != nil {
		return errorResult(fmt.Sprintf("❌ Failed to load candidates: %v", err)), nil
	}
	return textResult(stats.GenerateReportSummary()), nil
}

func (t *AdminTools) lookup(index int) (candidate.Summary, *mcp.CallToolResultFor[any]) {
	c, err := t.candidates.Get(index)
	if errors.Is(err, candidate.ErrNotFound) {
		return c, errorResult(fmt.Sprintf("❌ No candidate at index %d", index))
	}
	if err != nil {
		return c, errorResult(fmt.Sprintf("❌ Failed to load candidate: %v", err))
	}
	return c, nil
}

func textResult(text string) *mcp.CallToolResultFor[any] {
	return &mcp.CallToolResultFor[any]{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(text string) *mcp.CallToolResultFor[any] {
	return &mcp.CallToolResultFor[any]{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
