package studyguide

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/abhisek/mentorai/internal/document"
	"github.com/abhisek/mentorai/internal/llm"
)

// Generator produces document summaries.
type Generator struct {
	provider    llm.Provider
	maxTokens   int
	temperature float64
}

// New creates a summary Generator.
func New(provider llm.Provider) *Generator {
	return &Generator{provider: provider, maxTokens: 4096, temperature: llm.DefaultTemperature}
}

// Summarize asks the model for a structured summary of text.
func (g *Generator) Summarize(ctx context.Context, text, discipline, level string) (*Summary, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeSummary)

	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPrompt(document.Excerpt(text, document.ExcerptChars), discipline, level)},
		},
		Schema:      SummarySchema,
		MaxTokens:   g.maxTokens,
		Temperature: g.temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var s Summary
	if err := json.Unmarshal(resp.Content, &s); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}
	return &s, nil
}

// SummarizeOrDefault returns DefaultSummary when generation fails.
func (g *Generator) SummarizeOrDefault(ctx context.Context, text, discipline, level string) *Summary {
	s, err := g.Summarize(ctx, text, discipline, level)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("summary generation failed, using default summary")
		return DefaultSummary()
	}
	return s
}
