package narrative

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/founder-fit/internal/llm"
	"github.com/jonathan/founder-fit/internal/types"
)

// Generator wraps an LLM client with the report's generation calls.
// Every method returns an error on any failure (transport, timeout,
// schema violation); substituting fallback content on error is the
// orchestrator's job, not this package's.
type Generator struct {
	client llm.Client
}

// NewGenerator creates a Generator backed by the given client.
func NewGenerator(client llm.Client) *Generator {
	return &Generator{client: client}
}

// Insights generates the preview summary, insight lines, and
// recommendations.
func (g *Generator) Insights(ctx context.Context, answers *types.QuizAnswers, traits types.TraitScores, top types.ModelScore) (types.NarrativeInsights, error) {
	raw, err := g.client.Generate(ctx, llm.Request{
		Prompt:      buildInsightsPrompt(answers, traits, top),
		Tier:        llm.TierStandard,
		MaxTokens:   800,
		Temperature: 0.7,
		JSON:        true,
	})
	if err != nil {
		return types.NarrativeInsights{}, fmt.Errorf("insights generation failed: %w", err)
	}

	if err := validateJSON(insightsSchema, raw); err != nil {
		return types.NarrativeInsights{}, fmt.Errorf("insights %w", err)
	}

	var insights types.NarrativeInsights
	if err := json.Unmarshal([]byte(raw), &insights); err != nil {
		return types.NarrativeInsights{}, fmt.Errorf("failed to parse insights: %w", err)
	}
	return insights, nil
}

// Characteristics generates the named profile characteristics.
func (g *Generator) Characteristics(ctx context.Context, traits types.TraitScores) ([]types.Characteristic, error) {
	raw, err := g.client.Generate(ctx, llm.Request{
		Prompt:      buildCharacteristicsPrompt(traits),
		Tier:        llm.TierStandard,
		MaxTokens:   600,
		Temperature: 0.7,
		JSON:        true,
	})
	if err != nil {
		return nil, fmt.Errorf("characteristics generation failed: %w", err)
	}

	if err := validateJSON(characteristicsSchema, raw); err != nil {
		return nil, fmt.Errorf("characteristics %w", err)
	}

	var payload struct {
		Characteristics []types.Characteristic `json:"characteristics"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse characteristics: %w", err)
	}
	return payload.Characteristics, nil
}

// Overview generates the long-form profile overview paragraphs.
func (g *Generator) Overview(ctx context.Context, answers *types.QuizAnswers, traits types.TraitScores, top types.ModelScore) (string, error) {
	text, err := g.client.Generate(ctx, llm.Request{
		Prompt:      buildOverviewPrompt(answers, traits, top),
		Tier:        llm.TierAdvanced,
		MaxTokens:   700,
		Temperature: 0.8,
	})
	if err != nil {
		return "", fmt.Errorf("overview generation failed: %w", err)
	}
	if text == "" {
		return "", fmt.Errorf("overview generation returned empty content")
	}
	return text, nil
}

// FitDescription generates the explanation of the top model match.
func (g *Generator) FitDescription(ctx context.Context, answers *types.QuizAnswers, traits types.TraitScores, top types.ModelScore) (string, error) {
	text, err := g.client.Generate(ctx, llm.Request{
		Prompt:      buildFitPrompt(answers, traits, top),
		Tier:        llm.TierLite,
		MaxTokens:   400,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("fit description generation failed: %w", err)
	}
	if text == "" {
		return "", fmt.Errorf("fit description generation returned empty content")
	}
	return text, nil
}

// AvoidDescription generates the explanation of the worst model match.
func (g *Generator) AvoidDescription(ctx context.Context, answers *types.QuizAnswers, traits types.TraitScores, worst types.ModelScore) (string, error) {
	text, err := g.client.Generate(ctx, llm.Request{
		Prompt:      buildAvoidPrompt(answers, traits, worst),
		Tier:        llm.TierLite,
		MaxTokens:   400,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("avoid description generation failed: %w", err)
	}
	if text == "" {
		return "", fmt.Errorf("avoid description generation returned empty content")
	}
	return text, nil
}
