package narrative

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/founder-fit/internal/llm"
	"github.com/jonathan/founder-fit/internal/types"
)

// stubClient returns a canned response or error for every call.
type stubClient struct {
	response string
	err      error
	lastReq  llm.Request
}

func (s *stubClient) Generate(_ context.Context, req llm.Request) (string, error) {
	s.lastReq = req
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubClient) GetModel(llm.ModelTier) string { return "stub-model" }
func (s *stubClient) Close() error                  { return nil }

var testTop = types.ModelScore{ModelID: "freelancing", DisplayName: "Freelancing", Category: "services", Percentage: 84}

func TestInsights_ParsesValidResponse(t *testing.T) {
	client := &stubClient{response: `{
		"summary": "A disciplined solo builder.",
		"key_insights": ["Strong focus", "High tech comfort"],
		"recommendations": ["Start freelancing this month"]
	}`}
	g := NewGenerator(client)

	insights, err := g.Insights(context.Background(), &types.QuizAnswers{}, types.TraitScores{}, testTop)
	require.NoError(t, err)
	assert.Equal(t, "A disciplined solo builder.", insights.Summary)
	assert.Len(t, insights.KeyInsights, 2)
	assert.True(t, client.lastReq.JSON)
}

func TestInsights_RejectsSchemaViolation(t *testing.T) {
	// Valid JSON, wrong shape: missing recommendations.
	client := &stubClient{response: `{"summary": "x", "key_insights": ["y"]}`}
	g := NewGenerator(client)

	_, err := g.Insights(context.Background(), &types.QuizAnswers{}, types.TraitScores{}, testTop)
	assert.Error(t, err)
}

func TestInsights_RejectsMalformedJSON(t *testing.T) {
	client := &stubClient{response: `not json at all`}
	g := NewGenerator(client)

	_, err := g.Insights(context.Background(), &types.QuizAnswers{}, types.TraitScores{}, testTop)
	assert.Error(t, err)
}

func TestInsights_PropagatesClientError(t *testing.T) {
	client := &stubClient{err: errors.New("network down")}
	g := NewGenerator(client)

	_, err := g.Insights(context.Background(), &types.QuizAnswers{}, types.TraitScores{}, testTop)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "network down")
}

func TestCharacteristics_ParsesValidResponse(t *testing.T) {
	client := &stubClient{response: `{"characteristics": [
		{"title": "Driven", "description": "Pushes through."},
		{"title": "Tech-Fluent", "description": "Learns tools fast."}
	]}`}
	g := NewGenerator(client)

	chars, err := g.Characteristics(context.Background(), types.TraitScores{})
	require.NoError(t, err)
	require.Len(t, chars, 2)
	assert.Equal(t, "Driven", chars[0].Title)
}

func TestCharacteristics_RejectsEmptyList(t *testing.T) {
	client := &stubClient{response: `{"characteristics": []}`}
	g := NewGenerator(client)

	_, err := g.Characteristics(context.Background(), types.TraitScores{})
	assert.Error(t, err)
}

func TestFitDescription_RejectsEmptyContent(t *testing.T) {
	client := &stubClient{response: ""}
	g := NewGenerator(client)

	_, err := g.FitDescription(context.Background(), &types.QuizAnswers{}, types.TraitScores{}, testTop)
	assert.Error(t, err)
}

func TestOverview_ReturnsPlainText(t *testing.T) {
	client := &stubClient{response: "You are a builder.\n\nYou work best alone."}
	g := NewGenerator(client)

	text, err := g.Overview(context.Background(), &types.QuizAnswers{}, types.TraitScores{}, testTop)
	require.NoError(t, err)
	assert.Contains(t, text, "builder")
	assert.False(t, client.lastReq.JSON)
}
