package narrative

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/founder-fit/internal/types"
)

func TestFallbackInsights_ShapeMatchesGenerated(t *testing.T) {
	answers := &types.QuizAnswers{
		RiskComfortLevel:     5,
		SelfMotivationLevel:  2,
		TechSkillsRating:     3,
		WeeklyTimeCommitment: 25,
	}

	insights := FallbackInsights(answers, testTop)

	// Same fields, same types as AI-derived content; consumers cannot
	// tell the difference.
	assert.NotEmpty(t, insights.Summary)
	assert.NotEmpty(t, insights.KeyInsights)
	assert.NotEmpty(t, insights.Recommendations)
}

func TestFallbackInsights_ThresholdPhrasing(t *testing.T) {
	high := FallbackInsights(&types.QuizAnswers{RiskComfortLevel: 5}, testTop)
	assert.Contains(t, high.KeyInsights[0], "High risk tolerance")

	moderate := FallbackInsights(&types.QuizAnswers{RiskComfortLevel: 3}, testTop)
	assert.Contains(t, moderate.KeyInsights[0], "Moderate risk tolerance")
}

func TestFallbackInsights_Deterministic(t *testing.T) {
	answers := &types.QuizAnswers{RiskComfortLevel: 4, WeeklyTimeCommitment: 10}
	assert.Equal(t, FallbackInsights(answers, testTop), FallbackInsights(answers, testTop))
}

func TestFallbackCharacteristics_PicksStrongestTraits(t *testing.T) {
	traits := types.TraitScores{
		RiskTolerance: 4.8,
		TechComfort:   4.5,
		Discipline:    4.2,
		Creativity:    4.0,
		SocialComfort: 1.2,
	}

	chars := FallbackCharacteristics(traits)
	require.Len(t, chars, 4)

	titles := make([]string, 0, 4)
	for _, c := range chars {
		assert.NotEmpty(t, c.Title)
		assert.NotEmpty(t, c.Description)
		titles = append(titles, c.Title)
	}
	assert.Contains(t, titles, "Risk-Comfortable")
	assert.NotContains(t, titles, "People-Facing")
}

func TestFallbackCharacteristics_TiesUseCanonicalOrder(t *testing.T) {
	// All-equal scores: the first four traits in canonical order win.
	chars := FallbackCharacteristics(types.TraitScores{})
	require.Len(t, chars, 4)
	assert.Equal(t, fallbackCharacteristicPool[types.TraitSocialComfort].Title, chars[0].Title)
	assert.Equal(t, fallbackCharacteristicPool[types.TraitDiscipline].Title, chars[1].Title)
}

func TestFallbackFitAndAvoid_NonEmpty(t *testing.T) {
	answers := &types.QuizAnswers{WeeklyTimeCommitment: 8, RiskComfortLevel: 2}
	worst := types.ModelScore{ModelID: "ecommerce", DisplayName: "E-commerce / Dropshipping", Percentage: 12}

	fit := FallbackFitDescription(answers, testTop)
	avoid := FallbackAvoidDescription(answers, worst)

	assert.Contains(t, fit, testTop.DisplayName)
	assert.Contains(t, avoid, worst.DisplayName)
	assert.Contains(t, avoid, "risk comfort")
}
