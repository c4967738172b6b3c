package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/founder-fit/internal/types"
)

func TestRankModels_SortedDescending(t *testing.T) {
	answers := &types.QuizAnswers{
		TechSkillsRating:     5,
		SalesConfidence:      2,
		WeeklyTimeCommitment: 20,
		FamiliarTools:        []string{"coding"},
	}

	ranked := RankModels(answers)
	require.Len(t, ranked.Models, len(modelRules))

	for i := 1; i < len(ranked.Models); i++ {
		assert.GreaterOrEqual(t, ranked.Models[i-1].Percentage, ranked.Models[i].Percentage)
	}
}

func TestRankModels_PercentagesBounded(t *testing.T) {
	extreme := &types.QuizAnswers{
		TechSkillsRating:     5,
		SelfMotivationLevel:  5,
		RiskComfortLevel:     5,
		SalesConfidence:      5,
		WeeklyTimeCommitment: 80,
		UpfrontInvestment:    50000,
		FamiliarTools:        []string{"coding", "shopify", "analytics", "video-editing"},
	}

	for _, m := range RankModels(extreme).Models {
		assert.GreaterOrEqual(t, m.Percentage, 0)
		assert.LessOrEqual(t, m.Percentage, 100)
	}
}

func TestRankModels_Deterministic(t *testing.T) {
	answers := &types.QuizAnswers{
		CreativeWorkEnjoyment: 4,
		SocialMediaInterest:   4,
		ExistingAudience:      "medium",
	}

	first := RankModels(answers)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, RankModels(answers))
	}
}

func TestRankModels_StableTieOrder(t *testing.T) {
	// Empty answers score every rule at its neutral point; any models
	// that tie must keep catalog declaration order.
	ranked := RankModels(&types.QuizAnswers{})

	position := make(map[string]int, len(ranked.Models))
	for i, m := range ranked.Models {
		position[m.ModelID] = i
	}

	catalogOrder := make(map[string]int, len(modelRules))
	for i, r := range modelRules {
		catalogOrder[r.ID] = i
	}

	for i := 1; i < len(ranked.Models); i++ {
		prev, cur := ranked.Models[i-1], ranked.Models[i]
		if prev.Percentage == cur.Percentage {
			assert.Less(t, catalogOrder[prev.ModelID], catalogOrder[cur.ModelID],
				"tied models must keep declaration order")
		}
	}
	assert.Len(t, position, len(modelRules))
}

func TestRankModels_HighRiskProfileSurfacesRiskModels(t *testing.T) {
	answers := &types.QuizAnswers{
		RiskComfortLevel:     5,
		WeeklyTimeCommitment: 40,
		TechSkillsRating:     5,
	}

	top := RankModels(answers).TopMatches(3)
	require.Len(t, top, 3)

	riskHeavy := map[string]bool{"ecommerce": true, "high-ticket-sales": true, "saas-development": true}
	found := false
	for _, m := range top {
		if riskHeavy[m.ModelID] {
			found = true
		}
	}
	assert.True(t, found, "expected a risk-tolerant model in the top 3, got %v", top)
}

func TestRankModels_BottomMatchesWorstFirst(t *testing.T) {
	answers := &types.QuizAnswers{
		TechSkillsRating: 1,
		SalesConfidence:  1,
	}

	ranked := RankModels(answers)
	bottom := ranked.BottomMatches(3)
	require.Len(t, bottom, 3)

	assert.Equal(t, ranked.Models[len(ranked.Models)-1].ModelID, bottom[0].ModelID)
	assert.GreaterOrEqual(t, bottom[1].Percentage, bottom[0].Percentage)
	assert.GreaterOrEqual(t, bottom[2].Percentage, bottom[1].Percentage)
}

func TestRankModels_SalesProfileBeatsTechProfileOnSMMA(t *testing.T) {
	sales := RankModels(&types.QuizAnswers{SalesConfidence: 5, DirectCommunicationEnjoyment: 5})
	tech := RankModels(&types.QuizAnswers{TechSkillsRating: 5, FamiliarTools: []string{"coding"}})

	salesSMMA := findModel(t, sales, "smma")
	techSMMA := findModel(t, tech, "smma")
	assert.Greater(t, salesSMMA.Percentage, techSMMA.Percentage)
}

func findModel(t *testing.T, l types.RankedModelList, id string) types.ModelScore {
	t.Helper()
	for _, m := range l.Models {
		if m.ModelID == id {
			return m
		}
	}
	t.Fatalf("model %s not in ranked list", id)
	return types.ModelScore{}
}
