package ranking

import (
	"math"
	"sort"

	"github.com/jonathan/founder-fit/internal/types"
)

// RankModels scores every configured business model against the answers
// and returns the list sorted by percentage descending. The sort is
// stable, so equal percentages keep catalog declaration order and
// repeated calls with identical input always yield identical ordering.
//
// With no configured models the list is empty; callers must treat that
// as "scores unavailable" rather than synthesizing placeholders here.
func RankModels(answers *types.QuizAnswers) types.RankedModelList {
	scores := make([]types.ModelScore, 0, len(modelRules))
	for _, rule := range modelRules {
		scores = append(scores, types.ModelScore{
			ModelID:     rule.ID,
			DisplayName: rule.DisplayName,
			Category:    rule.Category,
			Percentage:  rule.percentage(answers),
		})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Percentage > scores[j].Percentage
	})

	return types.RankedModelList{Models: scores}
}

// percentage evaluates the rule's raw score and normalizes it onto
// 0-100 using the rule's own empirical range.
func (r modelRule) percentage(answers *types.QuizAnswers) int {
	raw := 0.0
	if answers != nil {
		raw = r.rawScore(answers)
	}

	pct := (raw - r.MinRaw) / (r.MaxRaw - r.MinRaw) * 100
	rounded := int(math.Round(pct))
	if rounded < 0 {
		rounded = 0
	}
	if rounded > 100 {
		rounded = 100
	}
	return rounded
}

func (r modelRule) rawScore(answers *types.QuizAnswers) float64 {
	raw := 0.0

	for _, w := range r.Likert {
		if value := w.Get(answers); value != 0 {
			raw += w.Coef * float64(value-3)
		}
	}

	for _, e := range r.Enums {
		raw += e.Points[e.Get(answers)]
	}

	if hours := answers.WeeklyTimeCommitment; hours != 0 {
		for _, tier := range r.Time {
			if hours >= tier.Min {
				raw += tier.Points
				break
			}
		}
	}

	if budget := answers.UpfrontInvestment; budget != 0 {
		for _, tier := range r.Budget {
			if budget >= tier.Min {
				raw += tier.Points
				break
			}
		}
	}

	for _, tool := range answers.FamiliarTools {
		raw += r.Tools[tool]
	}

	return raw
}
