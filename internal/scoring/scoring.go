package scoring

import (
	"math"

	"github.com/jonathan/founder-fit/internal/types"
)

// Likert answers pivot around the scale midpoint; a 3 is neutral.
const likertMidpoint = 3

// ComputeTraitScores derives the twelve normalized trait scores from a
// set of quiz answers. The function is pure and total: it never fails,
// unanswered fields contribute nothing, and identical input always
// produces identical output.
func ComputeTraitScores(answers *types.QuizAnswers) types.TraitScores {
	raw := make(map[types.Trait]float64, len(types.AllTraits))

	if answers != nil {
		accumulate(answers, raw)
	}

	var scores types.TraitScores
	for _, trait := range types.AllTraits {
		scores.Set(trait, normalize(trait, raw[trait]))
	}
	return scores
}

// accumulate walks every contribution table and adds the matched deltas
// into the raw trait accumulators.
func accumulate(answers *types.QuizAnswers, raw map[types.Trait]float64) {
	for _, field := range likertFields {
		value := field.Get(answers)
		if value == 0 {
			continue
		}
		offset := float64(value - likertMidpoint)
		for _, w := range field.Coeffs {
			raw[w.Trait] += w.Delta * offset
		}
	}

	for _, field := range enumFields {
		deltas, ok := field.Deltas[field.Get(answers)]
		if !ok {
			continue
		}
		for _, w := range deltas {
			raw[w.Trait] += w.Delta
		}
	}

	for _, field := range bucketFields {
		value := field.Get(answers)
		if value == 0 {
			continue
		}
		for _, tier := range field.Buckets {
			if value >= tier.Min {
				for _, w := range tier.Deltas {
					raw[w.Trait] += w.Delta
				}
				break
			}
		}
	}

	for _, tool := range answers.FamiliarTools {
		for _, w := range toolContributions[tool] {
			raw[w.Trait] += w.Delta
		}
	}
}

// normalize maps a raw accumulator onto the 1.0-5.0 scale using the
// trait's empirical range, saturating at the ends, rounded to one
// decimal place.
func normalize(trait types.Trait, raw float64) float64 {
	bounds := traitRanges[trait]
	score := 1 + ((raw-bounds.Min)/(bounds.Max-bounds.Min))*4
	if score < 1 {
		score = 1
	}
	if score > 5 {
		score = 5
	}
	return math.Round(score*10) / 10
}
