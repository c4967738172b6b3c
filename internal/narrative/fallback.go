package narrative

import (
	"fmt"
	"strings"

	"github.com/jonathan/founder-fit/internal/types"
)

// Deterministic fallback content. Derived purely from quiz thresholds so
// a failed generation call degrades quality, never shape: every field a
// consumer reads is populated the same way AI content would be.

// levelPhrase maps a Likert answer onto a high/moderate/low phrase.
func levelPhrase(value int, subject string) string {
	switch {
	case value >= 4:
		return fmt.Sprintf("High %s", subject)
	case value >= 3:
		return fmt.Sprintf("Moderate %s", subject)
	case value >= 1:
		return fmt.Sprintf("Developing %s", subject)
	default:
		return fmt.Sprintf("Moderate %s", subject)
	}
}

// FallbackInsights builds threshold-based preview content.
func FallbackInsights(answers *types.QuizAnswers, top types.ModelScore) types.NarrativeInsights {
	insights := []string{
		levelPhrase(answers.RiskComfortLevel, "risk tolerance"),
		levelPhrase(answers.SelfMotivationLevel, "self-motivation"),
		levelPhrase(answers.TechSkillsRating, "comfort with technology"),
	}
	if answers.WeeklyTimeCommitment >= 20 {
		insights = append(insights, fmt.Sprintf("Substantial time commitment (%d hours/week)", answers.WeeklyTimeCommitment))
	} else if answers.WeeklyTimeCommitment > 0 {
		insights = append(insights, fmt.Sprintf("Part-time availability (%d hours/week)", answers.WeeklyTimeCommitment))
	}

	summary := fmt.Sprintf(
		"Your quiz profile points to %s as your strongest starting point, with a %d%% compatibility score. "+
			"Your answers show a working style that matches how this model earns and grows.",
		top.DisplayName, top.Percentage)

	recommendations := []string{
		fmt.Sprintf("Start with a small, low-stakes first project in %s", top.DisplayName),
		"Block a consistent weekly schedule before committing money",
		"Revisit the quiz after 90 days to track how your profile shifts",
	}
	if answers.UpfrontInvestment > 0 && answers.UpfrontInvestment < 500 {
		recommendations = append(recommendations, "Favor zero-inventory, service-first offers while your budget grows")
	}

	return types.NarrativeInsights{
		Summary:         summary,
		KeyInsights:     insights,
		Recommendations: recommendations,
	}
}

// fallbackCharacteristicPool maps each trait to template content used
// when that trait is among the profile's strongest.
var fallbackCharacteristicPool = map[types.Trait]types.Characteristic{
	types.TraitSocialComfort:       {Title: "People-Facing", Description: "You are energized rather than drained by direct interaction, which widens the set of models you can run."},
	types.TraitDiscipline:          {Title: "Self-Directed", Description: "You follow through on routines without outside pressure, a decisive edge in slow-compounding models."},
	types.TraitRiskTolerance:       {Title: "Risk-Comfortable", Description: "Uncertainty reads as opportunity to you, so models with variable income do not rattle you."},
	types.TraitTechComfort:         {Title: "Tech-Fluent", Description: "New tools are an accelerant for you, not an obstacle, trimming weeks off most launch plans."},
	types.TraitStructurePreference: {Title: "Systems-Minded", Description: "You work best inside defined processes, which suits models built on repeatable operations."},
	types.TraitMotivation:          {Title: "Driven", Description: "Your goals pull you forward consistently, the main predictor of surviving the early unpaid phase."},
	types.TraitFeedbackResilience:  {Title: "Thick-Skinned", Description: "Criticism and rejection inform rather than derail you, which sales-adjacent models demand daily."},
	types.TraitCreativity:          {Title: "Creative", Description: "You naturally generate original angles, an advantage wherever content or positioning decides winners."},
	types.TraitConfidence:          {Title: "Self-Assured", Description: "You back your own judgment, which shortens decision loops and helps you ship before you feel ready."},
	types.TraitAdaptability:        {Title: "Adaptable", Description: "You adjust course quickly when conditions change, limiting the cost of early wrong guesses."},
	types.TraitFocusPreference:     {Title: "Deep-Focus", Description: "Long uninterrupted work sessions suit you, matching models that reward sustained building."},
	types.TraitResilience:          {Title: "Persistent", Description: "Setbacks cost you hours, not weeks, which keeps compounding models alive long enough to pay off."},
}

// FallbackCharacteristics picks the four characteristics for the
// profile's strongest traits, canonical trait order breaking ties.
func FallbackCharacteristics(traits types.TraitScores) []types.Characteristic {
	const count = 4

	picked := make([]types.Trait, 0, count)
	for len(picked) < count {
		var best types.Trait
		bestScore := -1.0
		for _, trait := range types.AllTraits {
			if contains(picked, trait) {
				continue
			}
			if s := traits.Get(trait); s > bestScore {
				best, bestScore = trait, s
			}
		}
		picked = append(picked, best)
	}

	out := make([]types.Characteristic, 0, count)
	for _, trait := range picked {
		out = append(out, fallbackCharacteristicPool[trait])
	}
	return out
}

func contains(list []types.Trait, t types.Trait) bool {
	for _, v := range list {
		if v == t {
			return true
		}
	}
	return false
}

// FallbackOverview builds the long-form overview from thresholds.
func FallbackOverview(answers *types.QuizAnswers, traits types.TraitScores, top types.ModelScore) string {
	var sb strings.Builder

	style := "independently"
	switch answers.WorkStylePreference {
	case "team":
		style = "alongside others"
	case "mix":
		style = "in a blend of solo and collaborative work"
	}

	sb.WriteString(fmt.Sprintf(
		"Your answers sketch a founder who works best %s and scores %.1f out of 5 on self-discipline. ", style, traits.Discipline))
	sb.WriteString(fmt.Sprintf(
		"Risk sits at %.1f on the same scale, which shapes how quickly you should put money rather than time on the line.\n\n",
		traits.RiskTolerance))
	sb.WriteString(fmt.Sprintf(
		"%s leads your ranking at a %d%% match. The models near the top of your list share its cadence: they reward the way you already prefer to work instead of forcing a new one.",
		top.DisplayName, top.Percentage))

	return sb.String()
}

// FallbackFitDescription explains the top match from thresholds.
func FallbackFitDescription(answers *types.QuizAnswers, top types.ModelScore) string {
	hours := answers.WeeklyTimeCommitment
	timeNote := "the hours you can give it"
	if hours >= 20 {
		timeNote = fmt.Sprintf("the %d hours a week you can commit", hours)
	} else if hours > 0 {
		timeNote = fmt.Sprintf("a part-time schedule of %d hours a week", hours)
	}

	return fmt.Sprintf(
		"%s scored %d%% against your profile, the strongest fit in your ranking. "+
			"It matches %s and the strengths your answers surfaced, so your early effort converts into progress instead of friction. "+
			"Start narrow, prove the first dollar, then widen.",
		top.DisplayName, top.Percentage, timeNote)
}

// FallbackAvoidDescription explains the worst match from thresholds.
func FallbackAvoidDescription(answers *types.QuizAnswers, worst types.ModelScore) string {
	reason := "it relies on strengths your answers rank lowest today"
	if answers.RiskComfortLevel > 0 && answers.RiskComfortLevel <= 2 {
		reason = "its income curve is too volatile for your current risk comfort"
	} else if answers.WeeklyTimeCommitment > 0 && answers.WeeklyTimeCommitment < 10 {
		reason = "it needs more weekly hours than you can give it right now"
	}

	return fmt.Sprintf(
		"%s came in at %d%%, the weakest fit in your ranking, because %s. "+
			"That is a mismatch, not a verdict; if your situation changes, retake the quiz and this ranking will move with it.",
		worst.DisplayName, worst.Percentage, reason)
}
