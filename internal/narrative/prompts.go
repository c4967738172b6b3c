// Package narrative produces the generated report content: prompt
// construction, schema-validated LLM calls, and the deterministic
// fallback content used when a call fails or times out.
package narrative

import (
	"fmt"
	"strings"

	"github.com/jonathan/founder-fit/internal/types"
)

// profileSummary renders the quiz profile as prompt context. Only
// answered fields appear, so prompts stay short for sparse quizzes.
func profileSummary(answers *types.QuizAnswers, traits types.TraitScores) string {
	var sb strings.Builder

	sb.WriteString("Trait scores (1.0-5.0 scale):\n")
	for _, trait := range types.AllTraits {
		sb.WriteString(fmt.Sprintf("- %s: %.1f\n", trait, traits.Get(trait)))
	}

	sb.WriteString("\nQuiz highlights:\n")
	if answers.WorkStylePreference != "" {
		sb.WriteString(fmt.Sprintf("- prefers %s work\n", answers.WorkStylePreference))
	}
	if answers.MainMotivation != "" {
		sb.WriteString(fmt.Sprintf("- main motivation: %s\n", answers.MainMotivation))
	}
	if answers.WeeklyTimeCommitment > 0 {
		sb.WriteString(fmt.Sprintf("- %d hours/week available\n", answers.WeeklyTimeCommitment))
	}
	if answers.UpfrontInvestment > 0 {
		sb.WriteString(fmt.Sprintf("- $%d upfront budget\n", answers.UpfrontInvestment))
	}
	if answers.MonthlyIncomeGoal > 0 {
		sb.WriteString(fmt.Sprintf("- $%d/month income goal\n", answers.MonthlyIncomeGoal))
	}
	if answers.FirstIncomeTimeline != "" {
		sb.WriteString(fmt.Sprintf("- wants first income: %s\n", answers.FirstIncomeTimeline))
	}
	if len(answers.FamiliarTools) > 0 {
		sb.WriteString(fmt.Sprintf("- familiar tools: %s\n", strings.Join(answers.FamiliarTools, ", ")))
	}

	return sb.String()
}

func buildInsightsPrompt(answers *types.QuizAnswers, traits types.TraitScores, top types.ModelScore) string {
	var sb strings.Builder
	sb.WriteString("You are an entrepreneurship coach reviewing a quiz-based founder profile.\n\n")
	sb.WriteString(profileSummary(answers, traits))
	sb.WriteString(fmt.Sprintf("\nBest-fit business model: %s (%d%% match).\n\n", top.DisplayName, top.Percentage))
	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n")
	sb.WriteString(`{
  "summary": "2-3 sentence personalized summary of this person's entrepreneurial profile",
  "key_insights": ["3-5 short insight lines about their strengths and working style"],
  "recommendations": ["3-5 concrete next-step recommendations for the best-fit model"]
}` + "\n\n")
	sb.WriteString("IMPORTANT: base everything on the profile above, no markdown, no explanation, no code blocks.\n")
	return sb.String()
}

func buildCharacteristicsPrompt(traits types.TraitScores) string {
	var sb strings.Builder
	sb.WriteString("Describe the defining characteristics of an entrepreneur with these trait scores.\n\n")
	for _, trait := range types.AllTraits {
		sb.WriteString(fmt.Sprintf("- %s: %.1f (1.0-5.0 scale)\n", trait, traits.Get(trait)))
	}
	sb.WriteString("\nReturn ONLY valid JSON matching this exact structure:\n")
	sb.WriteString(`{
  "characteristics": [
    {"title": "short characteristic name", "description": "one sentence grounded in the scores"}
  ]
}` + "\n\n")
	sb.WriteString("Return exactly 4 characteristics, strongest traits first. No markdown, no code blocks.\n")
	return sb.String()
}

func buildOverviewPrompt(answers *types.QuizAnswers, traits types.TraitScores, top types.ModelScore) string {
	var sb strings.Builder
	sb.WriteString("Write a profile overview for a personalized business-model report.\n\n")
	sb.WriteString(profileSummary(answers, traits))
	sb.WriteString(fmt.Sprintf("\nBest-fit business model: %s (%d%% match).\n\n", top.DisplayName, top.Percentage))
	sb.WriteString("Write 2 short paragraphs of plain text: who this person is as a potential founder, and how they work best. ")
	sb.WriteString("Address the reader as \"you\". No headings, no lists, no markdown.\n")
	return sb.String()
}

func buildFitPrompt(answers *types.QuizAnswers, traits types.TraitScores, top types.ModelScore) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Explain why %s (%d%% match) fits this founder profile.\n\n", top.DisplayName, top.Percentage))
	sb.WriteString(profileSummary(answers, traits))
	sb.WriteString("\nWrite one short paragraph of plain text addressed to the reader as \"you\". ")
	sb.WriteString("Tie the fit to specific traits and constraints above. No markdown.\n")
	return sb.String()
}

func buildAvoidPrompt(answers *types.QuizAnswers, traits types.TraitScores, worst types.ModelScore) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Explain why %s (%d%% match) is a poor fit for this founder profile right now.\n\n", worst.DisplayName, worst.Percentage))
	sb.WriteString(profileSummary(answers, traits))
	sb.WriteString("\nWrite one short paragraph of plain text addressed to the reader as \"you\". ")
	sb.WriteString("Be direct but constructive; say what would need to change first. No markdown.\n")
	return sb.String()
}
