// Package scoring converts quiz answers into normalized trait scores.
//
// The contribution tables in this file are the single source of truth for
// how each answer field moves each trait. Every rule is a plain data
// literal so individual fields can be audited and unit-tested in
// isolation.
package scoring

import "github.com/jonathan/founder-fit/internal/types"

// weight is one trait delta contributed by an answer field.
type weight struct {
	Trait types.Trait
	Delta float64
}

// likertField contributes Delta * (value - 3) per trait, so a neutral
// answer contributes nothing and the extremes pull twice the coefficient
// in either direction. A zero value means the field was unanswered and
// contributes nothing.
type likertField struct {
	Name   string
	Get    func(a *types.QuizAnswers) int
	Coeffs []weight
}

// enumField contributes a fixed delta vector per categorical value.
// Values missing from the table (including the empty string) contribute
// nothing.
type enumField struct {
	Name   string
	Get    func(a *types.QuizAnswers) string
	Deltas map[string][]weight
}

// bucket is one threshold tier of a numeric field. Buckets are declared
// highest-first; the first tier whose Min the value reaches applies.
type bucket struct {
	Min    int
	Deltas []weight
}

// bucketField contributes the delta vector of the matched tier. A zero
// value means unanswered and contributes nothing.
type bucketField struct {
	Name    string
	Get     func(a *types.QuizAnswers) int
	Buckets []bucket
}

var likertFields = []likertField{
	{
		Name: "self_motivation_level",
		Get:  func(a *types.QuizAnswers) int { return a.SelfMotivationLevel },
		Coeffs: []weight{
			{types.TraitMotivation, 1.0},
			{types.TraitDiscipline, 0.6},
			{types.TraitConfidence, 0.4},
		},
	},
	{
		Name: "discipline_level",
		Get:  func(a *types.QuizAnswers) int { return a.DisciplineLevel },
		Coeffs: []weight{
			{types.TraitDiscipline, 1.2},
			{types.TraitStructurePreference, 0.4},
			{types.TraitResilience, 0.3},
		},
	},
	{
		Name: "organization_level",
		Get:  func(a *types.QuizAnswers) int { return a.OrganizationLevel },
		Coeffs: []weight{
			{types.TraitDiscipline, 0.8},
			{types.TraitStructurePreference, 0.8},
		},
	},
	{
		Name: "long_term_consistency",
		Get:  func(a *types.QuizAnswers) int { return a.LongTermConsistency },
		Coeffs: []weight{
			{types.TraitDiscipline, 0.7},
			{types.TraitResilience, 0.6},
			{types.TraitFocusPreference, 0.5},
		},
	},
	{
		Name: "systems_routines_enjoyment",
		Get:  func(a *types.QuizAnswers) int { return a.SystemsRoutinesEnjoy },
		Coeffs: []weight{
			{types.TraitStructurePreference, 1.0},
			{types.TraitDiscipline, 0.5},
			{types.TraitAdaptability, -0.3},
		},
	},
	{
		Name: "repetitive_tasks_feeling",
		Get:  func(a *types.QuizAnswers) int { return a.RepetitiveTasksFeeling },
		Coeffs: []weight{
			{types.TraitStructurePreference, 0.6},
			{types.TraitFocusPreference, 0.5},
			{types.TraitCreativity, -0.4},
		},
	},
	{
		Name: "risk_comfort_level",
		Get:  func(a *types.QuizAnswers) int { return a.RiskComfortLevel },
		Coeffs: []weight{
			{types.TraitRiskTolerance, 1.2},
			{types.TraitConfidence, 0.5},
			{types.TraitAdaptability, 0.3},
		},
	},
	{
		Name: "uncertainty_handling",
		Get:  func(a *types.QuizAnswers) int { return a.UncertaintyHandling },
		Coeffs: []weight{
			{types.TraitRiskTolerance, 0.8},
			{types.TraitAdaptability, 0.8},
			{types.TraitResilience, 0.4},
		},
	},
	{
		Name: "trial_error_comfort",
		Get:  func(a *types.QuizAnswers) int { return a.TrialErrorComfort },
		Coeffs: []weight{
			{types.TraitRiskTolerance, 0.5},
			{types.TraitAdaptability, 0.7},
			{types.TraitCreativity, 0.3},
		},
	},
	{
		Name: "tech_skills_rating",
		Get:  func(a *types.QuizAnswers) int { return a.TechSkillsRating },
		Coeffs: []weight{
			{types.TraitTechComfort, 1.2},
			{types.TraitConfidence, 0.3},
		},
	},
	{
		Name: "tool_learning_willingness",
		Get:  func(a *types.QuizAnswers) int { return a.ToolLearningWillingness },
		Coeffs: []weight{
			{types.TraitTechComfort, 0.8},
			{types.TraitAdaptability, 0.5},
			{types.TraitMotivation, 0.3},
		},
	},
	{
		Name: "direct_communication_enjoyment",
		Get:  func(a *types.QuizAnswers) int { return a.DirectCommunicationEnjoyment },
		Coeffs: []weight{
			{types.TraitSocialComfort, 1.0},
			{types.TraitConfidence, 0.5},
		},
	},
	{
		Name: "brand_face_comfort",
		Get:  func(a *types.QuizAnswers) int { return a.BrandFaceComfort },
		Coeffs: []weight{
			{types.TraitSocialComfort, 0.9},
			{types.TraitConfidence, 0.6},
			{types.TraitCreativity, 0.2},
		},
	},
	{
		Name: "social_media_interest",
		Get:  func(a *types.QuizAnswers) int { return a.SocialMediaInterest },
		Coeffs: []weight{
			{types.TraitSocialComfort, 0.6},
			{types.TraitCreativity, 0.4},
			{types.TraitTechComfort, 0.3},
		},
	},
	{
		Name: "ecosystem_participation",
		Get:  func(a *types.QuizAnswers) int { return a.EcosystemParticipation },
		Coeffs: []weight{
			{types.TraitSocialComfort, 0.7},
			{types.TraitMotivation, 0.3},
		},
	},
	{
		Name: "feedback_rejection_response",
		Get:  func(a *types.QuizAnswers) int { return a.FeedbackRejectionResponse },
		Coeffs: []weight{
			{types.TraitFeedbackResilience, 1.2},
			{types.TraitResilience, 0.5},
			{types.TraitConfidence, 0.3},
		},
	},
	{
		Name: "learning_curve_comfort",
		Get:  func(a *types.QuizAnswers) int { return a.LearningCurveComfort },
		Coeffs: []weight{
			{types.TraitFeedbackResilience, 0.6},
			{types.TraitResilience, 0.6},
			{types.TraitAdaptability, 0.4},
		},
	},
	{
		Name: "setback_recovery",
		Get:  func(a *types.QuizAnswers) int { return a.SetbackRecovery },
		Coeffs: []weight{
			{types.TraitResilience, 1.2},
			{types.TraitFeedbackResilience, 0.5},
			{types.TraitMotivation, 0.3},
		},
	},
	{
		// Creative enjoyment is the widest single signal in the quiz; it
		// moves six traits at once.
		Name: "creative_work_enjoyment",
		Get:  func(a *types.QuizAnswers) int { return a.CreativeWorkEnjoyment },
		Coeffs: []weight{
			{types.TraitCreativity, 1.2},
			{types.TraitStructurePreference, -0.4},
			{types.TraitMotivation, 0.3},
			{types.TraitConfidence, 0.2},
			{types.TraitAdaptability, 0.3},
			{types.TraitFocusPreference, -0.3},
		},
	},
	{
		Name: "sales_confidence",
		Get:  func(a *types.QuizAnswers) int { return a.SalesConfidence },
		Coeffs: []weight{
			{types.TraitConfidence, 0.8},
			{types.TraitSocialComfort, 0.6},
			{types.TraitFeedbackResilience, 0.4},
		},
	},
	{
		Name: "competitiveness_level",
		Get:  func(a *types.QuizAnswers) int { return a.CompetitivenessLevel },
		Coeffs: []weight{
			{types.TraitMotivation, 0.6},
			{types.TraitConfidence, 0.4},
			{types.TraitRiskTolerance, 0.3},
		},
	},
	{
		Name: "control_importance",
		Get:  func(a *types.QuizAnswers) int { return a.ControlImportance },
		Coeffs: []weight{
			{types.TraitStructurePreference, 0.5},
			{types.TraitFocusPreference, 0.3},
			{types.TraitAdaptability, -0.4},
		},
	},
	{
		Name: "passive_income_importance",
		Get:  func(a *types.QuizAnswers) int { return a.PassiveIncomeImportance },
		Coeffs: []weight{
			{types.TraitMotivation, 0.4},
			{types.TraitDiscipline, -0.2},
		},
	},
	{
		Name: "meaningful_contribution_importance",
		Get:  func(a *types.QuizAnswers) int { return a.MeaningfulContributionImp },
		Coeffs: []weight{
			{types.TraitMotivation, 0.7},
		},
	},
}

var enumFields = []enumField{
	{
		Name: "work_style_preference",
		Get:  func(a *types.QuizAnswers) string { return a.WorkStylePreference },
		Deltas: map[string][]weight{
			"solo": {{types.TraitFocusPreference, 0.8}, {types.TraitSocialComfort, -0.6}},
			"team": {{types.TraitSocialComfort, 0.8}, {types.TraitFocusPreference, -0.4}},
			"mix":  {{types.TraitAdaptability, 0.4}},
		},
	},
	{
		Name: "work_collaboration_preference",
		Get:  func(a *types.QuizAnswers) string { return a.WorkCollaborationPreference },
		Deltas: map[string][]weight{
			"mostly-solo":        {{types.TraitFocusPreference, 0.5}, {types.TraitSocialComfort, -0.4}},
			"some-collaboration": {{types.TraitAdaptability, 0.3}},
			"team-oriented":      {{types.TraitSocialComfort, 0.7}},
		},
	},
	{
		Name: "risk_perception",
		Get:  func(a *types.QuizAnswers) string { return a.RiskPerception },
		Deltas: map[string][]weight{
			"exciting":   {{types.TraitRiskTolerance, 1.0}, {types.TraitConfidence, 0.3}},
			"manageable": {{types.TraitRiskTolerance, 0.4}},
			"stressful":  {{types.TraitRiskTolerance, -1.0}, {types.TraitResilience, -0.3}},
		},
	},
	{
		Name: "work_structure_preference",
		Get:  func(a *types.QuizAnswers) string { return a.WorkStructurePreference },
		Deltas: map[string][]weight{
			"structured": {{types.TraitStructurePreference, 1.0}, {types.TraitAdaptability, -0.3}},
			"flexible":   {{types.TraitAdaptability, 0.8}, {types.TraitStructurePreference, -0.8}},
			"balanced":   {{types.TraitAdaptability, 0.3}},
		},
	},
	{
		Name: "decision_making_style",
		Get:  func(a *types.QuizAnswers) string { return a.DecisionMakingStyle },
		Deltas: map[string][]weight{
			"data-driven":   {{types.TraitStructurePreference, 0.5}, {types.TraitTechComfort, 0.3}},
			"gut-feel":      {{types.TraitRiskTolerance, 0.5}, {types.TraitCreativity, 0.3}},
			"collaborative": {{types.TraitSocialComfort, 0.5}},
			"cautious":      {{types.TraitRiskTolerance, -0.7}, {types.TraitStructurePreference, 0.3}},
		},
	},
	{
		Name: "main_motivation",
		Get:  func(a *types.QuizAnswers) string { return a.MainMotivation },
		Deltas: map[string][]weight{
			"financial-freedom": {{types.TraitMotivation, 0.8}},
			"flexibility":       {{types.TraitAdaptability, 0.5}, {types.TraitMotivation, 0.4}},
			"passion":           {{types.TraitCreativity, 0.5}, {types.TraitMotivation, 0.6}},
			"status":            {{types.TraitConfidence, 0.4}, {types.TraitMotivation, 0.4}},
		},
	},
	{
		Name: "learning_preference",
		Get:  func(a *types.QuizAnswers) string { return a.LearningPreference },
		Deltas: map[string][]weight{
			"hands-on":   {{types.TraitAdaptability, 0.4}, {types.TraitTechComfort, 0.2}},
			"videos":     {{types.TraitFocusPreference, 0.2}},
			"reading":    {{types.TraitFocusPreference, 0.4}, {types.TraitDiscipline, 0.2}},
			"one-on-one": {{types.TraitSocialComfort, 0.4}},
		},
	},
	{
		Name: "existing_audience",
		Get:  func(a *types.QuizAnswers) string { return a.ExistingAudience },
		Deltas: map[string][]weight{
			"small":  {{types.TraitSocialComfort, 0.2}, {types.TraitConfidence, 0.2}},
			"medium": {{types.TraitSocialComfort, 0.4}, {types.TraitConfidence, 0.4}},
			"large":  {{types.TraitSocialComfort, 0.6}, {types.TraitConfidence, 0.6}},
		},
	},
	{
		Name: "support_system_strength",
		Get:  func(a *types.QuizAnswers) string { return a.SupportSystemStrength },
		Deltas: map[string][]weight{
			"strong":   {{types.TraitResilience, 0.5}, {types.TraitConfidence, 0.3}},
			"moderate": {{types.TraitResilience, 0.2}},
			"weak":     {{types.TraitResilience, -0.4}},
		},
	},
	{
		Name: "first_income_timeline",
		Get:  func(a *types.QuizAnswers) string { return a.FirstIncomeTimeline },
		Deltas: map[string][]weight{
			"under-1-month": {{types.TraitMotivation, 0.4}, {types.TraitRiskTolerance, 0.2}},
			"1-3-months":    {{types.TraitMotivation, 0.2}},
			"3-6-months":    {{types.TraitDiscipline, 0.2}},
			"no-rush":       {{types.TraitDiscipline, 0.3}, {types.TraitStructurePreference, 0.2}},
		},
	},
	{
		Name: "focus_session_length",
		Get:  func(a *types.QuizAnswers) string { return a.FocusSessionLength },
		Deltas: map[string][]weight{
			"short": {{types.TraitAdaptability, 0.3}, {types.TraitFocusPreference, -0.5}},
			"long":  {{types.TraitFocusPreference, 0.8}, {types.TraitDiscipline, 0.3}},
		},
	},
}

var bucketFields = []bucketField{
	{
		Name: "weekly_time_commitment",
		Get:  func(a *types.QuizAnswers) int { return a.WeeklyTimeCommitment },
		Buckets: []bucket{
			{Min: 30, Deltas: []weight{{types.TraitDiscipline, 1.0}, {types.TraitMotivation, 0.8}, {types.TraitRiskTolerance, 0.5}}},
			{Min: 15, Deltas: []weight{{types.TraitDiscipline, 0.5}, {types.TraitMotivation, 0.4}}},
			{Min: 5, Deltas: []weight{{types.TraitMotivation, 0.1}}},
			{Min: 1, Deltas: []weight{{types.TraitDiscipline, -0.3}}},
		},
	},
	{
		Name: "upfront_investment",
		Get:  func(a *types.QuizAnswers) int { return a.UpfrontInvestment },
		Buckets: []bucket{
			{Min: 5000, Deltas: []weight{{types.TraitRiskTolerance, 0.8}, {types.TraitConfidence, 0.3}}},
			{Min: 1000, Deltas: []weight{{types.TraitRiskTolerance, 0.4}}},
			{Min: 250, Deltas: []weight{{types.TraitRiskTolerance, 0.2}}},
			{Min: 1, Deltas: []weight{{types.TraitRiskTolerance, -0.2}}},
		},
	},
	{
		Name: "monthly_income_goal",
		Get:  func(a *types.QuizAnswers) int { return a.MonthlyIncomeGoal },
		Buckets: []bucket{
			{Min: 10000, Deltas: []weight{{types.TraitMotivation, 0.8}, {types.TraitRiskTolerance, 0.4}, {types.TraitConfidence, 0.3}}},
			{Min: 5000, Deltas: []weight{{types.TraitMotivation, 0.5}}},
			{Min: 1000, Deltas: []weight{{types.TraitMotivation, 0.2}}},
			{Min: 1, Deltas: []weight{{types.TraitMotivation, -0.1}}},
		},
	},
}

// toolContributions are summed once per selected tool, unbounded by
// count; a long tool list can saturate techComfort on its own.
var toolContributions = map[string][]weight{
	"spreadsheets":    {{types.TraitTechComfort, 0.3}, {types.TraitStructurePreference, 0.2}},
	"coding":          {{types.TraitTechComfort, 0.8}, {types.TraitFocusPreference, 0.2}},
	"canva":           {{types.TraitCreativity, 0.4}, {types.TraitTechComfort, 0.2}},
	"video-editing":   {{types.TraitCreativity, 0.5}, {types.TraitTechComfort, 0.3}},
	"wordpress":       {{types.TraitTechComfort, 0.4}},
	"shopify":         {{types.TraitTechComfort, 0.4}, {types.TraitRiskTolerance, 0.1}},
	"analytics":       {{types.TraitTechComfort, 0.5}, {types.TraitStructurePreference, 0.3}},
	"email-marketing": {{types.TraitTechComfort, 0.3}, {types.TraitSocialComfort, 0.2}},
	"social-media":    {{types.TraitSocialComfort, 0.4}, {types.TraitCreativity, 0.3}},
	"ai-tools":        {{types.TraitTechComfort, 0.6}, {types.TraitAdaptability, 0.3}},
}

// traitRange is the empirically chosen raw-score range per trait.
// Raw totals outside the range saturate at the scale ends rather than
// erroring.
type traitRange struct {
	Min float64
	Max float64
}

var traitRanges = map[types.Trait]traitRange{
	types.TraitSocialComfort:       {-6.5, 8.5},
	types.TraitDiscipline:          {-7.0, 9.0},
	types.TraitRiskTolerance:       {-6.0, 8.0},
	types.TraitTechComfort:         {-5.5, 7.5},
	types.TraitStructurePreference: {-6.0, 7.5},
	types.TraitMotivation:          {-6.5, 9.0},
	types.TraitFeedbackResilience:  {-5.5, 6.5},
	types.TraitCreativity:          {-5.5, 7.5},
	types.TraitConfidence:          {-6.5, 8.5},
	types.TraitAdaptability:        {-5.5, 7.0},
	types.TraitFocusPreference:     {-5.0, 6.5},
	types.TraitResilience:          {-6.0, 7.5},
}
