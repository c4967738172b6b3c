// Package ranking computes per-business-model fit percentages from quiz
// answers and produces the ranked model list.
package ranking

import "github.com/jonathan/founder-fit/internal/types"

// likertWeight applies Coef * (value - 3) to the model's raw score.
type likertWeight struct {
	Get  func(a *types.QuizAnswers) int
	Coef float64
}

// enumWeight adds the points of the matched categorical value.
type enumWeight struct {
	Get    func(a *types.QuizAnswers) string
	Points map[string]float64
}

// threshold tiers are declared highest-first; the first tier the value
// reaches applies.
type threshold struct {
	Min    int
	Points float64
}

// modelRule is the complete scoring rule for one business model. Raw
// scores normalize to 0-100 through the rule's own Min/Max range.
type modelRule struct {
	ID          string
	DisplayName string
	Category    string

	Likert []likertWeight
	Enums  []enumWeight
	Time   []threshold // weekly hours
	Budget []threshold // upfront dollars
	Tools  map[string]float64

	MinRaw float64
	MaxRaw float64
}

// modelRules is the model catalog in declaration order. Declaration
// order is the tie-break order for equal percentages: earlier wins.
var modelRules = []modelRule{
	{
		ID:          "freelancing",
		DisplayName: "Freelancing",
		Category:    "services",
		Likert: []likertWeight{
			{func(a *types.QuizAnswers) int { return a.TechSkillsRating }, 0.8},
			{func(a *types.QuizAnswers) int { return a.SelfMotivationLevel }, 0.7},
			{func(a *types.QuizAnswers) int { return a.DirectCommunicationEnjoyment }, 0.6},
			{func(a *types.QuizAnswers) int { return a.DisciplineLevel }, 0.5},
		},
		Enums: []enumWeight{
			{func(a *types.QuizAnswers) string { return a.WorkStylePreference },
				map[string]float64{"solo": 1.0, "mix": 0.4}},
			{func(a *types.QuizAnswers) string { return a.FirstIncomeTimeline },
				map[string]float64{"under-1-month": 1.0, "1-3-months": 0.6}},
		},
		Time:   []threshold{{20, 1.0}, {10, 0.5}},
		Budget: []threshold{{0, 0.5}}, // low barrier to entry
		Tools:  map[string]float64{"coding": 0.8, "canva": 0.4, "spreadsheets": 0.3},
		MinRaw: -7, MaxRaw: 8,
	},
	{
		ID:          "online-coaching",
		DisplayName: "Online Coaching",
		Category:    "education",
		Likert: []likertWeight{
			{func(a *types.QuizAnswers) int { return a.DirectCommunicationEnjoyment }, 1.0},
			{func(a *types.QuizAnswers) int { return a.BrandFaceComfort }, 0.8},
			{func(a *types.QuizAnswers) int { return a.MeaningfulContributionImp }, 0.7},
			{func(a *types.QuizAnswers) int { return a.SalesConfidence }, 0.5},
		},
		Enums: []enumWeight{
			{func(a *types.QuizAnswers) string { return a.ExistingAudience },
				map[string]float64{"small": 0.5, "medium": 1.0, "large": 1.5}},
			{func(a *types.QuizAnswers) string { return a.LearningPreference },
				map[string]float64{"one-on-one": 0.8}},
		},
		Time:   []threshold{{15, 0.8}, {5, 0.3}},
		Tools:  map[string]float64{"social-media": 0.4, "video-editing": 0.3},
		MinRaw: -7, MaxRaw: 8,
	},
	{
		ID:          "content-creation",
		DisplayName: "Content Creation / UGC",
		Category:    "content",
		Likert: []likertWeight{
			{func(a *types.QuizAnswers) int { return a.CreativeWorkEnjoyment }, 1.0},
			{func(a *types.QuizAnswers) int { return a.BrandFaceComfort }, 0.9},
			{func(a *types.QuizAnswers) int { return a.SocialMediaInterest }, 0.8},
			{func(a *types.QuizAnswers) int { return a.LongTermConsistency }, 0.5},
		},
		Enums: []enumWeight{
			{func(a *types.QuizAnswers) string { return a.ExistingAudience },
				map[string]float64{"small": 0.4, "medium": 0.9, "large": 1.5}},
			{func(a *types.QuizAnswers) string { return a.MainMotivation },
				map[string]float64{"passion": 0.8, "flexibility": 0.3}},
		},
		Time:   []threshold{{15, 0.6}, {5, 0.2}},
		Tools:  map[string]float64{"video-editing": 0.8, "canva": 0.5, "social-media": 0.6},
		MinRaw: -8, MaxRaw: 9,
	},
	{
		ID:          "affiliate-marketing",
		DisplayName: "Affiliate Marketing",
		Category:    "marketing",
		Likert: []likertWeight{
			{func(a *types.QuizAnswers) int { return a.SelfMotivationLevel }, 0.7},
			{func(a *types.QuizAnswers) int { return a.LongTermConsistency }, 0.7},
			{func(a *types.QuizAnswers) int { return a.SocialMediaInterest }, 0.5},
			{func(a *types.QuizAnswers) int { return a.PassiveIncomeImportance }, 0.6},
		},
		Enums: []enumWeight{
			{func(a *types.QuizAnswers) string { return a.FirstIncomeTimeline },
				map[string]float64{"3-6-months": 0.5, "no-rush": 0.8}},
			{func(a *types.QuizAnswers) string { return a.ExistingAudience },
				map[string]float64{"medium": 0.7, "large": 1.2}},
		},
		Time:   []threshold{{10, 0.5}},
		Tools:  map[string]float64{"wordpress": 0.5, "email-marketing": 0.6, "analytics": 0.5},
		MinRaw: -6, MaxRaw: 7,
	},
	{
		ID:          "smma",
		DisplayName: "Social Media Marketing Agency",
		Category:    "marketing",
		Likert: []likertWeight{
			{func(a *types.QuizAnswers) int { return a.SalesConfidence }, 1.0},
			{func(a *types.QuizAnswers) int { return a.DirectCommunicationEnjoyment }, 0.8},
			{func(a *types.QuizAnswers) int { return a.SocialMediaInterest }, 0.7},
			{func(a *types.QuizAnswers) int { return a.CompetitivenessLevel }, 0.5},
			{func(a *types.QuizAnswers) int { return a.FeedbackRejectionResponse }, 0.4},
		},
		Enums: []enumWeight{
			{func(a *types.QuizAnswers) string { return a.WorkStylePreference },
				map[string]float64{"team": 0.6, "mix": 0.4}},
		},
		Time:   []threshold{{25, 1.0}, {15, 0.5}},
		Tools:  map[string]float64{"social-media": 0.7, "analytics": 0.5, "canva": 0.3},
		MinRaw: -8, MaxRaw: 9,
	},
	{
		ID:          "saas-development",
		DisplayName: "SaaS Development",
		Category:    "tech",
		Likert: []likertWeight{
			{func(a *types.QuizAnswers) int { return a.TechSkillsRating }, 1.2},
			{func(a *types.QuizAnswers) int { return a.ToolLearningWillingness }, 0.6},
			{func(a *types.QuizAnswers) int { return a.LongTermConsistency }, 0.6},
			{func(a *types.QuizAnswers) int { return a.TrialErrorComfort }, 0.5},
		},
		Enums: []enumWeight{
			{func(a *types.QuizAnswers) string { return a.FirstIncomeTimeline },
				map[string]float64{"no-rush": 1.0, "3-6-months": 0.5}},
			{func(a *types.QuizAnswers) string { return a.FocusSessionLength },
				map[string]float64{"long": 0.6}},
		},
		Time:   []threshold{{25, 1.0}, {15, 0.4}},
		Budget: []threshold{{1000, 0.4}},
		Tools:  map[string]float64{"coding": 1.5, "ai-tools": 0.5, "analytics": 0.3},
		MinRaw: -8, MaxRaw: 10,
	},
	{
		ID:          "ecommerce",
		DisplayName: "E-commerce / Dropshipping",
		Category:    "ecommerce",
		Likert: []likertWeight{
			{func(a *types.QuizAnswers) int { return a.RiskComfortLevel }, 1.2},
			{func(a *types.QuizAnswers) int { return a.TechSkillsRating }, 0.6},
			{func(a *types.QuizAnswers) int { return a.TrialErrorComfort }, 0.6},
			{func(a *types.QuizAnswers) int { return a.CompetitivenessLevel }, 0.5},
		},
		Enums: []enumWeight{
			{func(a *types.QuizAnswers) string { return a.RiskPerception },
				map[string]float64{"exciting": 1.0, "manageable": 0.4, "stressful": -1.0}},
		},
		Time:   []threshold{{30, 1.5}, {15, 0.7}},
		Budget: []threshold{{2000, 1.5}, {500, 0.8}, {1, -0.5}},
		Tools:  map[string]float64{"shopify": 1.0, "analytics": 0.4, "social-media": 0.3},
		MinRaw: -8, MaxRaw: 9,
	},
	{
		ID:          "print-on-demand",
		DisplayName: "Print on Demand",
		Category:    "ecommerce",
		Likert: []likertWeight{
			{func(a *types.QuizAnswers) int { return a.CreativeWorkEnjoyment }, 1.0},
			{func(a *types.QuizAnswers) int { return a.SocialMediaInterest }, 0.5},
			{func(a *types.QuizAnswers) int { return a.PassiveIncomeImportance }, 0.5},
		},
		Enums: []enumWeight{
			{func(a *types.QuizAnswers) string { return a.MainMotivation },
				map[string]float64{"passion": 0.5, "flexibility": 0.4}},
		},
		Time:   []threshold{{10, 0.4}},
		Budget: []threshold{{250, 0.4}},
		Tools:  map[string]float64{"canva": 0.8, "shopify": 0.6, "social-media": 0.3},
		MinRaw: -5, MaxRaw: 6,
	},
	{
		ID:          "youtube-automation",
		DisplayName: "YouTube Automation",
		Category:    "content",
		Likert: []likertWeight{
			{func(a *types.QuizAnswers) int { return a.SystemsRoutinesEnjoy }, 0.8},
			{func(a *types.QuizAnswers) int { return a.OrganizationLevel }, 0.6},
			{func(a *types.QuizAnswers) int { return a.PassiveIncomeImportance }, 0.7},
			{func(a *types.QuizAnswers) int { return a.RiskComfortLevel }, 0.5},
		},
		Enums: []enumWeight{
			{func(a *types.QuizAnswers) string { return a.WorkStylePreference },
				map[string]float64{"solo": 0.4}},
		},
		Budget: []threshold{{2000, 1.0}, {500, 0.5}},
		Tools:  map[string]float64{"video-editing": 0.7, "ai-tools": 0.5, "analytics": 0.4},
		MinRaw: -6, MaxRaw: 7,
	},
	{
		ID:          "virtual-assistant",
		DisplayName: "Virtual Assistant Services",
		Category:    "services",
		Likert: []likertWeight{
			{func(a *types.QuizAnswers) int { return a.OrganizationLevel }, 1.0},
			{func(a *types.QuizAnswers) int { return a.SystemsRoutinesEnjoy }, 0.8},
			{func(a *types.QuizAnswers) int { return a.RepetitiveTasksFeeling }, 0.6},
			{func(a *types.QuizAnswers) int { return a.DirectCommunicationEnjoyment }, 0.4},
		},
		Enums: []enumWeight{
			{func(a *types.QuizAnswers) string { return a.WorkStructurePreference },
				map[string]float64{"structured": 0.8, "balanced": 0.3}},
			{func(a *types.QuizAnswers) string { return a.FirstIncomeTimeline },
				map[string]float64{"under-1-month": 0.8, "1-3-months": 0.4}},
		},
		Time:   []threshold{{15, 0.5}},
		Tools:  map[string]float64{"spreadsheets": 0.6, "email-marketing": 0.4},
		MinRaw: -6, MaxRaw: 7,
	},
	{
		ID:          "high-ticket-sales",
		DisplayName: "High-Ticket Remote Sales",
		Category:    "sales",
		Likert: []likertWeight{
			{func(a *types.QuizAnswers) int { return a.SalesConfidence }, 1.2},
			{func(a *types.QuizAnswers) int { return a.RiskComfortLevel }, 0.8},
			{func(a *types.QuizAnswers) int { return a.FeedbackRejectionResponse }, 0.8},
			{func(a *types.QuizAnswers) int { return a.CompetitivenessLevel }, 0.7},
			{func(a *types.QuizAnswers) int { return a.DirectCommunicationEnjoyment }, 0.6},
		},
		Enums: []enumWeight{
			{func(a *types.QuizAnswers) string { return a.RiskPerception },
				map[string]float64{"exciting": 0.8, "stressful": -0.8}},
			{func(a *types.QuizAnswers) string { return a.MainMotivation },
				map[string]float64{"financial-freedom": 0.6, "status": 0.4}},
		},
		Time:   []threshold{{30, 1.0}, {20, 0.5}},
		MinRaw: -9, MaxRaw: 10,
	},
	{
		ID:          "local-service-arbitrage",
		DisplayName: "Local Service Arbitrage",
		Category:    "services",
		Likert: []likertWeight{
			{func(a *types.QuizAnswers) int { return a.SalesConfidence }, 0.8},
			{func(a *types.QuizAnswers) int { return a.OrganizationLevel }, 0.6},
			{func(a *types.QuizAnswers) int { return a.RiskComfortLevel }, 0.5},
			{func(a *types.QuizAnswers) int { return a.UncertaintyHandling }, 0.4},
		},
		Enums: []enumWeight{
			{func(a *types.QuizAnswers) string { return a.WorkCollaborationPreference },
				map[string]float64{"team-oriented": 0.5, "some-collaboration": 0.3}},
		},
		Time:   []threshold{{20, 0.7}},
		Budget: []threshold{{500, 0.4}},
		Tools:  map[string]float64{"spreadsheets": 0.3},
		MinRaw: -6, MaxRaw: 7,
	},
}
