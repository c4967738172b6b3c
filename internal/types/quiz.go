// Package types provides type definitions for structured data used throughout the founder-fit system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// QuizAnswers is the immutable record of a completed quiz. It is produced
// once by the quiz frontend and only read by the engines; none of the
// scoring or generation code mutates it.
//
// Likert fields are integers 1-5. Numeric fields are pre-bucketed by the
// frontend (hours per week, dollars). Categorical fields carry one of a
// small set of string values; unknown values score as neutral.
type QuizAnswers struct {
	// Work style and social profile
	WorkStylePreference          string `json:"work_style_preference,omitempty" validate:"omitempty,oneof=solo team mix"`
	WorkCollaborationPreference  string `json:"work_collaboration_preference,omitempty" validate:"omitempty,oneof=mostly-solo some-collaboration team-oriented"`
	DirectCommunicationEnjoyment int    `json:"direct_communication_enjoyment,omitempty" validate:"omitempty,min=1,max=5"`
	BrandFaceComfort             int    `json:"brand_face_comfort,omitempty" validate:"omitempty,min=1,max=5"`
	SocialMediaInterest          int    `json:"social_media_interest,omitempty" validate:"omitempty,min=1,max=5"`
	EcosystemParticipation       int    `json:"ecosystem_participation,omitempty" validate:"omitempty,min=1,max=5"`

	// Discipline and consistency
	SelfMotivationLevel    int `json:"self_motivation_level,omitempty" validate:"omitempty,min=1,max=5"`
	DisciplineLevel        int `json:"discipline_level,omitempty" validate:"omitempty,min=1,max=5"`
	OrganizationLevel      int `json:"organization_level,omitempty" validate:"omitempty,min=1,max=5"`
	LongTermConsistency    int `json:"long_term_consistency,omitempty" validate:"omitempty,min=1,max=5"`
	SystemsRoutinesEnjoy   int `json:"systems_routines_enjoyment,omitempty" validate:"omitempty,min=1,max=5"`
	RepetitiveTasksFeeling int `json:"repetitive_tasks_feeling,omitempty" validate:"omitempty,min=1,max=5"`

	// Risk and uncertainty
	RiskComfortLevel    int    `json:"risk_comfort_level,omitempty" validate:"omitempty,min=1,max=5"`
	UncertaintyHandling int    `json:"uncertainty_handling,omitempty" validate:"omitempty,min=1,max=5"`
	TrialErrorComfort   int    `json:"trial_error_comfort,omitempty" validate:"omitempty,min=1,max=5"`
	RiskPerception      string `json:"risk_perception,omitempty" validate:"omitempty,oneof=exciting manageable stressful"`

	// Technology
	TechSkillsRating       int      `json:"tech_skills_rating,omitempty" validate:"omitempty,min=1,max=5"`
	ToolLearningWillingness int     `json:"tool_learning_willingness,omitempty" validate:"omitempty,min=1,max=5"`
	FamiliarTools          []string `json:"familiar_tools,omitempty"`

	// Structure and decision making
	WorkStructurePreference string `json:"work_structure_preference,omitempty" validate:"omitempty,oneof=structured flexible balanced"`
	DecisionMakingStyle     string `json:"decision_making_style,omitempty" validate:"omitempty,oneof=data-driven gut-feel collaborative cautious"`
	ControlImportance       int    `json:"control_importance,omitempty" validate:"omitempty,min=1,max=5"`

	// Motivation and goals
	MainMotivation            string `json:"main_motivation,omitempty" validate:"omitempty,oneof=financial-freedom flexibility passion status"`
	PassiveIncomeImportance   int    `json:"passive_income_importance,omitempty" validate:"omitempty,min=1,max=5"`
	MeaningfulContributionImp int    `json:"meaningful_contribution_importance,omitempty" validate:"omitempty,min=1,max=5"`
	CompetitivenessLevel      int    `json:"competitiveness_level,omitempty" validate:"omitempty,min=1,max=5"`

	// Resilience and feedback
	FeedbackRejectionResponse int `json:"feedback_rejection_response,omitempty" validate:"omitempty,min=1,max=5"`
	LearningCurveComfort      int `json:"learning_curve_comfort,omitempty" validate:"omitempty,min=1,max=5"`
	SetbackRecovery           int `json:"setback_recovery,omitempty" validate:"omitempty,min=1,max=5"`

	// Creativity and sales
	CreativeWorkEnjoyment int `json:"creative_work_enjoyment,omitempty" validate:"omitempty,min=1,max=5"`
	SalesConfidence       int `json:"sales_confidence,omitempty" validate:"omitempty,min=1,max=5"`

	// Resources and commitments
	WeeklyTimeCommitment int    `json:"weekly_time_commitment,omitempty" validate:"omitempty,min=0,max=168"`
	UpfrontInvestment    int    `json:"upfront_investment,omitempty" validate:"omitempty,min=0"`
	MonthlyIncomeGoal    int    `json:"monthly_income_goal,omitempty" validate:"omitempty,min=0"`
	FirstIncomeTimeline  string `json:"first_income_timeline,omitempty" validate:"omitempty,oneof=under-1-month 1-3-months 3-6-months no-rush"`

	// Context
	LearningPreference    string `json:"learning_preference,omitempty" validate:"omitempty,oneof=hands-on videos reading one-on-one"`
	ExistingAudience      string `json:"existing_audience,omitempty" validate:"omitempty,oneof=none small medium large"`
	SupportSystemStrength string `json:"support_system_strength,omitempty" validate:"omitempty,oneof=strong moderate weak"`
	FocusSessionLength    string `json:"focus_session_length,omitempty" validate:"omitempty,oneof=short medium long"`
}

// GenerationProjection is the subset of quiz fields that influence the
// generated narrative. The content cache keys on this projection so that
// answer changes outside it do not invalidate cached reports.
type GenerationProjection struct {
	WorkStylePreference     string   `json:"work_style_preference"`
	SelfMotivationLevel     int      `json:"self_motivation_level"`
	DisciplineLevel         int      `json:"discipline_level"`
	RiskComfortLevel        int      `json:"risk_comfort_level"`
	TechSkillsRating        int      `json:"tech_skills_rating"`
	CreativeWorkEnjoyment   int      `json:"creative_work_enjoyment"`
	SalesConfidence         int      `json:"sales_confidence"`
	MainMotivation          string   `json:"main_motivation"`
	WorkStructurePreference string   `json:"work_structure_preference"`
	WeeklyTimeCommitment    int      `json:"weekly_time_commitment"`
	UpfrontInvestment       int      `json:"upfront_investment"`
	MonthlyIncomeGoal       int      `json:"monthly_income_goal"`
	FirstIncomeTimeline     string   `json:"first_income_timeline"`
	ExistingAudience        string   `json:"existing_audience"`
	FamiliarTools           []string `json:"familiar_tools"`
}

// Projection returns the generation-relevant subset of the answers.
func (a *QuizAnswers) Projection() GenerationProjection {
	return GenerationProjection{
		WorkStylePreference:     a.WorkStylePreference,
		SelfMotivationLevel:     a.SelfMotivationLevel,
		DisciplineLevel:         a.DisciplineLevel,
		RiskComfortLevel:        a.RiskComfortLevel,
		TechSkillsRating:        a.TechSkillsRating,
		CreativeWorkEnjoyment:   a.CreativeWorkEnjoyment,
		SalesConfidence:         a.SalesConfidence,
		MainMotivation:          a.MainMotivation,
		WorkStructurePreference: a.WorkStructurePreference,
		WeeklyTimeCommitment:    a.WeeklyTimeCommitment,
		UpfrontInvestment:       a.UpfrontInvestment,
		MonthlyIncomeGoal:       a.MonthlyIncomeGoal,
		FirstIncomeTimeline:     a.FirstIncomeTimeline,
		ExistingAudience:        a.ExistingAudience,
		FamiliarTools:           append([]string(nil), a.FamiliarTools...),
	}
}
