package types

// Trait identifies one of the twelve personality dimensions derived from
// quiz answers.
type Trait string

// The fixed trait set. Order here is the canonical display order.
const (
	TraitSocialComfort       Trait = "socialComfort"
	TraitDiscipline          Trait = "discipline"
	TraitRiskTolerance       Trait = "riskTolerance"
	TraitTechComfort         Trait = "techComfort"
	TraitStructurePreference Trait = "structurePreference"
	TraitMotivation          Trait = "motivation"
	TraitFeedbackResilience  Trait = "feedbackResilience"
	TraitCreativity          Trait = "creativity"
	TraitConfidence          Trait = "confidence"
	TraitAdaptability        Trait = "adaptability"
	TraitFocusPreference     Trait = "focusPreference"
	TraitResilience          Trait = "resilience"
)

// AllTraits lists every trait in canonical order.
var AllTraits = []Trait{
	TraitSocialComfort,
	TraitDiscipline,
	TraitRiskTolerance,
	TraitTechComfort,
	TraitStructurePreference,
	TraitMotivation,
	TraitFeedbackResilience,
	TraitCreativity,
	TraitConfidence,
	TraitAdaptability,
	TraitFocusPreference,
	TraitResilience,
}

// TraitScores holds the normalized score for every trait. Each value lies
// in [1.0, 5.0] after normalization, rounded to one decimal place.
type TraitScores struct {
	SocialComfort       float64 `json:"social_comfort"`
	Discipline          float64 `json:"discipline"`
	RiskTolerance       float64 `json:"risk_tolerance"`
	TechComfort         float64 `json:"tech_comfort"`
	StructurePreference float64 `json:"structure_preference"`
	Motivation          float64 `json:"motivation"`
	FeedbackResilience  float64 `json:"feedback_resilience"`
	Creativity          float64 `json:"creativity"`
	Confidence          float64 `json:"confidence"`
	Adaptability        float64 `json:"adaptability"`
	FocusPreference     float64 `json:"focus_preference"`
	Resilience          float64 `json:"resilience"`
}

// Get returns the score for a single trait.
func (s TraitScores) Get(t Trait) float64 {
	switch t {
	case TraitSocialComfort:
		return s.SocialComfort
	case TraitDiscipline:
		return s.Discipline
	case TraitRiskTolerance:
		return s.RiskTolerance
	case TraitTechComfort:
		return s.TechComfort
	case TraitStructurePreference:
		return s.StructurePreference
	case TraitMotivation:
		return s.Motivation
	case TraitFeedbackResilience:
		return s.FeedbackResilience
	case TraitCreativity:
		return s.Creativity
	case TraitConfidence:
		return s.Confidence
	case TraitAdaptability:
		return s.Adaptability
	case TraitFocusPreference:
		return s.FocusPreference
	case TraitResilience:
		return s.Resilience
	default:
		return 0
	}
}

// Set assigns the score for a single trait.
func (s *TraitScores) Set(t Trait, v float64) {
	switch t {
	case TraitSocialComfort:
		s.SocialComfort = v
	case TraitDiscipline:
		s.Discipline = v
	case TraitRiskTolerance:
		s.RiskTolerance = v
	case TraitTechComfort:
		s.TechComfort = v
	case TraitStructurePreference:
		s.StructurePreference = v
	case TraitMotivation:
		s.Motivation = v
	case TraitFeedbackResilience:
		s.FeedbackResilience = v
	case TraitCreativity:
		s.Creativity = v
	case TraitConfidence:
		s.Confidence = v
	case TraitAdaptability:
		s.Adaptability = v
	case TraitFocusPreference:
		s.FocusPreference = v
	case TraitResilience:
		s.Resilience = v
	}
}
