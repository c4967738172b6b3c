package types

// NarrativeInsights is the short-form generated content shown in the
// report preview: a personalized summary plus bullet-style insight and
// recommendation lines.
type NarrativeInsights struct {
	Summary         string   `json:"summary"`
	KeyInsights     []string `json:"key_insights"`
	Recommendations []string `json:"recommendations"`
}

// Characteristic is one named quality of the entrepreneur profile with a
// sentence of supporting description.
type Characteristic struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// NarrativeAnalysis is the long-form generated content of the full
// report: an overview, the profile characteristics, and the explanation
// of why the top model fits and the worst model does not.
type NarrativeAnalysis struct {
	Overview         string           `json:"overview"`
	Characteristics  []Characteristic `json:"characteristics"`
	FitDescription   string           `json:"fit_description"`
	AvoidDescription string           `json:"avoid_description"`
}

// GenerationResult is the complete output of one pipeline run. Fallback
// content has exactly the same shape as AI-derived content; consumers
// cannot and should not distinguish the two.
type GenerationResult struct {
	Insights NarrativeInsights `json:"insights"`
	Analysis NarrativeAnalysis `json:"analysis"`
	TopModel ModelScore        `json:"top_model"`
}
