// Package pipeline provides the high-level orchestration for report
// generation: stage sequencing, timeouts and fallbacks, progress
// estimation, and run deduplication.
package pipeline

// StageDefinition defines metadata for one generation stage.
type StageDefinition struct {
	Name     string
	Category string
	// External stages call the narrative service and carry a timeout
	// plus a deterministic fallback; internal stages are pure compute.
	External bool
}

// Stages is the fixed stage order. Stage i+1 begins only after stage
// i's result (success or fallback) is recorded.
var Stages = []StageDefinition{
	{Name: "profile-analysis", Category: "scoring", External: false},
	{Name: "model-matching", Category: "scoring", External: false},
	{Name: "insight-generation", Category: "narrative", External: true},
	{Name: "characteristic-generation", Category: "narrative", External: true},
	{Name: "fit-avoid-generation", Category: "narrative", External: true},
	{Name: "finalization", Category: "delivery", External: false},
}

// StageIndex returns the position of a stage by name, or -1.
func StageIndex(name string) int {
	for i, s := range Stages {
		if s.Name == name {
			return i
		}
	}
	return -1
}
