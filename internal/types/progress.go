package types

// StageStatus tracks one generation stage through its lifecycle.
type StageStatus string

// Stage lifecycle states.
const (
	StagePending   StageStatus = "pending"
	StageActive    StageStatus = "active"
	StageCompleted StageStatus = "completed"
	StageFailed    StageStatus = "failed"
)

// PipelineState is the terminal-state machine of the orchestrator.
type PipelineState string

// Pipeline states. A Failed state still carries a complete result when
// every failed stage recovered through its fallback.
const (
	PipelineIdle      PipelineState = "idle"
	PipelineRunning   PipelineState = "running"
	PipelineCompleted PipelineState = "completed"
	PipelineCancelled PipelineState = "cancelled"
)

// ProgressEvent is emitted on a fixed tick interval while a pipeline
// runs. Percent is monotone non-decreasing and only reaches 100 at true
// completion.
type ProgressEvent struct {
	StageIndex int    `json:"stage_index"`
	StageName  string `json:"stage_name"`
	Percent    int    `json:"percent"`
}
