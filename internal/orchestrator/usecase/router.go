package usecase

import "a2a-orchestrator/internal/model"

// Node names, also used to reconstruct the debug node path.
const (
	nodeIntake         = "intake"
	nodeClassification = "classification"
	nodeSmallTalk      = "small_talk"
	nodeClarify        = "clarify"
	nodeSelfServe      = "self_serve"
	nodeDispatch       = "dispatch"
	nodeSynthesis      = "synthesis"
)

// routeAfterClassification is the single conditional edge of the
// pipeline. Pure and total: a nil classification defensively routes to
// clarify; otherwise the mode names the next node directly. Every path
// converges to synthesis afterwards.
func routeAfterClassification(c *model.Classification) string {
	if c == nil {
		return nodeClarify
	}
	return string(c.Mode)
}
