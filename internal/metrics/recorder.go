package metrics

import "time"

// FragmentResult enumerates what happened to one fragment in one document.
type FragmentResult string

const (
	FragmentReplaced  FragmentResult = "replaced"
	FragmentUnchanged FragmentResult = "unchanged"
	// FragmentSkipped means the target has no element for the fragment.
	FragmentSkipped FragmentResult = "skipped"
	// FragmentMissingInSource means the canonical document has no such fragment.
	FragmentMissingInSource FragmentResult = "missing_in_source"
)

// RunOutcomeLabel enumerates final run status values.
type RunOutcomeLabel string

const (
	RunSuccess RunOutcomeLabel = "success"
	RunFailed  RunOutcomeLabel = "failed"
)

// Recorder defines observability hooks for sync runs.
type Recorder interface {
	ObserveRunDuration(d time.Duration)
	IncRunOutcome(outcome RunOutcomeLabel)
	IncDocumentOutcome(outcome string)
	IncFragmentResult(fragment string, result FragmentResult)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveRunDuration(time.Duration) {}
func (NoopRecorder) IncRunOutcome(RunOutcomeLabel) {}
func (NoopRecorder) IncDocumentOutcome(string) {}
func (NoopRecorder) IncFragmentResult(string, FragmentResult) {}
