package layoutsync

import "time"

// Outcome is the terminal state of one target document.
type Outcome string

const (
	// OutcomeUpdated means the document changed and was written
	// (or would have been, in a dry run).
	OutcomeUpdated   Outcome = "updated"
	OutcomeUnchanged Outcome = "unchanged"
	OutcomeNotFound  Outcome = "not_found"
)

// Result describes what happened to one target.
type Result struct {
	Path    string  `json:"path"`
	Outcome Outcome `json:"outcome"`
	// Replaced lists the fragments whose replacement altered the document, in
	// fragment order.
	Replaced      []string `json:"replaced,omitempty"`
	ClassesMerged bool     `json:"classes_merged,omitempty"`
	// Diff is filled in dry runs with diffs enabled.
	Diff string `json:"diff,omitempty"`
}

// Report collects the results of one run in target order.
type Report struct {
	RunID  string `json:"run_id"`
	Source string `json:"source"`
	DryRun bool   `json:"dry_run"`
	// MissingInSource lists fragments the source had no element for.
	MissingInSource []string      `json:"missing_in_source,omitempty"`
	Results         []Result      `json:"results"`
	Duration        time.Duration `json:"duration"`
}

// Count returns how many results ended with outcome o.
func (r *Report) Count(o Outcome) int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome == o {
			n++
		}
	}
	return n
}

// Changed reports whether any target was (or would be) updated.
func (r *Report) Changed() bool {
	return r.Count(OutcomeUpdated) > 0
}
