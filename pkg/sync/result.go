package sync

import "fmt"

// Outcome classifies what the upsert engine did with one video.
type Outcome string

const (
	// OutcomeCreated indicates a new page was created.
	OutcomeCreated Outcome = "created"
	// OutcomeUpdated indicates an existing page had differing fields and was
	// patched.
	OutcomeUpdated Outcome = "updated"
	// OutcomeUnchanged indicates an existing page already matched and no
	// write was issued.
	OutcomeUnchanged Outcome = "unchanged"
	// OutcomeSkipped indicates the video was not written because its owning
	// channel could not be resolved.
	OutcomeSkipped Outcome = "skipped"
)

// Result summarizes a sync run. Succeeded counts videos that ended in
// created, updated, or unchanged; Failed counts per-item errors, skipped
// videos, and IDs whose chunk fetch failed or that the catalog did not
// return.
type Result struct {
	Total     int
	Succeeded int
	Failed    int

	Created   int
	Updated   int
	Unchanged int
	Skipped   int

	DryRun bool
}

// HasFailures reports whether any item failed.
func (r *Result) HasFailures() bool {
	return r.Failed > 0
}

// Summary returns a human-readable summary of the run.
func (r *Result) Summary() string {
	s := fmt.Sprintf("%d total: %d succeeded (%d created, %d updated, %d unchanged), %d failed",
		r.Total, r.Succeeded, r.Created, r.Updated, r.Unchanged, r.Failed)
	if r.Skipped > 0 {
		s += fmt.Sprintf(" (%d skipped)", r.Skipped)
	}
	if r.DryRun {
		s += " (dry run)"
	}
	return s
}

// record tallies one video's outcome.
func (r *Result) record(outcome Outcome) {
	switch outcome {
	case OutcomeCreated:
		r.Created++
		r.Succeeded++
	case OutcomeUpdated:
		r.Updated++
		r.Succeeded++
	case OutcomeUnchanged:
		r.Unchanged++
		r.Succeeded++
	case OutcomeSkipped:
		r.Skipped++
		r.Failed++
	}
}
