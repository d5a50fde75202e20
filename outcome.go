/*
 * Copyright © 2025 FireCMS Authors, All rights reserved.
 */

package firecms

import "github.com/diegotc86/firecms/errors"

// Op identifies the operation kind an outcome belongs to.
type Op string

const (
	OpSave   Op = "save"
	OpDelete Op = "delete"
)

// Outcome is the structured result of one save or delete. Every operation
// returns exactly one Outcome; no path swallows an error without producing a
// reportable reason.
type Outcome struct {
	// Op is the operation kind.
	Op Op

	// Entity is the operation's target. On a successful save its ID is the
	// definitive (possibly store-assigned) identifier; on failure it holds
	// whatever partial identity was known.
	Entity Entity

	// Err is nil on success. On failure it is one of the taxonomy types,
	// ValidationError, HookError (pre-phase) or StoreError, or the
	// context's error when the operation was canceled before its store
	// call began.
	Err error

	// HookErr records a post-phase hook failure (post-save-success,
	// post-save-failure, post-delete). It never changes the verdict: the
	// store mutation already happened or definitively failed.
	HookErr *errors.HookError
}

// Succeeded reports the operation's verdict.
func (o Outcome) Succeeded() bool {
	return o.Err == nil
}

// Classification is the three-way verdict over a batch of outcomes.
type Classification string

const (
	AllSucceeded Classification = "all-succeeded"
	Partial      Classification = "partial"
	AllFailed    Classification = "all-failed"
)

// BatchOutcome is the ordered sequence of per-item outcomes of one batch
// operation. The classification is always derived from the sequence, never
// stored.
type BatchOutcome struct {
	// Outcomes holds one entry per requested target, in request order.
	Outcomes []Outcome
}

// Classification derives the batch verdict: all-succeeded iff every outcome
// succeeded, all-failed iff every outcome failed, partial otherwise. An empty
// batch classifies as all-succeeded vacuously.
func (b BatchOutcome) Classification() Classification {
	successes := 0
	for _, o := range b.Outcomes {
		if o.Succeeded() {
			successes++
		}
	}
	switch successes {
	case len(b.Outcomes):
		return AllSucceeded
	case 0:
		return AllFailed
	default:
		return Partial
	}
}

// Succeeded returns the entities of the successful outcomes, preserving the
// original relative order.
func (b BatchOutcome) Succeeded() []Entity {
	out := make([]Entity, 0, len(b.Outcomes))
	for _, o := range b.Outcomes {
		if o.Succeeded() {
			out = append(out, o.Entity)
		}
	}
	return out
}

// Failed returns the failed outcomes, preserving the original relative order.
func (b BatchOutcome) Failed() []Outcome {
	out := make([]Outcome, 0, len(b.Outcomes))
	for _, o := range b.Outcomes {
		if !o.Succeeded() {
			out = append(out, o)
		}
	}
	return out
}
