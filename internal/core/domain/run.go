package domain

import (
	"errors"
	"time"
)

// RunState identifies where a pipeline run currently is.
type RunState int

const (
	// RunIdle means no link has been submitted.
	RunIdle RunState = iota
	// RunParsing means a link is being parsed for a document identifier.
	RunParsing
	// RunFetching means the document content is being retrieved.
	RunFetching
	// RunProofreading means the content has been sent to the language model.
	RunProofreading
	// RunDone means both original and revised text are available.
	RunDone
	// RunFailed means a stage returned an error and the run was abandoned.
	RunFailed
)

// String returns the string representation of the state.
func (s RunState) String() string {
	switch s {
	case RunIdle:
		return "idle"
	case RunParsing:
		return "parsing"
	case RunFetching:
		return "fetching"
	case RunProofreading:
		return "proofreading"
	case RunDone:
		return "done"
	case RunFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether no further transition can happen.
func (s RunState) IsTerminal() bool {
	return s == RunDone || s == RunFailed
}

// CanTransition reports whether the state machine allows moving from s to next.
// Failed is reachable from every non-idle, non-terminal state. There are no
// retry or cancellation transitions: a new run starts from Idle.
func (s RunState) CanTransition(next RunState) bool {
	if next == RunFailed {
		return s != RunIdle && !s.IsTerminal()
	}
	switch s {
	case RunIdle:
		return next == RunParsing
	case RunParsing:
		return next == RunFetching
	case RunFetching:
		return next == RunProofreading
	case RunProofreading:
		return next == RunDone
	default:
		return false
	}
}

// Run is a single execution of the proofreading pipeline.
// It is transient and discarded once the interaction completes.
type Run struct {
	// ID correlates log lines and responses for this run.
	ID string

	// Link is the raw input as submitted by the user.
	Link string

	// Reference is the document identifier, set once parsing succeeds.
	Reference DocumentReference

	// State is the current state of the run.
	State RunState

	// Original is the document text, set once fetching succeeds.
	Original DocumentContent

	// Revised is the model output, set once proofreading succeeds.
	Revised ProofreadResult

	// Model names the language model used for proofreading.
	Model string

	// Err is the error that moved the run to RunFailed.
	Err error

	StartedAt  time.Time
	FinishedAt time.Time
}

// HasOriginal reports whether the original text is available for display.
// This stays true after a later proofreading failure.
func (r *Run) HasOriginal() bool {
	switch r.State {
	case RunProofreading, RunDone:
		return true
	case RunFailed:
		return errors.Is(r.Err, ErrProofreadFailed)
	default:
		return false
	}
}

// HasRevised reports whether the revised text is available for display.
func (r *Run) HasRevised() bool {
	return r.State == RunDone
}

// Duration returns how long the run took, or zero while it is still running.
func (r *Run) Duration() time.Duration {
	if r.FinishedAt.IsZero() || r.StartedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// ErrorMessage is the single line shown to users for a failed run.
func ErrorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidLink):
		return "Error: " + err.Error() + ". Paste a link like https://docs.google.com/document/d/<id>/edit"
	default:
		return "Error: " + err.Error()
	}
}

// Message returns the user-facing error line for a failed run, or "".
func (r *Run) Message() string {
	if r.State != RunFailed {
		return ""
	}
	return ErrorMessage(r.Err)
}
