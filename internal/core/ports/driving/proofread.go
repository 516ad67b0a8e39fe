package driving

import (
	"context"

	"github.com/custodia-labs/docproof/internal/core/domain"
)

// RunObserver is notified after every state transition of a run.
// It receives a copy, so UIs can render each stage as soon as it is reached.
type RunObserver func(run domain.Run)

// ProofreadService runs the link -> fetch -> proofread pipeline.
type ProofreadService interface {
	// Run executes the whole pipeline for one submitted link.
	// The returned run is in RunIdle (blank link), RunDone or RunFailed.
	// observer may be nil.
	Run(ctx context.Context, link string, observer RunObserver) *domain.Run

	// ModelName returns the language model used for proofreading.
	ModelName() string
}
